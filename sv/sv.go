// Package sv identifies individual satellite vehicles: a PRN number paired
// with the constellation the vehicle belongs to.
package sv

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/signalsfoundry/gnss/constellation"
	"github.com/signalsfoundry/gnss/sbas"
)

// ErrInvalidID is returned when the numeric part of a satellite code does
// not parse as a non-negative integer.
var ErrInvalidID = errors.New("invalid satellite id")

// SV identifies one satellite vehicle.
type SV struct {
	// PRN identification number for this vehicle.
	PRN uint8

	// Constellation to which this vehicle belongs.
	Constellation constellation.Constellation
}

// New composes an SV from a constellation and PRN number. No validation and
// no reference-table consultation happens here; only Parse refines a generic
// augmentation tag into the specific provider.
func New(c constellation.Constellation, prn uint8) SV {
	return SV{Constellation: c, PRN: prn}
}

// sbasKey maps a vehicle PRN to its reference-table key, following the SBAS
// convention of offsetting PRN numbers by 100.
func sbasKey(prn uint8) uint16 {
	return uint16(prn) + 100
}

// Parse decodes a satellite code such as "G01" or "S23": the first character
// is the single-letter constellation code, the remainder is the PRN number
// (surrounding blanks tolerated). Codes that decode to an augmentation tag
// are re-resolved through the vehicle reference table, so "S23" identifies
// the EGNOS vehicle PRN 23 rather than a generic SBAS one.
func Parse(s string) (SV, error) {
	if s == "" {
		return SV{}, fmt.Errorf("%w: empty code", ErrInvalidID)
	}

	c, err := constellation.Parse(s[:1])
	if err != nil {
		return SV{}, err
	}

	prn, err := strconv.ParseUint(strings.TrimSpace(s[1:]), 10, 8)
	if err != nil {
		return SV{}, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}

	v := SV{Constellation: c, PRN: uint8(prn)}

	if c.IsSBAS() {
		if record, ok := sbas.Default().VehicleByPRN(sbasKey(v.PRN)); ok {
			// the compiled table only carries valid provider tags
			if specific, err := constellation.Parse(record.Constellation); err == nil {
				v.Constellation = specific
			}
		}
	}

	return v, nil
}

// String prints the vehicle in the standard XYY form, single-letter
// constellation code and zero-padded PRN, for example "G01".
func (v SV) String() string {
	return fmt.Sprintf("%c%02d", v.Constellation.Letter(), v.PRN)
}

// DetailedName returns the vehicle readable name for augmentation vehicles
// present in the reference table, for example "ASTRA-5B", and falls back to
// the canonical String form otherwise.
func (v SV) DetailedName() string {
	if v.Constellation.IsSBAS() {
		if record, ok := sbas.Default().VehicleByPRN(sbasKey(v.PRN)); ok {
			return record.Name
		}
	}
	return v.String()
}

// LaunchDate returns the vehicle launch date at midnight UTC. The second
// return is false for vehicles absent from the reference table, which is
// every non-augmentation vehicle.
func (v SV) LaunchDate() (time.Time, bool) {
	if !v.Constellation.IsSBAS() {
		return time.Time{}, false
	}
	record, ok := sbas.Default().VehicleByPRN(sbasKey(v.PRN))
	if !ok {
		return time.Time{}, false
	}
	return record.Launch, true
}

// Timescale returns the time reference this vehicle broadcasts against.
func (v SV) Timescale() (constellation.Timescale, bool) {
	return v.Constellation.Timescale()
}

// IsBeiDouGeo reports whether this vehicle is a BeiDou geostationary
// satellite, which occupy the PRN ranges below 6 and above 58.
func (v SV) IsBeiDouGeo() bool {
	return v.Constellation == constellation.BeiDou && (v.PRN < 6 || v.PRN > 58)
}
