// Package domes handles DOMES site numbers, the IERS designators of ground
// tracking points, such as "10002M006".
package domes

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidFormat is returned when a string is not a valid DOMES number.
var ErrInvalidFormat = errors.New("invalid DOMES number")

// TrackingPoint is the kind of point a DOMES number designates.
type TrackingPoint uint8

const (
	// Monument designates a ground marker.
	Monument TrackingPoint = iota

	// Instrument designates the instrument reference point itself.
	Instrument
)

// Letter returns the single-letter code of the tracking point kind.
func (p TrackingPoint) Letter() byte {
	if p == Instrument {
		return 'S'
	}
	return 'M'
}

// String returns the tracking point kind spelled out.
func (p TrackingPoint) String() string {
	if p == Instrument {
		return "Instrument"
	}
	return "Monument"
}

// DOMES is an IERS site designator: a three digit area code, a two digit
// site number within the area, the tracking point kind, and a three digit
// sequential point number.
type DOMES struct {
	Area       uint16
	Site       uint8
	Point      TrackingPoint
	Sequential uint16
}

// String formats the designator in the standard nine character form.
// Output here parses back through Parse.
func (d DOMES) String() string {
	return fmt.Sprintf("%03d%02d%c%03d", d.Area, d.Site, d.Point.Letter(), d.Sequential)
}

// Parse decodes a DOMES number such as "10002M006".
func Parse(s string) (DOMES, error) {
	if len(s) != 9 {
		return DOMES{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	area, err := strconv.ParseUint(s[0:3], 10, 16)
	if err != nil {
		return DOMES{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	site, err := strconv.ParseUint(s[3:5], 10, 8)
	if err != nil {
		return DOMES{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	var point TrackingPoint
	switch s[5] {
	case 'M':
		point = Monument
	case 'S':
		point = Instrument
	default:
		return DOMES{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	sequential, err := strconv.ParseUint(s[6:9], 10, 16)
	if err != nil {
		return DOMES{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	return DOMES{
		Area:       uint16(area),
		Site:       uint8(site),
		Point:      point,
		Sequential: uint16(sequential),
	}, nil
}
