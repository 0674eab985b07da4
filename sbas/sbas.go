// Package sbas carries the compiled-in reference tables for geostationary
// augmentation (SBAS) services: the vehicle table, which maps SBAS PRN
// numbers to a specific provider and vehicle identity, and the coverage
// table, which maps providers to their coarse geographic service area.
//
// Both tables are produced ahead of time by cmd/sbas-compiler from the
// authored descriptors under data/ and embedded into this package. They are
// strictly read-only at runtime.
package sbas

import (
	"errors"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/signalsfoundry/gnss/constellation"
)

// ErrMalformedDescriptor is returned when a compiled table does not decode
// into its required shape.
var ErrMalformedDescriptor = errors.New("malformed descriptor")

// Vehicle describes one augmentation satellite. The constellation tag is
// kept in its textual form, exactly as compiled, and always parses through
// the constellation codec into a specific augmentation provider.
type Vehicle struct {
	// Constellation is the provider tag, for example "EGNOS".
	Constellation string

	// PRN is the SBAS PRN number (vehicle PRN + 100).
	PRN uint16

	// Name is the vehicle readable name, for example "ASTRA-5B".
	Name string

	// Launch is the vehicle launch date, at midnight UTC.
	Launch time.Time
}

// Region associates an augmentation provider with its coverage boundary,
// a single closed ring without holes, vertices as (longitude, latitude)
// in degrees.
type Region struct {
	Constellation string
	Ring          orb.Ring
}

// Database bundles the vehicle and coverage tables. A Database is immutable
// once constructed and safe for concurrent use without locking: every
// operation is a bounded read-only scan.
type Database struct {
	vehicles []Vehicle
	regions  []Region
}

// NewDatabase builds a database from already validated tables. Declaration
// order is significant for both: vehicle lookups keep the last matching
// record, region selection keeps the first matching region.
func NewDatabase(vehicles []Vehicle, regions []Region) *Database {
	db := &Database{
		vehicles: make([]Vehicle, len(vehicles)),
		regions:  make([]Region, len(regions)),
	}
	copy(db.vehicles, vehicles)
	copy(db.regions, regions)
	return db
}

// VehicleByPRN returns the vehicle record for an SBAS PRN number (vehicle
// PRN + 100). When several records share a PRN, the one declared last wins:
// the table expresses overrides through declaration order. Callers must not
// assume first-match semantics.
func (db *Database) VehicleByPRN(prn uint16) (Vehicle, bool) {
	found := Vehicle{}
	ok := false
	for _, v := range db.vehicles {
		if v.PRN == prn {
			found = v
			ok = true
		}
	}
	return found, ok
}

// VehicleCount returns the number of vehicle records.
func (db *Database) VehicleCount() int { return len(db.vehicles) }

// RegionCount returns the number of coverage regions.
func (db *Database) RegionCount() int { return len(db.regions) }

// Vehicles calls fn for every vehicle record, in declaration order.
func (db *Database) Vehicles(fn func(Vehicle)) {
	for _, v := range db.vehicles {
		fn(v)
	}
}

// Select returns the augmentation service whose coverage area contains the
// given coordinates, longitude then latitude in degrees. Regions are probed
// in declaration order and the first containing region wins, which is the
// deterministic tie-break for overlapping coverage. The second return is
// false when no region contains the point.
func (db *Database) Select(lon, lat float64) (constellation.Constellation, bool) {
	point := orb.Point{lon, lat}
	for _, region := range db.regions {
		if !planar.RingContains(region.Ring, point) {
			continue
		}
		c, err := constellation.Parse(region.Constellation)
		if err != nil {
			// compiled tables only carry valid provider tags
			continue
		}
		return c, true
	}
	return 0, false
}
