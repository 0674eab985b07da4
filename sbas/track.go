package sbas

import (
	"math"
	"time"

	satellite "github.com/joshuaferrara/go-satellite"

	"github.com/signalsfoundry/gnss/constellation"
)

// SubsatellitePoint propagates a two-line element set to t with SGP4 and
// returns the geographic point directly beneath the vehicle, longitude then
// latitude in degrees.
func SubsatellitePoint(tle1, tle2 string, t time.Time) (lon, lat float64) {
	sat := satellite.TLEToSat(tle1, tle2, satellite.GravityWGS72)

	year, month, day := t.Date()
	hour, min, sec := t.Clock()

	posECI, _ := satellite.Propagate(sat, year, int(month), day, hour, min, sec)
	jd := satellite.JDay(year, int(month), day, hour, min, sec)
	gmst := satellite.ThetaG_JD(jd)
	posECEF := satellite.ECIToECEF(posECI, gmst)

	const radToDeg = 180.0 / math.Pi
	lon = math.Atan2(posECEF.Y, posECEF.X) * radToDeg
	lat = math.Atan2(posECEF.Z, math.Hypot(posECEF.X, posECEF.Y)) * radToDeg
	return lon, lat
}

// SelectVehicle answers which augmentation service a vehicle currently
// stands over: it propagates the vehicle's two-line element set to t and
// runs the sub-satellite point through Select. The second return is false
// when the point falls outside every coverage region.
func (db *Database) SelectVehicle(tle1, tle2 string, t time.Time) (constellation.Constellation, bool) {
	lon, lat := SubsatellitePoint(tle1, tle2, t)
	return db.Select(lon, lat)
}
