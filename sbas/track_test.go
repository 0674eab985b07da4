package sbas

import (
	"testing"
	"time"

	"github.com/paulmach/orb"

	"github.com/signalsfoundry/gnss/constellation"
)

// ISS two-line element set, epoch 2021-10-02.
const (
	issTLE1 = "1 25544U 98067A   21275.59097222  .00000204  00000-0  10270-4 0  9990"
	issTLE2 = "2 25544  51.6459 115.9059 0001817  61.3028  35.9198 15.49370953257760"
)

func TestSubsatellitePoint(t *testing.T) {
	at := time.Date(2021, time.October, 2, 14, 11, 0, 0, time.UTC)

	lon, lat := SubsatellitePoint(issTLE1, issTLE2, at)

	if lon < -180 || lon > 180 {
		t.Errorf("longitude = %v, want within [-180, 180]", lon)
	}
	// the ISS orbit is inclined 51.6 degrees, its ground track never
	// leaves that latitude band
	if lat < -52 || lat > 52 {
		t.Errorf("latitude = %v, want within [-52, 52]", lat)
	}
}

func TestSelectVehicle(t *testing.T) {
	global := orb.Ring{
		{-180, -89}, {180, -89}, {180, 89}, {-180, 89}, {-180, -89},
	}
	db := NewDatabase(nil, []Region{{Constellation: "EGNOS", Ring: global}})

	at := time.Date(2021, time.October, 2, 14, 11, 0, 0, time.UTC)
	got, found := db.SelectVehicle(issTLE1, issTLE2, at)
	if !found {
		t.Fatal("SelectVehicle found no region under a globe-spanning ring")
	}
	if got != constellation.EGNOS {
		t.Errorf("SelectVehicle = %v, want EGNOS", got)
	}

	empty := NewDatabase(nil, nil)
	if _, found := empty.SelectVehicle(issTLE1, issTLE2, at); found {
		t.Error("SelectVehicle on an empty coverage table found a region")
	}
}
