package sbas

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/paulmach/orb"
)

//go:embed compiled/vehicles.json compiled/coverage.json
var compiledFS embed.FS

// internal JSON shapes of the compiled tables - keep them unexported so the
// wire format stays a private contract with cmd/sbas-compiler.
type vehicleJSON struct {
	Constellation string `json:"constellation"`
	PRN           uint16 `json:"prn"`
	Name          string `json:"name"`
	Launch        string `json:"launch"`
}

type regionJSON struct {
	Constellation string   `json:"constellation"`
	Ring          orb.Ring `json:"ring"`
}

// launchLayout is the calendar date layout of the compiled launch field.
const launchLayout = "2006-01-02"

// Load decodes compiled vehicle and coverage tables into a Database. It
// fails with a wrapped ErrMalformedDescriptor when either document does not
// decode; semantic validation (valid provider tags, PRN range) happens in
// cmd/sbas-compiler, not here.
func Load(vehicles, coverage []byte) (*Database, error) {
	var vdoc []vehicleJSON
	if err := json.Unmarshal(vehicles, &vdoc); err != nil {
		return nil, fmt.Errorf("%w: vehicle table: %v", ErrMalformedDescriptor, err)
	}

	var cdoc []regionJSON
	if err := json.Unmarshal(coverage, &cdoc); err != nil {
		return nil, fmt.Errorf("%w: coverage table: %v", ErrMalformedDescriptor, err)
	}

	db := &Database{
		vehicles: make([]Vehicle, 0, len(vdoc)),
		regions:  make([]Region, 0, len(cdoc)),
	}

	for _, v := range vdoc {
		launch, err := time.Parse(launchLayout, v.Launch)
		if err != nil {
			return nil, fmt.Errorf("%w: vehicle %d launch date %q", ErrMalformedDescriptor, v.PRN, v.Launch)
		}
		db.vehicles = append(db.vehicles, Vehicle{
			Constellation: v.Constellation,
			PRN:           v.PRN,
			Name:          v.Name,
			Launch:        launch,
		})
	}

	for _, r := range cdoc {
		db.regions = append(db.regions, Region{
			Constellation: r.Constellation,
			Ring:          r.Ring,
		})
	}

	return db, nil
}

// Default returns the process-wide database built from the embedded compiled
// tables. The first call builds the tables; concurrent first calls observe
// exactly one initialization and the same fully built database. The tables
// are never mutated or released afterwards.
var Default = sync.OnceValue(func() *Database {
	vehicles, err := compiledFS.ReadFile("compiled/vehicles.json")
	if err != nil {
		panic(fmt.Sprintf("embedded vehicle table unreadable: %v", err))
	}
	coverage, err := compiledFS.ReadFile("compiled/coverage.json")
	if err != nil {
		panic(fmt.Sprintf("embedded coverage table unreadable: %v", err))
	}

	db, err := Load(vehicles, coverage)
	if err != nil {
		panic(fmt.Sprintf("corrupt embedded SBAS database: %v", err))
	}
	return db
})
