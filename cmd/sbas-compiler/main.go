// Command sbas-compiler turns the authored SBAS vehicle and coverage source
// files into the compact tables embedded by the sbas package. It validates
// every record and refuses to emit anything when the source is malformed.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/signalsfoundry/gnss/constellation"
	"github.com/signalsfoundry/gnss/internal/logging"
	"github.com/signalsfoundry/gnss/sbas"
)

const launchLayout = "2006-01-02"

type vehicleRecord struct {
	Constellation string `json:"constellation"`
	PRN           uint16 `json:"prn"`
	Name          string `json:"name"`
	Launch        string `json:"launch"`
}

type regionRecord struct {
	Constellation string   `json:"constellation"`
	Ring          orb.Ring `json:"ring"`
}

func main() {
	vehiclesPath := flag.String("vehicles", "data/sbas_vehicles.json", "Path to the authored vehicle table")
	coveragePath := flag.String("coverage", "data/sbas_coverage.geojson", "Path to the authored coverage GeoJSON")
	outDir := flag.String("out", "sbas/compiled", "Directory the compiled tables are written to")
	flag.Parse()

	log := logging.NewFromEnv()
	ctx := context.Background()

	vehicles, err := compileVehicles(*vehiclesPath)
	if err != nil {
		log.Error(ctx, "vehicle table rejected", logging.String("path", *vehiclesPath), logging.Err(err))
		os.Exit(1)
	}

	regions, err := compileCoverage(*coveragePath)
	if err != nil {
		log.Error(ctx, "coverage table rejected", logging.String("path", *coveragePath), logging.Err(err))
		os.Exit(1)
	}

	vehicleBytes, err := json.Marshal(vehicles)
	if err != nil {
		log.Error(ctx, "encode vehicle table", logging.Err(err))
		os.Exit(1)
	}
	regionBytes, err := json.Marshal(regions)
	if err != nil {
		log.Error(ctx, "encode coverage table", logging.Err(err))
		os.Exit(1)
	}

	// round-trip through the loader before writing anything
	if _, err := sbas.Load(vehicleBytes, regionBytes); err != nil {
		log.Error(ctx, "compiled tables failed self check", logging.Err(err))
		os.Exit(1)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Error(ctx, "create output directory", logging.String("dir", *outDir), logging.Err(err))
		os.Exit(1)
	}
	if err := os.WriteFile(filepath.Join(*outDir, "vehicles.json"), vehicleBytes, 0o644); err != nil {
		log.Error(ctx, "write vehicle table", logging.Err(err))
		os.Exit(1)
	}
	if err := os.WriteFile(filepath.Join(*outDir, "coverage.json"), regionBytes, 0o644); err != nil {
		log.Error(ctx, "write coverage table", logging.Err(err))
		os.Exit(1)
	}

	log.Info(ctx, "compiled SBAS tables",
		logging.String("dir", *outDir),
		logging.Int("vehicles", len(vehicles)),
		logging.Int("regions", len(regions)),
	)
}

// compileVehicles reads and validates the authored vehicle table. PRN numbers
// carry the full SBAS value, so anything at or below 100 is a typo.
func compileVehicles(path string) ([]vehicleRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var records []vehicleRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode vehicle table: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("vehicle table is empty")
	}

	for i, rec := range records {
		tag, err := constellation.Parse(rec.Constellation)
		if err != nil {
			return nil, fmt.Errorf("vehicle %d: %w", i, err)
		}
		if !tag.IsSBAS() {
			return nil, fmt.Errorf("vehicle %d: %q is not an augmentation system", i, rec.Constellation)
		}
		if rec.PRN <= 100 {
			return nil, fmt.Errorf("vehicle %d: PRN %d out of SBAS range", i, rec.PRN)
		}
		if rec.Name == "" {
			return nil, fmt.Errorf("vehicle %d: missing name", i)
		}
		if _, err := time.Parse(launchLayout, rec.Launch); err != nil {
			return nil, fmt.Errorf("vehicle %d: launch date %q: %w", i, rec.Launch, err)
		}
	}
	return records, nil
}

// compileCoverage reads the authored GeoJSON and flattens each feature into
// a tagged ring. Feature order is preserved: selection walks regions in this
// order and the first containing region wins.
func compileCoverage(path string) ([]regionRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("decode coverage GeoJSON: %w", err)
	}
	if len(fc.Features) == 0 {
		return nil, fmt.Errorf("coverage collection is empty")
	}

	regions := make([]regionRecord, 0, len(fc.Features))
	for i, feature := range fc.Features {
		name := feature.Properties.MustString("name", "")
		if name == "" {
			return nil, fmt.Errorf("feature %d: missing name property", i)
		}
		tag, err := constellation.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("feature %d: %w", i, err)
		}
		if !tag.IsSBAS() {
			return nil, fmt.Errorf("feature %d: %q is not an augmentation system", i, name)
		}

		polygon, ok := feature.Geometry.(orb.Polygon)
		if !ok {
			return nil, fmt.Errorf("feature %d (%s): geometry is %T, want Polygon", i, name, feature.Geometry)
		}
		if len(polygon) != 1 {
			return nil, fmt.Errorf("feature %d (%s): %d rings, want a single outer ring", i, name, len(polygon))
		}
		ring := polygon[0]
		if len(ring) < 4 || !ring.Closed() {
			return nil, fmt.Errorf("feature %d (%s): ring must be closed with at least 4 vertices", i, name)
		}

		regions = append(regions, regionRecord{Constellation: name, Ring: ring})
	}
	return regions, nil
}
