package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/signalsfoundry/gnss/sbas"
)

func writeTemp(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestCompileAuthoredSources(t *testing.T) {
	vehicles, err := compileVehicles("../../data/sbas_vehicles.json")
	if err != nil {
		t.Fatalf("compileVehicles: %v", err)
	}
	regions, err := compileCoverage("../../data/sbas_coverage.geojson")
	if err != nil {
		t.Fatalf("compileCoverage: %v", err)
	}

	vb, err := json.Marshal(vehicles)
	if err != nil {
		t.Fatalf("marshal vehicles: %v", err)
	}
	rb, err := json.Marshal(regions)
	if err != nil {
		t.Fatalf("marshal regions: %v", err)
	}

	db, err := sbas.Load(vb, rb)
	if err != nil {
		t.Fatalf("Load compiled output: %v", err)
	}
	if db.VehicleCount() != len(vehicles) || db.RegionCount() != len(regions) {
		t.Fatalf("compiled counts = %d/%d, source counts = %d/%d",
			db.VehicleCount(), db.RegionCount(), len(vehicles), len(regions))
	}
}

func TestCompileVehiclesRejectsBadRecords(t *testing.T) {
	cases := []struct {
		name     string
		contents string
		wantErr  string
	}{
		{
			name:     "UnknownTag",
			contents: `[{"constellation":"XYZ","prn":123,"name":"SAT","launch":"2014-03-22"}]`,
			wantErr:  "unknown constellation",
		},
		{
			name:     "NotSBAS",
			contents: `[{"constellation":"GPS","prn":123,"name":"SAT","launch":"2014-03-22"}]`,
			wantErr:  "not an augmentation system",
		},
		{
			name:     "PRNOutOfRange",
			contents: `[{"constellation":"EGNOS","prn":23,"name":"SAT","launch":"2014-03-22"}]`,
			wantErr:  "out of SBAS range",
		},
		{
			name:     "MissingName",
			contents: `[{"constellation":"EGNOS","prn":123,"name":"","launch":"2014-03-22"}]`,
			wantErr:  "missing name",
		},
		{
			name:     "BadLaunchDate",
			contents: `[{"constellation":"EGNOS","prn":123,"name":"SAT","launch":"22/03/2014"}]`,
			wantErr:  "launch date",
		},
		{
			name:     "Empty",
			contents: `[]`,
			wantErr:  "empty",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeTemp(t, "vehicles.json", tc.contents)
			_, err := compileVehicles(path)
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error = %v, want containing %q", err, tc.wantErr)
			}
		})
	}
}

func TestCompileCoverageRejectsBadFeatures(t *testing.T) {
	const open = `{"type":"FeatureCollection","features":[{"type":"Feature","properties":{"name":"EGNOS"},"geometry":{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,1]]]}}]}`
	const unnamed = `{"type":"FeatureCollection","features":[{"type":"Feature","properties":{},"geometry":{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,1],[0,0]]]}}]}`
	const notSBAS = `{"type":"FeatureCollection","features":[{"type":"Feature","properties":{"name":"GPS"},"geometry":{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,1],[0,0]]]}}]}`
	const point = `{"type":"FeatureCollection","features":[{"type":"Feature","properties":{"name":"EGNOS"},"geometry":{"type":"Point","coordinates":[0,0]}}]}`
	const holes = `{"type":"FeatureCollection","features":[{"type":"Feature","properties":{"name":"EGNOS"},"geometry":{"type":"Polygon","coordinates":[[[0,0],[9,0],[9,9],[0,9],[0,0]],[[1,1],[2,1],[2,2],[1,2],[1,1]]]}}]}`

	cases := []struct {
		name     string
		contents string
		wantErr  string
	}{
		{"OpenRing", open, "closed"},
		{"MissingName", unnamed, "missing name"},
		{"NotSBAS", notSBAS, "not an augmentation system"},
		{"NotAPolygon", point, "want Polygon"},
		{"InnerRings", holes, "single outer ring"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeTemp(t, "coverage.geojson", tc.contents)
			_, err := compileCoverage(path)
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error = %v, want containing %q", err, tc.wantErr)
			}
		})
	}
}

func TestCompileCoveragePreservesOrder(t *testing.T) {
	regions, err := compileCoverage("../../data/sbas_coverage.geojson")
	if err != nil {
		t.Fatalf("compileCoverage: %v", err)
	}
	if len(regions) < 2 {
		t.Fatalf("expected several regions, got %d", len(regions))
	}
	if regions[0].Constellation != "WAAS" || regions[1].Constellation != "EGNOS" {
		t.Fatalf("region order = %s, %s; want WAAS, EGNOS first", regions[0].Constellation, regions[1].Constellation)
	}
}
