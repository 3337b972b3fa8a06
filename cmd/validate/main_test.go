package main

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/couchcryptid/urban-climate-scenarios/internal/adapter/geojson"
	"github.com/couchcryptid/urban-climate-scenarios/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_BundledDatasetPasses(t *testing.T) {
	var out bytes.Buffer

	code := run(&out, geojson.Bundled(), domain.DefaultReferenceYear)

	assert.Equal(t, 0, code, out.String())
	assert.Contains(t, out.String(), "All validations passed.")
	assert.Contains(t, out.String(), "Zones: 7")
	assert.Contains(t, out.String(), "(warn)")
}

func TestRun_FailsOnBadDataset(t *testing.T) {
	fsys := fstest.MapFS{
		"heat_island_data.json": {Data: []byte(`{"type":"FeatureCollection","features":[
			{"type":"Feature","properties":{"name":"Centro","temperature":{"2023":135}}}
		]}`)},
		"vegetation_index.json": {Data: []byte(`{"type":"FeatureCollection","features":[
			{"type":"Feature","properties":{"name":"Centro","ndvi":{"2022":0.3,"year":0.2}}}
		]}`)},
		"air_quality_data.json": {Data: []byte(`{"type":"FeatureCollection","features":[
			{"type":"Feature","properties":{"name":"Centro","pm25":{"2023":40}}}
		]}`)},
	}
	var out bytes.Buffer

	code := run(&out, fsys, 2023)

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "Validation FAILED.")
	assert.Contains(t, out.String(), "outside [-50, 80]")
	assert.Contains(t, out.String(), "not a four-digit year")
	assert.Contains(t, out.String(), "vegetation: no zone reports 2023")
}

func TestRun_MissingFile(t *testing.T) {
	var out bytes.Buffer

	code := run(&out, fstest.MapFS{}, 2023)

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "FATAL: load dataset")
}

func TestValidateCoverage(t *testing.T) {
	zones := []domain.Zone{
		{Name: "A", Temperature: map[int]float64{2023: 30}, NDVI: map[int]float64{2023: 0.3}, PM25: map[int]float64{2023: 50}},
		{Name: "B", Temperature: map[int]float64{2023: 31}, PM25: map[int]float64{2023: 55}},
	}

	p := validateCoverage(zones, 2023)

	require.True(t, p.passed())
	assert.Equal(t, []string{`vegetation: "B" has no 2023 reading`}, p.warnings)
}

func TestValidateRanges(t *testing.T) {
	zones := []domain.Zone{
		{Name: "A", NDVI: map[int]float64{2023: 1.2}, PM25: map[int]float64{2023: -1}},
	}

	p := validateRanges(zones)

	assert.False(t, p.passed())
	assert.Len(t, p.errors, 2)
}
