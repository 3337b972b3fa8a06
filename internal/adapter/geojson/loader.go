// Package geojson reads the bundled indicator FeatureCollections into zones.
package geojson

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"strconv"

	"github.com/couchcryptid/urban-climate-scenarios/internal/domain"
)

//go:embed data/*.json
var bundled embed.FS

// Bundled returns the dataset shipped with the binary.
func Bundled() fs.FS {
	sub, err := fs.Sub(bundled, "data")
	if err != nil {
		panic(err) // the embed pattern guarantees the directory exists
	}
	return sub
}

// Source ties a dataset file to the feature property holding its series.
type Source struct {
	File      string
	Property  string
	Indicator domain.Indicator
}

// Sources are the files making up a dataset, one per indicator.
var Sources = []Source{
	{File: "heat_island_data.json", Property: "temperature", Indicator: domain.Temperature},
	{File: "vegetation_index.json", Property: "ndvi", Indicator: domain.Vegetation},
	{File: "air_quality_data.json", Property: "pm25", Indicator: domain.AirQuality},
}

// IssueKind classifies a skipped dataset entry.
type IssueKind int

const (
	IssueMissingName IssueKind = iota + 1
	IssueDuplicateZone
	IssueBadSeries
	IssueBadYear
	IssueNonNumeric
)

// Issue describes a reading or feature the loader skipped or overwrote.
type Issue struct {
	Kind    IssueKind
	File    string
	Feature int
	Zone    string
	Key     string
	Reason  string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s feature %d (%q) key %q: %s", i.File, i.Feature, i.Zone, i.Key, i.Reason)
}

type featureCollection struct {
	Type     string    `json:"type"`
	Features []feature `json:"features"`
}

type feature struct {
	Properties map[string]json.RawMessage `json:"properties"`
}

// Loader reads zones from a filesystem laid out like the bundled dataset.
type Loader struct {
	fsys   fs.FS
	logger *slog.Logger
}

// NewLoader creates a Loader over fsys. Use Bundled for the embedded data or
// os.DirFS for an exported dataset directory.
func NewLoader(fsys fs.FS, logger *slog.Logger) *Loader {
	return &Loader{fsys: fsys, logger: logger}
}

// Load returns every zone found across the dataset files. Skipped readings
// are logged but do not fail the load.
func (l *Loader) Load(ctx context.Context) ([]domain.Zone, error) {
	zones, issues, err := l.LoadWithIssues(ctx)
	if err != nil {
		return nil, err
	}
	for _, is := range issues {
		l.logger.Debug("skipped dataset entry",
			"file", is.File,
			"feature", is.Feature,
			"zone", is.Zone,
			"key", is.Key,
			"reason", is.Reason,
		)
	}
	l.logger.Info("dataset loaded", "zones", len(zones), "skipped", len(issues))
	return zones, nil
}

// LoadWithIssues is Load that also returns the entries it skipped. Features
// are merged by name across files, keeping first-seen order.
func (l *Loader) LoadWithIssues(ctx context.Context) ([]domain.Zone, []Issue, error) {
	var (
		zones  []domain.Zone
		issues []Issue
		index  = map[string]int{}
	)

	for _, src := range Sources {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		fc, err := l.readCollection(src.File)
		if err != nil {
			return nil, nil, err
		}

		inFile := map[string]bool{}
		for i, f := range fc.Features {
			name, ok := featureName(f)
			key := name
			if !ok {
				issues = append(issues, Issue{Kind: IssueMissingName, File: src.File, Feature: i, Key: "name", Reason: "missing name"})
				key = fmt.Sprintf("%s#%d", src.File, i)
			}
			if inFile[key] {
				issues = append(issues, Issue{Kind: IssueDuplicateZone, File: src.File, Feature: i, Zone: name, Key: "name", Reason: "duplicate zone in file"})
			}
			inFile[key] = true

			pos, seen := index[key]
			if !seen {
				pos = len(zones)
				index[key] = pos
				zones = append(zones, domain.Zone{Name: name})
			}

			series, seriesIssues := parseSeries(f.Properties[src.Property])
			for _, is := range seriesIssues {
				is.File, is.Feature, is.Zone = src.File, i, name
				issues = append(issues, is)
			}
			setSeries(&zones[pos], src.Indicator, series)
		}
	}

	return zones, issues, nil
}

func (l *Loader) readCollection(file string) (featureCollection, error) {
	data, err := fs.ReadFile(l.fsys, file)
	if err != nil {
		return featureCollection{}, fmt.Errorf("read %s: %w", file, err)
	}
	var fc featureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return featureCollection{}, fmt.Errorf("parse %s: %w", file, err)
	}
	if fc.Type != "FeatureCollection" {
		return featureCollection{}, fmt.Errorf("parse %s: expected FeatureCollection, got %q", file, fc.Type)
	}
	return fc, nil
}

func featureName(f feature) (string, bool) {
	raw, ok := f.Properties["name"]
	if !ok {
		return "", false
	}
	var name string
	if err := json.Unmarshal(raw, &name); err != nil || name == "" {
		return "", false
	}
	return name, true
}

// parseSeries decodes a {"YYYY": number} object. Keys that are not
// four-digit years and values that are not JSON numbers are reported and
// dropped.
func parseSeries(raw json.RawMessage) (map[int]float64, []Issue) {
	if len(raw) == 0 {
		return nil, nil
	}

	var entries map[string]any
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, []Issue{{Kind: IssueBadSeries, Reason: "series is not an object"}}
	}

	var issues []Issue
	series := make(map[int]float64, len(entries))
	for key, v := range entries {
		year, ok := parseYear(key)
		if !ok {
			issues = append(issues, Issue{Kind: IssueBadYear, Key: key, Reason: "not a four-digit year"})
			continue
		}
		n, ok := v.(float64)
		if !ok {
			issues = append(issues, Issue{Kind: IssueNonNumeric, Key: key, Reason: fmt.Sprintf("non-numeric value %v", v)})
			continue
		}
		series[year] = n
	}
	return series, issues
}

func parseYear(key string) (int, bool) {
	if len(key) != 4 {
		return 0, false
	}
	year, err := strconv.Atoi(key)
	if err != nil || year < 1000 {
		return 0, false
	}
	return year, true
}

func setSeries(z *domain.Zone, ind domain.Indicator, series map[int]float64) {
	if series == nil {
		return
	}
	switch ind {
	case domain.Temperature:
		z.Temperature = mergeSeries(z.Temperature, series)
	case domain.Vegetation:
		z.NDVI = mergeSeries(z.NDVI, series)
	case domain.AirQuality:
		z.PM25 = mergeSeries(z.PM25, series)
	}
}

// mergeSeries adds src into dst; a later duplicate feature overwrites
// earlier readings for the same year.
func mergeSeries(dst, src map[int]float64) map[int]float64 {
	if dst == nil {
		return src
	}
	for y, v := range src {
		dst[y] = v
	}
	return dst
}
