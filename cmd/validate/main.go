// Command validate performs integrity checks on an indicator dataset before
// it is bundled or pointed to with DATA_DIR: parseability, zone naming, value
// ranges, and reference-year coverage per indicator.
//
// Usage:
//
//	go run ./cmd/validate -data-dir exports/2024-06 -year 2023
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/couchcryptid/urban-climate-scenarios/internal/adapter/geojson"
	"github.com/couchcryptid/urban-climate-scenarios/internal/domain"
)

func main() {
	dataDir := flag.String("data-dir", "", "dataset directory (default: bundled dataset)")
	year := flag.Int("year", domain.DefaultReferenceYear, "reference year that must be covered")
	flag.Parse()

	fsys := geojson.Bundled()
	if *dataDir != "" {
		fsys = os.DirFS(*dataDir)
	}

	os.Exit(run(os.Stdout, fsys, *year))
}

func run(out io.Writer, fsys fs.FS, year int) int {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	fmt.Fprintln(out, "=== Indicator Dataset Validation ===")
	fmt.Fprintln(out)

	zones, issues, err := geojson.NewLoader(fsys, logger).LoadWithIssues(context.Background())
	if err != nil {
		fmt.Fprintf(out, "FATAL: load dataset: %v\n", err)
		return 1
	}

	phases := []*phase{
		validateStructure(issues),
		validateReadings(issues),
		validateRanges(zones),
		validateCoverage(zones, year),
	}

	allPassed := true
	for _, p := range phases {
		status := "PASS"
		if !p.passed() {
			status = fmt.Sprintf("FAIL (%d errors)", len(p.errors))
			allPassed = false
		}
		if len(p.warnings) > 0 {
			status += fmt.Sprintf(", %d warnings", len(p.warnings))
		}
		fmt.Fprintf(out, "  %-36s %s\n", p.name, status)
	}

	fmt.Fprintln(out)
	base := domain.ComputeBaseline(zones, year)
	fmt.Fprintf(out, "Zones: %d, baseline %d: temperature %.2f, ndvi %.3f, pm25 %.1f\n",
		len(zones), year, base.Temperature, base.NDVI, base.PM25)

	for _, p := range phases {
		if len(p.errors) == 0 && len(p.warnings) == 0 {
			continue
		}
		fmt.Fprintf(out, "\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Fprintf(out, "  [%d] %s\n", i+1, e)
		}
		for _, w := range p.warnings {
			fmt.Fprintf(out, "  (warn) %s\n", w)
		}
	}

	if allPassed {
		fmt.Fprintln(out, "\nAll validations passed.")
		return 0
	}
	fmt.Fprintln(out, "\nValidation FAILED.")
	return 1
}
