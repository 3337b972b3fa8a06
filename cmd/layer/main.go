// Command layer prints the choropleth classification of every zone for one
// indicator and year.
//
// Usage:
//
//	go run ./cmd/layer -indicator vegetation -year 2021 -format text
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/couchcryptid/urban-climate-scenarios/internal/adapter/geojson"
	"github.com/couchcryptid/urban-climate-scenarios/internal/adapter/report"
	"github.com/couchcryptid/urban-climate-scenarios/internal/config"
	"github.com/couchcryptid/urban-climate-scenarios/internal/domain"
	"github.com/couchcryptid/urban-climate-scenarios/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	indicator := flag.String("indicator", "temperature", "layer: temperature, vegetation or airquality")
	year := flag.Int("year", cfg.ReferenceYear, "year to display")
	format := flag.String("format", "text", "output format: json or text")
	flag.Parse()

	logger := observability.NewLogger(cfg)

	if err := run(cfg, logger, *indicator, *year, *format); err != nil {
		logger.Error("layer failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger, indicator string, year int, format string) error {
	ind, err := domain.ParseIndicator(indicator)
	if err != nil {
		return err
	}
	outFormat, err := report.ParseFormat(format)
	if err != nil {
		return err
	}

	fsys := geojson.Bundled()
	if cfg.DataDir != "" {
		fsys = os.DirFS(cfg.DataDir)
	}
	zones, err := geojson.NewLoader(fsys, logger).Load(context.Background())
	if err != nil {
		return err
	}

	cells := domain.BuildLayer(zones, ind, year)
	return report.NewWriter(os.Stdout, outFormat, cfg.ReportLocale).Layer(ind, year, cells)
}
