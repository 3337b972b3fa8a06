// Command simulate projects the bundled indicators under a set of policy
// levers and prints the scenario report.
//
// Usage:
//
//	go run ./cmd/simulate -green-roofs 100 -corridor-km 5 \
//	  -emission-reduction 10 -vegetation-program 10 -format text
package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/urban-climate-scenarios/internal/adapter/geojson"
	"github.com/couchcryptid/urban-climate-scenarios/internal/adapter/report"
	"github.com/couchcryptid/urban-climate-scenarios/internal/config"
	"github.com/couchcryptid/urban-climate-scenarios/internal/domain"
	"github.com/couchcryptid/urban-climate-scenarios/internal/observability"
	"github.com/couchcryptid/urban-climate-scenarios/internal/simulation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	var levers domain.Levers
	flag.Float64Var(&levers.GreenRoofs, "green-roofs", 100, "green-roof installations (0-500)")
	flag.Float64Var(&levers.CorridorKm, "corridor-km", 5, "new green corridors in km (0-30)")
	flag.Float64Var(&levers.EmissionReduction, "emission-reduction", 10, "traffic emission reduction in percent (0-50)")
	flag.Float64Var(&levers.VegetationProgram, "vegetation-program", 10, "vegetation program coverage increase in percent (0-50)")
	format := flag.String("format", "json", "output format: json or text")
	strict := flag.Bool("strict", cfg.StrictLevers, "reject levers outside their domains")
	flag.Parse()

	logger := observability.NewLogger(cfg)

	if err := run(cfg, logger, levers, *format, *strict); err != nil {
		logger.Error("simulation failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger, levers domain.Levers, format string, strict bool) error {
	outFormat, err := report.ParseFormat(format)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics := observability.NewMetrics()
	loader := geojson.NewLoader(datasetFS(cfg), logger)
	sim := simulation.New(loader, cfg.ReferenceYear, logger, metrics, simulation.WithStrictLevers(strict))

	if err := sim.Init(ctx); err != nil {
		flushMetrics(cfg, logger)
		return err
	}

	rep, err := sim.Evaluate(levers)
	flushMetrics(cfg, logger)
	if err != nil {
		return fmt.Errorf("evaluate scenario: %w", err)
	}

	logger.Info("scenario evaluated", "run_id", rep.RunID, "wellbeing_index", rep.Result.WellbeingIndex)
	return report.NewWriter(os.Stdout, outFormat, cfg.ReportLocale).Scenario(rep)
}

func datasetFS(cfg *config.Config) fs.FS {
	if cfg.DataDir != "" {
		return os.DirFS(cfg.DataDir)
	}
	return geojson.Bundled()
}

func flushMetrics(cfg *config.Config, logger *slog.Logger) {
	if cfg.MetricsFile == "" {
		return
	}
	if err := observability.WriteTextfile(cfg.MetricsFile); err != nil {
		logger.Error("metrics textfile write failed", "path", cfg.MetricsFile, "error", err)
	}
}
