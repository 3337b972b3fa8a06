package simulation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/urban-climate-scenarios/internal/domain"
	"github.com/couchcryptid/urban-climate-scenarios/internal/observability"
	"github.com/google/uuid"
)

// ZoneSource supplies the indicator zones a baseline is computed from.
type ZoneSource interface {
	Load(ctx context.Context) ([]domain.Zone, error)
}

// Report is one evaluated scenario together with the inputs it was computed from.
type Report struct {
	RunID       string                `json:"run_id"`
	GeneratedAt time.Time             `json:"generated_at"`
	Baseline    domain.Baseline       `json:"baseline"`
	Levers      domain.Levers         `json:"levers"`
	Result      domain.ScenarioResult `json:"result"`
	Impact      []domain.ImpactBar    `json:"impact"`
}

// Simulator evaluates scenarios against a baseline computed once from a ZoneSource.
type Simulator struct {
	source  ZoneSource
	logger  *slog.Logger
	metrics *observability.Metrics
	year    int
	strict  bool

	zones    []domain.Zone
	baseline domain.Baseline
	ready    bool
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithStrictLevers rejects levers outside their domains instead of relying on
// output clamping.
func WithStrictLevers(strict bool) Option {
	return func(s *Simulator) { s.strict = strict }
}

// New creates a Simulator for the given reference year.
func New(source ZoneSource, year int, logger *slog.Logger, metrics *observability.Metrics, opts ...Option) *Simulator {
	s := &Simulator{
		source:  source,
		logger:  logger,
		metrics: metrics,
		year:    year,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Init loads the zones and computes the baseline. It must succeed before
// Evaluate is called.
func (s *Simulator) Init(ctx context.Context) error {
	zones, err := s.source.Load(ctx)
	if err != nil {
		s.metrics.DatasetLoadErrors.Inc()
		return fmt.Errorf("load zones: %w", err)
	}

	s.zones = zones
	s.baseline = domain.ComputeBaseline(zones, s.year)
	s.ready = true

	s.metrics.DatasetZones.Set(float64(len(zones)))
	for _, ind := range domain.Indicators {
		covered := domain.Coverage(zones, ind, s.year)
		s.metrics.BaselineValue.WithLabelValues(ind.String()).Set(s.baseline.Value(ind))
		s.metrics.BaselineCoverage.WithLabelValues(ind.String()).Set(float64(covered))
		if covered == 0 {
			s.metrics.BaselineDefaults.WithLabelValues(ind.String()).Inc()
			s.logger.Warn("no readings for reference year, using default",
				"indicator", ind.String(),
				"year", s.year,
				"default", ind.Default(),
			)
		}
	}

	s.logger.Info("baseline computed",
		"year", s.year,
		"zones", len(zones),
		"temperature", s.baseline.Temperature,
		"ndvi", s.baseline.NDVI,
		"pm25", s.baseline.PM25,
	)
	return nil
}

// CheckReadiness returns nil once the baseline has been computed.
func (s *Simulator) CheckReadiness(_ context.Context) error {
	if !s.ready {
		return errors.New("baseline has not been computed yet")
	}
	return nil
}

// Baseline returns the computed baseline.
func (s *Simulator) Baseline() domain.Baseline {
	return s.baseline
}

// Zones returns the loaded zones.
func (s *Simulator) Zones() []domain.Zone {
	return s.zones
}

// Evaluate projects the baseline under the levers. In strict mode levers
// outside their domains are rejected with an error wrapping
// domain.ErrLeverOutOfRange.
func (s *Simulator) Evaluate(levers domain.Levers) (Report, error) {
	if err := s.CheckReadiness(context.Background()); err != nil {
		return Report{}, err
	}

	if err := levers.Validate(); err != nil {
		if s.strict {
			s.metrics.LeversRejected.Inc()
			return Report{}, err
		}
		s.logger.Debug("levers outside domain, outputs will be clamped", "error", err)
	}

	start := time.Now()
	result := domain.ComputeScenario(s.baseline, levers)
	s.metrics.EvaluationDuration.Observe(time.Since(start).Seconds())
	s.metrics.ScenariosEvaluated.Inc()
	s.metrics.WellbeingIndex.Set(result.WellbeingIndex)

	return Report{
		RunID:       uuid.NewString(),
		GeneratedAt: clock.Now().UTC(),
		Baseline:    s.baseline,
		Levers:      levers,
		Result:      result,
		Impact:      domain.ImpactSeries(result),
	}, nil
}
