package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for scenario runs.
type Metrics struct {
	ScenariosEvaluated prometheus.Counter
	LeversRejected     prometheus.Counter
	EvaluationDuration prometheus.Histogram
	WellbeingIndex     prometheus.Gauge

	// Dataset and baseline metrics.
	DatasetZones      prometheus.Gauge
	DatasetLoadErrors prometheus.Counter
	BaselineValue     *prometheus.GaugeVec   // labels: indicator={temperature,vegetation,airquality}
	BaselineCoverage  *prometheus.GaugeVec   // labels: indicator
	BaselineDefaults  *prometheus.CounterVec // labels: indicator
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.ScenariosEvaluated,
		m.LeversRejected,
		m.EvaluationDuration,
		m.WellbeingIndex,
		m.DatasetZones,
		m.DatasetLoadErrors,
		m.BaselineValue,
		m.BaselineCoverage,
		m.BaselineDefaults,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		ScenariosEvaluated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "urban_scenario",
			Name:      "scenarios_evaluated_total",
			Help:      "Total scenarios projected from a set of levers.",
		}),
		LeversRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "urban_scenario",
			Name:      "levers_rejected_total",
			Help:      "Scenarios refused because a lever was outside its domain (strict mode).",
		}),
		EvaluationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "urban_scenario",
			Name:      "evaluation_duration_seconds",
			Help:      "Duration of a single scenario evaluation.",
			Buckets:   []float64{0.000001, 0.00001, 0.0001, 0.001, 0.01},
		}),
		WellbeingIndex: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "urban_scenario",
			Name:      "wellbeing_index",
			Help:      "Well-being index of the most recent scenario (0-100).",
		}),
		DatasetZones: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "urban_scenario",
			Name:      "dataset_zones",
			Help:      "Number of zones in the loaded dataset.",
		}),
		DatasetLoadErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "urban_scenario",
			Name:      "dataset_load_errors_total",
			Help:      "Dataset loads that failed.",
		}),
		BaselineValue: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "urban_scenario",
			Name:      "baseline_value",
			Help:      "Reference-year city-wide mean per indicator.",
		}, []string{"indicator"}),
		BaselineCoverage: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "urban_scenario",
			Name:      "baseline_zones_reporting",
			Help:      "Zones with a reading for the reference year, per indicator.",
		}, []string{"indicator"}),
		BaselineDefaults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "urban_scenario",
			Name:      "baseline_defaults_total",
			Help:      "Baselines that fell back to the indicator default for lack of data.",
		}, []string{"indicator"}),
	}
}

// WriteTextfile dumps the default registry in the node exporter textfile
// format.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
