package domain

import (
	"errors"
	"fmt"
	"math"
)

// ErrLeverOutOfRange is wrapped by Levers.Validate for values outside a
// lever's domain.
var ErrLeverOutOfRange = errors.New("lever out of range")

// Lever domains as exposed by the scenario controls.
const (
	MaxGreenRoofs        = 500
	MaxCorridorKm        = 30
	MaxEmissionReduction = 50
	MaxVegetationProgram = 50
)

// Model coefficients.
const (
	ndviPerHundredRoofs        = 0.01
	ndviPerCorridorKm          = 0.005
	ndviPerFullProgram         = 0.2
	coolingPerNDVI             = -12.0
	pm25PerEmissionPoint       = 0.8
	pm25ReductionPerNDVI       = 0.5
	wellbeingTemperatureWeight = 0.4
	wellbeingNDVIWeight        = 0.3
	wellbeingPM25Weight        = 0.3
)

// Levers are the policy interventions of a scenario.
type Levers struct {
	GreenRoofs        float64 `json:"green_roofs"`        // installations
	CorridorKm        float64 `json:"corridor_km"`        // km of new corridor
	EmissionReduction float64 `json:"emission_reduction"` // % cut in traffic emissions
	VegetationProgram float64 `json:"vegetation_program"` // % increase in program coverage
}

// Validate reports levers outside their domains. ComputeScenario does not
// call it; out-of-domain levers are otherwise handled by output clamping.
func (l Levers) Validate() error {
	checks := []struct {
		name  string
		value float64
		max   float64
	}{
		{"green_roofs", l.GreenRoofs, MaxGreenRoofs},
		{"corridor_km", l.CorridorKm, MaxCorridorKm},
		{"emission_reduction", l.EmissionReduction, MaxEmissionReduction},
		{"vegetation_program", l.VegetationProgram, MaxVegetationProgram},
	}
	var errs []error
	for _, c := range checks {
		if math.IsNaN(c.value) || c.value < 0 || c.value > c.max {
			errs = append(errs, fmt.Errorf("%w: %s=%g not in [0, %g]", ErrLeverOutOfRange, c.name, c.value, c.max))
		}
	}
	return errors.Join(errs...)
}

// ScenarioResult is the projected state of the city under a set of levers.
type ScenarioResult struct {
	VegetationDelta float64 `json:"vegetation_delta"`

	NDVI        float64 `json:"ndvi"`
	Temperature float64 `json:"temperature"`
	PM25        float64 `json:"pm25"`

	TemperatureImprovementPct float64 `json:"temperature_improvement_pct"`
	NDVIImprovementPct        float64 `json:"ndvi_improvement_pct"`
	PM25ImprovementPct        float64 `json:"pm25_improvement_pct"`

	WellbeingIndex float64 `json:"wellbeing_index"`
}

// VegetationDelta is the absolute NDVI gain produced by the levers.
func VegetationDelta(l Levers) float64 {
	fromRoofs := (l.GreenRoofs / 100) * ndviPerHundredRoofs
	fromCorridors := l.CorridorKm * ndviPerCorridorKm
	fromProgram := (l.VegetationProgram / 100) * ndviPerFullProgram
	return fromRoofs + fromCorridors + fromProgram
}

// ComputeScenario projects the baseline under the given levers. It is a pure
// function of its arguments.
func ComputeScenario(base Baseline, l Levers) ScenarioResult {
	delta := VegetationDelta(l)

	ndvi := clamp(base.NDVI+delta, 0, 1)
	temp := clamp(base.Temperature+coolingPerNDVI*delta, -50, 80)

	emissionFactor := 1 - (l.EmissionReduction/100)*pm25PerEmissionPoint
	vegetationFactor := 1 - delta*pm25ReductionPerNDVI
	pm25 := clamp(base.PM25*emissionFactor*vegetationFactor, 0, 1000)

	tempPct := improvementPct(base.Temperature, base.Temperature-temp, 100)
	ndviPct := improvementPct(base.NDVI, ndvi-base.NDVI, 300)
	pm25Pct := improvementPct(base.PM25, base.PM25-pm25, 100)

	wellbeing := clamp(
		wellbeingTemperatureWeight*tempPct+wellbeingNDVIWeight*ndviPct+wellbeingPM25Weight*pm25Pct,
		0, 100,
	)

	return ScenarioResult{
		VegetationDelta:           delta,
		NDVI:                      ndvi,
		Temperature:               temp,
		PM25:                      pm25,
		TemperatureImprovementPct: tempPct,
		NDVIImprovementPct:        ndviPct,
		PM25ImprovementPct:        pm25Pct,
		WellbeingIndex:            wellbeing,
	}
}

// improvementPct is gain/base as a percentage clamped to [0, ceiling].
// A non-positive base yields 0.
func improvementPct(base, gain, ceiling float64) float64 {
	if base <= 0 {
		return 0
	}
	return clamp(gain/base*100, 0, ceiling)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// ImpactBar is one bar of the scenario impact chart.
type ImpactBar struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ImpactSeries lists the chart bars for a result: the three improvement
// percentages followed by the well-being index.
func ImpactSeries(r ScenarioResult) []ImpactBar {
	return []ImpactBar{
		{Label: "Temp ↓%", Value: r.TemperatureImprovementPct},
		{Label: "NDVI ↑%", Value: r.NDVIImprovementPct},
		{Label: "PM2.5 ↓%", Value: r.PM25ImprovementPct},
		{Label: "Well-being", Value: r.WellbeingIndex},
	}
}
