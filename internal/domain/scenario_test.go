package domain

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const floatTolerance = 1e-9

var referenceBaseline = Baseline{Year: 2023, Temperature: 30, NDVI: 0.3, PM25: 60}

func TestComputeScenario_ZeroLeversReproduceBaseline(t *testing.T) {
	bases := []Baseline{
		referenceBaseline,
		{Year: 2023, Temperature: 34.2, NDVI: 0.12, PM25: 102},
		{Year: 2020, Temperature: 0, NDVI: 0, PM25: 0},
	}

	for _, base := range bases {
		result := ComputeScenario(base, Levers{})

		assert.Equal(t, ScenarioResult{
			NDVI:        base.NDVI,
			Temperature: base.Temperature,
			PM25:        base.PM25,
		}, result)
	}
}

func TestComputeScenario_ReferenceScenario(t *testing.T) {
	levers := Levers{GreenRoofs: 100, CorridorKm: 5, EmissionReduction: 10, VegetationProgram: 10}

	got := ComputeScenario(referenceBaseline, levers)

	want := ScenarioResult{
		VegetationDelta:           0.055,
		NDVI:                      0.355,
		Temperature:               29.34,
		PM25:                      53.682,
		TemperatureImprovementPct: 2.2,
		NDVIImprovementPct:        0.055 / 0.3 * 100,
		PM25ImprovementPct:        10.53,
		WellbeingIndex:            0.4*2.2 + 0.3*(0.055/0.3*100) + 0.3*10.53,
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("ComputeScenario mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeScenario_DoesNotMutateInputs(t *testing.T) {
	base := referenceBaseline
	levers := Levers{GreenRoofs: 250, CorridorKm: 12, EmissionReduction: 30, VegetationProgram: 40}
	baseCopy, leversCopy := base, levers

	ComputeScenario(base, levers)

	assert.Equal(t, baseCopy, base)
	assert.Equal(t, leversCopy, levers)
}

func TestVegetationDelta_Additive(t *testing.T) {
	tests := []struct {
		name string
		a, b Levers
	}{
		{"roofs", Levers{GreenRoofs: 120}, Levers{GreenRoofs: 80}},
		{"corridors", Levers{CorridorKm: 3.5}, Levers{CorridorKm: 11}},
		{"program", Levers{VegetationProgram: 7}, Levers{VegetationProgram: 21}},
		{"mixed", Levers{GreenRoofs: 100}, Levers{CorridorKm: 5, VegetationProgram: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum := Levers{
				GreenRoofs:        tt.a.GreenRoofs + tt.b.GreenRoofs,
				CorridorKm:        tt.a.CorridorKm + tt.b.CorridorKm,
				VegetationProgram: tt.a.VegetationProgram + tt.b.VegetationProgram,
			}

			// NDVI stays well inside [0, 1] for these levers, so the
			// projection is the unclamped baseline plus delta.
			gainA := ComputeScenario(referenceBaseline, tt.a).NDVI - referenceBaseline.NDVI
			gainB := ComputeScenario(referenceBaseline, tt.b).NDVI - referenceBaseline.NDVI
			gainSum := ComputeScenario(referenceBaseline, sum).NDVI - referenceBaseline.NDVI

			assert.InDelta(t, gainA+gainB, gainSum, floatTolerance)
			assert.InDelta(t, VegetationDelta(tt.a)+VegetationDelta(tt.b), VegetationDelta(sum), floatTolerance)
		})
	}
}

func TestVegetationDelta_Contributions(t *testing.T) {
	assert.InDelta(t, 0.01, VegetationDelta(Levers{GreenRoofs: 100}), floatTolerance)
	assert.InDelta(t, 0.005, VegetationDelta(Levers{CorridorKm: 1}), floatTolerance)
	assert.InDelta(t, 0.2, VegetationDelta(Levers{VegetationProgram: 100}), floatTolerance)
	assert.Zero(t, VegetationDelta(Levers{EmissionReduction: 50}))
}

func TestComputeScenario_ProjectionBoundsInDomain(t *testing.T) {
	bases := []Baseline{
		referenceBaseline,
		{Temperature: 45, NDVI: 0.95, PM25: 900},
		{Temperature: -10, NDVI: 0.01, PM25: 1},
	}

	for _, base := range bases {
		for roofs := 0.0; roofs <= MaxGreenRoofs; roofs += 125 {
			for km := 0.0; km <= MaxCorridorKm; km += 7.5 {
				for em := 0.0; em <= MaxEmissionReduction; em += 12.5 {
					for prog := 0.0; prog <= MaxVegetationProgram; prog += 12.5 {
						r := ComputeScenario(base, Levers{roofs, km, em, prog})
						assertResultInBounds(t, r)
					}
				}
			}
		}
	}
}

func TestComputeScenario_OutOfDomainLeversStayClamped(t *testing.T) {
	tests := []struct {
		name   string
		levers Levers
	}{
		{"huge corridor", Levers{CorridorKm: 10000}},
		{"huge everything", Levers{GreenRoofs: 1e6, CorridorKm: 1e4, EmissionReduction: 1e3, VegetationProgram: 1e3}},
		{"emission cut above 125 percent", Levers{EmissionReduction: 200}},
		{"negative levers", Levers{GreenRoofs: -500, CorridorKm: -30, EmissionReduction: -1000, VegetationProgram: -50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ComputeScenario(referenceBaseline, tt.levers)
			assertResultInBounds(t, r)
		})
	}

	t.Run("huge corridor saturates", func(t *testing.T) {
		r := ComputeScenario(referenceBaseline, Levers{CorridorKm: 10000})

		assert.Equal(t, 1.0, r.NDVI)
		assert.Equal(t, -50.0, r.Temperature)
		assert.Equal(t, 0.0, r.PM25)
		assert.Equal(t, 100.0, r.TemperatureImprovementPct)
		assert.InDelta(t, 0.7/0.3*100, r.NDVIImprovementPct, floatTolerance)
		assert.Equal(t, 100.0, r.PM25ImprovementPct)
		assert.Equal(t, 100.0, r.WellbeingIndex)
	})

	t.Run("negative levers never report improvement", func(t *testing.T) {
		r := ComputeScenario(referenceBaseline, Levers{CorridorKm: -10, EmissionReduction: -20})

		assert.Zero(t, r.TemperatureImprovementPct)
		assert.Zero(t, r.NDVIImprovementPct)
		assert.Zero(t, r.PM25ImprovementPct)
		assert.Zero(t, r.WellbeingIndex)
	})
}

func TestComputeScenario_NDVIImprovementCeiling(t *testing.T) {
	base := Baseline{Temperature: 30, NDVI: 0.05, PM25: 60}

	r := ComputeScenario(base, Levers{CorridorKm: 1000})

	assert.Equal(t, 1.0, r.NDVI)
	assert.Equal(t, 300.0, r.NDVIImprovementPct)
}

func TestComputeScenario_NonPositiveBaselineGuards(t *testing.T) {
	base := Baseline{Temperature: -5, NDVI: 0, PM25: 0}
	levers := Levers{GreenRoofs: 300, CorridorKm: 10, EmissionReduction: 40, VegetationProgram: 30}

	r := ComputeScenario(base, levers)

	assert.Zero(t, r.TemperatureImprovementPct)
	assert.Zero(t, r.NDVIImprovementPct)
	assert.Zero(t, r.PM25ImprovementPct)
	assert.Zero(t, r.WellbeingIndex)
	assert.Less(t, r.Temperature, base.Temperature)
}

func TestLevers_Validate(t *testing.T) {
	t.Run("in domain", func(t *testing.T) {
		require.NoError(t, Levers{}.Validate())
		require.NoError(t, Levers{MaxGreenRoofs, MaxCorridorKm, MaxEmissionReduction, MaxVegetationProgram}.Validate())
		require.NoError(t, Levers{GreenRoofs: 12.5, CorridorKm: 0.3}.Validate())
	})

	t.Run("above maximum", func(t *testing.T) {
		err := Levers{CorridorKm: 31}.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrLeverOutOfRange))
		assert.Contains(t, err.Error(), "corridor_km")
	})

	t.Run("negative", func(t *testing.T) {
		err := Levers{GreenRoofs: -1, EmissionReduction: -2}.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrLeverOutOfRange)
		assert.Contains(t, err.Error(), "green_roofs")
		assert.Contains(t, err.Error(), "emission_reduction")
	})
}

func TestImpactSeries(t *testing.T) {
	r := ComputeScenario(referenceBaseline, Levers{GreenRoofs: 100, CorridorKm: 5, EmissionReduction: 10, VegetationProgram: 10})

	bars := ImpactSeries(r)

	require.Len(t, bars, 4)
	assert.Equal(t, r.TemperatureImprovementPct, bars[0].Value)
	assert.Equal(t, r.NDVIImprovementPct, bars[1].Value)
	assert.Equal(t, r.PM25ImprovementPct, bars[2].Value)
	assert.Equal(t, "Well-being", bars[3].Label)
	assert.Equal(t, r.WellbeingIndex, bars[3].Value)
}

func assertResultInBounds(t *testing.T, r ScenarioResult) {
	t.Helper()
	assert.GreaterOrEqual(t, r.NDVI, 0.0)
	assert.LessOrEqual(t, r.NDVI, 1.0)
	assert.GreaterOrEqual(t, r.Temperature, -50.0)
	assert.LessOrEqual(t, r.Temperature, 80.0)
	assert.GreaterOrEqual(t, r.PM25, 0.0)
	assert.LessOrEqual(t, r.PM25, 1000.0)
	assert.GreaterOrEqual(t, r.TemperatureImprovementPct, 0.0)
	assert.LessOrEqual(t, r.TemperatureImprovementPct, 100.0)
	assert.GreaterOrEqual(t, r.NDVIImprovementPct, 0.0)
	assert.LessOrEqual(t, r.NDVIImprovementPct, 300.0)
	assert.GreaterOrEqual(t, r.PM25ImprovementPct, 0.0)
	assert.LessOrEqual(t, r.PM25ImprovementPct, 100.0)
	assert.GreaterOrEqual(t, r.WellbeingIndex, 0.0)
	assert.LessOrEqual(t, r.WellbeingIndex, 100.0)
}
