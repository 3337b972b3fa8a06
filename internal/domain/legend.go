package domain

// ColorBand is one entry of a map legend.
type ColorBand struct {
	Color string `json:"color"`
	Label string `json:"label"`
}

// threshold pairs a strict lower bound with the band painted above it.
type threshold struct {
	above float64
	band  ColorBand
}

type scale struct {
	steps  []threshold // descending by above
	bottom ColorBand
}

var unclassified = ColorBand{Color: "#CCCCCC", Label: "no scale"}

var scales = map[Indicator]scale{
	Temperature: {
		steps: []threshold{
			{35, ColorBand{"#d73027", "> 35 °C (very hot)"}},
			{30, ColorBand{"#fc8d59", "30–35 °C (hot)"}},
			{25, ColorBand{"#fee090", "25–30 °C (moderate)"}},
			{20, ColorBand{"#e0f3f8", "20–25 °C (cool)"}},
		},
		bottom: ColorBand{"#91bfdb", "< 20 °C (cold)"},
	},
	Vegetation: {
		steps: []threshold{
			{0.8, ColorBand{"#1a9850", "> 0.8 (very dense vegetation)"}},
			{0.6, ColorBand{"#66bd63", "0.6–0.8 (dense vegetation)"}},
			{0.4, ColorBand{"#a6d96a", "0.4–0.6 (moderate vegetation)"}},
			{0.2, ColorBand{"#fdae61", "0.2–0.4 (sparse vegetation)"}},
		},
		bottom: ColorBand{"#d73027", "< 0.2 (bare soil/urban)"},
	},
	AirQuality: {
		steps: []threshold{
			{150, ColorBand{"#d73027", "> 150 µg/m³ (very unhealthy)"}},
			{100, ColorBand{"#fc8d59", "100–150 µg/m³ (unhealthy)"}},
			{50, ColorBand{"#fee090", "50–100 µg/m³ (moderate)"}},
			{25, ColorBand{"#e0f3f8", "25–50 µg/m³ (acceptable)"}},
		},
		bottom: ColorBand{"#91bfdb", "< 25 µg/m³ (good)"},
	},
}

// Classify returns the legend band for a reading. Bounds are strict: a
// temperature of exactly 35 falls in the 30–35 band.
func Classify(ind Indicator, value float64) ColorBand {
	s, ok := scales[ind]
	if !ok {
		return unclassified
	}
	for _, t := range s.steps {
		if value > t.above {
			return t.band
		}
	}
	return s.bottom
}

// Legend lists the bands of an indicator from highest to lowest.
func Legend(ind Indicator) []ColorBand {
	s, ok := scales[ind]
	if !ok {
		return nil
	}
	bands := make([]ColorBand, 0, len(s.steps)+1)
	for _, t := range s.steps {
		bands = append(bands, t.band)
	}
	return append(bands, s.bottom)
}

// LayerCell is one zone of a choropleth layer.
type LayerCell struct {
	Zone     string    `json:"zone"`
	Value    float64   `json:"value"`
	Unit     string    `json:"unit"`
	Fallback bool      `json:"fallback,omitempty"`
	Band     ColorBand `json:"band"`
}

// BuildLayer classifies every zone's reading for the indicator and year.
// Zones without a reading (or with a zero reading) show the indicator's
// MapFallback and are flagged.
func BuildLayer(zones []Zone, ind Indicator, year int) []LayerCell {
	cells := make([]LayerCell, 0, len(zones))
	for _, z := range zones {
		v, ok := z.Reading(ind, year)
		fallback := !ok || v == 0
		if fallback {
			v = ind.MapFallback()
		}
		cells = append(cells, LayerCell{
			Zone:     z.Name,
			Value:    v,
			Unit:     ind.Unit(),
			Fallback: fallback,
			Band:     Classify(ind, v),
		})
	}
	return cells
}
