package domain

// DefaultReferenceYear is the year the bundled dataset is summarised for.
const DefaultReferenceYear = 2023

// Baseline holds the reference-year city-wide mean of each indicator.
type Baseline struct {
	Year        int     `json:"year"`
	Temperature float64 `json:"temperature"`
	NDVI        float64 `json:"ndvi"`
	PM25        float64 `json:"pm25"`
}

// Value returns the baseline mean for the indicator.
func (b Baseline) Value(ind Indicator) float64 {
	switch ind {
	case Temperature:
		return b.Temperature
	case Vegetation:
		return b.NDVI
	case AirQuality:
		return b.PM25
	default:
		return 0
	}
}

// ComputeBaseline averages each indicator across zones for the given year.
// Zones without a reading for the year are excluded from that indicator's
// mean; an indicator with no readings at all takes its Default.
func ComputeBaseline(zones []Zone, year int) Baseline {
	return Baseline{
		Year:        year,
		Temperature: meanOrDefault(zones, Temperature, year),
		NDVI:        meanOrDefault(zones, Vegetation, year),
		PM25:        meanOrDefault(zones, AirQuality, year),
	}
}

// Coverage counts how many zones report the indicator for the year.
func Coverage(zones []Zone, ind Indicator, year int) int {
	n := 0
	for _, z := range zones {
		if _, ok := z.Reading(ind, year); ok {
			n++
		}
	}
	return n
}

func meanOrDefault(zones []Zone, ind Indicator, year int) float64 {
	var sum float64
	n := 0
	for _, z := range zones {
		if v, ok := z.Reading(ind, year); ok {
			sum += v
			n++
		}
	}
	if n == 0 {
		return ind.Default()
	}
	return sum / float64(n)
}
