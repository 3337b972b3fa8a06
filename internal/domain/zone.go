package domain

// Zone is one geographic area of the city with its yearly indicator readings.
// A nil or sparse map means the zone has no reading for those years.
type Zone struct {
	Name        string          `json:"name"`
	Temperature map[int]float64 `json:"temperature,omitempty"`
	NDVI        map[int]float64 `json:"ndvi,omitempty"`
	PM25        map[int]float64 `json:"pm25,omitempty"`
}

// Series returns the zone's readings for the indicator.
func (z Zone) Series(ind Indicator) map[int]float64 {
	switch ind {
	case Temperature:
		return z.Temperature
	case Vegetation:
		return z.NDVI
	case AirQuality:
		return z.PM25
	default:
		return nil
	}
}

// Reading returns the zone's value for the indicator and year, and whether
// one exists.
func (z Zone) Reading(ind Indicator, year int) (float64, bool) {
	v, ok := z.Series(ind)[year]
	return v, ok
}
