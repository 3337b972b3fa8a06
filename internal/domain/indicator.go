package domain

import "fmt"

// Indicator identifies one of the bundled environmental series.
type Indicator int

const (
	Temperature Indicator = iota + 1
	Vegetation
	AirQuality
)

// Indicators lists every known indicator in display order.
var Indicators = []Indicator{Temperature, Vegetation, AirQuality}

// ParseIndicator maps a layer name ("temperature", "vegetation",
// "airquality") to its Indicator.
func ParseIndicator(s string) (Indicator, error) {
	switch s {
	case "temperature":
		return Temperature, nil
	case "vegetation":
		return Vegetation, nil
	case "airquality":
		return AirQuality, nil
	default:
		return 0, fmt.Errorf("unknown indicator %q", s)
	}
}

func (i Indicator) String() string {
	switch i {
	case Temperature:
		return "temperature"
	case Vegetation:
		return "vegetation"
	case AirQuality:
		return "airquality"
	default:
		return "unknown"
	}
}

// Unit returns the display unit for the indicator's readings.
func (i Indicator) Unit() string {
	switch i {
	case Temperature:
		return "°C"
	case Vegetation:
		return "NDVI"
	case AirQuality:
		return "µg/m³"
	default:
		return ""
	}
}

// Default is the baseline value used when no zone reports the indicator
// for the reference year.
func (i Indicator) Default() float64 {
	switch i {
	case Temperature:
		return 30
	case Vegetation:
		return 0.3
	case AirQuality:
		return 60
	default:
		return 0
	}
}

// MapFallback is the value a map layer shows for a zone without a reading.
// It differs from Default: the map paints a neutral mid-scale colour rather
// than the aggregate fallback.
func (i Indicator) MapFallback() float64 {
	switch i {
	case Temperature:
		return 25
	case Vegetation:
		return 0.5
	case AirQuality:
		return 50
	default:
		return 0
	}
}
