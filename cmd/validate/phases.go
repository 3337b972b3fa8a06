package main

import (
	"fmt"

	"github.com/couchcryptid/urban-climate-scenarios/internal/adapter/geojson"
	"github.com/couchcryptid/urban-climate-scenarios/internal/domain"
)

// phase tracks pass/fail for a validation phase. Warnings never fail a phase.
type phase struct {
	name     string
	errors   []string
	warnings []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) warnf(format string, args ...any) {
	p.warnings = append(p.warnings, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

// validRange bounds plausible readings per indicator. Temperature reuses the
// scenario model's sentinel bounds.
var validRange = map[domain.Indicator][2]float64{
	domain.Temperature: {-50, 80},
	domain.Vegetation:  {0, 1},
	domain.AirQuality:  {0, 1000},
}

// validateStructure fails on features that cannot be attributed to a zone
// and on series that are not year-keyed objects.
func validateStructure(issues []geojson.Issue) *phase {
	p := &phase{name: "Feature structure"}
	for _, is := range issues {
		switch is.Kind {
		case geojson.IssueMissingName, geojson.IssueDuplicateZone, geojson.IssueBadSeries, geojson.IssueBadYear:
			p.errorf("%s", is)
		}
	}
	return p
}

// validateReadings warns on non-numeric readings. The loader drops them, which
// is the same treatment as a missing year.
func validateReadings(issues []geojson.Issue) *phase {
	p := &phase{name: "Reading types"}
	for _, is := range issues {
		if is.Kind == geojson.IssueNonNumeric {
			p.warnf("%s", is)
		}
	}
	return p
}

func validateRanges(zones []domain.Zone) *phase {
	p := &phase{name: "Reading ranges"}
	for _, z := range zones {
		for _, ind := range domain.Indicators {
			bounds := validRange[ind]
			for year, v := range z.Series(ind) {
				if v < bounds[0] || v > bounds[1] {
					p.errorf("%s %s %d: %g outside [%g, %g]", z.Name, ind, year, v, bounds[0], bounds[1])
				}
			}
		}
	}
	return p
}

// validateCoverage fails when no zone reports an indicator for the reference
// year (the baseline would silently use the default) and warns per zone gap.
func validateCoverage(zones []domain.Zone, year int) *phase {
	p := &phase{name: fmt.Sprintf("Reference year %d coverage", year)}
	for _, ind := range domain.Indicators {
		if domain.Coverage(zones, ind, year) == 0 {
			p.errorf("%s: no zone reports %d, baseline falls back to %g", ind, year, ind.Default())
			continue
		}
		for _, z := range zones {
			if _, ok := z.Reading(ind, year); !ok {
				p.warnf("%s: %q has no %d reading", ind, z.Name, year)
			}
		}
	}
	return p
}
