// Package report renders scenario reports and map layers for the command-line tools.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/couchcryptid/urban-climate-scenarios/internal/domain"
	"github.com/couchcryptid/urban-climate-scenarios/internal/simulation"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Format selects how reports are written.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// ParseFormat validates a -format flag value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatText:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown format %q: want json or text", s)
	}
}

// Writer renders reports in one format and locale.
type Writer struct {
	w       io.Writer
	format  Format
	printer *message.Printer
}

// NewWriter creates a Writer. The locale only affects text output.
func NewWriter(w io.Writer, format Format, locale language.Tag) *Writer {
	return &Writer{w: w, format: format, printer: message.NewPrinter(locale)}
}

// Scenario writes a scenario report.
func (rw *Writer) Scenario(r simulation.Report) error {
	if rw.format == FormatJSON {
		return rw.json(r)
	}

	p := rw.printer
	// Years and IDs bypass the printer so they are not digit-grouped.
	fmt.Fprintf(rw.w, "Scenario %s (reference year %d)\n", r.RunID, r.Baseline.Year)
	fmt.Fprintln(rw.w, p.Sprintf("Levers: green roofs %.0f, corridors %.1f km, emission reduction %.0f%%, vegetation program %.0f%%",
		r.Levers.GreenRoofs, r.Levers.CorridorKm, r.Levers.EmissionReduction, r.Levers.VegetationProgram))
	fmt.Fprintln(rw.w)

	tw := tabwriter.NewWriter(rw.w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Indicator\tBaseline\tScenario\tImprovement\t")
	fmt.Fprintln(tw, p.Sprintf("Surface temperature (°C)\t%.1f\t%.1f\t%.1f%%\t",
		r.Baseline.Temperature, r.Result.Temperature, r.Result.TemperatureImprovementPct))
	fmt.Fprintln(tw, p.Sprintf("Vegetation (NDVI)\t%.2f\t%.2f\t%.1f%%\t",
		r.Baseline.NDVI, r.Result.NDVI, r.Result.NDVIImprovementPct))
	fmt.Fprintln(tw, p.Sprintf("PM2.5 (µg/m³)\t%.0f\t%.0f\t%.1f%%\t",
		r.Baseline.PM25, r.Result.PM25, r.Result.PM25ImprovementPct))
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(rw.w)
	_, err := fmt.Fprintln(rw.w, p.Sprintf("Well-being index: %.1f / 100 (weights: temperature 40%%, NDVI 30%%, PM2.5 30%%)",
		r.Result.WellbeingIndex))
	return err
}

// Layer writes the classified zones of a map layer.
func (rw *Writer) Layer(ind domain.Indicator, year int, cells []domain.LayerCell) error {
	if rw.format == FormatJSON {
		return rw.json(struct {
			Indicator string             `json:"indicator"`
			Year      int                `json:"year"`
			Legend    []domain.ColorBand `json:"legend"`
			Zones     []domain.LayerCell `json:"zones"`
		}{ind.String(), year, domain.Legend(ind), cells})
	}

	p := rw.printer
	fmt.Fprintf(rw.w, "Layer %s, %d\n", ind, year)
	tw := tabwriter.NewWriter(rw.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Zone\tValue\tColor\tBand")
	for _, c := range cells {
		value := p.Sprintf("%.2f %s", c.Value, c.Unit)
		if c.Fallback {
			value += " *"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.Zone, value, c.Band.Color, c.Band.Label)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(rw.w, "* no reading for this year, neutral value shown")
	return err
}

func (rw *Writer) json(v any) error {
	enc := json.NewEncoder(rw.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}
