package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"dyno/internal/calc"
	"dyno/internal/catalog"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatJSON  OutputFormat = "json"
	FormatHuman OutputFormat = "human"
)

// FormatResponse formats a response according to the specified format
func FormatResponse(resp interface{}, format OutputFormat) (string, error) {
	switch format {
	case FormatJSON:
		return formatJSON(resp)
	case FormatHuman:
		return formatHuman(resp)
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// formatJSON formats the response as JSON
func formatJSON(resp interface{}) (string, error) {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data), nil
}

// formatHuman formats the response in human-readable format
func formatHuman(resp interface{}) (string, error) {
	switch v := resp.(type) {
	case *calc.Result:
		return formatResultHuman(v), nil
	case *calc.Profile:
		return formatProfileHuman(v), nil
	case []catalog.Modification:
		return formatModsHuman(v), nil
	case []catalog.Vehicle:
		return formatVehiclesHuman(v), nil
	case *catalog.Vehicle:
		return formatVehicleHuman(v), nil
	default:
		// For unknown types, fall back to JSON
		return formatJSON(resp)
	}
}

// formatResultHuman renders a calculation result
func formatResultHuman(r *calc.Result) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s\n", r.VehicleName))
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	b.WriteString(fmt.Sprintf("Aspiration: %s\n", r.Aspiration.Label()))
	b.WriteString(fmt.Sprintf("Stock:      %.0f hp / %.0f lb-ft\n", r.StockHP, r.StockTorque))
	b.WriteString(fmt.Sprintf("Projected:  %.1f hp / %.1f lb-ft\n", r.ProjectedHP, r.ProjectedTorque))
	b.WriteString(fmt.Sprintf("Gain:       +%.1f hp (%.1f before stacking adjustments)\n",
		r.AdjustedGainHP, r.RawGainHP))
	if r.WeightDelta != 0 {
		b.WriteString(fmt.Sprintf("Weight:     %+.0f lb\n", r.WeightDelta))
	}
	b.WriteString(fmt.Sprintf("Confidence: %s (%.2f)\n", r.Confidence.Label, r.Confidence.Score))

	if len(r.Breakdown) > 0 {
		b.WriteString("\nBreakdown:\n")
		for _, mb := range r.Breakdown {
			line := fmt.Sprintf("  %-24s %+7.1f hp", mb.Name, mb.AppliedHP)
			if mb.Adjustment != "" {
				line += fmt.Sprintf("  [%s]", mb.Adjustment)
			}
			b.WriteString(line + "\n")
		}
	}

	if len(r.Conflicts) > 0 {
		b.WriteString("\nConflicts:\n")
		for _, c := range r.Conflicts {
			marker := "!"
			if c.Severity == "info" {
				marker = "-"
			}
			b.WriteString(fmt.Sprintf("  %s [%s] %s\n", marker, c.Kind, c.Message))
		}
	}

	if len(r.UnknownKeys) > 0 {
		b.WriteString("\nUnknown modification keys (ignored):\n")
		for _, k := range r.UnknownKeys {
			b.WriteString(fmt.Sprintf("  ? %s\n", k))
		}
	}

	return b.String()
}

// formatProfileHuman renders the full performance profile
func formatProfileHuman(p *calc.Profile) string {
	var b strings.Builder

	b.WriteString(formatResultHuman(p.Result))

	b.WriteString("\nPerformance:\n")
	b.WriteString(fmt.Sprintf("  0-60 mph:     %.2f s\n", p.Metrics.ZeroSixty))
	b.WriteString(fmt.Sprintf("  Quarter mile: %.2f s @ %.1f mph\n", p.Metrics.QuarterMile, p.Metrics.TrapSpeed))
	b.WriteString(fmt.Sprintf("  60-0 braking: %.0f ft\n", p.Metrics.Braking))
	b.WriteString(fmt.Sprintf("  Lateral grip: %.2f g\n", p.Metrics.LateralG))

	b.WriteString("\nBuild scores:\n")
	b.WriteString(fmt.Sprintf("  Power potential: %3.0f / 100\n", p.Scores.PowerPotential))
	b.WriteString(fmt.Sprintf("  Handling:        %3.0f / 100\n", p.Scores.Handling))
	b.WriteString(fmt.Sprintf("  Reliability:     %3.0f / 100\n", p.Scores.Reliability))

	if len(p.Scores.Warnings) > 0 {
		b.WriteString("\nWarnings:\n")
		for _, w := range p.Scores.Warnings {
			b.WriteString(fmt.Sprintf("  ! %s\n", w))
		}
	}

	return b.String()
}

// formatModsHuman renders a modification list
func formatModsHuman(mods []catalog.Modification) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Modifications (%d)\n", len(mods)))
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	for _, m := range mods {
		b.WriteString(fmt.Sprintf("%-24s %-14s %s\n", m.Key, m.Category, m.Name))
	}

	return b.String()
}

// formatVehiclesHuman renders a vehicle list
func formatVehiclesHuman(vehicles []catalog.Vehicle) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Vehicles (%d)\n", len(vehicles)))
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	for _, v := range vehicles {
		b.WriteString(fmt.Sprintf("%-16s %s (%.0f hp, %s)\n",
			v.ID, v.DisplayName(), v.StockHP, v.Aspiration().Label()))
	}

	return b.String()
}

// formatVehicleHuman renders a single vehicle's stock sheet
func formatVehicleHuman(v *catalog.Vehicle) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s\n", v.DisplayName()))
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	b.WriteString(fmt.Sprintf("ID:           %s\n", v.ID))
	b.WriteString(fmt.Sprintf("Engine:       %s\n", v.Engine))
	b.WriteString(fmt.Sprintf("Aspiration:   %s\n", v.Aspiration().Label()))
	b.WriteString(fmt.Sprintf("Power:        %.0f hp / %.0f lb-ft\n", v.StockHP, v.StockTorque))
	b.WriteString(fmt.Sprintf("Curb weight:  %.0f lb\n", v.CurbWeight))
	b.WriteString(fmt.Sprintf("Drivetrain:   %s / %s\n", v.Drivetrain, v.Transmission))
	if v.StockZeroSixty > 0 {
		b.WriteString(fmt.Sprintf("0-60 mph:     %.2f s\n", v.StockZeroSixty))
	}
	if v.StockQuarterMile > 0 {
		b.WriteString(fmt.Sprintf("Quarter mile: %.2f s", v.StockQuarterMile))
		if v.StockTrapSpeed > 0 {
			b.WriteString(fmt.Sprintf(" @ %.1f mph", v.StockTrapSpeed))
		}
		b.WriteString("\n")
	}
	if v.StockBraking > 0 {
		b.WriteString(fmt.Sprintf("60-0 braking: %.0f ft\n", v.StockBraking))
	}
	if v.StockLateralG > 0 {
		b.WriteString(fmt.Sprintf("Lateral grip: %.2f g\n", v.StockLateralG))
	}

	return b.String()
}
