// Package score maps a modification selection and its projected gains into
// bounded 0-100 ring scores for summary display: power potential, handling,
// and reliability.
package score

import (
	"fmt"

	"dyno/internal/aspiration"
	"dyno/internal/catalog"
)

// Rings holds the three summary scores plus any reliability warnings.
type Rings struct {
	PowerPotential float64  `json:"powerPotential"`
	Handling       float64  `json:"handling"`
	Reliability    float64  `json:"reliability"`
	Warnings       []string `json:"warnings,omitempty"`
}

// realisticMaxGainPct is the fraction of stock horsepower a platform can
// realistically gain with street modifications. Turbocharged platforms have
// huge headroom; NA bolt-ons top out near a quarter of stock.
var realisticMaxGainPct = map[aspiration.Aspiration]float64{
	aspiration.NA:           0.25,
	aspiration.Turbo:        0.70,
	aspiration.TwinTurbo:    0.75,
	aspiration.Supercharged: 0.60,
	aspiration.TwinSC:       0.65,
}

// handlingBaseline is the stock handling score. Stock cars handle fine; an
// unmodified car must never score near zero.
const handlingBaseline = 50.0

// Compute builds the ring scores from the selection and aggregated gain.
func Compute(v *catalog.Vehicle, asp aspiration.Aspiration, adjustedGain float64, mods []catalog.Modification) Rings {
	rings := Rings{
		PowerPotential: powerPotential(v, asp, adjustedGain),
		Handling:       handling(mods),
	}
	rings.Reliability, rings.Warnings = reliability(v, adjustedGain, mods)
	return rings
}

// powerPotential expresses achieved gain as a fraction of the platform's
// realistic maximum.
func powerPotential(v *catalog.Vehicle, asp aspiration.Aspiration, adjustedGain float64) float64 {
	if v == nil || v.StockHP <= 0 {
		return 0
	}
	maxPct, ok := realisticMaxGainPct[asp]
	if !ok {
		maxPct = realisticMaxGainPct[aspiration.NA]
	}
	realisticMax := v.StockHP * maxPct
	if realisticMax <= 0 {
		return 0
	}
	return clampScore(adjustedGain / realisticMax * 100)
}

// handling starts from the 50-point stock baseline and adds up to 50 points
// from chassis modifications.
func handling(mods []catalog.Modification) float64 {
	total := handlingBaseline
	for i := range mods {
		total += mods[i].HandlingPoints
	}
	return clampScore(total)
}

// reliabilityPenaltyPerGainPct scales the reliability penalty: every percent
// of horsepower gained over stock costs this many points before supporting
// hardware earns credit back.
const reliabilityPenaltyPerGainPct = 0.9

// reliability starts at 100, subtracts a penalty proportional to percentage
// horsepower gain, then credits supporting hardware (cooling, fuel system).
// Warnings fire when the gain is large relative to installed support.
func reliability(v *catalog.Vehicle, adjustedGain float64, mods []catalog.Modification) (float64, []string) {
	total := 100.0
	if v == nil || v.StockHP <= 0 {
		return total, nil
	}

	gainPct := adjustedGain / v.StockHP * 100
	total -= gainPct * reliabilityPenaltyPerGainPct

	var supportCredit float64
	supportCount := 0
	for i := range mods {
		if mods[i].ReliabilityCredit > 0 {
			supportCredit += mods[i].ReliabilityCredit
			supportCount++
		}
	}
	total += supportCredit

	var warnings []string
	if gainPct >= 30 && supportCount == 0 {
		warnings = append(warnings, fmt.Sprintf(
			"projected gain of %.0f%% with no supporting hardware; add cooling and fuel system upgrades", gainPct))
	} else if gainPct >= 50 && supportCount < 3 {
		warnings = append(warnings, fmt.Sprintf(
			"projected gain of %.0f%% outpaces installed supporting hardware", gainPct))
	}
	if gainPct >= 40 {
		warnings = append(warnings, "gains this large typically require drivetrain and clutch upgrades to hold reliably")
	}

	return clampScore(total), warnings
}

func clampScore(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 100 {
		return 100
	}
	return x
}
