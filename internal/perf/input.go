package perf

import (
	"dyno/internal/catalog"
)

// Lateral-G bonuses per chassis subcategory. Coilovers are worth more than
// lowering springs; each aero element is a small fixed add.
var suspensionGBonus = map[string]float64{
	"coilovers": 0.06,
	"springs":   0.03,
	"sway-bars": 0.02,
	"bracing":   0.01,
}

var aeroGBonus = map[string]float64{
	"wing":     0.020,
	"splitter": 0.015,
	"diffuser": 0.015,
}

const weightReductionGBonus = 0.01

// BuildInput derives the projection input from a selection. It scans the
// selected modifications once for tire grip, brake hardware, and chassis
// bonuses; projected power and weight delta come from the aggregator.
func BuildInput(v *catalog.Vehicle, projectedHP, weightDelta float64, mods []catalog.Modification) Input {
	in := Input{
		Vehicle:     v,
		ProjectedHP: projectedHP,
		WeightDelta: weightDelta,
	}

	for i := range mods {
		mod := &mods[i]
		switch mod.Category {
		case catalog.CategoryTires:
			// Best selected tire wins; a spare set does not add grip.
			if mod.TireGrip > in.TireGrip {
				in.TireGrip = mod.TireGrip
			}
		case catalog.CategoryBrakes:
			in.BrakingImprovement += mod.BrakingImprovement
		case catalog.CategorySuspension:
			in.SuspensionBonus += suspensionGBonus[mod.Subcategory]
		case catalog.CategoryAero:
			in.AeroBonus += aeroGBonus[mod.Subcategory]
		case catalog.CategoryWeightReduction:
			in.WeightBonus += weightReductionGBonus
		}
	}
	return in
}
