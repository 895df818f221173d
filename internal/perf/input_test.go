package perf

import (
	"math"
	"testing"

	"dyno/internal/catalog"
)

func TestBuildInputBestTireWins(t *testing.T) {
	v := testVehicle()
	mods := []catalog.Modification{
		{Key: "tires-all-season", Category: catalog.CategoryTires, TireGrip: 0.85},
		{Key: "tires-r-compound", Category: catalog.CategoryTires, TireGrip: 1.10},
		{Key: "tires-200tw", Category: catalog.CategoryTires, TireGrip: 1.00},
	}

	in := BuildInput(v, v.StockHP, 0, mods)
	if in.TireGrip != 1.10 {
		t.Errorf("TireGrip = %v, want best selected 1.10", in.TireGrip)
	}
}

func TestBuildInputBrakingSums(t *testing.T) {
	v := testVehicle()
	mods := []catalog.Modification{
		{Key: "big-brake-kit", Category: catalog.CategoryBrakes, BrakingImprovement: 8},
		{Key: "brake-pads", Category: catalog.CategoryBrakes, BrakingImprovement: 5},
		{Key: "brake-lines", Category: catalog.CategoryBrakes, BrakingImprovement: 1},
	}

	in := BuildInput(v, v.StockHP, 0, mods)
	if in.BrakingImprovement != 14 {
		t.Errorf("BrakingImprovement = %v, want 14", in.BrakingImprovement)
	}
}

func TestBuildInputChassisBonuses(t *testing.T) {
	v := testVehicle()
	mods := []catalog.Modification{
		{Key: "coilovers", Category: catalog.CategorySuspension, Subcategory: "coilovers"},
		{Key: "sway-bars", Category: catalog.CategorySuspension, Subcategory: "sway-bars"},
		{Key: "wing", Category: catalog.CategoryAero, Subcategory: "wing"},
		{Key: "carbon-hood", Category: catalog.CategoryWeightReduction, Subcategory: "body"},
		{Key: "rear-seat-delete", Category: catalog.CategoryWeightReduction, Subcategory: "interior"},
	}

	in := BuildInput(v, v.StockHP, 0, mods)
	if math.Abs(in.SuspensionBonus-0.08) > 1e-9 {
		t.Errorf("SuspensionBonus = %v, want 0.08", in.SuspensionBonus)
	}
	if math.Abs(in.AeroBonus-0.020) > 1e-9 {
		t.Errorf("AeroBonus = %v, want 0.020", in.AeroBonus)
	}
	if math.Abs(in.WeightBonus-0.02) > 1e-9 {
		t.Errorf("WeightBonus = %v, want 0.02 for two parts", in.WeightBonus)
	}
}

func TestBuildInputUnknownSubcategory(t *testing.T) {
	v := testVehicle()
	mods := []catalog.Modification{
		{Key: "mystery", Category: catalog.CategorySuspension, Subcategory: "air-ride"},
	}

	in := BuildInput(v, v.StockHP, 0, mods)
	if in.SuspensionBonus != 0 {
		t.Errorf("SuspensionBonus = %v, want 0 for unmapped subcategory", in.SuspensionBonus)
	}
}

func TestBuildInputPowerModsIgnored(t *testing.T) {
	v := testVehicle()
	mods := []catalog.Modification{
		{Key: "stage2-tune", Category: catalog.CategoryTune, Subcategory: "flash"},
		{Key: "downpipe", Category: catalog.CategoryExhaust, Subcategory: "downpipe"},
	}

	in := BuildInput(v, 295, -20, mods)
	if in.ProjectedHP != 295 || in.WeightDelta != -20 {
		t.Errorf("aggregated values not carried through: %+v", in)
	}
	if in.TireGrip != 0 || in.BrakingImprovement != 0 || in.SuspensionBonus != 0 {
		t.Errorf("power mods leaked into chassis input: %+v", in)
	}
}
