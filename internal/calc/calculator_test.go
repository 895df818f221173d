package calc

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"dyno/internal/aspiration"
	"dyno/internal/catalog"
)

func newCalculator() *Calculator {
	return New(catalog.NewStore())
}

func mustVehicle(t *testing.T, store *catalog.Store, id string) *catalog.Vehicle {
	t.Helper()
	v, ok := store.Vehicle(id)
	if !ok {
		t.Fatalf("builtin catalog missing vehicle %q", id)
	}
	return &v
}

func TestComputeEmptySelection(t *testing.T) {
	store := catalog.NewStore()
	c := New(store)
	v := mustVehicle(t, store, "gti-mk7")

	result := c.Compute(v, nil)

	if result.ProjectedHP != v.StockHP {
		t.Errorf("ProjectedHP = %v, want stock %v", result.ProjectedHP, v.StockHP)
	}
	if result.ProjectedTorque != v.StockTorque {
		t.Errorf("ProjectedTorque = %v, want stock %v", result.ProjectedTorque, v.StockTorque)
	}
	if result.RawGainHP != 0 || result.AdjustedGainHP != 0 {
		t.Errorf("gains = %v/%v, want 0/0", result.RawGainHP, result.AdjustedGainHP)
	}
	if result.Confidence.Tier != 1 || result.Confidence.Label != Verified {
		t.Errorf("Confidence = %+v, want tier 1 verified", result.Confidence)
	}
	if len(result.Conflicts) != 0 {
		t.Errorf("Conflicts = %v, want none", result.Conflicts)
	}
}

func TestComputeNilVehicle(t *testing.T) {
	c := newCalculator()

	result := c.Compute(nil, []string{"intake"})
	if result.Confidence.Tier != 1 {
		t.Errorf("nil vehicle confidence tier = %d, want 1", result.Confidence.Tier)
	}
	if result.ProjectedHP != 0 {
		t.Errorf("nil vehicle ProjectedHP = %v, want 0", result.ProjectedHP)
	}
}

func TestComputeDeterministic(t *testing.T) {
	store := catalog.NewStore()
	c := New(store)
	v := mustVehicle(t, store, "gti-mk7")
	keys := []string{"stage2-tune", "downpipe", "intake", "coilovers"}

	first := c.Compute(v, keys)
	for i := 0; i < 5; i++ {
		again := c.Compute(v, keys)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("Compute is not deterministic:\nfirst: %+v\nagain: %+v", first, again)
		}
	}
}

func TestComputeAdjustedNeverExceedsRaw(t *testing.T) {
	store := catalog.NewStore()
	c := New(store)

	selections := [][]string{
		{"stage2-tune", "downpipe", "intake"},
		{"stage1-tune", "stage3-tune"},
		{"catback-exhaust", "axleback-exhaust", "headers"},
		{"supercharger-roots", "intake", "headers"},
	}

	for _, v := range store.Vehicles() {
		vehicle := v
		for _, keys := range selections {
			result := c.Compute(&vehicle, keys)
			if result.AdjustedGainHP > result.RawGainHP {
				t.Errorf("%s %v: adjusted %v exceeds raw %v",
					vehicle.ID, keys, result.AdjustedGainHP, result.RawGainHP)
			}
			if result.ProjectedHP < vehicle.StockHP {
				t.Errorf("%s %v: projected %v below stock %v",
					vehicle.ID, keys, result.ProjectedHP, vehicle.StockHP)
			}
		}
	}
}

func TestComputeUnknownKeys(t *testing.T) {
	store := catalog.NewStore()
	c := New(store)
	v := mustVehicle(t, store, "gti-mk7")

	result := c.Compute(v, []string{"intake", "warp-coil", "hyperdrive"})

	if len(result.UnknownKeys) != 2 {
		t.Fatalf("UnknownKeys = %v, want 2 entries", result.UnknownKeys)
	}
	if len(result.Breakdown) != 1 {
		t.Errorf("Breakdown has %d entries, want 1", len(result.Breakdown))
	}

	// Unknown keys contribute nothing: same numbers as without them
	clean := c.Compute(v, []string{"intake"})
	if result.AdjustedGainHP != clean.AdjustedGainHP {
		t.Errorf("unknown keys changed the result: %v vs %v",
			result.AdjustedGainHP, clean.AdjustedGainHP)
	}
}

func TestComputeConfidenceWorstTier(t *testing.T) {
	store := catalog.NewStore()
	c := New(store)

	t.Run("calibrated override alone", func(t *testing.T) {
		v := mustVehicle(t, store, "gti-mk7") // has downpipe platform override
		result := c.Compute(v, []string{"downpipe"})
		if result.Confidence.Label != Calibrated {
			t.Errorf("Confidence = %v, want calibrated", result.Confidence.Label)
		}
	})

	t.Run("percent model alone", func(t *testing.T) {
		v := mustVehicle(t, store, "gti-mk7")
		result := c.Compute(v, []string{"stage1-tune"})
		if result.Confidence.Label != Estimated {
			t.Errorf("Confidence = %v, want estimated", result.Confidence.Label)
		}
	})

	t.Run("worst tier wins", func(t *testing.T) {
		// Calibrated downpipe plus an estimated tune: the whole result
		// degrades to estimated.
		v := mustVehicle(t, store, "gti-mk7")
		result := c.Compute(v, []string{"downpipe", "stage1-tune"})
		if result.Confidence.Label != Estimated {
			t.Errorf("Confidence = %v, want estimated", result.Confidence.Label)
		}
	})

	t.Run("chassis mods stay verified", func(t *testing.T) {
		v := mustVehicle(t, store, "gti-mk7")
		result := c.Compute(v, []string{"coilovers", "big-brake-kit"})
		if result.Confidence.Label != Verified {
			t.Errorf("Confidence = %v, want verified for non-power mods", result.Confidence.Label)
		}
	})
}

func TestComputeTorqueFollowsAspiration(t *testing.T) {
	store := catalog.NewStore()
	c := New(store)

	// Turbo car: torque gain exceeds hp gain through the 1.15 multiplier
	gti := mustVehicle(t, store, "gti-mk7")
	turboResult := c.Compute(gti, []string{"stage1-tune"})
	wantTurbo := turboResult.AdjustedGainHP * 1.15
	if math.Abs(turboResult.TorqueGain-wantTurbo) > 1e-9 {
		t.Errorf("turbo TorqueGain = %v, want %v", turboResult.TorqueGain, wantTurbo)
	}

	// NA car: torque lags hp through the 0.92 multiplier
	brz := mustVehicle(t, store, "brz-zd8")
	naResult := c.Compute(brz, []string{"stage1-tune"})
	wantNA := naResult.AdjustedGainHP * 0.92
	if math.Abs(naResult.TorqueGain-wantNA) > 1e-9 {
		t.Errorf("na TorqueGain = %v, want %v", naResult.TorqueGain, wantNA)
	}
}

func TestComputeExplicitTorqueFigures(t *testing.T) {
	// A catalog modification can carry its own torque figure instead of the
	// aspiration multiplier. Scaling follows the fraction of raw gain that
	// survives stacking.
	dir := t.TempDir()
	path := filepath.Join(dir, "mods.toml")
	fixture := `version = 1

[[modifications]]
key = "meth-injection"
name = "Water-Methanol Injection"
category = "fuel"
subcategory = "water-meth"

[modifications.gain_hp]
na = 15.0

[modifications.gain_torque]
na = 20.0

[[modifications]]
key = "meth-injection-dual"
name = "Dual-Nozzle Water-Methanol Injection"
category = "fuel"
subcategory = "water-meth"

[modifications.gain_hp]
na = 10.0

[modifications.gain_torque]
na = 12.0
`
	if err := os.WriteFile(path, []byte(fixture), 0o644); err != nil {
		t.Fatal(err)
	}
	store, err := catalog.Load(catalog.LoadOptions{ModificationsPath: path})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	c := New(store)
	v := mustVehicle(t, store, "brz-zd8")

	t.Run("full gain uses the full figure", func(t *testing.T) {
		result := c.Compute(v, []string{"meth-injection"})
		if math.Abs(result.TorqueGain-20) > 1e-9 {
			t.Errorf("TorqueGain = %v, want 20", result.TorqueGain)
		}
		if math.Abs(result.ProjectedTorque-(v.StockTorque+20)) > 1e-9 {
			t.Errorf("ProjectedTorque = %v, want %v", result.ProjectedTorque, v.StockTorque+20)
		}
	})

	t.Run("stacked gain scales the figure", func(t *testing.T) {
		// The second water-meth kit keeps 30 percent of its raw gain, so
		// its torque figure shrinks by the same fraction.
		result := c.Compute(v, []string{"meth-injection", "meth-injection-dual"})

		second := result.Breakdown[1]
		if second.Key != "meth-injection-dual" || second.AppliedHP >= second.RawGainHP {
			t.Fatalf("expected a diminished second kit, got %+v", second)
		}

		want := 20 + 12*(second.AppliedHP/second.RawGainHP)
		if math.Abs(result.TorqueGain-want) > 1e-9 {
			t.Errorf("TorqueGain = %v, want %v", result.TorqueGain, want)
		}
	})
}

func TestComputeWeightDelta(t *testing.T) {
	store := catalog.NewStore()
	c := New(store)
	v := mustVehicle(t, store, "brz-zd8")

	result := c.Compute(v, []string{"catback-exhaust", "carbon-hood"})

	if result.WeightDelta >= 0 {
		t.Errorf("WeightDelta = %v, want negative for weight-reduction parts", result.WeightDelta)
	}
}

func TestComputeSuperchargerConversion(t *testing.T) {
	// Roots blower on the NA BRZ: 55 percent of stock
	store := catalog.NewStore()
	c := New(store)
	v := mustVehicle(t, store, "brz-zd8")

	result := c.Compute(v, []string{"supercharger-roots"})

	want := v.StockHP * 0.55
	if math.Abs(result.AdjustedGainHP-want) > 1e-9 {
		t.Errorf("AdjustedGainHP = %v, want %v", result.AdjustedGainHP, want)
	}
	if result.Confidence.Label != Estimated {
		t.Errorf("Confidence = %v, want estimated", result.Confidence.Label)
	}
}

func TestComputeProfile(t *testing.T) {
	store := catalog.NewStore()
	c := New(store)
	v := mustVehicle(t, store, "gti-mk7")

	profile := c.ComputeProfile(v, []string{"stage2-tune", "downpipe", "tires-200tw"})

	if profile.Result == nil {
		t.Fatal("profile missing result")
	}
	if profile.Metrics.ZeroSixty <= 0 {
		t.Errorf("ZeroSixty = %v, want positive", profile.Metrics.ZeroSixty)
	}
	if profile.Metrics.ZeroSixty >= v.StockZeroSixty {
		t.Errorf("ZeroSixty = %v, should improve on stock %v",
			profile.Metrics.ZeroSixty, v.StockZeroSixty)
	}
	if profile.Scores.PowerPotential <= 0 || profile.Scores.PowerPotential > 100 {
		t.Errorf("PowerPotential = %v, want in (0, 100]", profile.Scores.PowerPotential)
	}
}

func TestComputeProfileMatchesCompute(t *testing.T) {
	store := catalog.NewStore()
	c := New(store)
	v := mustVehicle(t, store, "gti-mk7")
	keys := []string{"stage2-tune", "downpipe", "intake", "warp-coil"}

	profile := c.ComputeProfile(v, keys)
	direct := c.Compute(v, keys)

	if !reflect.DeepEqual(profile.Result, direct) {
		t.Errorf("profile result diverged from Compute:\nprofile: %+v\ndirect:  %+v",
			profile.Result, direct)
	}
}

func TestComputeProfileNilVehicle(t *testing.T) {
	c := newCalculator()
	profile := c.ComputeProfile(nil, []string{"intake"})
	if profile.Result == nil {
		t.Fatal("profile missing result")
	}
	if profile.Metrics.ZeroSixty != 0 {
		t.Errorf("nil vehicle metrics should be zero, got %+v", profile.Metrics)
	}
}

func TestComputeByID(t *testing.T) {
	c := newCalculator()

	profile, ok := c.ComputeByID("gti-mk7", []string{"stage1-tune"})
	if !ok || profile == nil {
		t.Fatal("ComputeByID should find gti-mk7")
	}
	if profile.Result.VehicleID != "gti-mk7" {
		t.Errorf("VehicleID = %q", profile.Result.VehicleID)
	}

	if _, ok := c.ComputeByID("no-such-car", nil); ok {
		t.Error("ComputeByID should report unknown vehicle")
	}
}

func TestConfidenceForTier(t *testing.T) {
	tests := []struct {
		tier      int
		wantScore float64
		wantLabel ConfidenceLabel
	}{
		{1, 1.0, Verified},
		{2, 0.85, Calibrated},
		{3, 0.6, Estimated},
		{4, 0.35, Approximate},
		{0, 1.0, Verified},  // clamped up
		{9, 0.35, Approximate}, // clamped down
	}

	for _, tt := range tests {
		got := ConfidenceForTier(tt.tier)
		if got.Score != tt.wantScore || got.Label != tt.wantLabel {
			t.Errorf("ConfidenceForTier(%d) = %+v", tt.tier, got)
		}
	}
}

func TestComputeAspirationPropagated(t *testing.T) {
	store := catalog.NewStore()
	c := New(store)

	e92 := mustVehicle(t, store, "335i-e92")
	result := c.Compute(e92, nil)
	if result.Aspiration != aspiration.TwinTurbo {
		t.Errorf("Aspiration = %v, want twin-turbo", result.Aspiration)
	}
}
