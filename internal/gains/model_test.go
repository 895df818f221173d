package gains

import (
	"math"
	"testing"

	"dyno/internal/aspiration"
	"dyno/internal/catalog"
)

func testVehicle(make, model string, stockHP float64, engine string) *catalog.Vehicle {
	return &catalog.Vehicle{
		ID: "test", Make: make, Model: model,
		StockHP: stockHP, CurbWeight: 3200, Drivetrain: catalog.FWD,
		Engine: engine,
	}
}

func modByKey(t *testing.T, key string) *catalog.Modification {
	t.Helper()
	store := catalog.NewStore()
	m, ok := store.Modification(key)
	if !ok {
		t.Fatalf("builtin catalog missing %q", key)
	}
	return &m
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestResolvePlatformOverride(t *testing.T) {
	tests := []struct {
		name    string
		make    string
		model   string
		stockHP float64
		engine  string
		modKey  string
		wantHP  float64
	}{
		{"335i downpipe", "BMW", "335i", 300, "3.0L twin turbo inline-6", "downpipe", 25},
		{"supra downpipe", "Toyota", "GR Supra", 382, "3.0L turbo inline-6", "downpipe", 30},
		{"gti downpipe", "Volkswagen", "Golf GTI", 220, "2.0L turbo I4", "downpipe", 22},
		{"wrx downpipe", "Subaru", "WRX", 268, "2.4L turbo boxer", "downpipe", 18},
		{"mustang headers", "Ford", "Mustang GT", 460, "5.0L V8", "headers", 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := testVehicle(tt.make, tt.model, tt.stockHP, tt.engine)
			mod := modByKey(t, tt.modKey)

			res := Resolve(v, mod, v.Aspiration())
			if res.Source != SourceOverride {
				t.Errorf("Source = %v, want platform-override", res.Source)
			}
			if res.HP != tt.wantHP {
				t.Errorf("HP = %v, want %v", res.HP, tt.wantHP)
			}
		})
	}
}

func TestResolveOverrideForcedOnly(t *testing.T) {
	// An NA-swapped 335i must not hit the turbo-calibrated downpipe figure
	v := testVehicle("BMW", "335i", 280, "3.0L inline-6")
	mod := modByKey(t, "downpipe")

	res := Resolve(v, mod, v.Aspiration())
	if res.Source == SourceOverride {
		t.Errorf("forced-only override should not apply to NA engine, got %v", res.Source)
	}
}

func TestResolvePercentModel(t *testing.T) {
	tests := []struct {
		name   string
		asp    aspiration.Aspiration
		modKey string
		stock  float64
		wantHP float64
	}{
		{"stage1 turbo", aspiration.Turbo, "stage1-tune", 300, 45},
		{"stage1 na", aspiration.NA, "stage1-tune", 300, 15},
		{"stage2 turbo", aspiration.Turbo, "stage2-tune", 300, 75},
		{"stage3 twin turbo", aspiration.TwinTurbo, "stage3-tune", 400, 180},
		{"intake turbo", aspiration.Turbo, "intake", 300, 12},
		{"roots blower on na", aspiration.NA, "supercharger-roots", 228, 125.4},
		{"turbo kit on na", aspiration.NA, "turbo-kit", 200, 120},
		{"turbo upgrade", aspiration.Turbo, "turbo-upgrade", 300, 105},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := testVehicle("Generic", "Car", tt.stock, "")
			mod := modByKey(t, tt.modKey)

			res := Resolve(v, mod, tt.asp)
			if res.Source != SourcePercent {
				t.Errorf("Source = %v, want percent-model", res.Source)
			}
			if !approxEqual(res.HP, tt.wantHP) {
				t.Errorf("HP = %v, want %v", res.HP, tt.wantHP)
			}
		})
	}
}

func TestResolveFlatTableFallback(t *testing.T) {
	v := testVehicle("Generic", "Car", 300, "")
	mod := &catalog.Modification{
		Key: "custom-part", Name: "Custom Part", Category: catalog.CategoryExhaust,
		GainHP: map[aspiration.Aspiration]float64{
			aspiration.NA:    7,
			aspiration.Turbo: 11,
		},
	}

	res := Resolve(v, mod, aspiration.Turbo)
	if res.Source != SourceFlat {
		t.Errorf("Source = %v, want flat-table", res.Source)
	}
	if res.HP != 11 {
		t.Errorf("HP = %v, want 11", res.HP)
	}
}

func TestResolveNoFigure(t *testing.T) {
	v := testVehicle("Generic", "Car", 300, "")

	t.Run("chassis mod never gains power", func(t *testing.T) {
		mod := modByKey(t, "coilovers")
		res := Resolve(v, mod, aspiration.Turbo)
		if res.Source != SourceNone || res.HP != 0 {
			t.Errorf("got %+v, want zero with SourceNone", res)
		}
	})

	t.Run("aspiration not covered by any tier", func(t *testing.T) {
		// A downpipe does nothing on an NA engine and has no NA entries
		mod := modByKey(t, "downpipe")
		res := Resolve(v, mod, aspiration.NA)
		if res.Source != SourceNone || res.HP != 0 {
			t.Errorf("got %+v, want zero with SourceNone", res)
		}
	})

	t.Run("nil inputs", func(t *testing.T) {
		mod := modByKey(t, "intake")
		if res := Resolve(nil, mod, aspiration.NA); res.Source != SourceNone {
			t.Errorf("nil vehicle: got %v", res.Source)
		}
		if res := Resolve(v, nil, aspiration.NA); res.Source != SourceNone {
			t.Errorf("nil mod: got %v", res.Source)
		}
	})
}

func TestResolvePriorityOrder(t *testing.T) {
	// The GTI downpipe has both an override (22hp) and a percent entry (7%).
	// The override must win outright, not blend.
	v := testVehicle("Volkswagen", "Golf GTI", 220, "2.0L turbo I4")
	mod := modByKey(t, "downpipe")

	res := Resolve(v, mod, aspiration.Turbo)
	if res.Source != SourceOverride {
		t.Fatalf("Source = %v, want platform-override", res.Source)
	}
	if res.HP != 22 {
		t.Errorf("HP = %v, want the calibrated 22, not the percent model's %v",
			res.HP, 220*0.07)
	}
}

func TestHasPercentEntry(t *testing.T) {
	if !HasPercentEntry("stage1-tune", aspiration.Turbo) {
		t.Error("stage1-tune/turbo should be covered")
	}
	if HasPercentEntry("downpipe", aspiration.NA) {
		t.Error("downpipe/na should not be covered")
	}
	if HasPercentEntry("no-such-mod", aspiration.Turbo) {
		t.Error("unknown mod should not be covered")
	}
}

func TestTorqueMultiplierFor(t *testing.T) {
	tests := []struct {
		asp  aspiration.Aspiration
		want float64
	}{
		{aspiration.NA, 0.92},
		{aspiration.Turbo, 1.15},
		{aspiration.TwinTurbo, 1.18},
		{aspiration.Supercharged, 1.05},
		{aspiration.TwinSC, 1.08},
		{aspiration.Aspiration("unknown"), 0.92},
	}

	for _, tt := range tests {
		if got := TorqueMultiplierFor(tt.asp); got != tt.want {
			t.Errorf("TorqueMultiplierFor(%v) = %v, want %v", tt.asp, got, tt.want)
		}
	}
}
