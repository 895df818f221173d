package gains

import (
	"dyno/internal/aspiration"
)

// Static reference tables for the gain model. These are data, not code:
// calculation logic only reads them through the resolver chain in model.go,
// and the tests exercise them directly.

// percentOfStock maps (modification key, aspiration) to a gain expressed as a
// fraction of stock horsepower. Forced-induction engines have far more
// tunable headroom than NA engines, so the same tune carries a much larger
// percentage on a turbocharged platform. NA-to-forced-induction conversions
// (supercharger and turbo kits on an NA engine) use the largest bracket.
var percentOfStock = map[string]map[aspiration.Aspiration]float64{
	"stage1-tune": {
		aspiration.NA: 0.05, aspiration.Turbo: 0.15, aspiration.TwinTurbo: 0.15,
		aspiration.Supercharged: 0.10, aspiration.TwinSC: 0.12,
	},
	"stage2-tune": {
		aspiration.NA: 0.08, aspiration.Turbo: 0.25, aspiration.TwinTurbo: 0.25,
		aspiration.Supercharged: 0.15, aspiration.TwinSC: 0.17,
	},
	"stage3-tune": {
		aspiration.NA: 0.12, aspiration.Turbo: 0.45, aspiration.TwinTurbo: 0.45,
		aspiration.Supercharged: 0.25, aspiration.TwinSC: 0.28,
	},
	"piggyback-tuner": {
		aspiration.Turbo: 0.10, aspiration.TwinTurbo: 0.10, aspiration.Supercharged: 0.06,
	},
	"downpipe": {
		aspiration.Turbo: 0.07, aspiration.TwinTurbo: 0.08,
	},
	"intake": {
		aspiration.NA: 0.02, aspiration.Turbo: 0.04, aspiration.TwinTurbo: 0.04,
		aspiration.Supercharged: 0.03, aspiration.TwinSC: 0.03,
	},
	"intake-manifold": {
		aspiration.NA: 0.03, aspiration.Supercharged: 0.025,
	},
	"catback-exhaust": {
		aspiration.NA: 0.025, aspiration.Turbo: 0.02, aspiration.TwinTurbo: 0.02,
		aspiration.Supercharged: 0.02, aspiration.TwinSC: 0.02,
	},
	"headers": {
		aspiration.NA: 0.05, aspiration.Supercharged: 0.04, aspiration.TwinSC: 0.04,
	},
	// Forced-induction conversions, NA only.
	"supercharger-roots":       {aspiration.NA: 0.55},
	"supercharger-centrifugal": {aspiration.NA: 0.50},
	"turbo-kit":                {aspiration.NA: 0.60},
	// Upgrades to existing forced induction.
	"turbo-upgrade": {
		aspiration.Turbo: 0.35, aspiration.TwinTurbo: 0.30,
	},
	"boost-controller": {
		aspiration.Turbo: 0.05, aspiration.TwinTurbo: 0.05,
	},
	"intercooler": {
		aspiration.Turbo: 0.03, aspiration.TwinTurbo: 0.035,
		aspiration.Supercharged: 0.02, aspiration.TwinSC: 0.025,
	},
	"flex-fuel-kit": {
		aspiration.NA: 0.04, aspiration.Turbo: 0.12, aspiration.TwinTurbo: 0.12,
		aspiration.Supercharged: 0.08, aspiration.TwinSC: 0.09,
	},
}

// PlatformOverride is a forum/dyno-validated gain for a specific modification
// on a specific vehicle platform. Overrides win outright over the percentage
// model and raise confidence to the calibrated tier.
type PlatformOverride struct {
	// ModKey is the modification this override applies to.
	ModKey string
	// Platform is matched case-insensitively against "make model".
	Platform string
	// ForcedOnly restricts the override to forced-induction engines.
	ForcedOnly bool
	// HP is the calibrated crank horsepower gain.
	HP float64
}

// platformOverrides holds the calibrated overrides. Downpipes on factory
// turbo platforms are the classic case: measured gains vary by platform far
// more than the generic percentage model captures.
var platformOverrides = []PlatformOverride{
	{ModKey: "downpipe", Platform: "bmw 335i", ForcedOnly: true, HP: 25},
	{ModKey: "downpipe", Platform: "toyota gr supra", ForcedOnly: true, HP: 30},
	{ModKey: "downpipe", Platform: "volkswagen golf gti", ForcedOnly: true, HP: 22},
	{ModKey: "downpipe", Platform: "subaru wrx", ForcedOnly: true, HP: 18},
	{ModKey: "intake", Platform: "toyota gr supra", ForcedOnly: true, HP: 12},
	{ModKey: "headers", Platform: "ford mustang gt", HP: 18},
}

// TorqueMultiplier maps aspiration to the ratio of torque gain to horsepower
// gain. Turbocharged engines pick up proportionally more torque than
// horsepower from low-RPM boost; NA engines slightly less.
var TorqueMultiplier = map[aspiration.Aspiration]float64{
	aspiration.NA:           0.92,
	aspiration.Turbo:        1.15,
	aspiration.TwinTurbo:    1.18,
	aspiration.Supercharged: 1.05,
	aspiration.TwinSC:       1.08,
}

// TorqueMultiplierFor returns the torque multiplier for an aspiration,
// defaulting to the NA figure for unknown values.
func TorqueMultiplierFor(asp aspiration.Aspiration) float64 {
	if m, ok := TorqueMultiplier[asp]; ok {
		return m
	}
	return TorqueMultiplier[aspiration.NA]
}
