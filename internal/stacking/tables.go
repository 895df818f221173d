package stacking

import (
	"dyno/internal/aspiration"
	"dyno/internal/catalog"
)

// tunePriority is a strict total order over the mutually exclusive tuning
// modifications. A higher-priority tune subsumes the gains of every tune
// below it, so at most one selected tune ever contributes.
var tunePriority = map[string]int{
	"stage3-tune":     40,
	"stage2-tune":     30,
	"stage1-tune":     20,
	"piggyback-tuner": 10,
}

// TunePriority returns the priority of a tuning modification key, or 0 for
// keys outside the tune relation.
func TunePriority(key string) int {
	return tunePriority[key]
}

// tuneExpectedHardware lists hardware each tune stage's calibration assumes
// is installed, per aspiration. Selecting both the tune and the hardware
// partially double-counts the hardware, so its contribution is halved.
var tuneExpectedHardware = map[string]map[aspiration.Aspiration][]string{
	"stage1-tune": {
		aspiration.Turbo:     {"intake"},
		aspiration.TwinTurbo: {"intake"},
	},
	"stage2-tune": {
		aspiration.Turbo:     {"intake", "downpipe"},
		aspiration.TwinTurbo: {"intake", "downpipe"},
		aspiration.NA:        {"intake", "headers"},
	},
	"stage3-tune": {
		aspiration.Turbo:     {"intake", "downpipe", "intercooler", "fuel-pump", "boost-controller"},
		aspiration.TwinTurbo: {"intake", "downpipe", "intercooler", "fuel-pump", "boost-controller"},
		aspiration.NA:        {"intake", "headers", "catback-exhaust"},
	},
}

// expectedByTune reports whether a tune's calibration assumes the given
// hardware key on the given aspiration.
func expectedByTune(tuneKey, hardwareKey string, asp aspiration.Aspiration) bool {
	byAsp, ok := tuneExpectedHardware[tuneKey]
	if !ok {
		return false
	}
	for _, key := range byAsp[asp] {
		if key == hardwareKey {
			return true
		}
	}
	return false
}

// categoryCaps holds the absolute horsepower ceiling each capped category may
// contribute, keyed by aspiration. Forced-induction platforms move more air,
// so breathing mods are worth more before the cap.
var categoryCaps = map[catalog.Category]map[aspiration.Aspiration]float64{
	catalog.CategoryExhaust: {
		aspiration.NA: 20, aspiration.Turbo: 40, aspiration.TwinTurbo: 45,
		aspiration.Supercharged: 25, aspiration.TwinSC: 30,
	},
	catalog.CategoryIntake: {
		aspiration.NA: 12, aspiration.Turbo: 30, aspiration.TwinTurbo: 32,
		aspiration.Supercharged: 15, aspiration.TwinSC: 18,
	},
	catalog.CategoryTune: {
		aspiration.NA: 60, aspiration.Turbo: 200, aspiration.TwinTurbo: 220,
		aspiration.Supercharged: 120, aspiration.TwinSC: 140,
	},
}

// CategoryCap returns the absolute HP cap for a category on an aspiration,
// with ok=false for uncapped categories.
func CategoryCap(c catalog.Category, asp aspiration.Aspiration) (float64, bool) {
	byAsp, ok := categoryCaps[c]
	if !ok {
		return 0, false
	}
	limit, ok := byAsp[asp]
	return limit, ok
}

// Diminishing-returns multipliers for stacked modifications.
const (
	// sameSubcategoryFactor applies to the second and later modification in
	// the same narrow subcategory (two catbacks, two intakes).
	sameSubcategoryFactor = 0.3
	// crossExhaustFactor applies to additional exhaust modifications from
	// different subcategories (headers plus catback).
	crossExhaustFactor = 0.85
)

// incompatiblePair is one entry of the fixed hard-incompatibility list.
type incompatiblePair struct {
	a, b    string
	message string
}

// incompatiblePairs lists combinations that cannot physically or electronically
// coexist. The calculator still produces a number: the lower-gain side of a
// hardware pair is zeroed, and a warning records what was lost.
var incompatiblePairs = []incompatiblePair{
	{"piggyback-tuner", "stage1-tune", "a piggyback tuner cannot run alongside a flash tune"},
	{"piggyback-tuner", "stage2-tune", "a piggyback tuner cannot run alongside a flash tune"},
	{"piggyback-tuner", "stage3-tune", "a piggyback tuner cannot run alongside a flash tune"},
	{"supercharger-roots", "turbo-kit", "a supercharger kit and a turbo kit cannot both be installed"},
	{"supercharger-centrifugal", "turbo-kit", "a supercharger kit and a turbo kit cannot both be installed"},
	{"supercharger-roots", "supercharger-centrifugal", "only one supercharger kit can be installed"},
}
