// Package gains computes the raw horsepower gain of a single modification on
// a single vehicle. Resolution runs through an explicit ordered chain of
// three tiers: platform-calibrated override, physics percentage-of-stock
// model, then the flat aspiration-keyed table from the catalog. The first
// tier that produces a value wins outright; tiers are never blended or
// max'd against each other.
package gains

import (
	"strings"

	"dyno/internal/aspiration"
	"dyno/internal/catalog"
)

// Source identifies which resolver tier produced a gain figure.
type Source string

const (
	// SourceOverride is a platform-calibrated dyno figure (calibrated tier).
	SourceOverride Source = "platform-override"
	// SourcePercent is the physics percentage-of-stock model (estimated tier).
	SourcePercent Source = "percent-model"
	// SourceFlat is the rule-based flat table fallback (approximate tier).
	SourceFlat Source = "flat-table"
	// SourceNone means no tier produced a figure; the modification does not
	// affect power.
	SourceNone Source = "none"
)

// Resolution is the outcome of resolving one modification's raw gain.
type Resolution struct {
	// HP is the raw crank horsepower gain before any stacking adjustment.
	HP float64
	// Source is the resolver tier that produced HP.
	Source Source
}

// resolver is one tier of the chain. ok is false when the tier has no figure
// for this modification.
type resolver func(v *catalog.Vehicle, mod *catalog.Modification, asp aspiration.Aspiration) (hp float64, ok bool)

// Resolve computes the raw horsepower gain for one modification. It never
// fails: a modification with no figure in any tier resolves to zero with
// SourceNone.
func Resolve(v *catalog.Vehicle, mod *catalog.Modification, asp aspiration.Aspiration) Resolution {
	if v == nil || mod == nil || !mod.PowerAffecting() {
		return Resolution{Source: SourceNone}
	}

	chain := []struct {
		source  Source
		resolve resolver
	}{
		{SourceOverride, resolveOverride},
		{SourcePercent, resolvePercent},
		{SourceFlat, resolveFlat},
	}

	for _, tier := range chain {
		if hp, ok := tier.resolve(v, mod, asp); ok {
			if hp <= 0 {
				return Resolution{Source: SourceNone}
			}
			return Resolution{HP: hp, Source: tier.source}
		}
	}
	return Resolution{Source: SourceNone}
}

// resolveOverride checks the platform-calibrated override table.
func resolveOverride(v *catalog.Vehicle, mod *catalog.Modification, asp aspiration.Aspiration) (float64, bool) {
	platform := strings.ToLower(strings.TrimSpace(v.Make + " " + v.Model))
	if platform == "" {
		return 0, false
	}
	for _, o := range platformOverrides {
		if o.ModKey != mod.Key {
			continue
		}
		if o.ForcedOnly && !asp.Forced() {
			continue
		}
		if strings.Contains(platform, o.Platform) {
			return o.HP, true
		}
	}
	return 0, false
}

// resolvePercent checks the percentage-of-stock-HP physics model.
func resolvePercent(v *catalog.Vehicle, mod *catalog.Modification, asp aspiration.Aspiration) (float64, bool) {
	byAsp, ok := percentOfStock[mod.Key]
	if !ok {
		return 0, false
	}
	pct, ok := byAsp[asp]
	if !ok {
		return 0, false
	}
	return v.StockHP * pct, true
}

// resolveFlat checks the catalog's flat aspiration-keyed HP table.
func resolveFlat(_ *catalog.Vehicle, mod *catalog.Modification, asp aspiration.Aspiration) (float64, bool) {
	if len(mod.GainHP) == 0 {
		return 0, false
	}
	hp, ok := mod.GainHP[asp]
	if !ok {
		return 0, false
	}
	return hp, true
}

// HasPercentEntry reports whether the percentage model covers a
// (modification, aspiration) pair. Exposed for catalog validation tooling.
func HasPercentEntry(modKey string, asp aspiration.Aspiration) bool {
	byAsp, ok := percentOfStock[modKey]
	if !ok {
		return false
	}
	_, ok = byAsp[asp]
	return ok
}
