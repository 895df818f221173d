// Package stacking adjusts raw per-modification gains for the ways real
// modifications interact: tune mutual exclusivity, tune/hardware overlap
// discounts, absolute category caps, and diminishing returns within a
// subcategory. Conflicts are a side channel: they annotate the result and
// never abort a calculation.
package stacking

import (
	"fmt"
	"strings"

	"dyno/internal/aspiration"
	"dyno/internal/catalog"
	"dyno/internal/gains"
)

// ConflictKind classifies a detected interaction.
type ConflictKind string

const (
	// KindRedundant marks a modification fully subsumed by another (a lower
	// tune stage under a higher one).
	KindRedundant ConflictKind = "redundant"
	// KindOverlap marks a partial double-count (tune-expected hardware,
	// diminishing returns, category caps).
	KindOverlap ConflictKind = "overlap"
	// KindIncompatible marks a combination that cannot coexist.
	KindIncompatible ConflictKind = "incompatible"
)

// Severity grades a conflict for display.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Conflict records one detected modification interaction.
type Conflict struct {
	Kind     ConflictKind `json:"kind"`
	Severity Severity     `json:"severity"`
	Message  string       `json:"message"`
	Mods     []string     `json:"mods"`
	// WastedHP estimates the horsepower lost to this conflict.
	WastedHP float64 `json:"wastedHp"`
}

// Adjusted is the post-stacking contribution of one modification.
type Adjusted struct {
	Mod catalog.Modification
	// Raw is the unadjusted gain from the gain model.
	Raw gains.Resolution
	// Applied is the horsepower that survives stacking.
	Applied float64
	// Reasons lists the adjustments applied, in order.
	Reasons []string
}

// Reason returns the adjustment reasons joined for display, or "" when the
// full raw gain was applied.
func (a *Adjusted) Reason() string {
	return strings.Join(a.Reasons, "+")
}

// Apply runs the stacking rules over resolved modifications in selection
// order and returns the adjusted contributions plus all detected conflicts.
// The adjusted total is always less than or equal to the raw sum.
func Apply(vehicle *catalog.Vehicle, asp aspiration.Aspiration, mods []catalog.Modification) ([]Adjusted, []Conflict) {
	adjusted := make([]Adjusted, 0, len(mods))
	var conflicts []Conflict

	raw := make([]gains.Resolution, len(mods))
	for i := range mods {
		raw[i] = gains.Resolve(vehicle, &mods[i], asp)
	}

	activeTune := activeTuneKey(mods)
	categoryTotals := make(map[catalog.Category]float64)
	cappedCategories := make(map[catalog.Category]bool)
	subcategorySeen := make(map[string]bool)
	exhaustSeen := false

	incompat, losers := incompatibilityConflicts(mods, raw)
	conflicts = append(conflicts, incompat...)

	for i := range mods {
		mod := mods[i]
		entry := Adjusted{Mod: mod, Raw: raw[i], Applied: raw[i].HP}

		// The losing side of an incompatible hardware pair cannot be
		// installed, so it contributes nothing.
		if losers[mod.Key] {
			entry.Applied = 0
			entry.Reasons = append(entry.Reasons, "incompatible")
			adjusted = append(adjusted, entry)
			continue
		}

		// Tune exclusivity: only the highest-priority selected tune
		// contributes. Every other tune is redundant and wastes its own
		// raw gain.
		if TunePriority(mod.Key) > 0 && mod.Key != activeTune {
			entry.Applied = 0
			entry.Reasons = append(entry.Reasons, "redundant-tune")
			conflicts = append(conflicts, Conflict{
				Kind:     KindRedundant,
				Severity: SeverityWarning,
				Message: fmt.Sprintf("%s is redundant: %s already includes its gains",
					mod.Name, activeTune),
				Mods:     []string{mod.Key, activeTune},
				WastedHP: raw[i].HP,
			})
			adjusted = append(adjusted, entry)
			continue
		}

		// Tune/hardware overlap: the active tune's calibration already
		// assumes this hardware, so half its contribution is double-counted.
		if activeTune != "" && entry.Applied > 0 && expectedByTune(activeTune, mod.Key, asp) {
			discount := entry.Applied * 0.5
			entry.Applied -= discount
			entry.Reasons = append(entry.Reasons, "tune-overlap")
			conflicts = append(conflicts, Conflict{
				Kind:     KindOverlap,
				Severity: SeverityInfo,
				Message: fmt.Sprintf("%s is expected by %s; its gains are partially included in the tune",
					mod.Name, activeTune),
				Mods:     []string{mod.Key, activeTune},
				WastedHP: discount,
			})
		}

		// Diminishing returns within a subcategory, and the gentler
		// cross-subcategory factor for stacked exhaust work.
		if entry.Applied > 0 {
			subKey := string(mod.Category) + "/" + mod.Subcategory
			switch {
			case subcategorySeen[subKey]:
				lost := entry.Applied * (1 - sameSubcategoryFactor)
				entry.Applied *= sameSubcategoryFactor
				entry.Reasons = append(entry.Reasons, "diminishing-returns")
				conflicts = append(conflicts, Conflict{
					Kind:     KindOverlap,
					Severity: SeverityInfo,
					Message: fmt.Sprintf("%s stacks with another %s modification; returns diminish sharply",
						mod.Name, mod.Subcategory),
					Mods:     []string{mod.Key},
					WastedHP: lost,
				})
			case mod.Category == catalog.CategoryExhaust && exhaustSeen:
				entry.Applied *= crossExhaustFactor
				entry.Reasons = append(entry.Reasons, "cross-exhaust")
			}
			if entry.Applied > 0 {
				subcategorySeen[subKey] = true
				if mod.Category == catalog.CategoryExhaust {
					exhaustSeen = true
				}
			}
		}

		// Absolute category caps for exhaust, intake, and tune.
		if limit, capped := CategoryCap(mod.Category, asp); capped && entry.Applied > 0 {
			room := limit - categoryTotals[mod.Category]
			if room < 0 {
				room = 0
			}
			if entry.Applied > room {
				clamped := entry.Applied - room
				entry.Applied = room
				entry.Reasons = append(entry.Reasons, "category-cap")
				if !cappedCategories[mod.Category] {
					cappedCategories[mod.Category] = true
					conflicts = append(conflicts, Conflict{
						Kind:     KindOverlap,
						Severity: SeverityInfo,
						Message: fmt.Sprintf("%s category reached its %.0f hp limit for %s engines",
							mod.Category, limit, asp.Label()),
						Mods:     []string{mod.Key},
						WastedHP: clamped,
					})
				}
			}
		}
		categoryTotals[mod.Category] += entry.Applied

		adjusted = append(adjusted, entry)
	}

	return adjusted, conflicts
}

// activeTuneKey returns the highest-priority tune in the selection, or ""
// when no tune is selected.
func activeTuneKey(mods []catalog.Modification) string {
	best := ""
	bestPriority := 0
	for i := range mods {
		if p := TunePriority(mods[i].Key); p > bestPriority {
			best = mods[i].Key
			bestPriority = p
		}
	}
	return best
}

// incompatibilityConflicts checks the fixed hard-incompatibility list against
// the selection. Hardware pairs zero their lower-gain side; tune-on-tune
// pairs are left to tune exclusivity, which already zeroes the loser. A
// numeric result is produced either way.
func incompatibilityConflicts(mods []catalog.Modification, raw []gains.Resolution) ([]Conflict, map[string]bool) {
	index := make(map[string]int, len(mods))
	for i := range mods {
		index[mods[i].Key] = i
	}

	var conflicts []Conflict
	losers := make(map[string]bool)
	for _, pair := range incompatiblePairs {
		ai, aOK := index[pair.a]
		bi, bOK := index[pair.b]
		if !aOK || !bOK {
			continue
		}

		conflict := Conflict{
			Kind:     KindIncompatible,
			Severity: SeverityWarning,
			Message:  pair.message,
			Mods:     []string{pair.a, pair.b},
		}

		if TunePriority(pair.a) == 0 || TunePriority(pair.b) == 0 {
			// Higher raw gain wins; on a tie the earlier selection wins.
			loser := ai
			if raw[ai].HP > raw[bi].HP || (raw[ai].HP == raw[bi].HP && ai < bi) {
				loser = bi
			}
			losers[mods[loser].Key] = true
			conflict.WastedHP = raw[loser].HP
		}

		conflicts = append(conflicts, conflict)
	}
	return conflicts, losers
}
