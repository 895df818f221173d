// Package calc orchestrates the full calculation: aspiration classification,
// per-modification gain resolution, stacking adjustments, horsepower and
// torque aggregation, derived metrics, and ring scores. Everything here is a
// pure function of its inputs and the immutable catalog; a Calculator is
// safe for concurrent use without locking.
package calc

import (
	"dyno/internal/catalog"
	"dyno/internal/gains"
	"dyno/internal/perf"
	"dyno/internal/score"
	"dyno/internal/stacking"
)

// Calculator resolves modification keys against a catalog Store and computes
// results. It holds no mutable state.
type Calculator struct {
	store *catalog.Store
}

// New creates a Calculator backed by the given catalog.
func New(store *catalog.Store) *Calculator {
	return &Calculator{store: store}
}

// Compute projects the horsepower and torque impact of a selection on a
// vehicle. It never returns an error: a nil vehicle or empty selection
// yields the stock-value base case at the verified tier, unknown keys
// contribute zero, and conflicts only annotate the result.
func (c *Calculator) Compute(vehicle *catalog.Vehicle, keys []string) *Result {
	result, _ := c.compute(vehicle, keys)
	return result
}

// compute is the shared core of Compute and ComputeProfile. It also returns
// the resolved modifications so profile derivation does not resolve the
// selection a second time.
func (c *Calculator) compute(vehicle *catalog.Vehicle, keys []string) (*Result, []catalog.Modification) {
	if vehicle == nil {
		return &Result{Confidence: ConfidenceForTier(1)}, nil
	}

	asp := vehicle.Aspiration()
	result := &Result{
		VehicleID:   vehicle.ID,
		VehicleName: vehicle.DisplayName(),
		Aspiration:  asp,
		StockHP:     vehicle.StockHP,
		StockTorque: vehicle.StockTorque,
		ProjectedHP: vehicle.StockHP,
		Confidence:  ConfidenceForTier(1),
	}
	result.ProjectedTorque = vehicle.StockTorque

	mods, unknown := c.store.Resolve(keys)
	result.UnknownKeys = unknown
	if len(mods) == 0 {
		return result, mods
	}

	adjusted, conflicts := stacking.Apply(vehicle, asp, mods)
	result.Conflicts = conflicts

	worstTier := 0
	for i := range adjusted {
		entry := &adjusted[i]
		result.RawGainHP += entry.Raw.HP
		result.AdjustedGainHP += entry.Applied
		result.WeightDelta += entry.Mod.WeightDelta

		result.Breakdown = append(result.Breakdown, ModBreakdown{
			Key:         entry.Mod.Key,
			Name:        entry.Mod.Name,
			Category:    string(entry.Mod.Category),
			RawGainHP:   entry.Raw.HP,
			AppliedHP:   entry.Applied,
			Adjustment:  entry.Reason(),
			Source:      entry.Raw.Source,
			WeightDelta: entry.Mod.WeightDelta,
		})

		// Overall confidence is the worst tier among contributing
		// modifications; non-power parts never degrade it.
		if entry.Applied > 0 {
			if tier := tierForSource(entry.Raw.Source); tier > worstTier {
				worstTier = tier
			}
		}
	}
	if worstTier > 0 {
		result.Confidence = ConfidenceForTier(worstTier)
	}

	// Torque follows horsepower through the aspiration multiplier unless the
	// catalog carries an explicit torque figure for a modification, scaled by
	// whatever fraction of its raw gain survived stacking.
	mult := gains.TorqueMultiplierFor(asp)
	for i := range adjusted {
		entry := &adjusted[i]
		if entry.Applied <= 0 {
			continue
		}
		if tq, ok := entry.Mod.GainTorque[asp]; ok && entry.Raw.HP > 0 {
			result.TorqueGain += tq * (entry.Applied / entry.Raw.HP)
		} else {
			result.TorqueGain += entry.Applied * mult
		}
	}

	result.ProjectedHP = result.StockHP + result.AdjustedGainHP
	result.ProjectedTorque = result.StockTorque + result.TorqueGain
	return result, mods
}

// ComputeProfile runs Compute and then derives performance metrics and ring
// scores, the single call the presentation layer renders as-is.
func (c *Calculator) ComputeProfile(vehicle *catalog.Vehicle, keys []string) *Profile {
	result, mods := c.compute(vehicle, keys)
	profile := &Profile{Result: result}
	if vehicle == nil {
		return profile
	}

	in := perf.BuildInput(vehicle, result.ProjectedHP, result.WeightDelta, mods)
	profile.Metrics = perf.Project(in)
	profile.Scores = score.Compute(vehicle, result.Aspiration, result.AdjustedGainHP, mods)
	return profile
}

// ComputeByID resolves a vehicle ID through the catalog before computing,
// the single batched call the conversational tool layer uses. ok is false
// when the vehicle ID is unknown.
func (c *Calculator) ComputeByID(vehicleID string, keys []string) (*Profile, bool) {
	vehicle, found := c.store.Vehicle(vehicleID)
	if !found {
		return nil, false
	}
	return c.ComputeProfile(&vehicle, keys), true
}
