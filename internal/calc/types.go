package calc

import (
	"dyno/internal/aspiration"
	"dyno/internal/gains"
	"dyno/internal/perf"
	"dyno/internal/score"
	"dyno/internal/stacking"
)

// ConfidenceLabel is the coarse confidence label attached to a result.
type ConfidenceLabel string

const (
	// Verified marks results anchored entirely to known stock data (the
	// empty-selection base case).
	Verified ConfidenceLabel = "verified"
	// Calibrated marks results whose worst figure came from a
	// platform-specific dyno-validated override.
	Calibrated ConfidenceLabel = "calibrated"
	// Estimated marks results whose worst figure came from the physics
	// percentage model.
	Estimated ConfidenceLabel = "estimated"
	// Approximate marks results whose worst figure came from the flat
	// rule-based table.
	Approximate ConfidenceLabel = "approximate"
)

// Confidence grades how directly a result traces to measured data. Tier 1 is
// best; one low-confidence modification degrades the whole result.
type Confidence struct {
	Score float64         `json:"score"` // 0.0 - 1.0
	Label ConfidenceLabel `json:"label"`
	Tier  int             `json:"tier"` // 1 = best, 4 = worst
}

// confidenceByTier maps numeric tiers to labels and scores.
var confidenceByTier = map[int]Confidence{
	1: {Score: 1.0, Label: Verified, Tier: 1},
	2: {Score: 0.85, Label: Calibrated, Tier: 2},
	3: {Score: 0.6, Label: Estimated, Tier: 3},
	4: {Score: 0.35, Label: Approximate, Tier: 4},
}

// ConfidenceForTier returns the Confidence for a numeric tier, clamping out
// of range tiers to the nearest valid one.
func ConfidenceForTier(tier int) Confidence {
	if tier < 1 {
		tier = 1
	}
	if tier > 4 {
		tier = 4
	}
	return confidenceByTier[tier]
}

// tierForSource maps a gain-model source to its confidence tier.
func tierForSource(src gains.Source) int {
	switch src {
	case gains.SourceOverride:
		return 2
	case gains.SourcePercent:
		return 3
	case gains.SourceFlat:
		return 4
	default:
		return 1
	}
}

// ModBreakdown is the per-modification line of a result.
type ModBreakdown struct {
	Key         string       `json:"key"`
	Name        string       `json:"name"`
	Category    string       `json:"category"`
	RawGainHP   float64      `json:"rawGainHp"`
	AppliedHP   float64      `json:"appliedHp"`
	Adjustment  string       `json:"adjustment,omitempty"`
	Source      gains.Source `json:"source"`
	WeightDelta float64      `json:"weightDelta,omitempty"`
}

// Result is the sole output of a calculation. It is immutable once returned;
// repeated calls with the same inputs return identical results.
type Result struct {
	VehicleID   string                `json:"vehicleId,omitempty"`
	VehicleName string                `json:"vehicleName,omitempty"`
	Aspiration  aspiration.Aspiration `json:"aspiration"`

	StockHP     float64 `json:"stockHp"`
	StockTorque float64 `json:"stockTorque"`

	// RawGainHP is the unadjusted sum of every modification's gain.
	RawGainHP float64 `json:"rawGainHp"`
	// AdjustedGainHP is the post-stacking gain. Always <= RawGainHP.
	AdjustedGainHP float64 `json:"adjustedGainHp"`
	TorqueGain     float64 `json:"torqueGain"`

	ProjectedHP     float64 `json:"projectedHp"`
	ProjectedTorque float64 `json:"projectedTorque"`
	WeightDelta     float64 `json:"weightDelta"`

	Confidence Confidence          `json:"confidence"`
	Breakdown  []ModBreakdown      `json:"breakdown,omitempty"`
	Conflicts  []stacking.Conflict `json:"conflicts,omitempty"`
	// UnknownKeys lists selection keys that were not in the catalog. They
	// contribute nothing and are excluded from the breakdown.
	UnknownKeys []string `json:"unknownKeys,omitempty"`
}

// Profile is the full answer for the presentation layer: the calculation
// result plus derived metrics and ring scores.
type Profile struct {
	Result  *Result      `json:"result"`
	Metrics perf.Metrics `json:"metrics"`
	Scores  score.Rings  `json:"scores"`
}
