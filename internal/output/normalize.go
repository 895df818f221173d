package output

import (
	"sort"

	"dyno/internal/calc"
	"dyno/internal/stacking"
)

// NormalizeResult rounds every float in a Result in place for stable JSON
// encoding. Breakdown order already follows selection order; conflicts are
// sorted by severity (warnings first), then kind, then message.
func NormalizeResult(r *calc.Result) {
	if r == nil {
		return
	}
	r.StockHP = RoundHP(r.StockHP)
	r.StockTorque = RoundHP(r.StockTorque)
	r.RawGainHP = RoundHP(r.RawGainHP)
	r.AdjustedGainHP = RoundHP(r.AdjustedGainHP)
	r.TorqueGain = RoundHP(r.TorqueGain)
	r.ProjectedHP = RoundHP(r.ProjectedHP)
	r.ProjectedTorque = RoundHP(r.ProjectedTorque)
	r.WeightDelta = RoundHP(r.WeightDelta)
	r.Confidence.Score = RoundMetric(r.Confidence.Score)

	for i := range r.Breakdown {
		r.Breakdown[i].RawGainHP = RoundHP(r.Breakdown[i].RawGainHP)
		r.Breakdown[i].AppliedHP = RoundHP(r.Breakdown[i].AppliedHP)
		r.Breakdown[i].WeightDelta = RoundHP(r.Breakdown[i].WeightDelta)
	}

	SortConflicts(r.Conflicts)
	for i := range r.Conflicts {
		r.Conflicts[i].WastedHP = RoundHP(r.Conflicts[i].WastedHP)
	}
	sort.Strings(r.UnknownKeys)
}

// NormalizeProfile rounds a full profile in place.
func NormalizeProfile(p *calc.Profile) {
	if p == nil {
		return
	}
	NormalizeResult(p.Result)

	p.Metrics.ZeroSixty = RoundMetric(p.Metrics.ZeroSixty)
	p.Metrics.QuarterMile = RoundMetric(p.Metrics.QuarterMile)
	p.Metrics.TrapSpeed = RoundMetric(p.Metrics.TrapSpeed)
	p.Metrics.Braking = RoundMetric(p.Metrics.Braking)
	p.Metrics.LateralG = RoundMetric(p.Metrics.LateralG)

	p.Scores.PowerPotential = RoundScore(p.Scores.PowerPotential)
	p.Scores.Handling = RoundScore(p.Scores.Handling)
	p.Scores.Reliability = RoundScore(p.Scores.Reliability)
}

// severityRank orders conflict severities for display, warnings first.
var severityRank = map[stacking.Severity]int{
	stacking.SeverityWarning: 0,
	stacking.SeverityInfo:    1,
}

// SortConflicts orders conflicts by severity, then kind, then message.
func SortConflicts(conflicts []stacking.Conflict) {
	sort.SliceStable(conflicts, func(i, j int) bool {
		if severityRank[conflicts[i].Severity] != severityRank[conflicts[j].Severity] {
			return severityRank[conflicts[i].Severity] < severityRank[conflicts[j].Severity]
		}
		if conflicts[i].Kind != conflicts[j].Kind {
			return conflicts[i].Kind < conflicts[j].Kind
		}
		return conflicts[i].Message < conflicts[j].Message
	})
}
