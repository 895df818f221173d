package envelope

import (
	"dyno/internal/calc"
	"dyno/internal/stacking"
)

// Builder constructs Response envelopes using a fluent API.
type Builder struct {
	resp *Response
}

// New creates a new envelope builder.
func New() *Builder {
	return &Builder{
		resp: &Response{
			SchemaVersion: CurrentSchemaVersion,
		},
	}
}

// Data sets the tool-specific payload.
func (b *Builder) Data(data interface{}) *Builder {
	b.resp.Data = data
	return b
}

// FromResult populates metadata from a calculation result: confidence,
// provenance, and warnings derived from conflicts and unknown keys.
func (b *Builder) FromResult(r *calc.Result) *Builder {
	if r == nil {
		return b
	}

	if b.resp.Meta == nil {
		b.resp.Meta = &Meta{}
	}

	b.resp.Meta.Confidence = &Confidence{
		Score: r.Confidence.Score,
		Tier:  TierFromLabel(string(r.Confidence.Label)),
	}
	if r.Confidence.Tier > 1 {
		b.resp.Meta.Confidence.Reasons = append(
			b.resp.Meta.Confidence.Reasons,
			"worst-modification-source",
		)
	}

	factors := generateConfidenceFactors(r)
	if len(factors) > 0 {
		b.resp.Meta.Confidence.Factors = factors
	}

	b.resp.Meta.Provenance = &Provenance{
		Sources:   gainSources(r),
		VehicleID: r.VehicleID,
	}

	for _, c := range r.Conflicts {
		b.resp.Warnings = append(b.resp.Warnings, Warning{
			Code:    string(c.Kind),
			Message: c.Message,
		})
	}
	for _, key := range r.UnknownKeys {
		b.resp.Warnings = append(b.resp.Warnings, Warning{
			Code:    "MOD_UNKNOWN",
			Message: "unknown modification key: " + key,
		})
	}

	return b
}

// generateConfidenceFactors creates ConfidenceFactor entries from a result's
// per-modification breakdown. Each gain source appears once.
func generateConfidenceFactors(r *calc.Result) []ConfidenceFactor {
	var factors []ConfidenceFactor
	seen := make(map[string]bool)

	for _, mb := range r.Breakdown {
		if mb.AppliedHP <= 0 {
			continue
		}
		src := string(mb.Source)
		if seen[src] {
			continue
		}
		seen[src] = true

		var impact float64
		switch mb.Source {
		case "platform-override":
			impact = 0.2
		case "percent-model":
			impact = 0.0
		case "flat-table":
			impact = -0.2
		}
		factors = append(factors, ConfidenceFactor{
			Factor: "gain_source",
			Status: src,
			Impact: impact,
		})
	}

	return factors
}

// gainSources lists the distinct sources that produced the result, in
// breakdown order.
func gainSources(r *calc.Result) []string {
	sources := make([]string, 0, 2)
	seen := make(map[string]bool)
	for _, mb := range r.Breakdown {
		src := string(mb.Source)
		if src == "" || seen[src] {
			continue
		}
		seen[src] = true
		sources = append(sources, src)
	}
	return sources
}

// WithTruncation adds truncation metadata.
func (b *Builder) WithTruncation(truncated bool, shown, total int, reason string) *Builder {
	if !truncated {
		return b
	}

	if b.resp.Meta == nil {
		b.resp.Meta = &Meta{}
	}

	b.resp.Meta.Truncation = &Truncation{
		IsTruncated: true,
		Shown:       shown,
		Total:       total,
		Reason:      reason,
	}

	return b
}

// Suggest adds a recommended follow-up tool call.
func (b *Builder) Suggest(tool string, params map[string]interface{}, reason string) *Builder {
	b.resp.SuggestedNextCalls = append(b.resp.SuggestedNextCalls, SuggestedCall{
		Tool:   tool,
		Params: params,
		Reason: reason,
	})
	return b
}

// Warning adds a warning message.
func (b *Builder) Warning(msg string) *Builder {
	b.resp.Warnings = append(b.resp.Warnings, Warning{Message: msg})
	return b
}

// WarningWithCode adds a warning with a code.
func (b *Builder) WarningWithCode(code, msg string) *Builder {
	b.resp.Warnings = append(b.resp.Warnings, Warning{Code: code, Message: msg})
	return b
}

// Error sets the error field.
func (b *Builder) Error(err error) *Builder {
	if err != nil {
		msg := err.Error()
		b.resp.Error = &msg
	}
	return b
}

// Build returns the completed response envelope.
func (b *Builder) Build() *Response {
	return b.resp
}

// HasBlockingConflict reports whether any conflict in the list is an
// incompatibility, which callers may want to surface more prominently.
func HasBlockingConflict(conflicts []stacking.Conflict) bool {
	for _, c := range conflicts {
		if c.Kind == stacking.KindIncompatible {
			return true
		}
	}
	return false
}

// Operational creates a simple envelope for operational tools.
// These always have full confidence and no truncation concerns.
func Operational(data interface{}) *Response {
	return &Response{
		SchemaVersion: CurrentSchemaVersion,
		Data:          data,
		Meta: &Meta{
			Confidence: &Confidence{
				Score: 1.0,
				Tier:  TierVerified,
			},
		},
	}
}
