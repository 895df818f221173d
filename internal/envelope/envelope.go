// Package envelope provides a standardized response wrapper for all MCP tool responses.
// Every tool response is wrapped in a consistent envelope that includes metadata about
// confidence, provenance, truncation, warnings, and suggested next calls.
package envelope

// ConfidenceTier represents the quality tier of results.
type ConfidenceTier string

const (
	// TierVerified indicates exact catalog data with no estimation involved.
	TierVerified ConfidenceTier = "verified"
	// TierCalibrated indicates platform-specific measured gain data.
	TierCalibrated ConfidenceTier = "calibrated"
	// TierEstimated indicates gains modeled as a percentage of stock output.
	TierEstimated ConfidenceTier = "estimated"
	// TierApproximate indicates generic flat-table gain figures.
	TierApproximate ConfidenceTier = "approximate"
)

// ConfidenceFactor explains one component of the confidence score.
type ConfidenceFactor struct {
	Factor string  `json:"factor"` // e.g., "gain_source", "catalog"
	Status string  `json:"status"` // e.g., "platform-override", "flat-table"
	Impact float64 `json:"impact"` // contribution to score (-1.0 to 1.0)
}

// Confidence describes result quality.
type Confidence struct {
	Score   float64            `json:"score"`             // 0.0 - 1.0
	Tier    ConfidenceTier     `json:"tier"`              // verified, calibrated, estimated, approximate
	Reasons []string           `json:"reasons,omitempty"` // why this tier
	Factors []ConfidenceFactor `json:"factors,omitempty"` // breakdown of score
}

// Provenance describes which gain sources contributed to the result.
type Provenance struct {
	Sources   []string `json:"sources"`             // e.g., ["platform-override", "percent-model"]
	VehicleID string   `json:"vehicleId,omitempty"` // vehicle the result was computed for
}

// Truncation describes result trimming.
type Truncation struct {
	IsTruncated bool   `json:"isTruncated"`
	Shown       int    `json:"shown,omitempty"`  // items returned
	Total       int    `json:"total,omitempty"`  // total available
	Reason      string `json:"reason,omitempty"` // "max-mods", etc.
}

// Meta holds response metadata.
type Meta struct {
	Confidence *Confidence `json:"confidence,omitempty"`
	Provenance *Provenance `json:"provenance,omitempty"`
	Truncation *Truncation `json:"truncation,omitempty"`
}

// SuggestedCall represents a recommended follow-up tool call.
type SuggestedCall struct {
	Tool   string                 `json:"tool"`             // tool name
	Params map[string]interface{} `json:"params,omitempty"` // pre-filled parameters
	Reason string                 `json:"reason,omitempty"` // why this is suggested
}

// Warning represents a non-fatal issue.
type Warning struct {
	Code    string `json:"code,omitempty"` // machine-readable code
	Message string `json:"message"`        // human-readable message
}

// Response is the standard envelope for all MCP tool responses.
type Response struct {
	SchemaVersion      string          `json:"schemaVersion"`
	Data               interface{}     `json:"data"`
	Meta               *Meta           `json:"meta,omitempty"`
	Warnings           []Warning       `json:"warnings,omitempty"`
	Error              *string         `json:"error,omitempty"`
	SuggestedNextCalls []SuggestedCall `json:"suggestedNextCalls,omitempty"`
}

// CurrentSchemaVersion is the current envelope schema version.
const CurrentSchemaVersion = "1.0"
