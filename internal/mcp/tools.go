package mcp

import "dyno/internal/envelope"

// Tool represents a dyno tool exposed via MCP
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// ToolHandler is a function that handles a tool call and returns an envelope response.
type ToolHandler func(params map[string]interface{}) (*envelope.Response, error)

// GetToolDefinitions returns all tool definitions
func (s *Server) GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "calculateModImpact",
			Description: "Calculate the horsepower and torque impact of a set of modifications on a vehicle, including stacking adjustments, conflicts, and a confidence grade",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"vehicleId": map[string]interface{}{
						"type":        "string",
						"description": "Catalog vehicle ID (e.g., 'gti-mk7')",
					},
					"modifications": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "string",
						},
						"description": "Modification keys to apply (e.g., ['stage2-tune', 'downpipe'])",
					},
				},
				"required": []string{"vehicleId"},
			},
		},
		{
			Name:        "getPerformanceProfile",
			Description: "Get the full performance profile for a modified vehicle: projected output, 0-60, quarter mile, braking, lateral g, and build scores",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"vehicleId": map[string]interface{}{
						"type":        "string",
						"description": "Catalog vehicle ID",
					},
					"modifications": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "string",
						},
						"description": "Modification keys to apply",
					},
				},
				"required": []string{"vehicleId"},
			},
		},
		{
			Name:        "listModifications",
			Description: "List catalog modifications, optionally filtered by category",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"category": map[string]interface{}{
						"type":        "string",
						"description": "Optional category filter (e.g., 'exhaust', 'tune', 'suspension')",
					},
					"limit": map[string]interface{}{
						"type":        "number",
						"default":     50,
						"description": "Maximum number of modifications to return",
					},
				},
			},
		},
		{
			Name:        "getVehicle",
			Description: "Get a vehicle's stock specifications and aspiration classification",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"vehicleId": map[string]interface{}{
						"type":        "string",
						"description": "Catalog vehicle ID",
					},
				},
				"required": []string{"vehicleId"},
			},
		},
		{
			Name:        "classifyAspiration",
			Description: "Classify an engine description string into an aspiration type (na, turbo, twin-turbo, supercharged, twin-supercharged)",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"engine": map[string]interface{}{
						"type":        "string",
						"description": "Free-form engine description (e.g., '2.0L twin-scroll turbo I4')",
					},
				},
				"required": []string{"engine"},
			},
		},
		{
			Name:        "getStatus",
			Description: "Get dyno server status including catalog size and version",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
	}
}

// RegisterTools registers all tool handlers
func (s *Server) RegisterTools() {
	s.tools["calculateModImpact"] = s.toolCalculateModImpact
	s.tools["getPerformanceProfile"] = s.toolGetPerformanceProfile
	s.tools["listModifications"] = s.toolListModifications
	s.tools["getVehicle"] = s.toolGetVehicle
	s.tools["classifyAspiration"] = s.toolClassifyAspiration
	s.tools["getStatus"] = s.toolGetStatus
}
