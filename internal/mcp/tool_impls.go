package mcp

import (
	"fmt"

	"dyno/internal/aspiration"
	"dyno/internal/catalog"
	"dyno/internal/envelope"
	"dyno/internal/errors"
	"dyno/internal/output"
)

// stringSlice extracts a []string parameter from raw tool arguments.
func stringSlice(params map[string]interface{}, key string) []string {
	raw, ok := params[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// toolCalculateModImpact implements the calculateModImpact tool
func (s *Server) toolCalculateModImpact(params map[string]interface{}) (*envelope.Response, error) {
	vehicleID, ok := params["vehicleId"].(string)
	if !ok || vehicleID == "" {
		return nil, errors.New(errors.FormatInvalid, "missing or invalid 'vehicleId' parameter", nil)
	}
	keys := stringSlice(params, "modifications")

	vehicle, found := s.store.Vehicle(vehicleID)
	if !found {
		return nil, errors.New(errors.VehicleNotFound, fmt.Sprintf("vehicle not found: %s", vehicleID), nil)
	}

	result := s.calculator.Compute(&vehicle, keys)
	output.NormalizeResult(result)

	b := envelope.New().Data(result).FromResult(result)
	if len(keys) > 0 {
		b.Suggest("getPerformanceProfile", map[string]interface{}{
			"vehicleId":     vehicleID,
			"modifications": keys,
		}, "See projected acceleration, braking, and build scores for this setup")
	}

	return b.Build(), nil
}

// toolGetPerformanceProfile implements the getPerformanceProfile tool
func (s *Server) toolGetPerformanceProfile(params map[string]interface{}) (*envelope.Response, error) {
	vehicleID, ok := params["vehicleId"].(string)
	if !ok || vehicleID == "" {
		return nil, errors.New(errors.FormatInvalid, "missing or invalid 'vehicleId' parameter", nil)
	}
	keys := stringSlice(params, "modifications")

	profile, found := s.calculator.ComputeByID(vehicleID, keys)
	if !found {
		return nil, errors.New(errors.VehicleNotFound, fmt.Sprintf("vehicle not found: %s", vehicleID), nil)
	}
	output.NormalizeProfile(profile)

	return envelope.New().
		Data(profile).
		FromResult(profile.Result).
		Build(), nil
}

// toolListModifications implements the listModifications tool
func (s *Server) toolListModifications(params map[string]interface{}) (*envelope.Response, error) {
	limit := 50
	if l, ok := params["limit"].(float64); ok && l > 0 {
		limit = int(l)
	}

	var mods []catalog.Modification
	if cat, ok := params["category"].(string); ok && cat != "" {
		mods = s.store.ModificationsByCategory(catalog.Category(cat))
		if len(mods) == 0 {
			return envelope.New().
				Data([]catalog.Modification{}).
				WarningWithCode("MOD_UNKNOWN", fmt.Sprintf("no modifications in category: %s", cat)).
				Build(), nil
		}
	} else {
		mods = s.store.Modifications()
	}

	total := len(mods)
	truncated := total > limit
	if truncated {
		mods = mods[:limit]
	}

	return envelope.New().
		Data(map[string]interface{}{
			"modifications": mods,
			"count":         len(mods),
		}).
		WithTruncation(truncated, len(mods), total, "max-mods").
		Build(), nil
}

// toolGetVehicle implements the getVehicle tool
func (s *Server) toolGetVehicle(params map[string]interface{}) (*envelope.Response, error) {
	vehicleID, ok := params["vehicleId"].(string)
	if !ok || vehicleID == "" {
		return nil, errors.New(errors.FormatInvalid, "missing or invalid 'vehicleId' parameter", nil)
	}

	vehicle, found := s.store.Vehicle(vehicleID)
	if !found {
		return nil, errors.New(errors.VehicleNotFound, fmt.Sprintf("vehicle not found: %s", vehicleID), nil)
	}

	asp := vehicle.Aspiration()
	data := map[string]interface{}{
		"vehicle":         vehicle,
		"aspiration":      asp,
		"aspirationLabel": asp.Label(),
	}

	return envelope.Operational(data), nil
}

// toolClassifyAspiration implements the classifyAspiration tool
func (s *Server) toolClassifyAspiration(params map[string]interface{}) (*envelope.Response, error) {
	engine, ok := params["engine"].(string)
	if !ok || engine == "" {
		return nil, errors.New(errors.FormatInvalid, "missing or invalid 'engine' parameter", nil)
	}

	asp := aspiration.Classify(engine)
	data := map[string]interface{}{
		"engine":     engine,
		"aspiration": asp,
		"label":      asp.Label(),
		"forced":     asp.Forced(),
	}

	return envelope.Operational(data), nil
}

// toolGetStatus implements the getStatus tool
func (s *Server) toolGetStatus(params map[string]interface{}) (*envelope.Response, error) {
	data := map[string]interface{}{
		"status":        "healthy",
		"version":       s.version,
		"session":       s.sessionID,
		"modifications": len(s.store.Modifications()),
		"vehicles":      len(s.store.Vehicles()),
	}

	return envelope.Operational(data), nil
}
