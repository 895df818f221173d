package mcp

import (
	"testing"

	"dyno/internal/calc"
	"dyno/internal/catalog"
	"dyno/internal/envelope"
	dynoerrors "dyno/internal/errors"
)

func asCode(t *testing.T, err error) dynoerrors.ErrorCode {
	t.Helper()
	dynoErr, ok := err.(*dynoerrors.DynoError)
	if !ok {
		t.Fatalf("error type = %T, want *DynoError", err)
	}
	return dynoErr.Code
}

func TestToolCalculateModImpact(t *testing.T) {
	server := newTestMCPServer(t)

	resp, err := server.toolCalculateModImpact(map[string]interface{}{
		"vehicleId":     "gti-mk7",
		"modifications": []interface{}{"stage2-tune", "downpipe", "intake"},
	})
	if err != nil {
		t.Fatalf("toolCalculateModImpact() error = %v", err)
	}

	result, ok := resp.Data.(*calc.Result)
	if !ok {
		t.Fatalf("Data type = %T", resp.Data)
	}
	if result.AdjustedGainHP <= 0 || result.AdjustedGainHP > result.RawGainHP {
		t.Errorf("gains = %v/%v", result.AdjustedGainHP, result.RawGainHP)
	}
	if resp.Meta == nil || resp.Meta.Confidence == nil {
		t.Fatal("envelope missing confidence metadata")
	}
	if resp.Meta.Provenance.VehicleID != "gti-mk7" {
		t.Errorf("provenance vehicle = %q", resp.Meta.Provenance.VehicleID)
	}
	if len(resp.SuggestedNextCalls) != 1 || resp.SuggestedNextCalls[0].Tool != "getPerformanceProfile" {
		t.Errorf("SuggestedNextCalls = %+v", resp.SuggestedNextCalls)
	}
}

func TestToolCalculateModImpactEmptySelection(t *testing.T) {
	server := newTestMCPServer(t)

	resp, err := server.toolCalculateModImpact(map[string]interface{}{
		"vehicleId": "brz-zd8",
	})
	if err != nil {
		t.Fatalf("toolCalculateModImpact() error = %v", err)
	}
	if len(resp.SuggestedNextCalls) != 0 {
		t.Errorf("empty selection should not suggest a follow-up: %+v", resp.SuggestedNextCalls)
	}

	result := resp.Data.(*calc.Result)
	if result.ProjectedHP != result.StockHP {
		t.Errorf("ProjectedHP = %v, want stock %v", result.ProjectedHP, result.StockHP)
	}
}

func TestToolCalculateModImpactErrors(t *testing.T) {
	server := newTestMCPServer(t)

	tests := []struct {
		name   string
		params map[string]interface{}
		want   dynoerrors.ErrorCode
	}{
		{"missing vehicleId", map[string]interface{}{}, dynoerrors.FormatInvalid},
		{"empty vehicleId", map[string]interface{}{"vehicleId": ""}, dynoerrors.FormatInvalid},
		{"unknown vehicle", map[string]interface{}{"vehicleId": "delorean"}, dynoerrors.VehicleNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := server.toolCalculateModImpact(tt.params)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := asCode(t, err); got != tt.want {
				t.Errorf("code = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestToolGetPerformanceProfile(t *testing.T) {
	server := newTestMCPServer(t)

	resp, err := server.toolGetPerformanceProfile(map[string]interface{}{
		"vehicleId":     "supra-a90",
		"modifications": []interface{}{"stage2-tune", "tires-r-compound"},
	})
	if err != nil {
		t.Fatalf("toolGetPerformanceProfile() error = %v", err)
	}

	profile, ok := resp.Data.(*calc.Profile)
	if !ok {
		t.Fatalf("Data type = %T", resp.Data)
	}
	if profile.Metrics.ZeroSixty <= 0 {
		t.Errorf("ZeroSixty = %v", profile.Metrics.ZeroSixty)
	}
	if profile.Scores.Handling <= 50 {
		t.Errorf("Handling = %v, r-compound tires should raise the baseline", profile.Scores.Handling)
	}
}

func TestToolGetPerformanceProfileUnknownVehicle(t *testing.T) {
	server := newTestMCPServer(t)

	_, err := server.toolGetPerformanceProfile(map[string]interface{}{
		"vehicleId": "delorean",
	})
	if err == nil || asCode(t, err) != dynoerrors.VehicleNotFound {
		t.Errorf("err = %v, want VEHICLE_NOT_FOUND", err)
	}
}

func TestToolListModifications(t *testing.T) {
	server := newTestMCPServer(t)

	resp, err := server.toolListModifications(map[string]interface{}{})
	if err != nil {
		t.Fatalf("toolListModifications() error = %v", err)
	}

	data := resp.Data.(map[string]interface{})
	mods := data["modifications"].([]catalog.Modification)
	if len(mods) == 0 {
		t.Fatal("builtin catalog should list modifications")
	}
	if data["count"].(int) != len(mods) {
		t.Errorf("count = %v, want %d", data["count"], len(mods))
	}
}

func TestToolListModificationsCategory(t *testing.T) {
	server := newTestMCPServer(t)

	resp, err := server.toolListModifications(map[string]interface{}{
		"category": "exhaust",
	})
	if err != nil {
		t.Fatalf("toolListModifications() error = %v", err)
	}

	data := resp.Data.(map[string]interface{})
	for _, mod := range data["modifications"].([]catalog.Modification) {
		if mod.Category != catalog.CategoryExhaust {
			t.Errorf("mod %s has category %s", mod.Key, mod.Category)
		}
	}
}

func TestToolListModificationsUnknownCategory(t *testing.T) {
	server := newTestMCPServer(t)

	resp, err := server.toolListModifications(map[string]interface{}{
		"category": "flux-capacitors",
	})
	if err != nil {
		t.Fatalf("toolListModifications() error = %v", err)
	}
	if len(resp.Warnings) != 1 || resp.Warnings[0].Code != "MOD_UNKNOWN" {
		t.Errorf("Warnings = %+v, want MOD_UNKNOWN", resp.Warnings)
	}
}

func TestToolListModificationsTruncation(t *testing.T) {
	server := newTestMCPServer(t)

	resp, err := server.toolListModifications(map[string]interface{}{
		"limit": float64(5),
	})
	if err != nil {
		t.Fatalf("toolListModifications() error = %v", err)
	}

	data := resp.Data.(map[string]interface{})
	mods := data["modifications"].([]catalog.Modification)
	if len(mods) != 5 {
		t.Errorf("len(mods) = %d, want 5", len(mods))
	}
	tr := resp.Meta.Truncation
	if tr == nil || !tr.IsTruncated || tr.Shown != 5 || tr.Reason != "max-mods" {
		t.Errorf("Truncation = %+v", tr)
	}
}

func TestToolGetVehicle(t *testing.T) {
	server := newTestMCPServer(t)

	resp, err := server.toolGetVehicle(map[string]interface{}{
		"vehicleId": "335i-e92",
	})
	if err != nil {
		t.Fatalf("toolGetVehicle() error = %v", err)
	}

	data := resp.Data.(map[string]interface{})
	vehicle := data["vehicle"].(catalog.Vehicle)
	if vehicle.ID != "335i-e92" {
		t.Errorf("vehicle.ID = %q", vehicle.ID)
	}
	if data["aspirationLabel"] != "Twin-Turbocharged" {
		t.Errorf("aspirationLabel = %v", data["aspirationLabel"])
	}
	if resp.Meta.Confidence.Tier != envelope.TierVerified {
		t.Errorf("operational tool should be verified, got %v", resp.Meta.Confidence.Tier)
	}
}

func TestToolClassifyAspiration(t *testing.T) {
	server := newTestMCPServer(t)

	resp, err := server.toolClassifyAspiration(map[string]interface{}{
		"engine": "3.0L twin-turbo inline-6",
	})
	if err != nil {
		t.Fatalf("toolClassifyAspiration() error = %v", err)
	}

	data := resp.Data.(map[string]interface{})
	if data["forced"] != true {
		t.Errorf("forced = %v, want true", data["forced"])
	}

	_, err = server.toolClassifyAspiration(map[string]interface{}{})
	if err == nil || asCode(t, err) != dynoerrors.FormatInvalid {
		t.Errorf("missing engine: err = %v, want FORMAT_INVALID", err)
	}
}

func TestToolGetStatus(t *testing.T) {
	server := newTestMCPServer(t)

	resp, err := server.toolGetStatus(map[string]interface{}{})
	if err != nil {
		t.Fatalf("toolGetStatus() error = %v", err)
	}

	data := resp.Data.(map[string]interface{})
	if data["status"] != "healthy" {
		t.Errorf("status = %v", data["status"])
	}
	if data["modifications"].(int) == 0 || data["vehicles"].(int) == 0 {
		t.Errorf("counts = %v/%v, want builtin catalog sizes", data["modifications"], data["vehicles"])
	}
	if data["session"] != server.SessionID() {
		t.Errorf("session = %v, want %v", data["session"], server.SessionID())
	}
}

func TestStringSlice(t *testing.T) {
	params := map[string]interface{}{
		"mods":  []interface{}{"a", "b", 3, "c"},
		"notes": "plain string",
	}

	got := stringSlice(params, "mods")
	if len(got) != 3 || got[0] != "a" || got[2] != "c" {
		t.Errorf("stringSlice = %v", got)
	}
	if stringSlice(params, "notes") != nil {
		t.Error("non-array value should yield nil")
	}
	if stringSlice(params, "missing") != nil {
		t.Error("missing key should yield nil")
	}
}
