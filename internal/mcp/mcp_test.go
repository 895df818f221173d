package mcp

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"dyno/internal/catalog"
	"dyno/internal/logging"
	"dyno/internal/version"
)

// newTestMCPServer creates an MCP server over the builtin catalog with
// logging discarded.
func newTestMCPServer(t *testing.T) *Server {
	t.Helper()

	logger := logging.NewLogger(logging.Config{
		Format: logging.JSONFormat,
		Level:  logging.ErrorLevel,
		Output: io.Discard,
	})

	return NewServer(version.Version, catalog.NewStore(), logger)
}

// sendRequest sends one request through the server and returns the response.
func sendRequest(t *testing.T, server *Server, method string, id int, params interface{}) *Message {
	t.Helper()

	request := Message{
		Jsonrpc: "2.0",
		Id:      id,
		Method:  method,
		Params:  params,
	}

	requestBytes, err := json.Marshal(request)
	if err != nil {
		t.Fatalf("Failed to marshal request: %v", err)
	}
	requestBytes = append(requestBytes, '\n')

	server.SetStdin(bytes.NewReader(requestBytes))
	server.SetStdout(&bytes.Buffer{})

	msg, err := server.readMessage()
	if err != nil && err != io.EOF {
		t.Fatalf("Failed to read message: %v", err)
	}

	return server.handleMessage(msg)
}

// callTool invokes a tool through the full tools/call path and returns the
// decoded envelope text payload.
func callTool(t *testing.T, server *Server, tool string, args map[string]interface{}) map[string]interface{} {
	t.Helper()

	response := sendRequest(t, server, "tools/call", 1, map[string]interface{}{
		"name":      tool,
		"arguments": args,
	})
	if response == nil || response.Error != nil {
		t.Fatalf("tools/call failed: %+v", response)
	}

	result, ok := response.Result.(map[string]interface{})
	if !ok {
		t.Fatalf("Result type = %T", response.Result)
	}
	content, ok := result["content"].([]map[string]interface{})
	if !ok || len(content) == 0 {
		t.Fatalf("missing content: %+v", result)
	}
	text, ok := content[0]["text"].(string)
	if !ok {
		t.Fatalf("content[0] has no text: %+v", content[0])
	}

	var payload map[string]interface{}
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		t.Fatalf("envelope is not valid JSON: %v", err)
	}
	return payload
}

func TestServerCreation(t *testing.T) {
	server := newTestMCPServer(t)

	if len(server.tools) != 6 {
		t.Errorf("registered tools = %d, want 6", len(server.tools))
	}
	if server.SessionID() == "" {
		t.Error("SessionID should be set")
	}
}

func TestInitializeMethod(t *testing.T) {
	server := newTestMCPServer(t)

	response := sendRequest(t, server, "initialize", 1, map[string]interface{}{
		"protocolVersion": "2024-11-05",
		"clientInfo":      map[string]interface{}{"name": "test-client"},
	})

	if response == nil || response.Error != nil {
		t.Fatalf("initialize failed: %+v", response)
	}

	result := response.Result.(map[string]interface{})
	if result["protocolVersion"] != "2024-11-05" {
		t.Errorf("protocolVersion = %v", result["protocolVersion"])
	}
	serverInfo := result["serverInfo"].(map[string]interface{})
	if serverInfo["name"] != "dyno" {
		t.Errorf("serverInfo.name = %v, want dyno", serverInfo["name"])
	}
}

func TestListToolsMethod(t *testing.T) {
	server := newTestMCPServer(t)

	response := sendRequest(t, server, "tools/list", 2, nil)
	if response == nil || response.Error != nil {
		t.Fatalf("tools/list failed: %+v", response)
	}

	result := response.Result.(map[string]interface{})
	tools, ok := result["tools"].([]Tool)
	if !ok {
		t.Fatalf("tools type = %T", result["tools"])
	}

	want := map[string]bool{
		"calculateModImpact":    false,
		"getPerformanceProfile": false,
		"listModifications":     false,
		"getVehicle":            false,
		"classifyAspiration":    false,
		"getStatus":             false,
	}
	for _, tool := range tools {
		if _, known := want[tool.Name]; !known {
			t.Errorf("unexpected tool: %s", tool.Name)
			continue
		}
		want[tool.Name] = true
		if tool.Description == "" {
			t.Errorf("tool %s has no description", tool.Name)
		}
	}
	for name, seen := range want {
		if !seen {
			t.Errorf("tool %s not listed", name)
		}
	}
}

func TestUnknownMethod(t *testing.T) {
	server := newTestMCPServer(t)

	response := sendRequest(t, server, "resources/list", 3, nil)
	if response == nil || response.Error == nil {
		t.Fatal("unknown method should return an error")
	}
	if response.Error.Code != MethodNotFound {
		t.Errorf("error code = %d, want %d", response.Error.Code, MethodNotFound)
	}
}

func TestNotificationNoResponse(t *testing.T) {
	server := newTestMCPServer(t)

	request := Message{
		Jsonrpc: "2.0",
		Method:  "notifications/initialized",
	}
	if response := server.handleMessage(&request); response != nil {
		t.Errorf("notification produced a response: %+v", response)
	}
}

func TestCallToolCalculateModImpact(t *testing.T) {
	server := newTestMCPServer(t)

	payload := callTool(t, server, "calculateModImpact", map[string]interface{}{
		"vehicleId":     "gti-mk7",
		"modifications": []interface{}{"stage1-tune", "downpipe"},
	})

	if payload["error"] != nil {
		t.Fatalf("envelope error = %v", payload["error"])
	}
	data := payload["data"].(map[string]interface{})
	if data["vehicleId"] != "gti-mk7" {
		t.Errorf("data.vehicleId = %v", data["vehicleId"])
	}
	if data["adjustedGainHp"].(float64) <= 0 {
		t.Error("adjustedGainHp should be positive")
	}

	// A selection should suggest the profile follow-up.
	suggested, _ := payload["suggestedNextCalls"].([]interface{})
	if len(suggested) != 1 {
		t.Errorf("suggestedNextCalls = %v, want one", suggested)
	}
}

func TestCallToolErrorInEnvelope(t *testing.T) {
	server := newTestMCPServer(t)

	payload := callTool(t, server, "calculateModImpact", map[string]interface{}{
		"vehicleId": "no-such-car",
	})

	errText, ok := payload["error"].(string)
	if !ok {
		t.Fatal("tool failure should set the envelope error")
	}
	if !strings.Contains(errText, "VEHICLE_NOT_FOUND") {
		t.Errorf("error = %q, want VEHICLE_NOT_FOUND code", errText)
	}
}

func TestCallToolUnknownTool(t *testing.T) {
	server := newTestMCPServer(t)

	response := sendRequest(t, server, "tools/call", 4, map[string]interface{}{
		"name": "selfDestruct",
	})
	if response == nil || response.Error == nil {
		t.Fatal("unknown tool should surface a JSON-RPC error")
	}
}

func TestCallToolMissingName(t *testing.T) {
	server := newTestMCPServer(t)

	response := sendRequest(t, server, "tools/call", 5, map[string]interface{}{
		"arguments": map[string]interface{}{},
	})
	if response == nil || response.Error == nil {
		t.Fatal("missing tool name should surface a JSON-RPC error")
	}
}
