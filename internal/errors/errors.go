package errors

import (
	"fmt"
)

// ErrorCode represents stable error codes for all failure modes
type ErrorCode string

const (
	// VehicleNotFound indicates the vehicle ID is not in the catalog
	VehicleNotFound ErrorCode = "VEHICLE_NOT_FOUND"
	// ModUnknown indicates a modification key is not in the catalog
	ModUnknown ErrorCode = "MOD_UNKNOWN"
	// CatalogUnavailable indicates a catalog file or database could not be opened
	CatalogUnavailable ErrorCode = "CATALOG_UNAVAILABLE"
	// CatalogInvalid indicates catalog data failed to parse or validate
	CatalogInvalid ErrorCode = "CATALOG_INVALID"
	// FormatInvalid indicates an unsupported output format was requested
	FormatInvalid ErrorCode = "FORMAT_INVALID"
	// InternalError indicates unexpected error
	InternalError ErrorCode = "INTERNAL_ERROR"
)

// FixActionType represents the type of fix action
type FixActionType string

const (
	// RunCommand suggests running a command
	RunCommand FixActionType = "run-command"
	// OpenDocs suggests opening documentation
	OpenDocs FixActionType = "open-docs"
)

// FixAction represents a suggested fix for an error
type FixAction struct {
	Type        FixActionType `json:"type"`
	Command     string        `json:"command,omitempty"`
	Safe        bool          `json:"safe,omitempty"`
	Description string        `json:"description,omitempty"`
	URL         string        `json:"url,omitempty"`
}

// DynoError represents a dyno error with code, message, and suggestions
type DynoError struct {
	Code           ErrorCode   `json:"code"`
	Message        string      `json:"message"`
	Details        interface{} `json:"details,omitempty"`
	SuggestedFixes []FixAction `json:"suggestedFixes,omitempty"`
	cause          error       // Underlying error (not exported to JSON)
}

// New creates a new DynoError
func New(code ErrorCode, message string, cause error) *DynoError {
	return &DynoError{
		Code:           code,
		Message:        message,
		cause:          cause,
		SuggestedFixes: GetSuggestedFixes(code),
	}
}

// Error implements the error interface
func (e *DynoError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *DynoError) Unwrap() error {
	return e.cause
}

// WithDetails adds details to the error
func (e *DynoError) WithDetails(details interface{}) *DynoError {
	e.Details = details
	return e
}

// ErrorActions maps error codes to suggested fix actions
var ErrorActions = map[ErrorCode][]FixAction{
	VehicleNotFound: {
		{
			Type:        RunCommand,
			Command:     "dyno vehicles",
			Safe:        true,
			Description: "List known vehicle IDs",
		},
	},
	ModUnknown: {
		{
			Type:        RunCommand,
			Command:     "dyno mods",
			Safe:        true,
			Description: "List known modification keys",
		},
	},
	CatalogUnavailable: {
		{
			Type:        RunCommand,
			Command:     "dyno catalog import --help",
			Safe:        true,
			Description: "Check catalog file paths and import options",
		},
	},
}

// GetSuggestedFixes returns suggested fixes for an error code
func GetSuggestedFixes(code ErrorCode) []FixAction {
	if fixes, ok := ErrorActions[code]; ok {
		return fixes
	}
	return nil
}
