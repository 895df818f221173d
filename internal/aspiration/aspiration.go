// Package aspiration infers an engine's induction type from its free-text
// description. The detected aspiration is the primary axis for every
// percentage-based gain and torque multiplier downstream, so classification
// must be deterministic and must never fail: garbled or empty input
// classifies as naturally aspirated.
package aspiration

import "strings"

// Aspiration represents an engine induction type.
type Aspiration string

const (
	// NA indicates a naturally aspirated engine.
	NA Aspiration = "na"
	// Turbo indicates a single-turbocharged engine.
	Turbo Aspiration = "turbo"
	// TwinTurbo indicates a twin-turbocharged engine.
	TwinTurbo Aspiration = "twin-turbo"
	// Supercharged indicates a single-supercharged engine.
	Supercharged Aspiration = "supercharged"
	// TwinSC indicates a twin-supercharged engine.
	TwinSC Aspiration = "twin-supercharged"
)

// All lists every aspiration in display order.
var All = []Aspiration{NA, Turbo, TwinTurbo, Supercharged, TwinSC}

// Label returns a human-readable name for the aspiration.
func (a Aspiration) Label() string {
	switch a {
	case Turbo:
		return "Turbocharged"
	case TwinTurbo:
		return "Twin-Turbocharged"
	case Supercharged:
		return "Supercharged"
	case TwinSC:
		return "Twin-Supercharged"
	default:
		return "Naturally Aspirated"
	}
}

// Forced returns true for any forced-induction aspiration.
func (a Aspiration) Forced() bool {
	return a != NA && a != ""
}

// Keyword groups checked in order. Twin markers must be checked before their
// single counterparts so "twin turbo" is not misread as a single turbo.
var (
	twinTurboMarkers = []string{
		"twin turbo", "twin-turbo", "twinturbo", "biturbo", "bi-turbo",
		"twin turbocharged", "twin-turbocharged",
	}
	turboMarkers = []string{
		"turbo", "tfsi", "ecoboost",
	}
	twinSCMarkers = []string{
		"twin supercharged", "twin-supercharged", "twincharged", "twin-charged",
	}
	superchargedMarkers = []string{
		"supercharged", "supercharger", "kompressor",
	}
)

// Classify infers the induction type from a free-text engine description.
// Matching is ordered, case-insensitive substring search; an unrecognized or
// empty description yields NA.
func Classify(engineDesc string) Aspiration {
	desc := strings.ToLower(strings.TrimSpace(engineDesc))
	if desc == "" {
		return NA
	}

	if containsAny(desc, twinTurboMarkers) {
		return TwinTurbo
	}
	if containsAny(desc, turboMarkers) {
		return Turbo
	}
	if containsAny(desc, twinSCMarkers) {
		return TwinSC
	}
	if containsAny(desc, superchargedMarkers) {
		return Supercharged
	}
	return NA
}

// Parse maps a stored aspiration string back to an Aspiration. Unknown values
// fall back to NA rather than failing, mirroring Classify.
func Parse(s string) Aspiration {
	switch Aspiration(strings.ToLower(strings.TrimSpace(s))) {
	case Turbo:
		return Turbo
	case TwinTurbo:
		return TwinTurbo
	case Supercharged:
		return Supercharged
	case TwinSC:
		return TwinSC
	default:
		return NA
	}
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
