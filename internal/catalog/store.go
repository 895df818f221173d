package catalog

import (
	"sort"
	"strings"
)

// Store is an immutable-after-construction catalog lookup. All accessors
// return copies, so a Store is safe for concurrent readers and callers can
// never corrupt the reference data.
type Store struct {
	mods     map[string]Modification
	vehicles map[string]Vehicle
}

// NewStore returns a Store seeded with the built-in reference catalog.
func NewStore() *Store {
	s := &Store{
		mods:     make(map[string]Modification, len(builtinModifications)),
		vehicles: make(map[string]Vehicle, len(builtinVehicles)),
	}
	for _, m := range builtinModifications {
		s.mods[m.Key] = m
	}
	for _, v := range builtinVehicles {
		s.vehicles[v.ID] = v
	}
	return s
}

// NewEmptyStore returns a Store with no entries, for file- or
// database-backed catalogs.
func NewEmptyStore() *Store {
	return &Store{
		mods:     make(map[string]Modification),
		vehicles: make(map[string]Vehicle),
	}
}

// Modification looks up one modification by key.
func (s *Store) Modification(key string) (Modification, bool) {
	m, ok := s.mods[strings.TrimSpace(key)]
	return m, ok
}

// Vehicle looks up one vehicle by ID.
func (s *Store) Vehicle(id string) (Vehicle, bool) {
	v, ok := s.vehicles[strings.TrimSpace(id)]
	return v, ok
}

// Modifications returns every modification sorted by key.
func (s *Store) Modifications() []Modification {
	out := make([]Modification, 0, len(s.mods))
	for _, m := range s.mods {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// ModificationsByCategory returns the modifications in one category, sorted
// by key.
func (s *Store) ModificationsByCategory(c Category) []Modification {
	var out []Modification
	for _, m := range s.mods {
		if m.Category == c {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Vehicles returns every vehicle sorted by ID.
func (s *Store) Vehicles() []Vehicle {
	out := make([]Vehicle, 0, len(s.vehicles))
	for _, v := range s.vehicles {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Resolve maps a list of modification keys to catalog entries, dropping
// duplicates and unknown keys. Unknown keys are returned separately so
// callers can warn without failing; selecting the same key twice is
// idempotent.
func (s *Store) Resolve(keys []string) (mods []Modification, unknown []string) {
	seen := make(map[string]bool, len(keys))
	for _, key := range keys {
		key = strings.TrimSpace(key)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		if m, ok := s.mods[key]; ok {
			mods = append(mods, m)
		} else {
			unknown = append(unknown, key)
		}
	}
	return mods, unknown
}

// addModification merges one modification, replacing any existing entry with
// the same key. Used by loaders during construction only.
func (s *Store) addModification(m Modification) {
	s.mods[m.Key] = m
}

// addVehicle merges one vehicle, replacing any existing entry with the same ID.
func (s *Store) addVehicle(v Vehicle) {
	s.vehicles[v.ID] = v
}
