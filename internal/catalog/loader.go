package catalog

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"dyno/internal/errors"
)

// ModCatalogFile represents the root structure of a modification catalog
// TOML file.
type ModCatalogFile struct {
	// Version is the catalog schema version (currently 1)
	Version int `toml:"version"`

	// Modifications are the catalog entries
	Modifications []Modification `toml:"modifications"`
}

// VehicleFile represents the root structure of a vehicle fleet YAML file.
type VehicleFile struct {
	Version  int       `yaml:"version"`
	Vehicles []Vehicle `yaml:"vehicles"`
}

// LoadModificationsTOML reads and validates a modification catalog from a
// TOML file.
func LoadModificationsTOML(path string) ([]Modification, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(errors.CatalogUnavailable,
			fmt.Sprintf("cannot read modification catalog %s", path), err)
	}

	var file ModCatalogFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, errors.New(errors.CatalogInvalid,
			fmt.Sprintf("cannot parse modification catalog %s", path), err)
	}

	for i := range file.Modifications {
		if err := validateModification(&file.Modifications[i]); err != nil {
			return nil, errors.New(errors.CatalogInvalid,
				fmt.Sprintf("invalid modification at index %d in %s", i, path), err)
		}
	}
	return file.Modifications, nil
}

// LoadVehiclesYAML reads and validates a vehicle fleet from a YAML file.
func LoadVehiclesYAML(path string) ([]Vehicle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(errors.CatalogUnavailable,
			fmt.Sprintf("cannot read vehicle file %s", path), err)
	}

	var file VehicleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.New(errors.CatalogInvalid,
			fmt.Sprintf("cannot parse vehicle file %s", path), err)
	}

	for i := range file.Vehicles {
		if err := validateVehicle(&file.Vehicles[i]); err != nil {
			return nil, errors.New(errors.CatalogInvalid,
				fmt.Sprintf("invalid vehicle at index %d in %s", i, path), err)
		}
	}
	return file.Vehicles, nil
}

// LoadOptions configures catalog construction.
type LoadOptions struct {
	// ModificationsPath is an optional TOML catalog merged over the built-ins.
	ModificationsPath string
	// VehiclesPath is an optional YAML fleet merged over the built-ins.
	VehiclesPath string
	// SkipBuiltin starts from an empty store instead of the built-in catalog.
	SkipBuiltin bool
}

// Load builds a Store from the built-in catalog plus any configured files.
// File entries replace built-in entries with the same key.
func Load(opts LoadOptions) (*Store, error) {
	var store *Store
	if opts.SkipBuiltin {
		store = NewEmptyStore()
	} else {
		store = NewStore()
	}

	if opts.ModificationsPath != "" {
		mods, err := LoadModificationsTOML(opts.ModificationsPath)
		if err != nil {
			return nil, err
		}
		for _, m := range mods {
			store.addModification(m)
		}
	}

	if opts.VehiclesPath != "" {
		vehicles, err := LoadVehiclesYAML(opts.VehiclesPath)
		if err != nil {
			return nil, err
		}
		for _, v := range vehicles {
			store.addVehicle(v)
		}
	}

	return store, nil
}

func validateModification(m *Modification) error {
	if m.Key == "" {
		return fmt.Errorf("missing key")
	}
	if m.Name == "" {
		return fmt.Errorf("modification %q missing name", m.Key)
	}
	if !validCategory(m.Category) {
		return fmt.Errorf("modification %q has unknown category %q", m.Key, m.Category)
	}
	for asp, hp := range m.GainHP {
		if hp < 0 {
			return fmt.Errorf("modification %q has negative gain for %s", m.Key, asp)
		}
	}
	if m.TireGrip < 0 {
		return fmt.Errorf("modification %q has negative tire grip", m.Key)
	}
	return nil
}

func validateVehicle(v *Vehicle) error {
	if v.ID == "" {
		return fmt.Errorf("missing id")
	}
	if v.Make == "" || v.Model == "" {
		return fmt.Errorf("vehicle %q missing make or model", v.ID)
	}
	if v.StockHP <= 0 {
		return fmt.Errorf("vehicle %q has non-positive stock hp", v.ID)
	}
	if v.CurbWeight <= 0 {
		return fmt.Errorf("vehicle %q has non-positive curb weight", v.ID)
	}
	switch v.Drivetrain {
	case FWD, RWD, AWD:
	default:
		return fmt.Errorf("vehicle %q has unknown drivetrain %q", v.ID, v.Drivetrain)
	}
	return nil
}

func validCategory(c Category) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
