// Package catalog owns the reference data the calculator reads: vehicles
// with their factory specifications and the modification catalog with
// nominal gain figures. The calculator never mutates catalog data; every
// lookup returns a copy or an immutable value.
package catalog

import (
	"strconv"

	"dyno/internal/aspiration"
)

// Drivetrain identifies the driven axle layout.
type Drivetrain string

const (
	FWD Drivetrain = "fwd"
	RWD Drivetrain = "rwd"
	AWD Drivetrain = "awd"
)

// Transmission identifies the gearbox type, used for shift-time penalties.
type Transmission string

const (
	Manual    Transmission = "manual"
	Automatic Transmission = "automatic"
	DCT       Transmission = "dct"
	CVT       Transmission = "cvt"
)

// Vehicle holds the factory specification for one vehicle. Optional stock
// performance figures are zero when unknown; a zero value means "no baseline",
// never "zero seconds".
type Vehicle struct {
	ID           string       `json:"id" yaml:"id"`
	Make         string       `json:"make" yaml:"make"`
	Model        string       `json:"model" yaml:"model"`
	Year         int          `json:"year,omitempty" yaml:"year,omitempty"`
	Trim         string       `json:"trim,omitempty" yaml:"trim,omitempty"`
	StockHP      float64      `json:"stockHp" yaml:"stock_hp"`
	StockTorque  float64      `json:"stockTorque" yaml:"stock_torque"`
	CurbWeight   float64      `json:"curbWeight" yaml:"curb_weight"` // lbs
	Drivetrain   Drivetrain   `json:"drivetrain" yaml:"drivetrain"`
	Transmission Transmission `json:"transmission,omitempty" yaml:"transmission,omitempty"`
	Engine       string       `json:"engine,omitempty" yaml:"engine,omitempty"`

	// Known stock performance baselines. Zero means unknown.
	StockZeroSixty   float64 `json:"stockZeroSixty,omitempty" yaml:"stock_zero_sixty,omitempty"`     // seconds
	StockQuarterMile float64 `json:"stockQuarterMile,omitempty" yaml:"stock_quarter_mile,omitempty"` // seconds
	StockTrapSpeed   float64 `json:"stockTrapSpeed,omitempty" yaml:"stock_trap_speed,omitempty"`     // mph
	StockBraking     float64 `json:"stockBraking,omitempty" yaml:"stock_braking,omitempty"`          // 60-0 ft
	StockLateralG    float64 `json:"stockLateralG,omitempty" yaml:"stock_lateral_g,omitempty"`
}

// Aspiration classifies the vehicle's engine description.
func (v *Vehicle) Aspiration() aspiration.Aspiration {
	return aspiration.Classify(v.Engine)
}

// DisplayName returns "Year Make Model" with the year omitted when unknown.
func (v *Vehicle) DisplayName() string {
	name := v.Make + " " + v.Model
	if v.Year > 0 {
		return strconv.Itoa(v.Year) + " " + name
	}
	return name
}

// Category classifies modifications for stacking caps and scoring.
type Category string

const (
	CategoryExhaust         Category = "exhaust"
	CategoryIntake          Category = "intake"
	CategoryTune            Category = "tune"
	CategoryForcedInduction Category = "forced-induction"
	CategoryCooling         Category = "cooling"
	CategoryFuel            Category = "fuel"
	CategorySuspension      Category = "suspension"
	CategoryBrakes          Category = "brakes"
	CategoryTires           Category = "tires"
	CategoryAero            Category = "aero"
	CategoryWeightReduction Category = "weight-reduction"
	CategorySafety          Category = "safety"
)

// Categories lists every modification category in display order.
var Categories = []Category{
	CategoryExhaust, CategoryIntake, CategoryTune, CategoryForcedInduction,
	CategoryCooling, CategoryFuel, CategorySuspension, CategoryBrakes,
	CategoryTires, CategoryAero, CategoryWeightReduction, CategorySafety,
}

// CostRange is a rough installed-cost bracket in USD.
type CostRange struct {
	Low  int `json:"low,omitempty" toml:"low,omitempty"`
	High int `json:"high,omitempty" toml:"high,omitempty"`
}

// Modification is one catalog entry. GainHP carries nominal flat gains keyed
// by aspiration; the physics percentage model in internal/gains usually takes
// precedence over these figures.
type Modification struct {
	Key         string   `json:"key" toml:"key"`
	Name        string   `json:"name" toml:"name"`
	Category    Category `json:"category" toml:"category"`
	Subcategory string   `json:"subcategory,omitempty" toml:"subcategory,omitempty"`

	// GainHP is the flat-table fallback gain per aspiration, in crank HP.
	GainHP map[aspiration.Aspiration]float64 `json:"gainHp,omitempty" toml:"gain_hp,omitempty"`
	// GainTorque optionally overrides the derived torque gain per aspiration.
	GainTorque map[aspiration.Aspiration]float64 `json:"gainTorque,omitempty" toml:"gain_torque,omitempty"`

	WeightDelta float64    `json:"weightDelta,omitempty" toml:"weight_delta,omitempty"` // lbs, negative removes weight
	Cost        *CostRange `json:"cost,omitempty" toml:"cost,omitempty"`

	// TireGrip is the tire friction coefficient this modification provides.
	// Only set for tire modifications; compared against the stock baseline.
	TireGrip float64 `json:"tireGrip,omitempty" toml:"tire_grip,omitempty"`
	// BrakingImprovement is the 60-0 distance reduction in feet this
	// modification is worth on top of tire grip. Only set for brake hardware.
	BrakingImprovement float64 `json:"brakingImprovement,omitempty" toml:"braking_improvement,omitempty"`
	// HandlingPoints feed the 0-100 handling ring score.
	HandlingPoints float64 `json:"handlingPoints,omitempty" toml:"handling_points,omitempty"`
	// ReliabilityCredit feeds back into the reliability score for supporting
	// hardware (cooling, fuel system).
	ReliabilityCredit float64 `json:"reliabilityCredit,omitempty" toml:"reliability_credit,omitempty"`
}

// PowerAffecting reports whether this modification can ever contribute
// horsepower. Chassis categories never do.
func (m *Modification) PowerAffecting() bool {
	switch m.Category {
	case CategorySuspension, CategoryBrakes, CategoryTires, CategoryAero,
		CategoryWeightReduction, CategorySafety:
		return false
	}
	return true
}
