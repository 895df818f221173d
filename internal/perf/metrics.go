// Package perf projects real-world performance metrics from projected
// horsepower, torque, and weight. Every formula prefers scaling a known
// stock baseline over recomputing from scratch: a measured stock figure
// anchors the projection to ground truth, and the closed-form physics
// approximations only fill in when no baseline exists. All outputs are
// clamped to physically plausible ranges.
package perf

import (
	"math"

	"dyno/internal/catalog"
)

// Metrics are the projected performance figures for a modified vehicle.
type Metrics struct {
	ZeroSixty   float64 `json:"zeroSixty"`   // seconds
	QuarterMile float64 `json:"quarterMile"` // seconds
	TrapSpeed   float64 `json:"trapSpeed"`   // mph
	Braking     float64 `json:"braking"`     // 60-0 ft
	LateralG    float64 `json:"lateralG"`
}

// Clamp bounds. Compounding bad inputs must never produce nonsense numbers.
const (
	minZeroSixty   = 1.8
	maxZeroSixty   = 15.0
	minQuarterMile = 7.0
	maxQuarterMile = 20.0
	minTrapSpeed   = 60.0
	maxTrapSpeed   = 200.0
	minBraking     = 75.0
	maxBraking     = 140.0
	minLateralG    = 0.75
	maxLateralG    = 1.50
)

// StockTireGrip is the assumed friction coefficient of factory all-season or
// summer tires. Tire upgrades are measured against this baseline; tires at
// or below it never make braking or lateral grip worse than stock.
const StockTireGrip = 0.90

// drivetrainEfficiency is the crank-to-wheel power fraction per drivetrain.
var drivetrainEfficiency = map[catalog.Drivetrain]float64{
	catalog.FWD: 0.88,
	catalog.RWD: 0.85,
	catalog.AWD: 0.80,
}

// launchTraction scales usable launch power. FWD is traction-limited off the
// line; AWD puts nearly everything down.
var launchTraction = map[catalog.Drivetrain]float64{
	catalog.FWD: 0.82,
	catalog.RWD: 0.92,
	catalog.AWD: 1.00,
}

// shiftPenalty is the fixed 0-60 time added by gear changes per transmission.
var shiftPenalty = map[catalog.Transmission]float64{
	catalog.Manual:    0.40,
	catalog.Automatic: 0.30,
	catalog.DCT:       0.15,
	catalog.CVT:       0.10,
}

// Input carries everything the projections need, already aggregated by the
// calculator.
type Input struct {
	Vehicle     *catalog.Vehicle
	ProjectedHP float64
	// WeightDelta is the net weight change from the selection, in lbs.
	WeightDelta float64
	// TireGrip is the best selected tire coefficient, or 0 when no tires
	// are selected.
	TireGrip float64
	// BrakingImprovement sums selected brake hardware's 60-0 reduction, ft.
	BrakingImprovement float64
	// SuspensionBonus, AeroBonus, and WeightBonus are additive lateral-G
	// contributions from the selection.
	SuspensionBonus float64
	AeroBonus       float64
	WeightBonus     float64
}

// Project computes all derived metrics. It never fails; a nil vehicle yields
// zero metrics.
func Project(in Input) Metrics {
	if in.Vehicle == nil {
		return Metrics{}
	}
	m := Metrics{
		ZeroSixty: ZeroSixty(in),
		Braking:   BrakingDistance(in),
		LateralG:  LateralG(in),
	}
	m.QuarterMile, m.TrapSpeed = QuarterMile(in)
	return m
}

// effectiveWheelHP converts crank horsepower to launch-usable wheel power.
func effectiveWheelHP(v *catalog.Vehicle, crankHP float64) float64 {
	eff, ok := drivetrainEfficiency[v.Drivetrain]
	if !ok {
		eff = drivetrainEfficiency[catalog.RWD]
	}
	traction, ok := launchTraction[v.Drivetrain]
	if !ok {
		traction = launchTraction[catalog.RWD]
	}
	return crankHP * eff * traction
}

func weight(in Input) float64 {
	w := in.Vehicle.CurbWeight + in.WeightDelta
	if w < 1000 {
		w = 1000
	}
	return w
}

// ZeroSixty projects the 0-60 mph time in seconds.
//
// With a known stock time the projection scales the baseline by the change
// in weight-to-power; the exponent is calibrated so that a 30% power bump
// on a typical car is worth roughly half a second. Without a baseline it
// falls back to a power law of the weight-to-effective-power ratio plus a
// shift-time penalty.
func ZeroSixty(in Input) float64 {
	v := in.Vehicle
	w := weight(in)
	newWHP := effectiveWheelHP(v, in.ProjectedHP)
	if newWHP <= 0 {
		return maxZeroSixty
	}

	var t float64
	if v.StockZeroSixty > 0 && v.StockHP > 0 {
		stockWHP := effectiveWheelHP(v, v.StockHP)
		stockPW := stockWHP / v.CurbWeight
		newPW := newWHP / w
		t = v.StockZeroSixty * math.Pow(stockPW/newPW, 0.6)
	} else {
		penalty, ok := shiftPenalty[v.Transmission]
		if !ok {
			penalty = shiftPenalty[catalog.Manual]
		}
		t = 0.12*math.Pow(w/newWHP, 1.4) + penalty
	}
	return clamp(t, minZeroSixty, maxZeroSixty)
}

// QuarterMile projects the quarter-mile elapsed time (seconds) and trap
// speed (mph).
//
// When stock figures are known, ET scales with power by the cube-root
// relationship (ET proportional to power^(-1/3), trap to power^(1/3)), which
// tracks modern AWD/DCT cars far better than a pure formula. Without a
// baseline it uses the classic weight/power closed forms. A missing stock
// trap speed is back-derived from the stock ET with an empirical regression.
func QuarterMile(in Input) (et float64, trap float64) {
	v := in.Vehicle
	w := weight(in)
	newWHP := effectiveWheelHP(v, in.ProjectedHP)
	if newWHP <= 0 {
		return maxQuarterMile, minTrapSpeed
	}

	if v.StockQuarterMile > 0 && v.StockHP > 0 {
		stockWHP := effectiveWheelHP(v, v.StockHP)
		ratio := newWHP / stockWHP
		// Weight change folds into the effective power ratio.
		ratio *= v.CurbWeight / w
		et = v.StockQuarterMile * math.Pow(ratio, -1.0/3.0)

		stockTrap := v.StockTrapSpeed
		if stockTrap <= 0 {
			stockTrap = trapFromET(v.StockQuarterMile)
		}
		trap = stockTrap * math.Pow(ratio, 1.0/3.0)
	} else {
		et = 6.29 * math.Pow(w/newWHP, 1.0/3.0)
		trap = 230 * math.Pow(newWHP/w, 1.0/3.0)
	}

	return clamp(et, minQuarterMile, maxQuarterMile), clamp(trap, minTrapSpeed, maxTrapSpeed)
}

// trapFromET back-derives a trap speed from an elapsed time using an
// empirical street-car regression.
func trapFromET(et float64) float64 {
	if et <= 0 {
		return minTrapSpeed
	}
	return 1353 / et
}

// BrakingDistance projects the 60-0 distance in feet.
//
// A known stock distance shrinks proportionally to tire grip gained over the
// stock baseline, then by explicit brake-hardware improvements. Tires at or
// below stock grade never lengthen the stock distance. The no-baseline
// fallback is the point-mass v^2/(2*mu*g) form.
func BrakingDistance(in Input) float64 {
	v := in.Vehicle

	grip := StockTireGrip
	if in.TireGrip > grip {
		grip = in.TireGrip
	}

	var d float64
	if v.StockBraking > 0 {
		d = v.StockBraking * (StockTireGrip / grip)
	} else {
		// 60 mph = 88 ft/s, g = 32.2 ft/s^2.
		d = (88.0 * 88.0) / (2.0 * grip * 32.2)
	}
	d -= in.BrakingImprovement
	return clamp(d, minBraking, maxBraking)
}

// LateralG projects steady-state lateral grip.
//
// Tire grip relative to the stock baseline dominates; suspension, aero, and
// weight reduction add smaller fixed bonuses. Stock-or-lesser tires never
// pull lateral G below the stock figure.
func LateralG(in Input) float64 {
	v := in.Vehicle

	stockG := v.StockLateralG
	if stockG <= 0 {
		stockG = 0.90
	}

	g := stockG
	if in.TireGrip > StockTireGrip {
		g = stockG * (in.TireGrip / StockTireGrip)
	}
	g += in.SuspensionBonus + in.AeroBonus + in.WeightBonus
	return clamp(g, minLateralG, maxLateralG)
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
