package catalog

import (
	"dyno/internal/aspiration"
)

// Built-in reference data. These tables are data, not code: the calculation
// packages read them through Store lookups and never reach into them directly,
// so they can be swapped for a file- or database-backed catalog without
// touching any calculation logic.

// builtinModifications is the default modification catalog. GainHP figures
// are the flat-table fallback tier; the percentage model in internal/gains
// usually wins for power-affecting parts.
var builtinModifications = []Modification{
	// --- Intake ---
	{
		Key: "intake", Name: "Cold Air Intake", Category: CategoryIntake, Subcategory: "filter",
		GainHP: map[aspiration.Aspiration]float64{
			aspiration.NA: 5, aspiration.Turbo: 10, aspiration.TwinTurbo: 12,
			aspiration.Supercharged: 8, aspiration.TwinSC: 9,
		},
		Cost: &CostRange{Low: 250, High: 450},
	},
	{
		Key: "intake-manifold", Name: "Performance Intake Manifold", Category: CategoryIntake, Subcategory: "manifold",
		GainHP: map[aspiration.Aspiration]float64{
			aspiration.NA: 8, aspiration.Turbo: 10, aspiration.TwinTurbo: 10,
			aspiration.Supercharged: 7, aspiration.TwinSC: 8,
		},
		Cost: &CostRange{Low: 600, High: 1400},
	},
	{
		Key: "throttle-body", Name: "Big Bore Throttle Body", Category: CategoryIntake, Subcategory: "throttle",
		GainHP: map[aspiration.Aspiration]float64{
			aspiration.NA: 4, aspiration.Turbo: 5, aspiration.TwinTurbo: 6,
			aspiration.Supercharged: 5, aspiration.TwinSC: 5,
		},
		Cost: &CostRange{Low: 300, High: 700},
	},

	// --- Exhaust ---
	{
		Key: "catback-exhaust", Name: "Cat-Back Exhaust", Category: CategoryExhaust, Subcategory: "catback",
		GainHP: map[aspiration.Aspiration]float64{
			aspiration.NA: 6, aspiration.Turbo: 8, aspiration.TwinTurbo: 10,
			aspiration.Supercharged: 7, aspiration.TwinSC: 8,
		},
		WeightDelta: -15,
		Cost:        &CostRange{Low: 700, High: 1800},
	},
	{
		Key: "axleback-exhaust", Name: "Axle-Back Exhaust", Category: CategoryExhaust, Subcategory: "catback",
		GainHP: map[aspiration.Aspiration]float64{
			aspiration.NA: 2, aspiration.Turbo: 3, aspiration.TwinTurbo: 3,
			aspiration.Supercharged: 2, aspiration.TwinSC: 3,
		},
		WeightDelta: -8,
		Cost:        &CostRange{Low: 400, High: 900},
	},
	{
		Key: "downpipe", Name: "Downpipe", Category: CategoryExhaust, Subcategory: "downpipe",
		GainHP: map[aspiration.Aspiration]float64{
			aspiration.Turbo: 15, aspiration.TwinTurbo: 20,
		},
		Cost: &CostRange{Low: 500, High: 1200},
	},
	{
		Key: "headers", Name: "Long Tube Headers", Category: CategoryExhaust, Subcategory: "headers",
		GainHP: map[aspiration.Aspiration]float64{
			aspiration.NA: 12, aspiration.Supercharged: 10, aspiration.TwinSC: 10,
		},
		Cost: &CostRange{Low: 900, High: 2200},
	},
	{
		Key: "muffler-delete", Name: "Muffler Delete", Category: CategoryExhaust, Subcategory: "muffler",
		GainHP: map[aspiration.Aspiration]float64{
			aspiration.NA: 2, aspiration.Turbo: 3, aspiration.TwinTurbo: 3,
			aspiration.Supercharged: 2, aspiration.TwinSC: 2,
		},
		WeightDelta: -12,
		Cost:        &CostRange{Low: 100, High: 300},
	},

	// --- Tune ---
	{
		Key: "stage1-tune", Name: "Stage 1 ECU Tune", Category: CategoryTune, Subcategory: "flash",
		Cost: &CostRange{Low: 500, High: 800},
	},
	{
		Key: "stage2-tune", Name: "Stage 2 ECU Tune", Category: CategoryTune, Subcategory: "flash",
		Cost: &CostRange{Low: 700, High: 1200},
	},
	{
		Key: "stage3-tune", Name: "Stage 3 ECU Tune", Category: CategoryTune, Subcategory: "flash",
		Cost: &CostRange{Low: 1200, High: 2500},
	},
	{
		Key: "piggyback-tuner", Name: "Piggyback Tuner", Category: CategoryTune, Subcategory: "piggyback",
		Cost: &CostRange{Low: 400, High: 900},
	},

	// --- Forced induction ---
	{
		Key: "supercharger-roots", Name: "Roots Supercharger Kit", Category: CategoryForcedInduction, Subcategory: "supercharger",
		WeightDelta: 45,
		Cost:        &CostRange{Low: 5500, High: 9000},
	},
	{
		Key: "supercharger-centrifugal", Name: "Centrifugal Supercharger Kit", Category: CategoryForcedInduction, Subcategory: "supercharger",
		WeightDelta: 35,
		Cost:        &CostRange{Low: 5000, High: 8500},
	},
	{
		Key: "turbo-kit", Name: "Single Turbo Kit", Category: CategoryForcedInduction, Subcategory: "turbo",
		WeightDelta: 50,
		Cost:        &CostRange{Low: 5000, High: 12000},
	},
	{
		Key: "turbo-upgrade", Name: "Turbocharger Upgrade", Category: CategoryForcedInduction, Subcategory: "turbo",
		Cost: &CostRange{Low: 2500, High: 6000},
	},
	{
		Key: "boost-controller", Name: "Electronic Boost Controller", Category: CategoryForcedInduction, Subcategory: "boost",
		GainHP: map[aspiration.Aspiration]float64{
			aspiration.Turbo: 12, aspiration.TwinTurbo: 15,
		},
		Cost: &CostRange{Low: 300, High: 700},
	},

	// --- Cooling ---
	{
		Key: "intercooler", Name: "Front Mount Intercooler", Category: CategoryCooling, Subcategory: "intercooler",
		GainHP: map[aspiration.Aspiration]float64{
			aspiration.Turbo: 8, aspiration.TwinTurbo: 10, aspiration.Supercharged: 6, aspiration.TwinSC: 7,
		},
		WeightDelta:       10,
		ReliabilityCredit: 8,
		Cost:              &CostRange{Low: 600, High: 1500},
	},
	{
		Key: "oil-cooler", Name: "Oil Cooler Kit", Category: CategoryCooling, Subcategory: "oil",
		ReliabilityCredit: 6,
		Cost:              &CostRange{Low: 350, High: 800},
	},
	{
		Key: "radiator", Name: "Performance Radiator", Category: CategoryCooling, Subcategory: "radiator",
		ReliabilityCredit: 4,
		Cost:              &CostRange{Low: 300, High: 900},
	},

	// --- Fuel ---
	{
		Key: "fuel-injectors", Name: "High Flow Fuel Injectors", Category: CategoryFuel, Subcategory: "injectors",
		ReliabilityCredit: 5,
		Cost:              &CostRange{Low: 400, High: 1100},
	},
	{
		Key: "fuel-pump", Name: "High Pressure Fuel Pump", Category: CategoryFuel, Subcategory: "pump",
		ReliabilityCredit: 5,
		Cost:              &CostRange{Low: 350, High: 900},
	},
	{
		Key: "flex-fuel-kit", Name: "Flex Fuel (E85) Kit", Category: CategoryFuel, Subcategory: "flex-fuel",
		ReliabilityCredit: 3,
		Cost:              &CostRange{Low: 600, High: 1400},
	},

	// --- Suspension ---
	{
		Key: "coilovers", Name: "Coilover Kit", Category: CategorySuspension, Subcategory: "coilovers",
		HandlingPoints: 15,
		Cost:           &CostRange{Low: 1200, High: 3500},
	},
	{
		Key: "lowering-springs", Name: "Lowering Springs", Category: CategorySuspension, Subcategory: "springs",
		HandlingPoints: 8,
		Cost:           &CostRange{Low: 250, High: 600},
	},
	{
		Key: "sway-bars", Name: "Adjustable Sway Bars", Category: CategorySuspension, Subcategory: "sway-bars",
		HandlingPoints: 6,
		Cost:           &CostRange{Low: 400, High: 900},
	},
	{
		Key: "strut-brace", Name: "Front Strut Tower Brace", Category: CategorySuspension, Subcategory: "bracing",
		HandlingPoints: 3,
		Cost:           &CostRange{Low: 150, High: 400},
	},

	// --- Brakes ---
	{
		Key: "big-brake-kit", Name: "Big Brake Kit", Category: CategoryBrakes, Subcategory: "kit",
		BrakingImprovement: 5, HandlingPoints: 8, WeightDelta: 8,
		Cost: &CostRange{Low: 2000, High: 5000},
	},
	{
		Key: "brake-pads", Name: "Performance Brake Pads", Category: CategoryBrakes, Subcategory: "pads",
		BrakingImprovement: 2, HandlingPoints: 3,
		Cost: &CostRange{Low: 150, High: 450},
	},
	{
		Key: "brake-lines", Name: "Stainless Brake Lines & Fluid", Category: CategoryBrakes, Subcategory: "lines",
		BrakingImprovement: 1, HandlingPoints: 2,
		Cost: &CostRange{Low: 120, High: 300},
	},

	// --- Tires ---
	{
		Key: "tires-200tw", Name: "200TW Summer Tires", Category: CategoryTires, Subcategory: "street",
		TireGrip: 1.00, HandlingPoints: 10,
		Cost: &CostRange{Low: 800, High: 1400},
	},
	{
		Key: "tires-r-compound", Name: "R-Compound Tires", Category: CategoryTires, Subcategory: "r-compound",
		TireGrip: 1.10, HandlingPoints: 15,
		Cost: &CostRange{Low: 1200, High: 2200},
	},
	{
		Key: "tires-all-season", Name: "All-Season Tires", Category: CategoryTires, Subcategory: "all-season",
		TireGrip: 0.85, HandlingPoints: 0,
		Cost: &CostRange{Low: 500, High: 900},
	},

	// --- Aero ---
	{
		Key: "wing", Name: "Rear Wing", Category: CategoryAero, Subcategory: "wing",
		HandlingPoints: 4, WeightDelta: 12,
		Cost: &CostRange{Low: 500, High: 2000},
	},
	{
		Key: "splitter", Name: "Front Splitter", Category: CategoryAero, Subcategory: "splitter",
		HandlingPoints: 3, WeightDelta: 6,
		Cost: &CostRange{Low: 300, High: 1000},
	},
	{
		Key: "diffuser", Name: "Rear Diffuser", Category: CategoryAero, Subcategory: "diffuser",
		HandlingPoints: 3, WeightDelta: 5,
		Cost: &CostRange{Low: 350, High: 1200},
	},

	// --- Weight reduction ---
	{
		Key: "carbon-hood", Name: "Carbon Fiber Hood", Category: CategoryWeightReduction, Subcategory: "body",
		WeightDelta: -25, HandlingPoints: 2,
		Cost: &CostRange{Low: 800, High: 2000},
	},
	{
		Key: "rear-seat-delete", Name: "Rear Seat Delete", Category: CategoryWeightReduction, Subcategory: "interior",
		WeightDelta: -45, HandlingPoints: 1,
		Cost: &CostRange{Low: 100, High: 400},
	},
	{
		Key: "lightweight-wheels", Name: "Forged Lightweight Wheels", Category: CategoryWeightReduction, Subcategory: "wheels",
		WeightDelta: -30, HandlingPoints: 5,
		Cost: &CostRange{Low: 1500, High: 4000},
	},

	// --- Safety ---
	{
		Key: "roll-cage", Name: "Bolt-In Roll Cage", Category: CategorySafety, Subcategory: "cage",
		WeightDelta: 60, HandlingPoints: 2,
		Cost: &CostRange{Low: 1000, High: 3000},
	},
	{
		Key: "racing-harness", Name: "Racing Harness", Category: CategorySafety, Subcategory: "harness",
		WeightDelta: 5,
		Cost:        &CostRange{Low: 200, High: 600},
	},
}

// builtinVehicles is a small reference fleet with known stock baselines,
// useful out of the box and as test fixtures.
var builtinVehicles = []Vehicle{
	{
		ID: "gti-mk7", Make: "Volkswagen", Model: "Golf GTI", Year: 2018, Trim: "SE",
		StockHP: 220, StockTorque: 258, CurbWeight: 3128,
		Drivetrain: FWD, Transmission: DCT,
		Engine:         "2.0L TSI turbocharged inline-4",
		StockZeroSixty: 6.0, StockQuarterMile: 14.4, StockTrapSpeed: 98,
		StockBraking: 115, StockLateralG: 0.95,
	},
	{
		ID: "wrx-va", Make: "Subaru", Model: "WRX", Year: 2019,
		StockHP: 268, StockTorque: 258, CurbWeight: 3450,
		Drivetrain: AWD, Transmission: Manual,
		Engine:         "2.0L turbocharged boxer-4",
		StockZeroSixty: 5.5, StockQuarterMile: 13.9, StockTrapSpeed: 100,
		StockBraking: 113, StockLateralG: 0.93,
	},
	{
		ID: "335i-e92", Make: "BMW", Model: "335i", Year: 2010,
		StockHP: 300, StockTorque: 300, CurbWeight: 3571,
		Drivetrain: RWD, Transmission: Manual,
		Engine:         "3.0L N54 twin turbo inline-6",
		StockZeroSixty: 5.1, StockQuarterMile: 13.6, StockTrapSpeed: 104,
		StockBraking: 110, StockLateralG: 0.90,
	},
	{
		ID: "brz-zd8", Make: "Subaru", Model: "BRZ", Year: 2022,
		StockHP: 228, StockTorque: 184, CurbWeight: 2864,
		Drivetrain: RWD, Transmission: Manual,
		Engine:         "2.4L naturally aspirated boxer-4",
		StockZeroSixty: 6.1, StockQuarterMile: 14.5, StockTrapSpeed: 97,
		StockBraking: 112, StockLateralG: 0.97,
	},
	{
		ID: "mustang-gt-s550", Make: "Ford", Model: "Mustang GT", Year: 2019,
		StockHP: 460, StockTorque: 420, CurbWeight: 3705,
		Drivetrain: RWD, Transmission: Manual,
		Engine:         "5.0L Coyote V8",
		StockZeroSixty: 4.2, StockQuarterMile: 12.6, StockTrapSpeed: 113,
		StockBraking: 107, StockLateralG: 0.96,
	},
	{
		ID: "supra-a90", Make: "Toyota", Model: "GR Supra", Year: 2021,
		StockHP: 382, StockTorque: 368, CurbWeight: 3400,
		Drivetrain: RWD, Transmission: Automatic,
		Engine:         "3.0L B58 turbocharged inline-6",
		StockZeroSixty: 3.9, StockQuarterMile: 12.3, StockTrapSpeed: 113,
		StockBraking: 104, StockLateralG: 0.98,
	},
	{
		ID: "gtr-r35", Make: "Nissan", Model: "GT-R", Year: 2017,
		StockHP: 565, StockTorque: 467, CurbWeight: 3933,
		Drivetrain: AWD, Transmission: DCT,
		Engine:         "3.8L VR38 twin-turbo V6",
		StockZeroSixty: 2.9, StockQuarterMile: 11.2, StockTrapSpeed: 122,
		StockBraking: 102, StockLateralG: 1.02,
	},
	{
		ID: "miata-nd", Make: "Mazda", Model: "MX-5 Miata", Year: 2019,
		StockHP: 181, StockTorque: 151, CurbWeight: 2341,
		Drivetrain: RWD, Transmission: Manual,
		Engine:         "2.0L Skyactiv-G naturally aspirated inline-4",
		StockZeroSixty: 5.7, StockQuarterMile: 14.3, StockTrapSpeed: 96,
		StockBraking: 109, StockLateralG: 0.93,
	},
	{
		ID: "c63-w204", Make: "Mercedes-Benz", Model: "C63 AMG", Year: 2013,
		StockHP: 451, StockTorque: 443, CurbWeight: 3924,
		Drivetrain: RWD, Transmission: Automatic,
		Engine:         "6.2L M156 naturally aspirated V8",
		StockZeroSixty: 4.4, StockQuarterMile: 12.8, StockTrapSpeed: 112,
		StockBraking: 106, StockLateralG: 0.94,
	},
	{
		ID: "jcw-f56", Make: "MINI", Model: "JCW Hardtop", Year: 2020,
		StockHP: 228, StockTorque: 236, CurbWeight: 2855,
		Drivetrain: FWD, Transmission: Manual,
		Engine:         "2.0L turbocharged inline-4",
		StockZeroSixty: 6.1, StockQuarterMile: 14.5, StockTrapSpeed: 97,
		StockBraking: 111, StockLateralG: 0.94,
	},
}
