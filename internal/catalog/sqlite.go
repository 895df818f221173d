package catalog

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"dyno/internal/aspiration"
	"dyno/internal/errors"
	"dyno/internal/logging"
)

// DB provides a SQLite-backed catalog for fleets too large to ship as files.
// The calculator never touches it; callers load a Store from it up front and
// hand the Store to the calculation packages.
type DB struct {
	conn   *sql.DB
	logger *logging.Logger
	dbPath string
}

// OpenDB opens or creates the catalog database at the given path.
func OpenDB(dbPath string, logger *logging.Logger) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.New(errors.CatalogUnavailable,
			fmt.Sprintf("cannot open catalog database %s", dbPath), err)
	}

	// Set pragmas for performance
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := conn.Exec(pragma); err != nil {
			_ = conn.Close()
			return nil, errors.New(errors.CatalogUnavailable, "failed to set pragma", err)
		}
	}

	db := &DB{conn: conn, logger: logger, dbPath: dbPath}
	if err := db.initializeSchema(); err != nil {
		_ = conn.Close()
		return nil, errors.New(errors.CatalogUnavailable, "failed to initialize catalog schema", err)
	}
	return db, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.conn.Close()
}

func (d *DB) initializeSchema() error {
	schema := `
CREATE TABLE IF NOT EXISTS modifications (
	key TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	category TEXT NOT NULL,
	subcategory TEXT NOT NULL DEFAULT '',
	gain_hp TEXT NOT NULL DEFAULT '{}',
	gain_torque TEXT NOT NULL DEFAULT '{}',
	weight_delta REAL NOT NULL DEFAULT 0,
	cost_low INTEGER NOT NULL DEFAULT 0,
	cost_high INTEGER NOT NULL DEFAULT 0,
	tire_grip REAL NOT NULL DEFAULT 0,
	braking_improvement REAL NOT NULL DEFAULT 0,
	handling_points REAL NOT NULL DEFAULT 0,
	reliability_credit REAL NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS vehicles (
	id TEXT PRIMARY KEY,
	make TEXT NOT NULL,
	model TEXT NOT NULL,
	year INTEGER NOT NULL DEFAULT 0,
	trim TEXT NOT NULL DEFAULT '',
	stock_hp REAL NOT NULL,
	stock_torque REAL NOT NULL DEFAULT 0,
	curb_weight REAL NOT NULL,
	drivetrain TEXT NOT NULL,
	transmission TEXT NOT NULL DEFAULT '',
	engine TEXT NOT NULL DEFAULT '',
	stock_zero_sixty REAL NOT NULL DEFAULT 0,
	stock_quarter_mile REAL NOT NULL DEFAULT 0,
	stock_trap_speed REAL NOT NULL DEFAULT 0,
	stock_braking REAL NOT NULL DEFAULT 0,
	stock_lateral_g REAL NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_modifications_category ON modifications(category);
CREATE INDEX IF NOT EXISTS idx_vehicles_make_model ON vehicles(make, model);
`
	_, err := d.conn.Exec(schema)
	return err
}

// ImportStore upserts every entry of a Store into the database.
func (d *DB) ImportStore(s *Store) error {
	tx, err := d.conn.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, m := range s.Modifications() {
		if err := upsertModification(tx, m); err != nil {
			return fmt.Errorf("import modification %q: %w", m.Key, err)
		}
	}
	for _, v := range s.Vehicles() {
		if err := upsertVehicle(tx, v); err != nil {
			return fmt.Errorf("import vehicle %q: %w", v.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	d.logger.Info("Imported catalog", map[string]interface{}{
		"modifications": len(s.Modifications()),
		"vehicles":      len(s.Vehicles()),
		"path":          d.dbPath,
	})
	return nil
}

// LoadStore reads the full catalog from the database into a Store.
func (d *DB) LoadStore() (*Store, error) {
	store := NewEmptyStore()

	modRows, err := d.conn.Query(`SELECT key, name, category, subcategory, gain_hp, gain_torque,
		weight_delta, cost_low, cost_high, tire_grip, braking_improvement,
		handling_points, reliability_credit FROM modifications`)
	if err != nil {
		return nil, errors.New(errors.CatalogUnavailable, "failed to query modifications", err)
	}
	defer func() { _ = modRows.Close() }()

	for modRows.Next() {
		var m Modification
		var gainHP, gainTorque string
		var costLow, costHigh int
		if err := modRows.Scan(&m.Key, &m.Name, &m.Category, &m.Subcategory,
			&gainHP, &gainTorque, &m.WeightDelta, &costLow, &costHigh,
			&m.TireGrip, &m.BrakingImprovement, &m.HandlingPoints, &m.ReliabilityCredit); err != nil {
			return nil, errors.New(errors.CatalogInvalid, "failed to scan modification row", err)
		}
		if err := json.Unmarshal([]byte(gainHP), &m.GainHP); err != nil {
			return nil, errors.New(errors.CatalogInvalid,
				fmt.Sprintf("invalid gain table for modification %q", m.Key), err)
		}
		if err := json.Unmarshal([]byte(gainTorque), &m.GainTorque); err != nil {
			return nil, errors.New(errors.CatalogInvalid,
				fmt.Sprintf("invalid torque table for modification %q", m.Key), err)
		}
		if costLow != 0 || costHigh != 0 {
			m.Cost = &CostRange{Low: costLow, High: costHigh}
		}
		store.addModification(m)
	}
	if err := modRows.Err(); err != nil {
		return nil, errors.New(errors.CatalogUnavailable, "failed to read modifications", err)
	}

	vehRows, err := d.conn.Query(`SELECT id, make, model, year, trim, stock_hp, stock_torque,
		curb_weight, drivetrain, transmission, engine, stock_zero_sixty,
		stock_quarter_mile, stock_trap_speed, stock_braking, stock_lateral_g FROM vehicles`)
	if err != nil {
		return nil, errors.New(errors.CatalogUnavailable, "failed to query vehicles", err)
	}
	defer func() { _ = vehRows.Close() }()

	for vehRows.Next() {
		var v Vehicle
		if err := vehRows.Scan(&v.ID, &v.Make, &v.Model, &v.Year, &v.Trim,
			&v.StockHP, &v.StockTorque, &v.CurbWeight, &v.Drivetrain, &v.Transmission,
			&v.Engine, &v.StockZeroSixty, &v.StockQuarterMile, &v.StockTrapSpeed,
			&v.StockBraking, &v.StockLateralG); err != nil {
			return nil, errors.New(errors.CatalogInvalid, "failed to scan vehicle row", err)
		}
		store.addVehicle(v)
	}
	if err := vehRows.Err(); err != nil {
		return nil, errors.New(errors.CatalogUnavailable, "failed to read vehicles", err)
	}

	return store, nil
}

// Counts returns the number of stored modifications and vehicles.
func (d *DB) Counts() (mods int, vehicles int, err error) {
	if err = d.conn.QueryRow(`SELECT COUNT(*) FROM modifications`).Scan(&mods); err != nil {
		return 0, 0, err
	}
	if err = d.conn.QueryRow(`SELECT COUNT(*) FROM vehicles`).Scan(&vehicles); err != nil {
		return 0, 0, err
	}
	return mods, vehicles, nil
}

func upsertModification(tx *sql.Tx, m Modification) error {
	gainHP, err := marshalGains(m.GainHP)
	if err != nil {
		return err
	}
	gainTorque, err := marshalGains(m.GainTorque)
	if err != nil {
		return err
	}
	var costLow, costHigh int
	if m.Cost != nil {
		costLow, costHigh = m.Cost.Low, m.Cost.High
	}
	_, err = tx.Exec(`INSERT INTO modifications
		(key, name, category, subcategory, gain_hp, gain_torque, weight_delta,
		 cost_low, cost_high, tire_grip, braking_improvement, handling_points, reliability_credit)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
		 name=excluded.name, category=excluded.category, subcategory=excluded.subcategory,
		 gain_hp=excluded.gain_hp, gain_torque=excluded.gain_torque,
		 weight_delta=excluded.weight_delta, cost_low=excluded.cost_low,
		 cost_high=excluded.cost_high, tire_grip=excluded.tire_grip,
		 braking_improvement=excluded.braking_improvement,
		 handling_points=excluded.handling_points,
		 reliability_credit=excluded.reliability_credit`,
		m.Key, m.Name, string(m.Category), m.Subcategory, gainHP, gainTorque,
		m.WeightDelta, costLow, costHigh, m.TireGrip, m.BrakingImprovement,
		m.HandlingPoints, m.ReliabilityCredit)
	return err
}

func upsertVehicle(tx *sql.Tx, v Vehicle) error {
	_, err := tx.Exec(`INSERT INTO vehicles
		(id, make, model, year, trim, stock_hp, stock_torque, curb_weight,
		 drivetrain, transmission, engine, stock_zero_sixty, stock_quarter_mile,
		 stock_trap_speed, stock_braking, stock_lateral_g)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
		 make=excluded.make, model=excluded.model, year=excluded.year, trim=excluded.trim,
		 stock_hp=excluded.stock_hp, stock_torque=excluded.stock_torque,
		 curb_weight=excluded.curb_weight, drivetrain=excluded.drivetrain,
		 transmission=excluded.transmission, engine=excluded.engine,
		 stock_zero_sixty=excluded.stock_zero_sixty,
		 stock_quarter_mile=excluded.stock_quarter_mile,
		 stock_trap_speed=excluded.stock_trap_speed,
		 stock_braking=excluded.stock_braking,
		 stock_lateral_g=excluded.stock_lateral_g`,
		v.ID, v.Make, v.Model, v.Year, v.Trim, v.StockHP, v.StockTorque,
		v.CurbWeight, string(v.Drivetrain), string(v.Transmission), v.Engine,
		v.StockZeroSixty, v.StockQuarterMile, v.StockTrapSpeed, v.StockBraking,
		v.StockLateralG)
	return err
}

func marshalGains(gains map[aspiration.Aspiration]float64) (string, error) {
	if len(gains) == 0 {
		return "{}", nil
	}
	data, err := json.Marshal(gains)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
