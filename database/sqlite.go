package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"ai-service/utils"
)

// sqliteStore backs the Store interface with a local SQLite file. The
// platform tables normally live in the backend's PostgreSQL database;
// the fallback carries empty copies of them so the accessors keep
// working offline.
type sqliteStore struct {
	db *sql.DB
}

func openSQLite(ctx context.Context, path string) (*sqliteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// WAL keeps readers unblocked while the request logger writes.
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	s := &sqliteStore{db: db}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

var sqliteMigrations = []string{
	`CREATE TABLE IF NOT EXISTS ai_requests (
		id TEXT PRIMARY KEY,
		company_id INTEGER NOT NULL,
		request_type TEXT NOT NULL,
		success INTEGER NOT NULL DEFAULT 0,
		response_time_ms INTEGER,
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS ai_model_status (
		id TEXT PRIMARY KEY,
		company_id INTEGER NOT NULL,
		model_type TEXT NOT NULL,
		is_trained INTEGER NOT NULL DEFAULT 0,
		last_trained TEXT,
		accuracy_score REAL,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at TEXT,
		updated_at TEXT,
		UNIQUE (company_id, model_type)
	)`,
	`CREATE TABLE IF NOT EXISTS sales_invoices (
		id TEXT PRIMARY KEY,
		company_id INTEGER NOT NULL,
		total_amount REAL NOT NULL DEFAULT 0,
		profit REAL NOT NULL DEFAULT 0,
		party_id TEXT,
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS payments (
		id TEXT PRIMARY KEY,
		company_id INTEGER NOT NULL,
		amount REAL NOT NULL DEFAULT 0,
		payment_date TEXT,
		due_date TEXT,
		status TEXT NOT NULL DEFAULT 'pending',
		party_id TEXT,
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS expenses (
		id TEXT PRIMARY KEY,
		company_id INTEGER NOT NULL,
		amount REAL NOT NULL DEFAULT 0,
		category TEXT NOT NULL DEFAULT '',
		description TEXT,
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS inventory_movements (
		id TEXT PRIMARY KEY,
		company_id INTEGER NOT NULL,
		item_id TEXT NOT NULL,
		quantity REAL NOT NULL DEFAULT 0,
		movement_type TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS parties (
		id TEXT PRIMARY KEY,
		company_id INTEGER NOT NULL,
		name TEXT NOT NULL,
		party_type TEXT NOT NULL DEFAULT '',
		phone TEXT,
		email TEXT,
		opening_balance REAL NOT NULL DEFAULT 0,
		credit_limit REAL NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	)`,
}

func (s *sqliteStore) migrate(ctx context.Context) error {
	for i, stmt := range sqliteMigrations {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

func (s *sqliteStore) SalesInvoices(ctx context.Context, companyID int) ([]SalesInvoice, error) {
	query := `SELECT id, total_amount, profit, created_at, party_id
		FROM sales_invoices WHERE company_id = ? ORDER BY created_at DESC LIMIT ?`
	rows, err := s.db.QueryContext(ctx, query, companyID, fetchLimit)
	if err != nil {
		return nil, fmt.Errorf("querying sales_invoices: %w", err)
	}
	defer rows.Close()

	var invoices []SalesInvoice
	for rows.Next() {
		var inv SalesInvoice
		var createdAt string
		var partyID sql.NullString
		if err := rows.Scan(&inv.ID, &inv.TotalAmount, &inv.Profit, &createdAt, &partyID); err != nil {
			return nil, fmt.Errorf("scanning sales_invoices row: %w", err)
		}
		inv.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing sales_invoices created_at: %w", err)
		}
		inv.PartyID = utils.NullStringToStringPtr(partyID)
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}

func (s *sqliteStore) Payments(ctx context.Context, companyID int) ([]Payment, error) {
	query := `SELECT id, amount, payment_date, due_date, status, party_id
		FROM payments WHERE company_id = ? ORDER BY created_at DESC LIMIT ?`
	rows, err := s.db.QueryContext(ctx, query, companyID, fetchLimit)
	if err != nil {
		return nil, fmt.Errorf("querying payments: %w", err)
	}
	defer rows.Close()

	var payments []Payment
	for rows.Next() {
		var p Payment
		var paymentDate, dueDate, partyID sql.NullString
		if err := rows.Scan(&p.ID, &p.Amount, &paymentDate, &dueDate, &p.Status, &partyID); err != nil {
			return nil, fmt.Errorf("scanning payments row: %w", err)
		}
		p.PaymentDate = parseNullableTime(paymentDate)
		p.DueDate = parseNullableTime(dueDate)
		p.PartyID = utils.NullStringToStringPtr(partyID)
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (s *sqliteStore) Expenses(ctx context.Context, companyID int) ([]Expense, error) {
	query := `SELECT id, amount, category, created_at, description
		FROM expenses WHERE company_id = ? ORDER BY created_at DESC LIMIT ?`
	rows, err := s.db.QueryContext(ctx, query, companyID, fetchLimit)
	if err != nil {
		return nil, fmt.Errorf("querying expenses: %w", err)
	}
	defer rows.Close()

	var expenses []Expense
	for rows.Next() {
		var e Expense
		var createdAt string
		var description sql.NullString
		if err := rows.Scan(&e.ID, &e.Amount, &e.Category, &createdAt, &description); err != nil {
			return nil, fmt.Errorf("scanning expenses row: %w", err)
		}
		e.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing expenses created_at: %w", err)
		}
		e.Description = utils.NullStringToStringPtr(description)
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

func (s *sqliteStore) InventoryMovements(ctx context.Context, companyID int) ([]InventoryMovement, error) {
	query := `SELECT id, item_id, quantity, movement_type, created_at
		FROM inventory_movements WHERE company_id = ? ORDER BY created_at DESC LIMIT ?`
	rows, err := s.db.QueryContext(ctx, query, companyID, fetchLimit)
	if err != nil {
		return nil, fmt.Errorf("querying inventory_movements: %w", err)
	}
	defer rows.Close()

	var movements []InventoryMovement
	for rows.Next() {
		var m InventoryMovement
		var createdAt string
		if err := rows.Scan(&m.ID, &m.ItemID, &m.Quantity, &m.MovementType, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning inventory_movements row: %w", err)
		}
		m.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing inventory_movements created_at: %w", err)
		}
		movements = append(movements, m)
	}
	return movements, rows.Err()
}

func (s *sqliteStore) Parties(ctx context.Context, companyID int) ([]Party, error) {
	query := `SELECT id, name, party_type, phone, email, opening_balance, credit_limit
		FROM parties WHERE company_id = ? ORDER BY created_at DESC LIMIT ?`
	rows, err := s.db.QueryContext(ctx, query, companyID, fetchLimit)
	if err != nil {
		return nil, fmt.Errorf("querying parties: %w", err)
	}
	defer rows.Close()

	var parties []Party
	for rows.Next() {
		var p Party
		var phone, email sql.NullString
		if err := rows.Scan(&p.ID, &p.Name, &p.PartyType, &phone, &email, &p.OpeningBalance, &p.CreditLimit); err != nil {
			return nil, fmt.Errorf("scanning parties row: %w", err)
		}
		p.Phone = utils.NullStringToStringPtr(phone)
		p.Email = utils.NullStringToStringPtr(email)
		parties = append(parties, p)
	}
	return parties, rows.Err()
}

func (s *sqliteStore) LogRequest(ctx context.Context, companyID int, requestType string, success bool, responseTimeMs int64) error {
	query := `INSERT INTO ai_requests (id, company_id, request_type, success, response_time_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query,
		uuid.NewString(),
		companyID,
		requestType,
		boolToInt(success),
		responseTimeMs,
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("logging AI request: %w", err)
	}
	return nil
}

func (s *sqliteStore) UpsertModelStatus(ctx context.Context, companyID int, modelType string, trained bool, accuracy *float64) error {
	now := nowUTC()
	var lastTrained interface{}
	if trained {
		lastTrained = now
	}

	query := `INSERT INTO ai_model_status (id, company_id, model_type, is_trained, last_trained, accuracy_score, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (company_id, model_type) DO UPDATE SET
			is_trained = excluded.is_trained,
			last_trained = excluded.last_trained,
			accuracy_score = excluded.accuracy_score,
			updated_at = excluded.updated_at`
	_, err := s.db.ExecContext(ctx, query,
		uuid.NewString(),
		companyID,
		modelType,
		boolToInt(trained),
		lastTrained,
		nullableFloatToValue(accuracy),
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("updating model status: %w", err)
	}
	return nil
}

func (s *sqliteStore) AllModelStatuses(ctx context.Context) ([]ModelStatusRow, error) {
	query := `SELECT company_id, model_type, is_trained, last_trained, accuracy_score, status
		FROM ai_model_status ORDER BY company_id, model_type`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying ai_model_status: %w", err)
	}
	defer rows.Close()

	var statuses []ModelStatusRow
	for rows.Next() {
		var row ModelStatusRow
		var trained int
		var lastTrained sql.NullString
		var accuracy sql.NullFloat64
		if err := rows.Scan(&row.CompanyID, &row.ModelType, &trained, &lastTrained, &accuracy, &row.Status); err != nil {
			return nil, fmt.Errorf("scanning ai_model_status row: %w", err)
		}
		row.IsTrained = intToBool(trained)
		row.LastTrained = parseNullableTime(lastTrained)
		row.AccuracyScore = utils.NullFloatToFloatPtr(accuracy)
		statuses = append(statuses, row)
	}
	return statuses, rows.Err()
}

func (s *sqliteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *sqliteStore) Close() {
	_ = s.db.Close()
}

// parseNullableTime parses an RFC3339 column into a *time.Time.
// Returns nil for NULL, empty, or malformed values.
func parseNullableTime(s sql.NullString) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s.String)
	if err != nil {
		return nil
	}
	return &t
}

func nullableFloatToValue(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func intToBool(i int) bool {
	return i != 0
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
