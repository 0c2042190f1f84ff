package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"

	"ai-service/utils"
)

// postgresStore backs the Store interface with the platform's
// PostgreSQL database.
type postgresStore struct {
	pool *pgxpool.Pool
}

func connectPostgres(ctx context.Context, databaseURL string) (*postgresStore, error) {
	pool, err := pgxpool.Connect(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}

	s := &postgresStore{pool: pool}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("creating AI tables: %w", err)
	}
	return s, nil
}

func (s *postgresStore) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS ai_requests (
			id TEXT PRIMARY KEY,
			company_id INTEGER NOT NULL,
			request_type VARCHAR(50) NOT NULL,
			success BOOLEAN DEFAULT FALSE,
			response_time_ms BIGINT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS ai_model_status (
			id TEXT PRIMARY KEY,
			company_id INTEGER NOT NULL,
			model_type VARCHAR(50) NOT NULL,
			is_trained BOOLEAN DEFAULT FALSE,
			last_trained TIMESTAMP,
			accuracy_score DECIMAL(5,4),
			status VARCHAR(20) DEFAULT 'pending',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (company_id, model_type)
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func (s *postgresStore) SalesInvoices(ctx context.Context, companyID int) ([]SalesInvoice, error) {
	query := `
		SELECT id, total_amount, profit, created_at, party_id
		FROM sales_invoices
		WHERE company_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := s.pool.Query(ctx, query, companyID, fetchLimit)
	if err != nil {
		return nil, fmt.Errorf("querying sales_invoices: %w", err)
	}
	defer rows.Close()

	var invoices []SalesInvoice
	for rows.Next() {
		var inv SalesInvoice
		var partyID sql.NullString
		if err := rows.Scan(&inv.ID, &inv.TotalAmount, &inv.Profit, &inv.CreatedAt, &partyID); err != nil {
			return nil, fmt.Errorf("scanning sales_invoices row: %w", err)
		}
		inv.PartyID = utils.NullStringToStringPtr(partyID)
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}

func (s *postgresStore) Payments(ctx context.Context, companyID int) ([]Payment, error) {
	query := `
		SELECT id, amount, payment_date, due_date, status, party_id
		FROM payments
		WHERE company_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := s.pool.Query(ctx, query, companyID, fetchLimit)
	if err != nil {
		return nil, fmt.Errorf("querying payments: %w", err)
	}
	defer rows.Close()

	var payments []Payment
	for rows.Next() {
		var p Payment
		var paymentDate, dueDate sql.NullTime
		var partyID sql.NullString
		if err := rows.Scan(&p.ID, &p.Amount, &paymentDate, &dueDate, &p.Status, &partyID); err != nil {
			return nil, fmt.Errorf("scanning payments row: %w", err)
		}
		p.PaymentDate = utils.NullTimeToTimePtr(paymentDate)
		p.DueDate = utils.NullTimeToTimePtr(dueDate)
		p.PartyID = utils.NullStringToStringPtr(partyID)
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (s *postgresStore) Expenses(ctx context.Context, companyID int) ([]Expense, error) {
	query := `
		SELECT id, amount, category, created_at, description
		FROM expenses
		WHERE company_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := s.pool.Query(ctx, query, companyID, fetchLimit)
	if err != nil {
		return nil, fmt.Errorf("querying expenses: %w", err)
	}
	defer rows.Close()

	var expenses []Expense
	for rows.Next() {
		var e Expense
		var description sql.NullString
		if err := rows.Scan(&e.ID, &e.Amount, &e.Category, &e.CreatedAt, &description); err != nil {
			return nil, fmt.Errorf("scanning expenses row: %w", err)
		}
		e.Description = utils.NullStringToStringPtr(description)
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

func (s *postgresStore) InventoryMovements(ctx context.Context, companyID int) ([]InventoryMovement, error) {
	query := `
		SELECT id, item_id, quantity, movement_type, created_at
		FROM inventory_movements
		WHERE company_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := s.pool.Query(ctx, query, companyID, fetchLimit)
	if err != nil {
		return nil, fmt.Errorf("querying inventory_movements: %w", err)
	}
	defer rows.Close()

	var movements []InventoryMovement
	for rows.Next() {
		var m InventoryMovement
		if err := rows.Scan(&m.ID, &m.ItemID, &m.Quantity, &m.MovementType, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning inventory_movements row: %w", err)
		}
		movements = append(movements, m)
	}
	return movements, rows.Err()
}

func (s *postgresStore) Parties(ctx context.Context, companyID int) ([]Party, error) {
	query := `
		SELECT id, name, party_type, phone, email, opening_balance, credit_limit
		FROM parties
		WHERE company_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := s.pool.Query(ctx, query, companyID, fetchLimit)
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

func (s *postgresStore) LogRequest(ctx context.Context, companyID int, requestType string, success bool, responseTimeMs int64) error {
	query := `
		INSERT INTO ai_requests (id, company_id, request_type, success, response_time_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.pool.Exec(ctx, query,
		uuid.NewString(),
		companyID,
		requestType,
		success,
		responseTimeMs,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("logging AI request: %w", err)
	}
	return nil
}

func (s *postgresStore) UpsertModelStatus(ctx context.Context, companyID int, modelType string, trained bool, accuracy *float64) error {
	now := time.Now().UTC()
	var lastTrained *time.Time
	if trained {
		lastTrained = &now
	}

	query := `
		INSERT INTO ai_model_status (id, company_id, model_type, is_trained, last_trained, accuracy_score, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (company_id, model_type) DO UPDATE SET
			is_trained = EXCLUDED.is_trained,
			last_trained = EXCLUDED.last_trained,
			accuracy_score = EXCLUDED.accuracy_score,
			updated_at = EXCLUDED.updated_at
	`
	_, err := s.pool.Exec(ctx, query,
		uuid.NewString(),
		companyID,
		modelType,
		trained,
		lastTrained,
		accuracy,
		now,
	)
	if err != nil {
		return fmt.Errorf("updating model status: %w", err)
	}
	return nil
}

func (s *postgresStore) AllModelStatuses(ctx context.Context) ([]ModelStatusRow, error) {
	query := `
		SELECT company_id, model_type, is_trained, last_trained, accuracy_score, status
		FROM ai_model_status
		ORDER BY company_id, model_type
	`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying ai_model_status: %w", err)
	}
	defer rows.Close()

	var statuses []ModelStatusRow
	for rows.Next() {
		var row ModelStatusRow
		var lastTrained sql.NullTime
		var accuracy sql.NullFloat64
		if err := rows.Scan(&row.CompanyID, &row.ModelType, &row.IsTrained, &lastTrained, &accuracy, &row.Status); err != nil {
			return nil, fmt.Errorf("scanning ai_model_status row: %w", err)
		}
		row.LastTrained = utils.NullTimeToTimePtr(lastTrained)
		row.AccuracyScore = utils.NullFloatToFloatPtr(accuracy)
		statuses = append(statuses, row)
	}
	return statuses, rows.Err()
}

func (s *postgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *postgresStore) Close() {
	s.pool.Close()
}
