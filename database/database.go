// Package database is the persistence collaborator. The service reads
// business rows written by the platform backend and owns two tables of
// its own, ai_requests and ai_model_status, created on startup.
package database

import (
	"context"
	"fmt"
	"log"
	"time"
)

// fetchLimit caps how many rows any accessor returns for one company.
const fetchLimit = 1000

// --- Platform Rows ---

// SalesInvoice is one row of the platform's sales_invoices table.
type SalesInvoice struct {
	ID          string
	TotalAmount float64
	Profit      float64
	CreatedAt   time.Time
	PartyID     *string
}

// Payment is one row of the platform's payments table.
type Payment struct {
	ID          string
	Amount      float64
	PaymentDate *time.Time
	DueDate     *time.Time
	Status      string
	PartyID     *string
}

// Expense is one row of the platform's expenses table.
type Expense struct {
	ID          string
	Amount      float64
	Category    string
	CreatedAt   time.Time
	Description *string
}

// InventoryMovement is one row of the platform's inventory_movements table.
type InventoryMovement struct {
	ID           string
	ItemID       string
	Quantity     float64
	MovementType string
	CreatedAt    time.Time
}

// Party is one row of the platform's parties table. Parties cover both
// customers and suppliers.
type Party struct {
	ID             string
	Name           string
	PartyType      string
	Phone          *string
	Email          *string
	OpeningBalance float64
	CreditLimit    float64
}

// ModelStatusRow is one row of the ai_model_status table.
type ModelStatusRow struct {
	CompanyID     int
	ModelType     string
	IsTrained     bool
	LastTrained   *time.Time
	AccuracyScore *float64
	Status        string
}

// Store is the database surface the service depends on. The platform
// accessors return the newest rows first, capped at fetchLimit. The
// forecasting engines do not consume them yet; a deployment wired to
// real history substitutes these rows for the generated ones.
type Store interface {
	SalesInvoices(ctx context.Context, companyID int) ([]SalesInvoice, error)
	Payments(ctx context.Context, companyID int) ([]Payment, error)
	Expenses(ctx context.Context, companyID int) ([]Expense, error)
	InventoryMovements(ctx context.Context, companyID int) ([]InventoryMovement, error)
	Parties(ctx context.Context, companyID int) ([]Party, error)

	LogRequest(ctx context.Context, companyID int, requestType string, success bool, responseTimeMs int64) error
	UpsertModelStatus(ctx context.Context, companyID int, modelType string, trained bool, accuracy *float64) error
	AllModelStatuses(ctx context.Context) ([]ModelStatusRow, error)

	Ping(ctx context.Context) error
	Close()
}

// Connect establishes the store. A configured PostgreSQL URL is tried
// first; on failure the service falls back to a local SQLite file so
// it keeps running without the platform database.
func Connect(ctx context.Context, databaseURL, sqlitePath string) (Store, error) {
	if databaseURL != "" {
		store, err := connectPostgres(ctx, databaseURL)
		if err == nil {
			log.Println("Connected to PostgreSQL database")
			return store, nil
		}
		log.Printf("PostgreSQL connection failed: %v, falling back to SQLite", err)
	}

	store, err := openSQLite(ctx, sqlitePath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite store: %w", err)
	}
	log.Println("Connected to SQLite database")
	return store, nil
}
