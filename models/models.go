package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// --- JWT & Auth ---

type JwtClaims struct {
	CompanyID int `json:"companyId"`
	jwt.RegisteredClaims
}

// --- Synthetic Data Records ---

// SalesRecord is one generated (date, item) sales row. Generated per
// request and never persisted.
type SalesRecord struct {
	Date         time.Time `json:"date"`
	ItemName     string    `json:"item_name"`
	QuantitySold int       `json:"quantity_sold"`
	Price        float64   `json:"price"`
}

// PaymentRecord is one generated customer payment history row.
type PaymentRecord struct {
	CustomerID    int       `json:"customer_id"`
	CustomerName  string    `json:"customer_name"`
	Amount        float64   `json:"amount"`
	PaymentDays   int       `json:"payment_days"`
	PaymentStatus string    `json:"payment_status"`
	InvoiceDate   time.Time `json:"invoice_date"`
}

// --- Monthly Business Data ---

type MonthlySales struct {
	Month        int     `json:"month"`
	SalesAmount  float64 `json:"sales_amount"`
	GrossProfit  float64 `json:"gross_profit"`
	ProfitMargin float64 `json:"profit_margin"`
}

type MonthlyExpenses struct {
	Month         int     `json:"month"`
	Salaries      float64 `json:"salaries"`
	Rent          float64 `json:"rent"`
	Utilities     float64 `json:"utilities"`
	Marketing     float64 `json:"marketing"`
	Other         float64 `json:"other"`
	TotalExpenses float64 `json:"total_expenses"`
}

type MonthlyCustomers struct {
	Month           int     `json:"month"`
	NewCustomers    int     `json:"new_customers"`
	RepeatCustomers int     `json:"repeat_customers"`
	RetentionRate   float64 `json:"retention_rate"`
}

type MonthlyInventory struct {
	Month             int     `json:"month"`
	ItemsSold         int     `json:"items_sold"`
	ItemsOrdered      int     `json:"items_ordered"`
	InventoryTurnover float64 `json:"inventory_turnover"`
}

// BusinessData bundles a year of generated monthly figures for the
// insight rules.
type BusinessData struct {
	Sales     []MonthlySales     `json:"sales"`
	Expenses  []MonthlyExpenses  `json:"expenses"`
	Customers []MonthlyCustomers `json:"customers"`
	Inventory []MonthlyInventory `json:"inventory"`
}
