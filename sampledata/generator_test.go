package sampledata

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
}

func TestSalesDeterministic(t *testing.T) {
	gen := New(DefaultConfig(), fixedClock)

	first := gen.Sales(1)
	second := gen.Sales(1)
	require.Equal(t, len(first), len(second))
	assert.Equal(t, first, second)

	other := gen.Sales(2)
	assert.NotEqual(t, first, other)
}

func TestSalesShape(t *testing.T) {
	gen := New(DefaultConfig(), fixedClock)
	records := gen.Sales(1)

	// 670 days from 2023-01-01 through 2024-10-31, five items each.
	require.Len(t, records, 3350)

	for _, r := range records {
		if r.QuantitySold < 0 {
			t.Fatalf("negative quantity %d on %s", r.QuantitySold, r.Date)
		}
		if r.Price < 50 || r.Price >= 200 {
			t.Fatalf("price %f out of range", r.Price)
		}
	}
	assert.Equal(t, "item_a", records[0].ItemName)
	assert.Equal(t, time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), records[0].Date)
	assert.Equal(t, time.Date(2024, time.October, 31, 0, 0, 0, 0, time.UTC), records[len(records)-1].Date)
}

func TestSalesShortWindow(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Start = time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	cfg.End = cfg.Start
	gen := New(cfg, fixedClock)

	records := gen.Sales(1)
	assert.Len(t, records, 5)
}

func TestPaymentsShape(t *testing.T) {
	gen := New(DefaultConfig(), fixedClock)
	records := gen.Payments(1)

	require.Len(t, records, 200)

	now := fixedClock()
	perCustomer := map[int]int{}
	validDays := map[int]bool{7: true, 15: true, 30: true, 45: true, 60: true}
	for _, r := range records {
		perCustomer[r.CustomerID]++
		if !validDays[r.PaymentDays] {
			t.Fatalf("unexpected payment days %d", r.PaymentDays)
		}
		if r.PaymentStatus != "completed" && r.PaymentStatus != "delayed" {
			t.Fatalf("unexpected status %q", r.PaymentStatus)
		}
		if r.Amount < 1000 || r.Amount >= 10000 {
			t.Fatalf("amount %f out of range", r.Amount)
		}
		age := now.Sub(r.InvoiceDate)
		if age <= 0 || age > 365*24*time.Hour {
			t.Fatalf("invoice date %s outside the last year", r.InvoiceDate)
		}
	}
	require.Len(t, perCustomer, 20)
	for id, n := range perCustomer {
		assert.Equal(t, 10, n, "customer %d", id)
	}
	assert.Equal(t, "Customer 1", records[0].CustomerName)
}

func TestPaymentsDeterministic(t *testing.T) {
	gen := New(DefaultConfig(), fixedClock)
	assert.Equal(t, gen.Payments(7), gen.Payments(7))
}

func TestBusinessShape(t *testing.T) {
	gen := New(DefaultConfig(), fixedClock)
	data := gen.Business(1)

	require.Len(t, data.Sales, 12)
	require.Len(t, data.Expenses, 12)
	require.Len(t, data.Customers, 12)
	require.Len(t, data.Inventory, 12)

	for i := 0; i < 12; i++ {
		s := data.Sales[i]
		assert.Equal(t, i+1, s.Month)
		if s.ProfitMargin < 15 || s.ProfitMargin >= 35 {
			t.Fatalf("month %d margin %f out of range", s.Month, s.ProfitMargin)
		}

		e := data.Expenses[i]
		total := e.Salaries + e.Rent + e.Utilities + e.Marketing + e.Other
		assert.InDelta(t, total, e.TotalExpenses, 1e-9)

		c := data.Customers[i]
		if c.RetentionRate <= 0 || c.RetentionRate >= 1 {
			t.Fatalf("month %d retention %f out of range", c.Month, c.RetentionRate)
		}

		inv := data.Inventory[i]
		if inv.ItemsOrdered <= inv.ItemsSold {
			t.Fatalf("month %d ordered %d not above sold %d", inv.Month, inv.ItemsOrdered, inv.ItemsSold)
		}
	}
}

func TestBusinessDeterministic(t *testing.T) {
	gen := New(DefaultConfig(), fixedClock)
	assert.Equal(t, gen.Business(3), gen.Business(3))
	assert.NotEqual(t, gen.Business(3), gen.Business(4))
}
