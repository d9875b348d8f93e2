// Package billing holds the pure reconciliation arithmetic: line-item
// totals, the payment ledger, and the filtered-set summary. Everything here
// recomputes on every call; there are no cached balances to go stale.
package billing

import (
	"github.com/majjane/majjaneflow/models"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Totals is the computed financial breakdown of a line-item set.
type Totals struct {
	Subtotal  decimal.Decimal `json:"subtotal"`
	TaxAmount decimal.Decimal `json:"tax_amount"`
	Total     decimal.Decimal `json:"total"`
}

// ComputeTotals sums line totals and per-line tax. An empty item set yields
// all-zero totals. Negative quantities or prices pass through untouched;
// credit lines legitimately produce negative contributions.
func ComputeTotals(items []models.LineItem) Totals {
	var t Totals
	for _, item := range items {
		lineTotal := item.Quantity.Mul(item.UnitPrice)
		t.Subtotal = t.Subtotal.Add(lineTotal)
		t.TaxAmount = t.TaxAmount.Add(lineTotal.Mul(item.TaxRate.Div(hundred)))
	}
	t.Total = t.Subtotal.Add(t.TaxAmount)
	return t
}
