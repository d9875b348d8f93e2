package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment records money received against exactly one invoice. Several
// payments may reference the same invoice (partial payments).
type Payment struct {
	ID        string          `json:"id"`
	InvoiceID string          `json:"invoice_id"`
	Date      string          `json:"date"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// PaymentInput is used for creating/updating payments.
type PaymentInput struct {
	InvoiceID string          `json:"invoice_id"`
	Date      string          `json:"date"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
}

// Validate rejects incomplete payments before any state is touched.
func (p *PaymentInput) Validate() string {
	if p.InvoiceID == "" {
		return "invoice_id is required"
	}
	if !p.Amount.IsPositive() {
		return "amount must be positive"
	}
	if p.Method == "" {
		return "method is required"
	}
	return ""
}
