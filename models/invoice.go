package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency is an ISO-ish currency code used for display formatting only.
// No conversion happens anywhere in the system.
type Currency string

const (
	CurrencyEUR Currency = "EUR"
	CurrencyMAD Currency = "MAD"
	CurrencyUSD Currency = "USD"
)

// Symbol returns the display symbol used when formatting amounts.
func (c Currency) Symbol() string {
	switch c {
	case CurrencyEUR:
		return "€"
	case CurrencyMAD:
		return "MAD"
	case CurrencyUSD:
		return "$"
	default:
		return "€"
	}
}

// Invoice statuses. The stored status is advisory and drives filters and the
// UI; whether an invoice is actually overdue is derived from the renewal date
// at read time.
const (
	StatusDraft         = "draft"
	StatusPending       = "pending"
	StatusPaid          = "paid"
	StatusPartiallyPaid = "partially_paid"
	StatusOverdue       = "overdue"
	StatusCancelled     = "cancelled"
)

// LineItem is one billable entry on an invoice. Quantity and unit price are
// deliberately not forced positive: negative lines act as credit lines.
type LineItem struct {
	ServiceID   string          `json:"service_id,omitempty"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TaxRate     decimal.Decimal `json:"tax_rate"` // percentage, 0-100
}

// Invoice represents a receivable invoice to a client. Dates are ISO
// YYYY-MM-DD strings and compare lexicographically.
type Invoice struct {
	ID                   string     `json:"id"`
	InvoiceNumber        string     `json:"invoice_number"`
	ClientID             string     `json:"client_id"`
	Date                 string     `json:"date"`
	RenewalDate          string     `json:"renewal_date"`
	Renewal              bool       `json:"renewal"`
	Currency             Currency   `json:"currency"`
	Status               string     `json:"status"`
	PaymentMethod        string     `json:"payment_method"`
	LineItems            []LineItem `json:"line_items"`
	LastNotificationSent *string    `json:"last_notification_sent"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// InvoiceInput is used for creating/updating invoices.
type InvoiceInput struct {
	InvoiceNumber string     `json:"invoice_number"`
	ClientID      string     `json:"client_id"`
	Date          string     `json:"date"`
	RenewalDate   string     `json:"renewal_date"`
	Renewal       bool       `json:"renewal"`
	Currency      Currency   `json:"currency"`
	Status        string     `json:"status"`
	PaymentMethod string     `json:"payment_method"`
	LineItems     []LineItem `json:"line_items"`
}

func (i *InvoiceInput) Validate() string {
	if i.ClientID == "" {
		return "client_id is required"
	}
	switch i.Status {
	case "", StatusDraft, StatusPending, StatusPaid, StatusPartiallyPaid, StatusOverdue, StatusCancelled:
	default:
		return "status must be one of: draft, pending, paid, partially_paid, overdue, cancelled"
	}
	if i.Status == "" {
		i.Status = StatusPending
	}
	switch i.Currency {
	case "", CurrencyEUR, CurrencyMAD, CurrencyUSD:
	default:
		return "currency must be one of: EUR, MAD, USD"
	}
	if i.Currency == "" {
		i.Currency = CurrencyEUR
	}
	for _, item := range i.LineItems {
		if item.TaxRate.IsNegative() || item.TaxRate.GreaterThan(decimal.NewFromInt(100)) {
			return "tax_rate must be between 0 and 100"
		}
	}
	return ""
}
