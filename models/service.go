package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service is a catalog entry (hosting, domain, SaaS subscription...) that can
// pre-fill a new invoice line item with its name and cost.
type Service struct {
	ID               string          `json:"id"`
	ClientID         string          `json:"client_id"`
	ServiceName      string          `json:"service_name"`
	Type             string          `json:"type"`
	Provider         string          `json:"provider"`
	Status           string          `json:"status"` // active, pending_renewal, expired, cancelled
	StartDate        string          `json:"start_date"`
	ExpirationDate   string          `json:"expiration_date"`
	Cost             decimal.Decimal `json:"cost"`
	Currency         Currency        `json:"currency"`
	BillingCycle     string          `json:"billing_cycle"` // monthly, quarterly, yearly, one_time
	RenewalType      string          `json:"renewal_type"`  // manual, automatic
	Priority         string          `json:"priority"`      // low, medium, high
	TechnicalContact string          `json:"technical_contact"`
	RenewalReminder  bool            `json:"renewal_reminder"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// ServiceInput is used for creating/updating services.
type ServiceInput struct {
	ClientID         string          `json:"client_id"`
	ServiceName      string          `json:"service_name"`
	Type             string          `json:"type"`
	Provider         string          `json:"provider"`
	Status           string          `json:"status"`
	StartDate        string          `json:"start_date"`
	ExpirationDate   string          `json:"expiration_date"`
	Cost             decimal.Decimal `json:"cost"`
	Currency         Currency        `json:"currency"`
	BillingCycle     string          `json:"billing_cycle"`
	RenewalType      string          `json:"renewal_type"`
	Priority         string          `json:"priority"`
	TechnicalContact string          `json:"technical_contact"`
	RenewalReminder  bool            `json:"renewal_reminder"`
}

func (s *ServiceInput) Validate() string {
	if s.ServiceName == "" {
		return "service_name is required"
	}
	if s.ClientID == "" {
		return "client_id is required"
	}
	switch s.Status {
	case "", "active", "pending_renewal", "expired", "cancelled":
	default:
		return "status must be one of: active, pending_renewal, expired, cancelled"
	}
	if s.Status == "" {
		s.Status = "active"
	}
	switch s.Currency {
	case "", CurrencyEUR, CurrencyMAD, CurrencyUSD:
	default:
		return "currency must be one of: EUR, MAD, USD"
	}
	if s.Currency == "" {
		s.Currency = CurrencyUSD
	}
	switch s.BillingCycle {
	case "", "monthly", "quarterly", "yearly", "one_time":
	default:
		return "billing_cycle must be one of: monthly, quarterly, yearly, one_time"
	}
	if s.BillingCycle == "" {
		s.BillingCycle = "yearly"
	}
	return ""
}
