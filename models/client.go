package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Client represents an agency customer. The dispatcher reads clients only to
// resolve the recipient name and email for an invoice.
type Client struct {
	ID                 string          `json:"id"`
	CompanyName        string          `json:"company_name"`
	Industry           string          `json:"industry"`
	Status             string          `json:"status"`       // active, inactive
	AccountType        string          `json:"account_type"` // premium, standard, basic
	PrimaryContactName string          `json:"primary_contact_name"`
	Email              string          `json:"email"`
	Phone              string          `json:"phone"`
	City               string          `json:"city"`
	Country            string          `json:"country"`
	MonthlyBudget      decimal.Decimal `json:"monthly_budget"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// ClientInput is used for creating/updating clients.
type ClientInput struct {
	CompanyName        string          `json:"company_name"`
	Industry           string          `json:"industry"`
	Status             string          `json:"status"`
	AccountType        string          `json:"account_type"`
	PrimaryContactName string          `json:"primary_contact_name"`
	Email              string          `json:"email"`
	Phone              string          `json:"phone"`
	City               string          `json:"city"`
	Country            string          `json:"country"`
	MonthlyBudget      decimal.Decimal `json:"monthly_budget"`
}

func (c *ClientInput) Validate() string {
	if c.CompanyName == "" {
		return "company_name is required"
	}
	switch c.Status {
	case "", "active", "inactive":
	default:
		return "status must be one of: active, inactive"
	}
	if c.Status == "" {
		c.Status = "active"
	}
	switch c.AccountType {
	case "", "premium", "standard", "basic":
	default:
		return "account_type must be one of: premium, standard, basic"
	}
	if c.AccountType == "" {
		c.AccountType = "basic"
	}
	return ""
}
