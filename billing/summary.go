package billing

import (
	"github.com/majjane/majjaneflow/models"
	"github.com/shopspring/decimal"
)

// Summary aggregates a filtered invoice subset for the reconciliation view.
type Summary struct {
	Count        int             `json:"count"`
	TotalBilled  decimal.Decimal `json:"total_billed"`
	TotalPaid    decimal.Decimal `json:"total_paid"`
	AmountDue    decimal.Decimal `json:"amount_due"`
	OverdueCount int             `json:"overdue_count"`
}

// IsOverdue reports whether an invoice should be treated as overdue on the
// given day. The stored status is user-set and may be stale, so an invoice
// counts either when the user marked it overdue or when its renewal date has
// passed without the invoice being paid. Dates compare lexicographically
// (ISO YYYY-MM-DD).
func IsOverdue(inv models.Invoice, today string) bool {
	if inv.Status == models.StatusOverdue {
		return true
	}
	return inv.RenewalDate < today && inv.Status != models.StatusPaid
}

// Summarize computes count, total billed, total paid, amount due and overdue
// count over the given invoices. Payments may cover invoices outside the
// subset; only matching ones contribute.
func Summarize(invoices []models.Invoice, payments []models.Payment, today string) Summary {
	s := Summary{Count: len(invoices)}
	for _, inv := range invoices {
		s.TotalBilled = s.TotalBilled.Add(ComputeTotals(inv.LineItems).Total)
		s.TotalPaid = s.TotalPaid.Add(AmountPaid(payments, inv.ID))
		if IsOverdue(inv, today) {
			s.OverdueCount++
		}
	}
	s.AmountDue = s.TotalBilled.Sub(s.TotalPaid)
	return s
}
