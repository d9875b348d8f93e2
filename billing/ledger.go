package billing

import (
	"github.com/majjane/majjaneflow/models"
	"github.com/shopspring/decimal"
)

// AmountPaid sums every payment recorded against the invoice; zero when none
// exist.
func AmountPaid(payments []models.Payment, invoiceID string) decimal.Decimal {
	var sum decimal.Decimal
	for _, p := range payments {
		if p.InvoiceID == invoiceID {
			sum = sum.Add(p.Amount)
		}
	}
	return sum
}

// AmountDue is the invoice total minus the amount paid. The sign is
// preserved: a negative result means overpayment and callers must surface it
// rather than clamp it away.
func AmountDue(inv models.Invoice, payments []models.Payment) decimal.Decimal {
	return ComputeTotals(inv.LineItems).Total.Sub(AmountPaid(payments, inv.ID))
}
