package handlers

import (
	"net/http"

	"github.com/majjane/majjaneflow/billing"
	"github.com/majjane/majjaneflow/models"
	"github.com/majjane/majjaneflow/store"
	"github.com/shopspring/decimal"
)

type dashboardData struct {
	TotalClients  int `json:"total_clients"`
	TotalServices int `json:"total_services"`
	TotalInvoices int `json:"total_invoices"`
	TotalPayments int `json:"total_payments"`

	TotalBilled decimal.Decimal `json:"total_billed"`
	TotalPaid   decimal.Decimal `json:"total_paid"`
	Receivable  decimal.Decimal `json:"receivable"`

	OverdueInvoices int `json:"overdue_invoices"`

	RecentPayments []models.Payment `json:"recent_payments"`
}

// GetDashboard retrieves dashboard summary statistics
// @Summary      Get dashboard
// @Description  Get entity counts, reconciled receivable totals, overdue count, and recent payments.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  Response{data=dashboardData}
// @Router       /dashboard [get]
// @Security     BasicAuth
func GetDashboard(w http.ResponseWriter, r *http.Request) {
	invoices := Store.ListInvoices(store.InvoiceFilter{})
	payments := Store.ListPayments("")
	summary := billing.Summarize(invoices, payments, today())

	d := dashboardData{
		TotalClients:    len(Store.ListClients()),
		TotalServices:   len(Store.ListServices("")),
		TotalInvoices:   summary.Count,
		TotalPayments:   len(payments),
		TotalBilled:     summary.TotalBilled,
		TotalPaid:       summary.TotalPaid,
		Receivable:      summary.AmountDue,
		OverdueInvoices: summary.OverdueCount,
		RecentPayments:  payments,
	}
	if len(d.RecentPayments) > 5 {
		d.RecentPayments = d.RecentPayments[:5]
	}
	if d.RecentPayments == nil {
		d.RecentPayments = []models.Payment{}
	}
	writeJSON(w, http.StatusOK, d)
}
