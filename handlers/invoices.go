package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/majjane/majjaneflow/billing"
	"github.com/majjane/majjaneflow/models"
	"github.com/majjane/majjaneflow/store"
	"github.com/shopspring/decimal"
)

// InvoiceView is an invoice with its reconciled amounts computed on read.
type InvoiceView struct {
	models.Invoice
	Subtotal   decimal.Decimal `json:"subtotal"`
	TaxAmount  decimal.Decimal `json:"tax_amount"`
	Total      decimal.Decimal `json:"total"`
	AmountPaid decimal.Decimal `json:"amount_paid"`
	AmountDue  decimal.Decimal `json:"amount_due"`
	IsOverdue  bool            `json:"is_overdue"`
}

func invoiceView(inv models.Invoice, payments []models.Payment, today string) InvoiceView {
	totals := billing.ComputeTotals(inv.LineItems)
	paid := billing.AmountPaid(payments, inv.ID)
	return InvoiceView{
		Invoice:    inv,
		Subtotal:   totals.Subtotal,
		TaxAmount:  totals.TaxAmount,
		Total:      totals.Total,
		AmountPaid: paid,
		AmountDue:  totals.Total.Sub(paid),
		IsOverdue:  billing.IsOverdue(inv, today),
	}
}

func invoiceFilterFromQuery(r *http.Request) store.InvoiceFilter {
	q := r.URL.Query()
	return store.InvoiceFilter{
		ClientID: q.Get("client_id"),
		Status:   q.Get("status"),
		From:     q.Get("from"),
		To:       q.Get("to"),
	}
}

func today() string {
	return time.Now().Format("2006-01-02")
}

// ListInvoices lists all invoices
// @Summary      List invoices
// @Description  Get invoices with reconciled paid/due amounts and derived overdue state.
// @Tags         invoices
// @Produce      json
// @Param        client_id  query     string  false  "Filter by client"
// @Param        status     query     string  false  "Filter by stored status"
// @Param        from       query     string  false  "Issue date lower bound (YYYY-MM-DD)"
// @Param        to         query     string  false  "Issue date upper bound (YYYY-MM-DD)"
// @Success      200        {object}  Response{data=[]InvoiceView}
// @Router       /invoices [get]
// @Security     BasicAuth
func ListInvoices(w http.ResponseWriter, r *http.Request) {
	payments := Store.ListPayments("")
	day := today()
	views := []InvoiceView{}
	for _, inv := range Store.ListInvoices(invoiceFilterFromQuery(r)) {
		views = append(views, invoiceView(inv, payments, day))
	}
	writeJSON(w, http.StatusOK, views)
}

// GetInvoiceSummary aggregates the filtered invoice set
// @Summary      Invoice summary
// @Description  Reconciliation summary of the filtered set: count, total billed, total paid, amount due, overdue count.
// @Tags         invoices
// @Produce      json
// @Param        client_id  query     string  false  "Filter by client"
// @Param        status     query     string  false  "Filter by stored status"
// @Param        from       query     string  false  "Issue date lower bound (YYYY-MM-DD)"
// @Param        to         query     string  false  "Issue date upper bound (YYYY-MM-DD)"
// @Success      200        {object}  Response{data=billing.Summary}
// @Router       /invoices/summary [get]
// @Security     BasicAuth
func GetInvoiceSummary(w http.ResponseWriter, r *http.Request) {
	invoices := Store.ListInvoices(invoiceFilterFromQuery(r))
	summary := billing.Summarize(invoices, Store.ListPayments(""), today())
	writeJSON(w, http.StatusOK, summary)
}

// GetInvoice retrieves a single invoice by ID
// @Summary      Get invoice
// @Description  Get one invoice with reconciled amounts.
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "Invoice ID"
// @Success      200  {object}  Response{data=InvoiceView}
// @Failure      404  {object}  Response{error=string}
// @Router       /invoices/{id} [get]
// @Security     BasicAuth
func GetInvoice(w http.ResponseWriter, r *http.Request) {
	inv, err := Store.GetInvoice(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "invoice not found")
		return
	}
	writeJSON(w, http.StatusOK, invoiceView(inv, Store.ListPayments(inv.ID), today()))
}

// CreateInvoice creates a new invoice
// @Summary      Create invoice
// @Description  Create a new invoice. An omitted invoice number is generated; a supplied one must be unique.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        invoice  body      models.InvoiceInput  true  "Invoice contents"
// @Success      201      {object}  Response{data=InvoiceView}
// @Failure      400      {object}  Response{error=string}
// @Failure      409      {object}  Response{error=string}
// @Router       /invoices [post]
// @Security     BasicAuth
func CreateInvoice(w http.ResponseWriter, r *http.Request) {
	var input models.InvoiceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	inv, err := Store.CreateInvoice(input)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateNumber) {
			writeError(w, http.StatusConflict, err.Error())
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusCreated, invoiceView(inv, nil, today()))
}

// UpdateInvoice updates an existing invoice
// @Summary      Update invoice
// @Description  Update an invoice. Changing the renewal date re-arms the automatic reminder.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id       path      string               true  "Invoice ID"
// @Param        invoice  body      models.InvoiceInput  true  "Updated invoice contents"
// @Success      200      {object}  Response{data=InvoiceView}
// @Failure      400      {object}  Response{error=string}
// @Failure      404      {object}  Response{error=string}
// @Failure      409      {object}  Response{error=string}
// @Router       /invoices/{id} [put]
// @Security     BasicAuth
func UpdateInvoice(w http.ResponseWriter, r *http.Request) {
	var input models.InvoiceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	id := chi.URLParam(r, "id")
	inv, err := Store.UpdateInvoice(id, input)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			writeError(w, http.StatusNotFound, "invoice not found")
		case errors.Is(err, store.ErrDuplicateNumber):
			writeError(w, http.StatusConflict, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, invoiceView(inv, Store.ListPayments(id), today()))
}

// DeleteInvoice deletes an invoice
// @Summary      Delete invoice
// @Description  Remove an invoice. Rejected while payments still reference it.
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "Invoice ID"
// @Success      200  {object}  Response{data=map[string]string}
// @Failure      404  {object}  Response{error=string}
// @Failure      409  {object}  Response{error=string}
// @Router       /invoices/{id} [delete]
// @Security     BasicAuth
func DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	if err := Store.DeleteInvoice(chi.URLParam(r, "id")); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			writeError(w, http.StatusNotFound, "invoice not found")
		case errors.Is(err, store.ErrHasPayments):
			writeError(w, http.StatusConflict, "invoice has payments; delete them first")
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}
