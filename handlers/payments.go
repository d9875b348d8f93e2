package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/majjane/majjaneflow/models"
)

// ListPayments lists payments
// @Summary      List payments
// @Description  Get payments, optionally filtered by invoice.
// @Tags         payments
// @Produce      json
// @Param        invoice_id  query     string  false  "Filter by invoice"
// @Success      200         {object}  Response{data=[]models.Payment}
// @Router       /payments [get]
// @Security     BasicAuth
func ListPayments(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Store.ListPayments(r.URL.Query().Get("invoice_id")))
}

// GetPayment retrieves a single payment by ID
// @Summary      Get payment
// @Description  Get details of a specific payment.
// @Tags         payments
// @Produce      json
// @Param        id   path      string  true  "Payment ID"
// @Success      200  {object}  Response{data=models.Payment}
// @Failure      404  {object}  Response{error=string}
// @Router       /payments/{id} [get]
// @Security     BasicAuth
func GetPayment(w http.ResponseWriter, r *http.Request) {
	p, err := Store.GetPayment(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "payment not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// CreatePayment records a payment against an invoice
// @Summary      Create payment
// @Description  Record a payment. Validation rejects a missing invoice reference, non-positive amount, or missing method before any state changes.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        payment  body      models.PaymentInput  true  "Payment contents"
// @Success      201      {object}  Response{data=models.Payment}
// @Failure      400      {object}  Response{error=string}
// @Failure      404      {object}  Response{error=string}
// @Router       /payments [post]
// @Security     BasicAuth
func CreatePayment(w http.ResponseWriter, r *http.Request) {
	var input models.PaymentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	p, err := Store.CreatePayment(input)
	if err != nil {
		writeError(w, http.StatusNotFound, "invoice not found")
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// UpdatePayment updates an existing payment
// @Summary      Update payment
// @Description  Update a recorded payment.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id       path      string               true  "Payment ID"
// @Param        payment  body      models.PaymentInput  true  "Updated payment contents"
// @Success      200      {object}  Response{data=models.Payment}
// @Failure      400      {object}  Response{error=string}
// @Failure      404      {object}  Response{error=string}
// @Router       /payments/{id} [put]
// @Security     BasicAuth
func UpdatePayment(w http.ResponseWriter, r *http.Request) {
	var input models.PaymentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	p, err := Store.UpdatePayment(chi.URLParam(r, "id"), input)
	if err != nil {
		writeError(w, http.StatusNotFound, "payment or invoice not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// DeletePayment deletes a payment
// @Summary      Delete payment
// @Description  Remove a recorded payment.
// @Tags         payments
// @Produce      json
// @Param        id   path      string  true  "Payment ID"
// @Success      200  {object}  Response{data=map[string]string}
// @Failure      404  {object}  Response{error=string}
// @Router       /payments/{id} [delete]
// @Security     BasicAuth
func DeletePayment(w http.ResponseWriter, r *http.Request) {
	if err := Store.DeletePayment(chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusNotFound, "payment not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}
