package store

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/majjane/majjaneflow/models"
)

// InvoiceFilter narrows ListInvoices. Zero values match everything. From/To
// bound the issue date (inclusive, ISO date strings).
type InvoiceFilter struct {
	ClientID string
	Status   string
	From     string
	To       string
}

func (f InvoiceFilter) matches(inv models.Invoice) bool {
	if f.ClientID != "" && inv.ClientID != f.ClientID {
		return false
	}
	if f.Status != "" && inv.Status != f.Status {
		return false
	}
	if f.From != "" && inv.Date < f.From {
		return false
	}
	if f.To != "" && inv.Date > f.To {
		return false
	}
	return true
}

// ListInvoices returns matching invoices, newest first. Line items are
// copied so callers cannot mutate stored state through the slice.
func (s *Store) ListInvoices(filter InvoiceFilter) []models.Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Invoice, 0, len(s.invoices))
	for _, inv := range s.invoices {
		if filter.matches(inv) {
			out = append(out, copyInvoice(inv))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// GetInvoice looks up one invoice by id.
func (s *Store) GetInvoice(id string) (models.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inv, ok := s.invoices[id]
	if !ok {
		return models.Invoice{}, ErrNotFound
	}
	return copyInvoice(inv), nil
}

// CreateInvoice inserts a new invoice. An empty invoice number gets a
// generated FAC-<year>-<seq> one; a supplied number must be unique.
func (s *Store) CreateInvoice(input models.InvoiceInput) (models.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	number := input.InvoiceNumber
	if number == "" {
		s.invoiceSeq++
		number = fmt.Sprintf("FAC-%d-%04d", s.now().Year(), s.invoiceSeq)
	}
	for _, existing := range s.invoices {
		if existing.InvoiceNumber == number {
			return models.Invoice{}, ErrDuplicateNumber
		}
	}

	now := s.now()
	inv := models.Invoice{
		ID:            uuid.NewString(),
		InvoiceNumber: number,
		ClientID:      input.ClientID,
		Date:          input.Date,
		RenewalDate:   input.RenewalDate,
		Renewal:       input.Renewal,
		Currency:      input.Currency,
		Status:        input.Status,
		PaymentMethod: input.PaymentMethod,
		LineItems:     s.prefillLineItems(input.LineItems),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.invoices[inv.ID] = inv
	return copyInvoice(inv), nil
}

// UpdateInvoice replaces the stored record. Changing the renewal date starts
// a new cycle and re-arms the one-shot automatic reminder by clearing the
// last-notification marker.
func (s *Store) UpdateInvoice(id string, input models.InvoiceInput) (models.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.invoices[id]
	if !ok {
		return models.Invoice{}, ErrNotFound
	}
	if input.InvoiceNumber != "" && input.InvoiceNumber != inv.InvoiceNumber {
		for _, existing := range s.invoices {
			if existing.ID != id && existing.InvoiceNumber == input.InvoiceNumber {
				return models.Invoice{}, ErrDuplicateNumber
			}
		}
		inv.InvoiceNumber = input.InvoiceNumber
	}
	if input.RenewalDate != inv.RenewalDate {
		inv.LastNotificationSent = nil
	}
	inv.ClientID = input.ClientID
	inv.Date = input.Date
	inv.RenewalDate = input.RenewalDate
	inv.Renewal = input.Renewal
	inv.Currency = input.Currency
	inv.Status = input.Status
	inv.PaymentMethod = input.PaymentMethod
	inv.LineItems = s.prefillLineItems(input.LineItems)
	inv.UpdatedAt = s.now()
	s.invoices[id] = inv
	return copyInvoice(inv), nil
}

// DeleteInvoice removes an invoice. Deletion is rejected while payments
// still reference it; a payment pointing at a missing invoice would break
// the ledger.
func (s *Store) DeleteInvoice(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.invoices[id]; !ok {
		return ErrNotFound
	}
	for _, p := range s.payments {
		if p.InvoiceID == id {
			return ErrHasPayments
		}
	}
	delete(s.invoices, id)
	return nil
}

// MarkInvoiceNotified stamps the last-notification date. It is the only
// mutation the dispatcher performs; concurrent sends hit disjoint ids and
// serialize on the store lock, so stamps never overwrite each other.
func (s *Store) MarkInvoiceNotified(id, date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.invoices[id]
	if !ok {
		return ErrNotFound
	}
	inv.LastNotificationSent = &date
	s.invoices[id] = inv
	return nil
}

// prefillLineItems copies description and unit price from the referenced
// catalog service when the item arrives without them.
func (s *Store) prefillLineItems(items []models.LineItem) []models.LineItem {
	out := append([]models.LineItem(nil), items...)
	for i, item := range out {
		if item.ServiceID == "" {
			continue
		}
		svc, ok := s.services[item.ServiceID]
		if !ok {
			continue
		}
		if item.Description == "" {
			out[i].Description = svc.ServiceName
		}
		if item.UnitPrice.IsZero() {
			out[i].UnitPrice = svc.Cost
		}
	}
	return out
}

func copyInvoice(inv models.Invoice) models.Invoice {
	inv.LineItems = append([]models.LineItem(nil), inv.LineItems...)
	if inv.LastNotificationSent != nil {
		d := *inv.LastNotificationSent
		inv.LastNotificationSent = &d
	}
	return inv
}
