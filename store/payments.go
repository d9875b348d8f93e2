package store

import (
	"sort"

	"github.com/google/uuid"
	"github.com/majjane/majjaneflow/models"
)

// ListPayments returns payments, optionally restricted to one invoice,
// newest first.
func (s *Store) ListPayments(invoiceID string) []models.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Payment, 0, len(s.payments))
	for _, p := range s.payments {
		if invoiceID != "" && p.InvoiceID != invoiceID {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// GetPayment looks up one payment by id.
func (s *Store) GetPayment(id string) (models.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.payments[id]
	if !ok {
		return models.Payment{}, ErrNotFound
	}
	return p, nil
}

// CreatePayment records a payment against an existing invoice.
func (s *Store) CreatePayment(input models.PaymentInput) (models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.invoices[input.InvoiceID]; !ok {
		return models.Payment{}, ErrNotFound
	}
	now := s.now()
	p := models.Payment{
		ID:        uuid.NewString(),
		InvoiceID: input.InvoiceID,
		Date:      input.Date,
		Amount:    input.Amount,
		Method:    input.Method,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.payments[p.ID] = p
	return p, nil
}

// UpdatePayment replaces the stored record with the new contents.
func (s *Store) UpdatePayment(id string, input models.PaymentInput) (models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.payments[id]
	if !ok {
		return models.Payment{}, ErrNotFound
	}
	if _, ok := s.invoices[input.InvoiceID]; !ok {
		return models.Payment{}, ErrNotFound
	}
	p.InvoiceID = input.InvoiceID
	p.Date = input.Date
	p.Amount = input.Amount
	p.Method = input.Method
	p.UpdatedAt = s.now()
	s.payments[id] = p
	return p, nil
}

// DeletePayment removes a payment record.
func (s *Store) DeletePayment(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.payments[id]; !ok {
		return ErrNotFound
	}
	delete(s.payments, id)
	return nil
}
