package store

import (
	"sort"

	"github.com/google/uuid"
	"github.com/majjane/majjaneflow/models"
)

// ListServices returns catalog services, optionally restricted to one
// client, newest first.
func (s *Store) ListServices(clientID string) []models.Service {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Service, 0, len(s.services))
	for _, svc := range s.services {
		if clientID != "" && svc.ClientID != clientID {
			continue
		}
		out = append(out, svc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// GetService looks up one catalog service, used to pre-fill a line item's
// description and unit price at creation time.
func (s *Store) GetService(id string) (models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	svc, ok := s.services[id]
	if !ok {
		return models.Service{}, ErrNotFound
	}
	return svc, nil
}

// CreateService inserts a new catalog service.
func (s *Store) CreateService(input models.ServiceInput) models.Service {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	svc := models.Service{
		ID:               uuid.NewString(),
		ClientID:         input.ClientID,
		ServiceName:      input.ServiceName,
		Type:             input.Type,
		Provider:         input.Provider,
		Status:           input.Status,
		StartDate:        input.StartDate,
		ExpirationDate:   input.ExpirationDate,
		Cost:             input.Cost,
		Currency:         input.Currency,
		BillingCycle:     input.BillingCycle,
		RenewalType:      input.RenewalType,
		Priority:         input.Priority,
		TechnicalContact: input.TechnicalContact,
		RenewalReminder:  input.RenewalReminder,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	s.services[svc.ID] = svc
	return svc
}

// UpdateService replaces the stored record with the new contents.
func (s *Store) UpdateService(id string, input models.ServiceInput) (models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	svc, ok := s.services[id]
	if !ok {
		return models.Service{}, ErrNotFound
	}
	svc.ClientID = input.ClientID
	svc.ServiceName = input.ServiceName
	svc.Type = input.Type
	svc.Provider = input.Provider
	svc.Status = input.Status
	svc.StartDate = input.StartDate
	svc.ExpirationDate = input.ExpirationDate
	svc.Cost = input.Cost
	svc.Currency = input.Currency
	svc.BillingCycle = input.BillingCycle
	svc.RenewalType = input.RenewalType
	svc.Priority = input.Priority
	svc.TechnicalContact = input.TechnicalContact
	svc.RenewalReminder = input.RenewalReminder
	svc.UpdatedAt = s.now()
	s.services[id] = svc
	return svc, nil
}

// DeleteService removes a catalog service. Line items keep a copy of the
// description and price, so existing invoices are unaffected.
func (s *Store) DeleteService(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.services[id]; !ok {
		return ErrNotFound
	}
	delete(s.services, id)
	return nil
}
