package store

import (
	"sort"

	"github.com/google/uuid"
	"github.com/majjane/majjaneflow/models"
)

// ListClients returns all clients, newest first.
func (s *Store) ListClients() []models.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Client, 0, len(s.clients))
	for _, c := range s.clients {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// GetClient looks up one client by id. The dispatcher uses this read-only.
func (s *Store) GetClient(id string) (models.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.clients[id]
	if !ok {
		return models.Client{}, ErrNotFound
	}
	return c, nil
}

// CreateClient inserts a new client and returns it with its generated id.
func (s *Store) CreateClient(input models.ClientInput) models.Client {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	c := models.Client{
		ID:                 uuid.NewString(),
		CompanyName:        input.CompanyName,
		Industry:           input.Industry,
		Status:             input.Status,
		AccountType:        input.AccountType,
		PrimaryContactName: input.PrimaryContactName,
		Email:              input.Email,
		Phone:              input.Phone,
		City:               input.City,
		Country:            input.Country,
		MonthlyBudget:      input.MonthlyBudget,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	s.clients[c.ID] = c
	return c
}

// UpdateClient replaces the stored record with the new contents.
func (s *Store) UpdateClient(id string, input models.ClientInput) (models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.clients[id]
	if !ok {
		return models.Client{}, ErrNotFound
	}
	c.CompanyName = input.CompanyName
	c.Industry = input.Industry
	c.Status = input.Status
	c.AccountType = input.AccountType
	c.PrimaryContactName = input.PrimaryContactName
	c.Email = input.Email
	c.Phone = input.Phone
	c.City = input.City
	c.Country = input.Country
	c.MonthlyBudget = input.MonthlyBudget
	c.UpdatedAt = s.now()
	s.clients[id] = c
	return c, nil
}

// DeleteClient removes a client. Invoices keep their client reference; a
// dispatch pass treats a dangling reference as a data-integrity skip.
func (s *Store) DeleteClient(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clients[id]; !ok {
		return ErrNotFound
	}
	delete(s.clients, id)
	return nil
}
