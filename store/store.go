// Package store owns the in-memory collections backing the API. All access
// goes through its methods; callers never see the underlying maps, which is
// what keeps unique invoice numbers and referential checks enforceable.
// Writes replace whole records by id under the store lock.
package store

import (
	"errors"
	"sync"
	"time"

	"github.com/majjane/majjaneflow/models"
)

var (
	// ErrNotFound is returned when no record carries the requested id.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateNumber is returned when an invoice number is already taken.
	ErrDuplicateNumber = errors.New("invoice number already exists")
	// ErrHasPayments rejects deleting an invoice that payments still
	// reference. Payments must be removed first.
	ErrHasPayments = errors.New("invoice has recorded payments")
)

// Store holds every collection behind one lock. The dataset is a single
// agency's back office; contention is not a concern, correctness of the
// notification stamp under concurrent sends is.
type Store struct {
	mu sync.RWMutex

	clients  map[string]models.Client
	services map[string]models.Service
	invoices map[string]models.Invoice
	payments map[string]models.Payment

	invoiceSeq int
	now        func() time.Time
}

// New returns an empty store.
func New() *Store {
	return &Store{
		clients:  make(map[string]models.Client),
		services: make(map[string]models.Service),
		invoices: make(map[string]models.Invoice),
		payments: make(map[string]models.Payment),
		now:      time.Now,
	}
}
