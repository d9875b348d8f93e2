package store

import (
	"testing"

	"github.com/majjane/majjaneflow/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func createInvoice(t *testing.T, s *Store, number string) models.Invoice {
	t.Helper()
	inv, err := s.CreateInvoice(models.InvoiceInput{
		InvoiceNumber: number,
		ClientID:      "client-1",
		Date:          "2026-07-01",
		RenewalDate:   "2026-08-30",
		Status:        models.StatusPending,
	})
	require.NoError(t, err)
	return inv
}

func TestCreateInvoiceGeneratesNumber(t *testing.T) {
	s := New()
	inv, err := s.CreateInvoice(models.InvoiceInput{ClientID: "client-1"})
	require.NoError(t, err)
	assert.Regexp(t, `^FAC-\d{4}-\d{4}$`, inv.InvoiceNumber)
	assert.NotEmpty(t, inv.ID)
}

func TestCreateInvoiceRejectsDuplicateNumber(t *testing.T) {
	s := New()
	createInvoice(t, s, "FAC-1")
	_, err := s.CreateInvoice(models.InvoiceInput{ClientID: "client-1", InvoiceNumber: "FAC-1"})
	assert.ErrorIs(t, err, ErrDuplicateNumber)
}

func TestDeleteInvoiceRejectedWhilePaymentsExist(t *testing.T) {
	s := New()
	inv := createInvoice(t, s, "FAC-1")
	p, err := s.CreatePayment(models.PaymentInput{InvoiceID: inv.ID, Date: "2026-08-01", Amount: dec("100"), Method: "cash"})
	require.NoError(t, err)

	assert.ErrorIs(t, s.DeleteInvoice(inv.ID), ErrHasPayments)

	// Removing the payment unblocks the deletion.
	require.NoError(t, s.DeletePayment(p.ID))
	require.NoError(t, s.DeleteInvoice(inv.ID))
	_, err = s.GetInvoice(inv.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateInvoiceRenewalChangeClearsMarker(t *testing.T) {
	s := New()
	inv := createInvoice(t, s, "FAC-1")
	require.NoError(t, s.MarkInvoiceNotified(inv.ID, "2026-08-31"))

	// Same renewal date: the marker survives.
	updated, err := s.UpdateInvoice(inv.ID, models.InvoiceInput{
		InvoiceNumber: "FAC-1", ClientID: "client-1",
		Date: "2026-07-01", RenewalDate: "2026-08-30", Status: models.StatusPending,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.LastNotificationSent)

	// New renewal cycle: the one-shot reminder is re-armed.
	updated, err = s.UpdateInvoice(inv.ID, models.InvoiceInput{
		InvoiceNumber: "FAC-1", ClientID: "client-1",
		Date: "2026-07-01", RenewalDate: "2026-09-30", Status: models.StatusPending,
	})
	require.NoError(t, err)
	assert.Nil(t, updated.LastNotificationSent)
}

func TestMarkInvoiceNotified(t *testing.T) {
	s := New()
	inv := createInvoice(t, s, "FAC-1")

	require.NoError(t, s.MarkInvoiceNotified(inv.ID, "2026-08-31"))
	got, err := s.GetInvoice(inv.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastNotificationSent)
	assert.Equal(t, "2026-08-31", *got.LastNotificationSent)

	assert.ErrorIs(t, s.MarkInvoiceNotified("missing", "2026-08-31"), ErrNotFound)
}

func TestCreatePaymentRequiresInvoice(t *testing.T) {
	s := New()
	_, err := s.CreatePayment(models.PaymentInput{InvoiceID: "missing", Amount: dec("10"), Method: "cash"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListInvoicesFilter(t *testing.T) {
	s := New()
	a, err := s.CreateInvoice(models.InvoiceInput{ClientID: "client-a", Date: "2026-01-10", Status: models.StatusPending})
	require.NoError(t, err)
	_, err = s.CreateInvoice(models.InvoiceInput{ClientID: "client-b", Date: "2026-03-10", Status: models.StatusPaid})
	require.NoError(t, err)

	got := s.ListInvoices(InvoiceFilter{ClientID: "client-a"})
	require.Len(t, got, 1)
	assert.Equal(t, a.ID, got[0].ID)

	assert.Len(t, s.ListInvoices(InvoiceFilter{Status: models.StatusPaid}), 1)
	assert.Len(t, s.ListInvoices(InvoiceFilter{From: "2026-02-01"}), 1)
	assert.Len(t, s.ListInvoices(InvoiceFilter{From: "2026-01-01", To: "2026-12-31"}), 2)
	assert.Len(t, s.ListInvoices(InvoiceFilter{}), 2)
}

func TestLineItemPrefillFromCatalog(t *testing.T) {
	s := New()
	svc := s.CreateService(models.ServiceInput{
		ClientID: "client-1", ServiceName: "Hébergement Web Pro",
		Cost: dec("299"), Currency: models.CurrencyUSD, Status: "active", BillingCycle: "yearly",
	})

	inv, err := s.CreateInvoice(models.InvoiceInput{
		ClientID: "client-1",
		LineItems: []models.LineItem{
			{ServiceID: svc.ID, Quantity: dec("1"), TaxRate: dec("20")},
		},
	})
	require.NoError(t, err)
	require.Len(t, inv.LineItems, 1)
	assert.Equal(t, "Hébergement Web Pro", inv.LineItems[0].Description)
	assert.True(t, inv.LineItems[0].UnitPrice.Equal(dec("299")))
}

func TestListInvoicesReturnsCopies(t *testing.T) {
	s := New()
	inv, err := s.CreateInvoice(models.InvoiceInput{
		ClientID:  "client-1",
		LineItems: []models.LineItem{{Description: "original", Quantity: dec("1")}},
	})
	require.NoError(t, err)

	got := s.ListInvoices(InvoiceFilter{})
	got[0].LineItems[0].Description = "mutated"

	fresh, err := s.GetInvoice(inv.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", fresh.LineItems[0].Description)
}
