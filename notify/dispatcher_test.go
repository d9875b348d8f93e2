package notify

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/majjane/majjaneflow/models"
	"github.com/majjane/majjaneflow/store"
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

// fakeSender records delivered messages and can be told to reject some.
type fakeSender struct {
	mu    sync.Mutex
	calls int
	sent  []Message
	fail  func(Message) error
}

func (f *fakeSender) Send(_ context.Context, msg Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.fail != nil {
		if err := f.fail(msg); err != nil {
			return err
		}
	}
	f.sent = append(f.sent, msg)
	return nil
}

func newTestDispatcher(t *testing.T, sender Sender) (*Dispatcher, *store.Store, *store.SettingsStore) {
	t.Helper()
	st := store.New()
	settings, err := store.OpenSettings(filepath.Join(t.TempDir(), "settings.json"))
	require.NoError(t, err)
	d := NewDispatcher(st, settings, sender, "MajjaneFlow")
	d.now = func() time.Time { return time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC) }
	return d, st, settings
}

func seedOverdueInvoice(t *testing.T, st *store.Store, email, number string) models.Invoice {
	t.Helper()
	client := st.CreateClient(models.ClientInput{CompanyName: "Acme", Email: email})
	inv, err := st.CreateInvoice(models.InvoiceInput{
		InvoiceNumber: number,
		ClientID:      client.ID,
		Date:          "2026-07-01",
		RenewalDate:   "2026-08-30",
		Currency:      models.CurrencyEUR,
		Status:        models.StatusPending,
		LineItems: []models.LineItem{
			{Description: "Hosting", Quantity: dec("1"), UnitPrice: dec("1000"), TaxRate: dec("20")},
		},
	})
	require.NoError(t, err)
	return inv
}

func TestAutomaticPassSendsAndStamps(t *testing.T) {
	sender := &fakeSender{}
	d, st, _ := newTestDispatcher(t, sender)
	inv := seedOverdueInvoice(t, st, "jane@acme.com", "FAC-1")

	// Invoice total 1200.00 with one payment of 500.00: the reminder must
	// carry the outstanding 700.00.
	_, err := st.CreatePayment(models.PaymentInput{InvoiceID: inv.ID, Date: "2026-08-01", Amount: dec("500"), Method: "bank_transfer"})
	require.NoError(t, err)

	d.RunAutomatic(context.Background())

	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	assert.Contains(t, msg.To, "jane@acme.com")
	assert.Contains(t, msg.Subject, "FAC-1")
	assert.Contains(t, msg.Body, "Acme")
	assert.Contains(t, msg.Body, "700.00 €")
	assert.Contains(t, msg.Body, "2026-08-30")
	assert.Contains(t, msg.Body, "MajjaneFlow")
	assert.NotContains(t, msg.Body, "[")

	got, err := st.GetInvoice(inv.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastNotificationSent)
	assert.Equal(t, "2026-08-31", *got.LastNotificationSent)
}

func TestAutomaticPassIdempotent(t *testing.T) {
	sender := &fakeSender{}
	d, st, _ := newTestDispatcher(t, sender)
	seedOverdueInvoice(t, st, "jane@acme.com", "FAC-1")

	d.RunAutomatic(context.Background())
	d.RunAutomatic(context.Background())

	assert.Equal(t, 1, sender.calls, "second pass must select zero candidates")
}

func TestAutomaticPassSelection(t *testing.T) {
	sender := &fakeSender{}
	d, st, _ := newTestDispatcher(t, sender)
	client := st.CreateClient(models.ClientInput{CompanyName: "Acme", Email: "jane@acme.com"})

	mk := func(number, renewal, status string) {
		_, err := st.CreateInvoice(models.InvoiceInput{
			InvoiceNumber: number, ClientID: client.ID,
			Date: "2026-07-01", RenewalDate: renewal, Status: status,
		})
		require.NoError(t, err)
	}
	mk("FAC-PAID", "2026-08-01", models.StatusPaid)       // paid: never notified
	mk("FAC-TODAY", "2026-08-31", models.StatusPending)   // due today: not yet overdue
	mk("FAC-FUTURE", "2026-09-30", models.StatusPending)  // not due
	mk("FAC-OVERDUE", "2026-08-30", models.StatusPending) // the one

	d.RunAutomatic(context.Background())

	require.Len(t, sender.sent, 1)
	assert.Contains(t, sender.sent[0].Subject, "FAC-OVERDUE")
}

func TestAutomaticPassFailureDoesNotStamp(t *testing.T) {
	sender := &fakeSender{fail: func(Message) error { return errors.New("smtp down") }}
	d, st, _ := newTestDispatcher(t, sender)
	inv := seedOverdueInvoice(t, st, "jane@acme.com", "FAC-1")

	d.RunAutomatic(context.Background())

	got, err := st.GetInvoice(inv.ID)
	require.NoError(t, err)
	assert.Nil(t, got.LastNotificationSent, "failed send must leave the invoice unstamped")

	// Unstamped means the next automatic pass retries it.
	sender.fail = nil
	d.RunAutomatic(context.Background())
	assert.Len(t, sender.sent, 1)
}

func TestAutomaticPassMissingClientSkips(t *testing.T) {
	sender := &fakeSender{}
	d, st, _ := newTestDispatcher(t, sender)
	inv, err := st.CreateInvoice(models.InvoiceInput{
		InvoiceNumber: "FAC-ORPHAN", ClientID: "gone",
		Date: "2026-07-01", RenewalDate: "2026-08-30", Status: models.StatusPending,
	})
	require.NoError(t, err)

	d.RunAutomatic(context.Background())

	assert.Equal(t, 0, sender.calls)
	got, err := st.GetInvoice(inv.ID)
	require.NoError(t, err)
	assert.Nil(t, got.LastNotificationSent)
}

func TestManualPassNoOverdue(t *testing.T) {
	sender := &fakeSender{}
	d, _, _ := newTestDispatcher(t, sender)

	report := d.RunManualOverdueReport(context.Background())

	assert.Equal(t, Report{Message: "No overdue invoices found."}, report)
	assert.Equal(t, 0, sender.calls, "sender must not be invoked for a zero-match pass")
}

func TestManualPassAggregatesOutcomes(t *testing.T) {
	sender := &fakeSender{fail: func(msg Message) error {
		if strings.Contains(msg.To, "broken@acme.com") {
			return errors.New("mailbox unavailable")
		}
		return nil
	}}
	d, st, _ := newTestDispatcher(t, sender)
	ok1 := seedOverdueInvoice(t, st, "a@acme.com", "FAC-1")
	bad := seedOverdueInvoice(t, st, "broken@acme.com", "FAC-2")
	ok2 := seedOverdueInvoice(t, st, "b@acme.com", "FAC-3")

	report := d.RunManualOverdueReport(context.Background())

	assert.Equal(t, 2, report.Sent)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 0, report.Skipped)
	assert.Equal(t, 3, sender.calls, "every outcome must settle, no short-circuit")

	for _, id := range []string{ok1.ID, ok2.ID} {
		inv, err := st.GetInvoice(id)
		require.NoError(t, err)
		assert.NotNil(t, inv.LastNotificationSent)
	}
	inv, err := st.GetInvoice(bad.ID)
	require.NoError(t, err)
	assert.Nil(t, inv.LastNotificationSent)
}

func TestManualPassIgnoresMarker(t *testing.T) {
	sender := &fakeSender{}
	d, st, _ := newTestDispatcher(t, sender)
	inv := seedOverdueInvoice(t, st, "jane@acme.com", "FAC-1")
	require.NoError(t, st.MarkInvoiceNotified(inv.ID, "2026-08-15"))

	report := d.RunManualOverdueReport(context.Background())

	assert.Equal(t, 1, report.Sent, "manual pass may re-notify")
}

func TestManualPassMissingClientIsSkipNotFailure(t *testing.T) {
	sender := &fakeSender{}
	d, st, _ := newTestDispatcher(t, sender)
	seedOverdueInvoice(t, st, "jane@acme.com", "FAC-1")
	_, err := st.CreateInvoice(models.InvoiceInput{
		InvoiceNumber: "FAC-ORPHAN", ClientID: "gone",
		Date: "2026-07-01", RenewalDate: "2026-08-30", Status: models.StatusPending,
	})
	require.NoError(t, err)

	report := d.RunManualOverdueReport(context.Background())

	assert.Equal(t, 1, report.Sent)
	assert.Equal(t, 0, report.Failed, "a skip before the send attempt is not a failure")
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 1, sender.calls)
}

func TestDisabledRuleSkips(t *testing.T) {
	sender := &fakeSender{}
	d, st, settings := newTestDispatcher(t, sender)
	inv := seedOverdueInvoice(t, st, "jane@acme.com", "FAC-1")

	s := settings.Get()
	s.Overdue.Enabled = false
	require.NoError(t, settings.Save(s))

	d.RunAutomatic(context.Background())
	report := d.RunManualOverdueReport(context.Background())

	assert.Equal(t, 0, sender.calls)
	assert.Equal(t, 1, report.Skipped)
	got, err := st.GetInvoice(inv.ID)
	require.NoError(t, err)
	assert.Nil(t, got.LastNotificationSent)
}
