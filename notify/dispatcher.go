package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/majjane/majjaneflow/billing"
	"github.com/majjane/majjaneflow/models"
	"github.com/majjane/majjaneflow/store"
	"golang.org/x/sync/errgroup"
)

// Report is the ephemeral result of one dispatch pass.
type Report struct {
	Sent    int    `json:"sent"`
	Failed  int    `json:"failed"`
	Skipped int    `json:"skipped"`
	Message string `json:"message"`
}

type outcome int

const (
	outcomeSent outcome = iota
	outcomeSkipped
	outcomeFailed
)

// Dispatcher selects overdue invoices, renders the overdue rule's templates
// and hands messages to the mail collaborator. Successful sends stamp the
// invoice's last-notification date through the store.
type Dispatcher struct {
	store    *store.Store
	settings *store.SettingsStore
	sender   Sender
	company  string

	// now is replaceable in tests.
	now func() time.Time
}

// NewDispatcher wires the dispatcher to its collaborators. company fills the
// [company_name] placeholder.
func NewDispatcher(st *store.Store, settings *store.SettingsStore, sender Sender, company string) *Dispatcher {
	return &Dispatcher{
		store:    st,
		settings: settings,
		sender:   sender,
		company:  company,
		now:      time.Now,
	}
}

// RunAutomatic is the once-per-process-start pass. It only considers
// invoices never notified before: the nil marker is the sole idempotency
// guard, so an invoice notified once is never auto-notified again however
// overdue it remains. Sends run strictly one at a time; a failure is logged
// and leaves the invoice unstamped without stopping the rest of the batch.
func (d *Dispatcher) RunAutomatic(ctx context.Context) {
	today := d.today()
	var candidates []models.Invoice
	for _, inv := range d.store.ListInvoices(store.InvoiceFilter{}) {
		if inv.RenewalDate < today && inv.Status != models.StatusPaid && inv.LastNotificationSent == nil {
			candidates = append(candidates, inv)
		}
	}
	if len(candidates) == 0 {
		slog.Debug("automatic notification pass found no new overdue invoices")
		return
	}

	slog.Info("sending automatic overdue notifications", "count", len(candidates))
	for _, inv := range candidates {
		d.sendOverdue(ctx, inv, today)
	}
}

// RunManualOverdueReport is the user-triggered batch pass. It ignores the
// last-notification marker, dispatches every overdue invoice concurrently
// and waits for all outcomes before aggregating them into one report. When
// nothing is overdue the sender is never invoked.
func (d *Dispatcher) RunManualOverdueReport(ctx context.Context) Report {
	today := d.today()
	var candidates []models.Invoice
	for _, inv := range d.store.ListInvoices(store.InvoiceFilter{}) {
		if inv.RenewalDate < today && inv.Status != models.StatusPaid {
			candidates = append(candidates, inv)
		}
	}
	if len(candidates) == 0 {
		return Report{Message: "No overdue invoices found."}
	}

	outcomes := make([]outcome, len(candidates))
	var g errgroup.Group
	for i, inv := range candidates {
		i, inv := i, inv
		g.Go(func() error {
			outcomes[i] = d.sendOverdue(ctx, inv, today)
			return nil
		})
	}
	g.Wait()

	var report Report
	for _, o := range outcomes {
		switch o {
		case outcomeSent:
			report.Sent++
		case outcomeSkipped:
			report.Skipped++
		case outcomeFailed:
			report.Failed++
		}
	}
	report.Message = manualReportMessage(report)
	return report
}

// sendOverdue runs the per-invoice cycle: resolve client, check the rule,
// render, send, stamp. A missing client or disabled rule is a skip, never a
// failure; only an attempted send that the collaborator rejects counts as
// one.
func (d *Dispatcher) sendOverdue(ctx context.Context, inv models.Invoice, today string) outcome {
	client, err := d.store.GetClient(inv.ClientID)
	if err != nil {
		slog.Error("client not found for invoice, skipping notification",
			"invoice", inv.InvoiceNumber, "client_id", inv.ClientID)
		return outcomeSkipped
	}

	rule := d.settings.Get().Overdue
	if !rule.Enabled {
		slog.Debug("overdue notifications disabled, skipping", "invoice", inv.InvoiceNumber)
		return outcomeSkipped
	}

	due := billing.AmountDue(inv, d.store.ListPayments(inv.ID))
	replacements := map[string]string{
		"client_name":    client.CompanyName,
		"client_email":   client.Email,
		"invoice_number": inv.InvoiceNumber,
		"renewal_date":   inv.RenewalDate,
		"amount":         due.StringFixed(2) + " " + inv.Currency.Symbol(),
		"company_name":   d.company,
	}

	msg := Message{
		To:      Render(rule.Recipients, replacements),
		Subject: Render(rule.Subject, replacements),
		Body:    Render(rule.Body, replacements),
	}
	if err := d.sender.Send(ctx, msg); err != nil {
		slog.Error("sending overdue notification failed",
			"invoice", inv.InvoiceNumber, "to", msg.To, "error", err)
		return outcomeFailed
	}

	if err := d.store.MarkInvoiceNotified(inv.ID, today); err != nil {
		// Invoice deleted mid-flight; the email is out, nothing to stamp.
		slog.Warn("could not stamp notified invoice", "invoice", inv.InvoiceNumber, "error", err)
	}
	slog.Info("overdue notification sent", "invoice", inv.InvoiceNumber, "to", msg.To)
	return outcomeSent
}

func (d *Dispatcher) today() string {
	return d.now().Format("2006-01-02")
}

func manualReportMessage(r Report) string {
	msg := ""
	if r.Sent > 0 {
		msg += fmt.Sprintf("%d reminder(s) sent successfully. ", r.Sent)
	}
	if r.Failed > 0 {
		msg += fmt.Sprintf("%d send(s) failed. ", r.Failed)
	}
	if r.Skipped > 0 {
		msg += fmt.Sprintf("%d invoice(s) skipped. ", r.Skipped)
	}
	if msg == "" {
		msg = "No overdue invoices found. "
	}
	return msg[:len(msg)-1]
}
