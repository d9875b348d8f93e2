package models

import "sort"

// NotificationRule configures one class of email reminder. Templates use
// literal [token] placeholders; Days holds trigger day-offsets and must stay
// sorted ascending and deduplicated at all times.
type NotificationRule struct {
	Enabled    bool   `json:"enabled"`
	Days       []int  `json:"days"`
	Subject    string `json:"subject"`
	Body       string `json:"body"`
	Recipients string `json:"recipients"`
}

// ToggleDay removes day if present, otherwise inserts it keeping the set
// sorted and unique.
func (r *NotificationRule) ToggleDay(day int) {
	for i, d := range r.Days {
		if d == day {
			r.Days = append(r.Days[:i], r.Days[i+1:]...)
			return
		}
	}
	r.Days = append(r.Days, day)
	sort.Ints(r.Days)
}

// Normalize re-establishes the sorted/unique invariant on externally supplied
// day sets (e.g. a settings document sent by a client).
func (r *NotificationRule) Normalize() {
	sort.Ints(r.Days)
	out := r.Days[:0]
	for i, d := range r.Days {
		if i == 0 || d != r.Days[i-1] {
			out = append(out, d)
		}
	}
	r.Days = out
}

// NotificationSettings holds the two named rules. Mutated only through an
// explicit settings save; a dispatch pass reads a snapshot.
type NotificationSettings struct {
	UpcomingRenewal NotificationRule `json:"upcoming_renewal"`
	Overdue         NotificationRule `json:"overdue"`
}

// DefaultNotificationSettings returns the rules shipped with a fresh install.
func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		UpcomingRenewal: NotificationRule{
			Enabled:    true,
			Days:       []int{7, 15, 30},
			Subject:    "Rappel : Votre facture [invoice_number] arrive à échéance",
			Body:       "Bonjour [client_name],\n\nCeci est un rappel que votre facture n° [invoice_number] d'un montant de [amount] arrivera à échéance le [renewal_date].\n\nCordialement,\nL'équipe de [company_name]",
			Recipients: "[client_email]",
		},
		Overdue: NotificationRule{
			Enabled:    true,
			Days:       []int{1, 7},
			Subject:    "Alerte : Votre facture [invoice_number] est en retard",
			Body:       "Bonjour [client_name],\n\nNous vous informons que votre facture n° [invoice_number] d'un montant de [amount], qui était due le [renewal_date], est maintenant en retard.\n\nVeuillez procéder au paiement dès que possible.\n\nCordialement,\nL'équipe de [company_name]",
			Recipients: "[client_email], relance@agence.com",
		},
	}
}
