package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/majjane/majjaneflow/models"
)

// GetNotificationSettings returns the two notification rules
// @Summary      Get notification settings
// @Description  Get the upcoming-renewal and overdue rules with their templates and trigger days.
// @Tags         notifications
// @Produce      json
// @Success      200  {object}  Response{data=models.NotificationSettings}
// @Router       /settings/notifications [get]
// @Security     BasicAuth
func GetNotificationSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Settings.Get())
}

// UpdateNotificationSettings replaces the notification rules wholesale
// @Summary      Update notification settings
// @Description  Save both rules at once. Day sets are re-sorted and deduplicated on save.
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        settings  body      models.NotificationSettings  true  "Notification settings"
// @Success      200       {object}  Response{data=models.NotificationSettings}
// @Failure      400       {object}  Response{error=string}
// @Router       /settings/notifications [put]
// @Security     BasicAuth
func UpdateNotificationSettings(w http.ResponseWriter, r *http.Request) {
	var settings models.NotificationSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := Settings.Save(settings); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, Settings.Get())
}

// ToggleNotificationDay flips one trigger day-offset on a rule
// @Summary      Toggle trigger day
// @Description  Remove the day if present on the rule, insert it otherwise. The day set stays sorted and unique.
// @Tags         notifications
// @Produce      json
// @Param        rule  path      string  true  "Rule name (upcoming_renewal or overdue)"
// @Param        day   path      int     true  "Day offset"
// @Success      200   {object}  Response{data=models.NotificationSettings}
// @Failure      400   {object}  Response{error=string}
// @Router       /settings/notifications/{rule}/days/{day} [post]
// @Security     BasicAuth
func ToggleNotificationDay(w http.ResponseWriter, r *http.Request) {
	day, err := strconv.Atoi(chi.URLParam(r, "day"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "day must be an integer")
		return
	}
	settings, err := Settings.ToggleDay(chi.URLParam(r, "rule"), day)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// SendOverdueReport triggers the manual overdue notification pass
// @Summary      Send overdue report
// @Description  Dispatch reminders for every overdue invoice concurrently and report per-invoice outcomes.
// @Tags         notifications
// @Produce      json
// @Success      200  {object}  Response{data=notify.Report}
// @Router       /notifications/overdue-report [post]
// @Security     BasicAuth
func SendOverdueReport(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Dispatcher.RunManualOverdueReport(r.Context()))
}
