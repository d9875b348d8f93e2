package main

//go:generate swag init

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/majjane/majjaneflow/docs"
	"github.com/majjane/majjaneflow/handlers"
	"github.com/majjane/majjaneflow/notify"
	"github.com/majjane/majjaneflow/store"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title           MajjaneFlow API
// @version         1.0.0
// @description     Agency back office: clients, services, invoices, payments, and overdue email reminders.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.basic  BasicAuth

func main() {
	// Optional .env for local development
	if err := godotenv.Load(); err == nil {
		slog.Debug("loaded environment from .env")
	}

	// Configure structured logging
	level := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	// Notification settings: read at start, written back wholesale on save
	settingsPath := os.Getenv("SETTINGS_PATH")
	if settingsPath == "" {
		settingsPath = "./data/notification_settings.json"
	}
	settings, err := store.OpenSettings(settingsPath)
	if err != nil {
		slog.Error("failed to load notification settings", "error", err)
		os.Exit(1)
	}

	company := os.Getenv("COMPANY_NAME")
	if company == "" {
		company = "MajjaneFlow"
	}

	st := store.New()
	dispatcher := notify.NewDispatcher(st, settings, notify.LogSender{}, company)

	// Share collaborators with the handlers
	handlers.Store = st
	handlers.Settings = settings
	handlers.Dispatcher = dispatcher

	// One automatic pass per process start; the last-notification marker
	// keeps it idempotent across restarts of the same dataset.
	dispatcher.RunAutomatic(context.Background())

	// Router setup
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// API routes with basic auth
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(handlers.BasicAuth)

		// Clients
		r.Get("/clients", handlers.ListClients)
		r.Post("/clients", handlers.CreateClient)
		r.Get("/clients/{id}", handlers.GetClient)
		r.Put("/clients/{id}", handlers.UpdateClient)
		r.Delete("/clients/{id}", handlers.DeleteClient)

		// Catalog services
		r.Get("/services", handlers.ListServices)
		r.Post("/services", handlers.CreateService)
		r.Get("/services/{id}", handlers.GetService)
		r.Put("/services/{id}", handlers.UpdateService)
		r.Delete("/services/{id}", handlers.DeleteService)

		// Invoices
		r.Get("/invoices", handlers.ListInvoices)
		r.Get("/invoices/summary", handlers.GetInvoiceSummary)
		r.Post("/invoices", handlers.CreateInvoice)
		r.Get("/invoices/{id}", handlers.GetInvoice)
		r.Put("/invoices/{id}", handlers.UpdateInvoice)
		r.Delete("/invoices/{id}", handlers.DeleteInvoice)

		// Payments
		r.Get("/payments", handlers.ListPayments)
		r.Post("/payments", handlers.CreatePayment)
		r.Get("/payments/{id}", handlers.GetPayment)
		r.Put("/payments/{id}", handlers.UpdatePayment)
		r.Delete("/payments/{id}", handlers.DeletePayment)

		// Notification settings and dispatch
		r.Get("/settings/notifications", handlers.GetNotificationSettings)
		r.Put("/settings/notifications", handlers.UpdateNotificationSettings)
		r.Post("/settings/notifications/{rule}/days/{day}", handlers.ToggleNotificationDay)
		r.Post("/notifications/overdue-report", handlers.SendOverdueReport)

		// Dashboard
		r.Get("/dashboard", handlers.GetDashboard)
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := fmt.Sprintf(":%s", port)
	slog.Info("server starting", "address", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
