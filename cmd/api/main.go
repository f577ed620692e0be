package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/nirbeaver/property-management/internal/auth"
	authStore "github.com/nirbeaver/property-management/internal/auth/store"
	"github.com/nirbeaver/property-management/internal/bus"
	"github.com/nirbeaver/property-management/internal/config"
	"github.com/nirbeaver/property-management/internal/document"
	propmanHttp "github.com/nirbeaver/property-management/internal/http"
	authHandler "github.com/nirbeaver/property-management/internal/http/auth"
	importHandler "github.com/nirbeaver/property-management/internal/http/importcsv"
	leaseHandler "github.com/nirbeaver/property-management/internal/http/lease"
	notificationHandler "github.com/nirbeaver/property-management/internal/http/notification"
	propertyHandler "github.com/nirbeaver/property-management/internal/http/property"
	reportHandler "github.com/nirbeaver/property-management/internal/http/report"
	settingsHandler "github.com/nirbeaver/property-management/internal/http/settings"
	tenantHandler "github.com/nirbeaver/property-management/internal/http/tenant"
	transactionHandler "github.com/nirbeaver/property-management/internal/http/transaction"
	"github.com/nirbeaver/property-management/internal/lease"
	leaseStore "github.com/nirbeaver/property-management/internal/lease/store"
	"github.com/nirbeaver/property-management/internal/notify"
	notifyStore "github.com/nirbeaver/property-management/internal/notify/store"
	"github.com/nirbeaver/property-management/internal/property"
	propertyStore "github.com/nirbeaver/property-management/internal/property/store"
	"github.com/nirbeaver/property-management/internal/report"
	"github.com/nirbeaver/property-management/internal/settings"
	settingsStore "github.com/nirbeaver/property-management/internal/settings/store"
	"github.com/nirbeaver/property-management/internal/store"
	"github.com/nirbeaver/property-management/internal/tenant"
	tenantStore "github.com/nirbeaver/property-management/internal/tenant/store"
	"github.com/nirbeaver/property-management/internal/transaction"
	transactionStore "github.com/nirbeaver/property-management/internal/transaction/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := store.New(cfg.Data.Dir)
	if err != nil {
		slog.Error("failed to open record store", "error", err)
		os.Exit(1)
	}

	documents, err := document.NewService(cfg.Storage.Dir, cfg.Storage.BaseURL)
	if err != nil {
		slog.Error("failed to open document storage", "error", err)
		os.Exit(1)
	}

	events := bus.New()

	var (
		authService         = auth.NewService(authStore.New(db), cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
		propertyService     = property.NewService(propertyStore.New(db), events)
		tenantService       = tenant.NewService(tenantStore.New(db))
		transactionService  = transaction.NewService(transactionStore.New(db), events)
		leaseService        = lease.NewService(leaseStore.New(db))
		reportService       = report.NewService(propertyService, transactionService)
		notificationService = notify.NewService(notifyStore.New(db), leaseService, tenantService, events)
		settingsService     = settings.NewService(settingsStore.New(db))
	)

	// The expiry check is idempotent; run it on every boot.
	if err := notificationService.CheckLeaseExpirations(context.Background(), time.Now()); err != nil {
		slog.Warn("lease expiry check failed", "error", err)
	}

	handlers := propmanHttp.Handlers{
		Auth:          authHandler.NewHandler(authService),
		Properties:    propertyHandler.NewHandler(propertyService),
		Tenants:       tenantHandler.NewHandler(tenantService, documents),
		Transactions:  transactionHandler.NewHandler(transactionService),
		Leases:        leaseHandler.NewHandler(leaseService),
		Reports:       reportHandler.NewHandler(reportService),
		Notifications: notificationHandler.NewHandler(notificationService),
		Import:        importHandler.NewHandler(transactionService, propertyService),
		Settings:      settingsHandler.NewHandler(settingsService),
	}

	router := propmanHttp.New(authService, handlers, documents.Dir())

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "app", cfg.App.Name, "addr", server.Addr)

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
