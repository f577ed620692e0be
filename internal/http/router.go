// Package http wires the service layer to the chi router.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	authsvc "github.com/nirbeaver/property-management/internal/auth"
	authhttp "github.com/nirbeaver/property-management/internal/http/auth"
	importhttp "github.com/nirbeaver/property-management/internal/http/importcsv"
	leasehttp "github.com/nirbeaver/property-management/internal/http/lease"
	notificationhttp "github.com/nirbeaver/property-management/internal/http/notification"
	propertyhttp "github.com/nirbeaver/property-management/internal/http/property"
	reporthttp "github.com/nirbeaver/property-management/internal/http/report"
	settingshttp "github.com/nirbeaver/property-management/internal/http/settings"
	tenanthttp "github.com/nirbeaver/property-management/internal/http/tenant"
	transactionhttp "github.com/nirbeaver/property-management/internal/http/transaction"
)

// Handlers groups the per-resource handlers mounted by New.
type Handlers struct {
	Auth          *authhttp.Handler
	Properties    *propertyhttp.Handler
	Tenants       *tenanthttp.Handler
	Transactions  *transactionhttp.Handler
	Leases        *leasehttp.Handler
	Reports       *reporthttp.Handler
	Notifications *notificationhttp.Handler
	Import        *importhttp.Handler
	Settings      *settingshttp.Handler
}

// New builds the router. Everything under /api/v1 except the auth endpoints
// requires a session; /files serves uploaded documents from storageDir.
func New(authService *authsvc.Service, h Handlers, storageDir string) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", h.Auth.Routes)

		r.Group(func(r chi.Router) {
			r.Use(Authenticator(authService))

			r.Get("/me", h.Auth.Me)

			r.Route("/properties", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				h.Properties.Routes(r)
			})

			r.Route("/tenants", h.Tenants.Routes)

			r.Route("/transactions", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				h.Transactions.Routes(r)
			})

			r.Route("/leases", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				h.Leases.Routes(r)
			})

			r.Route("/reports", h.Reports.Routes)
			r.Route("/notifications", h.Notifications.Routes)
			r.Route("/import", h.Import.Routes)

			r.Route("/settings", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				h.Settings.Routes(r)
			})
		})
	})

	router.Handle("/files/*", http.StripPrefix("/files/", http.FileServer(http.Dir(storageDir))))

	return router
}
