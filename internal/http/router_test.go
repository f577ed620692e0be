package http_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nirbeaver/property-management/internal/auth"
	authstore "github.com/nirbeaver/property-management/internal/auth/store"
	"github.com/nirbeaver/property-management/internal/bus"
	"github.com/nirbeaver/property-management/internal/document"
	propmanhttp "github.com/nirbeaver/property-management/internal/http"
	authhandler "github.com/nirbeaver/property-management/internal/http/auth"
	importhandler "github.com/nirbeaver/property-management/internal/http/importcsv"
	leasehandler "github.com/nirbeaver/property-management/internal/http/lease"
	notificationhandler "github.com/nirbeaver/property-management/internal/http/notification"
	propertyhandler "github.com/nirbeaver/property-management/internal/http/property"
	reporthandler "github.com/nirbeaver/property-management/internal/http/report"
	settingshandler "github.com/nirbeaver/property-management/internal/http/settings"
	tenanthandler "github.com/nirbeaver/property-management/internal/http/tenant"
	transactionhandler "github.com/nirbeaver/property-management/internal/http/transaction"
	"github.com/nirbeaver/property-management/internal/lease"
	leasestore "github.com/nirbeaver/property-management/internal/lease/store"
	"github.com/nirbeaver/property-management/internal/notify"
	notifystore "github.com/nirbeaver/property-management/internal/notify/store"
	"github.com/nirbeaver/property-management/internal/property"
	propertystore "github.com/nirbeaver/property-management/internal/property/store"
	"github.com/nirbeaver/property-management/internal/report"
	"github.com/nirbeaver/property-management/internal/settings"
	settingsstore "github.com/nirbeaver/property-management/internal/settings/store"
	"github.com/nirbeaver/property-management/internal/store"
	"github.com/nirbeaver/property-management/internal/tenant"
	tenantstore "github.com/nirbeaver/property-management/internal/tenant/store"
	"github.com/nirbeaver/property-management/internal/transaction"
	transactionstore "github.com/nirbeaver/property-management/internal/transaction/store"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	db, err := store.New(t.TempDir())
	require.NoError(t, err)

	documents, err := document.NewService(t.TempDir(), "http://localhost/files")
	require.NoError(t, err)

	events := bus.New()

	authService := auth.NewService(authstore.New(db), "test-secret", time.Hour)
	propertyService := property.NewService(propertystore.New(db), events)
	tenantService := tenant.NewService(tenantstore.New(db))
	transactionService := transaction.NewService(transactionstore.New(db), events)
	leaseService := lease.NewService(leasestore.New(db))
	reportService := report.NewService(propertyService, transactionService)
	notificationService := notify.NewService(notifystore.New(db), leaseService, tenantService, events)
	settingsService := settings.NewService(settingsstore.New(db))

	handlers := propmanhttp.Handlers{
		Auth:          authhandler.NewHandler(authService),
		Properties:    propertyhandler.NewHandler(propertyService),
		Tenants:       tenanthandler.NewHandler(tenantService, documents),
		Transactions:  transactionhandler.NewHandler(transactionService),
		Leases:        leasehandler.NewHandler(leaseService),
		Reports:       reporthandler.NewHandler(reportService),
		Notifications: notificationhandler.NewHandler(notificationService),
		Import:        importhandler.NewHandler(transactionService, propertyService),
		Settings:      settingshandler.NewHandler(settingsService),
	}

	srv := httptest.NewServer(propmanhttp.New(authService, handlers, documents.Dir()))
	t.Cleanup(srv.Close)

	return srv
}

func signUp(t *testing.T, srv *httptest.Server) string {
	t.Helper()

	body := `{"email":"test@example.com","name":"Test","password":"long enough"}`

	resp, err := http.Post(srv.URL+"/api/v1/auth/signup", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotEmpty(t, out.Token)

	return out.Token
}

func doAuthed(t *testing.T, srv *httptest.Server, token, method, path string, body []byte) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, srv.URL+path, bytes.NewReader(body))
	require.NoError(t, err)

	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	return resp
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	srv := newServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/properties")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestPropertiesRoundTrip(t *testing.T) {
	srv := newServer(t)
	token := signUp(t, srv)

	resp := doAuthed(t, srv, token, http.MethodGet, "/api/v1/properties", nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var properties []property.Property
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&properties))
	assert.NotEmpty(t, properties, "seed data expected")

	created := doAuthed(t, srv, token, http.MethodPost, "/api/v1/properties",
		[]byte(`{"name":"Hilltop","address":"1 High St","type":"House","monthlyRent":180000,"units":1}`))
	defer created.Body.Close()

	assert.Equal(t, http.StatusCreated, created.StatusCode)
}

func TestSessionEndpoint(t *testing.T) {
	srv := newServer(t)
	token := signUp(t, srv)

	resp := doAuthed(t, srv, token, http.MethodGet, "/api/v1/me", nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var session auth.Session
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&session))
	assert.Equal(t, "test@example.com", session.Email)
}

func TestReportCSVDownload(t *testing.T) {
	srv := newServer(t)
	token := signUp(t, srv)

	resp := doAuthed(t, srv, token, http.MethodGet, "/api/v1/reports/csv?filter=All+Time", nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "financial-report-")
}

func TestTenantDocumentUpload(t *testing.T) {
	srv := newServer(t)
	token := signUp(t, srv)

	var form bytes.Buffer
	mw := multipart.NewWriter(&form)

	partHeader := textproto.MIMEHeader{}
	partHeader.Set("Content-Disposition", `form-data; name="file"; filename="lease.pdf"`)
	partHeader.Set("Content-Type", "application/pdf")

	part, err := mw.CreatePart(partHeader)
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4 minimal"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	url := srv.URL + "/api/v1/tenants/" + store.SeedTenantJohn.String() + "/documents"
	req, err := http.NewRequest(http.MethodPost, url, &form)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var doc tenant.Document
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
	assert.Equal(t, "lease.pdf", doc.Name)
	assert.Equal(t, "application/pdf", doc.Type)
	assert.Contains(t, doc.URL, "/files/")

	listResp := doAuthed(t, srv, token, http.MethodGet,
		"/api/v1/tenants/"+store.SeedTenantJohn.String()+"/documents", nil)
	defer listResp.Body.Close()

	require.Equal(t, http.StatusOK, listResp.StatusCode)

	var docs []tenant.Document
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&docs))
	require.NotEmpty(t, docs)
	assert.Equal(t, doc.ID, docs[0].ID)
}

func TestTenantNotesRoundTrip(t *testing.T) {
	srv := newServer(t)
	token := signUp(t, srv)

	base := "/api/v1/tenants/" + store.SeedTenantJohn.String() + "/notes"

	created := doAuthed(t, srv, token, http.MethodPost, base,
		[]byte(`{"content":"Paid rent early"}`))
	defer created.Body.Close()

	require.Equal(t, http.StatusCreated, created.StatusCode)

	var note tenant.Note
	require.NoError(t, json.NewDecoder(created.Body).Decode(&note))
	assert.Equal(t, "Paid rent early", note.Content)

	listResp := doAuthed(t, srv, token, http.MethodGet, base, nil)
	defer listResp.Body.Close()

	require.Equal(t, http.StatusOK, listResp.StatusCode)

	var notes []tenant.Note
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&notes))
	assert.NotEmpty(t, notes)
}

func TestSettingsRoundTrip(t *testing.T) {
	srv := newServer(t)
	token := signUp(t, srv)

	resp := doAuthed(t, srv, token, http.MethodGet, "/api/v1/settings/app", nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var app settings.AppSettings
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&app))
	assert.Equal(t, "USD", app.Currency)

	updated := doAuthed(t, srv, token, http.MethodPut, "/api/v1/settings/app",
		[]byte(`{"currency":"EUR","dateFormat":"DD/MM/YYYY","theme":"dark"}`))
	updated.Body.Close()
	require.Equal(t, http.StatusOK, updated.StatusCode)

	again := doAuthed(t, srv, token, http.MethodGet, "/api/v1/settings/app", nil)
	defer again.Body.Close()

	require.NoError(t, json.NewDecoder(again.Body).Decode(&app))
	assert.Equal(t, "EUR", app.Currency)
}

func TestArchivePreservesTransactions(t *testing.T) {
	srv := newServer(t)
	token := signUp(t, srv)

	resp := doAuthed(t, srv, token, http.MethodPost,
		"/api/v1/properties/"+store.SeedPropertyTiara.String()+"/archive", nil)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	txResp := doAuthed(t, srv, token, http.MethodGet,
		"/api/v1/transactions?propertyId="+store.SeedPropertyTiara.String(), nil)
	defer txResp.Body.Close()

	require.Equal(t, http.StatusOK, txResp.StatusCode)

	var txs []transaction.Transaction
	require.NoError(t, json.NewDecoder(txResp.Body).Decode(&txs))
	assert.NotEmpty(t, txs, "archived property keeps its transactions")
}
