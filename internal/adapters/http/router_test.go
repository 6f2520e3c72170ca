package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/jsamuelsen11/parcel-service/internal/adapters/http"
	"github.com/jsamuelsen11/parcel-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/parcel-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/parcel-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/parcel-service/internal/adapters/storage/memory"
	"github.com/jsamuelsen11/parcel-service/internal/app"
	"github.com/jsamuelsen11/parcel-service/internal/domain/parcel"
	"github.com/jsamuelsen11/parcel-service/internal/platform/config"
	"github.com/jsamuelsen11/parcel-service/internal/platform/health"
	"github.com/jsamuelsen11/parcel-service/mocks"
)

func newTestRouter(t *testing.T) (http.Handler, *mocks.MockParcelService) {
	t.Helper()
	svc := mocks.NewMockParcelService(t)
	registry := mocks.NewMockHealthRegistry(t)

	ph := handlers.NewParcelHandler(svc)
	hh := handlers.NewHealthHandler(registry)

	router := adapthttp.NewRouter(ph, hh)
	return router, svc
}

// newMemoryRouter wires the real service over the in-memory store, with CORS
// applied the way the server applies it.
func newMemoryRouter(t *testing.T) http.Handler {
	t.Helper()
	repo := memory.New()
	svc := app.NewParcelService(repo, nil)

	registry := health.New()
	registry.Register(repo)

	cors := middleware.CORS(config.CORSConfig{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         time.Minute,
	})

	return adapthttp.NewRouter(handlers.NewParcelHandler(svc), handlers.NewHealthHandler(registry), cors)
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	expectedRoutes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health/live"},
		{http.MethodGet, "/health/ready"},
		{http.MethodPost, "/api/parcels/"},
		{http.MethodGet, "/api/parcels/"},
		{http.MethodGet, "/api/parcels/{id}"},
		{http.MethodPut, "/api/parcels/{id}"},
		{http.MethodDelete, "/api/parcels/{id}"},
	}

	chiRouter, ok := router.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}

	for _, expected := range expectedRoutes {
		key := expected.method + " " + expected.path
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockParcelService(t)
	registry := mocks.NewMockHealthRegistry(t)

	ph := handlers.NewParcelHandler(svc)
	hh := handlers.NewHealthHandler(registry)

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	router := adapthttp.NewRouter(ph, hh, testMW)

	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	router.ServeHTTP(rec, req)

	if !called {
		t.Error("middleware was not called")
	}
}

func TestRouter_IntegrationListParcels(t *testing.T) {
	t.Parallel()

	router, svc := newTestRouter(t)

	svc.EXPECT().ListParcels(mock.Anything).Return([]parcel.Parcel{}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/parcels", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("body = %s, want []", body)
	}
}

func TestRouter_NotFoundReturns404(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/parcels/1", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

func serve(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, http.NoBody)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Origin", "http://client.example")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRouter_ParcelLifecycle(t *testing.T) {
	t.Parallel()

	router := newMemoryRouter(t)

	const created = `{"senderName":"Alice","receiverName":"Bob","parcelDescription":"Books",` +
		`"receivedDate":"2024-01-10","status":"RECEIVED","contactNumber":null}`

	rec := serve(t, router, http.MethodPost, "/api/parcels", created)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want %d; body: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, "*")
	}

	var createdResp dto.ParcelResponse
	if err := json.NewDecoder(rec.Body).Decode(&createdResp); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if createdResp.ID == 0 {
		t.Fatal("created parcel has no id")
	}
	if createdResp.SenderName != "Alice" || createdResp.ReceiverName != "Bob" ||
		createdResp.ParcelDescription != "Books" || createdResp.ReceivedDate != "2024-01-10" ||
		createdResp.Status != "RECEIVED" || createdResp.ContactNumber != nil {
		t.Errorf("created = %+v, fields not echoed", createdResp)
	}

	path := "/api/parcels/" + strconv.FormatInt(createdResp.ID, 10)

	rec = serve(t, router, http.MethodGet, path, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d, want %d", rec.Code, http.StatusOK)
	}
	var fetched dto.ParcelResponse
	if err := json.NewDecoder(rec.Body).Decode(&fetched); err != nil {
		t.Fatalf("decode get response: %v", err)
	}
	if fetched != createdResp {
		t.Errorf("get = %+v, want %+v", fetched, createdResp)
	}

	const updated = `{"senderName":"Alice","receiverName":"Bob","parcelDescription":"Books",` +
		`"receivedDate":"2024-01-10","status":"DELIVERED","contactNumber":null}`

	rec = serve(t, router, http.MethodPut, path, updated)
	if rec.Code != http.StatusOK {
		t.Fatalf("put status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	var updatedResp dto.ParcelResponse
	if err := json.NewDecoder(rec.Body).Decode(&updatedResp); err != nil {
		t.Fatalf("decode update response: %v", err)
	}
	if updatedResp.Status != "DELIVERED" {
		t.Errorf("status = %q, want %q", updatedResp.Status, "DELIVERED")
	}
	if updatedResp.ID != createdResp.ID || updatedResp.ReceiverName != "Bob" ||
		updatedResp.ReceivedDate != "2024-01-10" {
		t.Errorf("updated = %+v, other fields changed", updatedResp)
	}

	rec = serve(t, router, http.MethodGet, "/api/parcels", "")
	var list []dto.ParcelResponse
	if err := json.NewDecoder(rec.Body).Decode(&list); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(list) != 1 || list[0].Status != "DELIVERED" {
		t.Errorf("list = %+v, want the one updated parcel", list)
	}

	rec = serve(t, router, http.MethodDelete, path, "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d, want %d", rec.Code, http.StatusNoContent)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("delete body = %q, want empty", rec.Body.String())
	}

	rec = serve(t, router, http.MethodGet, path, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want application/problem+json", ct)
	}

	for _, method := range []string{http.MethodDelete, http.MethodPut} {
		rec = serve(t, router, method, path, updated)
		if rec.Code != http.StatusNotFound {
			t.Errorf("%s after delete status = %d, want %d", method, rec.Code, http.StatusNotFound)
		}
	}
}

func TestRouter_CreateRejectsMissingFields(t *testing.T) {
	t.Parallel()

	router := newMemoryRouter(t)

	rec := serve(t, router, http.MethodPost, "/api/parcels", `{"senderName":"Alice"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}

	rec = serve(t, router, http.MethodGet, "/api/parcels", "")
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("list after rejected create = %s, want []", body)
	}
}

func TestRouter_ReadinessWithMemoryStore(t *testing.T) {
	t.Parallel()

	router := newMemoryRouter(t)

	rec := serve(t, router, http.MethodGet, "/health/ready", "")
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
}
