package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/parcel-service/internal/domain/parcel"
)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func validParcel() parcel.Parcel {
	return parcel.Parcel{
		ID:                1,
		SenderName:        "Alice",
		ReceiverName:      "Bob",
		ParcelDescription: "Books",
		ReceivedDate:      parcel.Date{Year: 2024, Month: time.January, Day: 10},
		Status:            parcel.StatusReceived,
	}
}

func validBody() map[string]any {
	return map[string]any{
		"senderName":        "Alice",
		"receiverName":      "Bob",
		"parcelDescription": "Books",
		"receivedDate":      "2024-01-10",
		"status":            "RECEIVED",
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
