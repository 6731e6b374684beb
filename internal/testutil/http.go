package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/sharewallet/sharewallet/internal/app/system/auth"
	"github.com/sharewallet/sharewallet/internal/domain/models"
)

// NewRequest creates an HTTP request for testing.
func NewRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

// NewJSONRequest creates an HTTP request carrying a JSON body.
func NewJSONRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	buf, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request body: %v", err)
	}
	req := httptest.NewRequest(method, target, bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// WithChiURLParams injects chi URL parameters into the request context so
// handlers can be invoked directly without routing through a chi mux.
func WithChiURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// WithAuthCookies mints a fresh access/refresh token pair for the given user
// and attaches both cookies to the request.
func WithAuthCookies(t *testing.T, r *http.Request, mgr *auth.Manager, user models.User) *http.Request {
	t.Helper()

	access, err := mgr.MintAccessToken(user.Username, user.Email, user.Role)
	if err != nil {
		t.Fatalf("failed to mint access token: %v", err)
	}
	refresh, err := mgr.MintRefreshToken(user.Username, user.Email, user.Role)
	if err != nil {
		t.Fatalf("failed to mint refresh token: %v", err)
	}
	r.AddCookie(&http.Cookie{Name: auth.AccessCookie, Value: access})
	r.AddCookie(&http.Cookie{Name: auth.RefreshCookie, Value: refresh})
	return r
}

// DecodeData unmarshals the "data" field of a success envelope into dst.
func DecodeData(t *testing.T, body *bytes.Buffer, dst any) {
	t.Helper()
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to decode response envelope: %v", err)
	}
	if err := json.Unmarshal(envelope.Data, dst); err != nil {
		t.Fatalf("failed to decode response data: %v", err)
	}
}

// DecodeError returns the "error" field of a failure response body.
func DecodeError(t *testing.T, body *bytes.Buffer) string {
	t.Helper()
	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	return envelope.Error
}
