package httpjson_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sharewallet/sharewallet/internal/app/system/httpjson"
)

func TestData_WithRefreshedMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	httpjson.Data(rec, http.StatusOK, map[string]string{"name": "Family"}, "access token refreshed")

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q, want application/json", ct)
	}

	var body struct {
		Data                  map[string]string `json:"data"`
		RefreshedTokenMessage string            `json:"refreshedTokenMessage"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if body.Data["name"] != "Family" {
		t.Errorf("data.name: got %q, want %q", body.Data["name"], "Family")
	}
	if body.RefreshedTokenMessage != "access token refreshed" {
		t.Errorf("refreshedTokenMessage: got %q", body.RefreshedTokenMessage)
	}
}

func TestData_OmitsEmptyRefreshedMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	httpjson.Data(rec, http.StatusOK, []string{}, "")

	if strings.Contains(rec.Body.String(), "refreshedTokenMessage") {
		t.Errorf("expected refreshedTokenMessage omitted, got %s", rec.Body.String())
	}
}

func TestError(t *testing.T) {
	rec := httptest.NewRecorder()
	httpjson.Error(rec, http.StatusBadRequest, "group not found")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if body.Error != "group not found" {
		t.Errorf("error: got %q, want %q", body.Error, "group not found")
	}
}

func TestDecode_MalformedBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader("{not json"))
	var dst struct{ Name string }
	if err := httpjson.Decode(req, &dst); err == nil {
		t.Error("expected error for malformed JSON body")
	}
}
