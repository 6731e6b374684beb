package accounts_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/sharewallet/sharewallet/internal/app/features/accounts"
	"github.com/sharewallet/sharewallet/internal/app/system/auth"
	"github.com/sharewallet/sharewallet/internal/domain/models"
	"github.com/sharewallet/sharewallet/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
)

func newTestHandler(t *testing.T) (*accounts.Handler, *mongo.Database, *auth.Manager) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	mgr, err := auth.NewManager("0123456789abcdef0123456789abcdef", time.Hour, 7*24*time.Hour, "", false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	return accounts.NewHandler(db, mgr, zap.NewNop()), db, mgr
}

func TestHandleRegister(t *testing.T) {
	h, _, _ := newTestHandler(t)

	req := testutil.NewJSONRequest(t, "POST", "/api/register", map[string]string{
		"username": "mario",
		"email":    "mario@example.com",
		"password": "secure-password",
	})
	rec := httptest.NewRecorder()
	h.HandleRegister(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
	var data map[string]string
	testutil.DecodeData(t, rec.Body, &data)
	if data["message"] == "" {
		t.Error("expected a confirmation message")
	}
}

func TestHandleRegister_DuplicateEmail(t *testing.T) {
	h, db, _ := newTestHandler(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateUser(ctx, "mario", "mario@example.com", models.RoleRegular)

	req := testutil.NewJSONRequest(t, "POST", "/api/register", map[string]string{
		"username": "othermario",
		"email":    "mario@example.com",
		"password": "secure-password",
	})
	rec := httptest.NewRecorder()
	h.HandleRegister(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if msg := testutil.DecodeError(t, rec.Body); msg != "you are already registered" {
		t.Errorf("error message: got %q", msg)
	}
}

func TestHandleRegister_InvalidEmail(t *testing.T) {
	h, _, _ := newTestHandler(t)

	req := testutil.NewJSONRequest(t, "POST", "/api/register", map[string]string{
		"username": "mario",
		"email":    "not-an-email",
		"password": "secure-password",
	})
	rec := httptest.NewRecorder()
	h.HandleRegister(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestHandleRegister_ShortPassword(t *testing.T) {
	h, _, _ := newTestHandler(t)

	req := testutil.NewJSONRequest(t, "POST", "/api/register", map[string]string{
		"username": "mario",
		"email":    "mario@example.com",
		"password": "short",
	})
	rec := httptest.NewRecorder()
	h.HandleRegister(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestHandleRegisterAdmin_RequiresAdmin(t *testing.T) {
	h, db, mgr := newTestHandler(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	regular := fixtures.CreateUser(ctx, "mario", "mario@example.com", models.RoleRegular)

	req := testutil.NewJSONRequest(t, "POST", "/api/admin", map[string]string{
		"username": "boss",
		"email":    "boss@example.com",
		"password": "secure-password",
	})
	req = testutil.WithAuthCookies(t, req, mgr, regular)
	rec := httptest.NewRecorder()
	h.HandleRegisterAdmin(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestHandleRegisterAdmin(t *testing.T) {
	h, db, mgr := newTestHandler(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	admin := fixtures.CreateUser(ctx, "boss", "boss@example.com", models.RoleAdmin)

	req := testutil.NewJSONRequest(t, "POST", "/api/admin", map[string]string{
		"username": "boss2",
		"email":    "boss2@example.com",
		"password": "secure-password",
	})
	req = testutil.WithAuthCookies(t, req, mgr, admin)
	rec := httptest.NewRecorder()
	h.HandleRegisterAdmin(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
}

func TestHandleLogin(t *testing.T) {
	h, db, _ := newTestHandler(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// fixture password convention: "password-" + username
	fixtures.CreateUser(ctx, "mario", "mario@example.com", models.RoleRegular)

	req := testutil.NewJSONRequest(t, "POST", "/api/login", map[string]string{
		"email":    "mario@example.com",
		"password": "password-mario",
	})
	rec := httptest.NewRecorder()
	h.HandleLogin(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	var data struct {
		Username string `json:"username"`
		Role     string `json:"role"`
	}
	testutil.DecodeData(t, rec.Body, &data)
	if data.Username != "mario" {
		t.Errorf("username: got %q, want %q", data.Username, "mario")
	}

	var gotAccess, gotRefresh bool
	for _, c := range rec.Result().Cookies() {
		switch c.Name {
		case auth.AccessCookie:
			gotAccess = c.Value != ""
		case auth.RefreshCookie:
			gotRefresh = c.Value != ""
		}
	}
	if !gotAccess || !gotRefresh {
		t.Errorf("expected both auth cookies to be set, got access=%v refresh=%v", gotAccess, gotRefresh)
	}
}

func TestHandleLogin_WrongPassword(t *testing.T) {
	h, db, _ := newTestHandler(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateUser(ctx, "mario", "mario@example.com", models.RoleRegular)

	req := testutil.NewJSONRequest(t, "POST", "/api/login", map[string]string{
		"email":    "mario@example.com",
		"password": "not-the-password",
	})
	rec := httptest.NewRecorder()
	h.HandleLogin(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if msg := testutil.DecodeError(t, rec.Body); msg != "wrong credentials" {
		t.Errorf("error message: got %q", msg)
	}
}

func TestHandleLogin_Unregistered(t *testing.T) {
	h, _, _ := newTestHandler(t)

	req := testutil.NewJSONRequest(t, "POST", "/api/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "whatever-password",
	})
	rec := httptest.NewRecorder()
	h.HandleLogin(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if msg := testutil.DecodeError(t, rec.Body); msg != "please you need to register" {
		t.Errorf("error message: got %q", msg)
	}
}

func TestHandleLogout(t *testing.T) {
	h, db, _ := newTestHandler(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateUser(ctx, "mario", "mario@example.com", models.RoleRegular)

	// Log in first so a refresh token is stored.
	loginReq := testutil.NewJSONRequest(t, "POST", "/api/login", map[string]string{
		"email":    "mario@example.com",
		"password": "password-mario",
	})
	loginRec := httptest.NewRecorder()
	h.HandleLogin(loginRec, loginReq)
	if loginRec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", loginRec.Code, loginRec.Body.String())
	}

	logoutReq := httptest.NewRequest("GET", "/api/logout", nil)
	for _, c := range loginRec.Result().Cookies() {
		logoutReq.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.HandleLogout(rec, logoutReq)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
}

func TestHandleLogout_NoCookie(t *testing.T) {
	h, _, _ := newTestHandler(t)

	req := httptest.NewRequest("GET", "/api/logout", nil)
	rec := httptest.NewRecorder()
	h.HandleLogout(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if msg := testutil.DecodeError(t, rec.Body); msg != "no refresh token found" {
		t.Errorf("error message: got %q", msg)
	}
}
