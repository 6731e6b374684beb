// internal/app/features/accounts/register.go
package accounts

import (
	"errors"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	userstore "github.com/sharewallet/sharewallet/internal/app/store/users"
	"github.com/sharewallet/sharewallet/internal/app/system/auth"
	"github.com/sharewallet/sharewallet/internal/app/system/htmlsanitize"
	"github.com/sharewallet/sharewallet/internal/app/system/httpjson"
	"github.com/sharewallet/sharewallet/internal/app/system/inputval"
	"github.com/sharewallet/sharewallet/internal/domain/models"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleRegister handles POST /api/register: creates a regular user.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	h.register(w, r, models.RoleRegular, "")
}

// HandleRegisterAdmin handles POST /api/admin: creates an admin user.
// Only an existing admin may mint another one; the first admin is seeded
// from configuration at startup.
func (h *Handler) HandleRegisterAdmin(w http.ResponseWriter, r *http.Request) {
	decision := h.Auth.Verify(w, r, auth.RequireAdmin())
	if !decision.Authorized {
		httpjson.Error(w, http.StatusUnauthorized, decision.Cause)
		return
	}
	h.register(w, r, models.RoleAdmin, decision.RefreshedTokenMessage)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request, role, refreshedMsg string) {
	var req registerRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	username := htmlsanitize.PlainText(req.Username)
	if username == "" || req.Email == "" || req.Password == "" {
		httpjson.Error(w, http.StatusBadRequest, "username, email and password are required")
		return
	}
	if !inputval.IsValidEmail(req.Email) {
		httpjson.Error(w, http.StatusBadRequest, "email is not valid")
		return
	}
	if !inputval.IsValidPassword(req.Password) {
		httpjson.Error(w, http.StatusBadRequest, "password must be at least 8 characters")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httpjson.Internal(w, h.Log, "register: hashing password", err)
		return
	}

	users := userstore.New(h.DB)
	created, err := users.Create(r.Context(), models.User{
		Username: username,
		Email:    req.Email,
		Password: string(hash),
		Role:     role,
	})
	if err != nil {
		if errors.Is(err, userstore.ErrDuplicateUser) {
			httpjson.Error(w, http.StatusBadRequest, "you are already registered")
			return
		}
		httpjson.Internal(w, h.Log, "register: creating user", err)
		return
	}

	httpjson.Data(w, http.StatusOK, map[string]string{
		"message": "user " + created.Username + " added successfully",
	}, refreshedMsg)
}
