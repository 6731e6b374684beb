// internal/app/features/accounts/login.go
package accounts

import (
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	userstore "github.com/sharewallet/sharewallet/internal/app/store/users"
	"github.com/sharewallet/sharewallet/internal/app/system/httpjson"
	"github.com/sharewallet/sharewallet/internal/app/system/inputval"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// HandleLogin handles POST /api/login: checks credentials, mints the
// access/refresh token pair, persists the refresh token on the user document
// and installs both cookies.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		httpjson.Error(w, http.StatusBadRequest, "email and password are required")
		return
	}
	if !inputval.IsValidEmail(req.Email) {
		httpjson.Error(w, http.StatusBadRequest, "email is not valid")
		return
	}

	users := userstore.New(h.DB)
	user, err := users.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Error(w, http.StatusBadRequest, "please you need to register")
			return
		}
		httpjson.Internal(w, h.Log, "login: looking up user", err)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		httpjson.Error(w, http.StatusBadRequest, "wrong credentials")
		return
	}

	access, err := h.Auth.MintAccessToken(user.Username, user.Email, user.Role)
	if err != nil {
		httpjson.Internal(w, h.Log, "login: minting access token", err)
		return
	}
	refresh, err := h.Auth.MintRefreshToken(user.Username, user.Email, user.Role)
	if err != nil {
		httpjson.Internal(w, h.Log, "login: minting refresh token", err)
		return
	}

	if err := users.SetRefreshToken(r.Context(), user.ID, refresh); err != nil {
		httpjson.Internal(w, h.Log, "login: storing refresh token", err)
		return
	}

	h.Auth.SetAuthCookies(w, access, refresh)
	httpjson.Data(w, http.StatusOK, loginResponse{
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}, "")
}
