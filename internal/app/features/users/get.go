// internal/app/features/users/get.go
package users

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"

	userstore "github.com/sharewallet/sharewallet/internal/app/store/users"
	"github.com/sharewallet/sharewallet/internal/app/system/auth"
	"github.com/sharewallet/sharewallet/internal/app/system/httpjson"
)

// HandleGet handles GET /api/users/{username}. A regular caller may only
// fetch their own record, so the path username must match the token; an
// admin may fetch anyone.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if username == "" {
		httpjson.Error(w, http.StatusBadRequest, "username is required")
		return
	}

	decision := h.Auth.VerifyAny(w, r, auth.RequireUser(username), auth.RequireAdmin())
	if !decision.Authorized {
		httpjson.Error(w, http.StatusUnauthorized, decision.Cause)
		return
	}

	user, err := userstore.New(h.DB).GetByUsername(r.Context(), username)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Error(w, http.StatusBadRequest, "user not found")
			return
		}
		httpjson.Internal(w, h.Log, "users: fetching by username", err)
		return
	}

	httpjson.Data(w, http.StatusOK,
		userPayload{Username: user.Username, Email: user.Email, Role: user.Role},
		decision.RefreshedTokenMessage)
}
