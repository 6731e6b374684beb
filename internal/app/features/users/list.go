// internal/app/features/users/list.go
package users

import (
	"net/http"

	userstore "github.com/sharewallet/sharewallet/internal/app/store/users"
	"github.com/sharewallet/sharewallet/internal/app/system/auth"
	"github.com/sharewallet/sharewallet/internal/app/system/httpjson"
)

// HandleList handles GET /api/users: every user, admin only.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	decision := h.Auth.Verify(w, r, auth.RequireAdmin())
	if !decision.Authorized {
		httpjson.Error(w, http.StatusUnauthorized, decision.Cause)
		return
	}

	all, err := userstore.New(h.DB).List(r.Context())
	if err != nil {
		httpjson.Internal(w, h.Log, "users: listing", err)
		return
	}

	payload := make([]userPayload, 0, len(all))
	for _, u := range all {
		payload = append(payload, userPayload{Username: u.Username, Email: u.Email, Role: u.Role})
	}
	httpjson.Data(w, http.StatusOK, payload, decision.RefreshedTokenMessage)
}
