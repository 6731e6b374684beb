// internal/app/features/accounts/logout.go
package accounts

import (
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"

	userstore "github.com/sharewallet/sharewallet/internal/app/store/users"
	"github.com/sharewallet/sharewallet/internal/app/system/auth"
	"github.com/sharewallet/sharewallet/internal/app/system/httpjson"
)

// HandleLogout handles GET /api/logout. The refresh cookie must match a
// stored user; the stored token is cleared and both cookies expired.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(auth.RefreshCookie)
	if err != nil || cookie.Value == "" {
		httpjson.Error(w, http.StatusBadRequest, "no refresh token found")
		return
	}

	users := userstore.New(h.DB)
	user, err := users.GetByRefreshToken(r.Context(), cookie.Value)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Error(w, http.StatusBadRequest, "user not found")
			return
		}
		httpjson.Internal(w, h.Log, "logout: looking up user", err)
		return
	}

	if err := users.ClearRefreshToken(r.Context(), user.ID); err != nil {
		httpjson.Internal(w, h.Log, "logout: clearing refresh token", err)
		return
	}

	h.Auth.ClearAuthCookies(w)
	httpjson.Data(w, http.StatusOK, map[string]string{"message": "logged out"}, "")
}
