// internal/app/features/groups/list.go
package groups

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"

	groupstore "github.com/sharewallet/sharewallet/internal/app/store/groups"
	"github.com/sharewallet/sharewallet/internal/app/system/auth"
	"github.com/sharewallet/sharewallet/internal/app/system/httpjson"
)

// HandleList handles GET /api/groups: every group, admin only.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	decision := h.Auth.Verify(w, r, auth.RequireAdmin())
	if !decision.Authorized {
		httpjson.Error(w, http.StatusUnauthorized, decision.Cause)
		return
	}

	all, err := groupstore.New(h.DB).List(r.Context())
	if err != nil {
		httpjson.Internal(w, h.Log, "groups: listing", err)
		return
	}

	payload := make([]groupPayload, 0, len(all))
	for _, g := range all {
		payload = append(payload, toPayload(g))
	}
	httpjson.Data(w, http.StatusOK, payload, decision.RefreshedTokenMessage)
}

// HandleView handles GET /api/groups/{name}: a member of the group or an
// admin may read it.
func (h *Handler) HandleView(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" {
		httpjson.Error(w, http.StatusBadRequest, "group name is required")
		return
	}

	group, err := groupstore.New(h.DB).GetByName(r.Context(), name)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Error(w, http.StatusBadRequest, "group does not exist")
			return
		}
		httpjson.Internal(w, h.Log, "groups: fetching by name", err)
		return
	}

	decision := h.Auth.VerifyAny(w, r,
		auth.RequireGroup(group.MemberEmails()),
		auth.RequireAdmin())
	if !decision.Authorized {
		httpjson.Error(w, http.StatusUnauthorized, decision.Cause)
		return
	}

	httpjson.Data(w, http.StatusOK, map[string]groupPayload{"group": toPayload(group)},
		decision.RefreshedTokenMessage)
}
