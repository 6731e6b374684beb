// internal/app/features/groups/delete.go
package groups

import (
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"

	groupstore "github.com/sharewallet/sharewallet/internal/app/store/groups"
	"github.com/sharewallet/sharewallet/internal/app/system/auth"
	"github.com/sharewallet/sharewallet/internal/app/system/httpjson"
)

type deleteGroupRequest struct {
	Name string `json:"name"`
}

// HandleDelete handles DELETE /api/groups. The caller must hold both the
// admin capability and membership of the group being deleted.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	var req deleteGroupRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		httpjson.Error(w, http.StatusBadRequest, "group name is required")
		return
	}

	store := groupstore.New(h.DB)
	group, err := store.GetByName(r.Context(), req.Name)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Error(w, http.StatusBadRequest, "group does not exist")
			return
		}
		httpjson.Internal(w, h.Log, "groups: fetching by name", err)
		return
	}

	adminDecision := h.Auth.Verify(w, r, auth.RequireAdmin())
	if !adminDecision.Authorized {
		httpjson.Error(w, http.StatusUnauthorized, adminDecision.Cause)
		return
	}
	memberDecision := h.Auth.Verify(w, r, auth.RequireGroup(group.MemberEmails()))
	if !memberDecision.Authorized {
		httpjson.Error(w, http.StatusUnauthorized, memberDecision.Cause)
		return
	}

	if _, err := store.Delete(r.Context(), group.Name); err != nil {
		httpjson.Internal(w, h.Log, "groups: deleting", err)
		return
	}

	httpjson.Data(w, http.StatusOK, map[string]string{
		"message": "group " + group.Name + " deleted",
	}, adminDecision.RefreshedTokenMessage)
}
