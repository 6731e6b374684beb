// internal/app/features/groups/create.go
package groups

import (
	"errors"
	"net/http"

	groupstore "github.com/sharewallet/sharewallet/internal/app/store/groups"
	"github.com/sharewallet/sharewallet/internal/app/system/auth"
	"github.com/sharewallet/sharewallet/internal/app/system/classify"
	"github.com/sharewallet/sharewallet/internal/app/system/httpjson"
	"github.com/sharewallet/sharewallet/internal/app/system/inputval"
	"github.com/sharewallet/sharewallet/internal/domain/models"
)

type createGroupRequest struct {
	Name   string   `json:"name"`
	Emails []string `json:"emails"`
}

type createGroupResponse struct {
	Group           groupPayload `json:"group"`
	AlreadyInGroup  []string     `json:"alreadyInGroup"`
	MembersNotFound []string     `json:"membersNotFound"`
}

// HandleCreate handles POST /api/groups. The caller must appear among the
// candidate emails: creating a group enrolls its creator.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createGroupRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || len(req.Emails) == 0 {
		httpjson.Error(w, http.StatusBadRequest, "group name and member emails are required")
		return
	}

	decision := h.Auth.Verify(w, r, auth.RequireGroup(req.Emails))
	if !decision.Authorized {
		httpjson.Error(w, http.StatusUnauthorized, decision.Cause)
		return
	}

	if !inputval.AllValidEmails(req.Emails) {
		httpjson.Error(w, http.StatusBadRequest, "one or more emails are not valid")
		return
	}

	store := groupstore.New(h.DB)
	exists, err := store.Exists(r.Context(), req.Name)
	if err != nil {
		httpjson.Internal(w, h.Log, "groups: checking name", err)
		return
	}
	if exists {
		httpjson.Error(w, http.StatusBadRequest, "a group with this name already exists")
		return
	}

	result, err := classify.Emails(r.Context(), req.Emails, "", h.lookups())
	if err != nil {
		httpjson.Internal(w, h.Log, "groups: classifying members", err)
		return
	}
	if len(result.Valid) == 0 {
		httpjson.Error(w, http.StatusBadRequest, "no valid emails to enroll")
		return
	}

	members, err := h.resolveMembers(r.Context(), result.Valid)
	if err != nil {
		httpjson.Internal(w, h.Log, "groups: resolving members", err)
		return
	}

	created, err := store.Create(r.Context(), models.Group{Name: req.Name, Members: members})
	if err != nil {
		if errors.Is(err, groupstore.ErrDuplicateGroupName) {
			httpjson.Error(w, http.StatusBadRequest, "a group with this name already exists")
			return
		}
		httpjson.Internal(w, h.Log, "groups: creating", err)
		return
	}

	httpjson.Data(w, http.StatusOK, createGroupResponse{
		Group:           toPayload(created),
		AlreadyInGroup:  result.AlreadyInGroup,
		MembersNotFound: result.NotFound,
	}, decision.RefreshedTokenMessage)
}
