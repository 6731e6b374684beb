// internal/app/features/groups/members.go
package groups

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"

	groupstore "github.com/sharewallet/sharewallet/internal/app/store/groups"
	"github.com/sharewallet/sharewallet/internal/app/system/auth"
	"github.com/sharewallet/sharewallet/internal/app/system/classify"
	"github.com/sharewallet/sharewallet/internal/app/system/httpjson"
	"github.com/sharewallet/sharewallet/internal/app/system/inputval"
	"github.com/sharewallet/sharewallet/internal/domain/models"
)

type addMembersResponse struct {
	Group           groupPayload `json:"group"`
	AlreadyInGroup  []string     `json:"alreadyInGroup"`
	MembersNotFound []string     `json:"membersNotFound"`
}

type removeMembersResponse struct {
	Group           groupPayload `json:"group"`
	NotInGroup      []string     `json:"notInGroup"`
	MembersNotFound []string     `json:"membersNotFound"`
}

// HandleMutateMembers handles PATCH /api/groups/{name}/{action}. The action
// segment selects both the operation and its privilege level: "add" and
// "remove" are self-service (the caller must be a member of the group),
// "insert" and "pull" are their administrative counterparts.
func (h *Handler) HandleMutateMembers(w http.ResponseWriter, r *http.Request) {
	intent := ParseIntent(chi.URLParam(r, "action"))
	if intent == IntentInvalid {
		httpjson.Error(w, http.StatusBadRequest, "path not correct")
		return
	}

	name := chi.URLParam(r, "name")
	var req memberEmailsRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if name == "" || len(req.Emails) == 0 {
		httpjson.Error(w, http.StatusBadRequest, "group name and member emails are required")
		return
	}

	store := groupstore.New(h.DB)
	group, err := store.GetByName(r.Context(), name)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Error(w, http.StatusBadRequest, "group does not exist")
			return
		}
		httpjson.Internal(w, h.Log, "groups: fetching by name", err)
		return
	}

	var requirement auth.Requirement
	switch intent {
	case IntentAddSelf, IntentRemoveSelf:
		requirement = auth.RequireGroup(group.MemberEmails())
	case IntentAddAdmin, IntentRemoveAdmin:
		requirement = auth.RequireAdmin()
	}
	decision := h.Auth.Verify(w, r, requirement)
	if !decision.Authorized {
		httpjson.Error(w, http.StatusUnauthorized, decision.Cause)
		return
	}

	if !inputval.AllValidEmails(req.Emails) {
		httpjson.Error(w, http.StatusBadRequest, "one or more emails are not valid")
		return
	}

	switch intent {
	case IntentAddSelf, IntentAddAdmin:
		h.addMembers(w, r, store, group, req.Emails, decision)
	case IntentRemoveSelf, IntentRemoveAdmin:
		h.removeMembers(w, r, store, group, req.Emails, decision)
	}
}

// addMembers classifies with no target group: a candidate enrolled anywhere
// is rejected, membership is exclusive.
func (h *Handler) addMembers(w http.ResponseWriter, r *http.Request, store *groupstore.Store, group models.Group, emails []string, decision auth.Decision) {
	result, err := classify.Emails(r.Context(), emails, "", h.lookups())
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

	updated, err := store.AddMembers(r.Context(), group.Name, members)
	if err != nil {
		httpjson.Internal(w, h.Log, "groups: pushing members", err)
		return
	}

	httpjson.Data(w, http.StatusOK, addMembersResponse{
		Group:           toPayload(updated),
		AlreadyInGroup:  result.AlreadyInGroup,
		MembersNotFound: result.NotFound,
	}, decision.RefreshedTokenMessage)
}

// removeMembers classifies against the target group: only current members
// are removable. Removing every member leaves an empty group in place.
func (h *Handler) removeMembers(w http.ResponseWriter, r *http.Request, store *groupstore.Store, group models.Group, emails []string, decision auth.Decision) {
	result, err := classify.Emails(r.Context(), emails, group.Name, h.lookups())
	if err != nil {
		httpjson.Internal(w, h.Log, "groups: classifying members", err)
		return
	}
	if len(result.Valid) == 0 {
		httpjson.Error(w, http.StatusBadRequest, "no valid emails to remove")
		return
	}

	updated, err := store.RemoveMembers(r.Context(), group.Name, result.Valid)
	if err != nil {
		httpjson.Internal(w, h.Log, "groups: pulling members", err)
		return
	}

	httpjson.Data(w, http.StatusOK, removeMembersResponse{
		Group:           toPayload(updated),
		NotInGroup:      result.NotInGroup,
		MembersNotFound: result.NotFound,
	}, decision.RefreshedTokenMessage)
}
