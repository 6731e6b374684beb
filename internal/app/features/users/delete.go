// internal/app/features/users/delete.go
package users

import (
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"

	groupstore "github.com/sharewallet/sharewallet/internal/app/store/groups"
	transactionstore "github.com/sharewallet/sharewallet/internal/app/store/transactions"
	userstore "github.com/sharewallet/sharewallet/internal/app/store/users"
	"github.com/sharewallet/sharewallet/internal/app/system/auth"
	"github.com/sharewallet/sharewallet/internal/app/system/httpjson"
	"github.com/sharewallet/sharewallet/internal/app/system/inputval"
)

type deleteUserRequest struct {
	Email string `json:"email"`
}

type deleteUserResponse struct {
	DeletedTransactionsNumber int64 `json:"deletedTransactionsNumber"`
	IsRemovedFromGroup        bool  `json:"isRemovedFromGroup"`
}

// HandleDelete handles DELETE /api/users: admin removes a user by email.
// The user's transactions are deleted first, then any group memberships,
// then the user record itself. The steps are discrete storage calls; a
// failure partway leaves whatever the last successful call produced.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	decision := h.Auth.Verify(w, r, auth.RequireAdmin())
	if !decision.Authorized {
		httpjson.Error(w, http.StatusUnauthorized, decision.Cause)
		return
	}

	var req deleteUserRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" {
		httpjson.Error(w, http.StatusBadRequest, "email is required")
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
			httpjson.Error(w, http.StatusBadRequest, "user not found")
			return
		}
		httpjson.Internal(w, h.Log, "users: fetching by email", err)
		return
	}

	deletedTxns, err := transactionstore.New(h.DB).DeleteByUsername(r.Context(), user.Username)
	if err != nil {
		httpjson.Internal(w, h.Log, "users: deleting transactions", err)
		return
	}

	removedFromGroup, err := groupstore.New(h.DB).PullMemberEverywhere(r.Context(), user.Email)
	if err != nil {
		httpjson.Internal(w, h.Log, "users: pulling group memberships", err)
		return
	}

	if _, err := users.DeleteByEmail(r.Context(), user.Email); err != nil {
		httpjson.Internal(w, h.Log, "users: deleting record", err)
		return
	}

	httpjson.Data(w, http.StatusOK, deleteUserResponse{
		DeletedTransactionsNumber: deletedTxns,
		IsRemovedFromGroup:        removedFromGroup,
	}, decision.RefreshedTokenMessage)
}
