// internal/app/features/groups/types.go
package groups

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	groupstore "github.com/sharewallet/sharewallet/internal/app/store/groups"
	userstore "github.com/sharewallet/sharewallet/internal/app/store/users"
	"github.com/sharewallet/sharewallet/internal/app/system/classify"
	"github.com/sharewallet/sharewallet/internal/domain/models"
)

// Intent names the privilege level a member mutation was routed with. It is
// derived from the trailing path segment once, at the edge, so the shared
// orchestration never inspects the URL itself.
type Intent int

const (
	// IntentInvalid is any unrecognized path segment.
	IntentInvalid Intent = iota
	// IntentAddSelf is a self-service add; the caller must be a member.
	IntentAddSelf
	// IntentAddAdmin is an administrative insert.
	IntentAddAdmin
	// IntentRemoveSelf is a self-service removal; the caller must be a member.
	IntentRemoveSelf
	// IntentRemoveAdmin is an administrative pull.
	IntentRemoveAdmin
)

// ParseIntent maps the {action} path segment to an Intent.
func ParseIntent(action string) Intent {
	switch action {
	case "add":
		return IntentAddSelf
	case "insert":
		return IntentAddAdmin
	case "remove":
		return IntentRemoveSelf
	case "pull":
		return IntentRemoveAdmin
	}
	return IntentInvalid
}

// groupPayload is the wire shape of a group; members serialize as
// [{"email": ...}].
type groupPayload struct {
	Name    string             `json:"name"`
	Members []models.MemberRef `json:"members"`
}

func toPayload(g models.Group) groupPayload {
	members := g.Members
	if members == nil {
		members = []models.MemberRef{}
	}
	return groupPayload{Name: g.Name, Members: members}
}

type memberEmailsRequest struct {
	Emails []string `json:"emails"`
}

// lookups wires the classifier to the users and groups stores.
func (h *Handler) lookups() classify.Lookups {
	users := userstore.New(h.DB)
	grps := groupstore.New(h.DB)
	return classify.Lookups{
		UserExists: users.ExistsByEmail,
		InAnyGroup: grps.InAnyGroup,
		InGroup:    grps.HasMember,
	}
}

// resolveMembers turns classified-valid emails into member references. The
// classifier already established that each email belongs to a registered
// user; a vanished user between the two reads surfaces as an error.
func (h *Handler) resolveMembers(ctx context.Context, emails []string) ([]models.MemberRef, error) {
	users := userstore.New(h.DB)
	refs := make([]models.MemberRef, 0, len(emails))
	for _, email := range emails {
		u, err := users.GetByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, errors.New("user " + email + " disappeared during classification")
			}
			return nil, err
		}
		refs = append(refs, models.MemberRef{Email: u.Email, User: u.ID})
	}
	return refs, nil
}
