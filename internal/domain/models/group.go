// internal/domain/models/group.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemberRef is one entry in a group's member list. Email is the
// lowercase-normalized address; User references the user document it
// resolved to when the member was enrolled.
type MemberRef struct {
	Email string             `bson:"email" json:"email"`
	User  primitive.ObjectID `bson:"user,omitempty" json:"-"`
}

// Group is an expense group with its membership embedded.
//
// Invariants:
//   - Name is unique and non-empty.
//   - Member emails are unique within a single group ($push is only ever
//     fed emails the classifier already confirmed belong to no group).
//   - An email should belong to at most one group at a time; that policy
//     is enforced by the classifier before mutation, not by the storage
//     layer, so concurrent adds of the same email can still race.
//   - Groups are never auto-deleted when their member list empties.
type Group struct {
	ID      primitive.ObjectID `bson:"_id" json:"id"`
	Name    string             `bson:"name" json:"name"`
	Members []MemberRef        `bson:"members" json:"members"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// MemberEmails returns the emails of all current members, in member order.
func (g Group) MemberEmails() []string {
	emails := make([]string, 0, len(g.Members))
	for _, m := range g.Members {
		emails = append(emails, m.Email)
	}
	return emails
}
