// internal/app/system/classify/classify.go

// Package classify partitions candidate member emails ahead of any group
// mutation. It performs no I/O of its own: callers supply the lookup
// capabilities, normally backed by the users and groups stores.
package classify

import (
	"context"

	"github.com/sharewallet/sharewallet/internal/app/system/normalize"
)

// Lookups are the two capabilities classification needs. UserExists must be
// set. Exactly one of InAnyGroup / InGroup is consulted, depending on
// whether a target group is given.
type Lookups struct {
	// UserExists reports whether a registered user has this email.
	UserExists func(ctx context.Context, email string) (bool, error)
	// InAnyGroup reports whether this email is a member of any group.
	InAnyGroup func(ctx context.Context, email string) (bool, error)
	// InGroup reports whether this email is a member of the named group.
	InGroup func(ctx context.Context, group, email string) (bool, error)
}

// Result partitions the de-duplicated candidate list: every candidate lands
// in exactly one of the four sets. AlreadyInGroup is only populated when no
// target group was given; NotInGroup only when one was.
type Result struct {
	Valid          []string
	AlreadyInGroup []string
	NotInGroup     []string
	NotFound       []string
}

// Emails classifies the candidates. Inputs are case-normalized and
// de-duplicated first. The existence check runs before any membership
// check and is authoritative: an email with no registered user is never
// considered for membership, whatever the group state.
//
// With targetGroup == "", candidates already enrolled anywhere land in
// AlreadyInGroup (enrollment exclusivity for creation and adds). With a
// target group, candidates that are not members of that specific group
// land in NotInGroup (removal context).
func Emails(ctx context.Context, candidates []string, targetGroup string, lk Lookups) (Result, error) {
	res := Result{
		Valid:          []string{},
		AlreadyInGroup: []string{},
		NotInGroup:     []string{},
		NotFound:       []string{},
	}

	for _, email := range normalize.Emails(candidates) {
		exists, err := lk.UserExists(ctx, email)
		if err != nil {
			return Result{}, err
		}
		if !exists {
			res.NotFound = append(res.NotFound, email)
			continue
		}

		if targetGroup == "" {
			enrolled, err := lk.InAnyGroup(ctx, email)
			if err != nil {
				return Result{}, err
			}
			if enrolled {
				res.AlreadyInGroup = append(res.AlreadyInGroup, email)
				continue
			}
		} else {
			member, err := lk.InGroup(ctx, targetGroup, email)
			if err != nil {
				return Result{}, err
			}
			if !member {
				res.NotInGroup = append(res.NotInGroup, email)
				continue
			}
		}

		res.Valid = append(res.Valid, email)
	}

	return res, nil
}
