package classify_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/sharewallet/sharewallet/internal/app/system/classify"
)

// stubLookups builds Lookups over fixed data: users is the set of registered
// emails, groups maps group name -> member emails.
func stubLookups(users []string, groups map[string][]string) classify.Lookups {
	registered := make(map[string]struct{}, len(users))
	for _, u := range users {
		registered[u] = struct{}{}
	}
	return classify.Lookups{
		UserExists: func(_ context.Context, email string) (bool, error) {
			_, ok := registered[email]
			return ok, nil
		},
		InAnyGroup: func(_ context.Context, email string) (bool, error) {
			for _, members := range groups {
				for _, m := range members {
					if m == email {
						return true, nil
					}
				}
			}
			return false, nil
		},
		InGroup: func(_ context.Context, group, email string) (bool, error) {
			for _, m := range groups[group] {
				if m == email {
					return true, nil
				}
			}
			return false, nil
		},
	}
}

func TestEmails_EmptyCandidates(t *testing.T) {
	res, err := classify.Emails(context.Background(), nil, "", stubLookups(nil, nil))
	if err != nil {
		t.Fatalf("Emails failed: %v", err)
	}
	if len(res.Valid)+len(res.AlreadyInGroup)+len(res.NotInGroup)+len(res.NotFound) != 0 {
		t.Errorf("expected four empty sets, got %+v", res)
	}
}

func TestEmails_FreshUserIsValid(t *testing.T) {
	lk := stubLookups([]string{"a@x.com"}, nil)
	res, err := classify.Emails(context.Background(), []string{"a@x.com"}, "", lk)
	if err != nil {
		t.Fatalf("Emails failed: %v", err)
	}
	if !reflect.DeepEqual(res.Valid, []string{"a@x.com"}) {
		t.Errorf("Valid: got %v", res.Valid)
	}
	if len(res.AlreadyInGroup)+len(res.NotInGroup)+len(res.NotFound) != 0 {
		t.Errorf("expected other sets empty, got %+v", res)
	}
}

func TestEmails_EnrolledUserIsAlreadyInGroup(t *testing.T) {
	lk := stubLookups([]string{"a@x.com"}, map[string][]string{"G": {"a@x.com"}})
	res, err := classify.Emails(context.Background(), []string{"a@x.com"}, "", lk)
	if err != nil {
		t.Fatalf("Emails failed: %v", err)
	}
	if !reflect.DeepEqual(res.AlreadyInGroup, []string{"a@x.com"}) {
		t.Errorf("AlreadyInGroup: got %v", res.AlreadyInGroup)
	}
	if len(res.Valid) != 0 {
		t.Errorf("Valid should be empty, got %v", res.Valid)
	}
}

func TestEmails_TargetGroupMember(t *testing.T) {
	lk := stubLookups([]string{"a@x.com"}, map[string][]string{"G": {"a@x.com"}})
	res, err := classify.Emails(context.Background(), []string{"a@x.com"}, "G", lk)
	if err != nil {
		t.Fatalf("Emails failed: %v", err)
	}
	if !reflect.DeepEqual(res.Valid, []string{"a@x.com"}) {
		t.Errorf("Valid: got %v", res.Valid)
	}
}

func TestEmails_MemberOfOtherGroupIsNotInTarget(t *testing.T) {
	lk := stubLookups([]string{"a@x.com"}, map[string][]string{"H": {"a@x.com"}})
	res, err := classify.Emails(context.Background(), []string{"a@x.com"}, "G", lk)
	if err != nil {
		t.Fatalf("Emails failed: %v", err)
	}
	if !reflect.DeepEqual(res.NotInGroup, []string{"a@x.com"}) {
		t.Errorf("NotInGroup: got %v", res.NotInGroup)
	}
	if len(res.Valid) != 0 {
		t.Errorf("Valid should be empty, got %v", res.Valid)
	}
}

func TestEmails_UnregisteredIsNotFound(t *testing.T) {
	// NotFound wins over group state in both modes.
	lk := stubLookups(nil, map[string][]string{"G": {"missing@x.com"}})

	for _, target := range []string{"", "G"} {
		res, err := classify.Emails(context.Background(), []string{"missing@x.com"}, target, lk)
		if err != nil {
			t.Fatalf("Emails failed: %v", err)
		}
		if !reflect.DeepEqual(res.NotFound, []string{"missing@x.com"}) {
			t.Errorf("target %q: NotFound got %v", target, res.NotFound)
		}
		if len(res.Valid)+len(res.AlreadyInGroup)+len(res.NotInGroup) != 0 {
			t.Errorf("target %q: email leaked into another set: %+v", target, res)
		}
	}
}

func TestEmails_SetsArePairwiseDisjointAndCoverInput(t *testing.T) {
	users := []string{"fresh@x.com", "taken@x.com", "ing@x.com"}
	groups := map[string][]string{
		"G": {"ing@x.com"},
		"H": {"taken@x.com"},
	}
	candidates := []string{
		"Fresh@X.com", "fresh@x.com", // duplicate after normalization
		"taken@x.com",
		"ing@x.com",
		"ghost@x.com",
	}

	res, err := classify.Emails(context.Background(), candidates, "", stubLookups(users, groups))
	if err != nil {
		t.Fatalf("Emails failed: %v", err)
	}

	seen := map[string]int{}
	for _, set := range [][]string{res.Valid, res.AlreadyInGroup, res.NotInGroup, res.NotFound} {
		for _, e := range set {
			seen[e]++
		}
	}
	want := map[string]int{
		"fresh@x.com": 1,
		"taken@x.com": 1,
		"ing@x.com":   1,
		"ghost@x.com": 1,
	}
	if !reflect.DeepEqual(seen, want) {
		t.Errorf("partition mismatch: got %v, want %v", seen, want)
	}
}

func TestEmails_LookupErrorPropagates(t *testing.T) {
	boom := errors.New("cursor error")
	lk := classify.Lookups{
		UserExists: func(context.Context, string) (bool, error) { return false, boom },
	}
	if _, err := classify.Emails(context.Background(), []string{"a@x.com"}, "", lk); !errors.Is(err, boom) {
		t.Errorf("expected lookup error to propagate, got %v", err)
	}
}
