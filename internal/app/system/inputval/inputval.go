// internal/app/system/inputval/inputval.go

// Package inputval validates user-supplied input syntactically, before any
// classification or storage lookups run. Syntactic rejection happens here;
// semantic checks (does the user exist, is the email enrolled somewhere)
// belong to the classifier.
package inputval

import (
	"net/mail"
	"strings"
)

// MinPasswordLength is the minimum accepted password length at registration.
const MinPasswordLength = 8

// IsValidEmail reports whether s is a syntactically valid bare email
// address per RFC 5322. Display-name forms ("Name <a@b.c>") are rejected;
// single-label domains (user@localhost) are accepted, which is useful for
// dev and test environments.
func IsValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	// ParseAddress accepts "Name <user@host>"; only the bare addr-spec form
	// is valid input here.
	return addr.Name == "" && addr.Address == s
}

// AllValidEmails reports whether every candidate in the list passes
// IsValidEmail. An empty list is vacuously valid; callers reject empty
// candidate lists separately.
func AllValidEmails(candidates []string) bool {
	for _, c := range candidates {
		if !IsValidEmail(c) {
			return false
		}
	}
	return true
}

// IsValidPassword reports whether a registration password meets the
// minimum length after trimming.
func IsValidPassword(s string) bool {
	return len(strings.TrimSpace(s)) >= MinPasswordLength
}
