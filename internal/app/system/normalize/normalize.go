// internal/app/system/normalize/normalize.go

// Package normalize provides canonical forms for user-supplied identity
// fields. Every value that is stored, compared, or used as the key of a
// classification decision must pass through here first so that lookups
// are insensitive to the casing and whitespace callers happen to send.
package normalize

import "strings"

// Email returns the canonical form of an email address: trimmed and
// lowercased. Empty or whitespace-only input normalizes to "".
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Username trims surrounding whitespace but preserves case.
func Username(s string) string {
	return strings.TrimSpace(s)
}

// Role returns the canonical lowercase role string.
func Role(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Emails normalizes and de-duplicates a candidate list, preserving first
// occurrence order. Entries that normalize to "" are dropped.
func Emails(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, raw := range in {
		e := Email(raw)
		if e == "" {
			continue
		}
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out
}
