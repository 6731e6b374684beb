// internal/app/system/htmlsanitize/htmlsanitize.go

// Package htmlsanitize strips markup from user-supplied text. Usernames and
// group names are stored and echoed back in JSON responses that browsers may
// render, so anything tag-shaped is removed at the door.
package htmlsanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// PlainText removes every HTML element and attribute from s, returning the
// trimmed remaining text content.
func PlainText(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}
