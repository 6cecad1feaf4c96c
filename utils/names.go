package utils

import "strings"

// FirstName returns the portion of a display name before the first space,
// or the whole name if there is none. Used to personalize emails and RSVP
// confirmations.
func FirstName(name string) string {
	name = strings.TrimSpace(name)
	if i := strings.Index(name, " "); i > 0 {
		return name[:i]
	}
	return name
}
