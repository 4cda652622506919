package format

import (
	"errors"
	"strings"
	"time"
)

// ValidateDatetime checks the atproto datetime profile of RFC 3339: a
// full date and time with seconds, a "T" separator, and an explicit
// timezone. The unknown-offset form "-00:00" is rejected.
func ValidateDatetime(s string) error {
	if len(s) < 20 {
		return errors.New("too short for an RFC 3339 datetime")
	}
	if s[10] != 'T' && s[10] != 't' {
		return errors.New("missing \"T\" separator")
	}
	if strings.HasSuffix(s, "-00:00") {
		return errors.New("timezone \"-00:00\" is not allowed")
	}
	norm := s
	if norm[10] == 't' {
		norm = norm[:10] + "T" + norm[11:]
	}
	if norm[len(norm)-1] == 'z' {
		norm = norm[:len(norm)-1] + "Z"
	}
	if _, err := time.Parse(time.RFC3339Nano, norm); err != nil {
		return errors.New("not a valid RFC 3339 datetime")
	}
	return nil
}

// IsValidDatetime reports whether s is a valid lexicon datetime.
func IsValidDatetime(s string) bool { return ValidateDatetime(s) == nil }
