package format

import (
	"errors"
	"regexp"
	"strings"
)

// An NSID is a reversed domain authority followed by a name segment:
// at least three segments, 317 characters at most. Authority segments
// may carry interior hyphens; the name segment is letters and digits
// only and starts with a letter.
var nsidRe = regexp.MustCompile(`^[a-zA-Z]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(\.[a-zA-Z]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*\.[a-zA-Z][a-zA-Z0-9]{0,62}$`)

// ValidateNSID checks s against the NSID grammar.
func ValidateNSID(s string) error {
	if len(s) > 317 {
		return errors.New("nsid is too long (max 317 chars)")
	}
	if strings.Count(s, ".") < 2 {
		return errors.New("nsid needs at least three segments")
	}
	if !nsidRe.MatchString(s) {
		return errors.New("invalid nsid syntax")
	}
	return nil
}

// IsValidNSID reports whether s is a valid NSID.
func IsValidNSID(s string) bool { return ValidateNSID(s) == nil }
