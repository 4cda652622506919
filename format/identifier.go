package format

import (
	"errors"
	"regexp"
	"strings"
)

var handleRe = regexp.MustCompile(`^([a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?$`)

// ValidateHandle checks a handle: a DNS hostname of at least two
// segments whose final segment starts with a letter.
func ValidateHandle(s string) error {
	if len(s) > 253 {
		return errors.New("handle is too long (max 253 chars)")
	}
	if !handleRe.MatchString(s) {
		return errors.New("invalid handle syntax")
	}
	return nil
}

// IsValidHandle reports whether s is a valid handle.
func IsValidHandle(s string) bool { return ValidateHandle(s) == nil }

var didRe = regexp.MustCompile(`^did:[a-z]+:[a-zA-Z0-9._:%-]*[a-zA-Z0-9._-]$`)

// ValidateDID checks the generic DID syntax: "did:<method>:<identifier>"
// with a lowercase method and a non-empty identifier that does not end
// in "%" or ":".
func ValidateDID(s string) error {
	if len(s) > 2048 {
		return errors.New("did is too long (max 2048 chars)")
	}
	if !didRe.MatchString(s) {
		return errors.New("invalid did syntax")
	}
	return nil
}

// IsValidDID reports whether s is a valid DID.
func IsValidDID(s string) bool { return ValidateDID(s) == nil }

// ValidateATIdentifier accepts either a DID or a handle.
func ValidateATIdentifier(s string) error {
	if strings.HasPrefix(s, "did:") {
		return ValidateDID(s)
	}
	return ValidateHandle(s)
}

// IsValidATIdentifier reports whether s is a valid DID or handle.
func IsValidATIdentifier(s string) bool { return ValidateATIdentifier(s) == nil }
