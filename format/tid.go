package format

import (
	"errors"
	"regexp"
)

// A TID is 13 characters of the base32-sortable alphabet; the leading
// character is range-limited because the top timestamp bit is always 0.
var tidRe = regexp.MustCompile(`^[234567abcdefghij][234567abcdefghijklmnopqrstuvwxyz]{12}$`)

// ValidateTID checks a timestamp identifier.
func ValidateTID(s string) error {
	if len(s) != 13 {
		return errors.New("tid must be exactly 13 characters")
	}
	if !tidRe.MatchString(s) {
		return errors.New("invalid tid syntax")
	}
	return nil
}

// IsValidTID reports whether s is a valid TID.
func IsValidTID(s string) bool { return ValidateTID(s) == nil }

var recordKeyRe = regexp.MustCompile(`^[a-zA-Z0-9._:~-]{1,512}$`)

// ValidateRecordKey checks a record key: 1-512 characters from the
// URL-safe set, excluding the reserved "." and "..".
func ValidateRecordKey(s string) error {
	if s == "." || s == ".." {
		return errors.New("record key \".\" and \"..\" are reserved")
	}
	if !recordKeyRe.MatchString(s) {
		return errors.New("invalid record key syntax")
	}
	return nil
}

// IsValidRecordKey reports whether s is a valid record key.
func IsValidRecordKey(s string) bool { return ValidateRecordKey(s) == nil }
