package format

import (
	"errors"

	"golang.org/x/text/language"
)

// ValidateLanguage checks a BCP-47 language tag.
func ValidateLanguage(s string) error {
	if s == "" {
		return errors.New("language tag must not be empty")
	}
	if _, err := language.Parse(s); err != nil {
		return errors.New("not a well-formed bcp-47 language tag")
	}
	return nil
}

// IsValidLanguage reports whether s is a well-formed BCP-47 tag.
func IsValidLanguage(s string) bool { return ValidateLanguage(s) == nil }
