package format

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ValidateURI checks a generic URI: a scheme, something after it, and no
// whitespace.
func ValidateURI(s string) error {
	if len(s) > 8192 {
		return errors.New("uri is too long (max 8192 chars)")
	}
	if strings.ContainsAny(s, " \t\r\n") {
		return errors.New("uri must not contain whitespace")
	}
	u, err := url.Parse(s)
	if err != nil {
		return errors.New("invalid uri syntax")
	}
	if u.Scheme == "" {
		return errors.New("uri must carry a scheme")
	}
	if len(s) <= len(u.Scheme)+1 {
		return errors.New("uri must not be a bare scheme")
	}
	return nil
}

// IsValidURI reports whether s is a valid URI.
func IsValidURI(s string) bool { return ValidateURI(s) == nil }

// ValidateATURI checks an at:// URI: an authority (handle or DID),
// optionally followed by a collection NSID and a record key.
func ValidateATURI(s string) error {
	if len(s) > 8192 {
		return errors.New("at-uri is too long (max 8192 chars)")
	}
	rest, ok := strings.CutPrefix(s, "at://")
	if !ok {
		return errors.New("at-uri must start with \"at://\"")
	}
	parts := strings.Split(rest, "/")
	if len(parts) > 3 {
		return errors.New("at-uri has too many path segments")
	}
	if err := ValidateATIdentifier(parts[0]); err != nil {
		return fmt.Errorf("invalid at-uri authority: %v", err)
	}
	if len(parts) > 1 {
		if err := ValidateNSID(parts[1]); err != nil {
			return fmt.Errorf("invalid at-uri collection: %v", err)
		}
	}
	if len(parts) > 2 {
		if err := ValidateRecordKey(parts[2]); err != nil {
			return fmt.Errorf("invalid at-uri record key: %v", err)
		}
	}
	return nil
}

// IsValidATURI reports whether s is a valid at:// URI.
func IsValidATURI(s string) bool { return ValidateATURI(s) == nil }
