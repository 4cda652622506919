package format

import (
	"errors"
	"fmt"

	"github.com/ipfs/go-cid"
)

// ValidateCID checks that s parses as a CID and is not the legacy v0
// form ("Qm..."), which the lexicon data model does not allow.
func ValidateCID(s string) error {
	c, err := cid.Decode(s)
	if err != nil {
		return fmt.Errorf("cid does not parse: %v", err)
	}
	if c.Version() == 0 {
		return errors.New("cidv0 is not allowed")
	}
	return nil
}

// IsValidCID reports whether s is a valid CIDv1.
func IsValidCID(s string) bool { return ValidateCID(s) == nil }

// ValidateRawCID additionally requires the raw multicodec, the form blob
// references use.
func ValidateRawCID(s string) error {
	c, err := cid.Decode(s)
	if err != nil {
		return fmt.Errorf("cid does not parse: %v", err)
	}
	if c.Version() == 0 {
		return errors.New("cidv0 is not allowed")
	}
	if c.Prefix().Codec != cid.Raw {
		return errors.New("cid codec must be raw")
	}
	return nil
}

// IsValidRawCID reports whether s is a valid CIDv1 with the raw codec.
func IsValidRawCID(s string) bool { return ValidateRawCID(s) == nil }
