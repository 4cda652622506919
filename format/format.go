// Package format implements the string format predicates of the lexicon
// language. Each predicate is a pure function with no engine state; the
// root package calls through Validate when a string schema declares a
// format, and exposes the same predicates for direct use.
package format

import (
	"fmt"
)

// Format names a string format tag recognized by string schemas.
type Format string

const (
	Datetime     Format = "datetime"
	URI          Format = "uri"
	ATURI        Format = "at-uri"
	DID          Format = "did"
	Handle       Format = "handle"
	ATIdentifier Format = "at-identifier"
	NSID         Format = "nsid"
	CID          Format = "cid"
	RawCID       Format = "raw-cid"
	Language     Format = "language"
	TID          Format = "tid"
	RecordKey    Format = "record-key"
)

// Known reports whether name is a recognized format tag.
func Known(name string) bool {
	switch Format(name) {
	case Datetime, URI, ATURI, DID, Handle, ATIdentifier,
		NSID, CID, RawCID, Language, TID, RecordKey:
		return true
	}
	return false
}

// Validate checks s against the named format.
func Validate(s string, f Format) error {
	switch f {
	case Datetime:
		return ValidateDatetime(s)
	case URI:
		return ValidateURI(s)
	case ATURI:
		return ValidateATURI(s)
	case DID:
		return ValidateDID(s)
	case Handle:
		return ValidateHandle(s)
	case ATIdentifier:
		return ValidateATIdentifier(s)
	case NSID:
		return ValidateNSID(s)
	case CID:
		return ValidateCID(s)
	case RawCID:
		return ValidateRawCID(s)
	case Language:
		return ValidateLanguage(s)
	case TID:
		return ValidateTID(s)
	case RecordKey:
		return ValidateRecordKey(s)
	default:
		return fmt.Errorf("unknown format %q", string(f))
	}
}
