package lexema

import (
	"errors"
	"fmt"
)

// ErrorKind discriminates the three failure classes of the validator.
type ErrorKind int

const (
	// InvalidSchema reports a malformed schema document: wrong field set,
	// inconsistent bounds, unresolved or malformed reference, bad key type.
	InvalidSchema ErrorKind = iota + 1
	// DataValidation reports a data value that does not conform to an
	// otherwise valid schema.
	DataValidation
	// LexiconNotFound reports a document id absent from the catalog.
	LexiconNotFound
)

// String returns the stable prefix rendered for the kind.
func (k ErrorKind) String() string {
	switch k {
	case DataValidation:
		return "Data validation failed"
	case LexiconNotFound:
		return "Lexicon not found for collection"
	default:
		return "Invalid lexicon schema"
	}
}

// Error is the uniform failure value returned by every validator in this
// package. Message carries the human-readable detail; by convention it
// embeds the dotted location of the failure when one exists.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Message
}

func invalidSchemaf(format string, args ...any) *Error {
	return &Error{Kind: InvalidSchema, Message: fmt.Sprintf(format, args...)}
}

func dataValidationf(format string, args ...any) *Error {
	return &Error{Kind: DataValidation, Message: fmt.Sprintf(format, args...)}
}

func lexiconNotFound(collection string) *Error {
	return &Error{Kind: LexiconNotFound, Message: collection}
}

// AsError extracts a *Error from err using errors.As internally.
func AsError(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

func isKind(err error, k ErrorKind) bool {
	e, ok := AsError(err)
	return ok && e.Kind == k
}

// IsInvalidSchema reports whether err is a schema-shape failure.
func IsInvalidSchema(err error) bool { return isKind(err, InvalidSchema) }

// IsDataValidation reports whether err is a data conformance failure.
func IsDataValidation(err error) bool { return isKind(err, DataValidation) }

// IsLexiconNotFound reports whether err is a catalog miss.
func IsLexiconNotFound(err error) bool { return isKind(err, LexiconNotFound) }
