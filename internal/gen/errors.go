package gen

import (
	"errors"
	"fmt"
)

// Sentinel errors for classifying pipeline failures with errors.Is.
var (
	ErrMalformedDocument = errors.New("malformed document")
	ErrTypeMismatch      = errors.New("type mismatch")
	ErrFieldAccess       = errors.New("field access")
	ErrUnknownLanguage   = errors.New("unknown language")
)

// MalformedDocumentError reports a document whose overall shape is wrong:
// a non-object root or a required array field that is missing or mistyped.
type MalformedDocumentError struct {
	Msg string
}

func (e *MalformedDocumentError) Error() string { return e.Msg }

func (e *MalformedDocumentError) Is(target error) bool { return target == ErrMalformedDocument }

// TypeMismatchError reports a recognized options field carrying the wrong
// JSON type.
type TypeMismatchError struct {
	Field string
	Want  string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("could not parse options file - %q value is not a %s", e.Field, e.Want)
}

func (e *TypeMismatchError) Is(target error) bool { return target == ErrTypeMismatch }

// FieldAccessError reports a required nested field (id, name, comment,
// processed) missing from an element that passed its containing-object check.
type FieldAccessError struct {
	Field string
}

func (e *FieldAccessError) Error() string {
	return fmt.Sprintf("required field %q is missing or not a string", e.Field)
}

func (e *FieldAccessError) Is(target error) bool { return target == ErrFieldAccess }

// UnknownLanguageError reports a message variant keyed by a language id that
// the languages table never declared. Only reachable when indexing by enum
// member, since positional indexing never consults the table.
type UnknownLanguageError struct {
	LangID string
}

func (e *UnknownLanguageError) Error() string {
	return fmt.Sprintf("language %q is not declared in the languages table", e.LangID)
}

func (e *UnknownLanguageError) Is(target error) bool { return target == ErrUnknownLanguage }
