package scryfall

import (
	"errors"
	"fmt"
)

var ErrLookup = errors.New("scryfall lookup failed")
var ErrMissingField = errors.New("missing field")
var ErrFieldType = errors.New("unexpected field type")

// ScryfallError is returned when the API answers a lookup with a status
// code other than 200.
type ScryfallError struct {
	Query      string
	StatusCode int
	// Details is the human readable message of the API error object, if any.
	Details string

	prefix string
}

func newScryfallError(prefix, query string, statusCode int, body CardJSON) *ScryfallError {
	err := &ScryfallError{
		Query:      query,
		StatusCode: statusCode,
		prefix:     prefix,
	}
	if body != nil {
		err.Details, _ = body["details"].(string)
	}
	return err
}

func (err *ScryfallError) Error() string {
	msg := fmt.Sprintf("%s %s. Status code: %d", err.prefix, err.Query, err.StatusCode)
	if err.Details != "" {
		msg += " (" + err.Details + ")"
	}
	return msg
}

func (err *ScryfallError) Is(target error) bool {
	return target == ErrLookup
}

// MissingFieldError reports the first required key absent from a card.
type MissingFieldError struct {
	Field string
}

func (err *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %q", err.Field)
}

func (err *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// FieldTypeError reports a required key whose value has the wrong JSON type.
type FieldTypeError struct {
	Field string
	Value interface{}
}

func (err *FieldTypeError) Error() string {
	return fmt.Sprintf("field %q has unexpected type %T", err.Field, err.Value)
}

func (err *FieldTypeError) Is(target error) bool {
	return target == ErrFieldType
}
