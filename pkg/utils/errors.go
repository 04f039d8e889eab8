package utils

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies why an email could not be turned into a flight record
type ErrorKind string

const (
	KindEmptyInput            ErrorKind = "EmptyInput"
	KindMissingRequiredFields ErrorKind = "MissingRequiredFields"
	KindInternalParse         ErrorKind = "InternalParseError"
)

// Sentinels for errors.Is matching against an *ExtractionError
var (
	ErrEmptyInput            = errors.New("email content is empty")
	ErrMissingRequiredFields = errors.New("could not find required flight information (flight number, passenger, or airports)")
	ErrInternalParse         = errors.New("failed to parse email")
)

// ExtractionError is returned by Extract for every failure
type ExtractionError struct {
	Kind    ErrorKind
	Missing []string // set for KindMissingRequiredFields
	Err     error    // underlying cause for KindInternalParse
}

func (e *ExtractionError) sentinel() error {
	switch e.Kind {
	case KindEmptyInput:
		return ErrEmptyInput
	case KindMissingRequiredFields:
		return ErrMissingRequiredFields
	default:
		return ErrInternalParse
	}
}

func (e *ExtractionError) Error() string {
	if e.Kind == KindInternalParse && e.Err != nil {
		return fmt.Sprintf("%s: %v", ErrInternalParse, e.Err)
	}
	return e.sentinel().Error()
}

// Is matches the sentinel for the error's kind
func (e *ExtractionError) Is(target error) bool {
	return target == e.sentinel()
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// Detail describes the failure including which required fields were missing
func (e *ExtractionError) Detail() string {
	if e.Kind == KindMissingRequiredFields && len(e.Missing) > 0 {
		return fmt.Sprintf("%s; missing: %s", e.Error(), strings.Join(e.Missing, ", "))
	}
	return e.Error()
}

// KindOf returns the extraction error kind of err, or "" if err is not an extraction error
func KindOf(err error) ErrorKind {
	var extractionErr *ExtractionError
	if errors.As(err, &extractionErr) {
		return extractionErr.Kind
	}
	return ""
}
