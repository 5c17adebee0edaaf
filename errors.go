package fuzzy

import (
	"errors"
	"fmt"
)

// Construction errors. They are detected while a model is built, never
// during evaluation.
var (
	ErrDuplicateName    = errors.New("duplicate name")
	ErrUnknownReference = errors.New("unknown reference")
	ErrInvalidUniverse  = errors.New("invalid universe")
	ErrInvalidShape     = errors.New("invalid membership shape")
	ErrInvalidRule      = errors.New("invalid rule")
	ErrEmptyName        = errors.New("empty name")
)

// Evaluation errors. They abort a single Compute call.
var (
	ErrMissingInput             = errors.New("missing input")
	ErrInvalidInput             = errors.New("invalid input")
	ErrUndefinedDefuzzification = errors.New("undefined defuzzification")
)

// A ConstructionError is returned when a model, variable or universe cannot be built.
type ConstructionError struct {
	Kind    error
	Subject string
	Detail  string
}

func (e *ConstructionError) Error() string {
	msg := e.Kind.Error()
	if e.Subject != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Subject)
	}
	if e.Detail != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Detail)
	}
	return msg
}

// Unwrap returns the error kind
func (e *ConstructionError) Unwrap() error { return e.Kind }

// An EvaluationError is returned by Compute.
type EvaluationError struct {
	Kind     error
	Variable string
	Detail   string
}

func (e *EvaluationError) Error() string {
	msg := e.Kind.Error()
	if e.Variable != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Variable)
	}
	if e.Detail != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Detail)
	}
	return msg
}

// Unwrap returns the error kind
func (e *EvaluationError) Unwrap() error { return e.Kind }

func constructionErrorf(kind error, subject, format string, args ...interface{}) error {
	return &ConstructionError{Kind: kind, Subject: subject, Detail: fmt.Sprintf(format, args...)}
}
