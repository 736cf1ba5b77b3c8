package chat

import "fmt"

// Kind classifies a validation failure.
type Kind string

const (
	InvalidProvider      Kind = "InvalidProvider"
	MissingField         Kind = "MissingField"
	EmptyMessage         Kind = "EmptyMessage"
	NoProviderConfigured Kind = "NoProviderConfigured"
	GuardrailViolation   Kind = "GuardrailViolation"
)

// ValidationError is a client mistake. It is never retried.
type ValidationError struct {
	Kind    Kind
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(kind Kind, format string, args ...any) *ValidationError {
	return &ValidationError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func missing(field, label string) *ValidationError {
	return &ValidationError{Kind: MissingField, Field: field, Message: label + " is required"}
}
