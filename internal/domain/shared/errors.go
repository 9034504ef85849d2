// Package shared contains common domain types and errors that are used
// across all domain packages. This package has zero external dependencies.
package shared

import (
	"errors"
	"fmt"
)

// Base domain errors that can be used for error checking with errors.Is().
var (
	// Entity errors
	ErrNotFound      = errors.New("entity not found")
	ErrAlreadyExists = errors.New("entity already exists")
	ErrInvalidEntity = errors.New("invalid entity")

	// Validation errors
	ErrValidation    = errors.New("validation error")
	ErrInvalidID     = errors.New("invalid ID")
	ErrInvalidInput  = errors.New("invalid input")
	ErrEmptyValue    = errors.New("value cannot be empty")
	ErrNegativeValue = errors.New("value cannot be negative")

	// State errors
	ErrInvalidState = errors.New("invalid state")
)

// DomainError represents a domain-specific error with context.
type DomainError struct {
	Domain  string // e.g., "qa", "feed"
	Op      string // Operation that failed, e.g., "AddVote", "SetTitle"
	Kind    error  // Base error type for errors.Is() checking
	Message string // Human-readable message
	Err     error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s.%s: %s: %v", e.Domain, e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s.%s: %s", e.Domain, e.Op, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap().
func (e *DomainError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

// Is implements errors.Is() matching.
func (e *DomainError) Is(target error) bool {
	if e.Kind != nil && errors.Is(e.Kind, target) {
		return true
	}
	if e.Err != nil && errors.Is(e.Err, target) {
		return true
	}
	return false
}

// NewDomainError creates a new domain error.
func NewDomainError(domain, op string, kind error, message string) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
	}
}

// WrapError wraps an existing error with domain context.
func WrapError(domain, op string, kind error, message string, err error) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// Q&A domain errors
var (
	ErrDuplicateVote    = NewDomainError("qa", "AddVote", ErrAlreadyExists, "user has already voted on this target")
	ErrDuplicateTopic   = NewDomainError("qa", "AddTopic", ErrAlreadyExists, "topic already attached to this question")
	ErrInvalidTitle     = NewDomainError("qa", "SetTitle", ErrEmptyValue, "title must be a non-empty string")
	ErrEmptyUsername    = NewDomainError("qa", "Validate", ErrEmptyValue, "username cannot be empty")
	ErrEmptyPassword    = NewDomainError("qa", "Validate", ErrEmptyValue, "password cannot be empty")
	ErrUserNotFound     = NewDomainError("qa", "Find", ErrNotFound, "user not found")
	ErrUserExists       = NewDomainError("qa", "Create", ErrAlreadyExists, "username already taken")
	ErrTopicNotFound    = NewDomainError("qa", "FindTopic", ErrNotFound, "topic not found")
	ErrQuestionNotFound = NewDomainError("qa", "FindQuestion", ErrNotFound, "question not found")
	ErrAnswerNotFound   = NewDomainError("qa", "FindAnswer", ErrNotFound, "answer not found")
	ErrVotableNotFound  = NewDomainError("qa", "FindVotable", ErrNotFound, "votable target not found")
)

// Feed domain errors
var (
	ErrUnknownFeedKind = NewDomainError("feed", "Retrieve", ErrInvalidInput, "unknown retrieval kind")
	ErrNilRequester    = NewDomainError("feed", "Retrieve", ErrInvalidInput, "requesting user is required")
)

// IsNotFound checks if the error is a "not found" error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if the error is an "already exists" error.
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidation checks if the error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrInvalidID) ||
		errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrEmptyValue) ||
		errors.Is(err, ErrNegativeValue)
}
