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

	// Validation errors
	ErrValidation      = errors.New("validation error")
	ErrEmptyValue      = errors.New("value cannot be empty")
	ErrValueOutOfRange = errors.New("value out of range")

	// Precondition errors
	ErrInvalidArgument = errors.New("invalid argument")
)

// DomainError represents a domain-specific error with context.
type DomainError struct {
	Domain  string // e.g., "student", "grades", "csvstore"
	Op      string // Operation that failed, e.g., "Add", "Average"
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

// Student domain errors
var (
	ErrInvalidStudentID = NewDomainError("student", "Validate", ErrEmptyValue, "student id cannot be blank")
	ErrInvalidName      = NewDomainError("student", "Validate", ErrEmptyValue, "student name cannot be blank")
	ErrInvalidAge       = NewDomainError("student", "Validate", ErrValueOutOfRange, "student age must be between 0 and 150")
	ErrNilStudent       = NewDomainError("student", "Add", ErrInvalidArgument, "student cannot be nil")
	ErrNilPredicate     = NewDomainError("student", "Find", ErrInvalidArgument, "predicate cannot be nil")
	ErrInvalidAgeRange  = NewDomainError("student", "ByAgeRange", ErrInvalidArgument, "age range must satisfy 0 <= min <= max")
	ErrDuplicateStudent = NewDomainError("student", "Add", ErrAlreadyExists, "student with this id already exists")
	ErrStudentNotFound  = NewDomainError("student", "Get", ErrNotFound, "student not found")
)

// Grades domain errors
var (
	ErrInvalidSubject = NewDomainError("grades", "Validate", ErrEmptyValue, "subject cannot be blank")
	ErrInvalidPoints  = NewDomainError("grades", "Validate", ErrValueOutOfRange, "points must be between 0 and 100")
	ErrBlankStudentID = NewDomainError("grades", "Validate", ErrInvalidArgument, "student id cannot be blank")
	ErrZeroScore      = NewDomainError("grades", "AddScore", ErrInvalidArgument, "score is missing or invalid")
	ErrInvalidTopN    = NewDomainError("grades", "TopStudents", ErrInvalidArgument, "count must be at least 1")
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
		errors.Is(err, ErrEmptyValue) ||
		errors.Is(err, ErrValueOutOfRange)
}

// IsInvalidArgument checks if the error is a violated method precondition.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}
