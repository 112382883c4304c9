// ABOUTME: Custom error types for the search core
// ABOUTME: Separates caller-visible validation errors from degradable dependency failures

package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ValidationError represents invalid caller input, e.g. a blank query
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ExternalAPIError represents an error from an external API
type ExternalAPIError struct {
	StatusCode int
	Message    string
	API        string
}

// Error implements the error interface
func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("external API error from %s: %d - %s", e.API, e.StatusCode, e.Message)
}

// SourceError reports that a single data source failed to answer a query.
// The search core absorbs it and treats the source as having no results.
type SourceError struct {
	Source string
	Query  string
	Err    error
}

// Error implements the error interface
func (e *SourceError) Error() string {
	return fmt.Sprintf("data source %s failed for query %q: %v", e.Source, e.Query, e.Err)
}

// Unwrap returns the underlying cause
func (e *SourceError) Unwrap() error {
	return e.Err
}

// HintError reports that the keyword hint provider could not answer.
// The search core absorbs it and continues without a hint.
type HintError struct {
	Provider string
	Err      error
}

// Error implements the error interface
func (e *HintError) Error() string {
	return fmt.Sprintf("hint provider %s unavailable: %v", e.Provider, e.Err)
}

// Unwrap returns the underlying cause
func (e *HintError) Unwrap() error {
	return e.Err
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsExternalAPI checks if an error is an ExternalAPIError
func IsExternalAPI(err error) bool {
	var apiErr *ExternalAPIError
	return errors.As(err, &apiErr)
}

// IsSource checks if an error is a SourceError
func IsSource(err error) bool {
	var sourceErr *SourceError
	return errors.As(err, &sourceErr)
}

// IsHint checks if an error is a HintError
func IsHint(err error) bool {
	var hintErr *HintError
	return errors.As(err, &hintErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
