// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for better error handling and API responses

package errors

import (
	"errors"
	"fmt"
)

// ConfigurationError represents a missing or invalid required setting
type ConfigurationError struct {
	Setting string
	Message string
}

// Error implements the error interface
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error for %s: %s", e.Setting, e.Message)
}

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// UpstreamAPIError represents a failed call to an external provider
type UpstreamAPIError struct {
	API        string
	StatusCode int
	Message    string
}

// Error implements the error interface
func (e *UpstreamAPIError) Error() string {
	return fmt.Sprintf("upstream API error from %s: %d - %s", e.API, e.StatusCode, e.Message)
}

// MappingError represents an upstream payload missing a required field
type MappingError struct {
	API   string
	Field string
}

// Error implements the error interface
func (e *MappingError) Error() string {
	return fmt.Sprintf("cannot map %s response: missing required field %s", e.API, e.Field)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var confErr *ConfigurationError
	return errors.As(err, &confErr)
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

// IsUpstreamAPI checks if an error is an UpstreamAPIError
func IsUpstreamAPI(err error) bool {
	var apiErr *UpstreamAPIError
	return errors.As(err, &apiErr)
}

// IsMapping checks if an error is a MappingError
func IsMapping(err error) bool {
	var mapErr *MappingError
	return errors.As(err, &mapErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
