package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError_Error(t *testing.T) {
	err := &NotFoundError{Resource: "video", ID: "abc123"}

	expected := "video not found: abc123"
	if err.Error() != expected {
		t.Errorf("Error() = %s, want %s", err.Error(), expected)
	}
}

func TestConfigurationError_Error(t *testing.T) {
	err := &ConfigurationError{Setting: "YOUTUBE_API_KEY", Message: "not set"}

	expected := "configuration error for YOUTUBE_API_KEY: not set"
	if err.Error() != expected {
		t.Errorf("Error() = %s, want %s", err.Error(), expected)
	}
}

func TestUpstreamAPIError_Error(t *testing.T) {
	err := &UpstreamAPIError{API: "youtube", StatusCode: 503, Message: "unavailable"}

	expected := "upstream API error from youtube: 503 - unavailable"
	if err.Error() != expected {
		t.Errorf("Error() = %s, want %s", err.Error(), expected)
	}
}

func TestMappingError_Error(t *testing.T) {
	err := &MappingError{API: "instagram", Field: "media_url"}

	expected := "cannot map instagram response: missing required field media_url"
	if err.Error() != expected {
		t.Errorf("Error() = %s, want %s", err.Error(), expected)
	}
}

func TestIsNotFound(t *testing.T) {
	err := &NotFoundError{Resource: "channel", ID: "xyz"}

	if !IsNotFound(err) {
		t.Error("IsNotFound should return true for NotFoundError")
	}

	if IsNotFound(errors.New("plain error")) {
		t.Error("IsNotFound should return false for plain error")
	}
}

func TestIsNotFound_Wrapped(t *testing.T) {
	err := fmt.Errorf("lookup failed: %w", &NotFoundError{Resource: "video", ID: "v1"})

	if !IsNotFound(err) {
		t.Error("IsNotFound should unwrap wrapped errors")
	}
}

func TestIsConfiguration(t *testing.T) {
	err := &ConfigurationError{Setting: "INSTAGRAM_ACCESS_TOKEN", Message: "not set"}

	if !IsConfiguration(err) {
		t.Error("IsConfiguration should return true for ConfigurationError")
	}

	if IsConfiguration(&NotFoundError{}) {
		t.Error("IsConfiguration should return false for other error types")
	}
}

func TestIsUpstreamAPI(t *testing.T) {
	err := &UpstreamAPIError{API: "youtube", StatusCode: 500, Message: "boom"}

	if !IsUpstreamAPI(err) {
		t.Error("IsUpstreamAPI should return true for UpstreamAPIError")
	}

	if IsUpstreamAPI(nil) {
		t.Error("IsUpstreamAPI should return false for nil")
	}
}

func TestIsMapping(t *testing.T) {
	err := &MappingError{API: "youtube", Field: "id"}

	if !IsMapping(err) {
		t.Error("IsMapping should return true for MappingError")
	}

	if IsMapping(&UpstreamAPIError{}) {
		t.Error("IsMapping should return false for other error types")
	}
}

func TestIsValidation(t *testing.T) {
	err := &ValidationError{Field: "limit", Message: "must be between 1 and 12"}

	if !IsValidation(err) {
		t.Error("IsValidation should return true for ValidationError")
	}
}

func TestWrapError(t *testing.T) {
	base := errors.New("base error")
	wrapped := WrapError(base, "context")

	if wrapped.Error() != "context: base error" {
		t.Errorf("WrapError() = %s, want 'context: base error'", wrapped.Error())
	}

	if !errors.Is(wrapped, base) {
		t.Error("WrapError should preserve the error chain")
	}
}

func TestWrapError_Nil(t *testing.T) {
	if WrapError(nil, "context") != nil {
		t.Error("WrapError should return nil for nil error")
	}
}
