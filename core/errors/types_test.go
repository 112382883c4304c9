package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError_Error(t *testing.T) {
	err := &NotFoundError{
		Resource: "cultural entity",
		ID:       "42",
	}

	expected := "cultural entity not found: 42"
	if err.Error() != expected {
		t.Errorf("NotFoundError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Field:   "q",
		Message: "search keyword is required",
	}

	expected := "validation error on field 'q': search keyword is required"
	if err.Error() != expected {
		t.Errorf("ValidationError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestExternalAPIError_Error(t *testing.T) {
	err := &ExternalAPIError{
		StatusCode: 503,
		Message:    "service unavailable",
		API:        "aigc",
	}

	expected := "external API error from aigc: 503 - service unavailable"
	if err.Error() != expected {
		t.Errorf("ExternalAPIError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestSourceError_ErrorAndUnwrap(t *testing.T) {
	cause := errors.New("no such table: cultural_entities")
	err := &SourceError{Source: "cultural_entities", Query: "灯会", Err: cause}

	expected := `data source cultural_entities failed for query "灯会": no such table: cultural_entities`
	if err.Error() != expected {
		t.Errorf("SourceError.Error() = %v, want %v", err.Error(), expected)
	}
	if !errors.Is(err, cause) {
		t.Error("SourceError should unwrap to its cause")
	}
}

func TestHintError_ErrorAndUnwrap(t *testing.T) {
	cause := fmt.Errorf("request failed: %w", errors.New("deadline exceeded"))
	err := &HintError{Provider: "python", Err: cause}

	expected := "hint provider python unavailable: request failed: deadline exceeded"
	if err.Error() != expected {
		t.Errorf("HintError.Error() = %v, want %v", err.Error(), expected)
	}
	if !errors.Is(err, cause) {
		t.Error("HintError should unwrap to its cause")
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(&NotFoundError{Resource: "resource", ID: "abc"}) {
		t.Error("IsNotFound should return true for NotFoundError")
	}
	if IsNotFound(errors.New("some other error")) {
		t.Error("IsNotFound should return false for non-NotFoundError")
	}
	wrapped := fmt.Errorf("lookup failed: %w", &NotFoundError{Resource: "resource", ID: "abc"})
	if !IsNotFound(wrapped) {
		t.Error("IsNotFound should return true for wrapped NotFoundError")
	}
}

func TestIsValidation(t *testing.T) {
	if !IsValidation(&ValidationError{Field: "q", Message: "empty"}) {
		t.Error("IsValidation should return true for ValidationError")
	}
	if IsValidation(errors.New("some other error")) {
		t.Error("IsValidation should return false for non-ValidationError")
	}
}

func TestIsExternalAPI(t *testing.T) {
	if !IsExternalAPI(&ExternalAPIError{StatusCode: 500, API: "aigc"}) {
		t.Error("IsExternalAPI should return true for ExternalAPIError")
	}
	if IsExternalAPI(errors.New("some other error")) {
		t.Error("IsExternalAPI should return false for non-ExternalAPIError")
	}
}

func TestIsSourceAndIsHint(t *testing.T) {
	sourceErr := WrapError(&SourceError{Source: "cultural_resources", Err: errors.New("boom")}, "fanout")
	if !IsSource(sourceErr) {
		t.Error("IsSource should see through WrapError")
	}
	if IsHint(sourceErr) {
		t.Error("IsHint should return false for SourceError")
	}

	hintErr := &HintError{Provider: "llm", Err: errors.New("malformed response")}
	if !IsHint(hintErr) {
		t.Error("IsHint should return true for HintError")
	}
	if IsSource(hintErr) {
		t.Error("IsSource should return false for HintError")
	}
}

func TestWrapError_PreservesOriginalError(t *testing.T) {
	originalErr := &NotFoundError{Resource: "entity", ID: "abc"}
	wrappedErr := WrapError(originalErr, "failed to load entity")

	if wrappedErr == nil {
		t.Fatal("WrapError should not return nil for non-nil error")
	}

	expectedMsg := "failed to load entity: entity not found: abc"
	if wrappedErr.Error() != expectedMsg {
		t.Errorf("WrapError message = %v, want %v", wrappedErr.Error(), expectedMsg)
	}

	if !IsNotFound(wrappedErr) {
		t.Error("Wrapped error should still be identifiable as NotFoundError")
	}
}

func TestWrapError_NilError(t *testing.T) {
	if WrapError(nil, "some context") != nil {
		t.Error("WrapError should return nil when wrapping nil error")
	}
}
