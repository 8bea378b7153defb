package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("keys", "", "at least one key is required")

	if !errors.Is(err, ErrInvalidInput) {
		t.Error("ValidationError should match ErrInvalidInput")
	}
	if !IsValidationError(err) {
		t.Error("IsValidationError should return true")
	}

	want := "validation failed for input keys: at least one key is required"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestValidationError_NoField(t *testing.T) {
	err := &ValidationError{Message: "something went wrong"}
	if err.Error() != "validation failed: something went wrong" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestAPIError_NotFoundClassification(t *testing.T) {
	notFound := NewAPIError("/variables/MISSING", http.StatusNotFound, "no such variable")
	if !IsNotFound(notFound) {
		t.Error("404 APIError should match ErrNotFound")
	}

	serverErr := NewAPIError("/variables/KEY", http.StatusInternalServerError, "boom")
	if IsNotFound(serverErr) {
		t.Error("500 APIError should not match ErrNotFound")
	}

	// Wrapped errors keep their classification.
	wrapped := fmt.Errorf("deleting variable: %w", notFound)
	if !IsNotFound(wrapped) {
		t.Error("wrapped 404 APIError should still match ErrNotFound")
	}
}

func TestParseError_Unwrap(t *testing.T) {
	inner := errors.New("unexpected end of JSON input")
	err := WrapParse("json", "", inner)

	if !errors.Is(err, inner) {
		t.Error("WrapParse should preserve the inner error")
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatal("expected a *ParseError")
	}
	if parseErr.Format != "json" {
		t.Errorf("Format = %q, want json", parseErr.Format)
	}
}

func TestIOError_Message(t *testing.T) {
	inner := errors.New("no such file or directory")
	err := NewIOError("read", "/tmp/missing.env", inner)

	want := "IO error during read of /tmp/missing.env: no such file or directory"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, inner) {
		t.Error("IOError should unwrap to the inner error")
	}
}

func TestWrapHelpers_NilPassthrough(t *testing.T) {
	if WrapIO("read", "path", nil) != nil {
		t.Error("WrapIO(nil) should be nil")
	}
	if WrapParse("json", "", nil) != nil {
		t.Error("WrapParse(nil) should be nil")
	}
}
