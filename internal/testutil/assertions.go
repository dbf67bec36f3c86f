package testutil

import (
	"errors"
	"testing"

	apperrors "stockswipe/internal/errors"
)

// AssertAppError checks that err carries the sentinel's code and HTTP status.
// Messages are not compared, so WithMessage variants still match.
func AssertAppError(t *testing.T, err error, want *apperrors.AppError) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected %s, got nil", want.Code)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError %s, got %T: %v", want.Code, err, err)
	}
	if appErr.Code != want.Code {
		t.Errorf("expected error code %q, got %q (message: %s)", want.Code, appErr.Code, appErr.Message)
	}
	if appErr.StatusCode != want.StatusCode {
		t.Errorf("expected status %d for %s, got %d", want.StatusCode, want.Code, appErr.StatusCode)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
