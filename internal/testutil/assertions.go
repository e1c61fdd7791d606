package testutil

import (
	"errors"
	"testing"

	apperrors "github.com/GCF14/JJ-Apartments-Property-Management-System/internal/errors"
	"github.com/GCF14/JJ-Apartments-Property-Management-System/internal/models"
)

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertExpenseEqual compares the persisted fields of two expenses, ignoring ID.
func AssertExpenseEqual(t *testing.T, got, want models.Expense) {
	t.Helper()

	if !got.Amount.Equal(want.Amount) {
		t.Errorf("expected amount %s, got %s", want.Amount, got.Amount)
	}
	if got.Reason != want.Reason {
		t.Errorf("expected reason %s, got %s", want.Reason, got.Reason)
	}
	if !got.Date.Equal(want.Date) {
		t.Errorf("expected date %s, got %s", want.Date, got.Date)
	}
}
