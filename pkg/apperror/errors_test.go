package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestMapErrorToStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{ErrNotFound, http.StatusNotFound},
		{ErrUnauthorized, http.StatusUnauthorized},
		{ErrForbidden, http.StatusForbidden},
		{ErrConflict, http.StatusConflict},
		{ErrBadRequest, http.StatusBadRequest},
		{ErrInvalidInput, http.StatusBadRequest},
		{ErrRateLimitExceeded, http.StatusTooManyRequests},
		{ErrRegistrationClosed, http.StatusForbidden},
		{errors.New("anything else"), http.StatusInternalServerError},
		{fmt.Errorf("wrapped: %w", ErrNotFound), http.StatusNotFound},
	}

	for _, tc := range cases {
		if got := MapErrorToStatus(tc.err); got != tc.want {
			t.Errorf("MapErrorToStatus(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestAppErrorCodeWins(t *testing.T) {
	err := New(http.StatusConflict, "sudah diproses", ErrConflict)
	if got := MapErrorToStatus(err); got != http.StatusConflict {
		t.Fatalf("status = %d, want 409", got)
	}

	// A wrapped AppError still carries its code.
	wrapped := fmt.Errorf("context: %w", New(http.StatusForbidden, "ditolak", ErrForbidden))
	if got := MapErrorToStatus(wrapped); got != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", got)
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	err := New(409, "konflik", ErrConflict)
	if !errors.Is(err, ErrConflict) {
		t.Fatal("AppError must unwrap to its sentinel")
	}
	if err.Error() != ErrConflict.Error() {
		t.Fatalf("Error() = %q", err.Error())
	}
}
