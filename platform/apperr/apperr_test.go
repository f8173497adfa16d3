package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestGetKindFollowsWrappedErrors(t *testing.T) {
	base := Unavailable("catalog source unavailable", errors.New("connection refused"))
	wrapped := fmt.Errorf("load snapshot: %w", base)

	if got := GetKind(wrapped); got != KindUnavailable {
		t.Fatalf("expected KindUnavailable, got %q", got)
	}
	if !Is(wrapped, KindUnavailable) {
		t.Fatalf("expected Is to match wrapped unavailable error")
	}
	if GetKind(errors.New("plain")) != KindUnknown {
		t.Fatalf("expected KindUnknown for untyped error")
	}
}

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		err  *Error
		want int
	}{
		{Validation("area must not be negative"), http.StatusBadRequest},
		{NotFound("regulation not found"), http.StatusNotFound},
		{Internal("boom"), http.StatusInternalServerError},
		{Unavailable("source unavailable", nil), http.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		if got := tc.err.HTTPStatus(); got != tc.want {
			t.Fatalf("%q: expected status %d, got %d", tc.err.Message, tc.want, got)
		}
	}
}

func TestErrorMessageIncludesOpAndCause(t *testing.T) {
	err := Unavailable("source unavailable", errors.New("timeout")).WithOp("catalog.labor")
	want := "catalog.labor: source unavailable: timeout"
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
}

func TestUnknownKindIsInternalServerError(t *testing.T) {
	err := &Error{Message: "unclassified"}
	if err.HTTPStatus() != http.StatusInternalServerError {
		t.Fatalf("expected 500 for unknown kind, got %d", err.HTTPStatus())
	}
}
