package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		e := NewDomainErrorSimple("VISIT_NOT_FOUND", "Visit not found", http.StatusNotFound)
		if e.Error() != "Visit not found" || e.Unwrap() != nil {
			t.Fatalf("unexpected error: %v", e)
		}
		if body := e.ToHTTPError(); body.Code != "VISIT_NOT_FOUND" || body.Message != "Visit not found" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("wrapped cause", func(t *testing.T) {
		cause := errors.New("disk full")
		e := NewDomainError("STORAGE_FAILURE", "Could not save data", cause, http.StatusServiceUnavailable)
		if !errors.Is(e, cause) {
			t.Fatalf("expected cause to be reachable")
		}
		if e.Error() != "Could not save data: disk full" {
			t.Fatalf("unexpected message %q", e.Error())
		}
		if body := e.ToHTTPError(); body.Message != "Could not save data" {
			t.Fatalf("cause must not leak: %+v", body)
		}
	})
}
