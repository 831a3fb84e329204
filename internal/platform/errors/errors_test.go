package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusCode(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeUnauthorized, http.StatusUnauthorized},
		{ErrorCodeForbidden, http.StatusForbidden},
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeInvalidArgument, http.StatusUnprocessableEntity},
		{ErrorCodeConflict, http.StatusUnprocessableEntity},
		{ErrorCodeDuplicateKey, http.StatusUnprocessableEntity},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeJSON, http.StatusBadRequest},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodeDB, http.StatusInternalServerError},
		{ErrorCodePanic, http.StatusInternalServerError},
		{ErrorCodeUnknown, http.StatusInternalServerError},
		{ErrorCode(999), http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := HTTPStatusCode(c.code); got != c.want {
			t.Fatalf("HTTPStatusCode(%d) got %d want %d", c.code, got, c.want)
		}
	}
}

func TestPublic(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{Unauthorizedf("token %s revoked", "abc"), "Unauthorized"},
		{Forbiddenf("boundary"), "Forbidden"},
		{NotFoundf("status %s", "01H"), "Not found"},
		{InvalidArgf("poll expired"), "Validation failed: poll expired"},
		{New(ErrorCodeConflict, "already voted"), "Validation failed: already voted"},
		{New(ErrorCodeValidation, "limit must be a number"), "limit must be a number"},
		{JSONErrf("bad body"), "bad body"},
		{Unavailablef("platform down"), "Service unavailable"},
		{Internalf("secret detail"), "Internal server error"},
	}
	for _, c := range cases {
		e, ok := As(c.err)
		if !ok {
			t.Fatalf("%v is not *Error", c.err)
		}
		if got := e.Public(); got != c.want {
			t.Fatalf("Public(%v) got %q want %q", c.err, got, c.want)
		}
	}
}

func TestWrap_KeepsCauseAndMessage(t *testing.T) {
	root := stderrs.New("connection reset")
	err := Wrapf(root, ErrorCodeUnavailable, "graphql %s", "StatusById")
	if !stderrs.Is(err, root) {
		t.Fatal("Is should reach the cause")
	}
	if err.Error() != "graphql StatusById: connection reset" {
		t.Fatalf("Error() got %q", err.Error())
	}
	e, _ := As(err)
	if e.Message() != "graphql StatusById" {
		t.Fatalf("Message() got %q", e.Message())
	}
	if Root(fmt.Errorf("outer: %w", err)) != root {
		t.Fatal("Root should return the deepest cause")
	}
	if Root(nil) != nil {
		t.Fatal("Root(nil) should be nil")
	}
}

func TestCodeOf_ThroughWrapping(t *testing.T) {
	err := fmt.Errorf("handler: %w", Wrap(stderrs.New("x"), ErrorCodeForbidden, "denied"))
	if CodeOf(err) != ErrorCodeForbidden || !IsCode(err, ErrorCodeForbidden) {
		t.Fatalf("CodeOf got %v", CodeOf(err))
	}
	if HTTPStatus(err) != http.StatusForbidden {
		t.Fatalf("HTTPStatus got %d", HTTPStatus(err))
	}
	if CodeOf(stderrs.New("plain")) != ErrorCodeUnknown {
		t.Fatal("foreign errors are Unknown")
	}
}

func TestWithField_CopyOnWrite(t *testing.T) {
	orig := New(ErrorCodeValidation, "required")
	withF := WithField(orig, "poll_id")

	e0, _ := As(orig)
	e1, _ := As(withF)
	if e0.Field() != "" || e1.Field() != "poll_id" {
		t.Fatalf("fields got %q and %q", e0.Field(), e1.Field())
	}

	foreign := stderrs.New("plain")
	if WithField(foreign, "x") != foreign {
		t.Fatal("foreign errors pass through")
	}
}

func TestNilError(t *testing.T) {
	var e *Error
	if e.Error() != "<nil>" {
		t.Fatalf("nil Error() got %q", e.Error())
	}
	if !IsCode(ErrNotFound, ErrorCodeNotFound) {
		t.Fatal("ErrNotFound code")
	}
}
