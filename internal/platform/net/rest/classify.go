package rest

import (
	stderrs "errors"
	"net/http"
	"strings"

	perr "mastoshim/internal/platform/errors"
	"mastoshim/internal/platform/graphql"
)

// Reason is a plain tagged failure, such as "not_found" or "poll expired"
type Reason string

func (r Reason) Error() string { return string(r) }

// Errors with a fixed public message
const (
	msgUnauthorized = "Unauthorized"
	msgForbidden    = "Forbidden"
	msgNotFound     = "Not found"
	msgInternal     = "Internal server error"
)

// ErrUnexpected tags a result that matched no row of the decision table
var ErrUnexpected = stderrs.New("unexpected result shape")

// Classified is the HTTP rendering of a failure
type Classified struct {
	Status  int
	Message string
	// Details carries diagnostics; never written in production
	Details any
}

// Classify maps a failure to a status and public message
func Classify(err error) Classified {
	if err == nil {
		return Classified{Status: http.StatusInternalServerError, Message: msgInternal, Details: ErrUnexpected.Error()}
	}

	if pgErr, ok := perr.ConstraintViolation(err); ok {
		msg := strings.TrimSpace(pgErr.Message)
		if perr.IsMissingReference(err) {
			return Classified{Status: http.StatusNotFound, Message: msgNotFound, Details: msg}
		}
		return Classified{Status: http.StatusUnprocessableEntity, Message: "Validation failed: " + msg}
	}

	var gqlErrs graphql.Errors
	if stderrs.As(err, &gqlErrs) && len(gqlErrs) > 0 {
		first := gqlErrs[0]
		return Classified{Status: graphQLStatus(first), Message: first.Message, Details: []graphql.Error(gqlErrs)}
	}

	if e, ok := perr.As(err); ok {
		if c, ok := fromCode(e); ok {
			return c
		}
	}

	var reason Reason
	if stderrs.As(err, &reason) {
		return fromText(string(reason), true)
	}

	if c := fromText(err.Error(), false); c.Status != 0 {
		return c
	}
	return Classified{Status: http.StatusInternalServerError, Message: msgInternal, Details: err.Error()}
}

func graphQLStatus(e graphql.Error) int {
	switch e.Code() {
	case "unauthenticated", "unauthorized", "401":
		return http.StatusUnauthorized
	case "not_found", "404":
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

func fromCode(e *perr.Error) (Classified, bool) {
	switch e.Code() {
	case perr.ErrorCodeUnauthorized, perr.ErrorCodeForbidden, perr.ErrorCodeNotFound,
		perr.ErrorCodeInvalidArgument, perr.ErrorCodeConflict, perr.ErrorCodeDuplicateKey,
		perr.ErrorCodeValidation, perr.ErrorCodeJSON:
		return Classified{Status: perr.HTTPStatusCode(e.Code()), Message: e.Public()}, true
	}
	return Classified{}, false
}

// fromText matches the well known reason spellings; plain reasons become a 400
func fromText(s string, isReason bool) Classified {
	t := strings.ToLower(strings.TrimSpace(s))
	norm := strings.ReplaceAll(t, "_", " ")
	switch {
	case norm == "unauthorized", norm == "unauthenticated", strings.Contains(norm, "not authenticated"):
		return Classified{Status: http.StatusUnauthorized, Message: msgUnauthorized}
	case strings.Contains(norm, "forbidden"), strings.Contains(norm, "permission denied"), strings.Contains(norm, "not permitted"):
		return Classified{Status: http.StatusForbidden, Message: msgForbidden}
	case strings.Contains(norm, "not found"), strings.Contains(norm, "does not exist"):
		return Classified{Status: http.StatusNotFound, Message: msgNotFound}
	}
	if isReason && t != "" {
		return Classified{Status: http.StatusBadRequest, Message: s}
	}
	return Classified{}
}
