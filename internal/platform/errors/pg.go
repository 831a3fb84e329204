package errors

import (
	"context"
	stderrs "errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes the platform reads can raise
const (
	pgErrUniqueViolation     = "23505"
	pgErrForeignKeyViolation = "23503"
	pgErrNotNullViolation    = "23502"
	pgErrCheckViolation      = "23514"
	pgErrInvalidText         = "22P02"

	pgErrSerializationFailure = "40001"
	pgErrDeadlockDetected     = "40P01"
	pgErrLockNotAvailable     = "55P03"
	pgErrQueryCanceled        = "57014"
	pgErrCannotConnectNow     = "57P03"
	pgErrAdminShutdown        = "57P01"
)

func pgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if stderrs.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// ConstraintViolation returns the PgError when err is an integrity constraint violation (SQLSTATE class 23)
func ConstraintViolation(err error) (*pgconn.PgError, bool) {
	pgErr, ok := pgError(err)
	if !ok || !strings.HasPrefix(pgErr.Code, "23") {
		return nil, false
	}
	return pgErr, true
}

// IsMissingReference reports whether a constraint violation points at a row that does not exist
func IsMissingReference(err error) bool {
	pgErr, ok := ConstraintViolation(err)
	if !ok {
		return false
	}
	if pgErr.Code == pgErrForeignKeyViolation {
		return true
	}
	return strings.Contains(strings.ToLower(pgErr.Message+" "+pgErr.Detail), "does not exist")
}

// dbCode maps a database failure to an ErrorCode
func dbCode(err error) ErrorCode {
	if stderrs.Is(err, pgx.ErrNoRows) {
		return ErrorCodeNotFound
	}
	pgErr, ok := pgError(err)
	if !ok {
		return ErrorCodeDB
	}
	switch pgErr.Code {
	case pgErrUniqueViolation:
		return ErrorCodeDuplicateKey
	case pgErrForeignKeyViolation:
		return ErrorCodeNotFound
	case pgErrNotNullViolation, pgErrCheckViolation:
		return ErrorCodeInvalidArgument
	case pgErrInvalidText:
		// a malformed ULID in a path parameter
		return ErrorCodeNotFound
	case pgErrCannotConnectNow, pgErrAdminShutdown:
		return ErrorCodeUnavailable
	}
	return ErrorCodeDB
}

// FromPostgres wraps a database error with its mapped code; nil stays nil
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	return Wrap(err, dbCode(err), msg)
}

// FromPostgresf is the formatted variant of FromPostgres
func FromPostgresf(err error, format string, a ...any) error {
	if err == nil {
		return nil
	}
	return Wrap(err, dbCode(err), fmt.Sprintf(format, a...))
}

// IsRetryable reports whether a database error is transient contention or a canceled statement
// caller cancellations are not retryable
func IsRetryable(err error) bool {
	if err == nil || stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return false
	}
	if pgErr, ok := pgError(err); ok {
		switch pgErr.Code {
		case pgErrSerializationFailure, pgErrDeadlockDetected, pgErrLockNotAvailable, pgErrQueryCanceled:
			return true
		}
		return false
	}
	s := strings.ToLower(Root(err).Error())
	return strings.Contains(s, "commit unexpectedly resulted in rollback") ||
		strings.Contains(s, "terminating connection due to administrator command")
}
