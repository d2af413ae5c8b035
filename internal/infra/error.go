package infra

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"booking-checkout/internal/pkg/errs"
	"booking-checkout/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr classifies err from its Postgres error code unless an explicit kind is given.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k := classify(err)
	if len(kind) > 0 {
		k = kind[0]
	}

	logArgs := []any{
		slog.String("kind", string(k)),
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		logArgs = append(logArgs,
			slog.String("pg_code", pgErr.Code),
			slog.String("constraint", pgErr.ConstraintName),
		)
	}
	if k == KindDuplicateKey || k == KindNotFound {
		slog.Debug("Repository error: "+msg, logArgs...)
	} else {
		slog.Error("Repository error: "+msg, logArgs...)
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: k, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func classify(err error) RepositoryErrorKind {
	if err == nil {
		return KindDBFailure
	}
	if pgconv.IsNoRows(err) {
		return KindNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgErrUniqueViolation:
			return KindDuplicateKey
		case pgErr.Code == pgErrForeignKeyViolation:
			return KindForeignKeyViolated
		case pgErr.Code == pgErrCheckViolation, pgErr.Code == pgErrNotNullViolation:
			return KindConstraintViolation
		case strings.HasPrefix(pgErr.Code, pgErrClassConnection):
			return KindConnection
		}
		return KindDBFailure
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) || errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) {
		return KindConnection
	}
	return KindDBFailure
}

const (
	pgErrUniqueViolation     = "23505"
	pgErrForeignKeyViolation = "23503"
	pgErrCheckViolation      = "23514"
	pgErrNotNullViolation    = "23502"
	pgErrClassConnection     = "08"
)

// Infrastructure-specific error kinds
const (
	KindNotFound            RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure           RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey        RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated  RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindConstraintViolation RepositoryErrorKind = "CONSTRAINT_VIOLATION"
	KindConnection          RepositoryErrorKind = "CONNECTION_FAILURE"
)
