package infra

import (
	"log/slog"

	"signage-sync/internal/pkg/errs"
	"signage-sync/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindCheckViolated      RepositoryErrorKind = "CHECK_VIOLATED"
)

var pgCodeKinds = map[string]RepositoryErrorKind{
	"23505": KindDuplicateKey,
	"23503": KindForeignKeyViolated,
	"23514": KindCheckViolated,
}

// RepositoryError classifies a storage failure so use cases can react
// without importing pgx.
type RepositoryError struct {
	Kind RepositoryErrorKind
	// Constraint names the violated constraint, when Postgres reported one.
	Constraint string
	msg        string
	err        error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr classifies err from its Postgres error code unless an explicit
// kind is given. Unclassified failures are logged here since callers only
// see the kind.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k, constraint := classify(err)
	if len(kind) > 0 {
		k = kind[0]
	}
	if k == KindDBFailure {
		slog.Error("repository failure", "op", msg, "error", err)
	}
	return RepositoryError{Kind: k, Constraint: constraint, msg: msg, err: errs.Wrap(err, msg)}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errs.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func classify(err error) (RepositoryErrorKind, string) {
	if err == nil {
		return KindDBFailure, ""
	}
	if pgconv.IsNoRows(err) {
		return KindNotFound, ""
	}
	var pgErr *pgconn.PgError
	if errs.As(err, &pgErr) {
		if k, ok := pgCodeKinds[pgErr.Code]; ok {
			return k, pgErr.ConstraintName
		}
	}
	return KindDBFailure, ""
}
