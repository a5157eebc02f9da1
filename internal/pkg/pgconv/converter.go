// Package pgconv bridges pgx scan targets and domain types.
package pgconv

import (
	"signage-sync/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// UUIDPtrFromPgtype maps a nullable uuid column onto an optional reference.
func UUIDPtrFromPgtype(pu pgtype.UUID) *uuid.UUID {
	if !pu.Valid {
		return nil
	}
	id := uuid.UUID(pu.Bytes)
	return &id
}

func UUIDPtrToPgtype(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{}
	}
	return pgtype.UUID{Bytes: *id, Valid: true}
}

func IsNoRows(err error) bool {
	return errs.Is(err, pgx.ErrNoRows)
}
