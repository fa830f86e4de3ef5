package pgsql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/apperrors"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgInvalidTextRepr     = "22P02"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	return tx, nil
}

// snapshotTxOptions makes every statement of a read see the same committed
// state, so a document header and its child rows always agree.
var snapshotTxOptions = pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}

// BeginSnapshot starts a read-only repeatable-read transaction
func (r *BaseRepository) BeginSnapshot(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.BeginTx(ctx, snapshotTxOptions)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin read transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) && !errors.Is(err, sql.ErrTxDone) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

// mapStoreError translates driver errors into application errors. Anything
// not recognised is reported as a 500, which callers see as store unavailable.
func mapStoreError(err error, msg string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return apperrors.NewAppError(409, msg, apperrors.ErrDuplicate)
		case pgForeignKeyViolation:
			return apperrors.NewAppError(400, msg, apperrors.ErrValidation)
		case pgInvalidTextRepr:
			// malformed UUID in a lookup: nothing can match it
			return apperrors.ErrNotFound
		}
	}
	return apperrors.NewAppError(500, msg, err)
}
