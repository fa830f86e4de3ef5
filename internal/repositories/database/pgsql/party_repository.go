package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/apperrors"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/core/domain"
	portsrepo "github.com/lautarocloudy/api-cuenta-corrientes/internal/core/ports/repositories"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/models"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/utils/mapping"
)

const partyColumns = `id, nombre, domicilio, cuit, email, telefono, created_at, created_by, last_updated_at, last_updated_by`

// PgxPartyRepository stores clients and suppliers. Each kind lives in its own
// table with identical columns.
type PgxPartyRepository struct {
	BaseRepository
}

func newPgxPartyRepository(pool *pgxpool.Pool) portsrepo.PartyRepositoryFacade {
	return &PgxPartyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PartyRepositoryFacade = (*PgxPartyRepository)(nil)

func partyTable(kind domain.PartyKind) (string, error) {
	switch kind {
	case domain.PartyClient:
		return "clientes", nil
	case domain.PartySupplier:
		return "proveedores", nil
	}
	return "", fmt.Errorf("%w: unknown party kind %q", apperrors.ErrValidation, kind)
}

func scanParty(row pgx.Row) (models.Party, error) {
	var m models.Party
	err := row.Scan(
		&m.ID,
		&m.Nombre,
		&m.Domicilio,
		&m.CUIT,
		&m.Email,
		&m.Telefono,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxPartyRepository) queryParties(ctx context.Context, kind domain.PartyKind, query string, args ...any) ([]domain.Party, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, mapStoreError(err, "failed to query "+string(kind)+"s")
	}
	defer rows.Close()

	parties := []domain.Party{}
	for rows.Next() {
		m, err := scanParty(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan "+string(kind)+" row", err)
		}
		parties = append(parties, mapping.ToDomainParty(m, kind))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating "+string(kind)+" rows", err)
	}
	return parties, nil
}

func (r *PgxPartyRepository) FindPartyByID(ctx context.Context, kind domain.PartyKind, partyID string) (*domain.Party, error) {
	table, err := partyTable(kind)
	if err != nil {
		return nil, err
	}
	query := `SELECT ` + partyColumns + ` FROM ` + table + ` WHERE id = $1;`

	m, err := scanParty(r.Pool.QueryRow(ctx, query, partyID))
	if err != nil {
		return nil, mapStoreError(err, "failed to find "+string(kind)+" "+partyID)
	}
	party := mapping.ToDomainParty(m, kind)
	return &party, nil
}

func (r *PgxPartyRepository) ListParties(ctx context.Context, kind domain.PartyKind) ([]domain.Party, error) {
	table, err := partyTable(kind)
	if err != nil {
		return nil, err
	}
	return r.queryParties(ctx, kind, `SELECT `+partyColumns+` FROM `+table+` ORDER BY nombre, id;`)
}

// FindPartiesByNameFragment matches names case-insensitively. LIKE
// metacharacters in the fragment are matched literally.
func (r *PgxPartyRepository) FindPartiesByNameFragment(ctx context.Context, kind domain.PartyKind, fragment string) ([]domain.Party, error) {
	table, err := partyTable(kind)
	if err != nil {
		return nil, err
	}
	query := `SELECT ` + partyColumns + ` FROM ` + table + ` WHERE nombre ILIKE $1 ESCAPE '\' ORDER BY nombre, id;`
	return r.queryParties(ctx, kind, query, "%"+escapeLike(fragment)+"%")
}

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *PgxPartyRepository) SaveParty(ctx context.Context, party domain.Party) error {
	table, err := partyTable(party.Kind)
	if err != nil {
		return err
	}
	m := mapping.ToModelParty(party)
	query := `
		INSERT INTO ` + table + ` (` + partyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = r.Pool.Exec(ctx, query,
		m.ID,
		m.Nombre,
		m.Domicilio,
		m.CUIT,
		m.Email,
		m.Telefono,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return mapStoreError(err, "failed to save "+string(party.Kind))
	}
	return nil
}

func (r *PgxPartyRepository) UpdateParty(ctx context.Context, party domain.Party) error {
	table, err := partyTable(party.Kind)
	if err != nil {
		return err
	}
	m := mapping.ToModelParty(party)
	query := `
		UPDATE ` + table + `
		SET nombre = $1, domicilio = $2, cuit = $3, email = $4, telefono = $5,
		    last_updated_at = $6, last_updated_by = $7
		WHERE id = $8;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.Nombre,
		m.Domicilio,
		m.CUIT,
		m.Email,
		m.Telefono,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.ID,
	)
	if err != nil {
		return mapStoreError(err, "failed to update "+string(party.Kind))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteParty removes a party. Parties referenced by invoices or receipts
// are rejected by the foreign keys.
func (r *PgxPartyRepository) DeleteParty(ctx context.Context, kind domain.PartyKind, partyID string) error {
	table, err := partyTable(kind)
	if err != nil {
		return err
	}
	tag, err := r.Pool.Exec(ctx, `DELETE FROM `+table+` WHERE id = $1;`, partyID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return fmt.Errorf("%w: el %s tiene comprobantes asociados", apperrors.ErrValidation, kind)
		}
		return mapStoreError(err, "failed to delete "+string(kind)+" "+partyID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
