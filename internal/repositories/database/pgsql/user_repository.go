package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/apperrors"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/core/domain"
	portsrepo "github.com/lautarocloudy/api-cuenta-corrientes/internal/core/ports/repositories"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/models"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/utils/mapping"
)

const userColumns = `id, nombre, email, contrasena_hash, rol, created_at, created_by, last_updated_at, last_updated_by`

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func scanUser(row pgx.Row) (models.User, error) {
	var m models.User
	err := row.Scan(
		&m.ID,
		&m.Nombre,
		&m.Email,
		&m.PasswordHash,
		&m.Rol,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		INSERT INTO usuarios (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ID,
		m.Nombre,
		m.Email,
		m.PasswordHash,
		m.Rol,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return mapStoreError(err, "failed to save user")
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM usuarios WHERE id = $1;`, userID)
}

// FindUserByEmail looks the user up by its normalised (lowercase) email.
func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM usuarios WHERE email = $1;`, email)
}

func (r *PgxUserRepository) findOne(ctx context.Context, query string, arg string) (*domain.User, error) {
	m, err := scanUser(r.Pool.QueryRow(ctx, query, arg))
	if err != nil {
		return nil, mapStoreError(err, "failed to find user")
	}
	user := mapping.ToDomainUser(m)
	return &user, nil
}

func (r *PgxUserRepository) FindUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+userColumns+` FROM usuarios ORDER BY nombre, id;`)
	if err != nil {
		return nil, mapStoreError(err, "failed to query users")
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		m, err := scanUser(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan user row", err)
		}
		users = append(users, mapping.ToDomainUser(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating user rows", err)
	}
	return users, nil
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		UPDATE usuarios
		SET nombre = $1, email = $2, rol = $3, last_updated_at = $4, last_updated_by = $5
		WHERE id = $6;
	`
	tag, err := r.Pool.Exec(ctx, query, m.Nombre, m.Email, m.Rol, m.LastUpdatedAt, m.LastUpdatedBy, m.ID)
	if err != nil {
		return mapStoreError(err, "failed to update user")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) UpdatePassword(ctx context.Context, userID string, passwordHash string, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE usuarios
		SET contrasena_hash = $1, last_updated_at = $2, last_updated_by = $3
		WHERE id = $4;
	`
	tag, err := r.Pool.Exec(ctx, query, passwordHash, updatedAt, updatedBy, userID)
	if err != nil {
		return mapStoreError(err, "failed to update password")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) DeleteUser(ctx context.Context, userID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM usuarios WHERE id = $1;`, userID)
	if err != nil {
		return mapStoreError(err, "failed to delete user")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
