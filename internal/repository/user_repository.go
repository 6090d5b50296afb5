package repository

import (
	"context"
	"errors"
	"strings"

	"talent-match/internal/database"
	"talent-match/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const selectUser = `SELECT u.id, u.first_name, u.last_name, u.email, u.password_hash, ro.name,
        COALESCE(u.job_title, ''), u.open_to_work, u.status, u.created_at
 FROM users u
 JOIN roles ro ON ro.id = u.role_id`

type PostgresUserRepository struct {
	db database.Querier
}

var _ user.Repository = (*PostgresUserRepository)(nil)

func NewPostgresUserRepository(db database.Querier) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	return r.scanOne(r.db.QueryRow(ctx, selectUser+` WHERE u.id = $1`, id))
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return r.scanOne(r.db.QueryRow(ctx, selectUser+` WHERE lower(u.email) = $1`, strings.ToLower(email)))
}

func (r *PostgresUserRepository) scanOne(row database.Row) (user.User, error) {
	var u user.User
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.Role,
		&u.JobTitle, &u.OpenToWork, &u.Status, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}
