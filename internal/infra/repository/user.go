package repository

import (
	"context"
	"time"

	"tourbook/internal/domain/user"
	"tourbook/internal/infra"
	"tourbook/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*user.User, error) {
	const sql = `
		SELECT id, email, password_hash, role, is_active, created_at
		FROM users
		WHERE email = $1
	`

	var (
		id           uuid.UUID
		emailRaw     string
		passwordHash string
		role         string
		isActive     bool
		createdAt    time.Time
	)
	err := r.pool.QueryRow(ctx, sql, email.Value()).Scan(
		&id, &emailRaw, &passwordHash, &role, &isActive, &createdAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}

	emailVO, err := user.NewEmail(emailRaw)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored email", err)
	}

	u, err := user.ReconstructUser(id, emailVO, passwordHash, user.Role(role), isActive, createdAt)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored user", err)
	}
	return u, nil
}
