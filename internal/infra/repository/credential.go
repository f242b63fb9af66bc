package repository

import (
	"context"

	"tourbook/internal/infra"
	"tourbook/internal/pkg/errs"
	"tourbook/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CredentialRepository stores per-user secrets as opaque ciphertext. The
// database never sees plaintext; encryption and decryption happen in the
// application against the vault master key.
type CredentialRepository struct {
	pool *pgxpool.Pool
}

func NewCredentialRepository(pool *pgxpool.Pool) *CredentialRepository {
	return &CredentialRepository{pool: pool}
}

func (r *CredentialRepository) FindCiphertext(ctx context.Context, userID uuid.UUID, kind string) (string, error) {
	const sql = `
		SELECT ciphertext
		FROM user_credentials
		WHERE user_id = $1 AND kind = $2
	`

	var ciphertext string
	err := r.pool.QueryRow(ctx, sql, userID, kind).Scan(&ciphertext)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return "", errs.Mark(err, errs.ErrCredentialNotFound)
		}
		return "", infra.WrapRepoErr("failed to find credential", err)
	}
	return ciphertext, nil
}
