package queries

import (
	"context"
	"errors"

	"tourbook/internal/pkg/errs"
	"tourbook/internal/pkg/vault"

	"github.com/google/uuid"
)

type CredentialReadRepo interface {
	// FindCiphertext returns the sealed secret for a user/kind pair, or
	// errs.ErrCredentialNotFound when the slot was never set.
	FindCiphertext(ctx context.Context, userID uuid.UUID, kind string) (string, error)
}

type CredentialQueries interface {
	// GetDecrypted returns the plaintext secret, or an empty string when
	// the credential slot is unset. Decryption failures surface as errors;
	// an unset slot is not an error.
	GetDecrypted(ctx context.Context, userID uuid.UUID, kind string) (string, error)
}

type credentialQueriesImpl struct {
	repo   CredentialReadRepo
	cipher *vault.Cipher
}

func NewCredentialQueries(repo CredentialReadRepo, cipher *vault.Cipher) CredentialQueries {
	return &credentialQueriesImpl{repo: repo, cipher: cipher}
}

func (q *credentialQueriesImpl) GetDecrypted(ctx context.Context, userID uuid.UUID, kind string) (string, error) {
	ciphertext, err := q.repo.FindCiphertext(ctx, userID, kind)
	if err != nil {
		if errors.Is(err, errs.ErrCredentialNotFound) {
			return "", nil
		}
		return "", err
	}

	plaintext, err := q.cipher.Decrypt(ciphertext)
	if err != nil {
		return "", errs.Wrap(err, "failed to decrypt credential")
	}
	return plaintext, nil
}
