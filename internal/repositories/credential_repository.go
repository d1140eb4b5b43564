package repositories

import (
	"database/sql"
	"errors"

	"walletvault/internal/models"
)

type CredentialRepository interface {
	GetByAddress(address string) (*models.WalletCredential, error)
	GetByFingerprint(fingerprint string) (*models.WalletCredential, error)
	Insert(cred *models.WalletCredential) error
}

type credentialRepository struct {
	DB *sql.DB
}

func NewCredentialRepository(db *sql.DB) CredentialRepository {
	return &credentialRepository{DB: db}
}

func (r *credentialRepository) GetByAddress(address string) (*models.WalletCredential, error) {
	const q = `
		SELECT wallet_address, seed_phrase, phrase_fingerprint, created_at, updated_at
		FROM wallet_credentials
		WHERE wallet_address = $1
	`
	cred := &models.WalletCredential{}
	err := r.DB.QueryRow(q, address).Scan(
		&cred.WalletAddress, &cred.SeedPhrase, &cred.PhraseFingerprint,
		&cred.CreatedAt, &cred.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return cred, nil
}

func (r *credentialRepository) GetByFingerprint(fingerprint string) (*models.WalletCredential, error) {
	const q = `
		SELECT wallet_address, seed_phrase, phrase_fingerprint, created_at, updated_at
		FROM wallet_credentials
		WHERE phrase_fingerprint = $1
	`
	cred := &models.WalletCredential{}
	err := r.DB.QueryRow(q, fingerprint).Scan(
		&cred.WalletAddress, &cred.SeedPhrase, &cred.PhraseFingerprint,
		&cred.CreatedAt, &cred.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return cred, nil
}

// Insert creates the credential row. A concurrent creator for the same
// address surfaces as ErrConflict via the wallet_address unique constraint.
func (r *credentialRepository) Insert(cred *models.WalletCredential) error {
	const q = `
		INSERT INTO wallet_credentials (wallet_address, seed_phrase, phrase_fingerprint)
		VALUES ($1, $2, $3)
		RETURNING created_at, updated_at
	`
	err := r.DB.QueryRow(q, cred.WalletAddress, cred.SeedPhrase, cred.PhraseFingerprint).
		Scan(&cred.CreatedAt, &cred.UpdatedAt)
	if err != nil {
		return mapInsertErr(err)
	}
	return nil
}
