package services

import (
	"errors"
	"fmt"
	"log"

	"walletvault/internal/models"
	"walletvault/internal/phrase"
	"walletvault/internal/repositories"
	"walletvault/internal/utils"
)

type CredentialService interface {
	// GetOrCreate returns the credential for an address, materializing it on
	// first use. created reports whether this call inserted the row.
	GetOrCreate(address string) (cred *models.WalletCredential, created bool, err error)
}

type credentialService struct {
	repo    repositories.CredentialRepository
	deriver *phrase.Deriver
}

func NewCredentialService(repo repositories.CredentialRepository, deriver *phrase.Deriver) CredentialService {
	return &credentialService{repo: repo, deriver: deriver}
}

// GetOrCreate is idempotent under concurrency: get, derive+insert on miss,
// and on a unique-constraint conflict re-read the row the winner persisted.
// Every racing caller observes the same final phrase. Storage errors
// propagate; a phrase is never fabricated past a failing store.
func (s *credentialService) GetOrCreate(address string) (*models.WalletCredential, bool, error) {
	addr, err := utils.NormalizeAddress(address)
	if err != nil {
		return nil, false, err
	}

	cred, err := s.repo.GetByAddress(addr)
	if err == nil {
		return cred, false, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, false, fmt.Errorf("get credential: %w", err)
	}

	p := s.deriver.Derive(addr)
	cred = &models.WalletCredential{
		WalletAddress:     addr,
		SeedPhrase:        p,
		PhraseFingerprint: phrase.Fingerprint(p),
	}
	err = s.repo.Insert(cred)
	if err == nil {
		log.Printf("[credential][get-or-create] created row for %s", utils.MaskAddress(addr))
		return cred, true, nil
	}
	if !errors.Is(err, repositories.ErrConflict) {
		return nil, false, fmt.Errorf("insert credential: %w", err)
	}

	// Lost the race; the winner's row is visible now.
	cred, err = s.repo.GetByAddress(addr)
	if err != nil {
		return nil, false, fmt.Errorf("re-read credential after conflict: %w", err)
	}
	return cred, false, nil
}
