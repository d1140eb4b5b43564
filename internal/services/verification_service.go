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

// Verification sources, in trust order. The stored row is authoritative once
// it exists; derivation covers addresses never materialized; the legacy
// phrase is a one-time bridge from the pre-migration scheme.
const (
	SourceStore   = "store"
	SourceDerived = "derived"
	SourceLegacy  = "legacy"
)

type VerificationResult struct {
	Valid    bool   `json:"is_valid"`
	Source   string `json:"source,omitempty"`
	Migrated bool   `json:"migrated,omitempty"`
}

type VerificationService interface {
	Verify(address, candidate string) (VerificationResult, error)
}

type verificationService struct {
	repo         repositories.CredentialRepository
	deriver      *phrase.Deriver
	legacyPhrase string // empty disables the legacy path
	alerts       AlertService
}

func NewVerificationService(
	repo repositories.CredentialRepository,
	deriver *phrase.Deriver,
	legacyPhrase string,
	alerts AlertService,
) VerificationService {
	return &verificationService{
		repo:         repo,
		deriver:      deriver,
		legacyPhrase: phrase.Normalize(legacyPhrase),
		alerts:       alerts,
	}
}

// Verify runs the cascade in strict order and short-circuits on the first
// match. Mismatches are a result, not an error; only storage failures return
// an error.
func (s *verificationService) Verify(address, candidate string) (VerificationResult, error) {
	addr, err := utils.NormalizeAddress(address)
	if err != nil {
		return VerificationResult{}, ErrMissingAddress
	}
	candidate = phrase.Normalize(candidate)
	if candidate == "" {
		return VerificationResult{}, ErrMissingPhrase
	}

	stored, err := s.repo.GetByAddress(addr)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return VerificationResult{}, fmt.Errorf("load credential: %w", err)
	}
	hasStored := err == nil

	// 1. Stored row is the authoritative source.
	if hasStored && phrase.Equal(stored.SeedPhrase, candidate) {
		return VerificationResult{Valid: true, Source: SourceStore}, nil
	}

	// 2. Fresh derivation, for wallets never explicitly materialized.
	derived := s.deriver.Derive(addr)
	if phrase.Equal(derived, candidate) {
		s.persistBestEffort(addr, derived, SourceDerived)
		return VerificationResult{Valid: true, Source: SourceDerived}, nil
	}

	// 3. Legacy static phrase, only while no row exists for the address.
	// A match immediately upgrades the address to its own derived phrase,
	// so the legacy phrase never works twice for the same wallet.
	if !hasStored && s.legacyPhrase != "" && candidate == s.legacyPhrase {
		s.persistBestEffort(addr, derived, SourceLegacy)
		log.Printf("[verify][legacy] migrated %s off the shared phrase", utils.MaskAddress(addr))
		if s.alerts != nil {
			s.alerts.NotifyLegacyMigration(addr)
		}
		return VerificationResult{Valid: true, Source: SourceLegacy, Migrated: true}, nil
	}

	return VerificationResult{}, nil
}

// persistBestEffort writes the derived phrase for the address. A conflict
// means another path already persisted a value, which is accepted silently;
// other storage failures are logged but do not fail an already positive
// verification.
func (s *verificationService) persistBestEffort(addr, derived, source string) {
	cred := &models.WalletCredential{
		WalletAddress:     addr,
		SeedPhrase:        derived,
		PhraseFingerprint: phrase.Fingerprint(derived),
	}
	err := s.repo.Insert(cred)
	if err == nil || errors.Is(err, repositories.ErrConflict) {
		return
	}
	log.Printf("[verify][%s] persist for %s failed: %v", source, utils.MaskAddress(addr), err)
}
