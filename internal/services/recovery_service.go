package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"walletvault/internal/models"
	"walletvault/internal/phrase"
	"walletvault/internal/repositories"
	"walletvault/internal/utils"
)

// walletScanPage bounds each List call during the derived/legacy fallback
// scan. The fingerprint pass handles the common case in one indexed lookup.
const walletScanPage = 200

type RecoveryResult struct {
	WalletAddress string
	IsAdmin       bool
	Session       *Session
}

type RecoveryService interface {
	// Recover drives the full flow: resolve a wallet from the phrase alone,
	// reset its password, open a session. No credential is mutated unless
	// verification succeeded.
	Recover(req models.RecoverRequest) (*RecoveryResult, error)
}

type recoveryService struct {
	credRepo   repositories.CredentialRepository
	walletRepo repositories.CustodialWalletRepository
	verifier   VerificationService
	auth       AuthService
	sessions   SessionIssuer
	alerts     AlertService
}

func NewRecoveryService(
	credRepo repositories.CredentialRepository,
	walletRepo repositories.CustodialWalletRepository,
	verifier VerificationService,
	auth AuthService,
	sessions SessionIssuer,
	alerts AlertService,
) RecoveryService {
	return &recoveryService{
		credRepo:   credRepo,
		walletRepo: walletRepo,
		verifier:   verifier,
		auth:       auth,
		sessions:   sessions,
		alerts:     alerts,
	}
}

func (s *recoveryService) Recover(req models.RecoverRequest) (*RecoveryResult, error) {
	candidate := phrase.Normalize(req.Phrase)
	if candidate == "" {
		return nil, ErrMissingPhrase
	}

	wallet, err := s.resolveWallet(candidate)
	if err != nil {
		return nil, err
	}
	masked := utils.MaskAddress(wallet.Address)

	// Verified. Reset the login credential.
	password := strings.TrimSpace(req.NewPassword)
	if password == "" {
		// Phrase-only recovery: park a random password until the user picks
		// a real one through the normal change path.
		password, err = utils.NewPlaceholderPassword(32)
		if err != nil {
			return nil, fmt.Errorf("generate placeholder password: %w", err)
		}
	}
	hash, err := s.auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	if err := s.walletRepo.UpdatePasswordHash(wallet.Address, hash, time.Now()); err != nil {
		return nil, fmt.Errorf("update password hash: %w", err)
	}

	session, err := s.sessions.StartSession(wallet.Address, wallet.IsAdmin)
	if err != nil {
		return nil, err
	}

	log.Printf("[recovery] completed for %s admin=%v", masked, wallet.IsAdmin)
	if s.alerts != nil {
		s.alerts.NotifyRecovery(wallet.Address)
	}

	return &RecoveryResult{
		WalletAddress: wallet.Address,
		IsAdmin:       wallet.IsAdmin,
		Session:       session,
	}, nil
}

// resolveWallet identifies the wallet from the phrase alone. Pass (a) is an
// indexed lookup against persisted credential rows; pass (b) walks custodial
// wallets through the cascade for derived and legacy matches.
func (s *recoveryService) resolveWallet(candidate string) (*models.CustodialWallet, error) {
	cred, err := s.credRepo.GetByFingerprint(phrase.Fingerprint(candidate))
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("fingerprint lookup: %w", err)
	}
	if err == nil {
		wallet, err := s.walletRepo.GetByAddress(cred.WalletAddress)
		if errors.Is(err, repositories.ErrNotFound) {
			// A credential without its wallet is inconsistent state, not a
			// wrong phrase.
			log.Printf("[recovery] credential row without custodial wallet: %s", utils.MaskAddress(cred.WalletAddress))
			return nil, ErrWalletNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("load custodial wallet: %w", err)
		}
		return wallet, nil
	}

	for offset := 0; ; offset += walletScanPage {
		wallets, err := s.walletRepo.List(walletScanPage, offset)
		if err != nil {
			return nil, fmt.Errorf("list custodial wallets: %w", err)
		}
		for _, w := range wallets {
			res, err := s.verifier.Verify(w.Address, candidate)
			if err != nil {
				return nil, err
			}
			if res.Valid {
				return w, nil
			}
		}
		if len(wallets) < walletScanPage {
			break
		}
	}

	return nil, ErrInvalidPhrase
}
