package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"walletvault/internal/models"
	"walletvault/internal/repositories"
	"walletvault/internal/utils"
)

type WalletService interface {
	GetByAddress(address string) (*models.CustodialWallet, error)
	// Authenticate checks an address/password pair for the normal login path
	// and stamps last_login_at on success.
	Authenticate(address, password string) (*models.CustodialWallet, error)
}

type walletService struct {
	repo repositories.CustodialWalletRepository
	auth AuthService
}

func NewWalletService(repo repositories.CustodialWalletRepository, auth AuthService) WalletService {
	return &walletService{repo: repo, auth: auth}
}

func (s *walletService) GetByAddress(address string) (*models.CustodialWallet, error) {
	addr, err := utils.NormalizeAddress(address)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByAddress(addr)
}

func (s *walletService) Authenticate(address, password string) (*models.CustodialWallet, error) {
	addr, err := utils.NormalizeAddress(address)
	if err != nil {
		return nil, ErrInvalidLogin
	}
	wallet, err := s.repo.GetByAddress(addr)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrInvalidLogin
	}
	if err != nil {
		return nil, fmt.Errorf("load custodial wallet: %w", err)
	}
	if wallet.PasswordHash == "" || !s.auth.CheckPassword(wallet.PasswordHash, password) {
		return nil, ErrInvalidLogin
	}
	if err := s.repo.TouchLastLogin(addr, time.Now()); err != nil {
		// login still stands, the timestamp is advisory
		log.Printf("[wallet][login] touch last_login_at failed for %s: %v", utils.MaskAddress(addr), err)
	}
	return wallet, nil
}
