package models

import "time"

// WalletCredential is the per-address recovery phrase row. At most one row
// exists per wallet address; the unique constraint on wallet_address is what
// makes concurrent creation safe.
type WalletCredential struct {
	WalletAddress     string    `json:"wallet_address"`
	SeedPhrase        string    `json:"seed_phrase"`
	PhraseFingerprint string    `json:"-"` // reverse index, never exposed
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type CustodialWallet struct {
	ID           int64      `json:"id"`
	Address      string     `json:"address"`
	PasswordHash string     `json:"-"` // never serialized
	IsAdmin      bool       `json:"is_admin"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type LoginRequest struct {
	Address  string `json:"address" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RecoverRequest struct {
	Phrase      string `json:"phrase"`
	NewPassword string `json:"new_password"`
}

type VerifyRequest struct {
	Address string `json:"address"`
	Phrase  string `json:"phrase"`
}

type MigrateRequest struct {
	WalletAddress string `json:"wallet_address"`
}
