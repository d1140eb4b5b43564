package services

import "errors"

var (
	// ErrMissingPhrase — recovery or verification called without a phrase.
	ErrMissingPhrase = errors.New("phrase is required")
	// ErrMissingAddress — operation needs an explicit wallet address.
	ErrMissingAddress = errors.New("wallet address is required")
	// ErrInvalidPhrase — no verification source matched. Handlers must map
	// this to one generic client error so callers cannot probe which
	// addresses exist or have migrated.
	ErrInvalidPhrase = errors.New("invalid phrase")
	// ErrWalletNotFound — a credential row matched but no custodial wallet
	// exists for its address. Inconsistent state, not user error.
	ErrWalletNotFound = errors.New("custodial wallet missing for credential")
	// ErrInvalidLogin — address/password pair rejected.
	ErrInvalidLogin = errors.New("invalid address or password")
)
