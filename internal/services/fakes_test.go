package services

import (
	"sync"
	"time"

	"walletvault/internal/models"
	"walletvault/internal/repositories"
)

// In-memory repositories for service tests, mirroring the conflict and
// not-found semantics of the Postgres implementations.

type fakeCredRepo struct {
	mu   sync.Mutex
	rows map[string]*models.WalletCredential

	getErr      error // forced failure for every read
	insertErr   error // forced failure for every insert
	missNextGet bool  // report not-found once, to stage a lost insert race
}

func newFakeCredRepo() *fakeCredRepo {
	return &fakeCredRepo{rows: map[string]*models.WalletCredential{}}
}

func (r *fakeCredRepo) GetByAddress(address string) (*models.WalletCredential, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.getErr != nil {
		return nil, r.getErr
	}
	if r.missNextGet {
		r.missNextGet = false
		return nil, repositories.ErrNotFound
	}
	row, ok := r.rows[address]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *row
	return &cp, nil
}

func (r *fakeCredRepo) GetByFingerprint(fingerprint string) (*models.WalletCredential, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.getErr != nil {
		return nil, r.getErr
	}
	for _, row := range r.rows {
		if row.PhraseFingerprint == fingerprint {
			cp := *row
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeCredRepo) Insert(cred *models.WalletCredential) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.insertErr != nil {
		return r.insertErr
	}
	if _, ok := r.rows[cred.WalletAddress]; ok {
		return repositories.ErrConflict
	}
	now := time.Now()
	cred.CreatedAt = now
	cred.UpdatedAt = now
	cp := *cred
	r.rows[cred.WalletAddress] = &cp
	return nil
}

func (r *fakeCredRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

func (r *fakeCredRepo) row(address string) *models.WalletCredential {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rows[address]
}

func (r *fakeCredRepo) seed(cred *models.WalletCredential) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *cred
	r.rows[cred.WalletAddress] = &cp
}

type fakeWalletRepo struct {
	mu    sync.Mutex
	byAdr map[string]*models.CustodialWallet
	order []string
}

func newFakeWalletRepo() *fakeWalletRepo {
	return &fakeWalletRepo{byAdr: map[string]*models.CustodialWallet{}}
}

func (r *fakeWalletRepo) seed(w *models.CustodialWallet) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *w
	r.byAdr[w.Address] = &cp
	r.order = append(r.order, w.Address)
}

func (r *fakeWalletRepo) GetByAddress(address string) (*models.CustodialWallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.byAdr[address]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *w
	return &cp, nil
}

func (r *fakeWalletRepo) List(limit, offset int) ([]*models.CustodialWallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if offset >= len(r.order) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.order) {
		end = len(r.order)
	}
	var res []*models.CustodialWallet
	for _, addr := range r.order[offset:end] {
		cp := *r.byAdr[addr]
		res = append(res, &cp)
	}
	return res, nil
}

func (r *fakeWalletRepo) UpdatePasswordHash(address, hash string, lastLogin time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.byAdr[address]
	if !ok {
		return repositories.ErrNotFound
	}
	w.PasswordHash = hash
	t := lastLogin
	w.LastLoginAt = &t
	return nil
}

func (r *fakeWalletRepo) TouchLastLogin(address string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.byAdr[address]
	if !ok {
		return repositories.ErrNotFound
	}
	t := at
	w.LastLoginAt = &t
	return nil
}

type fakeIssuer struct {
	mu    sync.Mutex
	calls int
}

func (f *fakeIssuer) StartSession(address string, isAdmin bool) (*Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return &Session{
		Token:     "token-" + address,
		Address:   address,
		IsAdmin:   isAdmin,
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil
}

type fakeAlerts struct {
	mu         sync.Mutex
	migrations int
	recoveries int
}

func (f *fakeAlerts) NotifyLegacyMigration(string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.migrations++
}

func (f *fakeAlerts) NotifyRecovery(string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recoveries++
}
