package repositories

import (
	"database/sql"
	"errors"
	"time"

	"walletvault/internal/models"
)

type CustodialWalletRepository interface {
	GetByAddress(address string) (*models.CustodialWallet, error)
	List(limit, offset int) ([]*models.CustodialWallet, error)
	UpdatePasswordHash(address, hash string, lastLogin time.Time) error
	TouchLastLogin(address string, at time.Time) error
}

type custodialWalletRepository struct {
	DB *sql.DB
}

func NewCustodialWalletRepository(db *sql.DB) CustodialWalletRepository {
	return &custodialWalletRepository{DB: db}
}

func (r *custodialWalletRepository) GetByAddress(address string) (*models.CustodialWallet, error) {
	const q = `
		SELECT id, address, password_hash, is_admin, last_login_at, created_at
		FROM custodial_wallets
		WHERE address = $1
	`
	w := &models.CustodialWallet{}
	var lastLogin sql.NullTime
	err := r.DB.QueryRow(q, address).Scan(
		&w.ID, &w.Address, &w.PasswordHash, &w.IsAdmin, &lastLogin, &w.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if lastLogin.Valid {
		t := lastLogin.Time
		w.LastLoginAt = &t
	}
	return w, nil
}

func (r *custodialWalletRepository) List(limit, offset int) ([]*models.CustodialWallet, error) {
	const q = `
		SELECT id, address, password_hash, is_admin, last_login_at, created_at
		FROM custodial_wallets
		ORDER BY id
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.Query(q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*models.CustodialWallet
	for rows.Next() {
		w := &models.CustodialWallet{}
		var lastLogin sql.NullTime
		if err := rows.Scan(&w.ID, &w.Address, &w.PasswordHash, &w.IsAdmin, &lastLogin, &w.CreatedAt); err != nil {
			return nil, err
		}
		if lastLogin.Valid {
			t := lastLogin.Time
			w.LastLoginAt = &t
		}
		res = append(res, w)
	}
	return res, rows.Err()
}

func (r *custodialWalletRepository) UpdatePasswordHash(address, hash string, lastLogin time.Time) error {
	const q = `
		UPDATE custodial_wallets
		SET password_hash=$1, last_login_at=$2
		WHERE address=$3
	`
	res, err := r.DB.Exec(q, hash, lastLogin, address)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *custodialWalletRepository) TouchLastLogin(address string, at time.Time) error {
	res, err := r.DB.Exec(`UPDATE custodial_wallets SET last_login_at=$1 WHERE address=$2`, at, address)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
