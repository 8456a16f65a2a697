// Copyright (c) 2026 Daylist. All rights reserved.
// Author: park.suhyeon.dev@gmail.com

package account

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/suhyeonp/daylist/internal/platform/dberr"
	"github.com/suhyeonp/daylist/internal/users/identity"
)

// PostgresRepository implements [Repository] and
// [identity.ProfileDirectory] on a pgx connection pool.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new Postgres-backed account repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// CreateWithProfile implements [Repository].
func (repository *PostgresRepository) CreateWithProfile(context context.Context, loginType identity.LoginType, email, nickname string) (*Account, *AccountProfile, error) {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return nil, nil, dberr.Wrap(err, "begin_signup_tx")
	}
	defer func() { _ = transaction.Rollback(context) }()

	account := &Account{LoginType: string(loginType)}
	err = transaction.QueryRow(context, `
		INSERT INTO accounts (login_type)
		VALUES ($1)
		RETURNING id, created_at
	`, string(loginType)).Scan(&account.ID, &account.CreatedAt)
	if err != nil {
		return nil, nil, dberr.Wrap(err, "insert_account")
	}

	profile := &AccountProfile{AccountID: account.ID, Email: email, Nickname: nickname}
	err = transaction.QueryRow(context, `
		INSERT INTO account_profiles (account_id, email, nickname)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, account.ID, email, nickname).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		return nil, nil, dberr.Wrap(err, "insert_account_profile")
	}

	if err := transaction.Commit(context); err != nil {
		return nil, nil, dberr.Wrap(err, "commit_signup_tx")
	}

	return account, profile, nil
}

// ExistsByEmailAndLoginType implements [Repository].
func (repository *PostgresRepository) ExistsByEmailAndLoginType(context context.Context, email string, loginType identity.LoginType) (bool, error) {
	var exists bool
	err := repository.db.QueryRow(context, `
		SELECT EXISTS (
			SELECT 1
			FROM account_profiles p
			JOIN accounts a ON a.id = p.account_id
			WHERE p.email = $1 AND a.login_type = $2
		)
	`, email, string(loginType)).Scan(&exists)
	if err != nil {
		return false, dberr.Wrap(err, "exists_by_email_and_login_type")
	}
	return exists, nil
}

// FindProfileByAccountID implements [Repository].
func (repository *PostgresRepository) FindProfileByAccountID(context context.Context, accountID int64) (*AccountProfile, error) {
	profile := &AccountProfile{}
	err := repository.db.QueryRow(context, `
		SELECT id, account_id, email, nickname, created_at, updated_at
		FROM account_profiles
		WHERE account_id = $1
	`, accountID).Scan(&profile.ID, &profile.AccountID, &profile.Email, &profile.Nickname, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "find_profile_by_account_id")
	}
	return profile, nil
}

// UpdateNickname implements [Repository].
func (repository *PostgresRepository) UpdateNickname(context context.Context, accountID int64, nickname string) error {
	commandTag, err := repository.db.Exec(context, `
		UPDATE account_profiles
		SET nickname = $2, updated_at = NOW()
		WHERE account_id = $1
	`, accountID, nickname)
	if err != nil {
		return dberr.Wrap(err, "update_nickname")
	}
	if commandTag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// DeleteAccount implements [Repository].
//
// Child rows go first so the foreign keys never block the account delete.
func (repository *PostgresRepository) DeleteAccount(context context.Context, accountID int64) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_delete_account_tx")
	}
	defer func() { _ = transaction.Rollback(context) }()

	ownedTables := []string{"todos", "releases", "calendar_events", "account_profiles"}
	for _, table := range ownedTables {
		query := fmt.Sprintf(`DELETE FROM %s WHERE account_id = $1`, table)
		if _, err := transaction.Exec(context, query, accountID); err != nil {
			return dberr.Wrap(err, "delete_owned_rows")
		}
	}

	commandTag, err := transaction.Exec(context, `DELETE FROM accounts WHERE id = $1`, accountID)
	if err != nil {
		return dberr.Wrap(err, "delete_account")
	}
	if commandTag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(err, "commit_delete_account_tx")
	}
	return nil
}

// # Identity Directory

// FindByEmailAndLoginType implements [identity.ProfileDirectory], giving the
// login resolution service its registered-or-not lookup.
func (repository *PostgresRepository) FindByEmailAndLoginType(context context.Context, email string, loginType identity.LoginType) (*identity.Profile, error) {
	profile := &identity.Profile{}
	err := repository.db.QueryRow(context, `
		SELECT p.account_id, p.nickname
		FROM account_profiles p
		JOIN accounts a ON a.id = p.account_id
		WHERE p.email = $1 AND a.login_type = $2
	`, email, string(loginType)).Scan(&profile.AccountID, &profile.Nickname)
	if err != nil {
		return nil, dberr.Wrap(err, "find_by_email_and_login_type")
	}
	return profile, nil
}
