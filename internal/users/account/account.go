// Copyright (c) 2026 Daylist. All rights reserved.
// Author: park.suhyeon.dev@gmail.com

/*
Package account owns the persistent account and profile records behind the
federated login core.

An account is nothing but an ID bound to a login type; everything visible
(email, nickname) lives on its one-to-one profile. The (email, loginType)
pair is the identity key: the same email may sign up under different
providers as different accounts.

Architecture:

  - Service: Signup, nickname updates, account deletion.
  - Repository: pgx-backed storage, transactional where two tables change.
  - Directory: The postgres store doubles as the identity package's
    ProfileDirectory so login resolution and signup share one source of truth.
*/
package account

import "time"

// Account is the root entity: an ID bound to an immutable login type.
type Account struct {
	ID        int64     `json:"id"`
	LoginType string    `json:"loginType"`
	CreatedAt time.Time `json:"-"`
}

// AccountProfile holds the visible attributes of an account (1:1).
type AccountProfile struct {
	ID        int64     `json:"id"`
	AccountID int64     `json:"accountId"`
	Email     string    `json:"email"`
	Nickname  string    `json:"nickname"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
