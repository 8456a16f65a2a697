// Copyright (c) 2026 Daylist. All rights reserved.
// Author: park.suhyeon.dev@gmail.com

package account

import (
	"context"

	"github.com/suhyeonp/daylist/internal/users/identity"
)

// # Account Data Access

// Repository defines the data access contract for accounts and profiles.
type Repository interface {

	/*
		CreateWithProfile atomically persists a new account and its profile.

		Parameters:
		  - context: context.Context
		  - loginType: The provider the account originates from
		  - email: Profile email
		  - nickname: Profile nickname

		Returns:
		  - *Account: Created account with its assigned ID
		  - *AccountProfile: Created profile
		  - error: Storage failures (both rows or neither)
	*/
	CreateWithProfile(context context.Context, loginType identity.LoginType, email, nickname string) (*Account, *AccountProfile, error)

	/*
		ExistsByEmailAndLoginType reports whether the composite identity key
		is already registered.
	*/
	ExistsByEmailAndLoginType(context context.Context, email string, loginType identity.LoginType) (bool, error)

	/*
		FindProfileByAccountID returns the profile owned by the account.

		Returns:
		  - *AccountProfile: Hydrated entity
		  - error: apperr.NotFound when the account has no profile
	*/
	FindProfileByAccountID(context context.Context, accountID int64) (*AccountProfile, error)

	/*
		UpdateNickname changes the profile nickname for the account.
	*/
	UpdateNickname(context context.Context, accountID int64, nickname string) error

	/*
		DeleteAccount removes the account, its profile, and all owned rows
		(todos, releases, calendar events) in one transaction.
	*/
	DeleteAccount(context context.Context, accountID int64) error
}
