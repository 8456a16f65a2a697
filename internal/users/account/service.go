// Copyright (c) 2026 Daylist. All rights reserved.
// Author: park.suhyeon.dev@gmail.com

package account

import (
	"context"
	"fmt"

	"github.com/suhyeonp/daylist/internal/platform/apperr"
	"github.com/suhyeonp/daylist/internal/platform/validate"
	"github.com/suhyeonp/daylist/internal/users/identity"
)

// # Contracts & Types

// TokenProvider defines the contract for minting session tokens after signup.
type TokenProvider interface {
	Issue(accountID int64) (string, error)
}

// Service implements the account lifecycle use cases.
type Service struct {
	repository    Repository
	tokenProvider TokenProvider
}

// NewService constructs a new [Service] with its dependencies.
func NewService(repository Repository, tokenProvider TokenProvider) *Service {
	return &Service{repository: repository, tokenProvider: tokenProvider}
}

// # Signup Flow

// SignUpInput holds the data required to enroll a new account.
type SignUpInput struct {
	LoginType identity.LoginType
	Email     string
	Nickname  string
}

// SignUpResult is the outcome handed back to the client after enrollment.
type SignUpResult struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Nickname  string `json:"nickname"`
	UserToken string `json:"userToken"`
}

/*
SignUp creates a brand-new account plus profile and mints its first session token.

Description: The caller arrives holding the provisional provider token from
the new-user login branch. The token's presence is required but not
re-verified against the provider here; the trust boundary is the preceding
login resolution that issued it.

Parameters:
  - context: context.Context
  - provisionalToken: The provider access token echoed at login
  - input: SignUpInput

Returns:
  - *SignUpResult: Created identifiers and the session token
  - err: Conflict when (email, loginType) is taken, validation or storage errors
*/
func (service *Service) SignUp(context context.Context, provisionalToken string, input SignUpInput) (*SignUpResult, error) {
	if provisionalToken == "" {
		return nil, apperr.Unauthorized("Provisional credential required")
	}

	validator := &validate.Validator{}
	err := validator.
		Required("email", input.Email).
		Email("email", input.Email).
		Required("nickname", input.Nickname).
		MaxLen("nickname", input.Nickname, 30).
		Custom("loginType", !input.LoginType.Valid(), "Unknown login type").
		Err()
	if err != nil {
		return nil, err
	}

	// The (email, loginType) composite is the identity key. The same email
	// under another provider is a different, legitimate account.
	exists, err := service.repository.ExistsByEmailAndLoginType(context, input.Email, input.LoginType)
	if err != nil {
		return nil, fmt.Errorf("account_service_signup_lookup_failed: %w", err)
	}
	if exists {
		return nil, apperr.Conflict("Email is already registered with this login type")
	}

	account, profile, err := service.repository.CreateWithProfile(context, input.LoginType, input.Email, input.Nickname)
	if err != nil {
		return nil, fmt.Errorf("account_service_signup_failed: %w", err)
	}

	sessionToken, err := service.tokenProvider.Issue(account.ID)
	if err != nil {
		return nil, fmt.Errorf("account_service_token_issue_failed: %w", err)
	}

	return &SignUpResult{
		ID:        account.ID,
		Email:     profile.Email,
		Nickname:  profile.Nickname,
		UserToken: sessionToken,
	}, nil
}

// # Profile Management

/*
UpdateNickname changes the caller's display name.

Parameters:
  - context: context.Context
  - accountID: The authenticated account
  - nickname: The new nickname

Returns:
  - err: Validation or storage failures
*/
func (service *Service) UpdateNickname(context context.Context, accountID int64, nickname string) error {
	validator := &validate.Validator{}
	err := validator.
		Required("nickname", nickname).
		MaxLen("nickname", nickname, 30).
		Err()
	if err != nil {
		return err
	}

	if err := service.repository.UpdateNickname(context, accountID, nickname); err != nil {
		return err
	}
	return nil
}

/*
Delete removes the caller's account and everything it owns.

Description: Profile, todos, releases, and calendar events disappear with the
account in one transaction. There is no soft delete.
*/
func (service *Service) Delete(context context.Context, accountID int64) error {
	return service.repository.DeleteAccount(context, accountID)
}

// Profile returns the caller's profile.
func (service *Service) Profile(context context.Context, accountID int64) (*AccountProfile, error) {
	return service.repository.FindProfileByAccountID(context, accountID)
}
