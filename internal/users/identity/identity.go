// Copyright (c) 2026 Daylist. All rights reserved.
// Author: park.suhyeon.dev@gmail.com

/*
Package identity implements federated login against external OAuth2 providers.

It is the core of the Daylist account system: no passwords exist anywhere in
the platform, so every account originates from a Google, Kakao, or Naver
identity.

Architecture:

  - Adapter: One data-driven HTTP client per provider (authorize URL, token
    exchange, user-info fetch).
  - Normalizer: Collapses the three provider payload shapes into one
    FederatedIdentity.
  - Service: The resolution state machine deciding returning-user vs new-user.
  - Responder: Presentation of terminal outcomes (JSON, redirect, or the
    postMessage HTML bridge used by popup logins).

The package never creates accounts. A session token is issued only for an
account that already exists; new users receive the provider's access token as
a provisional credential and complete signup through the account module.
*/
package identity

import (
	"context"
	"net/http"

	"github.com/suhyeonp/daylist/internal/platform/apperr"
)

// # Login Types

// LoginType enumerates the supported external identity sources.
type LoginType string

const (
	LoginTypeGoogle LoginType = "GOOGLE"
	LoginTypeKakao  LoginType = "KAKAO"
	LoginTypeNaver  LoginType = "NAVER"
)

// Valid reports whether the login type is one of the supported providers.
func (loginType LoginType) Valid() bool {
	switch loginType {
	case LoginTypeGoogle, LoginTypeKakao, LoginTypeNaver:
		return true
	}
	return false
}

// # Failure Taxonomy

// Provider and normalization failures are sentinel AppErrors so the callback
// responder can render them without leaking provider internals. None of them
// is retryable from this package's perspective.
var (
	// ErrTokenExchangeFailed is returned when the provider's token endpoint
	// yields no access_token (bad, expired, or already-used code).
	ErrTokenExchangeFailed = apperr.New("TOKEN_EXCHANGE_FAILED", "Authorization code could not be exchanged", http.StatusUnauthorized)

	// ErrUserInfoUnavailable is returned when the provider's user-info
	// endpoint answers with an empty or malformed body.
	ErrUserInfoUnavailable = apperr.New("USER_INFO_UNAVAILABLE", "Provider user information is unavailable", http.StatusBadGateway)

	// ErrMissingRequiredField is returned when a provider payload lacks the
	// email or display-name field needed to normalize an identity.
	ErrMissingRequiredField = apperr.New("MISSING_REQUIRED_FIELD", "Provider response is missing a required field", http.StatusBadGateway)

	// ErrStateMismatch is returned when a callback carries an unknown or
	// already-consumed state nonce.
	ErrStateMismatch = apperr.New("STATE_MISMATCH", "Login state is invalid or expired", http.StatusUnauthorized)

	// ErrUnknownProvider is returned for login types without a configured adapter.
	ErrUnknownProvider = apperr.New("UNKNOWN_PROVIDER", "Unknown login provider", http.StatusNotFound)
)

// # Domain Types

// FederatedIdentity is the normalized outcome of one provider round trip.
// It is ephemeral: produced per login attempt and discarded after the
// response is built, except the access token which may be echoed back to a
// new user as the provisional signup credential.
type FederatedIdentity struct {
	LoginType   LoginType
	Email       string
	DisplayName string
	AccessToken string
}

// Resolution is the terminal outcome of a login attempt, shaped exactly as
// the frontend consumes it.
//
// Returning users get Token (a minted session JWT) and their stored nickname.
// New users get TempToken (the provider's raw access token) so the client can
// complete signup without a second provider round trip.
type Resolution struct {
	Token     string `json:"token"`
	TempToken string `json:"tempToken"`
	Nickname  string `json:"nickname"`
	Email     string `json:"email"`
	IsNewUser bool   `json:"isNewUser"`
}

// # Collaborator Contracts

// Profile is the slice of an account profile this package needs for
// resolution: who owns the identity and what they call themselves in-app.
type Profile struct {
	AccountID int64
	Nickname  string
}

// ProfileDirectory is the narrow lookup contract the resolution service
// consumes from the account module.
type ProfileDirectory interface {

	/*
		FindByEmailAndLoginType returns the profile registered under the
		(email, loginType) composite identity key.

		Returns:
		  - *Profile: The matching profile
		  - error: apperr.NotFound when no such registration exists
	*/
	FindByEmailAndLoginType(ctx context.Context, email string, loginType LoginType) (*Profile, error)
}
