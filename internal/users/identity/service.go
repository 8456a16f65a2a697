// Copyright (c) 2026 Daylist. All rights reserved.
// Author: park.suhyeon.dev@gmail.com

package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/suhyeonp/daylist/internal/platform/apperr"
	"github.com/suhyeonp/daylist/internal/platform/constants"
	"github.com/suhyeonp/daylist/internal/platform/sec"
)

// TokenIssuer defines the contract for minting session tokens.
type TokenIssuer interface {
	Issue(accountID int64) (string, error)
}

// Service orchestrates the login resolution state machine.
//
// Each login request is handled independently; the only shared state is the
// immutable provider configuration, the signing secret, and the nonce store.
// Both outbound provider calls run sequentially inside the request context,
// so a disconnected caller abandons them mid-flight.
type Service struct {
	providers map[LoginType]Provider
	profiles  ProfileDirectory
	tokens    TokenIssuer
	states    StateStore
	logger    *slog.Logger
}

// NewService constructs the resolution service from its collaborators.
func NewService(providers []Provider, profiles ProfileDirectory, tokens TokenIssuer, states StateStore, logger *slog.Logger) *Service {
	providerMap := make(map[LoginType]Provider, len(providers))
	for _, provider := range providers {
		providerMap[provider.LoginType()] = provider
	}
	return &Service{
		providers: providerMap,
		profiles:  profiles,
		tokens:    tokens,
		states:    states,
		logger:    logger,
	}
}

// provider returns the adapter registered for the login type.
func (service *Service) provider(loginType LoginType) (Provider, error) {
	provider, ok := service.providers[loginType]
	if !ok {
		return nil, ErrUnknownProvider
	}
	return provider, nil
}

/*
AuthorizationURL builds the consent-screen URL for a provider.

Description: For providers that round-trip a CSRF nonce, a fresh per-request
nonce is generated, recorded in the state store, and embedded in the URL.

Parameters:
  - ctx: context.Context
  - loginType: Which provider to build for

Returns:
  - string: The authorize URL
  - err: ErrUnknownProvider or nonce storage failures
*/
func (service *Service) AuthorizationURL(ctx context.Context, loginType LoginType) (string, error) {
	provider, err := service.provider(loginType)
	if err != nil {
		return "", err
	}

	state := ""
	if provider.UsesState() {
		state, err = sec.GenerateSecureToken(constants.StateNonceLength)
		if err != nil {
			return "", fmt.Errorf("identity_state_generation_failed: %w", err)
		}
		if err := service.states.Put(ctx, state, constants.StateNonceTTL); err != nil {
			return "", apperr.Internal(err)
		}
	}

	return provider.BuildAuthorizationURL(state), nil
}

/*
Resolve runs the login state machine for one provider callback.

Description: Consumes the state nonce (when the provider uses one), exchanges
the authorization code, fetches and normalizes the user info, then branches on
the (email, loginType) identity key:

  - Registered → mint a session token whose subject is the account ID. The
    stored nickname wins over the provider's current display name, so in-app
    nickname edits stay authoritative.
  - Unregistered → echo the provider access token as a provisional credential.
    No account is created here; signup is an explicit separate step.

Parameters:
  - ctx: context.Context
  - loginType: Which provider is calling back
  - code: The single-use authorization code
  - state: The round-tripped nonce, empty for providers without one

Returns:
  - *Resolution: The terminal outcome for the responder
  - err: One of the sentinel federation errors, or internal failures
*/
func (service *Service) Resolve(ctx context.Context, loginType LoginType, code, state string) (*Resolution, error) {
	provider, err := service.provider(loginType)
	if err != nil {
		return nil, err
	}

	// CSRF gate: the nonce must exist and is burned on first use.
	if provider.UsesState() {
		consumed, err := service.states.Consume(ctx, state)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		if state == "" || !consumed {
			return nil, ErrStateMismatch
		}
	}

	// Two-hop provider round trip: token exchange, then user info.
	accessToken, err := provider.ExchangeCode(ctx, code, state)
	if err != nil {
		return nil, err
	}

	rawUserInfo, err := provider.FetchUserInfo(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	federated, err := Normalize(loginType, rawUserInfo, accessToken)
	if err != nil {
		return nil, err
	}

	// Branch on the (email, loginType) identity key.
	profile, err := service.profiles.FindByEmailAndLoginType(ctx, federated.Email, federated.LoginType)
	if err != nil {
		if isNotFound(err) {
			service.logger.InfoContext(ctx, "login_new_user",
				slog.String("login_type", string(loginType)),
			)
			return &Resolution{
				TempToken: federated.AccessToken,
				Nickname:  federated.DisplayName,
				Email:     federated.Email,
				IsNewUser: true,
			}, nil
		}
		return nil, err
	}

	sessionToken, err := service.tokens.Issue(profile.AccountID)
	if err != nil {
		return nil, fmt.Errorf("identity_token_issue_failed: %w", err)
	}

	service.logger.InfoContext(ctx, "login_returning_user",
		slog.String("login_type", string(loginType)),
		slog.Int64("account_id", profile.AccountID),
	)

	return &Resolution{
		Token:     sessionToken,
		Nickname:  profile.Nickname,
		Email:     federated.Email,
		IsNewUser: false,
	}, nil
}

// isNotFound reports whether err is the profile-absent branch rather than a
// storage failure.
func isNotFound(err error) bool {
	var appError *apperr.AppError
	if errors.As(err, &appError) {
		return appError.Code == "NOT_FOUND"
	}
	return false
}
