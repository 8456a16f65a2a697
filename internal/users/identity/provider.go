// Copyright (c) 2026 Daylist. All rights reserved.
// Author: park.suhyeon.dev@gmail.com

package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/suhyeonp/daylist/internal/platform/config"
	"github.com/suhyeonp/daylist/internal/platform/constants"
)

// # Provider Contract

// Provider is the per-provider behavior the resolution service depends on.
// [Adapter] is the production implementation; tests substitute fakes.
type Provider interface {

	// LoginType identifies which external provider this is.
	LoginType() LoginType

	// UsesState reports whether the provider round-trips a CSRF state nonce.
	UsesState() bool

	// BuildAuthorizationURL constructs the consent-screen URL. Pure, no I/O.
	BuildAuthorizationURL(state string) string

	/*
		ExchangeCode swaps an authorization code for the provider's access token.

		Parameters:
		  - ctx: context.Context (bounds the outbound call)
		  - code: The single-use authorization code from the callback
		  - state: The state nonce, empty for providers without one

		Returns:
		  - string: The provider access token
		  - error: ErrTokenExchangeFailed when no access_token is returned
	*/
	ExchangeCode(ctx context.Context, code, state string) (string, error)

	/*
		FetchUserInfo retrieves the raw user payload with a Bearer GET.

		Returns:
		  - map[string]any: The provider's user-info document
		  - error: ErrUserInfoUnavailable on empty or malformed body
	*/
	FetchUserInfo(ctx context.Context, accessToken string) (map[string]any, error)
}

// # Data-Driven Adapter

// Adapter is a single provider implementation driven entirely by
// configuration. The three providers differ only in endpoints, scope, and
// whether they round-trip a state nonce, so one type serves all of them.
//
// Adapters are stateless aside from immutable configuration and are safe for
// concurrent use.
type Adapter struct {
	loginType LoginType
	settings  config.Provider
	scope     string
	usesState bool
	client    *http.Client
}

// newAdapter builds an adapter around the shared HTTP client. A nil client
// gets a default one bounded by the provider call timeout.
func newAdapter(loginType LoginType, settings config.Provider, scope string, usesState bool, client *http.Client) *Adapter {
	if client == nil {
		client = &http.Client{Timeout: constants.ProviderCallTimeout}
	}
	return &Adapter{
		loginType: loginType,
		settings:  settings,
		scope:     scope,
		usesState: usesState,
		client:    client,
	}
}

// NewGoogleAdapter builds the Google adapter. Google requires an explicit
// OpenID Connect scope on the authorize URL.
func NewGoogleAdapter(settings config.Provider, client *http.Client) *Adapter {
	return newAdapter(LoginTypeGoogle, settings, "openid email profile", false, client)
}

// NewKakaoAdapter builds the Kakao adapter.
func NewKakaoAdapter(settings config.Provider, client *http.Client) *Adapter {
	return newAdapter(LoginTypeKakao, settings, "", false, client)
}

// NewNaverAdapter builds the Naver adapter. Naver requires the state nonce on
// both the authorize URL and the token exchange.
func NewNaverAdapter(settings config.Provider, client *http.Client) *Adapter {
	return newAdapter(LoginTypeNaver, settings, "", true, client)
}

// LoginType implements [Provider].
func (adapter *Adapter) LoginType() LoginType { return adapter.loginType }

// UsesState implements [Provider].
func (adapter *Adapter) UsesState() bool { return adapter.usesState }

// BuildAuthorizationURL implements [Provider].
//
// The scope is percent-encoded with %20 separators because some providers
// reject '+' encoded spaces in the scope parameter.
func (adapter *Adapter) BuildAuthorizationURL(state string) string {
	authorizeURL := fmt.Sprintf("%s?client_id=%s&redirect_uri=%s&response_type=code",
		adapter.settings.LoginURL,
		url.QueryEscape(adapter.settings.ClientID),
		url.QueryEscape(adapter.settings.RedirectURI),
	)

	if adapter.scope != "" {
		authorizeURL += "&scope=" + strings.ReplaceAll(url.QueryEscape(adapter.scope), "+", "%20")
	}

	if adapter.usesState && state != "" {
		authorizeURL += "&state=" + url.QueryEscape(state)
	}

	return authorizeURL
}

/*
ExchangeCode implements [Provider].

Description: Performs the form-encoded POST to the provider's token endpoint.
Authorization codes are single-use at the provider, so a replayed code fails
here rather than silently reusing a cached token.
*/
func (adapter *Adapter) ExchangeCode(ctx context.Context, code, state string) (string, error) {

	// Assemble the standard authorization_code grant form
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("client_id", adapter.settings.ClientID)
	form.Set("client_secret", adapter.settings.ClientSecret)
	form.Set("code", code)
	form.Set("redirect_uri", adapter.settings.RedirectURI)
	if adapter.usesState && state != "" {
		form.Set("state", state)
	}

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, adapter.settings.TokenRequestURI, strings.NewReader(form.Encode()))
	if err != nil {
		return "", ErrTokenExchangeFailed.WithCause(err)
	}
	httpRequest.Header.Set("Content-Type", "application/x-www-form-urlencoded;charset=utf-8")

	httpResponse, err := adapter.client.Do(httpRequest)
	if err != nil {
		return "", ErrTokenExchangeFailed.WithCause(err)
	}
	defer func() { _ = httpResponse.Body.Close() }()

	// Decode the token payload. Providers return errors as JSON bodies too,
	// in which case access_token is simply absent.
	payload := map[string]any{}
	if err := json.NewDecoder(httpResponse.Body).Decode(&payload); err != nil {
		return "", ErrTokenExchangeFailed.WithCause(err)
	}

	accessToken, ok := payload["access_token"].(string)
	if !ok || accessToken == "" {
		return "", ErrTokenExchangeFailed
	}

	return accessToken, nil
}

/*
FetchUserInfo implements [Provider].

Description: Authenticated GET against the provider's user-info endpoint.
The raw document is returned untouched; shape differences between providers
are handled by [Normalize].
*/
func (adapter *Adapter) FetchUserInfo(ctx context.Context, accessToken string) (map[string]any, error) {
	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodGet, adapter.settings.UserInfoURI, nil)
	if err != nil {
		return nil, ErrUserInfoUnavailable.WithCause(err)
	}
	httpRequest.Header.Set(constants.HeaderAuthorization, "Bearer "+accessToken)

	httpResponse, err := adapter.client.Do(httpRequest)
	if err != nil {
		return nil, ErrUserInfoUnavailable.WithCause(err)
	}
	defer func() { _ = httpResponse.Body.Close() }()

	if httpResponse.StatusCode != http.StatusOK {
		return nil, ErrUserInfoUnavailable
	}

	payload := map[string]any{}
	if err := json.NewDecoder(httpResponse.Body).Decode(&payload); err != nil {
		return nil, ErrUserInfoUnavailable.WithCause(err)
	}

	if len(payload) == 0 {
		return nil, ErrUserInfoUnavailable
	}

	return payload, nil
}
