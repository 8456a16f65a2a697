// Copyright (c) 2026 Daylist. All rights reserved.
// Author: park.suhyeon.dev@gmail.com

package identity_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suhyeonp/daylist/internal/platform/config"
	"github.com/suhyeonp/daylist/internal/users/identity"
)

func providerSettings(tokenURL, userInfoURL string) config.Provider {
	return config.Provider{
		LoginURL:        "https://provider.example/oauth/authorize",
		ClientID:        "client-123",
		ClientSecret:    "secret-456",
		RedirectURI:     "http://localhost:8080/callback",
		TokenRequestURI: tokenURL,
		UserInfoURI:     userInfoURL,
	}
}

/*
TestAdapter_BuildAuthorizationURL_Google verifies the Google URL carries the
OpenID scope with percent-encoded spaces and no state parameter.
*/
func TestAdapter_BuildAuthorizationURL_Google(t *testing.T) {
	adapter := identity.NewGoogleAdapter(providerSettings("", ""), nil)

	authorizeURL := adapter.BuildAuthorizationURL("")

	assert.Contains(t, authorizeURL, "https://provider.example/oauth/authorize?client_id=client-123")
	assert.Contains(t, authorizeURL, "redirect_uri=http%3A%2F%2Flocalhost%3A8080%2Fcallback")
	assert.Contains(t, authorizeURL, "response_type=code")
	assert.Contains(t, authorizeURL, "scope=openid%20email%20profile")
	assert.NotContains(t, authorizeURL, "state=")
}

/*
TestAdapter_BuildAuthorizationURL_Naver verifies the Naver URL carries the
state nonce and no scope.
*/
func TestAdapter_BuildAuthorizationURL_Naver(t *testing.T) {
	adapter := identity.NewNaverAdapter(providerSettings("", ""), nil)

	authorizeURL := adapter.BuildAuthorizationURL("nonce-abc")

	assert.Contains(t, authorizeURL, "state=nonce-abc")
	assert.NotContains(t, authorizeURL, "scope=")
}

/*
TestAdapter_ExchangeCode verifies the form-encoded token exchange request and
response parsing.
*/
func TestAdapter_ExchangeCode(t *testing.T) {
	var receivedForm map[string]string

	tokenServer := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		require.NoError(t, request.ParseForm())
		receivedForm = map[string]string{
			"grant_type":    request.PostFormValue("grant_type"),
			"client_id":     request.PostFormValue("client_id"),
			"client_secret": request.PostFormValue("client_secret"),
			"code":          request.PostFormValue("code"),
			"redirect_uri":  request.PostFormValue("redirect_uri"),
			"state":         request.PostFormValue("state"),
		}
		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"access_token":"provider-token-xyz","token_type":"bearer"}`))
	}))
	defer tokenServer.Close()

	adapter := identity.NewNaverAdapter(providerSettings(tokenServer.URL, ""), tokenServer.Client())

	accessToken, err := adapter.ExchangeCode(context.Background(), "auth-code-1", "nonce-abc")
	require.NoError(t, err)

	assert.Equal(t, "provider-token-xyz", accessToken)
	assert.Equal(t, "authorization_code", receivedForm["grant_type"])
	assert.Equal(t, "client-123", receivedForm["client_id"])
	assert.Equal(t, "secret-456", receivedForm["client_secret"])
	assert.Equal(t, "auth-code-1", receivedForm["code"])
	assert.Equal(t, "http://localhost:8080/callback", receivedForm["redirect_uri"])
	assert.Equal(t, "nonce-abc", receivedForm["state"])
}

/*
TestAdapter_ExchangeCode_NoAccessToken verifies the terminal failure when the
provider answers without an access_token field.
*/
func TestAdapter_ExchangeCode_NoAccessToken(t *testing.T) {
	tokenServer := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"error":"invalid_grant"}`))
	}))
	defer tokenServer.Close()

	adapter := identity.NewGoogleAdapter(providerSettings(tokenServer.URL, ""), tokenServer.Client())

	_, err := adapter.ExchangeCode(context.Background(), "already-used-code", "")
	assert.ErrorIs(t, err, identity.ErrTokenExchangeFailed)
}

/*
TestAdapter_FetchUserInfo verifies the Bearer GET and payload decoding.
*/
func TestAdapter_FetchUserInfo(t *testing.T) {
	var receivedAuthorization string

	userInfoServer := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		receivedAuthorization = request.Header.Get("Authorization")
		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"email":"a@x.com","name":"Suhyeon"}`))
	}))
	defer userInfoServer.Close()

	adapter := identity.NewGoogleAdapter(providerSettings("", userInfoServer.URL), userInfoServer.Client())

	payload, err := adapter.FetchUserInfo(context.Background(), "provider-token-xyz")
	require.NoError(t, err)

	assert.Equal(t, "Bearer provider-token-xyz", receivedAuthorization)
	assert.Equal(t, "a@x.com", payload["email"])
}

/*
TestAdapter_FetchUserInfo_MalformedBody verifies the terminal failure on a
non-JSON body.
*/
func TestAdapter_FetchUserInfo_MalformedBody(t *testing.T) {
	userInfoServer := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, _ = writer.Write([]byte(`not json`))
	}))
	defer userInfoServer.Close()

	adapter := identity.NewKakaoAdapter(providerSettings("", userInfoServer.URL), userInfoServer.Client())

	_, err := adapter.FetchUserInfo(context.Background(), "token")
	assert.ErrorIs(t, err, identity.ErrUserInfoUnavailable)
}

/*
TestAdapter_FetchUserInfo_Unauthorized verifies the terminal failure on a
non-200 provider response.
*/
func TestAdapter_FetchUserInfo_Unauthorized(t *testing.T) {
	userInfoServer := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusUnauthorized)
	}))
	defer userInfoServer.Close()

	adapter := identity.NewNaverAdapter(providerSettings("", userInfoServer.URL), userInfoServer.Client())

	_, err := adapter.FetchUserInfo(context.Background(), "revoked-token")
	assert.ErrorIs(t, err, identity.ErrUserInfoUnavailable)
}
