// Copyright (c) 2026 Daylist. All rights reserved.
// Author: park.suhyeon.dev@gmail.com

package identity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suhyeonp/daylist/internal/users/identity"
)

/*
TestNormalize_Google verifies extraction from the flat Google payload.
*/
func TestNormalize_Google(t *testing.T) {
	raw := map[string]any{"email": "a@x.com", "name": "Suhyeon", "picture": "ignored"}

	federated, err := identity.Normalize(identity.LoginTypeGoogle, raw, "tok")
	require.NoError(t, err)

	assert.Equal(t, "a@x.com", federated.Email)
	assert.Equal(t, "Suhyeon", federated.DisplayName)
	assert.Equal(t, identity.LoginTypeGoogle, federated.LoginType)
	assert.Equal(t, "tok", federated.AccessToken)
}

/*
TestNormalize_Kakao verifies extraction from the nested Kakao payload.
*/
func TestNormalize_Kakao(t *testing.T) {
	raw := map[string]any{
		"properties":    map[string]any{"nickname": "수현"},
		"kakao_account": map[string]any{"email": "a@x.com"},
	}

	federated, err := identity.Normalize(identity.LoginTypeKakao, raw, "tok")
	require.NoError(t, err)

	assert.Equal(t, "a@x.com", federated.Email)
	assert.Equal(t, "수현", federated.DisplayName)
}

/*
TestNormalize_Naver verifies extraction from the enveloped Naver payload.
*/
func TestNormalize_Naver(t *testing.T) {
	raw := map[string]any{
		"resultcode": "00",
		"response":   map[string]any{"email": "a@x.com", "nickname": "suhyeon"},
	}

	federated, err := identity.Normalize(identity.LoginTypeNaver, raw, "tok")
	require.NoError(t, err)

	assert.Equal(t, "a@x.com", federated.Email)
	assert.Equal(t, "suhyeon", federated.DisplayName)
}

/*
TestNormalize_MissingFields verifies the uniform failure when email or
display name is absent, for every provider shape.
*/
func TestNormalize_MissingFields(t *testing.T) {
	cases := []struct {
		name      string
		loginType identity.LoginType
		raw       map[string]any
	}{
		{"google without email", identity.LoginTypeGoogle, map[string]any{"name": "Suhyeon"}},
		{"kakao without account object", identity.LoginTypeKakao, map[string]any{"properties": map[string]any{"nickname": "x"}}},
		{"naver with empty response", identity.LoginTypeNaver, map[string]any{"response": map[string]any{}}},
		{"naver without response object", identity.LoginTypeNaver, map[string]any{"resultcode": "024"}},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := identity.Normalize(testCase.loginType, testCase.raw, "tok")
			assert.ErrorIs(t, err, identity.ErrMissingRequiredField)
		})
	}
}
