// Copyright (c) 2026 Daylist. All rights reserved.
// Author: park.suhyeon.dev@gmail.com

package identity

// Provider user-info documents arrive in three shapes:
//
//	Google: { "email": ..., "name": ... }
//	Kakao:  { "properties": { "nickname": ... }, "kakao_account": { "email": ... } }
//	Naver:  { "response": { "email": ..., "nickname": ... } }
//
// Normalize collapses them into one FederatedIdentity so everything past the
// adapter boundary is provider-agnostic.

/*
Normalize extracts the email and display name from a raw provider payload.

Parameters:
  - loginType: Which provider produced the payload
  - raw: The undecoded user-info document
  - accessToken: The provider token, carried into the identity

Returns:
  - *FederatedIdentity: The normalized identity
  - error: ErrMissingRequiredField when email or display name is absent
*/
func Normalize(loginType LoginType, raw map[string]any, accessToken string) (*FederatedIdentity, error) {
	var email, displayName string

	switch loginType {
	case LoginTypeGoogle:
		email = stringField(raw, "email")
		displayName = stringField(raw, "name")

	case LoginTypeKakao:
		email = stringField(nestedObject(raw, "kakao_account"), "email")
		displayName = stringField(nestedObject(raw, "properties"), "nickname")

	case LoginTypeNaver:
		response := nestedObject(raw, "response")
		email = stringField(response, "email")
		displayName = stringField(response, "nickname")

	default:
		return nil, ErrUnknownProvider
	}

	if email == "" || displayName == "" {
		return nil, ErrMissingRequiredField
	}

	return &FederatedIdentity{
		LoginType:   loginType,
		Email:       email,
		DisplayName: displayName,
		AccessToken: accessToken,
	}, nil
}

// nestedObject returns the named child object, or nil when absent or not an object.
func nestedObject(document map[string]any, key string) map[string]any {
	child, _ := document[key].(map[string]any)
	return child
}

// stringField returns the named string field, or "" when absent or not a string.
func stringField(document map[string]any, key string) string {
	if document == nil {
		return ""
	}
	value, _ := document[key].(string)
	return value
}
