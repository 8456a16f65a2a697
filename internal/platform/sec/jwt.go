// Copyright (c) 2026 Daylist. All rights reserved.
// Author: park.suhyeon.dev@gmail.com

// Package sec provides cryptographic primitives and session token management.
//
// # Architecture
//
// This package isolates security-sensitive code (token signing, nonce
// generation) from the domain logic. It acts as an Infrastructure service
// injected into the Application layer via narrow interfaces.
package sec

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Typed verification failures. Callers branch on these with [errors.Is]
// instead of string-matching library errors.
var (
	// ErrTokenExpired is returned when the token is past its expiry claim.
	ErrTokenExpired = errors.New("sec: token expired")

	// ErrTokenInvalid is returned when the signature does not verify.
	ErrTokenInvalid = errors.New("sec: token signature invalid")

	// ErrTokenMalformed is returned when the string is not a parseable JWT.
	ErrTokenMalformed = errors.New("sec: token malformed")
)

// TokenService issues and verifies stateless session tokens using HS256.
//
// # Why symmetric signing?
//
// Tokens are both issued and verified by this single service, so a shared
// secret (HMAC) suffices. The token is self-contained: the subject claim
// carries the account ID, letting [middleware.Authenticate] reconstruct the
// caller identity without a database lookup. There is no server-side
// revocation; compromise of the secret requires rotation plus re-login.
type TokenService struct {
	secret     []byte
	issuer     string
	timeToLive time.Duration
}

// NewTokenService creates a TokenService with the given signing secret and TTL.
func NewTokenService(secret, issuer string, timeToLive time.Duration) (*TokenService, error) {
	if len(secret) < 32 {
		return nil, fmt.Errorf("sec: signing secret must be at least 32 bytes, got %d", len(secret))
	}
	return &TokenService{
		secret:     []byte(secret),
		issuer:     issuer,
		timeToLive: timeToLive,
	}, nil
}

// Issue creates a signed session token whose subject is the account ID.
func (service *TokenService) Issue(accountID int64) (string, error) {
	currentTime := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(accountID, 10),
		Issuer:    service.issuer,
		IssuedAt:  jwt.NewNumericDate(currentTime),
		ExpiresAt: jwt.NewNumericDate(currentTime.Add(service.timeToLive)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// Verify checks the signature and validity of a session token string and
// returns the account ID encoded in its subject claim.
func (service *TokenService) Verify(tokenString string) (int64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return 0, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return 0, ErrTokenMalformed
		default:
			return 0, ErrTokenInvalid
		}
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return 0, ErrTokenInvalid
	}

	accountID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrTokenMalformed
	}

	return accountID, nil
}
