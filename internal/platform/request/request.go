// Copyright (c) 2026 Daylist. All rights reserved.
// Author: park.suhyeon.dev@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/suhyeonp/daylist/internal/platform/apperr"
	"github.com/suhyeonp/daylist/internal/platform/constants"
	"github.com/suhyeonp/daylist/internal/platform/ctxutil"
	"github.com/suhyeonp/daylist/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Int64Param retrieves a named URL parameter and parses it as an int64 ID.

Returns:
  - int64: Parsed identifier
  - error: apperr.ValidationError if the value is not a positive integer
*/
func Int64Param(request *http.Request, name string) (int64, error) {
	raw := chi.URLParam(request, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.ValidationError("Invalid " + name + " parameter")
	}
	return id, nil
}

/*
BearerToken extracts the raw token from an 'Authorization: Bearer x' header.

Returns:
  - string: The token
  - error: apperr.Unauthorized if the header is absent or malformed
*/
func BearerToken(request *http.Request) (string, error) {
	header := request.Header.Get(constants.HeaderAuthorization)
	if header == "" {
		return "", apperr.Unauthorized("Authentication required")
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", apperr.Unauthorized("Invalid authorization format")
	}

	return parts[1], nil
}

/*
RequiredAccountID returns the account ID of the currently logged-in user.

Returns:
  - int64: Account ID
  - error: apperr.Unauthorized if not authenticated
*/
func RequiredAccountID(request *http.Request) (int64, error) {

	// Get the account ID injected by the Authenticate middleware
	accountID := ctxutil.GetAccountID(request.Context())

	// If the request is anonymous, return an error
	if accountID == 0 {
		return 0, apperr.Unauthorized("Authentication required")
	}

	return accountID, nil
}
