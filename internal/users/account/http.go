// Copyright (c) 2026 Daylist. All rights reserved.
// Author: park.suhyeon.dev@gmail.com

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/suhyeonp/daylist/internal/platform/middleware"
	requestutil "github.com/suhyeonp/daylist/internal/platform/request"
	"github.com/suhyeonp/daylist/internal/platform/respond"
	"github.com/suhyeonp/daylist/internal/users/identity"
)

// Handler implements the account HTTP endpoints.
type Handler struct {
	accountService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{accountService: service}
}

// Routes returns a [chi.Router] configured with account routes.
//
// # Endpoints
//   - POST /signup    : Completes enrollment with a provisional provider token.
//   - GET /me         : Returns the caller's profile.
//   - PUT /nickname   : Updates the caller's display name.
//   - DELETE /        : Deletes the account and everything it owns.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Signup authenticates with the provisional provider token, not a session.
	router.Post("/signup", handler.signup)

	// Session-protected endpoints
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/me", handler.me)
		r.Put("/nickname", handler.updateNickname)
		r.Delete("/", handler.deleteAccount)
	})

	return router
}

// # Request & Response Payloads

type signupRequest struct {
	LoginType string `json:"loginType"`
	Email     string `json:"email"`
	Nickname  string `json:"nickname"`
}

type signupResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Data    *SignUpResult `json:"data"`
}

type updateNicknameRequest struct {
	Nickname string `json:"nickname"`
}

/*
signup handles POST /account/signup

Description: Exchanges the provisional provider token plus the normalized
identity fields for a real account and its first session token.

Request:
  - Header: Authorization: Bearer <provisional provider token>
  - Body: signupRequest (loginType, email, nickname)

Response:
  - 200: {success, message, data:{id, email, nickname, userToken}}
  - 401: Missing provisional credential
  - 409: (email, loginType) already registered
*/
func (handler *Handler) signup(writer http.ResponseWriter, request *http.Request) {
	provisionalToken, err := requestutil.BearerToken(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload signupRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.accountService.SignUp(request.Context(), provisionalToken, SignUpInput{
		LoginType: identity.LoginType(payload.LoginType),
		Email:     payload.Email,
		Nickname:  payload.Nickname,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.JSON(writer, http.StatusOK, signupResponse{
		Success: true,
		Message: "Signup completed",
		Data:    result,
	})
}

// me handles GET /account/me
func (handler *Handler) me(writer http.ResponseWriter, request *http.Request) {
	accountID, err := requestutil.RequiredAccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.accountService.Profile(request.Context(), accountID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, profile)
}

// updateNickname handles PUT /account/nickname
func (handler *Handler) updateNickname(writer http.ResponseWriter, request *http.Request) {
	accountID, err := requestutil.RequiredAccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload updateNicknameRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.accountService.UpdateNickname(request.Context(), accountID, payload.Nickname); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]string{"message": "Nickname updated"})
}

// deleteAccount handles DELETE /account
func (handler *Handler) deleteAccount(writer http.ResponseWriter, request *http.Request) {
	accountID, err := requestutil.RequiredAccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.accountService.Delete(request.Context(), accountID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]string{"message": "Account deleted"})
}
