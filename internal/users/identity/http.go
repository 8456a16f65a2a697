// Copyright (c) 2026 Daylist. All rights reserved.
// Author: park.suhyeon.dev@gmail.com

package identity

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/suhyeonp/daylist/internal/platform/apperr"
	"github.com/suhyeonp/daylist/internal/platform/respond"
)

// # Definitions & Constructors

// Handler exposes the federated login endpoints.
//
// # Scope
//
// One handler serves all providers; the login type is baked into the route
// group at mount time (/google-authentication, /kakao-authentication,
// /naver-authentication).
type Handler struct {
	service   *Service
	responder *Responder
}

// NewHandler constructs a new [Handler] with its collaborators.
func NewHandler(service *Service, responder *Responder) *Handler {
	return &Handler{service: service, responder: responder}
}

// Routes returns the route group for one provider.
//
// # Endpoints
//   - GET /url         : Plain-text authorize URL.
//   - GET /login       : JSON login callback (302 to consent screen when code is absent).
//   - GET /front-login : Popup login callback rendering the postMessage bridge page.
func (handler *Handler) Routes(loginType LoginType) chi.Router {
	router := chi.NewRouter()

	router.Get("/url", handler.authorizeURL(loginType))
	router.Get("/login", handler.login(loginType))
	router.Get("/front-login", handler.frontLogin(loginType))

	return router
}

/*
authorizeURL handles GET /<provider>-authentication/url

Description: Returns the provider consent-screen URL as plain text so the
frontend can open it in a popup.
*/
func (handler *Handler) authorizeURL(loginType LoginType) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		authorizeURL, err := handler.service.AuthorizationURL(request.Context(), loginType)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.Text(writer, http.StatusOK, authorizeURL)
	}
}

/*
login handles GET /<provider>-authentication/login?code=&state=

Description: Without a code, redirects (302) to the consent screen. With a
code, resolves the login and answers with the raw resolution JSON
{token, tempToken, nickname, email, isNewUser}.
*/
func (handler *Handler) login(loginType LoginType) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		code := request.URL.Query().Get("code")

		// No code yet: send the caller to the provider's consent screen.
		if code == "" {
			handler.redirectToProvider(writer, request, loginType)
			return
		}

		resolution, err := handler.service.Resolve(request.Context(), loginType, code, request.URL.Query().Get("state"))
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		// The frontend consumes the resolution shape directly, unenveloped.
		respond.JSON(writer, http.StatusOK, resolution)
	}
}

/*
frontLogin handles GET /<provider>-authentication/front-login?code=&state=

Description: Popup variant of login. Terminal outcomes, success or failure,
are rendered as the postMessage bridge page so the opener window always
receives exactly one message.
*/
func (handler *Handler) frontLogin(loginType LoginType) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		code := request.URL.Query().Get("code")

		if code == "" {
			handler.redirectToProvider(writer, request, loginType)
			return
		}

		resolution, err := handler.service.Resolve(request.Context(), loginType, code, request.URL.Query().Get("state"))
		if err != nil {
			respond.HTML(writer, http.StatusOK, handler.responder.ErrorHTML(loginType, clientMessage(err)))
			return
		}

		respond.HTML(writer, http.StatusOK, handler.responder.SuccessHTML(loginType, resolution))
	}
}

// redirectToProvider issues the 302 to the provider consent screen.
func (handler *Handler) redirectToProvider(writer http.ResponseWriter, request *http.Request, loginType LoginType) {
	authorizeURL, err := handler.service.AuthorizationURL(request.Context(), loginType)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	http.Redirect(writer, request, authorizeURL, http.StatusFound)
}

// clientMessage extracts the client-safe message for the bridge page.
func clientMessage(err error) string {
	if appError := apperr.As(err); appError != nil {
		return appError.Message
	}
	return "Login failed"
}
