// Copyright (c) 2026 Daylist. All rights reserved.
// Author: park.suhyeon.dev@gmail.com

package release

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/suhyeonp/daylist/internal/platform/request"
	"github.com/suhyeonp/daylist/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the session-protected release checklist routes.
//
// # Endpoints
//   - GET    /     : List the caller's checklist items.
//   - POST   /     : Add a checklist item.
//   - PATCH  /{id} : Partially update an item.
//   - DELETE /{id} : Remove an item.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Post("/", handler.create)
	router.Patch("/{id}", handler.update)
	router.Delete("/{id}", handler.remove)

	return router
}

type createRequest struct {
	Text string `json:"text"`
}

type updateRequest struct {
	Text      *string `json:"text"`
	Completed *bool   `json:"completed"`
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	accountID, err := requestutil.RequiredAccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	releases, err := handler.service.List(request.Context(), accountID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, releases)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	accountID, err := requestutil.RequiredAccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload createRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.Create(request.Context(), accountID, payload.Text)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	accountID, err := requestutil.RequiredAccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	releaseID, err := requestutil.Int64Param(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload updateRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.Update(request.Context(), accountID, releaseID, UpdateInput{
		Text:      payload.Text,
		Completed: payload.Completed,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	accountID, err := requestutil.RequiredAccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	releaseID, err := requestutil.Int64Param(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), accountID, releaseID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
