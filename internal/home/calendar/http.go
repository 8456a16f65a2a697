// Copyright (c) 2026 Daylist. All rights reserved.
// Author: park.suhyeon.dev@gmail.com

package calendar

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

// Routes returns the session-protected calendar routes.
//
// # Endpoints
//   - GET    /     : List the caller's events.
//   - POST   /     : Create an event.
//   - PUT    /{id} : Replace an event.
//   - DELETE /{id} : Delete an event.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Post("/", handler.create)
	router.Put("/{id}", handler.update)
	router.Delete("/{id}", handler.remove)

	return router
}

type eventRequest struct {
	Date  string `json:"date"`
	Title string `json:"title"`
	Type  string `json:"type"`
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	accountID, err := requestutil.RequiredAccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	events, err := handler.service.List(request.Context(), accountID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, events)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	accountID, err := requestutil.RequiredAccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload eventRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.Create(request.Context(), accountID, EventInput{
		Date:  payload.Date,
		Title: payload.Title,
		Type:  EventType(payload.Type),
	})
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

	eventID, err := requestutil.Int64Param(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload eventRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.Update(request.Context(), accountID, eventID, EventInput{
		Date:  payload.Date,
		Title: payload.Title,
		Type:  EventType(payload.Type),
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

	eventID, err := requestutil.Int64Param(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), accountID, eventID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
