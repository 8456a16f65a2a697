// Copyright (c) 2026 Daylist. All rights reserved.
// Author: park.suhyeon.dev@gmail.com

package todo

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

// Routes returns the session-protected todo routes.
//
// # Endpoints
//   - GET    /?date=     : List todos, optionally for one due date.
//   - POST   /           : Create a todo.
//   - PUT    /{id}       : Replace a todo.
//   - PUT    /{id}/toggle: Flip the completed flag.
//   - DELETE /{id}       : Delete a todo.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Post("/", handler.create)
	router.Put("/{id}", handler.update)
	router.Put("/{id}/toggle", handler.toggle)
	router.Delete("/{id}", handler.remove)

	return router
}

type todoRequest struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Priority  string `json:"priority"`
	DueDate   string `json:"dueDate"`
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	accountID, err := requestutil.RequiredAccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	todos, err := handler.service.List(request.Context(), accountID, request.URL.Query().Get("date"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, todos)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	accountID, err := requestutil.RequiredAccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload todoRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.Create(request.Context(), accountID, CreateInput{
		Text:     payload.Text,
		Priority: Priority(payload.Priority),
		DueDate:  payload.DueDate,
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

	todoID, err := requestutil.Int64Param(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload todoRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.Update(request.Context(), accountID, todoID, UpdateInput{
		Text:      payload.Text,
		Completed: payload.Completed,
		Priority:  Priority(payload.Priority),
		DueDate:   payload.DueDate,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) toggle(writer http.ResponseWriter, request *http.Request) {
	accountID, err := requestutil.RequiredAccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	todoID, err := requestutil.Int64Param(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	toggled, err := handler.service.Toggle(request.Context(), accountID, todoID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, toggled)
}

func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	accountID, err := requestutil.RequiredAccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	todoID, err := requestutil.Int64Param(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), accountID, todoID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
