// Copyright (c) 2026 Daylist. All rights reserved.
// Author: park.suhyeon.dev@gmail.com

package dashboard

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

// Routes returns the session-protected dashboard route.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.summary)
	return router
}

func (handler *Handler) summary(writer http.ResponseWriter, request *http.Request) {
	accountID, err := requestutil.RequiredAccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	summary, err := handler.service.Summary(request.Context(), accountID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, summary)
}
