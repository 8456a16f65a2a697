// Copyright (c) 2026 Daylist. All rights reserved.
// Author: park.suhyeon.dev@gmail.com

package calendar

import (
	"context"
	"log/slog"

	"github.com/suhyeonp/daylist/internal/platform/apperr"
	"github.com/suhyeonp/daylist/internal/platform/validate"
)

// Service implements the calendar use cases with ownership enforcement.
type Service struct {
	repository Repository
	logger     *slog.Logger
}

func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{repository: repository, logger: logger}
}

// EventInput holds the fields for a new or replaced event.
type EventInput struct {
	Date  string
	Title string
	Type  EventType
}

func validateEvent(input EventInput) error {
	validator := &validate.Validator{}
	return validator.
		Date("date", input.Date).
		Required("title", input.Title).
		MaxLen("title", input.Title, 200).
		Custom("type", !input.Type.Valid(), "Unknown event type").
		Err()
}

// List returns the caller's events ordered by date.
func (service *Service) List(context context.Context, accountID int64) ([]*Event, error) {
	return service.repository.List(context, accountID)
}

// Create validates and persists a new event for the caller.
func (service *Service) Create(context context.Context, accountID int64, input EventInput) (*Event, error) {
	if input.Type == "" {
		input.Type = EventTypeOther
	}
	if err := validateEvent(input); err != nil {
		return nil, err
	}

	event := &Event{
		AccountID: accountID,
		Date:      input.Date,
		Title:     input.Title,
		Type:      input.Type,
	}
	if err := service.repository.Create(context, event); err != nil {
		return nil, err
	}
	return event, nil
}

// Update replaces all mutable fields of the caller's event.
func (service *Service) Update(context context.Context, accountID, eventID int64, input EventInput) (*Event, error) {
	if err := validateEvent(input); err != nil {
		return nil, err
	}

	event, err := service.owned(context, accountID, eventID)
	if err != nil {
		return nil, err
	}

	event.Date = input.Date
	event.Title = input.Title
	event.Type = input.Type

	if err := service.repository.Update(context, event); err != nil {
		return nil, err
	}
	return event, nil
}

// Delete removes the caller's event.
func (service *Service) Delete(context context.Context, accountID, eventID int64) error {
	if _, err := service.owned(context, accountID, eventID); err != nil {
		return err
	}
	return service.repository.Delete(context, eventID)
}

// owned fetches an event and enforces that the caller owns it.
func (service *Service) owned(context context.Context, accountID, eventID int64) (*Event, error) {
	event, err := service.repository.FindByID(context, eventID)
	if err != nil {
		return nil, err
	}
	if event.AccountID != accountID {
		return nil, apperr.Forbidden("Event belongs to another account")
	}
	return event, nil
}
