// Copyright (c) 2026 Daylist. All rights reserved.
// Author: park.suhyeon.dev@gmail.com

package todo

import (
	"context"
	"log/slog"

	"github.com/suhyeonp/daylist/internal/platform/apperr"
	"github.com/suhyeonp/daylist/internal/platform/validate"
)

// Service implements the todo use cases with ownership enforcement.
type Service struct {
	repository Repository
	logger     *slog.Logger
}

func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{repository: repository, logger: logger}
}

// CreateInput holds the fields for a new todo.
type CreateInput struct {
	Text     string
	Priority Priority
	DueDate  string
}

// UpdateInput holds the full replacement fields for an existing todo.
type UpdateInput struct {
	Text      string
	Completed bool
	Priority  Priority
	DueDate   string
}

func validateFields(text string, priority Priority, dueDate string) error {
	validator := &validate.Validator{}
	return validator.
		Required("text", text).
		MaxLen("text", text, 500).
		Custom("priority", !priority.Valid(), "Unknown priority level").
		Date("dueDate", dueDate).
		Err()
}

// List returns the caller's todos, optionally filtered to one due date.
func (service *Service) List(context context.Context, accountID int64, date string) ([]*Todo, error) {
	if date == "" {
		return service.repository.List(context, accountID)
	}

	validator := &validate.Validator{}
	if err := validator.Date("date", date).Err(); err != nil {
		return nil, err
	}
	return service.repository.ListByDate(context, accountID, date)
}

// Create validates and persists a new todo for the caller.
func (service *Service) Create(context context.Context, accountID int64, input CreateInput) (*Todo, error) {
	if input.Priority == "" {
		input.Priority = PriorityMedium
	}
	if err := validateFields(input.Text, input.Priority, input.DueDate); err != nil {
		return nil, err
	}

	todo := &Todo{
		AccountID: accountID,
		Text:      input.Text,
		Priority:  input.Priority,
		DueDate:   input.DueDate,
	}
	if err := service.repository.Create(context, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

// Update replaces all mutable fields of the caller's todo.
func (service *Service) Update(context context.Context, accountID, todoID int64, input UpdateInput) (*Todo, error) {
	if err := validateFields(input.Text, input.Priority, input.DueDate); err != nil {
		return nil, err
	}

	todo, err := service.owned(context, accountID, todoID)
	if err != nil {
		return nil, err
	}

	todo.Text = input.Text
	todo.Completed = input.Completed
	todo.Priority = input.Priority
	todo.DueDate = input.DueDate

	if err := service.repository.Update(context, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

// Toggle flips the completed flag of the caller's todo.
func (service *Service) Toggle(context context.Context, accountID, todoID int64) (*Todo, error) {
	todo, err := service.owned(context, accountID, todoID)
	if err != nil {
		return nil, err
	}

	todo.Completed = !todo.Completed
	if err := service.repository.Update(context, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

// Delete removes the caller's todo.
func (service *Service) Delete(context context.Context, accountID, todoID int64) error {
	if _, err := service.owned(context, accountID, todoID); err != nil {
		return err
	}
	return service.repository.Delete(context, todoID)
}

// owned fetches a todo and enforces that the caller owns it.
func (service *Service) owned(context context.Context, accountID, todoID int64) (*Todo, error) {
	todo, err := service.repository.FindByID(context, todoID)
	if err != nil {
		return nil, err
	}
	if todo.AccountID != accountID {
		return nil, apperr.Forbidden("Todo belongs to another account")
	}
	return todo, nil
}
