// Copyright (c) 2026 Daylist. All rights reserved.
// Author: park.suhyeon.dev@gmail.com

package release

import (
	"context"
	"log/slog"

	"github.com/suhyeonp/daylist/internal/platform/apperr"
	"github.com/suhyeonp/daylist/internal/platform/validate"
	"github.com/suhyeonp/daylist/pkg/pointer"
)

// Service implements the release checklist use cases with ownership
// enforcement.
type Service struct {
	repository Repository
	logger     *slog.Logger
}

func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{repository: repository, logger: logger}
}

// UpdateInput carries a partial update. Nil fields keep their stored
// value.
type UpdateInput struct {
	Text      *string
	Completed *bool
}

// List returns the caller's checklist items.
func (service *Service) List(context context.Context, accountID int64) ([]*Release, error) {
	return service.repository.List(context, accountID)
}

// Create validates and persists a new checklist item for the caller.
func (service *Service) Create(context context.Context, accountID int64, text string) (*Release, error) {
	validator := &validate.Validator{}
	if err := validator.Required("text", text).MaxLen("text", text, 500).Err(); err != nil {
		return nil, err
	}

	release := &Release{AccountID: accountID, Text: text}
	if err := service.repository.Create(context, release); err != nil {
		return nil, err
	}
	return release, nil
}

// Update applies a partial update to the caller's checklist item.
func (service *Service) Update(context context.Context, accountID, releaseID int64, input UpdateInput) (*Release, error) {
	release, err := service.owned(context, accountID, releaseID)
	if err != nil {
		return nil, err
	}

	text := pointer.Fallback(input.Text, release.Text)
	validator := &validate.Validator{}
	if err := validator.Required("text", text).MaxLen("text", text, 500).Err(); err != nil {
		return nil, err
	}

	release.Text = text
	release.Completed = pointer.Fallback(input.Completed, release.Completed)

	if err := service.repository.Update(context, release); err != nil {
		return nil, err
	}
	return release, nil
}

// Delete removes the caller's checklist item.
func (service *Service) Delete(context context.Context, accountID, releaseID int64) error {
	if _, err := service.owned(context, accountID, releaseID); err != nil {
		return err
	}
	return service.repository.Delete(context, releaseID)
}

// owned fetches a checklist item and enforces that the caller owns it.
func (service *Service) owned(context context.Context, accountID, releaseID int64) (*Release, error) {
	release, err := service.repository.FindByID(context, releaseID)
	if err != nil {
		return nil, err
	}
	if release.AccountID != accountID {
		return nil, apperr.Forbidden("Release item belongs to another account")
	}
	return release, nil
}
