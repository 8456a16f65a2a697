// Copyright (c) 2026 Daylist. All rights reserved.
// Author: park.suhyeon.dev@gmail.com

package calendar_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suhyeonp/daylist/internal/home/calendar"
	"github.com/suhyeonp/daylist/internal/platform/apperr"
)

type fakeRepository struct {
	nextID int64
	events map[int64]*calendar.Event
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{nextID: 1, events: map[int64]*calendar.Event{}}
}

func (repository *fakeRepository) List(_ context.Context, accountID int64) ([]*calendar.Event, error) {
	var result []*calendar.Event
	for _, item := range repository.events {
		if item.AccountID == accountID {
			result = append(result, item)
		}
	}
	return result, nil
}

func (repository *fakeRepository) FindByID(_ context.Context, id int64) (*calendar.Event, error) {
	item, ok := repository.events[id]
	if !ok {
		return nil, apperr.NotFound("Event")
	}
	copied := *item
	return &copied, nil
}

func (repository *fakeRepository) Create(_ context.Context, item *calendar.Event) error {
	item.ID = repository.nextID
	repository.nextID++
	stored := *item
	repository.events[item.ID] = &stored
	return nil
}

func (repository *fakeRepository) Update(_ context.Context, item *calendar.Event) error {
	if _, ok := repository.events[item.ID]; !ok {
		return apperr.NotFound("Event")
	}
	stored := *item
	repository.events[item.ID] = &stored
	return nil
}

func (repository *fakeRepository) Delete(_ context.Context, id int64) error {
	if _, ok := repository.events[id]; !ok {
		return apperr.NotFound("Event")
	}
	delete(repository.events, id)
	return nil
}

func newTestService() *calendar.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return calendar.NewService(newFakeRepository(), logger)
}

/*
TestCreate_DefaultsTypeToOther verifies that an event created without
an explicit type is stored as OTHER.
*/
func TestCreate_DefaultsTypeToOther(t *testing.T) {
	service := newTestService()

	created, err := service.Create(context.Background(), 1, calendar.EventInput{
		Date:  "2026-04-10",
		Title: "Sprint review",
	})
	require.NoError(t, err)
	assert.Equal(t, calendar.EventTypeOther, created.Type)
}

/*
TestCreate_RejectsInvalidInput verifies field validation on create.
*/
func TestCreate_RejectsInvalidInput(t *testing.T) {
	service := newTestService()

	cases := []struct {
		name  string
		input calendar.EventInput
	}{
		{name: "missing title", input: calendar.EventInput{Date: "2026-04-10"}},
		{name: "malformed date", input: calendar.EventInput{Date: "April 10", Title: "x"}},
		{name: "unknown type", input: calendar.EventInput{Date: "2026-04-10", Title: "x", Type: "PARTY"}},
	}
	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := service.Create(context.Background(), 1, testCase.input)
			require.Error(t, err)

			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, "VALIDATION_ERROR", appError.Code)
		})
	}
}

/*
TestUpdate_ReplacesAllFields verifies full replacement semantics.
*/
func TestUpdate_ReplacesAllFields(t *testing.T) {
	service := newTestService()

	created, err := service.Create(context.Background(), 1, calendar.EventInput{
		Date:  "2026-04-10",
		Title: "Sprint review",
		Type:  calendar.EventTypeMeeting,
	})
	require.NoError(t, err)

	updated, err := service.Update(context.Background(), 1, created.ID, calendar.EventInput{
		Date:  "2026-04-11",
		Title: "v2.0 cutoff",
		Type:  calendar.EventTypeDeadline,
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-04-11", updated.Date)
	assert.Equal(t, "v2.0 cutoff", updated.Title)
	assert.Equal(t, calendar.EventTypeDeadline, updated.Type)
}

/*
TestService_OwnershipEnforced verifies that update and delete reject a
caller who does not own the event.
*/
func TestService_OwnershipEnforced(t *testing.T) {
	service := newTestService()

	created, err := service.Create(context.Background(), 1, calendar.EventInput{
		Date:  "2026-04-10",
		Title: "mine",
		Type:  calendar.EventTypeMeeting,
	})
	require.NoError(t, err)

	_, err = service.Update(context.Background(), 2, created.ID, calendar.EventInput{
		Date:  "2026-04-11",
		Title: "stolen",
		Type:  calendar.EventTypeMeeting,
	})
	requireForbidden(t, err)

	err = service.Delete(context.Background(), 2, created.ID)
	requireForbidden(t, err)
}

func requireForbidden(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "FORBIDDEN", appError.Code)
}
