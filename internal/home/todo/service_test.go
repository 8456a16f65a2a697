// Copyright (c) 2026 Daylist. All rights reserved.
// Author: park.suhyeon.dev@gmail.com

package todo_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suhyeonp/daylist/internal/home/todo"
	"github.com/suhyeonp/daylist/internal/platform/apperr"
)

type fakeRepository struct {
	nextID int64
	todos  map[int64]*todo.Todo
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{nextID: 1, todos: map[int64]*todo.Todo{}}
}

func (repository *fakeRepository) List(_ context.Context, accountID int64) ([]*todo.Todo, error) {
	var result []*todo.Todo
	for _, item := range repository.todos {
		if item.AccountID == accountID {
			result = append(result, item)
		}
	}
	return result, nil
}

func (repository *fakeRepository) ListByDate(_ context.Context, accountID int64, date string) ([]*todo.Todo, error) {
	var result []*todo.Todo
	for _, item := range repository.todos {
		if item.AccountID == accountID && item.DueDate == date {
			result = append(result, item)
		}
	}
	return result, nil
}

func (repository *fakeRepository) FindByID(_ context.Context, id int64) (*todo.Todo, error) {
	item, ok := repository.todos[id]
	if !ok {
		return nil, apperr.NotFound("Todo")
	}
	copied := *item
	return &copied, nil
}

func (repository *fakeRepository) Create(_ context.Context, item *todo.Todo) error {
	item.ID = repository.nextID
	repository.nextID++
	stored := *item
	repository.todos[item.ID] = &stored
	return nil
}

func (repository *fakeRepository) Update(_ context.Context, item *todo.Todo) error {
	if _, ok := repository.todos[item.ID]; !ok {
		return apperr.NotFound("Todo")
	}
	stored := *item
	repository.todos[item.ID] = &stored
	return nil
}

func (repository *fakeRepository) Delete(_ context.Context, id int64) error {
	if _, ok := repository.todos[id]; !ok {
		return apperr.NotFound("Todo")
	}
	delete(repository.todos, id)
	return nil
}

func newTestService() (*todo.Service, *fakeRepository) {
	repository := newFakeRepository()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return todo.NewService(repository, logger), repository
}

/*
TestCreate_DefaultsPriority verifies that a todo created without an
explicit priority is stored as MEDIUM.
*/
func TestCreate_DefaultsPriority(t *testing.T) {
	service, _ := newTestService()

	created, err := service.Create(context.Background(), 1, todo.CreateInput{
		Text:    "Ship the release notes",
		DueDate: "2026-03-01",
	})
	require.NoError(t, err)

	assert.Equal(t, todo.PriorityMedium, created.Priority)
	assert.False(t, created.Completed)
	assert.NotZero(t, created.ID)
}

/*
TestCreate_RejectsInvalidInput verifies field validation on create.
*/
func TestCreate_RejectsInvalidInput(t *testing.T) {
	service, _ := newTestService()

	cases := []struct {
		name  string
		input todo.CreateInput
	}{
		{name: "missing text", input: todo.CreateInput{DueDate: "2026-03-01"}},
		{name: "unknown priority", input: todo.CreateInput{Text: "x", Priority: "URGENT", DueDate: "2026-03-01"}},
		{name: "malformed date", input: todo.CreateInput{Text: "x", DueDate: "03/01/2026"}},
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
TestList_FiltersByDate verifies that a date query returns only todos due
that day, and that a malformed date is rejected.
*/
func TestList_FiltersByDate(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Create(context.Background(), 1, todo.CreateInput{Text: "today", DueDate: "2026-03-01"})
	require.NoError(t, err)
	_, err = service.Create(context.Background(), 1, todo.CreateInput{Text: "tomorrow", DueDate: "2026-03-02"})
	require.NoError(t, err)

	todos, err := service.List(context.Background(), 1, "2026-03-01")
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, "today", todos[0].Text)

	all, err := service.List(context.Background(), 1, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = service.List(context.Background(), 1, "not-a-date")
	require.Error(t, err)
}

/*
TestToggle_FlipsAndPersists verifies that toggling flips the completed
flag and that the flip survives a reload.
*/
func TestToggle_FlipsAndPersists(t *testing.T) {
	service, repository := newTestService()

	created, err := service.Create(context.Background(), 1, todo.CreateInput{Text: "flip me", DueDate: "2026-03-01"})
	require.NoError(t, err)

	toggled, err := service.Toggle(context.Background(), 1, created.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)

	stored, err := repository.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, stored.Completed)

	again, err := service.Toggle(context.Background(), 1, created.ID)
	require.NoError(t, err)
	assert.False(t, again.Completed)
}

/*
TestService_OwnershipEnforced verifies that update, toggle, and delete
reject a caller who does not own the todo.
*/
func TestService_OwnershipEnforced(t *testing.T) {
	service, _ := newTestService()

	created, err := service.Create(context.Background(), 1, todo.CreateInput{Text: "mine", DueDate: "2026-03-01"})
	require.NoError(t, err)

	_, err = service.Toggle(context.Background(), 2, created.ID)
	requireForbidden(t, err)

	_, err = service.Update(context.Background(), 2, created.ID, todo.UpdateInput{
		Text: "stolen", Priority: todo.PriorityLow, DueDate: "2026-03-01",
	})
	requireForbidden(t, err)

	err = service.Delete(context.Background(), 2, created.ID)
	requireForbidden(t, err)

	owned, err := service.List(context.Background(), 1, "")
	require.NoError(t, err)
	assert.Len(t, owned, 1)
}

/*
TestUpdate_ReplacesAllFields verifies full replacement semantics.
*/
func TestUpdate_ReplacesAllFields(t *testing.T) {
	service, _ := newTestService()

	created, err := service.Create(context.Background(), 1, todo.CreateInput{Text: "draft", DueDate: "2026-03-01"})
	require.NoError(t, err)

	updated, err := service.Update(context.Background(), 1, created.ID, todo.UpdateInput{
		Text:      "final",
		Completed: true,
		Priority:  todo.PriorityHigh,
		DueDate:   "2026-03-05",
	})
	require.NoError(t, err)

	assert.Equal(t, "final", updated.Text)
	assert.True(t, updated.Completed)
	assert.Equal(t, todo.PriorityHigh, updated.Priority)
	assert.Equal(t, "2026-03-05", updated.DueDate)
}

func requireForbidden(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "FORBIDDEN", appError.Code)
}
