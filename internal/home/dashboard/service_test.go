// Copyright (c) 2026 Daylist. All rights reserved.
// Author: park.suhyeon.dev@gmail.com

package dashboard

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suhyeonp/daylist/internal/home/todo"
)

type fakeRepository struct {
	counts   []DayCount
	countOn  map[string]int
	lastFrom string
	lastTo   string
}

func (repository *fakeRepository) DailyCounts(_ context.Context, _ int64, from, to string) ([]DayCount, error) {
	repository.lastFrom = from
	repository.lastTo = to
	return repository.counts, nil
}

func (repository *fakeRepository) CountOn(_ context.Context, _ int64, date string) (int, error) {
	return repository.countOn[date], nil
}

type fakeTodoLister struct {
	byDate map[string][]*todo.Todo
}

func (lister *fakeTodoLister) ListByDate(_ context.Context, _ int64, date string) ([]*todo.Todo, error) {
	return lister.byDate[date], nil
}

// fixedClock pins the summary window to 2026-03-07 (a Saturday).
func fixedClock() time.Time {
	return time.Date(2026, time.March, 7, 10, 0, 0, 0, time.UTC)
}

func newTestService(repository *fakeRepository, todos *fakeTodoLister) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewService(repository, todos, logger)
	service.now = fixedClock
	return service
}

/*
TestSummary_ProgressMath verifies today's counts and progress plus the
overall weekly progress on known fixtures.
*/
func TestSummary_ProgressMath(t *testing.T) {
	repository := &fakeRepository{
		counts: []DayCount{
			{Date: "2026-03-05", Total: 4, Completed: 4},
			{Date: "2026-03-07", Total: 3, Completed: 1},
		},
		countOn: map[string]int{"2026-03-08": 2},
	}
	todos := &fakeTodoLister{byDate: map[string][]*todo.Todo{
		"2026-03-07": {
			{ID: 1, Text: "a", Completed: true},
			{ID: 2, Text: "b"},
			{ID: 3, Text: "c"},
		},
	}}
	service := newTestService(repository, todos)

	summary, err := service.Summary(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TodayTotal)
	assert.Equal(t, 1, summary.TodayCompleted)
	assert.Equal(t, 33, summary.TodayProgress)
	assert.Equal(t, 2, summary.TomorrowTotal)

	// 5 of 7 over the window, rounded.
	assert.Equal(t, 71, summary.WeeklyProgress)

	assert.Equal(t, "2026-03-01", repository.lastFrom)
	assert.Equal(t, "2026-03-07", repository.lastTo)
}

/*
TestSummary_WeeklyChartPadsEmptyDays verifies that the chart always
spans seven ascending days and fills zero rows for silent days.
*/
func TestSummary_WeeklyChartPadsEmptyDays(t *testing.T) {
	repository := &fakeRepository{
		counts:  []DayCount{{Date: "2026-03-03", Total: 2, Completed: 1}},
		countOn: map[string]int{},
	}
	service := newTestService(repository, &fakeTodoLister{byDate: map[string][]*todo.Todo{}})

	summary, err := service.Summary(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, summary.WeeklyChart, 7)
	assert.Equal(t, "2026-03-01", summary.WeeklyChart[0].Date)
	assert.Equal(t, "Sun", summary.WeeklyChart[0].Weekday)
	assert.Equal(t, "2026-03-07", summary.WeeklyChart[6].Date)
	assert.Equal(t, "Sat", summary.WeeklyChart[6].Weekday)

	assert.Equal(t, 2, summary.WeeklyChart[2].Total)
	assert.Equal(t, 1, summary.WeeklyChart[2].Completed)
	assert.Zero(t, summary.WeeklyChart[3].Total)
}

/*
TestSummary_EmptyAccount verifies zero progress with no stored todos.
*/
func TestSummary_EmptyAccount(t *testing.T) {
	repository := &fakeRepository{countOn: map[string]int{}}
	service := newTestService(repository, &fakeTodoLister{byDate: map[string][]*todo.Todo{}})

	summary, err := service.Summary(context.Background(), 1)
	require.NoError(t, err)

	assert.Zero(t, summary.TodayTotal)
	assert.Zero(t, summary.TodayProgress)
	assert.Zero(t, summary.TomorrowTotal)
	assert.Zero(t, summary.WeeklyProgress)
	require.Len(t, summary.WeeklyChart, 7)
}
