// Copyright (c) 2026 Daylist. All rights reserved.
// Author: park.suhyeon.dev@gmail.com

package dashboard

import (
	"context"
	"log/slog"
	"time"
)

const dateLayout = "2006-01-02"

// Service computes the home summary from stored todo rows.
type Service struct {
	repository Repository
	todos      TodoLister
	logger     *slog.Logger
	now        func() time.Time
}

func NewService(repository Repository, todos TodoLister, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		todos:      todos,
		logger:     logger,
		now:        time.Now,
	}
}

/*
Summary builds the caller's dashboard for the current day.

The weekly chart covers the six days before today plus today, in
ascending date order, with zero rows for days that have no todos.

Parameters:
  - context: request-scoped context.
  - accountID: owner of the aggregated rows.

Returns:
  - *Summary: today's todos and counts, tomorrow's count, and the
    weekly chart.
  - error: repository failures.
*/
func (service *Service) Summary(context context.Context, accountID int64) (*Summary, error) {
	today := service.now().Format(dateLayout)
	tomorrow := service.now().AddDate(0, 0, 1).Format(dateLayout)
	weekStart := service.now().AddDate(0, 0, -6).Format(dateLayout)

	todayTodos, err := service.todos.ListByDate(context, accountID, today)
	if err != nil {
		return nil, err
	}

	tomorrowTotal, err := service.repository.CountOn(context, accountID, tomorrow)
	if err != nil {
		return nil, err
	}

	counts, err := service.repository.DailyCounts(context, accountID, weekStart, today)
	if err != nil {
		return nil, err
	}

	todayCompleted := 0
	for _, item := range todayTodos {
		if item.Completed {
			todayCompleted++
		}
	}

	summary := &Summary{
		TodayTodos:     todayTodos,
		TodayTotal:     len(todayTodos),
		TodayCompleted: todayCompleted,
		TodayProgress:  percentage(todayCompleted, len(todayTodos)),
		TomorrowTotal:  tomorrowTotal,
		WeeklyChart:    service.buildWeeklyChart(counts),
	}

	weekTotal, weekCompleted := 0, 0
	for _, day := range summary.WeeklyChart {
		weekTotal += day.Total
		weekCompleted += day.Completed
	}
	summary.WeeklyProgress = percentage(weekCompleted, weekTotal)

	return summary, nil
}

// buildWeeklyChart fills the trailing 7-day window, padding days the
// aggregate query skipped.
func (service *Service) buildWeeklyChart(counts []DayCount) []DayStat {
	byDate := make(map[string]DayCount, len(counts))
	for _, count := range counts {
		byDate[count.Date] = count
	}

	chart := make([]DayStat, 0, 7)
	for offset := -6; offset <= 0; offset++ {
		day := service.now().AddDate(0, 0, offset)
		date := day.Format(dateLayout)
		count := byDate[date]
		chart = append(chart, DayStat{
			Date:      date,
			Weekday:   day.Format("Mon"),
			Total:     count.Total,
			Completed: count.Completed,
		})
	}
	return chart
}

// percentage returns completed/total as a whole percent, 0 when empty.
func percentage(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(float64(completed)/float64(total)*100 + 0.5)
}
