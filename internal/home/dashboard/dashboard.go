// Copyright (c) 2026 Daylist. All rights reserved.
// Author: park.suhyeon.dev@gmail.com

// Package dashboard aggregates todo activity into the home summary.
package dashboard

import "github.com/suhyeonp/daylist/internal/home/todo"

// DayStat is one day's todo totals for the weekly chart.
type DayStat struct {
	Date      string `json:"date"`
	Weekday   string `json:"weekday"`
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
}

// Summary is the home dashboard payload. Progress values are whole
// percentages.
type Summary struct {
	TodayTodos     []*todo.Todo `json:"todayTodos"`
	TodayTotal     int          `json:"todayTotal"`
	TodayCompleted int          `json:"todayCompleted"`
	TodayProgress  int          `json:"todayProgress"`
	TomorrowTotal  int          `json:"tomorrowTotal"`
	WeeklyChart    []DayStat    `json:"weeklyChart"`
	WeeklyProgress int          `json:"weeklyProgress"`
}
