// Copyright (c) 2026 Daylist. All rights reserved.
// Author: park.suhyeon.dev@gmail.com

package dashboard

import (
	"context"

	"github.com/suhyeonp/daylist/internal/home/todo"
)

// DayCount is the stored per-day aggregate. Days with no todos produce
// no row.
type DayCount struct {
	Date      string
	Total     int
	Completed int
}

// Repository defines the aggregate queries behind the summary.
type Repository interface {
	DailyCounts(context context.Context, accountID int64, from, to string) ([]DayCount, error)
	CountOn(context context.Context, accountID int64, date string) (int, error)
}

// TodoLister is the slice of the todo repository the summary needs.
type TodoLister interface {
	ListByDate(context context.Context, accountID int64, date string) ([]*todo.Todo, error)
}
