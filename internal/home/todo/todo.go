// Copyright (c) 2026 Daylist. All rights reserved.
// Author: park.suhyeon.dev@gmail.com

// Package todo implements the daily todo list.
package todo

import "time"

// Priority is the urgency level of a todo.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// Valid reports whether the priority is a known level.
func (priority Priority) Valid() bool {
	switch priority {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Todo is a single dated task owned by an account.
type Todo struct {
	ID        int64     `json:"id"`
	AccountID int64     `json:"-"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	Priority  Priority  `json:"priority"`
	DueDate   string    `json:"dueDate"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
