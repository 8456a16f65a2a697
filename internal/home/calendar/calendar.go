// Copyright (c) 2026 Daylist. All rights reserved.
// Author: park.suhyeon.dev@gmail.com

// Package calendar implements dated schedule events.
package calendar

import "time"

// EventType categorizes a calendar event.
type EventType string

const (
	EventTypeRelease  EventType = "RELEASE"
	EventTypeMeeting  EventType = "MEETING"
	EventTypeDeadline EventType = "DEADLINE"
	EventTypeOther    EventType = "OTHER"
)

// Valid reports whether the event type is a known category.
func (eventType EventType) Valid() bool {
	switch eventType {
	case EventTypeRelease, EventTypeMeeting, EventTypeDeadline, EventTypeOther:
		return true
	}
	return false
}

// Event is a dated schedule entry owned by an account.
type Event struct {
	ID        int64     `json:"id"`
	AccountID int64     `json:"-"`
	Date      string    `json:"date"`
	Title     string    `json:"title"`
	Type      EventType `json:"type"`
	CreatedAt time.Time `json:"-"`
}
