// Copyright (c) 2026 Daylist. All rights reserved.
// Author: park.suhyeon.dev@gmail.com

package calendar

import "context"

// Repository defines the data access contract for calendar events.
type Repository interface {
	List(context context.Context, accountID int64) ([]*Event, error)
	FindByID(context context.Context, id int64) (*Event, error)
	Create(context context.Context, event *Event) error
	Update(context context.Context, event *Event) error
	Delete(context context.Context, id int64) error
}
