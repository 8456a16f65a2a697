// Copyright (c) 2026 Daylist. All rights reserved.
// Author: park.suhyeon.dev@gmail.com

package todo

import "context"

// Repository defines the data access contract for todos.
type Repository interface {
	List(context context.Context, accountID int64) ([]*Todo, error)
	ListByDate(context context.Context, accountID int64, date string) ([]*Todo, error)
	FindByID(context context.Context, id int64) (*Todo, error)
	Create(context context.Context, todo *Todo) error
	Update(context context.Context, todo *Todo) error
	Delete(context context.Context, id int64) error
}
