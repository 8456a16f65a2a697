// Copyright (c) 2026 Daylist. All rights reserved.
// Author: park.suhyeon.dev@gmail.com

package release

import "context"

// Repository defines the data access contract for release checklist items.
type Repository interface {
	List(context context.Context, accountID int64) ([]*Release, error)
	FindByID(context context.Context, id int64) (*Release, error)
	Create(context context.Context, release *Release) error
	Update(context context.Context, release *Release) error
	Delete(context context.Context, id int64) error
}
