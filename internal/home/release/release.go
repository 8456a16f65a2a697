// Copyright (c) 2026 Daylist. All rights reserved.
// Author: park.suhyeon.dev@gmail.com

// Package release implements the release checklist.
package release

import "time"

// Release is one checklist item tracked toward a ship date.
type Release struct {
	ID        int64     `json:"id"`
	AccountID int64     `json:"-"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"-"`
}
