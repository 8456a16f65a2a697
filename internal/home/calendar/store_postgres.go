// Copyright (c) 2026 Daylist. All rights reserved.
// Author: park.suhyeon.dev@gmail.com

package calendar

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/suhyeonp/daylist/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const eventColumns = `id, account_id, to_char(event_date, 'YYYY-MM-DD'), title, event_type, created_at`

func (repository *PostgresRepository) List(context context.Context, accountID int64) ([]*Event, error) {
	rows, err := repository.db.Query(context, `
		SELECT `+eventColumns+`
		FROM calendar_events
		WHERE account_id = $1
		ORDER BY event_date ASC, id ASC
	`, accountID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_calendar_events")
	}
	defer rows.Close()

	events := make([]*Event, 0)
	for rows.Next() {
		event := &Event{}
		if err := rows.Scan(&event.ID, &event.AccountID, &event.Date, &event.Title, &event.Type, &event.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_calendar_event")
		}
		events = append(events, event)
	}
	return events, nil
}

func (repository *PostgresRepository) FindByID(context context.Context, id int64) (*Event, error) {
	event := &Event{}
	err := repository.db.QueryRow(context, `
		SELECT `+eventColumns+`
		FROM calendar_events
		WHERE id = $1
	`, id).Scan(&event.ID, &event.AccountID, &event.Date, &event.Title, &event.Type, &event.CreatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "find_calendar_event_by_id")
	}
	return event, nil
}

func (repository *PostgresRepository) Create(context context.Context, event *Event) error {
	err := repository.db.QueryRow(context, `
		INSERT INTO calendar_events (account_id, event_date, title, event_type)
		VALUES ($1, $2::date, $3, $4)
		RETURNING id, created_at
	`, event.AccountID, event.Date, event.Title, string(event.Type)).
		Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_calendar_event")
	}
	return nil
}

func (repository *PostgresRepository) Update(context context.Context, event *Event) error {
	commandTag, err := repository.db.Exec(context, `
		UPDATE calendar_events
		SET event_date = $2::date, title = $3, event_type = $4
		WHERE id = $1
	`, event.ID, event.Date, event.Title, string(event.Type))
	if err != nil {
		return dberr.Wrap(err, "update_calendar_event")
	}
	if commandTag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	commandTag, err := repository.db.Exec(context, `DELETE FROM calendar_events WHERE id = $1`, id)
	if err != nil {
		return dberr.Wrap(err, "delete_calendar_event")
	}
	if commandTag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
