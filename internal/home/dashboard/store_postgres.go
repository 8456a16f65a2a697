// Copyright (c) 2026 Daylist. All rights reserved.
// Author: park.suhyeon.dev@gmail.com

package dashboard

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

func (repository *PostgresRepository) DailyCounts(context context.Context, accountID int64, from, to string) ([]DayCount, error) {
	rows, err := repository.db.Query(context, `
		SELECT to_char(due_date, 'YYYY-MM-DD'),
		       COUNT(*),
		       COUNT(*) FILTER (WHERE completed)
		FROM todos
		WHERE account_id = $1 AND due_date BETWEEN $2::date AND $3::date
		GROUP BY due_date
		ORDER BY due_date ASC
	`, accountID, from, to)
	if err != nil {
		return nil, dberr.Wrap(err, "daily_todo_counts")
	}
	defer rows.Close()

	counts := make([]DayCount, 0)
	for rows.Next() {
		var count DayCount
		if err := rows.Scan(&count.Date, &count.Total, &count.Completed); err != nil {
			return nil, dberr.Wrap(err, "scan_daily_count")
		}
		counts = append(counts, count)
	}
	return counts, nil
}

func (repository *PostgresRepository) CountOn(context context.Context, accountID int64, date string) (int, error) {
	var total int
	err := repository.db.QueryRow(context, `
		SELECT COUNT(*) FROM todos WHERE account_id = $1 AND due_date = $2::date
	`, accountID, date).Scan(&total)
	if err != nil {
		return 0, dberr.Wrap(err, "count_todos_on_date")
	}
	return total, nil
}
