// Copyright (c) 2026 Daylist. All rights reserved.
// Author: park.suhyeon.dev@gmail.com

package todo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/suhyeonp/daylist/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const todoColumns = `id, account_id, text, completed, priority, to_char(due_date, 'YYYY-MM-DD'), created_at, updated_at`

func (repository *PostgresRepository) List(context context.Context, accountID int64) ([]*Todo, error) {
	rows, err := repository.db.Query(context, `
		SELECT `+todoColumns+`
		FROM todos
		WHERE account_id = $1
		ORDER BY due_date ASC, id ASC
	`, accountID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_todos")
	}
	defer rows.Close()

	return scanTodos(rows)
}

func (repository *PostgresRepository) ListByDate(context context.Context, accountID int64, date string) ([]*Todo, error) {
	rows, err := repository.db.Query(context, `
		SELECT `+todoColumns+`
		FROM todos
		WHERE account_id = $1 AND due_date = $2::date
		ORDER BY id ASC
	`, accountID, date)
	if err != nil {
		return nil, dberr.Wrap(err, "list_todos_by_date")
	}
	defer rows.Close()

	return scanTodos(rows)
}

func (repository *PostgresRepository) FindByID(context context.Context, id int64) (*Todo, error) {
	todo := &Todo{}
	err := repository.db.QueryRow(context, `
		SELECT `+todoColumns+`
		FROM todos
		WHERE id = $1
	`, id).Scan(&todo.ID, &todo.AccountID, &todo.Text, &todo.Completed, &todo.Priority, &todo.DueDate, &todo.CreatedAt, &todo.UpdatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "find_todo_by_id")
	}
	return todo, nil
}

func (repository *PostgresRepository) Create(context context.Context, todo *Todo) error {
	err := repository.db.QueryRow(context, `
		INSERT INTO todos (account_id, text, completed, priority, due_date)
		VALUES ($1, $2, $3, $4, $5::date)
		RETURNING id, created_at, updated_at
	`, todo.AccountID, todo.Text, todo.Completed, string(todo.Priority), todo.DueDate).
		Scan(&todo.ID, &todo.CreatedAt, &todo.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_todo")
	}
	return nil
}

func (repository *PostgresRepository) Update(context context.Context, todo *Todo) error {
	commandTag, err := repository.db.Exec(context, `
		UPDATE todos
		SET text = $2, completed = $3, priority = $4, due_date = $5::date, updated_at = NOW()
		WHERE id = $1
	`, todo.ID, todo.Text, todo.Completed, string(todo.Priority), todo.DueDate)
	if err != nil {
		return dberr.Wrap(err, "update_todo")
	}
	if commandTag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	commandTag, err := repository.db.Exec(context, `DELETE FROM todos WHERE id = $1`, id)
	if err != nil {
		return dberr.Wrap(err, "delete_todo")
	}
	if commandTag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// scanTodos drains a result set into hydrated entities.
func scanTodos(rows pgx.Rows) ([]*Todo, error) {
	todos := make([]*Todo, 0)
	for rows.Next() {
		todo := &Todo{}
		if err := rows.Scan(&todo.ID, &todo.AccountID, &todo.Text, &todo.Completed, &todo.Priority, &todo.DueDate, &todo.CreatedAt, &todo.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_todo")
		}
		todos = append(todos, todo)
	}
	return todos, nil
}
