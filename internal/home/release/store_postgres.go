// Copyright (c) 2026 Daylist. All rights reserved.
// Author: park.suhyeon.dev@gmail.com

package release

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

const releaseColumns = `id, account_id, text, completed, created_at`

func (repository *PostgresRepository) List(context context.Context, accountID int64) ([]*Release, error) {
	rows, err := repository.db.Query(context, `
		SELECT `+releaseColumns+`
		FROM releases
		WHERE account_id = $1
		ORDER BY id ASC
	`, accountID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_releases")
	}
	defer rows.Close()

	releases := make([]*Release, 0)
	for rows.Next() {
		release := &Release{}
		if err := rows.Scan(&release.ID, &release.AccountID, &release.Text, &release.Completed, &release.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_release")
		}
		releases = append(releases, release)
	}
	return releases, nil
}

func (repository *PostgresRepository) FindByID(context context.Context, id int64) (*Release, error) {
	release := &Release{}
	err := repository.db.QueryRow(context, `
		SELECT `+releaseColumns+`
		FROM releases
		WHERE id = $1
	`, id).Scan(&release.ID, &release.AccountID, &release.Text, &release.Completed, &release.CreatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "find_release_by_id")
	}
	return release, nil
}

func (repository *PostgresRepository) Create(context context.Context, release *Release) error {
	err := repository.db.QueryRow(context, `
		INSERT INTO releases (account_id, text, completed)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, release.AccountID, release.Text, release.Completed).
		Scan(&release.ID, &release.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_release")
	}
	return nil
}

func (repository *PostgresRepository) Update(context context.Context, release *Release) error {
	commandTag, err := repository.db.Exec(context, `
		UPDATE releases
		SET text = $2, completed = $3
		WHERE id = $1
	`, release.ID, release.Text, release.Completed)
	if err != nil {
		return dberr.Wrap(err, "update_release")
	}
	if commandTag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	commandTag, err := repository.db.Exec(context, `DELETE FROM releases WHERE id = $1`, id)
	if err != nil {
		return dberr.Wrap(err, "delete_release")
	}
	if commandTag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
