package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/userdir/internal/common"
	"github.com/dmitrijs2005/userdir/internal/dbx"
	"github.com/dmitrijs2005/userdir/internal/server/models"
)

// SQLiteRepository stores users in a SQLite database. Uniqueness and
// not-found checks run inside transactions so a failed call leaves no
// partial writes.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func scanUser(row interface{ Scan(...any) error }) (*models.User, error) {
	var (
		id int64
		u  models.User
	)
	if err := row.Scan(&id, &u.Name, &u.Username, &u.Password, &u.Age, &u.IsMarried); err != nil {
		return nil, err
	}
	u.ID = strconv.FormatInt(id, 10)
	return &u, nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]*models.User, error) {
	query :=
		`SELECT id, name, username, password, age, is_married FROM users
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *SQLiteRepository) getByID(ctx context.Context, q dbx.DBTX, id string) (*models.User, error) {
	numID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		// Ids are stringified integers; anything else cannot exist.
		return nil, common.ErrorNotFound
	}

	query :=
		`SELECT id, name, username, password, age, is_married FROM users
		 WHERE id = ?
		 `

	u, err := scanUser(q.QueryRowContext(ctx, query, numID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return u, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.getByID(ctx, r.db, id)
}

func (r *SQLiteRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query :=
		`SELECT id, name, username, password, age, is_married FROM users
		 WHERE username = ?
		 `

	u, err := scanUser(r.db.QueryRowContext(ctx, query, username))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return u, nil
}

func (r *SQLiteRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	created := *user

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var exists int
		err := tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM users WHERE username = ?`, user.Username).Scan(&exists)
		if err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		if exists > 0 {
			return common.ErrorConflict
		}

		res, err := tx.ExecContext(ctx,
			`INSERT INTO users (name, username, password, age, is_married)
			 VALUES (?, ?, ?, ?, ?)`,
			user.Name, user.Username, user.Password, user.Age, user.IsMarried)
		if err != nil {
			return fmt.Errorf("db error: %w", err)
		}

		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		created.ID = strconv.FormatInt(id, 10)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, id string, upd *models.UserUpdate) (*models.User, error) {
	var updated *models.User

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		u, err := r.getByID(ctx, tx, id)
		if err != nil {
			return err
		}

		upd.Apply(u)

		_, err = tx.ExecContext(ctx,
			`UPDATE users SET name = ?, age = ?, is_married = ?
			 WHERE id = ?`,
			u.Name, u.Age, u.IsMarried, u.ID)
		if err != nil {
			return fmt.Errorf("db error: %w", err)
		}

		updated = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (r *SQLiteRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
