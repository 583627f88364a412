package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"ofppt/internal/domain"
	"ofppt/pkg/database"
)

// ErrNotFound is returned when no row matches the requested id.
var ErrNotFound = errors.New("user not found")

// DBTX is satisfied by *sql.DB, *sql.Conn and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

const userColumns = `id, username, email, role, created_at, updated_at`

// UsersStore runs the auth table statements on a single handle.
type UsersStore struct {
	db      DBTX
	dialect database.Dialect
}

func NewUsersStore(db DBTX, dialect database.Dialect) *UsersStore {
	return &UsersStore{db: db, dialect: dialect}
}

// GetByID returns the public columns of one user. Password and pin are never selected.
func (s *UsersStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := s.dialect.Rebind(`SELECT ` + userColumns + ` FROM auth WHERE id = ?`)

	var user domain.User
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetAll returns every user in the order the database yields them.
func (s *UsersStore) GetAll(ctx context.Context) ([]domain.User, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+userColumns+` FROM auth`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.Email,
			&user.Role,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

// Create inserts the user and returns the id assigned by the database.
// user.Password must already be hashed.
func (s *UsersStore) Create(ctx context.Context, user *domain.User) (int64, error) {
	query := `INSERT INTO auth (username, email, password, pin, role) VALUES (?, ?, ?, ?, ?)`
	args := []any{user.Username, user.Email, user.Password, user.Pin, user.Role}

	if s.dialect.UseReturning() {
		var id int64
		err := s.db.QueryRowContext(ctx, s.dialect.Rebind(query+` RETURNING id`), args...).Scan(&id)
		if err != nil {
			return 0, err
		}
		return id, nil
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update sets only the non-nil columns of changes and returns the affected row count.
func (s *UsersStore) Update(ctx context.Context, id int64, changes domain.UserChanges) (int64, error) {
	if changes.Empty() {
		return 0, errors.New("update: no columns to set")
	}

	var (
		fields []string
		values []any
	)
	add := func(column string, value *string) {
		if value != nil {
			fields = append(fields, column+" = ?")
			values = append(values, *value)
		}
	}
	add("username", changes.Username)
	add("email", changes.Email)
	add("password", changes.Password)
	add("pin", changes.Pin)
	add("role", changes.Role)

	fields = append(fields, "updated_at = CURRENT_TIMESTAMP")
	values = append(values, id)
	query := s.dialect.Rebind(`UPDATE auth SET ` + strings.Join(fields, ", ") + ` WHERE id = ?`)

	res, err := s.db.ExecContext(ctx, query, values...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Delete removes the user and returns the affected row count.
func (s *UsersStore) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := s.db.ExecContext(ctx, s.dialect.Rebind(`DELETE FROM auth WHERE id = ?`), id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
