package postgres

import (
	"context"
	"database/sql"
	"strings"

	"star-dog-walker/internal/domain/users"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (
			id, email, password_hash,
			name, role, phone, address,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		u.ID,
		u.Email,
		u.PasswordHash,
		u.Name,
		string(u.Role),
		u.Phone,
		u.Address,
		u.CreatedAt,
		u.UpdatedAt,
	)
	return err
}

// Update no toca email ni role: son inmutables post-registro.
func (r *UsersRepo) Update(ctx context.Context, u users.User) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET
			name = $2,
			phone = $3,
			address = $4,
			updated_at = $5
		WHERE id = $1
	`,
		u.ID,
		u.Name,
		u.Phone,
		u.Address,
		u.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return users.User{}, ErrNotFound
	}
	return r.scanOne(r.db.QueryRowContext(ctx, `
		SELECT
			id, email, password_hash,
			name, role, phone, address,
			created_at, updated_at
		FROM users
		WHERE id = $1
	`, id))
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return users.User{}, ErrNotFound
	}
	return r.scanOne(r.db.QueryRowContext(ctx, `
		SELECT
			id, email, password_hash,
			name, role, phone, address,
			created_at, updated_at
		FROM users
		WHERE email = $1
	`, email))
}

func (r *UsersRepo) scanOne(row *sql.Row) (users.User, error) {
	var u users.User
	var role string
	if err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Name,
		&role,
		&u.Phone,
		&u.Address,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return users.User{}, ErrNotFound
		}
		return users.User{}, err
	}
	u.Role = users.Role(role)
	return u, nil
}
