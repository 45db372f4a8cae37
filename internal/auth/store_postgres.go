// Copyright (c) 2026 Cadenza. All rights reserved.

package auth

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cadenza-music/cadenza/internal/platform/apperr"
	"github.com/cadenza-music/cadenza/internal/platform/dberr"
)

// PostgresUserRepository implements [UserRepository] using pgx.
//
// # Error Mapping
//
// Storage-specific errors (pgx.ErrNoRows, SQLSTATE 23505) are mapped to
// domain-friendly [apperr.AppError] values by the dberr bridge so no storage
// detail leaks past this file.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new PostgreSQL implementation of the UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

const userColumns = `id, username, password_hash, token, created_at, updated_at`

// Create persists a new user record.
func (repository *PostgresUserRepository) Create(ctx context.Context, user *User) error {
	const query = `
		INSERT INTO users (id, username, password_hash, token, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	_, err := repository.pool.Exec(ctx, query,
		user.ID,
		user.Username,
		user.PasswordHash,
		user.Token,
		user.CreatedAt,
		user.UpdatedAt,
	)

	return dberr.Wrap(err, "user", "username already exists")
}

// FindByID retrieves a user record by primary key.
func (repository *PostgresUserRepository) FindByID(ctx context.Context, id string) (*User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return repository.scanOne(ctx, query, id)
}

// FindByUsername retrieves a user record by their unique username.
func (repository *PostgresUserRepository) FindByUsername(ctx context.Context, username string) (*User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return repository.scanOne(ctx, query, username)
}

// FindByToken retrieves the user whose stored token equals the given value.
func (repository *PostgresUserRepository) FindByToken(ctx context.Context, token string) (*User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE token = $1`
	return repository.scanOne(ctx, query, token)
}

// UpdateToken replaces the stored token for a user.
func (repository *PostgresUserRepository) UpdateToken(ctx context.Context, userID, token string) error {
	const query = `UPDATE users SET token = $2, updated_at = NOW() WHERE id = $1`

	cmd, err := repository.pool.Exec(ctx, query, userID, token)
	if err != nil {
		return dberr.Wrap(err, "user", "token already in use")
	}
	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("user")
	}

	return nil
}

// scanOne runs a single-row query and maps the result through dberr.
func (repository *PostgresUserRepository) scanOne(ctx context.Context, query string, arg any) (*User, error) {
	user := &User{}
	err := repository.pool.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.Token,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "user", "")
	}

	return user, nil
}
