package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"todoapp/internal/model"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user and fills in the generated id.
func (r *UserRepository) Create(ctx context.Context, u *model.User) error {
	query := `
        INSERT INTO users (email, password_hash, theme_mode)
        VALUES ($1, $2, $3)
        RETURNING id, created_at
    `
	return r.db.QueryRow(ctx, query, u.Email, u.PasswordHash, u.ThemeMode).
		Scan(&u.ID, &u.CreatedAt)
}

// FindByEmail returns the user registered under email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `
        SELECT id, email, password_hash, theme_mode, created_at
        FROM users
        WHERE email = $1
    `
	var u model.User
	err := r.db.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.ThemeMode, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByID returns the user with the given id.
func (r *UserRepository) FindByID(ctx context.Context, id int) (*model.User, error) {
	query := `
        SELECT id, email, password_hash, theme_mode, created_at
        FROM users
        WHERE id = $1
    `
	var u model.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.ThemeMode, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateTheme sets the theme preference and returns the updated user.
func (r *UserRepository) UpdateTheme(ctx context.Context, id int, theme string) (*model.User, error) {
	query := `
        UPDATE users
        SET theme_mode = $2
        WHERE id = $1
        RETURNING id, email, password_hash, theme_mode, created_at
    `
	var u model.User
	err := r.db.QueryRow(ctx, query, id, theme).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.ThemeMode, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
