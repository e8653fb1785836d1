package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"todoapp/internal/model"
	"todoapp/internal/util"
)

var (
	ErrMissingField       = errors.New("email and password are required")
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrBadTheme           = errors.New("theme_mode must be light or dark")
)

// UserStore is the slice of the credential store the service needs. Lookups
// that find nothing return pgx.ErrNoRows.
type UserStore interface {
	Create(ctx context.Context, u *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id int) (*model.User, error)
	UpdateTheme(ctx context.Context, id int, theme string) (*model.User, error)
}

type Service struct {
	users  UserStore
	tokens *util.TokenService
}

func NewService(users UserStore, tokens *util.TokenService) *Service {
	return &Service{users: users, tokens: tokens}
}

// Signup registers a new account and returns a fresh token for it.
func (s *Service) Signup(ctx context.Context, email, password string) (string, *model.User, error) {
	if email == "" || password == "" {
		return "", nil, ErrMissingField
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return "", nil, fmt.Errorf("lookup user: %w", err)
	}
	if existing != nil {
		return "", nil, ErrEmailTaken
	}

	hash, err := util.HashPassword(password)
	if err != nil {
		return "", nil, fmt.Errorf("hash password: %w", err)
	}

	u := &model.User{
		Email:        email,
		PasswordHash: hash,
		ThemeMode:    model.ThemeLight,
	}
	if err := s.users.Create(ctx, u); err != nil {
		// Two concurrent signups can both pass the FindByEmail check; the
		// loser hits the unique index on email instead.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return "", nil, ErrEmailTaken
		}
		return "", nil, fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, u, nil
}

// Login checks credentials and returns a token. Unknown email and wrong
// password fail identically so callers cannot probe which emails exist.
func (s *Service) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	if email == "" || password == "" {
		return "", nil, ErrMissingField
	}

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("lookup user: %w", err)
	}

	if !util.CheckPassword(password, u.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, u, nil
}

// Me loads the current account record for an already-verified identity.
func (s *Service) Me(ctx context.Context, userID int) (*model.User, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	return u, nil
}

// UpdateTheme stores the account's theme preference.
func (s *Service) UpdateTheme(ctx context.Context, userID int, theme string) (*model.User, error) {
	if theme != model.ThemeLight && theme != model.ThemeDark {
		return nil, ErrBadTheme
	}

	u, err := s.users.UpdateTheme(ctx, userID, theme)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("update theme: %w", err)
	}
	return u, nil
}
