package model

import "time"

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// User is a registered account. PasswordHash is never serialized.
type User struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	ThemeMode    string    `json:"theme_mode"`
	CreatedAt    time.Time `json:"created_at"`
}

// PublicUser is the view returned to clients.
type PublicUser struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	ThemeMode string `json:"theme_mode"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		ThemeMode: u.ThemeMode,
	}
}
