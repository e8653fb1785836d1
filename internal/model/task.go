package model

import "time"

const (
	DefaultFontStyle = "Inter"
	DefaultFontColor = "#000000"
)

type Task struct {
	ID          int       `json:"id"`
	UserID      int       `json:"user_id"`
	Title       string    `json:"title"`
	IsCompleted bool      `json:"is_completed"`
	IsPriority  bool      `json:"is_priority"`
	Date        time.Time `json:"date"`
	FontStyle   string    `json:"font_style"`
	FontColor   string    `json:"font_color"`
	IsBold      bool      `json:"is_bold"`
	IsItalic    bool      `json:"is_italic"`
	IsUnderline bool      `json:"is_underline"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TaskPatch carries the client-updatable fields of a task. Nil means
// "leave unchanged". Owner, id and timestamps are deliberately absent.
type TaskPatch struct {
	Title       *string    `json:"title"`
	Date        *time.Time `json:"date"`
	IsCompleted *bool      `json:"is_completed"`
	IsPriority  *bool      `json:"is_priority"`
	FontStyle   *string    `json:"font_style"`
	FontColor   *string    `json:"font_color"`
	IsBold      *bool      `json:"is_bold"`
	IsItalic    *bool      `json:"is_italic"`
	IsUnderline *bool      `json:"is_underline"`
}
