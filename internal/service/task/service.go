package task

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"todoapp/internal/model"
)

var (
	ErrNotFound   = errors.New("task not found")
	ErrForbidden  = errors.New("not the task owner")
	ErrEmptyTitle = errors.New("task title is required")
)

// TaskStore is the slice of the task store the service needs. FindByID
// returns pgx.ErrNoRows when the id does not exist.
type TaskStore interface {
	Insert(ctx context.Context, t *model.Task) error
	ListByOwner(ctx context.Context, userID int) ([]model.Task, error)
	FindByID(ctx context.Context, id int) (*model.Task, error)
	Update(ctx context.Context, t *model.Task) error
	Delete(ctx context.Context, id int) error
}

type Service struct {
	tasks TaskStore
}

func NewService(tasks TaskStore) *Service {
	return &Service{tasks: tasks}
}

// authorize is the single ownership gate: every read, update and delete of
// an individual task goes through here before touching the store.
func (s *Service) authorize(ctx context.Context, userID, taskID int) (*model.Task, error) {
	t, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("lookup task: %w", err)
	}
	if t.UserID != userID {
		return nil, ErrForbidden
	}
	return t, nil
}

// Create stores a new task owned by userID. The owner always comes from the
// verified identity, never from the request body.
func (s *Service) Create(ctx context.Context, userID int, patch model.TaskPatch) (*model.Task, error) {
	if patch.Title == nil || *patch.Title == "" {
		return nil, ErrEmptyTitle
	}

	t := &model.Task{
		UserID:    userID,
		Title:     *patch.Title,
		Date:      time.Now(),
		FontStyle: model.DefaultFontStyle,
		FontColor: model.DefaultFontColor,
	}
	applyPatch(t, patch)

	if err := s.tasks.Insert(ctx, t); err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	return t, nil
}

// List returns the requester's tasks. Scoping happens in the store query, so
// no other user's task can ever appear in the result.
func (s *Service) List(ctx context.Context, userID int) ([]model.Task, error) {
	tasks, err := s.tasks.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// Get returns a single task after the ownership check.
func (s *Service) Get(ctx context.Context, userID, taskID int) (*model.Task, error) {
	return s.authorize(ctx, userID, taskID)
}

// Update applies the allowlisted fields of patch to the task.
func (s *Service) Update(ctx context.Context, userID, taskID int, patch model.TaskPatch) (*model.Task, error) {
	t, err := s.authorize(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil && *patch.Title == "" {
		return nil, ErrEmptyTitle
	}
	applyPatch(t, patch)

	if err := s.tasks.Update(ctx, t); err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	return t, nil
}

// Delete removes the task after the ownership check.
func (s *Service) Delete(ctx context.Context, userID, taskID int) error {
	if _, err := s.authorize(ctx, userID, taskID); err != nil {
		return err
	}
	if err := s.tasks.Delete(ctx, taskID); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

func applyPatch(t *model.Task, patch model.TaskPatch) {
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Date != nil {
		t.Date = *patch.Date
	}
	if patch.IsCompleted != nil {
		t.IsCompleted = *patch.IsCompleted
	}
	if patch.IsPriority != nil {
		t.IsPriority = *patch.IsPriority
	}
	if patch.FontStyle != nil {
		t.FontStyle = *patch.FontStyle
	}
	if patch.FontColor != nil {
		t.FontColor = *patch.FontColor
	}
	if patch.IsBold != nil {
		t.IsBold = *patch.IsBold
	}
	if patch.IsItalic != nil {
		t.IsItalic = *patch.IsItalic
	}
	if patch.IsUnderline != nil {
		t.IsUnderline = *patch.IsUnderline
	}
}
