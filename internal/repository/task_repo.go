package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"todoapp/internal/model"
)

type TaskRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTaskRepository(db *pgxpool.Pool, logger *zap.Logger) *TaskRepository {
	return &TaskRepository{db: db, logger: logger}
}

func (r *TaskRepository) Insert(ctx context.Context, t *model.Task) error {
	query := `
        INSERT INTO tasks (user_id, title, is_completed, is_priority, date,
                           font_style, font_color, is_bold, is_italic, is_underline)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id, created_at, updated_at
    `
	err := r.db.QueryRow(ctx, query,
		t.UserID,
		t.Title,
		t.IsCompleted,
		t.IsPriority,
		t.Date,
		t.FontStyle,
		t.FontColor,
		t.IsBold,
		t.IsItalic,
		t.IsUnderline,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		r.logger.Error("Failed to insert task",
			zap.Error(err),
			zap.Int("user_id", t.UserID),
		)
		return err
	}
	r.logger.Info("Task inserted",
		zap.Int("task_id", t.ID),
		zap.Int("user_id", t.UserID),
	)
	return nil
}

// ListByOwner returns every task belonging to userID, priority tasks first,
// then newest date, then newest creation.
func (r *TaskRepository) ListByOwner(ctx context.Context, userID int) ([]model.Task, error) {
	query := `
        SELECT id, user_id, title, is_completed, is_priority, date,
               font_style, font_color, is_bold, is_italic, is_underline,
               created_at, updated_at
        FROM tasks
        WHERE user_id = $1
        ORDER BY is_priority DESC, date DESC, created_at DESC, id DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.logger.Error("Failed to query tasks",
			zap.Error(err),
			zap.Int("user_id", userID),
		)
		return nil, err
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(
			&t.ID,
			&t.UserID,
			&t.Title,
			&t.IsCompleted,
			&t.IsPriority,
			&t.Date,
			&t.FontStyle,
			&t.FontColor,
			&t.IsBold,
			&t.IsItalic,
			&t.IsUnderline,
			&t.CreatedAt,
			&t.UpdatedAt,
		); err != nil {
			r.logger.Error("Failed to scan task row",
				zap.Error(err),
				zap.Int("user_id", userID),
			)
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *TaskRepository) FindByID(ctx context.Context, id int) (*model.Task, error) {
	query := `
        SELECT id, user_id, title, is_completed, is_priority, date,
               font_style, font_color, is_bold, is_italic, is_underline,
               created_at, updated_at
        FROM tasks
        WHERE id = $1
    `
	var t model.Task
	err := r.db.QueryRow(ctx, query, id).Scan(
		&t.ID,
		&t.UserID,
		&t.Title,
		&t.IsCompleted,
		&t.IsPriority,
		&t.Date,
		&t.FontStyle,
		&t.FontColor,
		&t.IsBold,
		&t.IsItalic,
		&t.IsUnderline,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Update writes every mutable column of t and refreshes updated_at.
// Last write wins; there is no optimistic locking.
func (r *TaskRepository) Update(ctx context.Context, t *model.Task) error {
	query := `
        UPDATE tasks
        SET title = $2, is_completed = $3, is_priority = $4, date = $5,
            font_style = $6, font_color = $7, is_bold = $8, is_italic = $9,
            is_underline = $10, updated_at = NOW()
        WHERE id = $1
        RETURNING updated_at
    `
	err := r.db.QueryRow(ctx, query,
		t.ID,
		t.Title,
		t.IsCompleted,
		t.IsPriority,
		t.Date,
		t.FontStyle,
		t.FontColor,
		t.IsBold,
		t.IsItalic,
		t.IsUnderline,
	).Scan(&t.UpdatedAt)
	if err != nil {
		r.logger.Error("Failed to update task",
			zap.Error(err),
			zap.Int("task_id", t.ID),
		)
		return err
	}
	r.logger.Info("Task updated", zap.Int("task_id", t.ID))
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.Exec(ctx, "DELETE FROM tasks WHERE id = $1", id)
	if err != nil {
		r.logger.Error("Failed to delete task",
			zap.Error(err),
			zap.Int("task_id", id),
		)
		return err
	}
	r.logger.Info("Task deleted",
		zap.Int("task_id", id),
		zap.Int64("rows_affected", result.RowsAffected()),
	)
	return nil
}
