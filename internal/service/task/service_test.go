package task

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"

	"todoapp/internal/model"
)

// fakeTaskStore is an in-memory TaskStore with the same ordering the SQL
// query applies.
type fakeTaskStore struct {
	nextID int
	byID   map[int]*model.Task
}

func newFakeTaskStore() *fakeTaskStore {
	return &fakeTaskStore{nextID: 1, byID: map[int]*model.Task{}}
}

func (s *fakeTaskStore) Insert(_ context.Context, t *model.Task) error {
	t.ID = s.nextID
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	s.nextID++
	cp := *t
	s.byID[t.ID] = &cp
	return nil
}

func (s *fakeTaskStore) ListByOwner(_ context.Context, userID int) ([]model.Task, error) {
	tasks := []model.Task{}
	for _, t := range s.byID {
		if t.UserID == userID {
			tasks = append(tasks, *t)
		}
	}
	sort.Slice(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if a.IsPriority != b.IsPriority {
			return a.IsPriority
		}
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})
	return tasks, nil
}

func (s *fakeTaskStore) FindByID(_ context.Context, id int) (*model.Task, error) {
	t, ok := s.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *t
	return &cp, nil
}

func (s *fakeTaskStore) Update(_ context.Context, t *model.Task) error {
	if _, ok := s.byID[t.ID]; !ok {
		return pgx.ErrNoRows
	}
	t.UpdatedAt = time.Now()
	cp := *t
	s.byID[t.ID] = &cp
	return nil
}

func (s *fakeTaskStore) Delete(_ context.Context, id int) error {
	delete(s.byID, id)
	return nil
}

func strPtr(s string) *string        { return &s }
func boolPtr(b bool) *bool           { return &b }
func timePtr(t time.Time) *time.Time { return &t }

func TestCreateAppliesDefaults(t *testing.T) {
	svc := NewService(newFakeTaskStore())

	before := time.Now()
	created, err := svc.Create(context.Background(), 1, model.TaskPatch{Title: strPtr("buy milk")})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if created.UserID != 1 {
		t.Errorf("owner = %d, want the requester id 1", created.UserID)
	}
	if created.Title != "buy milk" {
		t.Errorf("title = %q, want buy milk", created.Title)
	}
	if created.FontStyle != model.DefaultFontStyle {
		t.Errorf("font_style = %q, want %q", created.FontStyle, model.DefaultFontStyle)
	}
	if created.FontColor != model.DefaultFontColor {
		t.Errorf("font_color = %q, want %q", created.FontColor, model.DefaultFontColor)
	}
	if created.IsCompleted || created.IsPriority || created.IsBold || created.IsItalic || created.IsUnderline {
		t.Error("boolean fields should default to false")
	}

	// No date supplied: stored date is the creation time.
	if created.Date.Before(before) || created.Date.After(time.Now()) {
		t.Errorf("date = %v, want within [%v, now]", created.Date, before)
	}
}

func TestCreateRequiresTitle(t *testing.T) {
	svc := NewService(newFakeTaskStore())

	if _, err := svc.Create(context.Background(), 1, model.TaskPatch{}); !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("Create() error = %v, want ErrEmptyTitle", err)
	}
	if _, err := svc.Create(context.Background(), 1, model.TaskPatch{Title: strPtr("")}); !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("Create(empty title) error = %v, want ErrEmptyTitle", err)
	}
}

func TestOwnershipGuard(t *testing.T) {
	svc := NewService(newFakeTaskStore())

	created, err := svc.Create(context.Background(), 1, model.TaskPatch{Title: strPtr("buy milk")})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Every single-task operation by a non-owner fails with ErrForbidden.
	if _, err := svc.Get(context.Background(), 2, created.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("Get() by non-owner error = %v, want ErrForbidden", err)
	}
	if _, err := svc.Update(context.Background(), 2, created.ID, model.TaskPatch{Title: strPtr("stolen")}); !errors.Is(err, ErrForbidden) {
		t.Errorf("Update() by non-owner error = %v, want ErrForbidden", err)
	}
	if err := svc.Delete(context.Background(), 2, created.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("Delete() by non-owner error = %v, want ErrForbidden", err)
	}

	// The owner is unaffected.
	updated, err := svc.Update(context.Background(), 1, created.ID, model.TaskPatch{Title: strPtr("buy oat milk")})
	if err != nil {
		t.Fatalf("Update() by owner error = %v", err)
	}
	if updated.Title != "buy oat milk" {
		t.Errorf("title = %q, want buy oat milk", updated.Title)
	}
	if err := svc.Delete(context.Background(), 1, created.ID); err != nil {
		t.Fatalf("Delete() by owner error = %v", err)
	}
}

func TestUnknownTaskIsNotFound(t *testing.T) {
	svc := NewService(newFakeTaskStore())

	if _, err := svc.Get(context.Background(), 1, 99); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
	if _, err := svc.Update(context.Background(), 1, 99, model.TaskPatch{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(context.Background(), 1, 99); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete() error = %v, want ErrNotFound", err)
	}
}

func TestListScopedToOwner(t *testing.T) {
	svc := NewService(newFakeTaskStore())

	for i := 0; i < 3; i++ {
		if _, err := svc.Create(context.Background(), 1, model.TaskPatch{Title: strPtr("mine")}); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}
	other, err := svc.Create(context.Background(), 2, model.TaskPatch{Title: strPtr("theirs")})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	tasks, err := svc.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("List() returned %d tasks, want 3", len(tasks))
	}
	for _, task := range tasks {
		if task.UserID != 1 {
			t.Errorf("List() leaked task %d owned by %d", task.ID, task.UserID)
		}
	}

	// Deleting the other user's task does not disturb user 1's list.
	if err := svc.Delete(context.Background(), 2, other.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	tasks, err = svc.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(tasks) != 3 {
		t.Errorf("List() returned %d tasks after unrelated delete, want 3", len(tasks))
	}
}

func TestListOrdering(t *testing.T) {
	svc := NewService(newFakeTaskStore())
	day := 24 * time.Hour
	now := time.Now()

	older, err := svc.Create(context.Background(), 1, model.TaskPatch{
		Title: strPtr("older"),
		Date:  timePtr(now.Add(-2 * day)),
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	newer, err := svc.Create(context.Background(), 1, model.TaskPatch{
		Title: strPtr("newer"),
		Date:  timePtr(now.Add(-1 * day)),
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	priority, err := svc.Create(context.Background(), 1, model.TaskPatch{
		Title:      strPtr("priority but oldest"),
		Date:       timePtr(now.Add(-3 * day)),
		IsPriority: boolPtr(true),
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	tasks, err := svc.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	want := []int{priority.ID, newer.ID, older.ID}
	if len(tasks) != len(want) {
		t.Fatalf("List() returned %d tasks, want %d", len(tasks), len(want))
	}
	for i, id := range want {
		if tasks[i].ID != id {
			t.Errorf("tasks[%d].ID = %d, want %d (priority first, then date desc)", i, tasks[i].ID, id)
		}
	}
}

func TestUpdateAllowlist(t *testing.T) {
	store := newFakeTaskStore()
	svc := NewService(store)

	created, err := svc.Create(context.Background(), 1, model.TaskPatch{Title: strPtr("styled")})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	updated, err := svc.Update(context.Background(), 1, created.ID, model.TaskPatch{
		IsCompleted: boolPtr(true),
		FontStyle:   strPtr("Courier"),
		FontColor:   strPtr("#ff0000"),
		IsBold:      boolPtr(true),
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if !updated.IsCompleted || !updated.IsBold {
		t.Error("patched booleans not applied")
	}
	if updated.FontStyle != "Courier" || updated.FontColor != "#ff0000" {
		t.Errorf("formatting not applied: %q %q", updated.FontStyle, updated.FontColor)
	}
	if updated.Title != "styled" {
		t.Errorf("unpatched title changed to %q", updated.Title)
	}
	if updated.UserID != created.UserID || updated.ID != created.ID {
		t.Error("owner or id changed through an update")
	}
	if updated.CreatedAt != created.CreatedAt {
		t.Error("created_at changed through an update")
	}

	if _, err := svc.Update(context.Background(), 1, created.ID, model.TaskPatch{Title: strPtr("")}); !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("Update(empty title) error = %v, want ErrEmptyTitle", err)
	}
}
