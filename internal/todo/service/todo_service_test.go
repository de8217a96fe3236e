package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AlibekovAA/todo-board/backend/internal/common/clock"
	"github.com/AlibekovAA/todo-board/backend/internal/common/logger"
	todorepo "github.com/AlibekovAA/todo-board/backend/internal/todo/repository"
	"github.com/AlibekovAA/todo-board/backend/internal/todo/service"
)

func setupTodoService(t *testing.T) *service.TodoService {
	t.Helper()
	log, _ := logger.New("", "test", "error")
	mockClock := clock.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	return service.NewTodoService(todorepo.NewMemoryRepository(), mockClock, log)
}

func TestTodoService_Create_TrimsText(t *testing.T) {
	svc := setupTodoService(t)

	todo, err := svc.Create(context.Background(), "alice", "  buy milk  ")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if todo.Text != "buy milk" {
		t.Errorf("expected text %q, got %q", "buy milk", todo.Text)
	}
	if todo.ID != 1 {
		t.Errorf("expected id 1, got %d", todo.ID)
	}
	if todo.Done {
		t.Error("expected new todo to not be done")
	}
}

func TestTodoService_Create_EmptyText(t *testing.T) {
	svc := setupTodoService(t)

	for _, text := range []string{"", "   ", "\t\n"} {
		if _, err := svc.Create(context.Background(), "alice", text); !errors.Is(err, service.ErrEmptyTodoText) {
			t.Errorf("text %q: expected ErrEmptyTodoText, got %v", text, err)
		}
	}
}

func TestTodoService_IDsMonotonicNoReuse(t *testing.T) {
	svc := setupTodoService(t)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		todo, err := svc.Create(ctx, "alice", "task")
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		if todo.ID != int64(i) {
			t.Fatalf("expected id %d, got %d", i, todo.ID)
		}
	}

	if err := svc.Delete(ctx, "alice", 2); err != nil {
		t.Fatalf("delete: %v", err)
	}

	todo, err := svc.Create(ctx, "alice", "task")
	if err != nil {
		t.Fatalf("create after delete: %v", err)
	}
	if todo.ID != 4 {
		t.Errorf("expected id 4 after deleting id 2, got %d", todo.ID)
	}
}

func TestTodoService_Scenario(t *testing.T) {
	svc := setupTodoService(t)
	ctx := context.Background()

	task1, err := svc.Create(ctx, "alice", "task1")
	if err != nil {
		t.Fatalf("create task1: %v", err)
	}
	task2, err := svc.Create(ctx, "alice", "task2")
	if err != nil {
		t.Fatalf("create task2: %v", err)
	}

	todos, err := svc.List(ctx, "alice")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(todos) != 2 || todos[0].Text != "task2" || todos[1].Text != "task1" {
		t.Fatalf("expected [task2 task1], got %v", todos)
	}

	updated, err := svc.SetDone(ctx, "alice", task1.ID, true)
	if err != nil {
		t.Fatalf("set done: %v", err)
	}
	if !updated.Done {
		t.Error("expected task1 to be done")
	}

	todos, _ = svc.List(ctx, "alice")
	if !todos[1].Done || todos[0].Done {
		t.Error("expected only task1 done after toggle")
	}

	if err := svc.Delete(ctx, "alice", task2.ID); err != nil {
		t.Fatalf("delete task2: %v", err)
	}

	todos, _ = svc.List(ctx, "alice")
	if len(todos) != 1 || todos[0].Text != "task1" {
		t.Fatalf("expected [task1], got %v", todos)
	}
}

func TestTodoService_Update_TextAndDone(t *testing.T) {
	svc := setupTodoService(t)
	ctx := context.Background()

	todo, _ := svc.Create(ctx, "alice", "old text")

	text := "  new text  "
	done := true
	updated, err := svc.Update(ctx, "alice", todo.ID, service.UpdateInput{Text: &text, Done: &done})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Text != "new text" {
		t.Errorf("expected trimmed text %q, got %q", "new text", updated.Text)
	}
	if !updated.Done {
		t.Error("expected done to be true")
	}
}

func TestTodoService_Update_EmptyTextRejectedWithoutMutation(t *testing.T) {
	svc := setupTodoService(t)
	ctx := context.Background()

	todo, _ := svc.Create(ctx, "alice", "keep me")

	text := "   "
	done := true
	_, err := svc.Update(ctx, "alice", todo.ID, service.UpdateInput{Text: &text, Done: &done})
	if !errors.Is(err, service.ErrEmptyTodoText) {
		t.Fatalf("expected ErrEmptyTodoText, got %v", err)
	}

	todos, _ := svc.List(ctx, "alice")
	if todos[0].Text != "keep me" || todos[0].Done {
		t.Error("expected rejected update to leave the todo untouched")
	}
}

func TestTodoService_CrossUserIsolation(t *testing.T) {
	svc := setupTodoService(t)
	ctx := context.Background()

	aliceTodo, err := svc.Create(ctx, "alice", "private")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	bobTodos, err := svc.List(ctx, "bob")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(bobTodos) != 0 {
		t.Errorf("expected empty list for bob, got %v", bobTodos)
	}

	if _, err := svc.SetDone(ctx, "bob", aliceTodo.ID, true); !errors.Is(err, service.ErrTodoNotFound) {
		t.Errorf("expected ErrTodoNotFound for cross-user set done, got %v", err)
	}

	if err := svc.Delete(ctx, "bob", aliceTodo.ID); !errors.Is(err, service.ErrTodoNotFound) {
		t.Errorf("expected ErrTodoNotFound for cross-user delete, got %v", err)
	}

	// both users may hold the same id value
	bobTodo, err := svc.Create(ctx, "bob", "also id 1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if bobTodo.ID != aliceTodo.ID {
		t.Errorf("expected per-user ids, got alice=%d bob=%d", aliceTodo.ID, bobTodo.ID)
	}
}

func TestTodoService_NotFound(t *testing.T) {
	svc := setupTodoService(t)
	ctx := context.Background()

	if _, err := svc.SetDone(ctx, "alice", 42, true); !errors.Is(err, service.ErrTodoNotFound) {
		t.Errorf("expected ErrTodoNotFound, got %v", err)
	}
	if err := svc.Delete(ctx, "alice", 42); !errors.Is(err, service.ErrTodoNotFound) {
		t.Errorf("expected ErrTodoNotFound, got %v", err)
	}
}
