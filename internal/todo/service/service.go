package service

import (
	"context"
	"errors"
	"strings"

	"github.com/AlibekovAA/todo-board/backend/internal/common/clock"
	"github.com/AlibekovAA/todo-board/backend/internal/common/logger"
	"github.com/AlibekovAA/todo-board/backend/internal/todo/domain"
	todorepo "github.com/AlibekovAA/todo-board/backend/internal/todo/repository"
)

// TodoService implements the per-owner todo operations. The owner argument
// always comes from a verified token, never from request input.
type TodoService struct {
	repo  todorepo.Repository
	clock clock.Clock
	log   *logger.Logger
}

func NewTodoService(repo todorepo.Repository, clk clock.Clock, log *logger.Logger) *TodoService {
	return &TodoService{
		repo:  repo,
		clock: clk,
		log:   log,
	}
}

type UpdateInput struct {
	Text *string
	Done *bool
}

func (s *TodoService) List(ctx context.Context, owner string) ([]domain.Todo, error) {
	return s.repo.List(ctx, owner)
}

func (s *TodoService) Create(ctx context.Context, owner, text string) (domain.Todo, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		s.log.WithFields(ctx, logger.Fields{
			"owner":  owner,
			"action": "todo_create_empty_text",
		}).Warn("todo create failed: empty text")
		return domain.Todo{}, ErrEmptyTodoText
	}

	todo, err := s.repo.Create(ctx, owner, domain.Todo{
		Text:      text,
		Done:      false,
		CreatedAt: s.clock.Now(),
	})
	if err != nil {
		return domain.Todo{}, err
	}

	incrementTodosCreated()
	s.log.WithFields(ctx, logger.Fields{
		"owner":   owner,
		"todo_id": todo.ID,
		"action":  "todo_create_success",
	}).Info("todo created")

	return todo, nil
}

func (s *TodoService) SetDone(ctx context.Context, owner string, id int64, done bool) (domain.Todo, error) {
	return s.Update(ctx, owner, id, UpdateInput{Done: &done})
}

func (s *TodoService) Update(ctx context.Context, owner string, id int64, input UpdateInput) (domain.Todo, error) {
	patch := domain.Patch{Done: input.Done}

	if input.Text != nil {
		text := strings.TrimSpace(*input.Text)
		if text == "" {
			s.log.WithFields(ctx, logger.Fields{
				"owner":   owner,
				"todo_id": id,
				"action":  "todo_update_empty_text",
			}).Warn("todo update failed: empty text")
			return domain.Todo{}, ErrEmptyTodoText
		}
		patch.Text = &text
	}

	todo, err := s.repo.Update(ctx, owner, id, patch)
	if err != nil {
		if errors.Is(err, todorepo.ErrTodoNotFound) {
			return domain.Todo{}, ErrTodoNotFound
		}
		return domain.Todo{}, err
	}

	if input.Done != nil && *input.Done {
		incrementTodosCompleted()
	}

	s.log.WithFields(ctx, logger.Fields{
		"owner":   owner,
		"todo_id": id,
		"action":  "todo_update_success",
	}).Info("todo updated")

	return todo, nil
}

func (s *TodoService) Delete(ctx context.Context, owner string, id int64) error {
	if err := s.repo.Delete(ctx, owner, id); err != nil {
		if errors.Is(err, todorepo.ErrTodoNotFound) {
			return ErrTodoNotFound
		}
		return err
	}

	incrementTodosDeleted()
	s.log.WithFields(ctx, logger.Fields{
		"owner":   owner,
		"todo_id": id,
		"action":  "todo_delete_success",
	}).Info("todo deleted")

	return nil
}
