package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/AlibekovAA/todo-board/backend/internal/todo/domain"
)

var ErrTodoNotFound = errors.New("todo not found")

// Repository partitions todos by owner. A foreign owner's id is
// indistinguishable from a nonexistent one: both are ErrTodoNotFound.
type Repository interface {
	List(ctx context.Context, owner string) ([]domain.Todo, error)
	Create(ctx context.Context, owner string, todo domain.Todo) (domain.Todo, error)
	Update(ctx context.Context, owner string, id int64, patch domain.Patch) (domain.Todo, error)
	Delete(ctx context.Context, owner string, id int64) error
}

// partition holds one owner's todos in insertion order along with the next
// id to hand out. Ids start at 1 and are never reused, deletes included.
type partition struct {
	mu     sync.Mutex
	nextID int64
	todos  []domain.Todo
}

// MemoryRepository guards the partition map with a RWMutex and each
// partition with its own mutex, so concurrent creates for the same owner
// serialize on id assignment while distinct owners never contend.
type MemoryRepository struct {
	mu         sync.RWMutex
	partitions map[string]*partition
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		partitions: make(map[string]*partition),
	}
}

func (r *MemoryRepository) partition(owner string) *partition {
	r.mu.RLock()
	p, exists := r.partitions[owner]
	r.mu.RUnlock()
	if exists {
		return p
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if p, exists = r.partitions[owner]; !exists {
		p = &partition{}
		r.partitions[owner] = p
	}
	return p
}

func (r *MemoryRepository) List(ctx context.Context, owner string) ([]domain.Todo, error) {
	p := r.partition(owner)
	p.mu.Lock()
	defer p.mu.Unlock()

	// newest first
	out := make([]domain.Todo, 0, len(p.todos))
	for i := len(p.todos) - 1; i >= 0; i-- {
		out = append(out, p.todos[i])
	}
	return out, nil
}

func (r *MemoryRepository) Create(ctx context.Context, owner string, todo domain.Todo) (domain.Todo, error) {
	p := r.partition(owner)
	p.mu.Lock()
	defer p.mu.Unlock()

	p.nextID++
	todo.ID = p.nextID
	p.todos = append(p.todos, todo)
	return todo, nil
}

func (r *MemoryRepository) Update(ctx context.Context, owner string, id int64, patch domain.Patch) (domain.Todo, error) {
	p := r.partition(owner)
	p.mu.Lock()
	defer p.mu.Unlock()

	for i := range p.todos {
		if p.todos[i].ID != id {
			continue
		}
		if patch.Text != nil {
			p.todos[i].Text = *patch.Text
		}
		if patch.Done != nil {
			p.todos[i].Done = *patch.Done
		}
		return p.todos[i], nil
	}

	return domain.Todo{}, ErrTodoNotFound
}

func (r *MemoryRepository) Delete(ctx context.Context, owner string, id int64) error {
	p := r.partition(owner)
	p.mu.Lock()
	defer p.mu.Unlock()

	for i := range p.todos {
		if p.todos[i].ID != id {
			continue
		}
		p.todos = append(p.todos[:i], p.todos[i+1:]...)
		return nil
	}

	return ErrTodoNotFound
}
