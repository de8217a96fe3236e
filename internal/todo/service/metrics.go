package service

import "github.com/AlibekovAA/todo-board/backend/internal/observability/metrics"

func incrementTodosCreated() {
	metrics.TodosCreatedTotal.Inc()
}

func incrementTodosCompleted() {
	metrics.TodosCompletedTotal.Inc()
}

func incrementTodosDeleted() {
	metrics.TodosDeletedTotal.Inc()
}
