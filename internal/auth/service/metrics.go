package service

import "github.com/AlibekovAA/todo-board/backend/internal/observability/metrics"

func incrementUsersRegistered() {
	metrics.UsersRegisteredTotal.Inc()
}

func incrementLogins(outcome string) {
	metrics.LoginsTotal.WithLabelValues(outcome).Inc()
}

func incrementAccessTokensIssued() {
	metrics.AccessTokensIssued.Inc()
}
