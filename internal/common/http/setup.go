package http

import (
	"net/http"

	"github.com/AlibekovAA/todo-board/backend/internal/common/constants"
	"github.com/AlibekovAA/todo-board/backend/internal/common/httpmetrics"
	"github.com/AlibekovAA/todo-board/backend/internal/common/logger"
)

// BuildBaseHandler wraps the router with the cross-cutting middleware chain.
func BuildBaseHandler(log *logger.Logger, handler http.Handler) http.Handler {
	metrics := httpmetrics.New()
	recovery := RecoveryMiddleware(log)
	maxRequestSize := MaxRequestSizeMiddleware(constants.DefaultMaxRequestSize)

	return SecurityHeadersMiddleware(
		CORSMiddleware(
			recovery(
				TraceIDMiddleware(
					maxRequestSize(
						metrics.Wrap(handler))))))
}
