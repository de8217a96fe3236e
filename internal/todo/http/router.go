package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	commonhttp "github.com/AlibekovAA/todo-board/backend/internal/common/http"
	"github.com/AlibekovAA/todo-board/backend/internal/common/jwtverify"
	"github.com/AlibekovAA/todo-board/backend/internal/common/logger"
	"github.com/AlibekovAA/todo-board/backend/internal/todo/domain"
	"github.com/AlibekovAA/todo-board/backend/internal/todo/service"
)

type createRequest struct {
	Text string `json:"text" validate:"required"`
}

type updateRequest struct {
	Text *string `json:"text"`
	Done *bool   `json:"done"`
}

type todoResponse struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

type Handler struct {
	todos          *service.TodoService
	errHandler     *commonhttp.ErrorHandler
	requestTimeout time.Duration
	log            *logger.Logger
}

func NewHandler(todos *service.TodoService, requestTimeout time.Duration, log *logger.Logger) *Handler {
	return &Handler{
		todos:          todos,
		errHandler:     commonhttp.NewErrorHandler(log),
		requestTimeout: requestTimeout,
		log:            log,
	}
}

// RegisterRoutes mounts the todo endpoints behind the JWT middleware. The id
// pattern is numeric only, so a non-numeric id never reaches a handler and
// falls through to the router's 404.
func (h *Handler) RegisterRoutes(r *mux.Router, authMiddleware mux.MiddlewareFunc) {
	sub := r.PathPrefix("/todos").Subrouter()
	sub.Use(authMiddleware)
	sub.HandleFunc("", h.list).Methods(http.MethodGet)
	sub.HandleFunc("", h.create).Methods(http.MethodPost)
	sub.HandleFunc("/{id:[0-9]+}", h.update).Methods(http.MethodPatch)
	sub.HandleFunc("/{id:[0-9]+}", h.delete).Methods(http.MethodDelete)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	claims, ok := jwtverify.FromContext(r.Context())
	if !ok {
		commonhttp.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	todos, err := h.todos.List(ctx, claims.Username)
	if err != nil {
		h.errHandler.HandleError(w, r, err)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, toTodoResponses(todos))
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	claims, ok := jwtverify.FromContext(r.Context())
	if !ok {
		commonhttp.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req createRequest
	if err := commonhttp.DecodeJSON(r, &req); err != nil {
		h.log.Warnf("todo create failed: invalid json: %v", err)
		commonhttp.WriteErrorEnvelope(w, http.StatusBadRequest, commonhttp.CodeInvalidJSON, "invalid json")
		return
	}

	if err := commonhttp.ValidateStruct(req); err != nil {
		h.log.Warnf("todo create failed: invalid payload: %v", err)
		commonhttp.WriteErrorEnvelope(w, http.StatusBadRequest, commonhttp.CodeBadRequest, "text is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	todo, err := h.todos.Create(ctx, claims.Username, req.Text)
	if err != nil {
		h.errHandler.HandleError(w, r, err)
		return
	}

	commonhttp.WriteJSON(w, http.StatusCreated, toTodoResponse(todo))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	claims, ok := jwtverify.FromContext(r.Context())
	if !ok {
		commonhttp.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := parseID(r)
	if err != nil {
		h.errHandler.HandleError(w, r, service.ErrTodoNotFound)
		return
	}

	var req updateRequest
	if err := commonhttp.DecodeJSON(r, &req); err != nil {
		h.log.Warnf("todo update failed: invalid json: %v", err)
		commonhttp.WriteErrorEnvelope(w, http.StatusBadRequest, commonhttp.CodeInvalidJSON, "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	todo, err := h.todos.Update(ctx, claims.Username, id, service.UpdateInput{
		Text: req.Text,
		Done: req.Done,
	})
	if err != nil {
		h.errHandler.HandleError(w, r, err)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, toTodoResponse(todo))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := jwtverify.FromContext(r.Context())
	if !ok {
		commonhttp.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := parseID(r)
	if err != nil {
		h.errHandler.HandleError(w, r, service.ErrTodoNotFound)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	if err := h.todos.Delete(ctx, claims.Username, id); err != nil {
		h.errHandler.HandleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

func toTodoResponse(todo domain.Todo) todoResponse {
	return todoResponse{
		ID:   todo.ID,
		Text: todo.Text,
		Done: todo.Done,
	}
}

func toTodoResponses(todos []domain.Todo) []todoResponse {
	out := make([]todoResponse, 0, len(todos))
	for _, todo := range todos {
		out = append(out, toTodoResponse(todo))
	}
	return out
}
