package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/mkondo/go-todo-service/internal/logger"
	"github.com/mkondo/go-todo-service/internal/service"
	"github.com/mkondo/go-todo-service/internal/utils"
	"github.com/mkondo/go-todo-service/models"
)

func (h *Handler) getTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in context")
		utils.WriteJSON(w, models.Message{Message: models.MsgUserAuthError}, http.StatusForbidden)
		return
	}

	// An unparseable id behaves exactly like a missing todo.
	todoID, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid todo id was passed")
		utils.WriteJSON(w, models.Message{Message: models.MsgTodoAuthError}, http.StatusForbidden)
		return
	}

	todo, err := h.services.TodoService.AuthorizeTodo(ctx, todoID, user)
	if err != nil {
		h.writeTodoError(w, r, err)
		return
	}

	utils.WriteJSON(w, todo, http.StatusOK)
}

func (h *Handler) getTodos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in context")
		utils.WriteJSON(w, models.Message{Message: models.MsgUserAuthError}, http.StatusForbidden)
		return
	}

	todos, err := h.services.TodoService.GetTodos(ctx, user)
	if err != nil {
		log.Err(err).Msg("todo listing failed")
		utils.WriteJSON(w, models.Message{Message: "Error"}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, todos, http.StatusOK)
}

func (h *Handler) createTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in context")
		utils.WriteJSON(w, models.Message{Message: models.MsgUserAuthError}, http.StatusForbidden)
		return
	}

	var todo models.Todo
	if err := json.NewDecoder(r.Body).Decode(&todo); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.TodoService.CreateTodo(ctx, todo, user)
	if err != nil {
		h.writeTodoError(w, r, err)
		return
	}

	log.Debug().Int64("todoId", created.TodoID).Int64("userId", user.UserID).Msg("todo created")

	utils.WriteJSON(w, created, http.StatusOK)
}

func (h *Handler) updateTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in context")
		utils.WriteJSON(w, models.Message{Message: models.MsgUserAuthError}, http.StatusForbidden)
		return
	}

	var todo models.Todo
	if err := json.NewDecoder(r.Body).Decode(&todo); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if _, err := h.services.TodoService.AuthorizeTodo(ctx, todo.TodoID, user); err != nil {
		h.writeTodoError(w, r, err)
		return
	}

	updated, err := h.services.TodoService.UpdateTodo(ctx, todo)
	if err != nil {
		h.writeTodoError(w, r, err)
		return
	}

	log.Debug().Int64("todoId", updated.TodoID).Int64("userId", user.UserID).Msg("todo updated")

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in context")
		utils.WriteJSON(w, models.Message{Message: models.MsgUserAuthError}, http.StatusForbidden)
		return
	}

	var req struct {
		TodoID int64 `json:"todoId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	todo, err := h.services.TodoService.AuthorizeTodo(ctx, req.TodoID, user)
	if err != nil {
		h.writeTodoError(w, r, err)
		return
	}

	if err := h.services.TodoService.DeleteTodo(ctx, todo); err != nil {
		log.Err(err).Int64("todoId", req.TodoID).Msg("todo deletion failed")
		utils.WriteJSON(w, models.Message{Message: "Error"}, http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("todoId", req.TodoID).Int64("userId", user.UserID).Msg("todo deleted")

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) searchTodos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in context")
		utils.WriteJSON(w, models.Message{Message: models.MsgUserAuthError}, http.StatusForbidden)
		return
	}

	query := r.URL.Query()
	searchWord := query.Get("searchWord")

	// Unparseable status ids are dropped; an empty filter matches nothing.
	var statusIDs []models.Status
	for _, raw := range query["searchTodoStatusIds"] {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Err(err).Str("statusId", raw).Msg("skipping invalid status id")
			continue
		}
		statusIDs = append(statusIDs, models.Status(id))
	}

	todos, err := h.services.TodoService.SearchTodos(ctx, searchWord, statusIDs, user)
	if err != nil {
		log.Err(err).Msg("todo search failed")
		utils.WriteJSON(w, models.Message{Message: "Error"}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, todos, http.StatusOK)
}

func (h *Handler) getStatusList(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.TodoService.StatusList(r.Context()), http.StatusOK)
}

// writeTodoError maps service-layer todo failures onto the API's uniform
// message payloads: access violations are 403, validation failures are 200
// with the fixed Japanese message, everything else is a 500.
func (h *Handler) writeTodoError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	switch {
	case errors.Is(err, service.ErrTodoAccessDenied):
		log.Err(err).Msg("todo access denied")
		utils.WriteJSON(w, models.Message{Message: models.MsgTodoAuthError}, http.StatusForbidden)
	case errors.Is(err, service.ErrInvalidDataProvided):
		log.Err(err).Msg("todo validation failed")
		utils.WriteJSON(w, models.Message{Message: models.MsgTodoValidation}, http.StatusOK)
	default:
		log.Err(err).Msg("unexpected error occurred during todo operation")
		utils.WriteJSON(w, models.Message{Message: "Error"}, http.StatusInternalServerError)
	}
}
