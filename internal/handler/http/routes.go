package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	router.Use(withCORS)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/create_user", h.createUser)
		r.Post("/api/user/signin_user", h.signinUser)
		r.Get("/api/todo/get_status_list", h.getStatusList)
	})

	// routes guarded by the apikey middleware
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/todo/get_todo", h.getTodo)
		r.Get("/api/todo/get_todos", h.getTodos)
		r.Post("/api/todo/create_todo", h.createTodo)
		r.Put("/api/todo/update_todo", h.updateTodo)
		r.Delete("/api/todo/delete_todo", h.deleteTodo)
		r.Get("/api/todo/get_todo_search", h.searchTodos)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
