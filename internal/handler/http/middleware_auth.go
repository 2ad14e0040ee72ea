package http

import (
	"context"
	"net/http"

	"github.com/mkondo/go-todo-service/internal/logger"
	"github.com/mkondo/go-todo-service/internal/utils"
	"github.com/mkondo/go-todo-service/models"
)

// apiKeyHeader carries the static access key issued at sign-up.
const apiKeyHeader = "apikey"

// auth is an HTTP middleware that enforces access-key authentication.
//
// It reads the "apikey" header, resolves it to a user via
// [service.AuthService.Authenticate], and — on success — stores the
// authenticated user in the request context under [utils.UserCtxKey] before
// delegating to the next handler.
//
// Any failure (missing header, unknown key) is rejected with HTTP 403 and
// the uniform {"message": "User authentication error"} payload; the response
// never reveals which of the two cases occurred.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		apikey := r.Header.Get(apiKeyHeader)
		if apikey == "" {
			log.Err(ErrEmptyAPIKeyHeader).Send()
			utils.WriteJSON(w, models.Message{Message: models.MsgUserAuthError}, http.StatusForbidden)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.Authenticate(ctx, apikey)
		if err != nil {
			log.Err(err).Msg("apikey did not resolve to a user")
			utils.WriteJSON(w, models.Message{Message: models.MsgUserAuthError}, http.StatusForbidden)
			return
		}

		// Store the authenticated user in the context so that downstream
		// handlers can retrieve it without a second lookup.
		ctx = context.WithValue(ctx, utils.UserCtxKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
