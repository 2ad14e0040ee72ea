package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mkondo/go-todo-service/internal/logger"
	"github.com/mkondo/go-todo-service/internal/service"
	"github.com/mkondo/go-todo-service/internal/store"
	"github.com/mkondo/go-todo-service/internal/utils"
	"github.com/mkondo/go-todo-service/models"
)

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUserNameAlreadyExists):
			// A taken name is not an error to the client: the original API
			// reports it as a plain message with 200.
			log.Info().Str("userName", user.UserName).Msg("user name already taken")
			utils.WriteJSON(w, models.DuplicateUserMessage(user.UserName), http.StatusOK)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			utils.WriteJSON(w, models.Message{Message: "Error"}, http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", registeredUser.UserID).Str("userName", registeredUser.UserName).Msg("user registered")

	utils.WriteJSON(w, registeredUser, http.StatusOK)
}

func (h *Handler) signinUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided),
			errors.Is(err, store.ErrNoUserWasFound),
			errors.Is(err, service.ErrWrongPassword):
			// Sign-in failures all collapse into one message so the response
			// never reveals whether the name exists.
			log.Err(err).Str("userName", user.UserName).Msg("sign-in rejected")
			utils.WriteJSON(w, models.Message{Message: models.MsgSigninFailed}, http.StatusOK)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user sign-in")
			utils.WriteJSON(w, models.Message{Message: "Error"}, http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", foundUser.UserID).Str("userName", foundUser.UserName).Msg("user signed in")

	utils.WriteJSON(w, foundUser, http.StatusOK)
}
