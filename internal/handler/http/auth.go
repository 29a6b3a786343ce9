package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-passkey-vault/internal/app"
	"github.com/MKhiriev/go-passkey-vault/internal/logger"
	"github.com/MKhiriev/go-passkey-vault/internal/service"
	"github.com/MKhiriev/go-passkey-vault/internal/store"
	"github.com/MKhiriev/go-passkey-vault/internal/utils"
	"github.com/MKhiriev/go-passkey-vault/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterUserRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user := models.User{Login: request.Login, Name: request.Name}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrLoginAlreadyExists):
			log.Err(err).Str("login", request.Login).Msg("login already exists")
			http.Error(w, app.MsgLoginAlreadyExists, http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("id", registeredUser.UserID).Str("login", registeredUser.Login).Msg("user registered")

	session := models.SessionResponse{
		UserID: registeredUser.UserID,
		Login:  registeredUser.Login,
		Name:   registeredUser.Name,
		Token:  token.SignedString,
	}
	utils.WriteJSON(w, session, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, request.Login, request.CredentialID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Err(err).Str("login", request.Login).Msg("no user was found")
			http.Error(w, app.MsgUserNotFound, http.StatusNotFound)
			return
		case errors.Is(err, service.ErrCredentialNotOwned):
			log.Err(err).Str("login", request.Login).Msg("presented credential does not belong to the account")
			http.Error(w, app.MsgCredentialNotOwned, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	session := models.SessionResponse{
		UserID: foundUser.UserID,
		Login:  foundUser.Login,
		Name:   foundUser.Name,
		Token:  token.SignedString,
	}
	utils.WriteJSON(w, session, http.StatusOK)
}
