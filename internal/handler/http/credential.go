package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-passkey-vault/internal/app"
	"github.com/MKhiriev/go-passkey-vault/internal/logger"
	"github.com/MKhiriev/go-passkey-vault/internal/utils"
	"github.com/MKhiriev/go-passkey-vault/models"
)

// Credential handlers. Credentials carry public metadata only: the
// credential ID, the public key, PRF derivation parameters, and the KCV.

func (h *Handler) saveCredential(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.saveCredential").Msg("no user ID was given")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	var request models.SaveCredentialRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.saveCredential").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	credential := models.Credential{
		CredentialID: request.CredentialID,
		UserID:       userID,
		PublicKey:    request.PublicKey,
		PRF:          request.PRF,
	}

	savedCredential, err := h.services.VaultService.SaveCredential(ctx, credential)
	if err != nil {
		log.Err(err).Str("func", "*Handler.saveCredential").Str("credential_id", request.CredentialID).Msg("error saving credential")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}

	log.Debug().Str("credential_id", savedCredential.CredentialID).Int64("user_id", userID).Msg("credential registered")

	utils.WriteJSON(w, savedCredential, http.StatusCreated)
}

func (h *Handler) getUserCredentials(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.getUserCredentials").Msg("no user ID was given")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	credentials, err := h.services.VaultService.GetUserCredentials(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getUserCredentials").Msg("error listing user credentials")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.CredentialsResponse{Credentials: credentials}, http.StatusOK)
}

func (h *Handler) verifyCredential(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.verifyCredential").Msg("no user ID was given")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	var request models.VerifyCredentialRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.verifyCredential").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	owned, err := h.services.VaultService.VerifyCredentialOwnership(ctx, request.CredentialID, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.verifyCredential").Str("credential_id", request.CredentialID).Msg("error verifying credential ownership")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.VerifyCredentialResponse{Owned: owned}, http.StatusOK)
}

func (h *Handler) saveKCV(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.saveKCV").Msg("no user ID was given")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	var request models.SaveKCVRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.saveKCV").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.VaultService.SaveKCV(ctx, userID, request.CredentialID, request.KCV); err != nil {
		log.Err(err).Str("func", "*Handler.saveKCV").Str("credential_id", request.CredentialID).Msg("error saving key check value")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}

	log.Debug().Str("credential_id", request.CredentialID).Int64("user_id", userID).Msg("key check value established")

	w.WriteHeader(http.StatusCreated)
}
