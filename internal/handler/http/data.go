package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-passkey-vault/internal/app"
	"github.com/MKhiriev/go-passkey-vault/internal/logger"
	"github.com/MKhiriev/go-passkey-vault/internal/utils"
	"github.com/MKhiriev/go-passkey-vault/models"
)

// Record handlers. Everything passing through here is opaque ciphertext:
// the server stores and returns encrypted bundles verbatim.

func (h *Handler) saveRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.saveRecord").Msg("no user ID was given")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	var record models.VaultRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		log.Err(err).Str("func", "*Handler.saveRecord").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	record.UserID = userID

	savedRecord, err := h.services.VaultService.SaveRecord(ctx, record)
	if err != nil {
		log.Err(err).Str("func", "*Handler.saveRecord").Str("record_id", record.ID).Msg("error saving vault record")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, savedRecord, http.StatusCreated)
}

func (h *Handler) getRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.getRecord").Msg("no user ID was given")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	recordID := chi.URLParam(r, "id")
	if recordID == "" {
		log.Error().Str("func", "*Handler.getRecord").Msg("no record ID was given")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	record, err := h.services.VaultService.GetRecord(ctx, userID, recordID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getRecord").Str("record_id", recordID).Msg("error getting vault record")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, record, http.StatusOK)
}

func (h *Handler) getRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.getRecords").Msg("no user ID was given")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	records, err := h.services.VaultService.GetRecords(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getRecords").Msg("error listing vault records")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.RecordsResponse{Records: records}, http.StatusOK)
}

func (h *Handler) updateRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.updateRecord").Msg("no user ID was given")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	var record models.VaultRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		log.Err(err).Str("func", "*Handler.updateRecord").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	record.UserID = userID

	updatedRecord, err := h.services.VaultService.UpdateRecord(ctx, record)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateRecord").Str("record_id", record.ID).Msg("error updating vault record")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, updatedRecord, http.StatusOK)
}

func (h *Handler) deleteRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.deleteRecord").Msg("no user ID was given")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	recordID := chi.URLParam(r, "id")
	if recordID == "" {
		log.Error().Str("func", "*Handler.deleteRecord").Msg("no record ID was given")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.services.VaultService.DeleteRecord(ctx, userID, recordID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteRecord").Str("record_id", recordID).Msg("error deleting vault record")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
