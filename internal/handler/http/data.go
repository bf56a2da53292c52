// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

// data dispatches a POST /api/data request on its action.
func (h *Handler) data(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.data").Msg("invalid JSON was passed")
		h.writeError(w, r, fmt.Errorf("%w: %w", errInvalidJSON, err))
		return
	}

	if err := h.validator.Validate(r.Context(), req); err != nil {
		h.writeError(w, r, err)
		return
	}

	ctx := r.Context()
	switch req.Action {
	case models.ActionRead:
		notes, err := h.services.SyncService.Read(ctx, req.ID, req.Key)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		h.writeJSON(w, r, notes)

	case models.ActionUploadAndMerge:
		delta, err := h.services.SyncService.UploadAndMerge(ctx, req.ID, req.Key, req.Body)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		h.writeJSON(w, r, models.MergeResponse{Success: true, Body: delta})

	case models.ActionCreateSharedNote:
		if err := h.services.ShareService.CreateShare(ctx, req.ID, req.Key, req.Content); err != nil {
			h.writeError(w, r, err)
			return
		}
		h.writeJSON(w, r, models.SharedNoteResponse{Success: true, ID: req.ID, Key: req.Key})

	case models.ActionGetSharedNote:
		content, err := h.services.ShareService.ResolveShare(ctx, req.ID, req.Key)
		if errors.Is(err, service.ErrNotFound) {
			h.writeErrorCode(w, r, http.StatusNotFound, models.ErrorCodeNotExists)
			return
		}
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		h.writeJSON(w, r, models.SharedNoteResponse{Success: true, Body: content})
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any) {
	if _, err := utils.WriteJSON(w, data, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.writeJSON").Msg("error writing response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", "*Handler.writeError").Msg("request failed")
	} else {
		log.Warn().Err(err).Str("code", string(code)).Msg("request refused")
	}

	h.writeErrorCode(w, r, status, code)
}

func (h *Handler) writeErrorCode(w http.ResponseWriter, r *http.Request, status int, code models.ErrorCode) {
	if _, err := utils.WriteJSON(w, models.ErrorResponse{Error: code}, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.writeErrorCode").Msg("error writing response")
	}
}
