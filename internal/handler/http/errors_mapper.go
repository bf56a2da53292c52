package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

type errorStatus struct {
	status int
	code   models.ErrorCode
}

var errorStatusMap = map[error]errorStatus{
	service.ErrInvalidKey: {http.StatusForbidden, models.ErrorCodeInvalidKey},
	service.ErrNotFound:   {http.StatusNotFound, models.ErrorCodeFailed},
	service.ErrExists:     {http.StatusConflict, models.ErrorCodeExists},
	service.ErrLimit:      {http.StatusTooManyRequests, models.ErrorCodeLimit},
	service.ErrMalformed:  {http.StatusBadRequest, models.ErrorCodeMalformed},

	validators.ErrInvalidID:     {http.StatusBadRequest, models.ErrorCodeMalformed},
	validators.ErrInvalidKey:    {http.StatusBadRequest, models.ErrorCodeMalformed},
	validators.ErrEmptyContent:  {http.StatusBadRequest, models.ErrorCodeMalformed},
	validators.ErrUnknownAction: {http.StatusBadRequest, models.ErrorCodeUnknownAction},

	errInvalidJSON:    {http.StatusBadRequest, models.ErrorCodeInvalidJSON},
	errIntegrityCheck: {http.StatusBadRequest, models.ErrorCodeMalformed},
}

func statusFromError(err error) (int, models.ErrorCode) {
	for target, s := range errorStatusMap {
		if errors.Is(err, target) {
			return s.status, s.code
		}
	}
	return http.StatusInternalServerError, models.ErrorCodeFailed
}
