package validators

import (
	"context"
	"encoding/json"
	"regexp"

	"github.com/MKhiriev/go-note-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldAction  = "action"
	FieldID      = "id"
	FieldKey     = "key"
	FieldContent = "content"
)

// Bounds of the id and key of a blob. The id becomes a file name or an
// object key, so it is limited to a conservative alphabet.
const (
	MaxIDLength  = 128
	MaxKeyLength = 256
)

var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

var knownActions = map[models.Action]struct{}{
	models.ActionRead:             {},
	models.ActionUploadAndMerge:   {},
	models.ActionCreateSharedNote: {},
	models.ActionGetSharedNote:    {},
}

// ActionRequestValidator implements the Validator interface for
// [models.ActionRequest] and [models.Credentials].
type ActionRequestValidator struct {
}

// NewActionRequestValidator constructs a new ActionRequestValidator
// and returns it as the Validator interface.
func NewActionRequestValidator() Validator {
	return &ActionRequestValidator{}
}

// Validate checks obj. Without fields every field relevant to the value is
// checked: the action, the credentials and, for createSharedNote, the
// content.
func (v *ActionRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ActionRequest:
		return v.validateRequest(ctx, value, fields...)
	case *models.ActionRequest:
		return v.validateRequest(ctx, *value, fields...)

	case models.Credentials:
		return v.validateCredentials(value.ID, value.Key, fields...)
	case *models.Credentials:
		return v.validateCredentials(value.ID, value.Key, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ActionRequestValidator) validateRequest(_ context.Context, req models.ActionRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAction, FieldID, FieldKey}
		if req.Action == models.ActionCreateSharedNote {
			fields = append(fields, FieldContent)
		}
	}

	for _, f := range fields {
		switch f {
		case FieldAction:
			if _, ok := knownActions[req.Action]; !ok {
				return ErrUnknownAction
			}
		case FieldID, FieldKey:
			if err := v.validateCredentials(req.ID, req.Key, f); err != nil {
				return err
			}
		case FieldContent:
			if isEmptyJSON(req.Content) {
				return ErrEmptyContent
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ActionRequestValidator) validateCredentials(id, key string, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldKey}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if len(id) < models.MinCredentialLength || len(id) > MaxIDLength || !idPattern.MatchString(id) {
				return ErrInvalidID
			}
		case FieldKey:
			if len(key) < models.MinCredentialLength || len(key) > MaxKeyLength {
				return ErrInvalidKey
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isEmptyJSON(raw json.RawMessage) bool {
	switch string(raw) {
	case "", "null":
		return true
	}
	return false
}
