package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-note-keeper/models"
)

// mapHTTPError returns nil for a successful action. Otherwise the transport
// error wraps the error code from the body, so the result reads
// "<transport error>: <code>".
func mapHTTPError(resp *resty.Response) error {
	code := errorCode(resp.Body())

	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		if code == "" {
			return nil
		}
		return fmt.Errorf("%w: %s", ErrRejected, code)
	}

	if code == "" {
		code = models.ErrorCode(strings.TrimSpace(string(resp.Body())))
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, code)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, code)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, code)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, code)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrTooManyRequests, code)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, code)
	default:
		if code == "" {
			code = models.ErrorCode(http.StatusText(resp.StatusCode()))
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), code)
	}
}

// errorCode extracts the "error" field of a JSON object body.
func errorCode(body []byte) models.ErrorCode {
	var resp models.ErrorResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return ""
	}
	return resp.Error
}
