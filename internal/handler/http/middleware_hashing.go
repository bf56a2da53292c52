package http

import (
	"bytes"
	"crypto/hmac"
	"encoding/hex"
	"io"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
)

// HashHeader carries the hex HMAC-SHA256 of the request body.
const HashHeader = "HashSHA256"

// withHashCheck verifies HashHeader when a hash key is configured and the
// client sent the header. Clients that do not sign their requests are let
// through.
func (h *Handler) withHashCheck(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sent := r.Header.Get(HashHeader)
		if h.hashKey == "" || sent == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "*Handler.withHashCheck").Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		want, err := hex.DecodeString(sent)
		if err != nil || !hmac.Equal(want, utils.Hash(body)) {
			log.Warn().Str("func", "*Handler.withHashCheck").
				Str("hash from request", sent).
				Msg("hashes are not equal")
			h.writeError(w, r, errIntegrityCheck)
			return
		}

		next.ServeHTTP(w, r)
	})
}
