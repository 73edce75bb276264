package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nirco-cloud/tripsync/internal/crypto"
	"github.com/nirco-cloud/tripsync/internal/logger"
)

// cryptoRequest carries one field value and the passphrase to seal or open
// it with. Values travel the sync pipeline opaque; this endpoint is how the
// UI turns plain field values into `enc:` tagged ones and back.
type cryptoRequest struct {
	Value      string `json:"value"`
	Passphrase string `json:"passphrase"`
}

type cryptoResponse struct {
	Value string `json:"value"`
}

func (h *Handler) encryptValue(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req cryptoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if req.Passphrase == "" {
		http.Error(w, "passphrase is required", http.StatusBadRequest)
		return
	}

	sealed, err := h.cipher.Encrypt(req.Value, req.Passphrase)
	if err != nil {
		log.Err(err).Msg("value encryption failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, cryptoResponse{Value: sealed})
}

func (h *Handler) decryptValue(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req cryptoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	plain, err := h.cipher.Decrypt(req.Value, req.Passphrase)
	if err != nil {
		switch {
		case errors.Is(err, crypto.ErrWrongPassphrase):
			http.Error(w, err.Error(), http.StatusForbidden)
			return
		case errors.Is(err, crypto.ErrMalformedValue):
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("value decryption failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	writeJSON(w, http.StatusOK, cryptoResponse{Value: plain})
}
