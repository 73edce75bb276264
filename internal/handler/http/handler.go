package http

import (
	"encoding/json"
	"net/http"

	"github.com/nirco-cloud/tripsync/internal/crypto"
	"github.com/nirco-cloud/tripsync/internal/logger"
	"github.com/nirco-cloud/tripsync/internal/service"
)

type Handler struct {
	services *service.Services
	cipher   crypto.PassphraseCipher
	version  string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cipher crypto.PassphraseCipher, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cipher:   cipher,
		version:  version,
		logger:   logger,
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
