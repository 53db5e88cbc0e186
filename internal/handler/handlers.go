package handler

import (
	"github.com/avolkov/reverso/internal/handler/http"
	"github.com/avolkov/reverso/internal/logger"
	"github.com/avolkov/reverso/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}
}
