package service

import (
	"github.com/avolkov/reverso/internal/directory"
	"github.com/avolkov/reverso/internal/logger"
)

type Services struct {
	AccountService AccountService
	WordsService   WordsService
}

func NewServices(provider directory.Provider, logger *logger.Logger) *Services {
	return &Services{
		AccountService: NewAccountService(provider, logger),
		WordsService:   NewWordsService(logger),
	}
}
