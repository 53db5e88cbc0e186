package main

import (
	"fmt"

	"github.com/avolkov/reverso/internal/config"
	"github.com/avolkov/reverso/internal/directory"
	"github.com/avolkov/reverso/internal/handler"
	"github.com/avolkov/reverso/internal/logger"
	"github.com/avolkov/reverso/internal/server"
	"github.com/avolkov/reverso/internal/service"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("reverso-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	provider, err := newDirectoryProvider(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating directory provider")
	}

	services := service.NewServices(provider, log)
	handlers := handler.NewHandlers(services, log)

	servers, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	servers.RunServer()
}

// newDirectoryProvider selects the directory implementation from the
// configured mode: the in-process directory for local development, or the
// REST client for a remote directory service.
func newDirectoryProvider(cfg *config.StructuredConfig, log *logger.Logger) (directory.Provider, error) {
	switch cfg.Directory.Mode {
	case config.DirectoryModeHTTP:
		return directory.NewHTTPProvider(cfg.Directory, log)
	default:
		return directory.NewMemoryProvider(cfg.App, log), nil
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
