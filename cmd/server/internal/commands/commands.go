package commands

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/yukikurage/erp-api/internal/config"
	"github.com/yukikurage/erp-api/internal/logger"
)

type Globals struct {
	Debug   bool
	Version string
}

// bootstrap loads configuration and builds the process logger.
func bootstrap(globals *Globals) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("failed to load config: %w", err)
	}
	if globals.Debug {
		cfg.LogDev = true
	}

	log := logger.Setup(cfg.LogDev)
	return cfg, log, nil
}

func configureHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
		MaxHeaderBytes:    16 * 1024,
	}
}
