package commands

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yukikurage/erp-api/internal/config"
	"github.com/yukikurage/erp-api/internal/database"
	"github.com/yukikurage/erp-api/internal/handlers"
	"github.com/yukikurage/erp-api/internal/identity"
	"github.com/yukikurage/erp-api/internal/repository"
	"github.com/yukikurage/erp-api/internal/services"
	"gorm.io/gorm"
)

type ServeCmd struct {
	NoMigrate bool `help:"Skip running migrations on startup."`
}

func (s *ServeCmd) Run(ctx context.Context, globals *Globals) error {
	cfg, log, err := bootstrap(globals)
	if err != nil {
		return err
	}
	log.Info().Str("version", globals.Version).Bool("debug", cfg.LogDev).Msg("Starting server")

	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg, log)
	if err != nil {
		return err
	}
	if !s.NoMigrate {
		if err := database.Migrate(db, log); err != nil {
			return err
		}
	}

	store, err := newSessionStore(cfg)
	if err != nil {
		return err
	}

	provider, err := newIdentityProvider(cfg)
	if err != nil {
		return err
	}

	router := handlers.NewRouter(handlers.RouterConfig{
		Log:          log,
		SessionStore: store,
		Provider:     provider,
	}, newServices(db, cfg))

	srv := configureHTTPServer(cfg.ListenAddr, router)
	return listenAndServe(ctx, srv, log)
}

func newServices(db *gorm.DB, cfg *config.Config) handlers.Services {
	userRepo := repository.NewUserRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	productRepo := repository.NewProductRepository(db)
	txRepo := repository.NewTransactionRepository(db)
	credRepo := repository.NewCredentialRepository(db)

	return handlers.Services{
		Identity:  services.NewIdentityService(userRepo, orgRepo, employeeRepo).WithMaxAttempts(cfg.ProvisioningAttempts),
		Auth:      services.NewAuthService(credRepo),
		Settings:  services.NewSettingsService(orgRepo),
		Inventory: services.NewInventoryService(productRepo),
		HR:        services.NewHRService(employeeRepo),
		Finance:   services.NewFinanceService(txRepo),
		Reports:   services.NewReportService(productRepo, userRepo, txRepo),
	}
}

func newSessionStore(cfg *config.Config) (sessions.Store, error) {
	var store sessions.Store

	switch cfg.SessionStore {
	case "redis":
		rs, err := redisStore.NewStore(
			10,
			"tcp",
			net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
			"",
			[]byte(cfg.SessionSecret),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create redis session store: %w", err)
		}
		store = rs
	case "cookie":
		store = cookie.NewStore([]byte(cfg.SessionSecret))
	default:
		return nil, fmt.Errorf("unsupported session store %q", cfg.SessionStore)
	}

	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
	return store, nil
}

func newIdentityProvider(cfg *config.Config) (identity.Provider, error) {
	chain := make(identity.Chain, 0, len(cfg.IdentityProviders))
	for _, name := range cfg.IdentityProviders {
		switch name {
		case "session":
			chain = append(chain, identity.NewSessionProvider())
		case "token":
			chain = append(chain, identity.NewTokenProvider(identity.TokenConfig{
				Secret:   cfg.JWTSecret,
				Issuer:   cfg.JWTIssuer,
				Audience: cfg.JWTAudience,
			}))
		case "kratos":
			chain = append(chain, identity.NewKratosProvider(cfg.KratosURL, cfg.KratosTimeout))
		default:
			return nil, fmt.Errorf("unknown identity provider %q", name)
		}
	}
	return chain, nil
}

func listenAndServe(ctx context.Context, srv *http.Server, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Listening for HTTP connections")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
