// @title                       Mirante API
// @version                     1.0
// @description                 Backend da VIP Mudanças: autenticação, assistente de vendas e integrações.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	_ "github.com/vipmudancas/mirante/docs"
	"github.com/vipmudancas/mirante/internal/api"
	"github.com/vipmudancas/mirante/internal/core/ports"
	"github.com/vipmudancas/mirante/internal/core/service"
	"github.com/vipmudancas/mirante/internal/infrastructure/config"
	"github.com/vipmudancas/mirante/internal/infrastructure/db/memory"
	"github.com/vipmudancas/mirante/internal/infrastructure/db/mongo"
	redisdb "github.com/vipmudancas/mirante/internal/infrastructure/db/redis"
	"github.com/vipmudancas/mirante/internal/infrastructure/integrations/simulated"
	"github.com/vipmudancas/mirante/internal/infrastructure/provider/openai"
	"github.com/vipmudancas/mirante/internal/infrastructure/queue"
	"github.com/vipmudancas/mirante/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.New(logger.Options{})
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Development(),
		Service: "mirante",
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

// storage holds the persistence adapters selected by STORAGE_DRIVER.
type storage struct {
	users ports.UserRepository
	leads ports.LeadRepository
	dedup service.DedupChecker
	mongo *mongodriver.Database
	redis *redis.Client
	close func(context.Context)
}

func openStorage(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*storage, error) {
	if cfg.StorageDriver == config.StorageMemory {
		log.Warn().Msg("using in-memory storage, data is lost on restart")
		return &storage{
			users: memory.NewUserRepository(),
			leads: memory.NewLeadRepository(),
			close: func(context.Context) {},
		}, nil
	}

	client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return nil, err
	}
	repos, err := mongo.NewRepositories(ctx, db)
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return &storage{
		users: repos.Users,
		leads: repos.Leads,
		dedup: redisdb.NewDedupChecker(rdb),
		mongo: db,
		redis: rdb,
		close: func(ctx context.Context) {
			if err := rdb.Close(); err != nil {
				log.Warn().Err(err).Msg("redis close")
			}
			if err := client.Disconnect(ctx); err != nil {
				log.Warn().Err(err).Msg("mongo disconnect")
			}
		},
	}, nil
}

// newProvider returns the text provider, or nil (offline mode) without a key.
func newProvider(cfg config.ProviderConfig, log zerolog.Logger) ports.TextProvider {
	if cfg.APIKey == "" {
		log.Warn().Msg("OPENAI_API_KEY not set, assistant running in offline mode")
		return nil
	}
	client, err := openai.New(openai.Config{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Model:   cfg.Model,
		Timeout: cfg.Timeout,
	})
	if err != nil {
		log.Warn().Err(err).Msg("text provider disabled")
		return nil
	}
	return client
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	store, err := openStorage(ctx, cfg, log)
	if err != nil {
		return err
	}

	credentials := service.NewCredentialStore(store.users)
	tokens := service.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL)
	auth := service.NewAuthService(credentials, tokens, log)
	if err := auth.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		store.close(ctx)
		return err
	}

	assistant := service.NewAssistantService(newProvider(cfg.Provider, log), cfg.Provider.Timeout, log)

	// Workers keep draining after the signal; Close stops them.
	dispatcher := queue.NewDispatcher(cfg.WebhookWorkers, service.NewLeadService(store.leads, store.dedup, log), log)
	dispatcher.Start(context.WithoutCancel(ctx))

	e := api.NewRouter(api.Dependencies{
		Log:       log,
		Auth:      auth,
		Tokens:    tokens,
		Users:     credentials,
		Assistant: assistant,
		Integrations: simulated.New(simulated.Options{
			SheetsMirrorDir: cfg.SheetsMirrorDir,
		}),
		Leads: dispatcher,
		Mongo: store.mongo,
		Redis: store.redis,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("storage", cfg.StorageDriver).Bool("assistant_online", assistant.Online()).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		dispatcher.Close()
		store.close(context.Background())
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	dispatcher.Close()
	store.close(shutdownCtx)
	return nil
}
