package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vipmudancas/mirante/internal/api/handler"
	"github.com/vipmudancas/mirante/internal/api/middleware"
	"github.com/vipmudancas/mirante/internal/core/domain"
	"github.com/vipmudancas/mirante/internal/core/ports"
)

// Assistant is the assistant service as the router needs it: the four
// operations plus its usage counters.
type Assistant interface {
	ports.AssistantService
	handler.UsageReporter
}

// Dependencies carries everything the router wires into handlers.
// Mongo and Redis may be nil when running on in-memory storage.
type Dependencies struct {
	Log          zerolog.Logger
	Auth         ports.AuthService
	Tokens       ports.TokenVerifier
	Users        middleware.UserLoader
	Assistant    Assistant
	Integrations ports.Integrations
	Leads        handler.LeadEnqueuer
	Mongo        *mongo.Database
	Redis        *redis.Client
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Log))
	e.Use(echoprometheus.NewMiddleware("mirante"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	assistantHandler := handler.NewAssistantHandler(deps.Assistant)
	integrationHandler := handler.NewIntegrationHandler(deps.Integrations, deps.Assistant)
	webhookHandler := handler.NewWebhookHandler(deps.Leads, deps.Log)
	authMiddleware := middleware.Auth(deps.Tokens)

	// --- Auth routes ---
	e.POST("/login", authHandler.Login)
	e.POST("/register", authHandler.Register)
	e.GET("/me", authHandler.Me)

	// --- Assistant routes ---
	e.POST("/analisar-cliente", assistantHandler.AnalyzeClient, authMiddleware)
	e.POST("/sugerir-acao", assistantHandler.SuggestAction, authMiddleware)
	e.POST("/gerar-mensagem", assistantHandler.GenerateMessage, authMiddleware)
	e.POST("/chat", assistantHandler.Chat, authMiddleware)

	// --- Integration routes ---
	e.GET("/google-agenda/eventos", integrationHandler.ListEvents, authMiddleware)
	e.POST("/google-agenda/eventos", integrationHandler.CreateEvent, authMiddleware)
	e.POST("/google-drive/upload", integrationHandler.UploadFile, authMiddleware)
	e.POST("/google-sheets/atualizar", integrationHandler.UpdateSheet, authMiddleware)
	e.POST("/notificacoes/programar", integrationHandler.ScheduleNotification, authMiddleware)
	e.GET("/automacoes/status", integrationHandler.AutomationsStatus, authMiddleware)
	e.POST("/cora/boleto", integrationHandler.IssueBoleto, authMiddleware, middleware.RBAC(deps.Users, domain.RoleAdmin))

	// --- Webhooks (no auth required) ---
	e.POST("/manychat/webhook", webhookHandler.ManyChat)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// requestLogger emits one zerolog event per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}
