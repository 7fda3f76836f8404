package routes

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	_ "repair_visits/docs" // generated by swag init
	"repair_visits/internal/adapter/audit"
	"repair_visits/internal/adapter/http/handlers"
	"repair_visits/internal/adapter/http/middleware"
	"repair_visits/internal/infrastructure/config"
	"repair_visits/internal/infrastructure/metrics"
	"repair_visits/internal/usecase"
	"repair_visits/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

var router = gin.New()

// Run will start the server and block until SIGINT or SIGTERM.
func Run() {
	cfg := config.New()
	log := logger.New(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	setMiddlewares(cfg, log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	dispatcher, cleanup, err := getRoutes(ctx, cfg, log)
	if err != nil {
		log.Fatal("failed to startup the application", zap.Error(err))
	}
	defer cleanup()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: router, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		log.Info("listening", zap.String("addr", srv.Addr), zap.String("store", cfg.StoreDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown", zap.Error(err))
	}
	dispatcher.Stop(shutdownCtx)

	st := dispatcher.Stats()
	log.Info("audit dispatcher stopped",
		zap.Uint64("delivered", st.Delivered),
		zap.Uint64("failed", st.Failed),
		zap.Uint64("dropped", st.Dropped),
	)
}

// getRoutes wires the store, the audit pipeline and the handlers. The
// returned cleanup releases store and sink connections.
func getRoutes(ctx context.Context, cfg config.Config, log *zap.Logger) (*audit.Dispatcher, func(), error) {
	store, closeStore, err := NewRecordStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	sink, closeSink, err := newAuditSink(ctx, cfg, log)
	if err != nil {
		closeStore()
		return nil, nil, err
	}

	dispatcher := audit.NewDispatcher(sink, cfg.AuditQueueSize, cfg.AuditWorkers, cfg.AuditTimeout, log.Named("audit"))
	dispatcher.Start(context.WithoutCancel(ctx))

	locale, err := language.Parse(cfg.CollationLocale)
	if err != nil {
		log.Warn("unknown collation locale, using en", zap.String("locale", cfg.CollationLocale))
		locale = language.English
	}

	queryUseCase := usecase.NewVisitQueryUseCase(store, log.Named("query"), cfg.StoreTimeout, locale)
	updateUseCase := usecase.NewVisitUpdateUseCase(store, dispatcher, log.Named("update"), cfg.StoreTimeout)

	visitHandler := handlers.NewVisitHandler(queryUseCase, updateUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addVisitRoutes(v1, visitHandler)

	return dispatcher, func() {
		closeSink()
		closeStore()
	}, nil
}

func setMiddlewares(cfg config.Config, log *zap.Logger) {
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestLogger(log.Named("http")))
	router.Use(middleware.Metrics())
	router.Use(middleware.RateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst))
}
