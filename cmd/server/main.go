package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"kra.app/feedback/common/id"
	"kra.app/feedback/common/logger"
	"kra.app/feedback/common/otel"
	"kra.app/feedback/core/config"
	"kra.app/feedback/core/db"
	"kra.app/feedback/internal/auth"
	"kra.app/feedback/internal/http/middleware"
	httprouter "kra.app/feedback/internal/http/router"
	"kra.app/feedback/internal/realtime"
	"kra.app/feedback/internal/service"
	"kra.app/feedback/internal/storage"
	"kra.app/feedback/internal/store"
)

func main() {
	fmt.Printf("%s\n", banner)
	ctx := context.Background()

	cfg, err := config.Load(config.ServiceTypeServer)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// OTel before the logger: in production the logger writes through the OTel provider
	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	if telemetry != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", cfg.OTel.Endpoint)
	} else {
		slog.InfoContext(ctx, "otel disabled (no endpoint configured)")
	}

	slog.InfoContext(ctx, "feedback server starting", "env", cfg.Env, "service", cfg.OTel.ServiceName)
	if err := id.Init(cfg.NodeID); err != nil {
		slog.ErrorContext(ctx, "failed to initialize snowflake id generator", "error", err, "node_id", cfg.NodeID)
		os.Exit(1)
	}

	if !cfg.Auth.Enabled() {
		slog.WarnContext(ctx, "JWT_SECRET is not set, authenticated requests will fail")
	}

	database, err := db.New(ctx, cfg.DB)
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()
	slog.InfoContext(ctx, "database connected")

	if cfg.AutoMigrate {
		if err := database.Migrate(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to run migrations", "error", err)
			os.Exit(1)
		}
	}

	hub := realtime.NewNoopHub()
	if cfg.Redis.Enabled() {
		redisOpts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			slog.ErrorContext(ctx, "failed to parse redis url", "error", err)
			os.Exit(1)
		}

		redisClient := redis.NewClient(redisOpts)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			slog.ErrorContext(ctx, "failed to connect to redis", "error", err)
			os.Exit(1)
		}
		defer redisClient.Close()

		hub = realtime.NewRedisHub(redisClient, cfg.Redis.ChannelPrefix)
		slog.InfoContext(ctx, "redis connected", "channel_prefix", cfg.Redis.ChannelPrefix)
	} else {
		slog.InfoContext(ctx, "live push disabled (no REDIS_URL configured)")
	}

	var objects storage.ObjectStore
	if cfg.Storage.Enabled() {
		objects, err = storage.NewMinioStore(ctx, cfg.Storage)
		if err != nil {
			slog.ErrorContext(ctx, "failed to connect to object storage", "error", err)
			os.Exit(1)
		}
		slog.InfoContext(ctx, "object storage connected", "endpoint", cfg.Storage.Endpoint, "bucket", cfg.Storage.Bucket)
	} else {
		slog.InfoContext(ctx, "attachment uploads disabled (no MINIO_ENDPOINT configured)")
	}

	stores := store.NewStores(database.Queries())
	services := service.NewServices(
		stores,
		service.NewTxRunner(database),
		auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
		hub,
		objects,
		cfg.Comments.NotifyConcurrency,
	)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(cfg, services)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.InfoContext(ctx, "http server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.ErrorContext(ctx, "http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
}

func setupRouter(cfg config.Config, services *service.Services) *gin.Engine {
	router := gin.New()

	// OTel span first so Recovery and Logger see the trace context
	if cfg.OTel.Enabled() {
		router.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())

	httprouter.SetupRoutes(router, services, httprouter.RouterConfig{
		AllowOrigins: cfg.CORS.AllowOrigins,
	})

	return router
}

const banner = `
██╗  ██╗██████╗  █████╗     ███████╗███████╗███████╗██████╗ ██████╗  █████╗  ██████╗██╗  ██╗
██║ ██╔╝██╔══██╗██╔══██╗    ██╔════╝██╔════╝██╔════╝██╔══██╗██╔══██╗██╔══██╗██╔════╝██║ ██╔╝
█████╔╝ ██████╔╝███████║    █████╗  █████╗  █████╗  ██║  ██║██████╔╝███████║██║     █████╔╝ 
██╔═██╗ ██╔══██╗██╔══██║    ██╔══╝  ██╔══╝  ██╔══╝  ██║  ██║██╔══██╗██╔══██║██║     ██╔═██╗ 
██║  ██╗██║  ██║██║  ██║    ██║     ███████╗███████╗██████╔╝██████╔╝██║  ██║╚██████╗██║  ██╗
╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═╝    ╚═╝     ╚══════╝╚══════╝╚═════╝ ╚═════╝ ╚═╝  ╚═╝ ╚═════╝╚═╝  ╚═╝
`
