package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Skufu/vitalsense/internal/api"
	"github.com/Skufu/vitalsense/internal/checker"
	"github.com/Skufu/vitalsense/internal/history"
	"github.com/Skufu/vitalsense/internal/insights"
	"github.com/Skufu/vitalsense/internal/knowledge"
	"github.com/Skufu/vitalsense/internal/symptoms"
)

type Config struct {
	Port              string
	DatabaseURL       string
	EnableDB          bool
	LogLevel          string
	KnowledgeBasePath string
	HistoryLimit      int
}

func main() {
	gin.SetMode(getEnv("GIN_MODE", "release"))

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	kb, err := knowledge.LoadFile(cfg.KnowledgeBasePath)
	if err != nil {
		logger.Fatal("knowledge base", zap.Error(err))
	}

	ctx := context.Background()
	var (
		db    api.HealthChecker
		store history.Store = history.NewMemoryStore()
	)
	if cfg.EnableDB {
		pool, err := connectDB(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("database connection failed", zap.Error(err))
		}
		defer pool.Close()

		pg := history.NewPostgresStore(pool)
		if err := pg.EnsureSchema(ctx); err != nil {
			logger.Fatal("database schema", zap.Error(err))
		}
		db, store = pool, pg
	} else {
		logger.Warn("database disabled; symptom history is kept in memory")
	}

	svc := checker.NewService(checker.Config{
		Engine:       symptoms.NewEngine(kb),
		Analyzer:     insights.NewAnalyzer(),
		Store:        store,
		Logger:       logger,
		HistoryLimit: cfg.HistoryLimit,
	})

	router := api.NewRouter(api.Deps{
		Service: svc,
		DB:      db,
		Logger:  logger,
		Metrics: api.NewMetrics(),
	})
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	logger.Info("server listening",
		zap.String("port", cfg.Port),
		zap.Int("conditions", len(kb.Conditions())),
		zap.Bool("db", cfg.EnableDB),
	)
	waitForShutdown(server, logger)
}

func loadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		EnableDB:          strings.EqualFold(getEnv("ENABLE_DB", "false"), "true"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		KnowledgeBasePath: os.Getenv("KNOWLEDGE_BASE_PATH"),
		HistoryLimit:      checker.DefaultHistoryLimit,
	}

	if cfg.EnableDB && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required when ENABLE_DB=true")
	}

	if raw := os.Getenv("HISTORY_LIMIT"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("HISTORY_LIMIT must be a positive integer, got %q", raw)
		}
		cfg.HistoryLimit = n
	}

	return cfg, nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse LOG_LEVEL: %w", err)
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}

func connectDB(ctx context.Context, url string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parse db url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	return pool, nil
}

func waitForShutdown(server *http.Server, logger *zap.Logger) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
