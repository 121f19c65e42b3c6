package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/lexdex/internal/config"
	dbRedis "github.com/kailas-cloud/lexdex/internal/db/redis"
	"github.com/kailas-cloud/lexdex/internal/domain"
	logpkg "github.com/kailas-cloud/lexdex/internal/logger"
	"github.com/kailas-cloud/lexdex/internal/metrics"
	"github.com/kailas-cloud/lexdex/internal/repository/embcache"
	"github.com/kailas-cloud/lexdex/internal/repository/evidence"
	"github.com/kailas-cloud/lexdex/internal/repository/facets"
	chiTransport "github.com/kailas-cloud/lexdex/internal/transport/chi"
	openaiTransport "github.com/kailas-cloud/lexdex/internal/transport/openai"
	answeruc "github.com/kailas-cloud/lexdex/internal/usecase/answer"
	classifyuc "github.com/kailas-cloud/lexdex/internal/usecase/classify"
	embeddinguc "github.com/kailas-cloud/lexdex/internal/usecase/embedding"
	extractuc "github.com/kailas-cloud/lexdex/internal/usecase/extract"
	healthuc "github.com/kailas-cloud/lexdex/internal/usecase/health"
	orchestrateuc "github.com/kailas-cloud/lexdex/internal/usecase/orchestrate"
	retrieveuc "github.com/kailas-cloud/lexdex/internal/usecase/retrieve"
	"github.com/kailas-cloud/lexdex/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting lexdex API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Strings("db_addrs", cfg.Database.Addrs),
	)

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Username: cfg.Database.Username,
		Password: cfg.Database.Password,
	})
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database")

	// Register Prometheus metrics explicitly (no init())
	metrics.RegisterEmbeddingMetrics()
	metrics.RegisterCompletionMetrics()
	metrics.RegisterHTTPMetrics()

	// AI providers
	baseEmbedder := openaiTransport.NewEmbedder(&openaiTransport.EmbedderConfig{
		APIKey:     cfg.Embedding.APIKey,
		BaseURL:    cfg.Embedding.BaseURL,
		Model:      cfg.Embedding.Model,
		Dimensions: cfg.Embedding.Dimensions,
		Timeout:    time.Duration(cfg.Embedding.TimeoutSec) * time.Second,
		Provider:   cfg.Embedding.Provider,
		Logger:     logger,
	})
	queryEmbedder := buildEmbedderChain(baseEmbedder, store, cfg, logger)
	logger.Info("Embedder created",
		zap.String("provider", cfg.Embedding.Provider),
		zap.String("model", cfg.Embedding.Model),
		zap.Int("dimensions", cfg.Embedding.Dimensions),
	)

	completer := openaiTransport.NewCompleter(&openaiTransport.CompleterConfig{
		APIKey:    cfg.Completion.APIKey,
		BaseURL:   cfg.Completion.BaseURL,
		Model:     cfg.Completion.Model,
		MaxTokens: cfg.Completion.MaxTokens,
		Timeout:   time.Duration(cfg.Completion.TimeoutSec) * time.Second,
		Logger:    logger,
	})
	logger.Info("Completer created",
		zap.String("provider", cfg.Completion.Provider),
		zap.String("model", cfg.Completion.Model),
	)

	// Repositories
	evidenceRepo := evidence.New(store, evidence.Config{
		KeyPrefix: cfg.Storage.KeyPrefix,
		KNearest:  cfg.Search.KNearest,
		VectorDim: cfg.Embedding.Dimensions,
	}, logger)
	facetRepo := facets.New(store, cfg.Storage.KeyPrefix, logger)

	if err := evidenceRepo.EnsureIndex(ctx); err != nil {
		logger.Fatal("Failed to ensure search index", zap.Error(err))
	}

	// Use case services
	classifySvc := classifyuc.New(completer, logger)
	extractSvc := extractuc.New(completer, facetRepo, logger)
	retrieveSvc := retrieveuc.New(evidenceRepo, queryEmbedder, retrieveuc.Config{
		TopK:      cfg.Search.TopK,
		VectorDim: cfg.Embedding.Dimensions,
	}, logger)
	answerSvc := answeruc.New(completer, answeruc.Config{
		MaxTokens: cfg.Completion.MaxTokens,
	}, logger)
	orchestrateSvc := orchestrateuc.New(classifySvc, extractSvc, retrieveSvc, answerSvc, logger)

	healthSvc := healthuc.New(store, baseEmbedder, completer)

	server := chiTransport.NewServer(orchestrateSvc, healthSvc, logger)
	router := server.Router(cfg.Auth.APIKeys)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// buildEmbedderChain assembles the decorator chain:
// OpenAI -> Cached -> Instrumented -> Instruction.
func buildEmbedderChain(
	base domain.Embedder,
	store *dbRedis.Store,
	cfg config.Config,
	logger *zap.Logger,
) domain.Embedder {
	var embedder domain.Embedder = embcache.New(
		base, store, cfg.Storage.KeyPrefix, metrics.EmbeddingCacheTotal, logger,
	)

	embedder = embeddinguc.NewInstrumentedEmbedder(
		embedder, cfg.Embedding.Provider, cfg.Embedding.Model, logger,
	)

	// Instruction prefix goes outermost so the cache key includes it.
	if cfg.Embedding.QueryInstruction != "" {
		return domain.NewInstructionEmbedder(embedder, cfg.Embedding.QueryInstruction)
	}

	return embedder
}
