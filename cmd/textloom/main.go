// TextLoom orchestrator server: hosts the HTTP API, runs the pipeline
// worker pool, and reconciles merge results into terminal task states.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/textloom/textloom/pkg/analysis"
	"github.com/textloom/textloom/pkg/api"
	"github.com/textloom/textloom/pkg/broker"
	"github.com/textloom/textloom/pkg/cleanup"
	"github.com/textloom/textloom/pkg/config"
	"github.com/textloom/textloom/pkg/database"
	"github.com/textloom/textloom/pkg/llm"
	"github.com/textloom/textloom/pkg/material"
	"github.com/textloom/textloom/pkg/merge"
	"github.com/textloom/textloom/pkg/pipeline"
	"github.com/textloom/textloom/pkg/queue"
	"github.com/textloom/textloom/pkg/script"
	"github.com/textloom/textloom/pkg/services"
	"github.com/textloom/textloom/pkg/storage"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()
	logger := slog.Default()

	slog.Info("Starting TextLoom",
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database (runs embedded migrations)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Domain services
	taskService := services.NewTaskService(dbClient.Client)
	subTaskService := services.NewSubTaskService(dbClient.Client)
	scriptService := services.NewScriptService(dbClient.Client)
	mediaService := services.NewMediaService(dbClient.Client)
	analysisService := services.NewAnalysisService(dbClient.Client)
	personaService := services.NewPersonaService(dbClient.Client)

	if err := personaService.SeedDefaults(ctx); err != nil {
		slog.Error("Failed to seed default personas and templates", "error", err)
		os.Exit(1)
	}
	slog.Info("Services initialized")

	// 4. Redis broker
	jobBroker, err := broker.New(ctx, cfg.Broker, logger)
	if err != nil {
		slog.Error("Failed to connect to Redis broker", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := jobBroker.Close(); err != nil {
			slog.Error("Error closing broker", "error", err)
		}
	}()
	slog.Info("Redis broker connected")

	// 5. Object storage
	objectStore, err := storage.New(ctx, cfg.Storage, logger)
	if err != nil {
		slog.Error("Failed to initialize object storage", "error", err)
		os.Exit(1)
	}
	slog.Info("Object storage initialized", "bucket", cfg.Storage.Bucket)

	// 6. LLM clients (vision analysis + script generation)
	visionClient, err := llm.NewClient(*cfg.LLM.Vision, cfg.Pipeline.RetryAttempts, logger)
	if err != nil {
		slog.Error("Failed to initialize vision LLM client", "error", err)
		os.Exit(1)
	}
	scriptClient, err := llm.NewClient(*cfg.LLM.Script, cfg.Pipeline.RetryAttempts, logger)
	if err != nil {
		slog.Error("Failed to initialize script LLM client", "error", err)
		os.Exit(1)
	}
	slog.Info("LLM clients initialized",
		"vision_model", cfg.LLM.Vision.Model,
		"script_model", cfg.LLM.Script.Model)

	// 7. Pipeline stages and executor
	processor := material.NewProcessor(cfg.Pipeline, objectStore, mediaService, logger)
	analyzer := analysis.NewAnalyzer(cfg.Pipeline, visionClient, objectStore, analysisService, logger)
	generator := script.NewGenerator(cfg.Pipeline, scriptClient, scriptService, subTaskService, personaService, logger)
	mergeClient := merge.NewClient(cfg.VideoMerge, logger)

	executor := pipeline.NewExecutor(cfg.Pipeline, taskService, subTaskService, personaService,
		processor, analyzer, generator, mergeClient, logger)

	// 8. Worker pool (before the HTTP server)
	workerPool := queue.NewWorkerPool(podID, cfg.Queue, jobBroker, taskService, executor)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 9. Workspace retention cleanup
	cleanupService := cleanup.NewService(cfg.Retention, taskService, logger)
	cleanupService.Start(ctx)

	// 10. Merge reconciler
	reconciler := merge.NewReconciler(cfg.Queue, subTaskService, taskService, mergeClient, jobBroker, logger)
	reconcilerCtx, stopReconciler := context.WithCancel(ctx)
	reconcilerDone := make(chan struct{})
	go func() {
		defer close(reconcilerDone)
		reconciler.Run(reconcilerCtx, cfg.Queue.ReconcileInterval)
	}()
	slog.Info("Merge reconciler started", "interval", cfg.Queue.ReconcileInterval)

	// 11. HTTP server
	httpServer := api.NewServer(cfg, dbClient, taskService, subTaskService, jobBroker, workerPool)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("TextLoom started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 12. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 13. Graceful shutdown
	shutdownCtx, cancelShutdown := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer cancelShutdown()

	cleanupService.Stop()

	stopReconciler()
	select {
	case <-reconcilerDone:
		slog.Info("Merge reconciler stopped")
	case <-shutdownCtx.Done():
		slog.Warn("Reconciler shutdown timeout exceeded")
	}

	// Wait for active tasks to complete; anything interrupted is
	// orphan-recovered on the next scan.
	poolDone := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(poolDone)
	}()

	select {
	case <-poolDone:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded, incomplete tasks will be orphan-recovered")
	}

	// Stop HTTP server with its own timeout budget
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
