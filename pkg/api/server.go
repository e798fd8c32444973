// Package api exposes the HTTP surface: task submission, task and sub-task
// reads, cancellation, and the health endpoint.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/textloom/textloom/ent"
	"github.com/textloom/textloom/pkg/broker"
	"github.com/textloom/textloom/pkg/config"
	"github.com/textloom/textloom/pkg/database"
	"github.com/textloom/textloom/pkg/models"
	"github.com/textloom/textloom/pkg/queue"
	"github.com/textloom/textloom/pkg/services"
)

// TaskStore is the task-service surface the HTTP handlers use.
type TaskStore interface {
	CreateTask(ctx context.Context, req models.CreateTaskRequest) (*ent.Task, error)
	GetTask(ctx context.Context, taskID string, withEdges bool) (*ent.Task, error)
	ListTasks(ctx context.Context, creatorID string, limit, offset int) ([]*ent.Task, int, error)
	RequestCancel(ctx context.Context, taskID string) error
}

// SubTaskStore is the sub-task read surface.
type SubTaskStore interface {
	ListByTask(ctx context.Context, taskID string) ([]*ent.SubVideoTask, error)
}

// JobQueue is the broker surface for submissions and health probes.
type JobQueue interface {
	Enqueue(ctx context.Context, job any) error
	Ping(ctx context.Context) error
}

// Pool is the worker-pool surface for cancellation and health.
type Pool interface {
	CancelTask(taskID string) bool
	Health() *queue.PoolHealth
}

var (
	_ TaskStore    = (*services.TaskService)(nil)
	_ SubTaskStore = (*services.SubTaskService)(nil)
	_ JobQueue     = (*broker.Broker)(nil)
	_ Pool         = (*queue.WorkerPool)(nil)
)

// Server is the HTTP server wiring handlers to the service layer.
type Server struct {
	tasks         TaskStore
	subTasks      SubTaskStore
	jobs          JobQueue
	pool          Pool
	dbClient      *database.Client
	workspaceRoot string

	httpServer *http.Server
}

// NewServer creates the HTTP server. dbClient and pool may be nil in tests;
// the health handler skips the corresponding checks.
func NewServer(cfg *config.Config, dbClient *database.Client, tasks TaskStore, subTasks SubTaskStore, jobs JobQueue, pool Pool) *Server {
	return &Server{
		tasks:         tasks,
		subTasks:      subTasks,
		jobs:          jobs,
		pool:          pool,
		dbClient:      dbClient,
		workspaceRoot: cfg.Pipeline.WorkspaceRoot,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), securityHeaders())

	r.GET("/health", s.healthHandler)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/tasks", s.createTaskHandler)
		v1.GET("/tasks", s.listTasksHandler)
		v1.GET("/tasks/:id", s.getTaskHandler)
		v1.GET("/tasks/:id/subtasks", s.listSubTasksHandler)
		v1.POST("/tasks/:id/cancel", s.cancelTaskHandler)
	}

	return r
}

// Start begins serving on addr. Blocks until the server stops.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
