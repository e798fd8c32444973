package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/textloom/textloom/pkg/models"
)

// CreateTaskRequest is the POST /api/v1/tasks body. Content is the assembled
// source manifest markdown; MaterialsMeta optionally maps material URL to a
// manual description.
type CreateTaskRequest struct {
	Title         string            `json:"title" binding:"required"`
	Description   string            `json:"description"`
	CreatorID     string            `json:"creator_id"`
	Content       string            `json:"content" binding:"required"`
	MaterialsMeta map[string]string `json:"materials_meta"`
	ScriptStyle   string            `json:"script_style"`
	PersonaID     *string           `json:"persona_id"`
	SubVideoCount int               `json:"sub_video_count"`
}

// createTaskHandler handles POST /api/v1/tasks: it assembles the per-task
// workspace, persists the pending row, and enqueues the pipeline job.
func (s *Server) createTaskHandler(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.SubVideoCount == 0 {
		req.SubVideoCount = 1
	}

	taskID := uuid.New().String()
	workspaceDir := filepath.Join(s.workspaceRoot, "task_"+taskID)
	sourceFile := filepath.Join(workspaceDir, "source_manifest.md")

	if err := s.assembleWorkspace(workspaceDir, sourceFile, &req); err != nil {
		slog.Error("Failed to assemble task workspace", "task_id", taskID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to assemble workspace"})
		return
	}

	created, err := s.tasks.CreateTask(c.Request.Context(), models.CreateTaskRequest{
		TaskID:        taskID,
		Title:         req.Title,
		Description:   req.Description,
		CreatorID:     req.CreatorID,
		WorkspaceDir:  workspaceDir,
		SourceFile:    sourceFile,
		ScriptStyle:   req.ScriptStyle,
		PersonaID:     req.PersonaID,
		SubVideoCount: req.SubVideoCount,
	})
	if err != nil {
		_ = os.RemoveAll(workspaceDir)
		respondServiceError(c, err)
		return
	}

	job := models.PipelineJob{
		TaskID:       created.ID,
		SourceFile:   created.SourceFile,
		WorkspaceDir: created.WorkspaceDir,
		Mode:         created.TaskType,
		PersonaID:    created.PersonaID,
		SubCount:     created.SubVideoCount,
	}
	if err := s.jobs.Enqueue(c.Request.Context(), job); err != nil {
		slog.Error("Failed to enqueue pipeline job", "task_id", created.ID, "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "failed to enqueue task"})
		return
	}

	slog.Info("Task submitted", "task_id", created.ID, "sub_video_count", created.SubVideoCount)
	c.JSON(http.StatusCreated, created)
}

// assembleWorkspace writes the source manifest and optional materials
// metadata under the per-task workspace directory.
func (s *Server) assembleWorkspace(workspaceDir, sourceFile string, req *CreateTaskRequest) error {
	if err := os.MkdirAll(workspaceDir, 0o755); err != nil {
		return fmt.Errorf("failed to create workspace dir: %w", err)
	}
	if err := os.WriteFile(sourceFile, []byte(req.Content), 0o644); err != nil {
		return fmt.Errorf("failed to write source manifest: %w", err)
	}
	if len(req.MaterialsMeta) > 0 {
		data, err := json.Marshal(req.MaterialsMeta)
		if err != nil {
			return fmt.Errorf("failed to encode materials meta: %w", err)
		}
		metaFile := filepath.Join(workspaceDir, "materials_meta.json")
		if err := os.WriteFile(metaFile, data, 0o644); err != nil {
			return fmt.Errorf("failed to write materials meta: %w", err)
		}
	}
	return nil
}

// getTaskHandler handles GET /api/v1/tasks/:id.
func (s *Server) getTaskHandler(c *gin.Context) {
	taskID := c.Param("id")
	if taskID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "task id is required"})
		return
	}

	t, err := s.tasks.GetTask(c.Request.Context(), taskID, false)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, t)
}

// listTasksHandler handles GET /api/v1/tasks.
func (s *Server) listTasksHandler(c *gin.Context) {
	limit := 25
	offset := 0
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}

	tasks, total, err := s.tasks.ListTasks(c.Request.Context(), c.Query("creator_id"), limit, offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, &ListTasksResponse{
		Tasks:  tasks,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	})
}

// listSubTasksHandler handles GET /api/v1/tasks/:id/subtasks.
func (s *Server) listSubTasksHandler(c *gin.Context) {
	taskID := c.Param("id")
	if taskID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "task id is required"})
		return
	}

	// Confirm the parent exists so an unknown id is a 404, not an empty list.
	if _, err := s.tasks.GetTask(c.Request.Context(), taskID, false); err != nil {
		respondServiceError(c, err)
		return
	}

	subTasks, err := s.subTasks.ListByTask(c.Request.Context(), taskID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"task_id": taskID, "sub_tasks": subTasks})
}

// cancelTaskHandler handles POST /api/v1/tasks/:id/cancel.
func (s *Server) cancelTaskHandler(c *gin.Context) {
	taskID := c.Param("id")
	if taskID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "task id is required"})
		return
	}

	if err := s.tasks.RequestCancel(c.Request.Context(), taskID); err != nil {
		respondServiceError(c, err)
		return
	}

	// Interrupt the run if it is executing on this pod. Other pods observe
	// the cancelled status at the next stage boundary.
	if s.pool != nil {
		s.pool.CancelTask(taskID)
	}

	c.JSON(http.StatusOK, &CancelResponse{
		TaskID:  taskID,
		Message: "Task cancellation requested",
	})
}
