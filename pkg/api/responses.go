package api

import "github.com/textloom/textloom/ent"

// HealthCheck is one component entry in the health response.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is the GET /health body.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}

// CancelResponse is the POST /api/v1/tasks/:id/cancel body.
type CancelResponse struct {
	TaskID  string `json:"task_id"`
	Message string `json:"message"`
}

// ListTasksResponse is the GET /api/v1/tasks body.
type ListTasksResponse struct {
	Tasks  []*ent.Task `json:"tasks"`
	Total  int         `json:"total"`
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
}
