// Package merge talks to the external video-merge service: submitting
// per-sub-task merge jobs and polling their status until the reconciler can
// converge the owning rows.
package merge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/sony/gobreaker"

	"github.com/textloom/textloom/pkg/config"
	"github.com/textloom/textloom/pkg/models"
)

// maxErrorBody bounds how much of an error response is kept in messages.
const maxErrorBody = 512

// Client is an HTTP client for the merge service. All calls go through a
// circuit breaker so a struggling merge service cannot stall every worker.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	subtitles  bool
	breaker    *gobreaker.CircuitBreaker
	logger     *slog.Logger
}

// NewClient builds a merge-service client from configuration. The API key is
// read from the environment variable the config names.
func NewClient(cfg *config.VideoMergeConfig, logger *slog.Logger) *Client {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:     "video-merge",
		Interval: time.Minute,
		Timeout:  30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Merge service circuit state changed", "from", from.String(), "to", to.String())
		},
	})

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     os.Getenv(cfg.APIKeyEnv),
		subtitles:  cfg.DynamicSubtitles,
		breaker:    breaker,
		logger:     logger,
	}
}

// SubtitlesEnabled reports whether merge submissions request the dynamic
// subtitle post-processing path.
func (c *Client) SubtitlesEnabled() bool {
	return c.subtitles
}

type submitResponse struct {
	CourseMediaID string `json:"course_media_id"`
}

// Submit sends one merge job and returns the merge service's job id.
func (c *Client) Submit(ctx context.Context, sub models.MergeSubmission) (string, error) {
	sub.Subtitles = c.subtitles

	body, err := json.Marshal(sub)
	if err != nil {
		return "", fmt.Errorf("failed to marshal merge submission: %w", err)
	}

	var resp submitResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/merge", body, &resp); err != nil {
		return "", err
	}
	if resp.CourseMediaID == "" {
		return "", fmt.Errorf("merge service returned no course_media_id for sub-task %s", sub.SubTaskID)
	}

	c.logger.Info("Submitted merge job", "sub_task_id", sub.SubTaskID, "course_media_id", resp.CourseMediaID)
	return resp.CourseMediaID, nil
}

// QueryStatus fetches the merge service's view of one submitted job.
func (c *Client) QueryStatus(ctx context.Context, courseMediaID string) (*models.MergeStatus, error) {
	var status models.MergeStatus
	if err := c.do(ctx, http.MethodGet, "/api/v1/merge/"+courseMediaID, nil, &status); err != nil {
		return nil, err
	}
	if status.CourseMediaID == "" {
		status.CourseMediaID = courseMediaID
	}
	return &status, nil
}

// do runs one HTTP call through the circuit breaker and decodes the JSON
// response into out.
func (c *Client) do(ctx context.Context, method, path string, body []byte, out any) error {
	_, err := c.breaker.Execute(func() (interface{}, error) {
		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to build merge request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		if c.apiKey != "" {
			req.Header.Set("Authorization", "Bearer "+c.apiKey)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("merge service call failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
			return nil, fmt.Errorf("merge service returned %d: %s", resp.StatusCode, string(snippet))
		}

		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return nil, fmt.Errorf("failed to decode merge response: %w", err)
		}
		return nil, nil
	})
	return err
}

// BuildSubmission assembles the merge payload for one sub-task from its
// normalized script and the cloud URLs of the materials it references.
func BuildSubmission(taskID, subTaskID string, result *models.ScriptResult, materialURLs map[string]string) models.MergeSubmission {
	sub := models.MergeSubmission{
		TaskID:    taskID,
		SubTaskID: subTaskID,
		Title:     result.Title,
		Narration: result.Narration,
	}

	seen := map[string]bool{}
	for _, scene := range result.Scenes {
		ms := models.MergeScene{
			SceneID:   scene.SceneID,
			Narration: scene.Narration,
		}
		ms.Start, ms.End = timingWindow(scene.Timing)
		if scene.MaterialID != nil {
			if url, ok := materialURLs[*scene.MaterialID]; ok {
				ms.MediaURL = url
				if !seen[url] {
					seen[url] = true
					sub.MediaURLs = append(sub.MediaURLs, url)
				}
			}
		}
		sub.Scenes = append(sub.Scenes, ms)
	}

	return sub
}

// timingWindow parses the normalized "As-Bs" scene window.
func timingWindow(timing string) (start, end float64) {
	fmt.Sscanf(timing, "%fs-%fs", &start, &end)
	return start, end
}
