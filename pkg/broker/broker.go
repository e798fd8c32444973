// Package broker dispatches pipeline and maintenance jobs over Redis lists.
//
// Delivery is at-least-once: LPUSH to enqueue, blocking BRPOP to consume.
// Consumers must tolerate duplicates, which the store layer guarantees via
// natural-key idempotency, so the broker itself stays deliberately simple.
package broker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/textloom/textloom/pkg/config"
)

// ErrClosed is returned by Dequeue after the broker has been closed.
var ErrClosed = errors.New("broker is closed")

// Broker is a Redis-list message broker for pipeline and maintenance jobs.
type Broker struct {
	client           *redis.Client
	pipelineQueue    string
	maintenanceQueue string
	logger           *slog.Logger
}

// New connects to Redis using the broker configuration and verifies the
// connection with a ping.
func New(ctx context.Context, cfg *config.BrokerConfig, logger *slog.Logger) (*Broker, error) {
	opts := &redis.Options{
		Addr: cfg.RedisAddr,
		DB:   cfg.RedisDB,
	}
	if cfg.PasswordEnv != "" {
		opts.Password = os.Getenv(cfg.PasswordEnv)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
	}

	logger.Info("Connected to message broker", "addr", cfg.RedisAddr, "queue", cfg.PipelineQueue)

	return &Broker{
		client:           client,
		pipelineQueue:    cfg.PipelineQueue,
		maintenanceQueue: cfg.MaintenanceQueue,
		logger:           logger,
	}, nil
}

// NewWithClient wraps an existing Redis client. Used by tests.
func NewWithClient(client *redis.Client, pipelineQueue, maintenanceQueue string, logger *slog.Logger) *Broker {
	return &Broker{
		client:           client,
		pipelineQueue:    pipelineQueue,
		maintenanceQueue: maintenanceQueue,
		logger:           logger,
	}
}

// Enqueue pushes a job onto the pipeline queue.
func (b *Broker) Enqueue(ctx context.Context, job any) error {
	return b.push(ctx, b.pipelineQueue, job)
}

// EnqueueMaintenance pushes a job onto the maintenance queue, used for
// subtitle post-processing handoffs.
func (b *Broker) EnqueueMaintenance(ctx context.Context, job any) error {
	return b.push(ctx, b.maintenanceQueue, job)
}

func (b *Broker) push(ctx context.Context, queue string, job any) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}

	if err := b.client.LPush(ctx, queue, payload).Err(); err != nil {
		return fmt.Errorf("failed to enqueue job: %w", err)
	}

	b.logger.Debug("Enqueued job", "queue", queue, "bytes", len(payload))
	return nil
}

// Dequeue blocks until a job is available or the context is cancelled, then
// decodes the payload into job. A nil error means job was populated.
func (b *Broker) Dequeue(ctx context.Context, timeout time.Duration, job any) error {
	res, err := b.client.BRPop(ctx, timeout, b.pipelineQueue).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return context.DeadlineExceeded
		}
		if errors.Is(err, redis.ErrClosed) {
			return ErrClosed
		}
		return fmt.Errorf("failed to dequeue job: %w", err)
	}

	// BRPOP returns [key, value].
	if len(res) != 2 {
		return fmt.Errorf("unexpected BRPOP reply length %d", len(res))
	}

	if err := json.Unmarshal([]byte(res[1]), job); err != nil {
		return fmt.Errorf("failed to decode job payload: %w", err)
	}
	return nil
}

// QueueDepth reports the number of jobs waiting on the pipeline queue.
func (b *Broker) QueueDepth(ctx context.Context) (int64, error) {
	depth, err := b.client.LLen(ctx, b.pipelineQueue).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to read queue depth: %w", err)
	}
	return depth, nil
}

// Ping verifies broker liveness for health checks.
func (b *Broker) Ping(ctx context.Context) error {
	return b.client.Ping(ctx).Err()
}

// Close releases the Redis connection.
func (b *Broker) Close() error {
	return b.client.Close()
}
