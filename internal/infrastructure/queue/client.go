package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"distribution-oos-backend/internal/shared"
	"distribution-oos-backend/pkg/logger"
)

// Client wraps asynq.Client cho API process enqueue tasks
type Client struct {
	client *asynq.Client
}

func NewClient(redisAddress, password string, db int) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     redisAddress,
			Password: password,
			DB:       db,
		}),
	}
}

// NotifyDecision enqueues a decision-notice task after the pipeline
// reaches a terminal state. Best-effort: callers treat errors as non-fatal.
func (c *Client) NotifyDecision(ctx context.Context, payload shared.DecisionNoticePayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal decision notice: %w", err)
	}

	task := asynq.NewTask(shared.TypeDecisionNotice, data)
	info, err := c.client.EnqueueContext(ctx, task, asynq.Queue("high"))
	if err != nil {
		return fmt.Errorf("enqueue decision notice: %w", err)
	}

	logger.Info("decision notice enqueued", map[string]interface{}{
		"task_id":    info.ID,
		"request_id": payload.RequestID,
		"approved":   payload.Approved,
	})
	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
