package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const (
	// SyncCatalogTask runs one ingestion run against the external catalog.
	SyncCatalogTask = "catalog:sync"
	// WarmImagesTask pre-populates the image cache; scheduled after a sync.
	WarmImagesTask = "images:warm"
)

// WarmPayload lets a sync-triggered warm job say why it runs.
type WarmPayload struct {
	Reason string `json:"reason"`
}

// EnqueueSync enqueues an ingestion run.
func EnqueueSync(ctx context.Context, client *asynq.Client) error {
	task := asynq.NewTask(SyncCatalogTask, nil)
	if _, err := client.EnqueueContext(ctx, task, asynq.MaxRetry(3)); err != nil {
		return fmt.Errorf("enqueue sync task: %w", err)
	}
	return nil
}

// EnqueueWarm enqueues a cache warm-up job.
func EnqueueWarm(ctx context.Context, client *asynq.Client, payload WarmPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	task := asynq.NewTask(WarmImagesTask, data)
	if _, err := client.EnqueueContext(ctx, task, asynq.MaxRetry(2)); err != nil {
		return fmt.Errorf("enqueue warm task: %w", err)
	}
	return nil
}
