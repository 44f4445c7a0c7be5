package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/sirupsen/logrus"

	"github.com/DasBluEyedDevil/AltAydoSite-sub004/internal/app/catalog"
	"github.com/DasBluEyedDevil/AltAydoSite-sub004/internal/app/queue"
)

// Processor is plugged into the asynq worker loop and owns the scheduled
// ingestion and warm-up runs.
type Processor struct {
	syncer *catalog.Syncer
	warmer *catalog.Warmer
	client *asynq.Client
}

func NewProcessor(syncer *catalog.Syncer, warmer *catalog.Warmer, client *asynq.Client) *Processor {
	return &Processor{syncer: syncer, warmer: warmer, client: client}
}

// Handler registers the job handlers.
func (p *Processor) Handler() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(queue.SyncCatalogTask, p.handleSync)
	mux.HandleFunc(queue.WarmImagesTask, p.handleWarm)
	return mux
}

func (p *Processor) handleSync(ctx context.Context, task *asynq.Task) error {
	result, err := p.syncer.Run(ctx)
	if err != nil {
		if errors.Is(err, catalog.ErrSyncRunning) {
			// Another trigger beat us to it; nothing to retry.
			logrus.Info("sync task skipped, run already in progress")
			return nil
		}
		return fmt.Errorf("sync run: %w", err)
	}

	logrus.Infof("sync task done: version=%d upserted=%d stale=%d",
		result.Version, result.Upserted, result.Stale)

	// Warm the image cache right after a successful sync so the next
	// catalog page load never hits a cold cache.
	if p.client != nil {
		payload := queue.WarmPayload{Reason: "post-sync"}
		if err := queue.EnqueueWarm(ctx, p.client, payload); err != nil {
			logrus.Errorf("enqueue post-sync warm: %v", err)
		}
	}
	return nil
}

func (p *Processor) handleWarm(ctx context.Context, task *asynq.Task) error {
	var payload queue.WarmPayload
	if len(task.Payload()) > 0 {
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			return fmt.Errorf("decode payload: %w", err)
		}
	}

	result, err := p.warmer.Warm(ctx)
	if err != nil {
		return fmt.Errorf("warm run: %w", err)
	}

	logrus.Infof("warm task done (%s): images=%d warmed=%d failed=%d",
		payload.Reason, result.UniqueImages, result.Warmed, result.Failed)
	return nil
}
