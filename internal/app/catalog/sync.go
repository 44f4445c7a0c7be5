package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/DasBluEyedDevil/AltAydoSite-sub004/internal/app/ds"
)

// ErrSyncRunning is returned when another ingestion run holds the lock.
var ErrSyncRunning = errors.New("catalog sync already running")

// CatalogClient fetches the full source payload from the external catalog.
type CatalogClient interface {
	FetchModels(ctx context.Context) ([]ds.FleetyardsModel, error)
}

// SyncStore is the slice of the repository an ingestion run writes through.
type SyncStore interface {
	NextSyncVersion() (int64, error)
	UpsertShip(ship *ds.ShipDocument) error
	FlagStaleShips(version int64) (int64, error)
	SetSyncVersion(version int64) error
}

// Locker guards against overlapping runs. Nil disables locking (tests,
// single-process schedulers that already guarantee exclusivity).
type Locker interface {
	AcquireSyncLock(ctx context.Context, ttl time.Duration) (bool, error)
	ReleaseSyncLock(ctx context.Context) error
}

// SyncResult aggregates what one ingestion run did.
type SyncResult struct {
	Version  int64         `json:"version"`
	Fetched  int           `json:"fetched"`
	Skipped  int           `json:"skipped"`
	Upserted int           `json:"upserted"`
	Failed   int           `json:"failed"`
	Stale    int64         `json:"stale"`
	Duration time.Duration `json:"duration"`
}

// Syncer drives one ingestion run end-to-end: fetch, validate, transform,
// upsert, version stamp, stale flagging.
type Syncer struct {
	client   CatalogClient
	store    SyncStore
	locker   Locker
	validate *validator.Validate
	lockTTL  time.Duration
}

func NewSyncer(client CatalogClient, store SyncStore, locker Locker) *Syncer {
	return &Syncer{
		client:   client,
		store:    store,
		locker:   locker,
		validate: validator.New(),
		lockTTL:  15 * time.Minute,
	}
}

// Run executes one ingestion run. A fetch failure aborts before any upsert;
// a single bad record is skipped and logged, never the whole run. The run's
// version is read from the store at start and persisted only after the run
// completes, so an aborted run leaves the counter untouched.
func (s *Syncer) Run(ctx context.Context) (*SyncResult, error) {
	if s.locker != nil {
		ok, err := s.locker.AcquireSyncLock(ctx, s.lockTTL)
		if err != nil {
			return nil, fmt.Errorf("acquire sync lock: %w", err)
		}
		if !ok {
			return nil, ErrSyncRunning
		}
		defer func() {
			if err := s.locker.ReleaseSyncLock(ctx); err != nil {
				logrus.Errorf("release sync lock: %v", err)
			}
		}()
	}

	runID := uuid.New().String()
	started := time.Now()
	log := logrus.WithField("run_id", runID)

	version, err := s.store.NextSyncVersion()
	if err != nil {
		return nil, fmt.Errorf("next sync version: %w", err)
	}
	log.Infof("catalog sync started, version=%d", version)

	models, err := s.client.FetchModels(ctx)
	if err != nil {
		// Abort with nothing committed; the next scheduled trigger retries.
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}

	result := &SyncResult{Version: version, Fetched: len(models)}
	syncedAt := time.Now()

	for i := range models {
		m := &models[i]
		if err := s.validate.Struct(m); err != nil {
			result.Skipped++
			log.Warnf("skipping invalid record %d (id=%q): %v", i, m.ID, err)
			continue
		}
		doc := Transform(m, version, syncedAt)
		if err := s.store.UpsertShip(&doc); err != nil {
			result.Failed++
			log.Errorf("upsert %s (%s) failed: %v", doc.Slug, doc.FleetyardsID, err)
			continue
		}
		result.Upserted++
	}

	stale, err := s.store.FlagStaleShips(version)
	if err != nil {
		return nil, fmt.Errorf("flag stale ships: %w", err)
	}
	result.Stale = stale

	if err := s.store.SetSyncVersion(version); err != nil {
		return nil, fmt.Errorf("persist sync version: %w", err)
	}

	result.Duration = time.Since(started)
	log.Infof("catalog sync finished: upserted=%d skipped=%d failed=%d stale=%d in %s",
		result.Upserted, result.Skipped, result.Failed, result.Stale, result.Duration)
	return result, nil
}
