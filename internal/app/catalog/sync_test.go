package catalog

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/DasBluEyedDevil/AltAydoSite-sub004/internal/app/ds"
	"github.com/DasBluEyedDevil/AltAydoSite-sub004/internal/app/repository"
)

func newTestStore(t *testing.T) *repository.Repository {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&ds.ShipDocument{}, &ds.SyncMeta{}))
	return repository.NewWithDB(db)
}

type fakeCatalogClient struct {
	models []ds.FleetyardsModel
	err    error
}

func (c *fakeCatalogClient) FetchModels(ctx context.Context) ([]ds.FleetyardsModel, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.models, nil
}

type deniedLocker struct{}

func (deniedLocker) AcquireSyncLock(ctx context.Context, ttl time.Duration) (bool, error) {
	return false, nil
}
func (deniedLocker) ReleaseSyncLock(ctx context.Context) error { return nil }

func TestSyncRunInsertsNewDocuments(t *testing.T) {
	store := newTestStore(t)
	client := &fakeCatalogClient{models: []ds.FleetyardsModel{
		*sampleModel(),
		{ID: "fy-456", Slug: "carrack", Name: "Carrack"},
	}}

	result, err := NewSyncer(client, store, nil).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1), result.Version)
	assert.Equal(t, 2, result.Fetched)
	assert.Equal(t, 2, result.Upserted)
	assert.Equal(t, 0, result.Skipped)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, int64(0), result.Stale)

	page, err := store.ListShips(ds.ShipFilter{})
	require.NoError(t, err)
	require.EqualValues(t, 2, page.Total)
	for _, ship := range page.Items {
		assert.Equal(t, int64(1), ship.SyncVersion)
		assert.WithinDuration(t, ship.CreatedAt, ship.UpdatedAt, time.Second,
			"first insert should leave createdAt == updatedAt")
	}
}

func TestSyncRunPreservesCreatedAtOnResync(t *testing.T) {
	store := newTestStore(t)
	client := &fakeCatalogClient{models: []ds.FleetyardsModel{*sampleModel()}}
	syncer := NewSyncer(client, store, nil)

	_, err := syncer.Run(context.Background())
	require.NoError(t, err)

	first, err := store.GetShipByIDOrSlug("fy-123")
	require.NoError(t, err)

	time.Sleep(1100 * time.Millisecond)
	client.models[0].Name = "Aurora MR Mk2"
	client.models[0].Cargo = numPtr(10)

	result, err := syncer.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Version)

	second, err := store.GetShipByIDOrSlug("fy-123")
	require.NoError(t, err)

	assert.Equal(t, "Aurora MR Mk2", second.Name)
	assert.Equal(t, 10.0, second.Cargo)
	assert.Equal(t, int64(2), second.SyncVersion)
	assert.Equal(t, first.CreatedAt.UTC(), second.CreatedAt.UTC(),
		"createdAt must never be reset by an upsert")
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))
}

func TestSyncRunFlagsStaleDocuments(t *testing.T) {
	store := newTestStore(t)
	kept := *sampleModel()
	dropped := ds.FleetyardsModel{ID: "fy-gone", Slug: "gone", Name: "Gone"}
	client := &fakeCatalogClient{models: []ds.FleetyardsModel{kept, dropped}}
	syncer := NewSyncer(client, store, nil)

	_, err := syncer.Run(context.Background())
	require.NoError(t, err)

	// Second run: the source no longer reports fy-gone.
	client.models = []ds.FleetyardsModel{kept}
	result, err := syncer.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Stale)

	gone, err := store.GetShipByIDOrSlug("fy-gone")
	require.NoError(t, err, "stale documents still resolve by id")
	assert.True(t, gone.Stale)
	assert.Equal(t, int64(1), gone.SyncVersion)

	current, err := store.GetShipByIDOrSlug("fy-123")
	require.NoError(t, err)
	assert.False(t, current.Stale)
	assert.Equal(t, int64(2), current.SyncVersion)

	// Stale documents drop out of list queries by default.
	page, err := store.ListShips(ds.ShipFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.Total)

	all, err := store.ListShips(ds.ShipFilter{IncludeStale: true})
	require.NoError(t, err)
	assert.EqualValues(t, 2, all.Total)
}

func TestSyncRunSkipsInvalidRecords(t *testing.T) {
	store := newTestStore(t)
	client := &fakeCatalogClient{models: []ds.FleetyardsModel{
		*sampleModel(),
		{ID: "fy-bad", Slug: "bad"}, // missing required name
	}}

	result, err := NewSyncer(client, store, nil).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Upserted)
	assert.Equal(t, 1, result.Skipped)

	page, err := store.ListShips(ds.ShipFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.Total)
}

func TestSyncRunAbortsOnFetchFailure(t *testing.T) {
	store := newTestStore(t)
	client := &fakeCatalogClient{err: errors.New("upstream down")}

	_, err := NewSyncer(client, store, nil).Run(context.Background())
	require.Error(t, err)

	page, lerr := store.ListShips(ds.ShipFilter{})
	require.NoError(t, lerr)
	assert.EqualValues(t, 0, page.Total, "no partial state after an aborted run")

	// The version counter was not consumed by the aborted run.
	next, verr := store.NextSyncVersion()
	require.NoError(t, verr)
	assert.Equal(t, int64(1), next)
}

func TestSyncRunRefusedWhileLocked(t *testing.T) {
	store := newTestStore(t)
	client := &fakeCatalogClient{models: []ds.FleetyardsModel{*sampleModel()}}

	_, err := NewSyncer(client, store, deniedLocker{}).Run(context.Background())
	require.ErrorIs(t, err, ErrSyncRunning)
}

func TestSyncVersionsAreMonotonic(t *testing.T) {
	store := newTestStore(t)
	client := &fakeCatalogClient{models: []ds.FleetyardsModel{*sampleModel()}}
	syncer := NewSyncer(client, store, nil)

	for i := 1; i <= 3; i++ {
		result, err := syncer.Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(i), result.Version)
	}
}
