package repository

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/DasBluEyedDevil/AltAydoSite-sub004/internal/app/ds"
)

// Columns replaced on every re-sync. created_at is deliberately absent so
// repeated upserts never reset the first-seen timestamp.
var shipUpsertColumns = []string{
	"slug", "name", "sc_identifier",
	"manufacturer_name", "manufacturer_code", "manufacturer_slug",
	"classification", "classification_label", "focus", "size", "production_status",
	"crew_min", "crew_max",
	"cargo", "length", "beam", "height", "mass",
	"scm_speed", "hydrogen_fuel_tank_size", "quantum_fuel_tank_size",
	"pledge_price", "price",
	"description", "store_url",
	"image_store", "image_angled_source", "image_angled_medium",
	"image_side_source", "image_side_medium",
	"image_top_source", "image_top_medium",
	"image_front_source", "image_front_medium",
	"image_fleetchart",
	"synced_at", "sync_version", "fleetyards_updated_at", "stale",
	"updated_at",
}

// UpsertShip inserts or replaces a ship document keyed by fleetyards_id.
func (r *Repository) UpsertShip(ship *ds.ShipDocument) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "fleetyards_id"}},
		DoUpdates: clause.AssignmentColumns(shipUpsertColumns),
	}).Create(ship).Error
}

// ListShips applies the filter set before counting and paginating, so Total
// reflects the filtered count. Ordering is name then id to keep pagination
// stable across identical queries.
func (r *Repository) ListShips(filter ds.ShipFilter) (*ds.ShipPage, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = r.maxPageSize
	}
	if pageSize > r.maxPageSize {
		pageSize = r.maxPageSize
	}

	query := r.db.Model(&ds.ShipDocument{})

	if filter.Manufacturer != "" {
		query = query.Where("manufacturer_slug = ? OR manufacturer_code = ?",
			filter.Manufacturer, filter.Manufacturer)
	}
	if filter.Size != "" {
		query = query.Where("size = ?", filter.Size)
	}
	if filter.Classification != "" {
		query = query.Where("classification = ?", filter.Classification)
	}
	if filter.ProductionStatus != "" {
		query = query.Where("production_status = ?", filter.ProductionStatus)
	}
	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE ?",
			"%"+strings.ToLower(filter.Search)+"%")
	}
	if !filter.IncludeStale {
		query = query.Where("stale = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var ships []ds.ShipDocument
	err := query.
		Order("name ASC").Order("id ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&ships).Error
	if err != nil {
		return nil, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(pageSize)))
	if totalPages < 1 {
		totalPages = 1
	}

	return &ds.ShipPage{
		Items:      ships,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// GetShipByIDOrSlug resolves a single document by fleetyards id first, then
// by slug. Stale documents still resolve here.
func (r *Repository) GetShipByIDOrSlug(idOrSlug string) (ds.ShipDocument, error) {
	var ship ds.ShipDocument
	err := r.db.Where("fleetyards_id = ?", idOrSlug).First(&ship).Error
	if err == nil {
		return ship, nil
	}
	if err != gorm.ErrRecordNotFound {
		return ds.ShipDocument{}, err
	}
	err = r.db.Where("slug = ?", idOrSlug).First(&ship).Error
	if err != nil {
		return ds.ShipDocument{}, err
	}
	return ship, nil
}

// GetShipsByFleetyardsIDs fetches one chunk of documents by id. Missing ids
// simply produce no row.
func (r *Repository) GetShipsByFleetyardsIDs(ids []string) ([]ds.ShipDocument, error) {
	var ships []ds.ShipDocument
	if len(ids) == 0 {
		return ships, nil
	}
	err := r.db.Where("fleetyards_id IN ?", ids).Find(&ships).Error
	if err != nil {
		return nil, err
	}
	return ships, nil
}

// AllShips enumerates the catalog for jobs that walk every record.
func (r *Repository) AllShips() ([]ds.ShipDocument, error) {
	var ships []ds.ShipDocument
	err := r.db.Where("stale = ?", false).
		Order("name ASC").Order("id ASC").
		Find(&ships).Error
	if err != nil {
		return nil, err
	}
	return ships, nil
}

// FlagStaleShips marks every document an ingestion run did not touch and
// returns how many were flagged.
func (r *Repository) FlagStaleShips(version int64) (int64, error) {
	res := r.db.Model(&ds.ShipDocument{}).
		Where("sync_version < ? AND stale = ?", version, false).
		Update("stale", true)
	return res.RowsAffected, res.Error
}

const syncVersionKey = "catalog:sync_version"

// NextSyncVersion computes the version for a new ingestion run: the persisted
// counter when present, otherwise max(sync_version) over stored documents,
// plus one.
func (r *Repository) NextSyncVersion() (int64, error) {
	var meta ds.SyncMeta
	err := r.db.First(&meta, "key = ?", syncVersionKey).Error
	if err == nil {
		current, perr := strconv.ParseInt(meta.Value, 10, 64)
		if perr != nil {
			return 0, fmt.Errorf("parse sync version %q: %w", meta.Value, perr)
		}
		return current + 1, nil
	}
	if err != gorm.ErrRecordNotFound {
		return 0, err
	}

	var current int64
	err = r.db.Model(&ds.ShipDocument{}).
		Select("COALESCE(MAX(sync_version), 0)").
		Scan(&current).Error
	if err != nil {
		return 0, err
	}
	return current + 1, nil
}

// SetSyncVersion persists the version of the last completed run.
func (r *Repository) SetSyncVersion(version int64) error {
	meta := ds.SyncMeta{
		Key:       syncVersionKey,
		Value:     strconv.FormatInt(version, 10),
		UpdatedAt: time.Now(),
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&meta).Error
}
