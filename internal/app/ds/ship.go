package ds

import "time"

// Manufacturer is the simplified manufacturer entity embedded in a ship
// document. The long-form name from the catalog source is dropped on purpose.
type Manufacturer struct {
	Name string `gorm:"column:name" json:"name"`
	Code string `gorm:"column:code" json:"code"`
	Slug string `gorm:"column:slug" json:"slug"`
}

// Crew holds the min/max crew size. Zero means unknown.
type Crew struct {
	Min int `gorm:"column:min" json:"min"`
	Max int `gorm:"column:max" json:"max"`
}

// ShipImages carries the per-view image URLs at the resolutions the catalog
// publishes. A nil field means the source does not have that view.
type ShipImages struct {
	Store        *string `gorm:"column:store" json:"store"`
	AngledSource *string `gorm:"column:angled_source" json:"angledSource"`
	AngledMedium *string `gorm:"column:angled_medium" json:"angledMedium"`
	SideSource   *string `gorm:"column:side_source" json:"sideSource"`
	SideMedium   *string `gorm:"column:side_medium" json:"sideMedium"`
	TopSource    *string `gorm:"column:top_source" json:"topSource"`
	TopMedium    *string `gorm:"column:top_medium" json:"topMedium"`
	FrontSource  *string `gorm:"column:front_source" json:"frontSource"`
	FrontMedium  *string `gorm:"column:front_medium" json:"frontMedium"`
	Fleetchart   *string `gorm:"column:fleetchart" json:"fleetchart"`
}

// @Schema(description="Canonical stored ship record synced from FleetYards")
type ShipDocument struct {
	ID           uint    `gorm:"primaryKey;column:id" json:"-"`
	FleetyardsID string  `gorm:"column:fleetyards_id;uniqueIndex" json:"fleetyardsId"`
	Slug         string  `gorm:"column:slug;uniqueIndex" json:"slug"`
	Name         string  `gorm:"column:name;index" json:"name"`
	ScIdentifier *string `gorm:"column:sc_identifier" json:"scIdentifier"`

	Manufacturer Manufacturer `gorm:"embedded;embeddedPrefix:manufacturer_" json:"manufacturer"`

	// Categorical strings; empty string when the source omits them, never null.
	Classification      string `gorm:"column:classification;index" json:"classification"`
	ClassificationLabel string `gorm:"column:classification_label" json:"classificationLabel"`
	Focus               string `gorm:"column:focus" json:"focus"`
	Size                string `gorm:"column:size;index" json:"size"`
	ProductionStatus    string `gorm:"column:production_status;index" json:"productionStatus"`

	Crew Crew `gorm:"embedded;embeddedPrefix:crew_" json:"crew"`

	// Physical attributes; 0 means unknown or not applicable.
	Cargo  float64 `gorm:"column:cargo" json:"cargo"`
	Length float64 `gorm:"column:length" json:"length"`
	Beam   float64 `gorm:"column:beam" json:"beam"`
	Height float64 `gorm:"column:height" json:"height"`
	Mass   float64 `gorm:"column:mass" json:"mass"`

	// Performance; nil means not applicable, distinct from 0.
	ScmSpeed             *float64 `gorm:"column:scm_speed" json:"scmSpeed"`
	HydrogenFuelTankSize *float64 `gorm:"column:hydrogen_fuel_tank_size" json:"hydrogenFuelTankSize"`
	QuantumFuelTankSize  *float64 `gorm:"column:quantum_fuel_tank_size" json:"quantumFuelTankSize"`

	PledgePrice *float64 `gorm:"column:pledge_price" json:"pledgePrice"`
	Price       *float64 `gorm:"column:price" json:"price"`

	Description *string `gorm:"column:description" json:"description"`
	StoreURL    *string `gorm:"column:store_url" json:"storeUrl"`

	Images ShipImages `gorm:"embedded;embeddedPrefix:image_" json:"images"`

	SyncedAt            time.Time `gorm:"column:synced_at" json:"syncedAt"`
	SyncVersion         int64     `gorm:"column:sync_version;index" json:"syncVersion"`
	FleetyardsUpdatedAt string    `gorm:"column:fleetyards_updated_at" json:"fleetyardsUpdatedAt"`
	Stale               bool      `gorm:"column:stale;index" json:"stale"`

	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (ShipDocument) TableName() string {
	return "ships"
}
