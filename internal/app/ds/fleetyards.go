package ds

// Source schema for the FleetYards models endpoint. Only the fields the
// transform consumes are decoded; everything else the API sends is ignored
// so unexpected upstream fields can never leak into storage.

// ImageView is one image angle with its published resolutions.
type ImageView struct {
	Source string `json:"source"`
	Medium string `json:"medium"`
}

// FleetyardsManufacturer is the manufacturer object as the source sends it,
// including the long-form name that the transform drops.
type FleetyardsManufacturer struct {
	Name     string `json:"name"`
	LongName string `json:"longName"`
	Code     string `json:"code"`
	Slug     string `json:"slug"`
}

// FleetyardsCrew mirrors the source crew object. Pointers because the source
// sends null for unknown crew sizes.
type FleetyardsCrew struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

// FleetyardsMedia groups the image views the source publishes per model.
type FleetyardsMedia struct {
	StoreImage      *ImageView `json:"storeImage"`
	AngledView      *ImageView `json:"angledView"`
	SideView        *ImageView `json:"sideView"`
	TopView         *ImageView `json:"topView"`
	FrontView       *ImageView `json:"frontView"`
	FleetchartImage *ImageView `json:"fleetchartImage"`
}

// FleetyardsModel is one vehicle record in the source's own schema. Validate
// must pass before a record may enter the transform; the transform itself
// performs no further validation.
type FleetyardsModel struct {
	ID           string  `json:"id" validate:"required"`
	Slug         string  `json:"slug" validate:"required"`
	Name         string  `json:"name" validate:"required"`
	ScIdentifier *string `json:"scIdentifier"`

	Manufacturer *FleetyardsManufacturer `json:"manufacturer"`

	Classification      *string `json:"classification"`
	ClassificationLabel *string `json:"classificationLabel"`
	Focus               *string `json:"focus"`
	Size                *string `json:"size"`
	ProductionStatus    *string `json:"productionStatus"`

	Crew *FleetyardsCrew `json:"crew"`

	Cargo  *float64 `json:"cargo"`
	Length *float64 `json:"length"`
	Beam   *float64 `json:"beam"`
	Height *float64 `json:"height"`
	Mass   *float64 `json:"mass"`

	ScmSpeed             *float64 `json:"scmSpeed"`
	HydrogenFuelTankSize *float64 `json:"hydrogenFuelTankSize"`
	QuantumFuelTankSize  *float64 `json:"quantumFuelTankSize"`

	PledgePrice *float64 `json:"pledgePrice"`
	Price       *float64 `json:"price"`

	Description *string `json:"description"`
	StoreURL    *string `json:"storeUrl"`

	Media FleetyardsMedia `json:"media"`

	UpdatedAt string `json:"updatedAt"`
}
