package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DasBluEyedDevil/AltAydoSite-sub004/internal/app/ds"
)

func strPtr(s string) *string   { return &s }
func numPtr(n float64) *float64 { return &n }

func sampleModel() *ds.FleetyardsModel {
	return &ds.FleetyardsModel{
		ID:           "fy-123",
		Slug:         "aurora-mr",
		Name:         "Aurora MR",
		ScIdentifier: strPtr("RSI_AURORA_MR"),
		Manufacturer: &ds.FleetyardsManufacturer{
			Name:     "RSI",
			LongName: "Roberts Space Industries",
			Code:     "RSI",
			Slug:     "roberts-space-industries",
		},
		Classification:      strPtr("ship"),
		ClassificationLabel: strPtr("Ship"),
		Focus:               strPtr("Starter"),
		Size:                strPtr("small"),
		ProductionStatus:    strPtr("flight-ready"),
		Crew:                &ds.FleetyardsCrew{Min: numPtr(1), Max: numPtr(1)},
		Cargo:               numPtr(6),
		Length:              numPtr(18),
		Beam:                numPtr(8),
		Height:              numPtr(4),
		Mass:                numPtr(25000),
		ScmSpeed:            numPtr(190),
		PledgePrice:         numPtr(25),
		Description:         strPtr("A starter ship."),
		StoreURL:            strPtr("https://robertsspaceindustries.com/aurora"),
		Media: ds.FleetyardsMedia{
			StoreImage: &ds.ImageView{Source: "https://img.test/store.jpg"},
			AngledView: &ds.ImageView{
				Source: "https://img.test/angled.jpg",
				Medium: "https://img.test/angled_m.jpg",
			},
		},
		UpdatedAt: "2026-08-01T00:00:00Z",
	}
}

func TestTransformMapsAllFields(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	doc := Transform(sampleModel(), 7, now)

	assert.Equal(t, "fy-123", doc.FleetyardsID)
	assert.Equal(t, "aurora-mr", doc.Slug)
	assert.Equal(t, "Aurora MR", doc.Name)
	require.NotNil(t, doc.ScIdentifier)
	assert.Equal(t, "RSI_AURORA_MR", *doc.ScIdentifier)

	// Long-form manufacturer name is dropped.
	assert.Equal(t, ds.Manufacturer{Name: "RSI", Code: "RSI", Slug: "roberts-space-industries"}, doc.Manufacturer)

	assert.Equal(t, "ship", doc.Classification)
	assert.Equal(t, "flight-ready", doc.ProductionStatus)
	assert.Equal(t, ds.Crew{Min: 1, Max: 1}, doc.Crew)
	assert.Equal(t, 6.0, doc.Cargo)
	require.NotNil(t, doc.ScmSpeed)
	assert.Equal(t, 190.0, *doc.ScmSpeed)
	require.NotNil(t, doc.PledgePrice)
	assert.Equal(t, 25.0, *doc.PledgePrice)
	assert.Nil(t, doc.Price)

	require.NotNil(t, doc.Images.AngledSource)
	assert.Equal(t, "https://img.test/angled.jpg", *doc.Images.AngledSource)
	require.NotNil(t, doc.Images.AngledMedium)
	assert.Equal(t, "https://img.test/angled_m.jpg", *doc.Images.AngledMedium)
	require.NotNil(t, doc.Images.Store)
	assert.Nil(t, doc.Images.SideSource)
	assert.Nil(t, doc.Images.Fleetchart)

	assert.Equal(t, int64(7), doc.SyncVersion)
	assert.Equal(t, now, doc.SyncedAt)
	assert.Equal(t, "2026-08-01T00:00:00Z", doc.FleetyardsUpdatedAt)
	assert.False(t, doc.Stale)
	assert.True(t, doc.CreatedAt.IsZero(), "store assigns CreatedAt")
}

func TestTransformIsDeterministic(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	m := sampleModel()

	first := Transform(m, 3, now)
	second := Transform(m, 3, now)

	assert.Equal(t, first, second)
}

func TestTransformDefaultsForSparseRecord(t *testing.T) {
	m := &ds.FleetyardsModel{ID: "fy-min", Slug: "min", Name: "Minimal"}
	doc := Transform(m, 1, time.Now())

	assert.Equal(t, "", doc.Classification)
	assert.Equal(t, "", doc.Size)
	assert.Equal(t, "", doc.ProductionStatus)
	assert.Equal(t, ds.Crew{}, doc.Crew)
	assert.Equal(t, 0.0, doc.Cargo)
	assert.Equal(t, 0.0, doc.Mass)
	assert.Nil(t, doc.ScmSpeed)
	assert.Nil(t, doc.PledgePrice)
	assert.Nil(t, doc.Price)
	assert.Nil(t, doc.Description)
	assert.Nil(t, doc.StoreURL)
	assert.Nil(t, doc.ScIdentifier)
	assert.Equal(t, ds.ShipImages{}, doc.Images)
	assert.Equal(t, ds.Manufacturer{}, doc.Manufacturer)
}

func TestTransformClampsNegativeNumbers(t *testing.T) {
	m := sampleModel()
	m.Cargo = numPtr(-5)
	m.ScmSpeed = numPtr(-10)
	m.Crew.Min = numPtr(-1)

	doc := Transform(m, 1, time.Now())

	assert.Equal(t, 0.0, doc.Cargo)
	assert.Nil(t, doc.ScmSpeed)
	assert.Equal(t, 0, doc.Crew.Min)
}

func TestTransformNormalizesEmptyOptionalText(t *testing.T) {
	m := sampleModel()
	m.Description = strPtr("")
	m.ScIdentifier = strPtr("")

	doc := Transform(m, 1, time.Now())

	assert.Nil(t, doc.Description)
	assert.Nil(t, doc.ScIdentifier)
}

func TestExtractImageURL(t *testing.T) {
	assert.Nil(t, ExtractImageURL(nil, SizeSource))
	assert.Nil(t, ExtractImageURL(&ds.ImageView{}, SizeSource))
	assert.Nil(t, ExtractImageURL(&ds.ImageView{Source: ""}, SizeSource))
	assert.Nil(t, ExtractImageURL(&ds.ImageView{Source: "x.png"}, "huge"))

	url := ExtractImageURL(&ds.ImageView{Source: "x.png"}, SizeSource)
	require.NotNil(t, url)
	assert.Equal(t, "x.png", *url)

	medium := ExtractImageURL(&ds.ImageView{Source: "x.png", Medium: "m.png"}, SizeMedium)
	require.NotNil(t, medium)
	assert.Equal(t, "m.png", *medium)
}
