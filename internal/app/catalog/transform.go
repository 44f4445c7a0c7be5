package catalog

import (
	"time"

	"github.com/DasBluEyedDevil/AltAydoSite-sub004/internal/app/ds"
)

// Transform maps one validated source record into the canonical stored shape.
// Every field is mapped explicitly so unexpected source fields can never leak
// into storage. The function is pure and total: for any record that passed
// validation it never fails, and every output field has a defined default
// (0 for physical numbers, nil for optional values, "" for categories).
//
// CreatedAt is left zero; the store assigns it on first insert and preserves
// it on every later upsert.
func Transform(m *ds.FleetyardsModel, syncVersion int64, syncedAt time.Time) ds.ShipDocument {
	doc := ds.ShipDocument{
		FleetyardsID: m.ID,
		Slug:         m.Slug,
		Name:         m.Name,
		ScIdentifier: cleanString(m.ScIdentifier),

		Classification:      stringOrEmpty(m.Classification),
		ClassificationLabel: stringOrEmpty(m.ClassificationLabel),
		Focus:               stringOrEmpty(m.Focus),
		Size:                stringOrEmpty(m.Size),
		ProductionStatus:    stringOrEmpty(m.ProductionStatus),

		Cargo:  numberOrZero(m.Cargo),
		Length: numberOrZero(m.Length),
		Beam:   numberOrZero(m.Beam),
		Height: numberOrZero(m.Height),
		Mass:   numberOrZero(m.Mass),

		ScmSpeed:             nonNegative(m.ScmSpeed),
		HydrogenFuelTankSize: nonNegative(m.HydrogenFuelTankSize),
		QuantumFuelTankSize:  nonNegative(m.QuantumFuelTankSize),

		PledgePrice: nonNegative(m.PledgePrice),
		Price:       nonNegative(m.Price),

		Description: cleanString(m.Description),
		StoreURL:    cleanString(m.StoreURL),

		SyncedAt:            syncedAt,
		SyncVersion:         syncVersion,
		FleetyardsUpdatedAt: m.UpdatedAt,
		Stale:               false,
		UpdatedAt:           syncedAt,
	}

	// The long-form manufacturer name is intentionally dropped.
	if m.Manufacturer != nil {
		doc.Manufacturer = ds.Manufacturer{
			Name: m.Manufacturer.Name,
			Code: m.Manufacturer.Code,
			Slug: m.Manufacturer.Slug,
		}
	}

	if m.Crew != nil {
		doc.Crew = ds.Crew{
			Min: crewSize(m.Crew.Min),
			Max: crewSize(m.Crew.Max),
		}
	}

	doc.Images = ds.ShipImages{
		Store:        ExtractImageURL(m.Media.StoreImage, SizeSource),
		AngledSource: ExtractImageURL(m.Media.AngledView, SizeSource),
		AngledMedium: ExtractImageURL(m.Media.AngledView, SizeMedium),
		SideSource:   ExtractImageURL(m.Media.SideView, SizeSource),
		SideMedium:   ExtractImageURL(m.Media.SideView, SizeMedium),
		TopSource:    ExtractImageURL(m.Media.TopView, SizeSource),
		TopMedium:    ExtractImageURL(m.Media.TopView, SizeMedium),
		FrontSource:  ExtractImageURL(m.Media.FrontView, SizeSource),
		FrontMedium:  ExtractImageURL(m.Media.FrontView, SizeMedium),
		Fleetchart:   ExtractImageURL(m.Media.FleetchartImage, SizeSource),
	}

	return doc
}

// Image resolutions published by the catalog source.
const (
	SizeSource = "source"
	SizeMedium = "medium"
)

// ExtractImageURL returns the URL at the requested size, or nil when the view
// is absent, the size is unknown, or the URL is empty. Empty strings are
// normalized to nil and never stored.
func ExtractImageURL(view *ds.ImageView, size string) *string {
	if view == nil {
		return nil
	}
	var url string
	switch size {
	case SizeSource:
		url = view.Source
	case SizeMedium:
		url = view.Medium
	default:
		return nil
	}
	if url == "" {
		return nil
	}
	return &url
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// cleanString keeps optional text as nil rather than "".
func cleanString(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}

func numberOrZero(n *float64) float64 {
	if n == nil || *n < 0 {
		return 0
	}
	return *n
}

// nonNegative preserves the null/zero distinction: nil stays nil (not
// applicable), negative source values are treated as absent.
func nonNegative(n *float64) *float64 {
	if n == nil || *n < 0 {
		return nil
	}
	v := *n
	return &v
}

func crewSize(n *float64) int {
	if n == nil || *n < 0 {
		return 0
	}
	return int(*n)
}
