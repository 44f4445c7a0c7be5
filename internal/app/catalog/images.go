package catalog

import "github.com/DasBluEyedDevil/AltAydoSite-sub004/internal/app/ds"

// View names one of the image angles a ship document may carry.
type View string

const (
	ViewAngled     View = "angled"
	ViewSide       View = "side"
	ViewTop        View = "top"
	ViewFront      View = "front"
	ViewStore      View = "store"
	ViewFleetchart View = "fleetchart"
)

// PlaceholderImage is the client-served fallback when no usable URL exists.
const PlaceholderImage = "/img/ship-placeholder.png"

// ResolveImage returns the URL for the requested view, preferring the full
// resolution over medium within that view. It never substitutes a different
// view; the empty string means the view is absent.
func ResolveImage(images ds.ShipImages, view View) string {
	switch view {
	case ViewAngled:
		return firstURL(images.AngledSource, images.AngledMedium)
	case ViewSide:
		return firstURL(images.SideSource, images.SideMedium)
	case ViewTop:
		return firstURL(images.TopSource, images.TopMedium)
	case ViewFront:
		return firstURL(images.FrontSource, images.FrontMedium)
	case ViewStore:
		return firstURL(images.Store)
	case ViewFleetchart:
		return firstURL(images.Fleetchart)
	}
	return ""
}

// ResolveImageOrPlaceholder is for callers that need a guaranteed image: the
// requested view, then the store view, then the placeholder.
func ResolveImageOrPlaceholder(images ds.ShipImages, view View) string {
	if url := ResolveImage(images, view); url != "" {
		return url
	}
	if url := ResolveImage(images, ViewStore); url != "" {
		return url
	}
	return PlaceholderImage
}

// PrimaryImage is the URL the cache warmer targets: the angled view with the
// store image as fallback. Empty when the document has neither.
func PrimaryImage(images ds.ShipImages) string {
	if url := ResolveImage(images, ViewAngled); url != "" {
		return url
	}
	return ResolveImage(images, ViewStore)
}

func firstURL(urls ...*string) string {
	for _, u := range urls {
		if u != nil && *u != "" {
			return *u
		}
	}
	return ""
}
