package catalog

import (
	"context"
	"strings"

	"github.com/DasBluEyedDevil/AltAydoSite-sub004/internal/app/ds"
)

// BatchChunkSize matches the store-side query limit per batch request.
const BatchChunkSize = 50

// BatchStore is the slice of the repository the batch resolver needs.
type BatchStore interface {
	GetShipsByFleetyardsIDs(ids []string) ([]ds.ShipDocument, error)
}

// ResolveShips resolves an arbitrary id list to documents, keyed by
// fleetyards id. Input is trimmed and deduplicated; an empty set returns an
// empty map without touching the store. Chunks are resolved one at a time on
// purpose, to bound load on the store. Ids with no matching document are
// absent from the result.
//
// A store error discards any partially merged chunks and is surfaced whole,
// so missing records are never silently reported as "not found". Context
// cancellation returns ctx.Err(); callers treat context.Canceled as a silent
// no-op and leave their previous state untouched.
func ResolveShips(ctx context.Context, store BatchStore, ids []string) (map[string]ds.ShipDocument, error) {
	unique := dedupeIDs(ids)
	result := make(map[string]ds.ShipDocument, len(unique))
	if len(unique) == 0 {
		return result, nil
	}

	for start := 0; start < len(unique); start += BatchChunkSize {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		end := start + BatchChunkSize
		if end > len(unique) {
			end = len(unique)
		}
		ships, err := store.GetShipsByFleetyardsIDs(unique[start:end])
		if err != nil {
			return nil, err
		}
		for _, ship := range ships {
			result[ship.FleetyardsID] = ship
		}
	}

	return result, nil
}

// dedupeIDs drops empty and whitespace-only entries and keeps the first
// occurrence of each id in input order.
func dedupeIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}
