package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/DasBluEyedDevil/AltAydoSite-sub004/internal/app/ds"
)

// ShipLister enumerates the catalog for jobs that walk every record.
type ShipLister interface {
	AllShips() ([]ds.ShipDocument, error)
}

// WarmResult is the observability payload of one warm-up job.
type WarmResult struct {
	Success      bool      `json:"success"`
	TotalShips   int       `json:"totalShips"`
	UniqueImages int       `json:"uniqueImages"`
	Warmed       int64     `json:"warmed"`
	Failed       int64     `json:"failed"`
	Widths       []int     `json:"widths"`
	Timestamp    time.Time `json:"timestamp"`
}

// Warmer forces the image-optimization layer to pre-populate its cache for
// every record's primary image, so the first real request after a sync is
// never a cold one.
type Warmer struct {
	lister      ShipLister
	baseURL     string
	widths      []int
	concurrency int
	client      *http.Client
}

func NewWarmer(lister ShipLister, baseURL string, widths []int, concurrency int) *Warmer {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Warmer{
		lister:      lister,
		baseURL:     baseURL,
		widths:      widths,
		concurrency: concurrency,
		client:      &http.Client{Timeout: 30 * time.Second},
	}
}

// Warm requests every candidate image at each configured width through the
// internal optimize endpoint, at most `concurrency` requests in flight.
// Individual failures are tallied, never fatal.
func (w *Warmer) Warm(ctx context.Context) (*WarmResult, error) {
	ships, err := w.lister.AllShips()
	if err != nil {
		return nil, fmt.Errorf("list ships: %w", err)
	}

	var candidates []string
	for _, ship := range ships {
		img := PrimaryImage(ship.Images)
		if img == "" {
			continue
		}
		if _, err := url.ParseRequestURI(img); err != nil {
			logrus.Warnf("skipping invalid image url for %s: %v", ship.Slug, err)
			continue
		}
		candidates = append(candidates, img)
	}

	var warmed, failed atomic.Int64

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(w.concurrency)
	for _, img := range candidates {
		for _, width := range w.widths {
			img, width := img, width
			group.Go(func() error {
				if w.warmOne(groupCtx, img, width) {
					warmed.Add(1)
				} else {
					failed.Add(1)
				}
				// Failures only count; returning an error would cancel the
				// remaining requests.
				return nil
			})
		}
	}
	group.Wait()

	return &WarmResult{
		Success:      true,
		TotalShips:   len(ships),
		UniqueImages: len(candidates),
		Warmed:       warmed.Load(),
		Failed:       failed.Load(),
		Widths:       w.widths,
		Timestamp:    time.Now().UTC(),
	}, nil
}

func (w *Warmer) warmOne(ctx context.Context, img string, width int) bool {
	target := fmt.Sprintf("%s/api/images/optimize?url=%s&width=%d",
		w.baseURL, url.QueryEscape(img), width)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return false
	}
	resp, err := w.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	// Drain so the optimizer actually produced and cached the full response.
	io.Copy(io.Discard, resp.Body)
	return resp.StatusCode < 400
}
