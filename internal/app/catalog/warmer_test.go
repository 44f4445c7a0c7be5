package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DasBluEyedDevil/AltAydoSite-sub004/internal/app/ds"
)

type fakeLister struct {
	ships []ds.ShipDocument
}

func (l *fakeLister) AllShips() ([]ds.ShipDocument, error) {
	return l.ships, nil
}

func TestWarmRequestsEveryImageAtEveryWidth(t *testing.T) {
	var mu sync.Mutex
	var seen []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen = append(seen, r.URL.RawQuery)
		mu.Unlock()
		w.Write([]byte("warm"))
	}))
	defer server.Close()

	lister := &fakeLister{ships: []ds.ShipDocument{
		{Slug: "a", Images: ds.ShipImages{AngledSource: strPtr("https://img.test/a.jpg")}},
		{Slug: "b", Images: ds.ShipImages{Store: strPtr("https://img.test/b.jpg")}},
		{Slug: "no-image"},
		{Slug: "bad-url", Images: ds.ShipImages{Store: strPtr("not a url")}},
	}}

	warmer := NewWarmer(lister, server.URL, []int{640, 256}, 5)
	result, err := warmer.Warm(context.Background())
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 4, result.TotalShips)
	assert.Equal(t, 2, result.UniqueImages)
	assert.EqualValues(t, 4, result.Warmed, "2 images x 2 widths")
	assert.EqualValues(t, 0, result.Failed)
	assert.Equal(t, []int{640, 256}, result.Widths)
	assert.False(t, result.Timestamp.IsZero())

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, seen, 4)
	widths := map[string]int{}
	for _, q := range seen {
		if strings.Contains(q, "width=640") {
			widths["640"]++
		}
		if strings.Contains(q, "width=256") {
			widths["256"]++
		}
	}
	assert.Equal(t, 2, widths["640"])
	assert.Equal(t, 2, widths["256"])
}

func TestWarmCountsFailuresWithoutAborting(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.RawQuery, "broken") {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte("warm"))
	}))
	defer server.Close()

	lister := &fakeLister{ships: []ds.ShipDocument{
		{Slug: "good", Images: ds.ShipImages{Store: strPtr("https://img.test/good.jpg")}},
		{Slug: "broken", Images: ds.ShipImages{Store: strPtr("https://img.test/broken.jpg")}},
	}}

	warmer := NewWarmer(lister, server.URL, []int{640}, 5)
	result, err := warmer.Warm(context.Background())
	require.NoError(t, err)

	assert.EqualValues(t, 1, result.Warmed)
	assert.EqualValues(t, 1, result.Failed)
}

func TestWarmBoundsConcurrency(t *testing.T) {
	var mu sync.Mutex
	inFlight, peak := 0, 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		inFlight++
		if inFlight > peak {
			peak = inFlight
		}
		mu.Unlock()

		time.Sleep(20 * time.Millisecond)

		mu.Lock()
		inFlight--
		mu.Unlock()
		w.Write([]byte("warm"))
	}))
	defer server.Close()

	var ships []ds.ShipDocument
	for i := 0; i < 20; i++ {
		url := "https://img.test/" + strings.Repeat("x", i+1) + ".jpg"
		ships = append(ships, ds.ShipDocument{Images: ds.ShipImages{Store: strPtr(url)}})
	}

	warmer := NewWarmer(&fakeLister{ships: ships}, server.URL, []int{640}, 3)
	result, err := warmer.Warm(context.Background())
	require.NoError(t, err)

	assert.EqualValues(t, 20, result.Warmed)
	mu.Lock()
	defer mu.Unlock()
	assert.LessOrEqual(t, peak, 3, "no more than the configured window in flight")
}
