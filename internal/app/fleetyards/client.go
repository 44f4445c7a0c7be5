// Package fleetyards talks to the external FleetYards catalog API, the
// source of truth for ship specifications.
package fleetyards

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/DasBluEyedDevil/AltAydoSite-sub004/internal/app/ds"
)

const defaultPerPage = 200

type Client struct {
	baseURL string
	perPage int
	http    *http.Client
}

func NewClient(baseURL string, perPage int) *Client {
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	return &Client{
		baseURL: baseURL,
		perPage: perPage,
		http: &http.Client{
			Timeout: 60 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
			},
		},
	}
}

// FetchModels walks the paginated models endpoint until a short page and
// returns the full payload. Any transport or status error aborts the whole
// fetch; the ingestion run treats that as a no-op and retries on its next
// trigger.
func (c *Client) FetchModels(ctx context.Context) ([]ds.FleetyardsModel, error) {
	var all []ds.FleetyardsModel
	for page := 1; ; page++ {
		batch, err := c.fetchPage(ctx, page)
		if err != nil {
			return nil, err
		}
		all = append(all, batch...)
		if len(batch) < c.perPage {
			break
		}
	}
	logrus.Infof("fetched %d models from fleetyards", len(all))
	return all, nil
}

func (c *Client) fetchPage(ctx context.Context, page int) ([]ds.FleetyardsModel, error) {
	url := fmt.Sprintf("%s/v1/models?page=%d&perPage=%d", c.baseURL, page, c.perPage)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch models page %d: %w", page, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch models page %d: unexpected status %d", page, resp.StatusCode)
	}

	var batch []ds.FleetyardsModel
	if err := json.NewDecoder(resp.Body).Decode(&batch); err != nil {
		return nil, fmt.Errorf("decode models page %d: %w", page, err)
	}
	return batch, nil
}
