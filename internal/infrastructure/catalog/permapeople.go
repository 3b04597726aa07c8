package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"plantapp/pkg/helpers"
)

// Plant is the catalog metadata the rest of the app cares about, flattened
// from the Permapeople response.
type Plant struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	ImageURL         string `json:"image_url"`
	WaterRequirement string `json:"water_requirement"`
	LightRequirement string `json:"light_requirement"`
}

// Permapeople returns most plant attributes as key/value pairs.
type plantResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Images struct {
		Thumb string `json:"thumb"`
	} `json:"images"`
	Data []struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	} `json:"data"`
}

func (pr *plantResponse) toPlant() *Plant {
	p := &Plant{ID: pr.ID, Name: pr.Name, ImageURL: pr.Images.Thumb}
	for _, kv := range pr.Data {
		switch kv.Key {
		case "Water requirement":
			p.WaterRequirement = kv.Value
		case "Light requirement":
			p.LightRequirement = kv.Value
		}
	}
	return p
}

// Client talks to the Permapeople API. Per-id lookups are cached in redis so
// repeated adds of popular plants do not hit the upstream.
type Client struct {
	baseURL    string
	keyID      string
	keySecret  string
	httpClient *http.Client
	rdb        *redis.Client
	cacheTTL   time.Duration
	logger     *logrus.Logger
}

func NewClient(baseURL, keyID, keySecret string, rdb *redis.Client, cacheTTL time.Duration, logger *logrus.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		keyID:      keyID,
		keySecret:  keySecret,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		rdb:        rdb,
		cacheTTL:   cacheTTL,
		logger:     logger,
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-permapeople-key-id", c.keyID)
	req.Header.Set("x-permapeople-key-secret", c.keySecret)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func cacheKey(id int64) string {
	return fmt.Sprintf("catalog:plant:%d", id)
}

// GetPlantByID resolves one external plant reference. Returns (nil, nil) when
// the catalog has no plant with that id.
func (c *Client) GetPlantByID(ctx context.Context, id int64) (*Plant, error) {
	if c.rdb != nil {
		var cached Plant
		if ok, err := helpers.RedisGetJSON(ctx, c.rdb, cacheKey(id), &cached); err == nil && ok {
			return &cached, nil
		}
	}

	req, err := c.newRequest(ctx, http.MethodGet, fmt.Sprintf("/plants/%d", id), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("permapeople get plant %d: %w", id, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("permapeople get plant %d: status %d: %s", id, resp.StatusCode, string(b))
	}

	var pr plantResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return nil, fmt.Errorf("permapeople decode plant %d: %w", id, err)
	}
	plant := pr.toPlant()

	if c.rdb != nil {
		if err := helpers.RedisSetJSON(ctx, c.rdb, cacheKey(id), plant, c.cacheTTL); err != nil && c.logger != nil {
			c.logger.WithError(err).Warn("catalog cache write failed")
		}
	}
	return plant, nil
}

// Search proxies a free-text search to the catalog and returns the raw JSON
// payload for the client to render.
func (c *Client) Search(ctx context.Context, query string) (json.RawMessage, error) {
	payload, err := json.Marshal(map[string]string{"q": query})
	if err != nil {
		return nil, err
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/search", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("permapeople search: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("permapeople search: status %d: %s", resp.StatusCode, string(body[:min(len(body), 512)]))
	}
	return body, nil
}
