package photos

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Client defines the Photo Service operations used by the stack features.
type Client interface {
	// ListStacks returns every stack with its member assets.
	ListStacks(ctx context.Context) ([]Stack, error)
	// ListAlbums returns every album without its assets.
	ListAlbums(ctx context.Context) ([]AlbumSummary, error)
	// GetAlbumAssets returns the assets of one album.
	GetAlbumAssets(ctx context.Context, albumID string) ([]Asset, error)
	// SearchAllAssets returns every asset, paging until a short page is seen.
	SearchAllAssets(ctx context.Context) ([]Asset, error)
	// CreateStack creates a stack from the given assets.
	CreateStack(ctx context.Context, assetIDs []string) (*Stack, error)
	// UpdateStackPrimary sets the primary asset of a stack.
	UpdateStackPrimary(ctx context.Context, stackID, assetID string) (*Stack, error)
	// DeleteStack deletes a stack. Its assets are kept.
	DeleteStack(ctx context.Context, stackID string) error
	// RemoveAssetsFromAlbum removes assets from an album. The assets are kept.
	RemoveAssetsFromAlbum(ctx context.Context, albumID string, assetIDs []string) error
	// UpdateAlbumOrder sets the sort order of an album (asc or desc).
	UpdateAlbumOrder(ctx context.Context, albumID, order string) error
}

// NewClient creates a Photo Service client based on the configuration.
// It fails with ErrMissingAPIKey before any network activity if no key is set.
func NewClient(cfg Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid photo service base url %q: %w", cfg.BaseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid photo service base url %q: scheme and host are required", cfg.BaseURL)
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	var transport http.RoundTripper = &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}
	if cfg.RequestsPerSecond > 0 {
		transport = &rateLimitedTransport{
			base:    transport,
			limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1),
		}
	}

	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 1000
	}

	return &httpClient{
		baseURL:  base,
		apiKey:   cfg.APIKey,
		pageSize: pageSize,
		http:     &http.Client{Transport: transport},
	}, nil
}

type httpClient struct {
	baseURL  *url.URL
	apiKey   string
	pageSize int
	http     *http.Client
}

// CloseIdleConnections releases pooled connections.
func (c *httpClient) CloseIdleConnections() {
	c.http.CloseIdleConnections()
}

func (c *httpClient) ListStacks(ctx context.Context) ([]Stack, error) {
	var stacks []Stack
	if err := c.do(ctx, http.MethodGet, "/api/stacks", nil, &stacks); err != nil {
		return nil, fmt.Errorf("failed to list stacks: %w", err)
	}
	return stacks, nil
}

func (c *httpClient) ListAlbums(ctx context.Context) ([]AlbumSummary, error) {
	var albums []AlbumSummary
	if err := c.do(ctx, http.MethodGet, "/api/albums", nil, &albums); err != nil {
		return nil, fmt.Errorf("failed to list albums: %w", err)
	}
	return albums, nil
}

func (c *httpClient) GetAlbumAssets(ctx context.Context, albumID string) ([]Asset, error) {
	var album Album
	if err := c.do(ctx, http.MethodGet, "/api/albums/"+url.PathEscape(albumID), nil, &album); err != nil {
		return nil, fmt.Errorf("failed to get album %s: %w", albumID, err)
	}
	return album.Assets, nil
}

type searchRequest struct {
	Page int `json:"page"`
	Size int `json:"size"`
}

type searchResponse struct {
	Assets struct {
		Items []Asset `json:"items"`
	} `json:"assets"`
}

func (c *httpClient) SearchAllAssets(ctx context.Context) ([]Asset, error) {
	var all []Asset
	for page := 1; ; page++ {
		var resp searchResponse
		body := searchRequest{Page: page, Size: c.pageSize}
		if err := c.do(ctx, http.MethodPost, "/api/search/metadata", body, &resp); err != nil {
			return nil, fmt.Errorf("failed to search assets (page %d): %w", page, err)
		}
		all = append(all, resp.Assets.Items...)
		if len(resp.Assets.Items) < c.pageSize {
			return all, nil
		}
	}
}

func (c *httpClient) CreateStack(ctx context.Context, assetIDs []string) (*Stack, error) {
	var stack Stack
	body := map[string][]string{"assetIds": assetIDs}
	if err := c.do(ctx, http.MethodPost, "/api/stacks", body, &stack); err != nil {
		return nil, fmt.Errorf("failed to create stack: %w", err)
	}
	return &stack, nil
}

func (c *httpClient) UpdateStackPrimary(ctx context.Context, stackID, assetID string) (*Stack, error) {
	var stack Stack
	body := map[string]string{"primaryAssetId": assetID}
	if err := c.do(ctx, http.MethodPut, "/api/stacks/"+url.PathEscape(stackID), body, &stack); err != nil {
		return nil, fmt.Errorf("failed to update primary of stack %s: %w", stackID, err)
	}
	return &stack, nil
}

func (c *httpClient) DeleteStack(ctx context.Context, stackID string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/stacks/"+url.PathEscape(stackID), nil, nil); err != nil {
		return fmt.Errorf("failed to delete stack %s: %w", stackID, err)
	}
	return nil
}

func (c *httpClient) RemoveAssetsFromAlbum(ctx context.Context, albumID string, assetIDs []string) error {
	body := map[string][]string{"ids": assetIDs}
	if err := c.do(ctx, http.MethodDelete, "/api/albums/"+url.PathEscape(albumID)+"/assets", body, nil); err != nil {
		return fmt.Errorf("failed to remove assets from album %s: %w", albumID, err)
	}
	return nil
}

func (c *httpClient) UpdateAlbumOrder(ctx context.Context, albumID, order string) error {
	body := map[string]string{"order": order}
	if err := c.do(ctx, http.MethodPatch, "/api/albums/"+url.PathEscape(albumID), body, nil); err != nil {
		return fmt.Errorf("failed to order album %s: %w", albumID, err)
	}
	return nil
}

// do sends one JSON request and decodes the response into out when out is
// not nil. Non-2xx responses become *APIError.
func (c *httpClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(excerpt)),
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}
	return nil
}
