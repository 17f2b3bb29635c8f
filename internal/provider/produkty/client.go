package produkty

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ErrProductNotFound means the provider has no record for the code.
var ErrProductNotFound = errors.New("product data not found")

// ProductData is what the external product-data API knows about a barcode.
type ProductData struct {
	Name       *string
	BusinessID *string
}

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *zap.Logger
}

func NewClient(cfg Config, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		logger:     logger,
	}
}

type productResponse struct {
	Name    *string `json:"name"`
	Company *struct {
		Nip *string `json:"nip"`
	} `json:"company"`
}

// FetchProduct performs a single lookup attempt; retry policy, if any,
// belongs to the caller's caller.
func (c *Client) FetchProduct(ctx context.Context, code string) (*ProductData, error) {
	endpoint := fmt.Sprintf("%s/products/%s", c.baseURL, url.PathEscape(code))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrProductNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("product data provider responded with status %d", resp.StatusCode)
	}

	var body productResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	data := &ProductData{Name: body.Name}
	if body.Company != nil {
		data.BusinessID = body.Company.Nip
	}

	c.logger.Debug("fetched product data", zap.String("code", code))

	return data, nil
}
