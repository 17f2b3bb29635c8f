package krs

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

// ErrCompanyNotFound means the registry has no record for the business id.
var ErrCompanyNotFound = errors.New("company registry record not found")

// CompanyData is the registry snapshot of a company.
type CompanyData struct {
	Name                *string
	OfficialName        *string
	BusinessID          string
	RegistrationCountry *string
}

type Config struct {
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

func NewClient(cfg Config, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		logger:     logger,
	}
}

type companyResponse struct {
	Name                *string `json:"name"`
	OfficialName        *string `json:"officialName"`
	RegistrationCountry *string `json:"registrationCountry"`
}

// FetchCompany performs a single lookup attempt keyed by national business id.
func (c *Client) FetchCompany(ctx context.Context, businessID string) (*CompanyData, error) {
	endpoint := fmt.Sprintf("%s/companies/%s", c.baseURL, url.PathEscape(businessID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrCompanyNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("company registry responded with status %d", resp.StatusCode)
	}

	var body companyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	c.logger.Debug("fetched company registry record", zap.String("business_id", businessID))

	return &CompanyData{
		Name:                body.Name,
		OfficialName:        body.OfficialName,
		BusinessID:          businessID,
		RegistrationCountry: body.RegistrationCountry,
	}, nil
}
