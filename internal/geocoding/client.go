// Package geocoding resolves free-text locations to IANA timezone names
// using the Open-Meteo geocoding API.
package geocoding

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/voice-reminder-bot/internal/domain"
	"github.com/go-resty/resty/v2"
)

const defaultTimeout = 10 * time.Second

type Client struct {
	http *resty.Client
}

func New(baseURL string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(defaultTimeout),
	}
}

type searchResponse struct {
	Results []struct {
		Name     string `json:"name"`
		Country  string `json:"country"`
		Timezone string `json:"timezone"`
	} `json:"results"`
}

// LookupTimezone returns the IANA timezone of the best match for location,
// or domain.ErrLocationNotFound when the API has no result for it.
func (c *Client) LookupTimezone(ctx context.Context, location string) (string, error) {
	var result searchResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"name":  location,
			"count": "1",
		}).
		SetResult(&result).
		Get("/v1/search")
	if err != nil {
		return "", fmt.Errorf("geocoding request failed: %w", err)
	}

	if resp.IsError() {
		return "", fmt.Errorf("geocoding request failed: %s", resp.Status())
	}

	if len(result.Results) == 0 || result.Results[0].Timezone == "" {
		return "", fmt.Errorf("%w: %q", domain.ErrLocationNotFound, location)
	}

	return result.Results[0].Timezone, nil
}
