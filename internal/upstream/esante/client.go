// Package esante queries the eSanté government FHIR gateway, the
// authoritative registry of RPPS-registered practitioners.
package esante

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/NicolasChusseau/MedicaZelda-API/internal/platform/fetch"
)

// DefaultBaseURL is the public eSanté FHIR gateway.
const DefaultBaseURL = "https://gateway.api.esante.gouv.fr/fhir/v1"

// Client fetches Practitioner bundles from the gateway. Every request
// carries the ESANTE-API-KEY header.
type Client struct {
	fetch   *fetch.Client
	baseURL string
	apiKey  string
}

func NewClient(fc *fetch.Client, baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		fetch:   fc,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

// Practitioner fetches the raw bundle for one RPPS number. The gateway
// answers 200 with an empty bundle for unknown numbers, so any error here
// is transport-level.
func (c *Client) Practitioner(ctx context.Context, rpps string) (json.RawMessage, error) {
	u := c.baseURL + "/Practitioner?identifier=" + url.QueryEscape(rpps)
	return c.fetch.GetJSON(ctx, u, map[string]string{
		"ESANTE-API-KEY": c.apiKey,
	})
}
