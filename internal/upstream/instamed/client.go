// Package instamed queries the Instamed commercial practitioner
// directory, a Hydra/JSON-LD API with flat member documents.
package instamed

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/NicolasChusseau/MedicaZelda-API/internal/platform/fetch"
)

// DefaultBaseURL is the public Instamed data API.
const DefaultBaseURL = "https://data.instamed.fr/api"

// Client fetches practitioner documents from the directory. The API is
// unauthenticated but expects the JSON-LD accept header.
type Client struct {
	fetch   *fetch.Client
	baseURL string
}

func NewClient(fc *fetch.Client, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{fetch: fc, baseURL: strings.TrimRight(baseURL, "/")}
}

func (c *Client) headers() map[string]string {
	return map[string]string{"accept": "application/ld+json"}
}

// Practitioner fetches the raw member document for one RPPS number.
// Unknown numbers come back as a JSON error document, not a transport
// failure.
func (c *Client) Practitioner(ctx context.Context, rpps string) (json.RawMessage, error) {
	return c.fetch.GetJSON(ctx, c.baseURL+"/rpps/"+url.PathEscape(rpps), c.headers())
}

// Search fetches the raw paged result set for a name query. Either name
// part may be empty; the caller guarantees at least one is not.
func (c *Client) Search(ctx context.Context, firstname, lastname string) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("firstName", firstname)
	q.Set("lastName", lastname)
	return c.fetch.GetJSON(ctx, c.baseURL+"/rpps?"+q.Encode(), c.headers())
}
