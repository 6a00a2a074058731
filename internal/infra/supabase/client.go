package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client talks to a Supabase PostgREST endpoint with the service role
// key. Callers treat failures as opaque: an error is present or absent,
// its internals are never inspected.
type Client struct {
	BaseURL    string
	ServiceKey string
	HTTP       *http.Client
}

func New(baseURL, serviceKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{BaseURL: baseURL, ServiceKey: serviceKey, HTTP: httpClient}
}

// SelectOpts narrows and orders a Select. Filters are PostgREST operator
// expressions keyed by column, e.g. {"site_id": "eq.<uuid>"}.
type SelectOpts struct {
	Columns string
	Filters map[string]string
	Order   string
	Limit   int
}

// Select reads rows from a table into out (a pointer to a slice).
func (c *Client) Select(ctx context.Context, table string, opts SelectOpts, out interface{}) error {
	values := url.Values{}
	if opts.Columns != "" {
		values.Set("select", opts.Columns)
	}
	for col, expr := range opts.Filters {
		values.Set(col, expr)
	}
	if opts.Order != "" {
		values.Set("order", opts.Order)
	}
	if opts.Limit > 0 {
		values.Set("limit", strconv.Itoa(opts.Limit))
	}

	urlStr := strings.TrimRight(c.BaseURL, "/") + "/rest/v1/" + table + "?" + values.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return err
	}
	c.setAuth(req)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("supabase status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Insert writes one record to a table.
func (c *Client) Insert(ctx context.Context, table string, record interface{}) error {
	body, err := json.Marshal([]interface{}{record})
	if err != nil {
		return err
	}

	urlStr := strings.TrimRight(c.BaseURL, "/") + "/rest/v1/" + table
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, urlStr, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	c.setAuth(req)
	req.Header.Set("Prefer", "return=minimal")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("supabase status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	return nil
}

// Update patches the record with the given id.
func (c *Client) Update(ctx context.Context, table, id string, record interface{}) error {
	body, err := json.Marshal(record)
	if err != nil {
		return err
	}

	values := url.Values{}
	values.Set("id", "eq."+id)
	urlStr := strings.TrimRight(c.BaseURL, "/") + "/rest/v1/" + table + "?" + values.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, urlStr, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	c.setAuth(req)
	req.Header.Set("Prefer", "return=minimal")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("supabase status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	return nil
}

func (c *Client) setAuth(req *http.Request) {
	req.Header.Set("apikey", c.ServiceKey)
	req.Header.Set("Authorization", "Bearer "+c.ServiceKey)
}
