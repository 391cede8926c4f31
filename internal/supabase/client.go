// Package supabase is the gateway to the hosted tabular store and its
// object storage. Tables are reached through the PostgREST interface
// (/rest/v1), files through the storage interface (/storage/v1). The
// service credential is sent as both an apikey header and a bearer token.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrMissingConfig is returned by New when the backend base URL or service
// credential is absent. It is a configuration error, not a network one.
var ErrMissingConfig = errors.New("supabase: missing SUPABASE_URL or SUPABASE_SERVICE_ROLE_KEY")

// BackendError carries the upstream status and body of a non-2xx response
// so the admin surface can report the store's own message verbatim.
type BackendError struct {
	Status int
	Body   string
}

func (e *BackendError) Error() string {
	if e.Body != "" {
		return e.Body
	}
	return fmt.Sprintf("backend request failed with status %d", e.Status)
}

// Client issues requests against one backend project. It is safe for
// concurrent use.
type Client struct {
	baseURL    string
	serviceKey string
	http       *http.Client
}

// New validates the configuration and returns a ready Client. Both values
// are required; there is no anonymous-access mode.
func New(baseURL, serviceKey string) (*Client, error) {
	if baseURL == "" || serviceKey == "" {
		return nil, ErrMissingConfig
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
		http:       &http.Client{Timeout: 15 * time.Second},
	}, nil
}

// Query describes a table read: projection, single-column ordering,
// equality filters and a row limit. Zero value selects everything in the
// store's default order.
type Query struct {
	Select     string
	OrderBy    string
	Descending bool
	Filters    map[string]string
	Limit      int
}

// tableURL builds the PostgREST URL for a table read or write.
func (c *Client) tableURL(table string, q Query) string {
	params := url.Values{}
	if q.Select != "" {
		params.Set("select", q.Select)
	}
	if q.OrderBy != "" {
		dir := "asc"
		if q.Descending {
			dir = "desc"
		}
		params.Set("order", q.OrderBy+"."+dir)
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	for col, v := range q.Filters {
		params.Set(col, "eq."+v)
	}
	u := c.baseURL + "/rest/v1/" + table
	if encoded := params.Encode(); encoded != "" {
		u += "?" + encoded
	}
	return u
}

func (c *Client) newRequest(ctx context.Context, method, rawURL string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.serviceKey)
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	return req, nil
}

// do runs the request and returns the response body, converting any
// non-2xx status into a *BackendError.
func (c *Client) do(req *http.Request) ([]byte, error) {
	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("supabase: %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("supabase: read response: %w", err)
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &BackendError{Status: res.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	return body, nil
}

func (c *Client) doJSON(ctx context.Context, method, rawURL string, prefer string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("supabase: encode payload: %w", err)
		}
		body = bytes.NewReader(raw)
	}
	req, err := c.newRequest(ctx, method, rawURL, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}
	return c.do(req)
}

// FetchRows reads rows from table according to q and decodes them into T.
func FetchRows[T any](ctx context.Context, c *Client, table string, q Query) ([]T, error) {
	req, err := c.newRequest(ctx, http.MethodGet, c.tableURL(table, q), nil)
	if err != nil {
		return nil, err
	}
	body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	var rows []T
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("supabase: decode rows from %s: %w", table, err)
	}
	return rows, nil
}

// firstRow decodes a return=representation body and returns its only row.
func firstRow[T any](body []byte, table string) (T, error) {
	var rows []T
	var zero T
	if err := json.Unmarshal(body, &rows); err != nil {
		return zero, fmt.Errorf("supabase: decode row from %s: %w", table, err)
	}
	if len(rows) == 0 {
		return zero, &BackendError{Status: http.StatusNotFound, Body: "no row returned for " + table}
	}
	return rows[0], nil
}

// InsertRow inserts payload into table and returns the written row.
func InsertRow[T any](ctx context.Context, c *Client, table string, payload any) (T, error) {
	body, err := c.doJSON(ctx, http.MethodPost, c.tableURL(table, Query{Select: "*"}),
		"return=representation", payload)
	if err != nil {
		var zero T
		return zero, err
	}
	return firstRow[T](body, table)
}

// UpdateRow overwrites the editable fields of exactly one row, matched by
// id equality, and returns the written row.
func UpdateRow[T any](ctx context.Context, c *Client, table, id string, payload any) (T, error) {
	q := Query{Select: "*", Filters: map[string]string{"id": id}}
	body, err := c.doJSON(ctx, http.MethodPatch, c.tableURL(table, q),
		"return=representation", payload)
	if err != nil {
		var zero T
		return zero, err
	}
	return firstRow[T](body, table)
}

// DeleteRow removes the row with the given id from table.
func (c *Client) DeleteRow(ctx context.Context, table, id string) error {
	q := Query{Filters: map[string]string{"id": id}}
	req, err := c.newRequest(ctx, http.MethodDelete, c.tableURL(table, q), nil)
	if err != nil {
		return err
	}
	_, err = c.do(req)
	return err
}

// DeleteRows removes every row matching the equality filters. Used for the
// release-link cascade; refuses an empty filter set so a bug cannot clear a
// whole table.
func (c *Client) DeleteRows(ctx context.Context, table string, filters map[string]string) error {
	if len(filters) == 0 {
		return errors.New("supabase: DeleteRows requires at least one filter")
	}
	req, err := c.newRequest(ctx, http.MethodDelete, c.tableURL(table, Query{Filters: filters}), nil)
	if err != nil {
		return err
	}
	_, err = c.do(req)
	return err
}

// UpsertSiteContent writes value under key in the site_content table,
// replacing any existing value for that key, and returns the stored row.
func UpsertSiteContent[T any](ctx context.Context, c *Client, key string, value any) (T, error) {
	body, err := c.doJSON(ctx, http.MethodPost, c.tableURL("site_content", Query{Select: "*"}),
		"resolution=merge-duplicates,return=representation",
		map[string]any{"key": key, "value": value})
	if err != nil {
		var zero T
		return zero, err
	}
	return firstRow[T](body, "site_content")
}

// Reorder rewrites order_index for every id to its position in ids,
// 0-based, as a single bulk upsert on the id conflict target. One upstream
// statement, so a failure leaves the previous ordering intact rather than
// a half-applied one.
func (c *Client) Reorder(ctx context.Context, table string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	rows := make([]map[string]any, len(ids))
	for i, id := range ids {
		rows[i] = map[string]any{"id": id, "order_index": i}
	}
	u := c.tableURL(table, Query{})
	if strings.Contains(u, "?") {
		u += "&on_conflict=id"
	} else {
		u += "?on_conflict=id"
	}
	_, err := c.doJSON(ctx, http.MethodPost, u, "resolution=merge-duplicates", rows)
	return err
}
