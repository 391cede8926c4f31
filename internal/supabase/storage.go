package supabase

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// UploadResult is the stored path plus its public retrieval URL.
type UploadResult struct {
	Path      string `json:"path"`
	PublicURL string `json:"publicUrl"`
}

// PublicURL builds the public retrieval URL for an object. A path that is
// already an absolute URL is passed through unchanged.
func (c *Client) PublicURL(bucket, path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return c.baseURL + "/storage/v1/object/public/" + bucket + "/" + path
}

// UploadFile streams file bytes into bucket under path, overwriting any
// existing object, and returns the path with its public URL. contentType
// falls back to application/octet-stream when empty.
func (c *Client) UploadFile(ctx context.Context, bucket, path, contentType string, file io.Reader) (*UploadResult, error) {
	endpoint := c.baseURL + "/storage/v1/object/" + bucket + "/" + url.PathEscape(path)
	req, err := c.newRequest(ctx, http.MethodPost, endpoint, file)
	if err != nil {
		return nil, err
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "true")
	if _, err := c.do(req); err != nil {
		return nil, err
	}
	return &UploadResult{Path: path, PublicURL: c.PublicURL(bucket, path)}, nil
}
