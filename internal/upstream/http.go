package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const httpTimeout = 10 * time.Second

// newHTTPClient returns an http.Client with a 10-second timeout.
func newHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

// do sends req and decodes a 200 JSON response into dst.
func do(client *http.Client, req *http.Request, dst any) error {
	resp, err := client.Do(req)
	if err != nil {
		// *url.Error embeds the raw URL, credentials included.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return fmt.Errorf("%s %s: %w", req.Method, redact(req.URL), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%s %s returned status %d", req.Method, redact(req.URL), resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decoding response from %s: %w", redact(req.URL), err)
	}

	return nil
}

// doGet performs a GET request and decodes the JSON response into dst.
func doGet(ctx context.Context, client *http.Client, rawURL string, header http.Header, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	for k, v := range header {
		req.Header[k] = v
	}
	return do(client, req, dst)
}

// doPostJSON marshals body, POSTs it, and decodes the JSON response into dst.
func doPostJSON(ctx context.Context, client *http.Client, rawURL string, header http.Header, body, dst any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	for k, v := range header {
		req.Header[k] = v
	}
	req.Header.Set("Content-Type", "application/json")
	return do(client, req, dst)
}

// doPostForm POSTs url-encoded form values and decodes the JSON response into dst.
func doPostForm(ctx context.Context, client *http.Client, rawURL string, form url.Values, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return do(client, req, dst)
}

// redact strips credentials from query strings before they reach logs or errors.
func redact(u *url.URL) string {
	c := *u
	q := c.Query()
	for _, k := range []string{"key", "api_key", "apikey", "access_key"} {
		if q.Has(k) {
			q.Set(k, "REDACTED")
		}
	}
	c.RawQuery = q.Encode()
	return c.String()
}
