// Package httpjson is the JSON-over-HTTP plumbing shared by the
// collaborator adapters that talk to a provider without an SDK.
package httpjson

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/custodia-labs/promptmap/internal/core/domain"
)

// Client posts JSON to one provider. Every error it returns is prefixed
// with the provider name.
type Client struct {
	name   string
	http   *http.Client
	header http.Header
}

// New creates a client. header is sent with every request.
func New(name string, timeout time.Duration, header http.Header) *Client {
	if header == nil {
		header = http.Header{}
	}
	return &Client{
		name:   name,
		http:   &http.Client{Timeout: timeout},
		header: header,
	}
}

// Response is a fully read reply.
type Response struct {
	Status int
	Body   []byte
}

// OK reports a 2xx status.
func (r Response) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// Decode unmarshals the body into out.
func (r Response) Decode(out any) error {
	return json.Unmarshal(r.Body, out)
}

// Text is the trimmed body, for error messages.
func (r Response) Text() string {
	return strings.TrimSpace(string(r.Body))
}

// Post sends in as JSON to url. A transport failure wraps
// domain.ErrLLMUnavailable; any status is returned as a Response.
func (c *Client) Post(ctx context.Context, url string, in any) (Response, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return Response{}, fmt.Errorf("%s: marshal request: %w", c.name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Response{}, fmt.Errorf("%s: create request: %w", c.name, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

// Ping issues a GET to url and fails on any non-2xx status.
func (c *Client) Ping(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return fmt.Errorf("%s: failed to create ping request: %w", c.name, err)
	}

	resp, err := c.do(req)
	if err != nil {
		return fmt.Errorf("%s: ping failed: %w", c.name, err)
	}
	if !resp.OK() {
		return fmt.Errorf("%s: API returned status %d: %s", c.name, resp.Status, resp.Text())
	}
	return nil
}

// Unavailable builds a provider error wrapping domain.ErrLLMUnavailable.
func (c *Client) Unavailable(format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", c.name, domain.ErrLLMUnavailable, fmt.Sprintf(format, args...))
}

// Malformed builds a provider error wrapping domain.ErrMalformedReply.
func (c *Client) Malformed(format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", c.name, domain.ErrMalformedReply, fmt.Sprintf(format, args...))
}

func (c *Client) do(req *http.Request) (Response, error) {
	for k, vs := range c.header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Response{}, c.Unavailable("%v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, fmt.Errorf("%s: read response: %w", c.name, err)
	}
	return Response{Status: resp.StatusCode, Body: body}, nil
}
