// Copyright 2024 Contributors to the Vemorak project.
// SPDX-License-Identifier: Apache-2.0

package common

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/vemorak/apiclient/auth"
)

// DefaultTimeout bounds a single request round trip unless overridden with
// SetTimeout.
const DefaultTimeout = 15 * time.Second

// IdempotencyKeyHeader is the header the VMP ingest endpoint consults to
// deduplicate retried submissions.
const IdempotencyKeyHeader = "x-idempotency-key"

// Client holds configuration data associated with the HTTP(s) session.
type Client struct {
	HTTPClient http.Client
	Auth       auth.IAuthenticator
}

// NewClient instantiates a new Client with the specified authenticator. If
// a is nil, requests are sent without an Authorization header.
func NewClient(a auth.IAuthenticator) *Client {
	return &Client{
		HTTPClient: http.Client{
			Timeout: DefaultTimeout,
		},
		Auth: a,
	}
}

// NewTLSClient instantiates a new Client with a TLS transport trusting the
// system roots plus the certs found at certPaths.
func NewTLSClient(a auth.IAuthenticator, certPaths []string) (*Client, error) {
	transport, err := auth.NewTLSTransport(certPaths)
	if err != nil {
		return nil, err
	}

	client := NewClient(a)
	client.HTTPClient.Transport = transport

	return client, nil
}

// NewInsecureTLSClient instantiates a new Client that does not verify the
// server certificate chain. Testing use only.
func NewInsecureTLSClient(a auth.IAuthenticator) *Client {
	client := NewClient(a)
	client.HTTPClient.Transport = auth.NewInsecureTLSTransport()

	return client
}

// SetTimeout sets the per-request wall-clock timeout.
func (c *Client) SetTimeout(d time.Duration) {
	c.HTTPClient.Timeout = d
}

// Close releases the idle connections held by the underlying transport. The
// Client must not be used after Close.
func (c *Client) Close() {
	c.HTTPClient.CloseIdleConnections()
}

// GetResource performs an authenticated GET against uri.
func (c *Client) GetResource(accept, uri string) (*http.Response, error) {
	return c.roundTrip(http.MethodGet, uri, nil, "", accept, nil, true)
}

// GetPublicResource performs a GET against uri without attaching the
// Authorization header, regardless of the configured authenticator.
func (c *Client) GetPublicResource(accept, uri string) (*http.Response, error) {
	return c.roundTrip(http.MethodGet, uri, nil, "", accept, nil, false)
}

// PostResource performs an authenticated POST of body against uri.
func (c *Client) PostResource(body []byte, ct, accept, uri string) (*http.Response, error) {
	return c.roundTrip(http.MethodPost, uri, body, ct, accept, nil, true)
}

// PostResourceWithKey is PostResource with an idempotency key attached as
// the x-idempotency-key header, so the server can deduplicate a retried
// submission. An empty key attaches no header.
func (c *Client) PostResourceWithKey(body []byte, ct, accept, uri, key string) (*http.Response, error) {
	var extra http.Header
	if key != "" {
		extra = http.Header{}
		extra.Set(IdempotencyKeyHeader, key)
	}

	return c.roundTrip(http.MethodPost, uri, body, ct, accept, extra, true)
}

// PostPublicResource performs a POST of body against uri without attaching
// the Authorization header, regardless of the configured authenticator.
func (c *Client) PostPublicResource(body []byte, ct, accept, uri string) (*http.Response, error) {
	return c.roundTrip(http.MethodPost, uri, body, ct, accept, nil, false)
}

func (c *Client) roundTrip(
	method, uri string,
	body []byte,
	ct, accept string,
	extra http.Header,
	withAuth bool,
) (*http.Response, error) {
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, uri, rd)
	if err != nil {
		return nil, fmt.Errorf("%s %q, request creation failed: %w", method, uri, err)
	}

	if ct != "" {
		req.Header.Set("Content-Type", ct)
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	for k, vs := range extra {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	if withAuth && c.Auth != nil {
		header, err := c.Auth.EncodeHeader()
		if err != nil {
			return nil, fmt.Errorf("could not encode auth header: %w", err)
		}
		if header != "" {
			req.Header.Set("Authorization", header)
		}
	}

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, &TimeoutError{Op: fmt.Sprintf("%s %s", method, uri), Err: err}
		}
		return nil, fmt.Errorf("%s %q: %w", method, uri, err)
	}

	return res, nil
}

func isTimeout(err error) bool {
	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return true
	}

	return errors.Is(err, context.DeadlineExceeded)
}
