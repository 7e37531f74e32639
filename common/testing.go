// Copyright 2024 Contributors to the Vemorak project.
// SPDX-License-Identifier: Apache-2.0

package common

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"

	"github.com/vemorak/apiclient/auth"
)

// NewTestingHTTPClient creates an HTTP test server (with a configurable
// request handler), an API Client wired to it through the supplied
// authenticator, and connects them together. The API client and the server's
// shutdown switch are returned.
func NewTestingHTTPClient(handler http.Handler, a auth.IAuthenticator) (cli *Client, closerFn func()) {
	srv := httptest.NewServer(handler)

	cli = &Client{
		HTTPClient: http.Client{
			Transport: &http.Transport{
				DialContext: func(_ context.Context, network, _ string) (net.Conn, error) {
					return net.Dial(network, srv.Listener.Addr().String())
				},
			},
		},
		Auth: a,
	}

	closerFn = srv.Close

	return
}
