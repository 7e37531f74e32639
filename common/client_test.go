// Copyright 2024 Contributors to the Vemorak project.
// SPDX-License-Identifier: Apache-2.0

package common

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vemorak/apiclient/auth"
)

func testBearer(t *testing.T, token string) auth.IAuthenticator {
	t.Helper()

	a := &auth.BearerAuthenticator{}
	require.NoError(t, a.Configure(map[string]interface{}{"token": token}))

	return a
}

func TestClient_GetResource_attaches_bearer(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "Bearer vmk_test_key", r.Header.Get("Authorization"))
		assert.Equal(t, JSONMediaType, r.Header.Get("Accept"))

		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte(`{}`))
		assert.NoError(t, err)
	})

	client, teardown := NewTestingHTTPClient(h, testBearer(t, "vmk_test_key"))
	defer teardown()

	res, err := client.GetResource(JSONMediaType, "http://vmp.example/v1/whoami")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	res.Body.Close()
}

func TestClient_GetPublicResource_no_auth_header(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present := r.Header["Authorization"]
		assert.False(t, present, "Authorization header must not be attached")

		w.WriteHeader(http.StatusOK)
	})

	client, teardown := NewTestingHTTPClient(h, testBearer(t, "vmk_test_key"))
	defer teardown()

	res, err := client.GetPublicResource(JSONMediaType, "http://vmp.example/v1/verify/bundle")
	require.NoError(t, err)
	res.Body.Close()
}

func TestClient_PostResourceWithKey_header(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "idem-1234", r.Header.Get(IdempotencyKeyHeader))
		assert.Equal(t, JSONMediaType, r.Header.Get("Content-Type"))

		w.WriteHeader(http.StatusOK)
	})

	client, teardown := NewTestingHTTPClient(h, testBearer(t, "vmk_test_key"))
	defer teardown()

	res, err := client.PostResourceWithKey(
		[]byte(`{}`), JSONMediaType, JSONMediaType,
		"http://vmp.example/v1/ingest", "idem-1234",
	)
	require.NoError(t, err)
	res.Body.Close()
}

func TestClient_PostResourceWithKey_empty_key_no_header(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present := r.Header[http.CanonicalHeaderKey(IdempotencyKeyHeader)]
		assert.False(t, present)

		w.WriteHeader(http.StatusOK)
	})

	client, teardown := NewTestingHTTPClient(h, testBearer(t, "vmk_test_key"))
	defer teardown()

	res, err := client.PostResourceWithKey(
		[]byte(`{}`), JSONMediaType, JSONMediaType,
		"http://vmp.example/v1/ingest", "",
	)
	require.NoError(t, err)
	res.Body.Close()
}

func TestClient_timeout_is_TimeoutError(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	})

	client, teardown := NewTestingHTTPClient(h, nil)
	defer teardown()

	client.SetTimeout(20 * time.Millisecond)

	_, err := client.GetResource(JSONMediaType, "http://vmp.example/v1/whoami")

	var terr *TimeoutError
	require.ErrorAs(t, err, &terr)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr), "transport timeout must not surface as APIError")
	assert.NotErrorIs(t, err, ErrNoBatch)
}

func TestClient_auth_encode_failure(t *testing.T) {
	client := NewClient(&auth.BearerAuthenticator{}) // no token configured

	_, err := client.GetResource(JSONMediaType, "http://vmp.example/v1/whoami")
	assert.EqualError(t, err, "could not encode auth header: missing token")
}
