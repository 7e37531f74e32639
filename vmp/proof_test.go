// Copyright 2024 Contributors to the Vemorak project.
// SPDX-License-Identifier: Apache-2.0

package vmp

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vemorak/apiclient/common"
)

const testPendingProof = `{
	"event_id": "b7a9c0d1-2222-4444-8888-0123456789ab",
	"tenant_id": "acme-corp",
	"scope": "user:42",
	"batch_id": null,
	"leaf_index": null,
	"leaf_hex": null,
	"root_hex": null,
	"path": [],
	"sig_base64": null,
	"pubkey_id": null,
	"pubkey_base64": null,
	"pubkey_hex": null,
	"batch_created_at": null
}`

const testAnchoredProof = `{
	"event_id": "b7a9c0d1-2222-4444-8888-0123456789ab",
	"tenant_id": "acme-corp",
	"scope": "user:42",
	"batch_id": "77aa88bb-9900-4242-8484-121212121212",
	"leaf_index": 3,
	"leaf_hex": "1a2b3c4d",
	"root_hex": "d4c3b2a1",
	"path": [
		{"sibling_hex": "0011", "sibling_is_left": true},
		{"sibling_hex": "2233", "sibling_is_left": false}
	],
	"sig_base64": "cm9vdC1zaWc=",
	"pubkey_id": "pk-1",
	"pubkey_base64": "a2V5",
	"pubkey_hex": "6b6579",
	"batch_created_at": "2024-05-01T10:10:00Z"
}`

func TestService_GetProof_pending(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, fmt.Sprintf("/v1/proof/%s", testEventID), r.RequestURI)

		w.Header().Set("Content-Type", common.JSONMediaType)
		_, err := w.Write([]byte(testPendingProof))
		assert.NoError(t, err)
	})

	service, teardown := testService(t, h)
	defer teardown()

	proof, err := service.GetProof(testEventID)
	require.NoError(t, err)
	assert.Equal(t, testEventID, proof.EventID)
	assert.Nil(t, proof.BatchID)
	assert.Nil(t, proof.LeafIndex)
	assert.Empty(t, proof.Path)
}

func TestService_GetProof_anchored(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", common.JSONMediaType)
		_, err := w.Write([]byte(testAnchoredProof))
		assert.NoError(t, err)
	})

	service, teardown := testService(t, h)
	defer teardown()

	proof, err := service.GetProof(testEventID)
	require.NoError(t, err)
	require.NotNil(t, proof.BatchID)
	assert.Equal(t, "77aa88bb-9900-4242-8484-121212121212", *proof.BatchID)
	require.NotNil(t, proof.LeafIndex)
	assert.Equal(t, int64(3), *proof.LeafIndex)
	require.Len(t, proof.Path, 2)
	assert.Equal(t, ProofPathItem{SiblingHex: "0011", SiblingIsLeft: true}, proof.Path[0])
	assert.Equal(t, ProofPathItem{SiblingHex: "2233", SiblingIsLeft: false}, proof.Path[1])
}

func TestService_GetProof_id_shape(t *testing.T) {
	service, teardown := testService(t, http.NotFoundHandler())
	defer teardown()

	_, err := service.GetProof("nope")

	var verr *common.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestService_WaitForBatch_anchors_mid_poll(t *testing.T) {
	polls := 0
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		polls++

		w.Header().Set("Content-Type", common.JSONMediaType)

		var err error
		if polls < 3 {
			_, err = w.Write([]byte(testPendingProof))
		} else {
			_, err = w.Write([]byte(testAnchoredProof))
		}
		assert.NoError(t, err)
	})

	service, teardown := testService(t, h)
	defer teardown()

	proof, err := service.WaitForBatch(testEventID, &WaitForBatchOptions{
		Timeout:    2 * time.Second,
		PollPeriod: 10 * time.Millisecond,
	})
	require.NoError(t, err)
	require.NotNil(t, proof.BatchID)
	assert.Equal(t, 3, polls)
}

func TestService_WaitForBatch_deadline(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", common.JSONMediaType)
		_, err := w.Write([]byte(testPendingProof))
		assert.NoError(t, err)
	})

	service, teardown := testService(t, h)
	defer teardown()

	_, err := service.WaitForBatch(testEventID, &WaitForBatchOptions{
		Timeout:    50 * time.Millisecond,
		PollPeriod: 10 * time.Millisecond,
	})

	require.ErrorIs(t, err, common.ErrNoBatch)

	// deadline expiry is a client-side condition, not a transport timeout
	var terr *common.TimeoutError
	assert.False(t, errors.As(err, &terr))
}

func TestService_WaitForBatch_propagates_api_error(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, err := w.Write([]byte(`{"error":"no such event"}`))
		assert.NoError(t, err)
	})

	service, teardown := testService(t, h)
	defer teardown()

	_, err := service.WaitForBatch(testEventID, nil)

	var apiErr *common.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "no such event", apiErr.Message)
}
