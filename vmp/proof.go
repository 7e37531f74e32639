// Copyright 2024 Contributors to the Vemorak project.
// SPDX-License-Identifier: Apache-2.0

package vmp

import (
	"fmt"
	"time"

	"github.com/vemorak/apiclient/common"
)

// Defaults for WaitForBatch. The poll interval is a fixed sleep: there is no
// backoff growth and no jitter.
const (
	DefaultWaitTimeout = 30 * time.Second
	DefaultPollPeriod  = 800 * time.Millisecond
)

// WaitForBatchOptions overrides the WaitForBatch defaults; zero values keep
// the defaults.
type WaitForBatchOptions struct {
	Timeout    time.Duration
	PollPeriod time.Duration
}

// GetProof fetches the current inclusion-proof state of an event. The
// batch-related fields of the result are nil until the server has anchored
// the event into a batch.
func (o *Service) GetProof(eventID string) (*ProofResponse, error) {
	if err := common.CheckUUIDLike("event_id", eventID); err != nil {
		return nil, err
	}

	var j ProofResponse

	uri := o.EndPointURI.JoinPath("v1", "proof", eventID)
	if err := o.getJSON(uri, &j); err != nil {
		return nil, err
	}

	return &j, nil
}

// WaitForBatch polls GetProof until the event has been anchored into a
// batch, returning the first proof with a non-nil BatchID. The calling
// goroutine blocks between attempts. If the deadline elapses first, the
// returned error wraps common.ErrNoBatch; transport failures and API errors
// propagate as-is.
func (o *Service) WaitForBatch(eventID string, opts *WaitForBatchOptions) (*ProofResponse, error) {
	timeout := DefaultWaitTimeout
	period := DefaultPollPeriod

	if opts != nil {
		if opts.Timeout > 0 {
			timeout = opts.Timeout
		}
		if opts.PollPeriod > 0 {
			period = opts.PollPeriod
		}
	}

	deadline := time.Now().Add(timeout)

	for {
		proof, err := o.GetProof(eventID)
		if err != nil {
			return nil, err
		}

		if proof.BatchID != nil {
			return proof, nil
		}

		if time.Now().After(deadline) {
			return nil, fmt.Errorf("waiting for batch on event %s: %w", eventID, common.ErrNoBatch)
		}

		time.Sleep(period)
	}
}
