// Copyright 2024 Contributors to the Vemorak project.
// SPDX-License-Identifier: Apache-2.0

package vmp

import (
	"net/url"
	"strconv"

	"github.com/vemorak/apiclient/common"
)

// ListQuery parameterizes the tenant-scoped admin listings. Scope and Limit
// are optional; a zero Limit leaves paging to the server.
type ListQuery struct {
	TenantID string
	Scope    string
	Limit    int
}

func (o *Service) checkListQuery(q ListQuery, allowScope bool) error {
	if err := o.enforceTenant(q.TenantID); err != nil {
		return err
	}

	if allowScope && q.Scope != "" {
		if err := o.enforceScope(q.Scope); err != nil {
			return err
		}
	}

	if q.Limit != 0 {
		return common.CheckLimit(q.Limit)
	}

	return nil
}

func (q ListQuery) values() url.Values {
	vals := url.Values{}
	vals.Set("tenant_id", q.TenantID)
	if q.Scope != "" {
		vals.Set("scope", q.Scope)
	}
	if q.Limit != 0 {
		vals.Set("limit", strconv.Itoa(q.Limit))
	}

	return vals
}

// ListEvents lists a tenant's events, optionally filtered by scope.
func (o *Service) ListEvents(q ListQuery) (*ListEventsResponse, error) {
	if err := o.checkListQuery(q, true); err != nil {
		return nil, err
	}

	uri := o.EndPointURI.JoinPath("v1", "admin", "events")
	uri.RawQuery = q.values().Encode()

	var j ListEventsResponse
	if err := o.getJSON(uri, &j); err != nil {
		return nil, err
	}

	return &j, nil
}

// ListBatches lists a tenant's batches. Batches are not scope-filtered.
func (o *Service) ListBatches(q ListQuery) (*ListBatchesResponse, error) {
	if err := o.checkListQuery(q, false); err != nil {
		return nil, err
	}
	q.Scope = ""

	uri := o.EndPointURI.JoinPath("v1", "admin", "batches")
	uri.RawQuery = q.values().Encode()

	var j ListBatchesResponse
	if err := o.getJSON(uri, &j); err != nil {
		return nil, err
	}

	return &j, nil
}

// ListDeletionReceipts lists a tenant's deletion receipts, optionally
// filtered by scope.
func (o *Service) ListDeletionReceipts(q ListQuery) (*ListDeletionReceiptsResponse, error) {
	if err := o.checkListQuery(q, true); err != nil {
		return nil, err
	}

	uri := o.EndPointURI.JoinPath("v1", "admin", "deletion-receipts")
	uri.RawQuery = q.values().Encode()

	var j ListDeletionReceiptsResponse
	if err := o.getJSON(uri, &j); err != nil {
		return nil, err
	}

	return &j, nil
}

// Stats fetches aggregate event/batch/receipt counts.
func (o *Service) Stats() (*StatsResponse, error) {
	var j StatsResponse

	if err := o.getJSON(o.EndPointURI.JoinPath("v1", "admin", "stats"), &j); err != nil {
		return nil, err
	}

	return &j, nil
}

// GetPubkey fetches public-key material and status by id.
func (o *Service) GetPubkey(pubkeyID string) (*PubkeyResponse, error) {
	if err := common.CheckNonEmpty("pubkey_id", pubkeyID); err != nil {
		return nil, err
	}

	var j PubkeyResponse

	uri := o.EndPointURI.JoinPath("v1", "pubkeys", pubkeyID)
	if err := o.getJSON(uri, &j); err != nil {
		return nil, err
	}

	return &j, nil
}
