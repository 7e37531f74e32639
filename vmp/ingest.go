// Copyright 2024 Contributors to the Vemorak project.
// SPDX-License-Identifier: Apache-2.0

package vmp

import (
	"github.com/vemorak/apiclient/common"
)

// Ingest submits one event for recording. Op defaults to OpWrite. The tenant
// and scope guardrails are enforced locally before the request is sent.
func (o *Service) Ingest(req IngestRequest) (*IngestResponse, error) {
	if err := o.enforceTenant(req.TenantID); err != nil {
		return nil, err
	}
	if err := o.enforceScope(req.Scope); err != nil {
		return nil, err
	}

	if req.Op == "" {
		req.Op = OpWrite
	}
	if req.Fields == nil {
		req.Fields = map[string]interface{}{}
	}
	if req.Meta == nil {
		req.Meta = map[string]interface{}{}
	}

	var j IngestResponse

	uri := o.EndPointURI.JoinPath("v1", "ingest")
	if err := o.postJSON(uri, req, req.IdempotencyKey, &j); err != nil {
		return nil, err
	}

	return &j, nil
}

// Delete records a delete event against target event and returns the delete
// event together with its signed deletion receipt.
func (o *Service) Delete(req DeleteRequest) (*DeleteResponse, error) {
	if err := o.enforceTenant(req.TenantID); err != nil {
		return nil, err
	}
	if err := o.enforceScope(req.Scope); err != nil {
		return nil, err
	}
	if err := common.CheckUUIDLike("target_event_id", req.TargetEventID); err != nil {
		return nil, err
	}

	if req.Meta == nil {
		req.Meta = map[string]interface{}{}
	}

	var j DeleteResponse

	uri := o.EndPointURI.JoinPath("v1", "delete")
	if err := o.postJSON(uri, req, "", &j); err != nil {
		return nil, err
	}

	return &j, nil
}
