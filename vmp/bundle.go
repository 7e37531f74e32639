// Copyright 2024 Contributors to the Vemorak project.
// SPDX-License-Identifier: Apache-2.0

package vmp

import (
	"github.com/vemorak/apiclient/common"
)

// GetEventBundle fetches the composite event + proof + recomputation object
// for an event in one round trip.
func (o *Service) GetEventBundle(eventID string) (*EventBundle, error) {
	if err := common.CheckUUIDLike("event_id", eventID); err != nil {
		return nil, err
	}

	var j EventBundle

	uri := o.EndPointURI.JoinPath("v1", "events", eventID, "bundle")
	if err := o.getJSON(uri, &j); err != nil {
		return nil, err
	}

	return &j, nil
}

// GetDeletionReceiptBundle fetches the composite receipt + verification
// object, including the nested bundle of the delete event itself.
func (o *Service) GetDeletionReceiptBundle(receiptID string) (*DeletionReceiptBundle, error) {
	if err := common.CheckUUIDLike("receipt_id", receiptID); err != nil {
		return nil, err
	}

	var j DeletionReceiptBundle

	uri := o.EndPointURI.JoinPath("v1", "deletion-receipts", receiptID, "bundle")
	if err := o.getJSON(uri, &j); err != nil {
		return nil, err
	}

	return &j, nil
}

// VerifyEventBundleOffline submits a previously exported event bundle for
// server-side verification. The bundle is treated as opaque (any
// JSON-serializable value is accepted) and the call is explicitly
// unauthenticated: no Authorization header is sent even though the Service
// holds an API key.
func (o *Service) VerifyEventBundleOffline(bundle interface{}) (*VerifyBundleResult, error) {
	var j VerifyBundleResult

	uri := o.EndPointURI.JoinPath("v1", "verify", "bundle")
	if err := o.postPublicJSON(uri, bundle, &j); err != nil {
		return nil, err
	}

	return &j, nil
}

// VerifyDeletionBundleOffline is VerifyEventBundleOffline for deletion
// receipt bundles.
func (o *Service) VerifyDeletionBundleOffline(bundle interface{}) (*VerifyBundleResult, error) {
	var j VerifyBundleResult

	uri := o.EndPointURI.JoinPath("v1", "verify", "deletion-bundle")
	if err := o.postPublicJSON(uri, bundle, &j); err != nil {
		return nil, err
	}

	return &j, nil
}
