// Copyright 2024 Contributors to the Vemorak project.
// SPDX-License-Identifier: Apache-2.0

package vmp

import (
	"github.com/vemorak/apiclient/common"
)

// GetDeletionReceipt fetches the signed receipt recorded for a delete event.
func (o *Service) GetDeletionReceipt(receiptID string) (*DeletionReceiptResponse, error) {
	if err := common.CheckUUIDLike("receipt_id", receiptID); err != nil {
		return nil, err
	}

	var j DeletionReceiptResponse

	uri := o.EndPointURI.JoinPath("v1", "deletion-receipts", receiptID)
	if err := o.getJSON(uri, &j); err != nil {
		return nil, err
	}

	return &j, nil
}

// VerifyDeletion asks the server to verify the receipt's signature against
// its stored delete event.
func (o *Service) VerifyDeletion(receiptID string) (*VerifyDeletionResponse, error) {
	if err := common.CheckUUIDLike("receipt_id", receiptID); err != nil {
		return nil, err
	}

	var j VerifyDeletionResponse

	uri := o.EndPointURI.JoinPath("v1", "verify-deletion", receiptID)
	if err := o.getJSON(uri, &j); err != nil {
		return nil, err
	}

	return &j, nil
}
