// Copyright 2024 Contributors to the Vemorak project.
// SPDX-License-Identifier: Apache-2.0

package vmp

import (
	"encoding/json"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Event operations recorded by the VMP log.
const (
	OpWrite  = "write"
	OpDelete = "delete"
)

// FlexID is an identifier that the server may serialize as either a JSON
// string or a number.
type FlexID string

func (o *FlexID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*o = FlexID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id is neither a string nor a number: %w", err)
	}
	*o = FlexID(n.String())

	return nil
}

// WhoAmIResponse is the identity bound to the presented API key.
type WhoAmIResponse struct {
	TenantID      string   `json:"tenant_id"`
	KeyID         FlexID   `json:"key_id"`
	AllowedScopes []string `json:"allowed_scopes"`
	ScopePrefix   *string  `json:"scope_prefix"`
}

// IngestRequest describes a single event submission. Timestamps, hashes and
// signatures in all response types are passed through as the server's
// RFC3339 / hex / base64 strings; this layer does no parsing of them.
type IngestRequest struct {
	TenantID string                 `json:"tenant_id"`
	Scope    string                 `json:"scope"`
	Op       string                 `json:"op"`
	Fields   map[string]interface{} `json:"fields"`
	Meta     map[string]interface{} `json:"meta"`

	// IdempotencyKey is sent as the x-idempotency-key header, never in the
	// body, so the server can deduplicate a caller's retried submission.
	IdempotencyKey string `json:"-"`
}

type IngestResponse struct {
	EventID      string  `json:"event_id"`
	EventHashHex string  `json:"event_hash_hex"`
	PrevHashHex  *string `json:"prev_hash_hex"`
	CreatedAt    string  `json:"created_at"`
}

// DeleteRequest records a delete event against a previously ingested event;
// the server answers with the delete event and its signed deletion receipt
// in one round trip.
type DeleteRequest struct {
	TenantID      string                 `json:"tenant_id"`
	Scope         string                 `json:"scope"`
	TargetEventID string                 `json:"target_event_id"`
	Meta          map[string]interface{} `json:"meta"`
}

type DeleteResponse struct {
	DeleteEventID      string `json:"delete_event_id"`
	DeleteEventHashHex string `json:"delete_event_hash_hex"`
	ReceiptID          string `json:"receipt_id"`
	ReceiptSigBase64   string `json:"receipt_sig_base64"`
	PubkeyID           string `json:"pubkey_id"`
	PubkeyBase64       string `json:"pubkey_base64"`
	PubkeyHex          string `json:"pubkey_hex"`
	CreatedAt          string `json:"created_at"`
}

// ProofPathItem is one step of the sibling-hash path from a leaf to the
// batch root.
type ProofPathItem struct {
	SiblingHex    string `json:"sibling_hex"`
	SiblingIsLeft bool   `json:"sibling_is_left"`
}

// ProofResponse is the inclusion-proof state of an event. The batch-related
// fields stay null until the server anchors the event into a batch.
type ProofResponse struct {
	EventID        string          `json:"event_id"`
	TenantID       string          `json:"tenant_id"`
	Scope          string          `json:"scope"`
	BatchID        *string         `json:"batch_id"`
	LeafIndex      *int64          `json:"leaf_index"`
	LeafHex        *string         `json:"leaf_hex"`
	RootHex        *string         `json:"root_hex"`
	Path           []ProofPathItem `json:"path"`
	SigBase64      *string         `json:"sig_base64"`
	PubkeyID       *string         `json:"pubkey_id"`
	PubkeyBase64   *string         `json:"pubkey_base64"`
	PubkeyHex      *string         `json:"pubkey_hex"`
	BatchCreatedAt *string         `json:"batch_created_at"`
}

type DeletionReceiptResponse struct {
	ReceiptID          string `json:"receipt_id"`
	TenantID           string `json:"tenant_id"`
	Scope              string `json:"scope"`
	DeleteEventID      string `json:"delete_event_id"`
	DeleteEventHashHex string `json:"delete_event_hash_hex"`
	SigBase64          string `json:"sig_base64"`
	PubkeyID           string `json:"pubkey_id"`
	PubkeyBase64       string `json:"pubkey_base64"`
	PubkeyHex          string `json:"pubkey_hex"`
	CreatedAt          string `json:"created_at"`
}

type VerifyDeletionResponse struct {
	ReceiptID          string `json:"receipt_id"`
	Valid              bool   `json:"valid"`
	TenantID           string `json:"tenant_id"`
	Scope              string `json:"scope"`
	DeleteEventID      string `json:"delete_event_id"`
	DeleteEventHashHex string `json:"delete_event_hash_hex"`
	PubkeyID           string `json:"pubkey_id"`
	PubkeyBase64       string `json:"pubkey_base64"`
	PubkeyHex          string `json:"pubkey_hex"`
	CreatedAt          string `json:"created_at"`
}

// EventBundleEvent is the full server-side record of an event, including the
// canonical forms the content hash was computed over.
type EventBundleEvent struct {
	ID           string                 `json:"id"`
	TenantID     string                 `json:"tenant_id"`
	Scope        string                 `json:"scope"`
	Op           string                 `json:"op"`
	CreatedAt    string                 `json:"created_at"`
	Fields       map[string]interface{} `json:"fields"`
	Meta         map[string]interface{} `json:"meta"`
	EventHashHex string                 `json:"event_hash_hex"`
	PrevHashHex  *string                `json:"prev_hash_hex"`
	FieldsCanon  string                 `json:"fields_canon"`
	MetaCanon    string                 `json:"meta_canon"`
	CFieldsHex   string                 `json:"c_fields_hex"`
	BatchID      *string                `json:"batch_id"`
	LeafIndex    *int64                 `json:"leaf_index"`
}

type EventBundleRecompute struct {
	RecomputedEventHashHex string `json:"recomputed_event_hash_hex"`
	MatchesStored          bool   `json:"matches_stored"`
}

// EventBundle is the composite event + proof + recomputation object served
// by GET /v1/events/{id}/bundle. The same type decodes the bundle nested
// inside a DeletionReceiptBundle, so top-level and nested mapping cannot
// diverge.
type EventBundle struct {
	Kind      string               `json:"kind"`
	Event     EventBundleEvent     `json:"event"`
	Proof     ProofResponse        `json:"proof"`
	Recompute EventBundleRecompute `json:"recompute"`
}

type DeletionReceiptBundleVerification struct {
	ReceiptID string `json:"receipt_id"`
	Valid     bool   `json:"valid"`
}

type DeletionReceiptBundle struct {
	Kind              string                            `json:"kind"`
	Receipt           DeletionReceiptResponse           `json:"receipt"`
	Verification      DeletionReceiptBundleVerification `json:"verification"`
	DeleteEventBundle EventBundle                       `json:"delete_event_bundle"`
}

// VerifyBundleResult is the outcome of server-side verification of a
// submitted bundle. Checks is kept as an open string-keyed map because the
// server may evolve the set of check keys.
type VerifyBundleResult struct {
	OK     bool                   `json:"ok"`
	Checks map[string]interface{} `json:"checks"`
}

// CheckDetail is the decoded form of a single entry of the Checks map.
type CheckDetail struct {
	OK         bool    `mapstructure:"ok"`
	Reason     *string `mapstructure:"reason"`
	Recomputed *string `mapstructure:"recomputed"`
	Stored     *string `mapstructure:"stored"`
}

// Check decodes the named entry of the Checks map.
func (o *VerifyBundleResult) Check(name string) (*CheckDetail, error) {
	raw, ok := o.Checks[name]
	if !ok {
		return nil, fmt.Errorf("no such check: %q", name)
	}

	var detail CheckDetail
	if err := mapstructure.Decode(raw, &detail); err != nil {
		return nil, fmt.Errorf("could not decode check %q: %w", name, err)
	}

	return &detail, nil
}

type AdminEventItem struct {
	ID        string  `json:"id"`
	TenantID  string  `json:"tenant_id"`
	Scope     string  `json:"scope"`
	Op        string  `json:"op"`
	CreatedAt string  `json:"created_at"`
	BatchID   *string `json:"batch_id"`
	LeafIndex *int64  `json:"leaf_index"`
}

type ListEventsResponse struct {
	Items []AdminEventItem `json:"items"`
}

type AdminBatchItem struct {
	ID           string  `json:"id"`
	TenantID     string  `json:"tenant_id"`
	RootHex      string  `json:"root_hex"`
	SigBase64    *string `json:"sig_base64"`
	PubkeyID     *string `json:"pubkey_id"`
	PubkeyBase64 *string `json:"pubkey_base64"`
	PubkeyHex    *string `json:"pubkey_hex"`
	Count        int64   `json:"count"`
	CreatedAt    string  `json:"created_at"`
}

type ListBatchesResponse struct {
	Items []AdminBatchItem `json:"items"`
}

type ListDeletionReceiptsResponse struct {
	Items []DeletionReceiptResponse `json:"items"`
}

type StatsResponse struct {
	EventsTotal   int64 `json:"events_total"`
	BatchesTotal  int64 `json:"batches_total"`
	ReceiptsTotal int64 `json:"receipts_total"`
}

type PubkeyResponse struct {
	PubkeyID     string `json:"pubkey_id"`
	Alg          string `json:"alg"`
	Status       string `json:"status"`
	PubkeyBase64 string `json:"pubkey_base64"`
	PubkeyHex    string `json:"pubkey_hex"`
}
