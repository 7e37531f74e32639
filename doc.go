// Copyright 2024 Contributors to the Vemorak project.
// SPDX-License-Identifier: Apache-2.0

/*
Package apiclient wraps the HTTP API of a VMP (verifiable mutation
protocol) service: a tamper-evident event log with Merkle-tree inclusion
proofs and cryptographically signed deletion receipts.

Two independent client surfaces are provided:

  - vmp.Service authenticates as a tenant-scoped API key and exposes the
    ingest, delete, proof, receipt, bundle-verification and admin
    operations;
  - provisioning.Service authenticates as a console provisioning token and
    manages the API-key lifecycle.

Both validate inputs locally before any network round trip, perform exactly
one HTTP call per operation, and surface failures through a flat error
taxonomy: common.ValidationError for local contract violations,
common.TimeoutError for transport timeouts, and common.APIError for non-2xx
responses. No retries happen in this layer; the idempotency-key header on
ingest exists so that callers can retry safely themselves.

All cryptographic material (hashes, signatures, public keys) and all
timestamps are passed through as opaque strings; the Merkle-tree and
signature math lives in the server.
*/
package apiclient
