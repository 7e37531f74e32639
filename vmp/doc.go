// Copyright 2024 Contributors to the Vemorak project.
// SPDX-License-Identifier: Apache-2.0

/*
Package vmp implements the client side of the VMP protocol API: event
ingestion, deletion with signed receipts, Merkle inclusion proofs,
verifiable bundles and tenant-scoped admin listings.

The user creates a Service supplying the endpoint of the VMP server and a
tenant API key:

	service, err := vmp.NewService("https://vmp.example", apiKey)

Optional local guardrails mirror the server-side tenant and scope-prefix
rules, so configuration mistakes fail before a network round trip:

	err = service.SetTenantID("acme-corp")
	err = service.SetScopePrefix("user:")

Events are then submitted, anchored and proven:

	ingested, err := service.Ingest(vmp.IngestRequest{
		TenantID: "acme-corp",
		Scope:    "user:42",
		Fields:   map[string]interface{}{"email": "j@example.com"},
	})

	proof, err := service.WaitForBatch(ingested.EventID, nil)

A delete produces a signed deletion receipt that can be fetched and
verified later:

	deleted, err := service.Delete(vmp.DeleteRequest{
		TenantID:      "acme-corp",
		Scope:         "user:42",
		TargetEventID: ingested.EventID,
	})

	verdict, err := service.VerifyDeletion(deleted.ReceiptID)

Bundles exported with GetEventBundle and GetDeletionReceiptBundle can be
re-submitted for verification without credentials:

	result, err := service.VerifyEventBundleOffline(bundle)

Callers own the Service lifetime and release its connection with Close:

	defer service.Close()
*/
package vmp
