// Copyright 2024 Contributors to the Vemorak project.
// SPDX-License-Identifier: Apache-2.0

/*
Package provisioning implements the client side of the VMP API-key
lifecycle operations, for use by console backends.

The user creates a Service supplying the endpoint of the VMP server and a
console provisioning token (a credential distinct from the tenant API keys
the Service manages):

	service, err := provisioning.NewService("https://vmp.example", provisionToken)
	defer service.Close()

Keys are created, listed and revoked per tenant:

	created, err := service.CreateAPIKey(provisioning.CreateKeyRequest{
		TenantID:    "acme-corp",
		Label:       "ingest-worker",
		ScopePrefix: "user:",
	})

	// created.Secret is returned only at creation time

	keys, err := service.ListAPIKeys("acme-corp", 0)

	_, err = service.RevokeAPIKey(created.ID)
*/
package provisioning
