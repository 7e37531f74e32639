// Copyright 2024 Contributors to the Vemorak project.
// SPDX-License-Identifier: Apache-2.0

package provisioning

// CreateKeyRequest describes a new tenant-scoped API key. ExpiresAt, when
// set, is an RFC3339 string; timestamps are passed through opaquely.
type CreateKeyRequest struct {
	TenantID    string   `json:"tenant_id"`
	Label       string   `json:"label,omitempty"`
	Scopes      []string `json:"scopes,omitempty"`
	ScopePrefix string   `json:"scope_prefix,omitempty"`
	ExpiresAt   string   `json:"expires_at,omitempty"`
}

// CreateKeyResponse is the provisioned key. Secret is returned only here,
// at creation time; it cannot be fetched again.
type CreateKeyResponse struct {
	ID          string   `json:"id"`
	TenantID    string   `json:"tenant_id"`
	Name        string   `json:"name"`
	Scopes      []string `json:"scopes"`
	ScopePrefix *string  `json:"scope_prefix"`
	CreatedAt   string   `json:"created_at"`
	ExpiresAt   *string  `json:"expires_at"`
	KeyPrefix   string   `json:"key_prefix"`
	Secret      string   `json:"secret"`
}

type RevokeKeyRequest struct {
	ID string `json:"id"`
}

type RevokeKeyResponse struct {
	ID        string   `json:"id"`
	TenantID  string   `json:"tenant_id"`
	Name      string   `json:"name"`
	KeyPrefix string   `json:"key_prefix"`
	Scopes    []string `json:"scopes"`
	CreatedAt string   `json:"created_at"`
	ExpiresAt *string  `json:"expires_at"`
	RevokedAt string   `json:"revoked_at"`
}

type ListKeyItem struct {
	ID        string   `json:"id"`
	TenantID  string   `json:"tenant_id"`
	Name      string   `json:"name"`
	KeyPrefix string   `json:"key_prefix"`
	Scopes    []string `json:"scopes"`
	CreatedAt string   `json:"created_at"`
	ExpiresAt *string  `json:"expires_at"`
	RevokedAt *string  `json:"revoked_at"`
}

type ListKeysResponse struct {
	TenantID string        `json:"tenant_id"`
	Items    []ListKeyItem `json:"items"`
}
