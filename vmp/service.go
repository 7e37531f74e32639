// Copyright 2024 Contributors to the Vemorak project.
// SPDX-License-Identifier: Apache-2.0

package vmp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/google/uuid"

	"github.com/vemorak/apiclient/auth"
	"github.com/vemorak/apiclient/common"
)

// Service is the primary interface to the VMP protocol API. It authenticates
// as a tenant-scoped API key and exposes the ingest, delete, proof, receipt,
// verification and admin operations.
//
// TenantID and ScopePrefix are optional local guardrails. They are
// defense-in-depth only: the server remains the authority on tenant binding
// and scope ownership, the guardrails just fail fast before a round trip.
type Service struct {
	// Client is the underlying client used for HTTP requests.
	Client *common.Client

	// EndPointURI is the top-level service API URL. Individual operation
	// endpoints are relative to this.
	EndPointURI *url.URL

	// TenantID, when set, rejects any request naming a different tenant.
	TenantID string

	// ScopePrefix, when set, rejects any scope outside the prefix.
	ScopePrefix string
}

// NewService creates a new Service instance for the VMP endpoint at uri,
// authenticating with the supplied tenant API key over the default HTTP
// client.
func NewService(uri, apiKey string) (*Service, error) {
	if err := common.CheckNonEmpty("api_key", apiKey); err != nil {
		return nil, err
	}

	s := Service{Client: common.NewClient(&auth.BearerAuthenticator{Token: apiKey})}

	if err := s.SetEndpointURI(uri); err != nil {
		return nil, err
	}

	return &s, nil
}

// NewTLSService is NewService over a TLS transport trusting the system roots
// plus the certs found at certPaths.
func NewTLSService(uri, apiKey string, certPaths []string) (*Service, error) {
	s, err := NewService(uri, apiKey)
	if err != nil {
		return nil, err
	}

	if s.EndPointURI.Scheme != "https" {
		return nil, fmt.Errorf("expected HTTPS scheme in %q", uri)
	}

	client, err := common.NewTLSClient(s.Client.Auth, certPaths)
	if err != nil {
		return nil, err
	}
	s.Client = client

	return s, nil
}

// NewInsecureTLSService is NewService over a TLS transport that skips server
// certificate verification. Testing use only.
func NewInsecureTLSService(uri, apiKey string) (*Service, error) {
	s, err := NewService(uri, apiKey)
	if err != nil {
		return nil, err
	}

	if s.EndPointURI.Scheme != "https" {
		return nil, fmt.Errorf("expected HTTPS scheme in %q", uri)
	}

	s.Client = common.NewInsecureTLSClient(s.Client.Auth)

	return s, nil
}

// SetClient sets the HTTP(s) client connection configuration
func (o *Service) SetClient(client *common.Client) error {
	if client == nil {
		return errors.New("no client supplied")
	}
	o.Client = client
	return nil
}

// SetEndpointURI sets the URI of the VMP service endpoint.
func (o *Service) SetEndpointURI(uri string) error {
	u, err := url.Parse(uri)
	if err != nil {
		return fmt.Errorf("malformed URI: %w", err)
	}

	if !u.IsAbs() {
		return fmt.Errorf("URI is not absolute: %q", uri)
	}

	o.EndPointURI = u

	return nil
}

// SetTenantID installs the tenant guardrail.
func (o *Service) SetTenantID(tenantID string) error {
	if err := common.CheckTenantID(tenantID); err != nil {
		return err
	}
	o.TenantID = tenantID
	return nil
}

// SetScopePrefix installs the scope-prefix guardrail.
func (o *Service) SetScopePrefix(scopePrefix string) error {
	if err := common.CheckScopePrefix(scopePrefix); err != nil {
		return err
	}
	o.ScopePrefix = scopePrefix
	return nil
}

// Close releases the connection resources held by the underlying client.
// The Service must not be used after Close.
func (o *Service) Close() {
	if o.Client != nil {
		o.Client.Close()
	}
}

// NewIdempotencyKey returns a fresh key for IngestRequest.IdempotencyKey.
func NewIdempotencyKey() string {
	return uuid.NewString()
}

func (o *Service) enforceTenant(tenantID string) error {
	if err := common.CheckTenantID(tenantID); err != nil {
		return err
	}

	if o.TenantID != "" && tenantID != o.TenantID {
		return &common.ValidationError{
			Msg: fmt.Sprintf(
				"tenant_id mismatch: client is configured for %s but request used %s",
				o.TenantID, tenantID,
			),
		}
	}

	return nil
}

func (o *Service) enforceScope(scope string) error {
	if err := common.CheckScope(scope); err != nil {
		return err
	}

	if o.ScopePrefix != "" {
		return common.CheckScopeInPrefix(scope, o.ScopePrefix)
	}

	return nil
}

func (o *Service) getJSON(uri *url.URL, v interface{}) error {
	res, err := o.Client.GetResource(common.JSONMediaType, uri.String())
	if err != nil {
		return err
	}

	raw, err := common.ResultFromResponse(res)
	if err != nil {
		return err
	}

	if err := common.DecodeJSON(raw, v); err != nil {
		return fmt.Errorf("failure decoding response body: %w", err)
	}

	return nil
}

func (o *Service) postJSON(uri *url.URL, body interface{}, idempotencyKey string, v interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("could not serialize request body: %w", err)
	}

	res, err := o.Client.PostResourceWithKey(
		payload, common.JSONMediaType, common.JSONMediaType,
		uri.String(), idempotencyKey,
	)
	if err != nil {
		return err
	}

	raw, err := common.ResultFromResponse(res)
	if err != nil {
		return err
	}

	if err := common.DecodeJSON(raw, v); err != nil {
		return fmt.Errorf("failure decoding response body: %w", err)
	}

	return nil
}

func (o *Service) postPublicJSON(uri *url.URL, body interface{}, v interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("could not serialize request body: %w", err)
	}

	res, err := o.Client.PostPublicResource(
		payload, common.JSONMediaType, common.JSONMediaType, uri.String(),
	)
	if err != nil {
		return err
	}

	raw, err := common.ResultFromResponse(res)
	if err != nil {
		return err
	}

	if err := common.DecodeJSON(raw, v); err != nil {
		return fmt.Errorf("failure decoding response body: %w", err)
	}

	return nil
}

// WhoAmI introspects the identity bound to the configured API key.
func (o *Service) WhoAmI() (*WhoAmIResponse, error) {
	var j WhoAmIResponse

	if err := o.getJSON(o.EndPointURI.JoinPath("v1", "whoami"), &j); err != nil {
		return nil, err
	}

	return &j, nil
}
