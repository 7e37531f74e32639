// Copyright 2024 Contributors to the Vemorak project.
// SPDX-License-Identifier: Apache-2.0

package provisioning

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/vemorak/apiclient/auth"
	"github.com/vemorak/apiclient/common"
)

// Service is the interface to the VMP API-key lifecycle operations. It
// authenticates with a console provisioning token, a separate credential
// from the tenant API keys it manages.
type Service struct {
	// Client is the underlying client used for HTTP requests.
	Client *common.Client

	// EndPointURI is the top-level service API URL. Individual operation
	// endpoints are relative to this.
	EndPointURI *url.URL
}

// NewService creates a new Service instance for the VMP endpoint at uri,
// authenticating with the supplied console provisioning token.
func NewService(uri, provisionToken string) (*Service, error) {
	if err := common.CheckNonEmpty("provision_token", provisionToken); err != nil {
		return nil, err
	}

	s := Service{Client: common.NewClient(&auth.BearerAuthenticator{Token: provisionToken})}

	if err := s.SetEndpointURI(uri); err != nil {
		return nil, err
	}

	return &s, nil
}

// NewTLSService is NewService over a TLS transport trusting the system roots
// plus the certs found at certPaths.
func NewTLSService(uri, provisionToken string, certPaths []string) (*Service, error) {
	s, err := NewService(uri, provisionToken)
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

// Close releases the connection resources held by the underlying client.
// The Service must not be used after Close.
func (o *Service) Close() {
	if o.Client != nil {
		o.Client.Close()
	}
}

// CreateAPIKey provisions a new tenant-scoped API key. The response carries
// the key secret; it is returned only at creation time.
func (o *Service) CreateAPIKey(req CreateKeyRequest) (*CreateKeyResponse, error) {
	if err := common.CheckTenantID(req.TenantID); err != nil {
		return nil, err
	}
	if req.ScopePrefix != "" {
		if err := common.CheckScopePrefix(req.ScopePrefix); err != nil {
			return nil, err
		}
	}

	var j CreateKeyResponse

	uri := o.EndPointURI.JoinPath("v1", "admin", "api-keys")
	if err := o.postJSON(uri, req, &j); err != nil {
		return nil, err
	}

	return &j, nil
}

// RevokeAPIKey revokes a previously created key by its id.
func (o *Service) RevokeAPIKey(keyID string) (*RevokeKeyResponse, error) {
	if err := common.CheckUUIDLike("id", keyID); err != nil {
		return nil, err
	}

	var j RevokeKeyResponse

	uri := o.EndPointURI.JoinPath("v1", "admin", "api-keys", "revoke")
	if err := o.postJSON(uri, RevokeKeyRequest{ID: keyID}, &j); err != nil {
		return nil, err
	}

	return &j, nil
}

// ListAPIKeys lists a tenant's keys. A zero limit leaves paging to the
// server.
func (o *Service) ListAPIKeys(tenantID string, limit int) (*ListKeysResponse, error) {
	if err := common.CheckTenantID(tenantID); err != nil {
		return nil, err
	}
	if limit != 0 {
		if err := common.CheckLimit(limit); err != nil {
			return nil, err
		}
	}

	uri := o.EndPointURI.JoinPath("v1", "admin", "api-keys")

	vals := url.Values{}
	vals.Set("tenant_id", tenantID)
	if limit != 0 {
		vals.Set("limit", strconv.Itoa(limit))
	}
	uri.RawQuery = vals.Encode()

	res, err := o.Client.GetResource(common.JSONMediaType, uri.String())
	if err != nil {
		return nil, err
	}

	raw, err := common.ResultFromResponse(res)
	if err != nil {
		return nil, err
	}

	var j ListKeysResponse
	if err := common.DecodeJSON(raw, &j); err != nil {
		return nil, fmt.Errorf("failure decoding response body: %w", err)
	}

	return &j, nil
}

func (o *Service) postJSON(uri *url.URL, body interface{}, v interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("could not serialize request body: %w", err)
	}

	res, err := o.Client.PostResource(
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
