// Copyright 2024 Contributors to the Vemorak project.
// SPDX-License-Identifier: Apache-2.0
package auth

// IAuthenticator is implemented by the supported authentication methods.
// Configure initializes the authenticator from a generic config map.
// EncodeHeader returns the value of the Authorization header to be attached
// to outgoing requests; an empty string means no header is attached.
type IAuthenticator interface {
	Configure(cfg map[string]interface{}) error
	EncodeHeader() (string, error)
}
