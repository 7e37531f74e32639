// Copyright 2024 Contributors to the Vemorak project.
// SPDX-License-Identifier: Apache-2.0
package auth

// NullAuthenticator attaches no credentials. It is used for the offline
// bundle-verification endpoints, which are explicitly unauthenticated.
type NullAuthenticator struct{}

func (o *NullAuthenticator) Configure(cfg map[string]interface{}) error {
	return nil
}

func (o *NullAuthenticator) EncodeHeader() (string, error) {
	return "", nil
}
