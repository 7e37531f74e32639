// Copyright 2024 Contributors to the Vemorak project.
// SPDX-License-Identifier: Apache-2.0
package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOauth2_Configure(t *testing.T) {
	var oa2a Oauth2Authenticator

	err := oa2a.Configure(map[string]interface{}{
		"client_id":     "vmp-console",
		"client_secret": "deadbeef",
		"username":      "user1",
		"password":      "Passw0rd!",
		"token_url":     "http://idp.example/token",
	})
	require.NoError(t, err)
	assert.Equal(t, "user1", oa2a.Username)
	assert.Equal(t, "Passw0rd!", oa2a.Password)
	assert.Equal(t, "vmp-console", oa2a.ClientID)
	assert.Equal(t, "deadbeef", oa2a.ClientSecret)
	assert.Equal(t, "http://idp.example/token", oa2a.TokenURL)

	err = oa2a.Configure(map[string]interface{}{
		"client_id":     "vmp-console",
		"client_secret": "deadbeef",
		"username":      "user1",
		"token_url":     "http://idp.example/token",
	})
	assert.EqualError(t, err, "missing password")

	err = oa2a.Configure(map[string]interface{}{
		"client_id":     "vmp-console",
		"client_secret": "deadbeef",
		"password":      "Passw0rd!",
		"token_url":     "http://idp.example/token",
	})
	assert.EqualError(t, err, "missing username")

	err = oa2a.Configure(map[string]interface{}{
		"client_id":     "vmp-console",
		"client_secret": "deadbeef",
		"username":      "user1",
		"password":      "Passw0rd!",
		"token_url":     "http://idp.example/token",
		"full name":     "User One",
	})
	assert.EqualError(t, err, "unexpected fields in config: full name")
}
