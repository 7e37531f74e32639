// Copyright 2024 Contributors to the Vemorak project.
// SPDX-License-Identifier: Apache-2.0

package auth

import "fmt"

// Method is the enumeration of authentication methods supported by the VMP
// service. It implements the pflag.Value interface.
type Method string

const (
	MethodPassthrough Method = "passthrough"
	MethodBearer      Method = "bearer"
	MethodOauth2      Method = "oauth2"
)

// String representation of the Method
func (o *Method) String() string {
	return string(*o)
}

// Set the value of the Method
func (o *Method) Set(v string) error {
	switch v {
	case "none", "passthrough":
		*o = MethodPassthrough
	case "bearer", "token":
		*o = MethodBearer
	case "oauth2":
		*o = MethodOauth2
	default:
		return fmt.Errorf("unexpected Method %q", v)
	}

	return nil
}

// Type returns the string representing the type name (used by pflag).
func (o *Method) Type() string {
	return "Method"
}

// NewAuthenticator returns a configured IAuthenticator for the specified
// method.
func NewAuthenticator(method Method, cfg map[string]interface{}) (IAuthenticator, error) {
	var a IAuthenticator

	switch method {
	case MethodPassthrough:
		a = &NullAuthenticator{}
	case MethodBearer:
		a = &BearerAuthenticator{}
	case MethodOauth2:
		a = &Oauth2Authenticator{}
	default:
		return nil, fmt.Errorf("unexpected Method %q", method)
	}

	if err := a.Configure(cfg); err != nil {
		return nil, err
	}

	return a, nil
}
