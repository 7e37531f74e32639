// Copyright 2024 Contributors to the Vemorak project.
// SPDX-License-Identifier: Apache-2.0

package common

import (
	"regexp"
	"strings"
	"unicode"
)

// ScopeSeparator is the namespace separator every scope must contain
// ("namespace:name") and every scope prefix must end with.
const ScopeSeparator = ":"

// Server identifiers are not guaranteed to be strict RFC 4122 UUIDs, so the
// check stays deliberately loose: hex digits and dashes, at least 16 chars.
var uuidLike = regexp.MustCompile(`^[0-9a-fA-F-]{16,}$`)

// CheckNonEmpty verifies that v is a non-blank string.
func CheckNonEmpty(name, v string) error {
	if strings.TrimSpace(v) == "" {
		return validationErrorf("%s must be a non-empty string", name)
	}

	return nil
}

// CheckTenantID verifies the shape of a tenant identifier.
func CheckTenantID(tenantID string) error {
	if err := CheckNonEmpty("tenant_id", tenantID); err != nil {
		return err
	}

	if len(tenantID) > 128 {
		return validationErrorf("tenant_id must be 1..128 chars")
	}

	if strings.IndexFunc(tenantID, unicode.IsSpace) != -1 {
		return validationErrorf("tenant_id must not contain spaces")
	}

	return nil
}

// CheckScope verifies the shape of a scope ("namespace:name").
func CheckScope(scope string) error {
	if err := CheckNonEmpty("scope", scope); err != nil {
		return err
	}

	if len(scope) > 128 {
		return validationErrorf("scope must be 1..128 chars")
	}

	if !strings.Contains(scope, ScopeSeparator) {
		return validationErrorf("scope must contain %q for namespacing", ScopeSeparator)
	}

	return nil
}

// CheckScopePrefix verifies the shape of a scope-prefix guardrail.
func CheckScopePrefix(scopePrefix string) error {
	if err := CheckNonEmpty("scope_prefix", scopePrefix); err != nil {
		return err
	}

	if !strings.HasSuffix(scopePrefix, ScopeSeparator) {
		return validationErrorf("scope_prefix must end with %q (example: \"user:\")", ScopeSeparator)
	}

	return nil
}

// CheckScopeInPrefix verifies that scope falls under the prefix guardrail.
func CheckScopeInPrefix(scope, scopePrefix string) error {
	if !strings.HasPrefix(scope, scopePrefix) {
		return validationErrorf("scope outside key prefix")
	}

	return nil
}

// CheckUUIDLike verifies that v looks like a server-issued identifier.
func CheckUUIDLike(name, v string) error {
	if err := CheckNonEmpty(name, v); err != nil {
		return err
	}

	if !uuidLike.MatchString(v) {
		return validationErrorf("%s must look like a UUID", name)
	}

	return nil
}

// CheckLimit verifies a listing page limit.
func CheckLimit(limit int) error {
	if limit < 1 || limit > 500 {
		return validationErrorf("limit must be within 1..500")
	}

	return nil
}
