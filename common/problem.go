// Copyright 2024 Contributors to the Vemorak project.
// SPDX-License-Identifier: Apache-2.0

package common

import (
	"encoding/json"
	"net/http"

	"github.com/moogar0880/problems"
)

// problemMessage extracts a message from an RFC 7807 problem document, which
// proxies in front of VMP may emit instead of the native error contract.
func problemMessage(res *http.Response, raw []byte) (string, bool) {
	if res.Header.Get("Content-Type") != problems.ProblemMediaType {
		return "", false
	}

	var prob problems.DefaultProblem

	if err := json.Unmarshal(raw, &prob); err != nil {
		return "", false
	}

	switch {
	case prob.Title != "" && prob.Detail != "":
		return prob.Title + ": " + prob.Detail, true
	case prob.Detail != "":
		return prob.Detail, true
	case prob.Title != "":
		return prob.Title, true
	default:
		return "", false
	}
}
