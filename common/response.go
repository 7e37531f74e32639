// Copyright 2024 Contributors to the Vemorak project.
// SPDX-License-Identifier: Apache-2.0

package common

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// JSONMediaType is the media type of every VMP request and response body.
const JSONMediaType = "application/json"

// ResultFromResponse turns a raw HTTP response into the JSON document to be
// decoded by the endpoint-specific mapping, or into an *APIError.
//
// The VMP error contract on non-2xx is {"error": "<message>"} optionally
// carrying a structured "details" field; the body may also be plain text, in
// which case the trimmed text is the message, or empty, in which case the
// message is "unknown error". A 2xx response with a blank body yields the
// canonical empty object.
func ResultFromResponse(res *http.Response) ([]byte, error) {
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, apiErrorFromBody(res, raw)
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return []byte("{}"), nil
	}

	return raw, nil
}

// DecodeJSON decodes a document previously returned by ResultFromResponse.
func DecodeJSON(raw []byte, v interface{}) error {
	return json.Unmarshal(raw, v)
}

func apiErrorFromBody(res *http.Response, raw []byte) error {
	apiErr := &APIError{
		StatusCode: res.StatusCode,
		RawBody:    string(raw),
	}

	if msg, ok := problemMessage(res, raw); ok {
		apiErr.Message = msg
		return apiErr
	}

	var contract struct {
		Error   string      `json:"error"`
		Details interface{} `json:"details"`
	}

	if json.Unmarshal(raw, &contract) == nil && contract.Error != "" {
		apiErr.Message = contract.Error
		apiErr.Details = contract.Details
		return apiErr
	}

	text := strings.TrimSpace(string(raw))
	if text == "" {
		text = "unknown error"
	}
	apiErr.Message = text

	return apiErr
}
