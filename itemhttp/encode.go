// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package itemhttp

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// ContentTypeJSON is the default response encoding
	ContentTypeJSON = "application/json"

	// ContentTypeYAML is used when the client's Accept header asks for YAML
	ContentTypeYAML = "application/yaml"

	// ContentTypeText is used for plain text responses
	ContentTypeText = "text/plain; charset=utf-8"
)

// CodeInternal is reported for errors that carry no code of their own.
const CodeInternal = "INTERNAL_ERROR"

var yamlMediaTypes = map[string]bool{
	"application/yaml":   true,
	"application/x-yaml": true,
	"text/yaml":          true,
	"text/x-yaml":        true,
}

// Negotiate chooses the response content type from the request's Accept header.
// YAML is chosen only when a YAML media type is listed; everything else,
// including a missing header, gets JSON.
func Negotiate(r *http.Request) string {
	for _, accept := range r.Header.Values("Accept") {
		for _, part := range strings.Split(accept, ",") {
			mediaType, _, err := mime.ParseMediaType(strings.TrimSpace(part))
			if err == nil && yamlMediaTypes[mediaType] {
				return ContentTypeYAML
			}
		}
	}

	return ContentTypeJSON
}

// Marshal encodes v as the given content type, which must be one of the
// types returned by Negotiate.
func Marshal(contentType string, v interface{}) ([]byte, error) {
	if contentType == ContentTypeYAML {
		return yaml.Marshal(v)
	}

	return json.Marshal(v)
}

// WriteResponse encodes v per Negotiate and writes it with the given status.
// If encoding fails, an error response is written instead and the encoding
// error is returned.
func WriteResponse(w http.ResponseWriter, r *http.Request, status int, v interface{}) error {
	contentType := Negotiate(r)
	body, err := Marshal(contentType, v)
	if err != nil {
		// the marshal error is the one worth reporting
		_ = WriteError(w, r, err)
		return err
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)
	_, err = w.Write(body)
	return err
}

// WriteText writes a plain text response.
func WriteText(w http.ResponseWriter, status int, text string) error {
	w.Header().Set("Content-Type", ContentTypeText)
	w.Header().Set("Content-Length", strconv.Itoa(len(text)))
	w.WriteHeader(status)
	_, err := w.Write([]byte(text))
	return err
}

// ErrorResponse is the JSON body written for every error.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"requestId,omitempty"`
}

type statusCoder interface {
	StatusCode() int
}

type errorCoder interface {
	ErrorCode() string
}

// StatusCodeFor returns the HTTP status for an error.  Errors that expose a
// StatusCode() method anywhere in their chain use it; all others are 500.
func StatusCodeFor(err error) int {
	var sc statusCoder
	if errors.As(err, &sc) {
		return sc.StatusCode()
	}

	return http.StatusInternalServerError
}

// ErrorCodeFor returns the stable client-visible code for an error.
func ErrorCodeFor(err error) string {
	var ec errorCoder
	if errors.As(err, &ec) {
		return ec.ErrorCode()
	}

	return CodeInternal
}

// WriteError writes err as an ErrorResponse.  Error bodies are always JSON.
// The returned error is from writing the body.
func WriteError(w http.ResponseWriter, r *http.Request, err error) error {
	body, _ := json.Marshal(ErrorResponse{
		Error:     err.Error(),
		Code:      ErrorCodeFor(err),
		RequestID: GetRequestID(r.Context()),
	})

	w.Header().Set("Content-Type", ContentTypeJSON)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(StatusCodeFor(err))
	_, werr := w.Write(body)
	return werr
}
