// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package itemdemo

import (
	"errors"
	"net/http"
	"strconv"
)

// ErrNotFound is the sentinel matched by every *NotFoundError via errors.Is.
var ErrNotFound = errors.New("item not found")

// NotFoundError indicates that a Dataset has no entry for a key.
type NotFoundError struct {
	// Key is the identifier that was looked up
	Key string
}

func (nfe *NotFoundError) Error() string {
	return "no item with key " + strconv.Quote(nfe.Key)
}

// Is allows errors.Is(err, ErrNotFound) to match any NotFoundError.
func (nfe *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// StatusCode returns the HTTP status for a missing item, which is always 404.
func (nfe *NotFoundError) StatusCode() int {
	return http.StatusNotFound
}

// ErrorCode returns the stable code reported to HTTP clients.
func (nfe *NotFoundError) ErrorCode() string {
	return "NOT_FOUND"
}
