// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package itemhttp

import (
	"net/http"

	"github.com/xmidt-org/itemdemo"
	"go.uber.org/zap"
)

// HelloText is the body of every response from the root route.  The casing is intentional.
const HelloText = "helloWOrld"

// Handler serves the catalog routes.  Handler holds no mutable state, so a
// single instance is safe for concurrent use.
type Handler struct {
	// Dataset builds the Dataset for each request.  If unset, itemdemo.BuildDataset is used.
	Dataset func() itemdemo.Dataset

	// Logger is used to report failures writing responses.  If unset, nothing is logged.
	Logger *zap.Logger
}

// NewHandler creates the Handler for the fixed demo catalog.
func NewHandler(l *zap.Logger) Handler {
	return Handler{
		Dataset: itemdemo.BuildDataset,
		Logger:  l,
	}
}

// logger prefers the request context's logger, falling back to h.Logger.
func (h Handler) logger(request *http.Request) *zap.Logger {
	return GetLogger(request.Context(), itemdemo.Safe(h.Logger, zap.NewNop()))
}

func (h Handler) dataset() itemdemo.Dataset {
	if h.Dataset != nil {
		return h.Dataset()
	}

	return itemdemo.BuildDataset()
}

// MapString assembles a fresh itemdemo.Response and writes it in the
// negotiated encoding.  A Dataset without the selected key results in a 404.
func (h Handler) MapString(response http.ResponseWriter, request *http.Request) {
	r, err := itemdemo.Assemble(h.dataset())
	if err != nil {
		h.logger(request).Warn(
			"unable to assemble item response",
			zap.String("requestID", GetRequestID(request.Context())),
			zap.Error(err),
		)

		err = WriteError(response, request, err)
	} else {
		err = WriteResponse(response, request, http.StatusOK, r)
	}

	if err != nil {
		h.logger(request).Error(
			"unable to write item response",
			zap.String("requestID", GetRequestID(request.Context())),
			zap.Error(err),
		)
	}
}

// Hello writes HelloText as plain text.
func (h Handler) Hello(response http.ResponseWriter, request *http.Request) {
	if err := WriteText(response, http.StatusOK, HelloText); err != nil {
		h.logger(request).Error("unable to write hello response", zap.Error(err))
	}
}
