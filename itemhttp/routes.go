// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package itemhttp

import (
	"net/http"

	"github.com/gorilla/mux"
)

const (
	// MapStringPath is the route for the assembled item response
	MapStringPath = "/mapString"

	// RootPath is the route for the plain text greeting
	RootPath = "/"
)

// Routes adds the catalog routes to r.  Both accept only GET, so gorilla/mux
// answers other methods with a 405.
func Routes(r *mux.Router, h Handler) {
	r.Path(MapStringPath).Methods(http.MethodGet).HandlerFunc(h.MapString)
	r.Path(RootPath).Methods(http.MethodGet).HandlerFunc(h.Hello)
}

// NewRouter creates a router with the catalog routes and, if enabled, the
// pprof routes.
func NewRouter(h Handler, pc PprofConfig) *mux.Router {
	r := mux.NewRouter()
	Routes(r, h)
	pc.Routes(r)
	return r
}
