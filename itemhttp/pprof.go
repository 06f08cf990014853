// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package itemhttp

import (
	"net/http/pprof"
	rpprof "runtime/pprof"
	"strings"

	"github.com/gorilla/mux"
)

const (
	// PprofKey is the configuration key from which PprofConfig is unmarshaled.
	PprofKey = "pprof"

	// DefaultPprofPathPrefix is used when PprofConfig.PathPrefix is unset
	DefaultPprofPathPrefix = "/debug/pprof"
)

// PprofConfig controls whether the net/http/pprof handlers are routed.
type PprofConfig struct {
	// Enabled turns on the pprof routes.  They are off by default.
	Enabled bool

	// PathPrefix is the URL prefix for the pprof routes.  If unset,
	// DefaultPprofPathPrefix is used.
	PathPrefix string
}

// prefix returns the normalized path prefix, without any trailing slashes.
func (pc PprofConfig) prefix() string {
	prefix := pc.PathPrefix
	if len(prefix) == 0 {
		prefix = DefaultPprofPathPrefix
	}

	return strings.TrimRight(prefix, "/")
}

// Routes adds the pprof handlers to r if this configuration is enabled.
// Both the bare prefix and the prefix with a trailing slash serve the index.
func (pc PprofConfig) Routes(r *mux.Router) {
	if !pc.Enabled {
		return
	}

	prefix := pc.prefix()
	r.HandleFunc(prefix, pprof.Index)
	ConfigurePprof(r.PathPrefix(prefix + "/").Subrouter())
}

// ConfigurePprof adds the pprof routes to a subrouter, e.g.
//
//	ConfigurePprof(router.PathPrefix("/foo/").Subrouter())
func ConfigurePprof(r *mux.Router) {
	r.Path("/").HandlerFunc(pprof.Index)
	r.Path("/cmdline").HandlerFunc(pprof.Cmdline)
	r.Path("/profile").HandlerFunc(pprof.Profile)
	r.Path("/symbol").HandlerFunc(pprof.Symbol)
	r.Path("/trace").HandlerFunc(pprof.Trace)

	// gorilla/mux matches paths exactly, so each named profile gets its own route
	for _, p := range rpprof.Profiles() {
		r.Path("/" + p.Name()).Handler(pprof.Handler(p.Name()))
	}
}
