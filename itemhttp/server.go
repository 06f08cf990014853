// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package itemhttp

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/xmidt-org/itemdemo"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// ListenerGroup is the fx value group from which BindServer takes
// ListenerConstructors that decorate the server's listener.
const ListenerGroup = "itemhttp.listeners"

// DefaultServerConfig is the prototype unmarshaled by Provide.  Configuration
// only needs to supply the values that differ.
var DefaultServerConfig = ServerConfig{
	Address: ":8080",
}

// ServerIn is the set of dependencies for NewServer.
type ServerIn struct {
	fx.In

	// Config is the unmarshaled server configuration
	Config ServerConfig

	// Router holds the routes served
	Router *mux.Router

	// Logger is the required application logger
	Logger *zap.Logger

	// Options are extra server options, applied after the built-in ones
	Options []Option[http.Server] `group:"itemhttp.server.options"`
}

// NewServer creates the *http.Server: the router decorated by NewChain, the
// configured response headers, an ErrorLog bridged to zap, and request
// contexts that carry the logger, annotated with the listen address.
func NewServer(in ServerIn) (*http.Server, error) {
	s := in.Config.NewServer()
	s.Handler = NewChain(in.Config, in.Logger).Then(in.Router)

	return ApplyOptions(
		s,
		append(
			[]Option[http.Server]{
				ErrorLog(zap.NewStdLog(in.Logger.Named("http"))),
				BaseContext(
					func(ctx context.Context, l net.Listener) context.Context {
						return WithLogger(ctx, in.Logger.With(zap.Stringer("listenAddress", l.Addr())))
					},
				),
				OptionFunc[http.Server](in.Config.Apply),
			},
			in.Options...,
		)...,
	)
}

// BindIn is the set of dependencies for BindServer.
type BindIn struct {
	fx.In

	Config     ServerConfig
	Server     *http.Server
	Logger     *zap.Logger
	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner

	// Listeners decorate the server's listener, e.g. CaptureListenAddress in tests
	Listeners []ListenerConstructor `group:"itemhttp.listeners"`
}

// logListenAddress reports the address a listener was actually bound to.
func logListenAddress(l *zap.Logger) ListenerConstructor {
	return func(next net.Listener) net.Listener {
		l.Info("server listening", zap.Stringer("address", next.Addr()))
		return next
	}
}

// BindServer binds the server to the fx.App lifecycle.  The server starts
// accepting when the app starts and shuts down gracefully when the app stops.
// If the accept loop exits on its own, the app is shut down.
func BindServer(in BindIn) {
	var (
		chain = NewListenerChain(logListenAddress(in.Logger)).Append(in.Listeners...)
		exit  = ShutdownOnExit(in.Shutdowner, fx.ExitCode(itemdemo.DefaultErrorExitCode))
	)

	in.Lifecycle.Append(fx.Hook{
		OnStart: ServerOnStart(
			in.Server,
			chain.Factory(in.Config),
			func(err error) {
				if !errors.Is(err, http.ErrServerClosed) {
					in.Logger.Error("server exited", zap.Error(err))
				}
			},
			exit,
		),
		OnStop: in.Server.Shutdown,
	})
}

// Provide assembles the item server within an fx.App.  It requires an
// itemdemo.Unmarshaler and a *zap.Logger, typically from itemdemo.ForViper
// and itemdemo.Logger.
func Provide() fx.Option {
	return fx.Options(
		fx.Provide(
			itemdemo.UnmarshalKey(ServerKey, DefaultServerConfig),
			itemdemo.UnmarshalKey(PprofKey, PprofConfig{}),
			NewHandler,
			NewRouter,
			NewServer,
		),
		fx.Invoke(BindServer),
	)
}
