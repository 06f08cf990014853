// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package itemhttp

import (
	"context"
	"errors"
	"net"
	"net/http"

	"go.uber.org/fx"
)

// ListenerFactory is a strategy for creating net.Listener instances.  The server is
// passed because options may have changed it after construction.
//
// Implementations should listen on http.Server.Addr.  ServerConfig and
// DefaultListenerFactory are the built-in implementations.
type ListenerFactory interface {
	// Listen creates the appropriate net.Listener, binding to a TCP address in
	// the process
	Listen(context.Context, *http.Server) (net.Listener, error)
}

// ListenerFactoryFunc is a closure type that implements ListenerFactory
type ListenerFactoryFunc func(context.Context, *http.Server) (net.Listener, error)

// Listen implements ListenerFactory
func (lff ListenerFactoryFunc) Listen(ctx context.Context, s *http.Server) (net.Listener, error) {
	return lff(ctx, s)
}

// DefaultListenerFactory is the default implementation of ListenerFactory.  The
// zero value of this type is a valid factory.
type DefaultListenerFactory struct {
	// ListenConfig is the object used to create the net.Listener
	ListenConfig net.ListenConfig

	// Network is the network to listen on, which must always be a TCP network.
	// If not set, "tcp" is used.
	Network string
}

// Listen binds the server's address.  A server with no address is bound to
// an available loopback port, trying IPv4 first and then IPv6.
func (f DefaultListenerFactory) Listen(ctx context.Context, server *http.Server) (net.Listener, error) {
	network := f.Network
	if len(network) == 0 {
		network = "tcp"
	}

	if len(server.Addr) > 0 {
		return f.ListenConfig.Listen(ctx, network, server.Addr)
	}

	l, err := f.ListenConfig.Listen(ctx, "tcp", "127.0.0.1:0")
	if err != nil {
		l, err = f.ListenConfig.Listen(ctx, "tcp6", "[::1]:0")
	}

	return l, err
}

// ListenerConstructor is a decorator for net.Listener instances, applied after
// the ListenerFactory creates the listener.
type ListenerConstructor func(net.Listener) net.Listener

// ListenerChain is an immutable sequence of ListenerConstructors.  The zero value
// is a valid, empty chain that will not decorate anything.
type ListenerChain struct {
	c []ListenerConstructor
}

// NewListenerChain creates a chain from a sequence of constructors.  The constructors
// are always applied in the order presented here.
func NewListenerChain(c ...ListenerConstructor) ListenerChain {
	return ListenerChain{
		c: append([]ListenerConstructor{}, c...),
	}
}

// Append returns a new chain with more added to the end.  This chain is not modified.
func (lc ListenerChain) Append(more ...ListenerConstructor) ListenerChain {
	if len(more) == 0 {
		return lc
	}

	return ListenerChain{
		c: append(
			append([]ListenerConstructor{}, lc.c...),
			more...,
		),
	}
}

// Then decorates a listener.  The first constructor in the chain is the outermost
// decorator.
func (lc ListenerChain) Then(next net.Listener) net.Listener {
	for i := len(lc.c) - 1; i >= 0; i-- {
		next = lc.c[i](next)
	}

	return next
}

// Factory decorates a ListenerFactory so that each listener it creates passes
// through this chain.
func (lc ListenerChain) Factory(next ListenerFactory) ListenerFactory {
	if len(lc.c) == 0 {
		return next
	}

	return ListenerFactoryFunc(func(ctx context.Context, s *http.Server) (net.Listener, error) {
		listener, err := next.Listen(ctx, s)
		if err == nil {
			listener = lc.Then(listener)
		}

		return listener, err
	})
}

// CaptureListenAddress returns a ListenerConstructor that sends the actual network
// address of each listener to a channel, without decorating it.  Useful when the
// server binds an address such as "127.0.0.1:0".
func CaptureListenAddress(ch chan<- net.Addr) ListenerConstructor {
	return func(next net.Listener) net.Listener {
		ch <- next.Addr()
		return next
	}
}

// ServerExit is run with the error from Serve when a server's accept loop exits.
// A ServerExit must never panic.
type ServerExit func(error)

// ShutdownOnExit returns a ServerExit that shuts down the enclosing fx.App when
// the accept loop stops for any reason other than http.Server.Shutdown or Close.
func ShutdownOnExit(shutdowner fx.Shutdowner, opts ...fx.ShutdownOption) ServerExit {
	return func(err error) {
		if !errors.Is(err, http.ErrServerClosed) {
			shutdowner.Shutdown(opts...)
		}
	}
}

// Servable describes the behavior of an object that implements an accept loop.
// *http.Server implements this interface.
type Servable interface {
	// Serve executes an accept loop using the given listener.  This method
	// does not return until the listener is closed.
	Serve(net.Listener) error
}

// Serve runs an accept loop and then invokes each onExit with its result.
// This function is intended to run as a goroutine.
func Serve(s Servable, l net.Listener, onExit ...ServerExit) (err error) {
	defer func() {
		for _, f := range onExit {
			f(err)
		}
	}()

	err = s.Serve(l)
	return
}

// ServerOnStart returns an fx.Hook.OnStart closure that binds the server's listener
// and then starts its accept loop in a separate goroutine.
func ServerOnStart(s *http.Server, f ListenerFactory, onExit ...ServerExit) func(context.Context) error {
	return func(ctx context.Context) error {
		listener, err := f.Listen(ctx, s)
		if err != nil {
			return err
		}

		go Serve(s, listener, onExit...)
		return nil
	}
}
