// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package itemhttp

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/xmidt-org/httpaux"
	"github.com/xmidt-org/itemdemo"
)

// ServerKey is the configuration key from which ServerConfig is unmarshaled.
const ServerKey = "server"

// ServerConfig holds the unmarshaled http.Server settings.
type ServerConfig struct {
	// Network is the tcp network to listen on.  The default is "tcp".
	Network string

	// Address is the bind address of the server.  If unset, the server binds to
	// an available loopback port.  CaptureListenAddress can be used to obtain
	// the actual address.
	Address string

	// ReadTimeout corresponds to http.Server.ReadTimeout
	ReadTimeout time.Duration

	// ReadHeaderTimeout corresponds to http.Server.ReadHeaderTimeout
	ReadHeaderTimeout time.Duration

	// WriteTimeout corresponds to http.Server.WriteTimeout
	WriteTimeout time.Duration

	// IdleTimeout corresponds to http.Server.IdleTimeout
	IdleTimeout time.Duration

	// MaxHeaderBytes corresponds to http.Server.MaxHeaderBytes
	MaxHeaderBytes int

	// KeepAlive corresponds to net.ListenConfig.KeepAlive
	KeepAlive time.Duration

	// Header supplies HTTP headers to emit on every response from this server
	Header http.Header

	// Compress enables gzip compression of responses for clients that accept it
	Compress bool
}

// NewServer creates an *http.Server from this configuration.  The returned
// server has no handler.
func (sc ServerConfig) NewServer() *http.Server {
	return &http.Server{
		Addr:              sc.Address,
		ReadTimeout:       sc.ReadTimeout,
		ReadHeaderTimeout: sc.ReadHeaderTimeout,
		WriteTimeout:      sc.WriteTimeout,
		IdleTimeout:       sc.IdleTimeout,
		MaxHeaderBytes:    sc.MaxHeaderBytes,
	}
}

// Apply decorates the server's handler so that every response carries the
// configured Header.  A server without a handler is given http.DefaultServeMux,
// as net/http would use.  If no headers are configured, the server is left alone.
func (sc ServerConfig) Apply(s *http.Server) error {
	if len(sc.Header) == 0 {
		return nil
	}

	var (
		header = httpaux.NewHeader(sc.Header)
		next   = itemdemo.Safe[http.Handler](s.Handler, http.DefaultServeMux)
	)

	s.Handler = http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
		header.SetTo(response.Header())
		next.ServeHTTP(response, request)
	})

	return nil
}

// Listen is the ListenerFactory implementation driven by ServerConfig
func (sc ServerConfig) Listen(ctx context.Context, s *http.Server) (net.Listener, error) {
	return DefaultListenerFactory{
		ListenConfig: net.ListenConfig{
			KeepAlive: sc.KeepAlive,
		},
		Network: sc.Network,
	}.Listen(ctx, s)
}
