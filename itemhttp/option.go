// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package itemhttp

import (
	"context"
	"log"
	"net"
	"net/http"

	"go.uber.org/multierr"
)

// ServerOptionGroup is the fx value group from which NewServer takes
// additional Option[http.Server] components.
const ServerOptionGroup = "itemhttp.server.options"

// Option represents something that can modify a target object.
type Option[T any] interface {
	Apply(*T) error
}

// OptionFunc is a closure type that can act as an Option.
type OptionFunc[T any] func(*T) error

func (of OptionFunc[T]) Apply(t *T) error {
	return of(t)
}

// Options is an aggregate Option that allows several options to
// be grouped together.
type Options[T any] []Option[T]

// Apply applies every option in this slice, even after failures, and returns
// the combined errors.
func (o Options[T]) Apply(t *T) (err error) {
	for _, opt := range o {
		err = multierr.Append(err, opt.Apply(t))
	}

	return
}

// ApplyOptions applies several options to a target, returning that same target.
func ApplyOptions[T any](t *T, opts ...Option[T]) (*T, error) {
	return t, Options[T](opts).Apply(t)
}

// ErrorLog sets http.Server.ErrorLog, overwriting any previous value.
func ErrorLog(l *log.Logger) Option[http.Server] {
	return OptionFunc[http.Server](func(s *http.Server) error {
		s.ErrorLog = l
		return nil
	})
}

// BaseContext sets http.Server.BaseContext.  Each builder receives the context
// produced by the one before it, starting with context.Background().
//
// If builders is empty, the returned option does nothing.
func BaseContext(builders ...func(context.Context, net.Listener) context.Context) Option[http.Server] {
	return OptionFunc[http.Server](func(s *http.Server) error {
		if len(builders) > 0 {
			s.BaseContext = func(l net.Listener) context.Context {
				ctx := context.Background()
				for _, f := range builders {
					ctx = f(ctx, l)
				}

				return ctx
			}
		}

		return nil
	})
}
