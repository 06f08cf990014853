// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package itemhttp

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/justinas/alice"
	"github.com/klauspost/compress/gzhttp"
	"go.uber.org/zap"
)

// RequestIDHeader carries the request id on both requests and responses.
const RequestIDHeader = "X-Request-Id"

type requestIDKey struct{}

// GetRequestID returns the request id placed in the context by RequestID,
// or the empty string if there is none.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

type loggerKey struct{}

// WithLogger returns a context carrying l.  NewServer places the server's
// logger in every request context this way.
func WithLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// GetLogger returns the logger carried by ctx, or def if there is none.
func GetLogger(ctx context.Context, def *zap.Logger) *zap.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*zap.Logger); ok && l != nil {
		return l
	}

	return def
}

// RequestID is middleware that assigns each request an id, reusing the
// client's RequestIDHeader if supplied.  The id is echoed on the response and
// is available to handlers via GetRequestID.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
		id := request.Header.Get(RequestIDHeader)
		if len(id) == 0 {
			id = uuid.NewString()
		}

		response.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(
			response,
			request.WithContext(context.WithValue(request.Context(), requestIDKey{}, id)),
		)
	})
}

// statusWriter records the status code written through it.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (sw *statusWriter) WriteHeader(status int) {
	if sw.status == 0 {
		sw.status = status
	}

	sw.ResponseWriter.WriteHeader(status)
}

func (sw *statusWriter) Write(b []byte) (int, error) {
	if sw.status == 0 {
		sw.status = http.StatusOK
	}

	return sw.ResponseWriter.Write(b)
}

// Unwrap supports http.ResponseController
func (sw *statusWriter) Unwrap() http.ResponseWriter {
	return sw.ResponseWriter
}

// Logging returns middleware that logs one entry per request at info level.
// The request context's logger is preferred over l.
func Logging(l *zap.Logger) alice.Constructor {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
			var (
				start = time.Now()
				sw    = &statusWriter{ResponseWriter: response}
			)

			next.ServeHTTP(sw, request)
			GetLogger(request.Context(), l).Info(
				"request",
				zap.String("method", request.Method),
				zap.String("path", request.URL.Path),
				zap.Int("status", sw.status),
				zap.Duration("duration", time.Since(start)),
				zap.String("remoteAddr", request.RemoteAddr),
				zap.String("requestID", GetRequestID(request.Context())),
			)
		})
	}
}

// Recovery returns middleware that turns a handler panic into a 500 response.
// If the handler already wrote its header, the response is left as is and the
// panic is only logged.  http.ErrAbortHandler is repanicked so net/http can
// abort the connection.
func Recovery(l *zap.Logger) alice.Constructor {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
			sw := &statusWriter{ResponseWriter: response}
			defer func() {
				r := recover()
				if r == nil {
					return
				} else if r == http.ErrAbortHandler {
					panic(r)
				}

				logger := GetLogger(request.Context(), l)
				logger.Error(
					"handler panic",
					zap.Any("panic", r),
					zap.Stack("stack"),
					zap.Int("status", sw.status),
					zap.String("requestID", GetRequestID(request.Context())),
				)

				if sw.status != 0 {
					return
				}

				if err := WriteError(response, request, fmt.Errorf("internal server error: %v", r)); err != nil {
					logger.Error("unable to write panic response", zap.Error(err))
				}
			}()

			next.ServeHTTP(sw, request)
		})
	}
}

// Gzip compresses responses for clients that accept gzip.
func Gzip(next http.Handler) http.Handler {
	return gzhttp.GzipHandler(next)
}

// NewChain builds the request middleware for a server, outermost first:
// request ids, logging, panic recovery and, if configured, compression.
func NewChain(sc ServerConfig, l *zap.Logger) alice.Chain {
	chain := alice.New(RequestID, Logging(l), Recovery(l))
	if sc.Compress {
		chain = chain.Append(Gzip)
	}

	return chain
}
