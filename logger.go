// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package itemdemo

import (
	"errors"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrNilLogger is returned to the fx.App when Logger is passed a nil logger.
var ErrNilLogger = errors.New("the logger cannot be nil")

// LogConfig is the unmarshaled logging configuration.
type LogConfig struct {
	// Level is the minimum enabled level, e.g. "debug" or "warn".  The default is info.
	Level zapcore.Level

	// Development switches to zap's development defaults:  console encoding,
	// stack traces on warnings, and DPanic panics.
	Development bool

	// Encoding overrides the encoder, either "json" or "console"
	Encoding string

	// OutputPaths overrides where log entries are written.  The default is stderr.
	OutputPaths []string

	// ErrorOutputPaths overrides where zap's internal errors are written
	ErrorOutputPaths []string
}

// NewLogger builds a *zap.Logger from this configuration.
func (lc LogConfig) NewLogger() (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if lc.Development {
		zc = zap.NewDevelopmentConfig()
	}

	zc.Level = zap.NewAtomicLevelAt(lc.Level)
	if len(lc.Encoding) > 0 {
		zc.Encoding = lc.Encoding
	}

	if len(lc.OutputPaths) > 0 {
		zc.OutputPaths = lc.OutputPaths
	}

	if len(lc.ErrorOutputPaths) > 0 {
		zc.ErrorOutputPaths = lc.ErrorOutputPaths
	}

	return zc.Build()
}

// Logger supplies l as the global, unnamed *zap.Logger component and routes
// the fx.App's own event output through it.
func Logger(l *zap.Logger) fx.Option {
	if l == nil {
		return fx.Error(ErrNilLogger)
	}

	return fx.Options(
		fx.Supply(l),
		fx.WithLogger(
			func() fxevent.Logger {
				return &fxevent.ZapLogger{Logger: l}
			},
		),
	)
}
