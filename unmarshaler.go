// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package itemdemo

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	// ErrNilViper is returned to the fx.App when the externally supplied Viper
	// instance is nil
	ErrNilViper = errors.New("the viper instance cannot be nil")
)

// Unmarshaler is the strategy used to unmarshal configuration into objects.
// An unnamed fx.App component that implements this interface is required by
// the constructors in this module.
type Unmarshaler interface {
	// Unmarshal reads the entire configuration into the given value
	Unmarshal(value interface{}) error

	// UnmarshalKey reads configuration data from a key into the given value
	UnmarshalKey(key string, value interface{}) error
}

// ViperUnmarshaler is the standard Unmarshaler.  It couples a Viper instance
// with zero or more decoder options.
type ViperUnmarshaler struct {
	// Viper is the required Viper instance to which all unmarshal operations are delegated
	Viper *viper.Viper

	// Options is the optional slice of viper.DecoderConfigOptions passed to all
	// unmarshal calls
	Options []viper.DecoderConfigOption

	// Logger receives a debug entry for each unmarshal.  If nil, nothing is logged.
	Logger *zap.Logger
}

func (vu ViperUnmarshaler) logger() *zap.Logger {
	return Safe(vu.Logger, zap.NewNop())
}

// Unmarshal implements Unmarshaler
func (vu ViperUnmarshaler) Unmarshal(value interface{}) error {
	vu.logger().Debug("unmarshal", zap.String("type", fmt.Sprintf("%T", value)))
	return vu.Viper.Unmarshal(value, vu.Options...)
}

// UnmarshalKey implements Unmarshaler
func (vu ViperUnmarshaler) UnmarshalKey(key string, value interface{}) error {
	vu.logger().Debug("unmarshal key", zap.String("key", key), zap.String("type", fmt.Sprintf("%T", value)))
	return vu.Viper.UnmarshalKey(key, value, vu.Options...)
}

// ViperUnmarshalerIn is the set of dependencies required to build a ViperUnmarshaler.
// Note that the actual viper instance is supplied by ForViper.
type ViperUnmarshalerIn struct {
	fx.In

	// Options is the optional slice of viper.DecoderConfigOption that will be
	// applied to every unmarshal or unmarshal key operation
	Options []viper.DecoderConfigOption `optional:"true"`

	// Logger is the optional application logger
	Logger *zap.Logger `optional:"true"`
}

// ForViper supplies an externally created Viper instance to the enclosing fx.App
// and provides an Unmarshaler component backed by it.
//
// The decoder options used are those passed here followed by an optional
// []viper.DecoderConfigOption component.
func ForViper(v *viper.Viper, o ...viper.DecoderConfigOption) fx.Option {
	if v == nil {
		return fx.Error(ErrNilViper)
	}

	return fx.Options(
		fx.Supply(v),
		fx.Provide(
			func(in ViperUnmarshalerIn) Unmarshaler {
				return ViperUnmarshaler{
					Viper: v,
					Options: append(
						append([]viper.DecoderConfigOption{}, o...),
						in.Options...,
					),
					Logger: in.Logger,
				}
			},
		),
	)
}

// UnmarshalKey returns an fx constructor that unmarshals a T from the given key.
// The prototype is copied and holds the defaults; keys absent from the
// configuration leave the corresponding prototype fields untouched.
//
// Reference types inside the prototype, such as maps, are shared with every copy.
// Prototypes should therefore leave them nil.
//
//	fx.Provide(
//	  itemdemo.UnmarshalKey("server", itemhttp.ServerConfig{Address: ":8080"}),
//	)
func UnmarshalKey[T any](key string, prototype T) func(Unmarshaler) (T, error) {
	return func(u Unmarshaler) (T, error) {
		v := prototype
		if err := u.UnmarshalKey(key, &v); err != nil {
			var zero T
			return zero, fmt.Errorf("unable to unmarshal key [%s]: %w", key, err)
		}

		return v, nil
	}
}
