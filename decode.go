// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package itemdemo

import (
	"encoding"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Exact is a viper.DecoderConfigOption that fails decoding when the
// configuration holds keys that the target struct does not.
func Exact(dc *mapstructure.DecoderConfig) {
	dc.ErrorUnused = true
}

// DefaultDecodeHooks sets the decode hooks every unmarshal in this module
// relies upon: durations and comma-separated slices from strings, plus
// TextUnmarshalerHookFunc.
func DefaultDecodeHooks(dc *mapstructure.DecoderConfig) {
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		TextUnmarshalerHookFunc,
	)
}

var textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()

// TextUnmarshalerHookFunc is a mapstructure.DecodeHookFunc that converts string
// values with the destination's encoding.TextUnmarshaler.  Both T, where *T is the
// unmarshaler, and *T are supported.  zapcore.Level is the typical target.
//
// Anything else is returned unchanged, per the mapstructure.DecodeHookFunc contract.
func TextUnmarshalerHookFunc(_, to reflect.Type, src interface{}) (interface{}, error) {
	text, ok := src.(string)
	if !ok {
		return src, nil
	}

	switch {
	case to.Kind() != reflect.Ptr && reflect.PtrTo(to).Implements(textUnmarshalerType):
		ptr := reflect.New(to)
		err := ptr.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(text))
		return ptr.Elem().Interface(), err

	case to.Kind() == reflect.Ptr && to.Elem().Kind() != reflect.Ptr && to.Implements(textUnmarshalerType):
		ptr := reflect.New(to.Elem())
		tu := ptr.Interface().(encoding.TextUnmarshaler)
		return tu, tu.UnmarshalText([]byte(text))
	}

	return src, nil
}
