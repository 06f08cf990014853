// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package itemdemo

import (
	"reflect"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestExact(t *testing.T) {
	var (
		assert = assert.New(t)
		dc     mapstructure.DecoderConfig

		o viper.DecoderConfigOption = Exact
	)

	o(&dc)
	assert.True(dc.ErrorUnused)
}

func TestDefaultDecodeHooks(t *testing.T) {
	type config struct {
		Timeout time.Duration
		Paths   []string
		Level   zapcore.Level
		Levels  []zapcore.Level
	}

	var (
		assert  = assert.New(t)
		require = require.New(t)

		v      = viper.New()
		actual config
	)

	v.SetConfigType("yaml")
	require.NoError(v.ReadConfig(strings.NewReader(`
timeout: 15s
paths: "stdout,/var/log/itemdemo.log"
level: warn
levels:
  - debug
  - error
`)))

	require.NoError(v.Unmarshal(&actual, DefaultDecodeHooks))
	assert.Equal(
		config{
			Timeout: 15 * time.Second,
			Paths:   []string{"stdout", "/var/log/itemdemo.log"},
			Level:   zapcore.WarnLevel,
			Levels:  []zapcore.Level{zapcore.DebugLevel, zapcore.ErrorLevel},
		},
		actual,
	)
}

func TestDefaultDecodeHooksInvalidLevel(t *testing.T) {
	var (
		v      = viper.New()
		actual struct {
			Level zapcore.Level
		}
	)

	v.Set("level", "chatty")
	assert.Error(t, v.Unmarshal(&actual, DefaultDecodeHooks))
}

func TestTextUnmarshalerHookFunc(t *testing.T) {
	const timeString = "2013-07-11T09:13:07Z"

	expectedTime, err := time.Parse(time.RFC3339, timeString)
	require.NoError(t, err)

	var (
		debug = zapcore.DebugLevel

		testData = []struct {
			from reflect.Type
			to   reflect.Type
			src  interface{}

			expected   interface{}
			expectsErr bool
		}{
			{
				from:     reflect.TypeOf(int(0)),
				to:       reflect.TypeOf(""),
				src:      123,
				expected: 123,
			},
			{
				from:     reflect.TypeOf(""),
				to:       reflect.TypeOf(0),
				src:      "123",
				expected: "123",
			},
			{
				from:     reflect.TypeOf(""),
				to:       reflect.TypeOf(time.Time{}),
				src:      timeString,
				expected: expectedTime,
			},
			{
				from:     reflect.TypeOf(""),
				to:       reflect.TypeOf(new(time.Time)),
				src:      timeString,
				expected: &expectedTime,
			},
			{
				from:     reflect.TypeOf(""),
				to:       reflect.TypeOf(zapcore.Level(0)),
				src:      "DEBUG",
				expected: zapcore.DebugLevel,
			},
			{
				from:     reflect.TypeOf(""),
				to:       reflect.TypeOf(new(zapcore.Level)),
				src:      "debug",
				expected: &debug,
			},
			{
				from:       reflect.TypeOf(""),
				to:         reflect.TypeOf(time.Time{}),
				src:        "not a time",
				expected:   time.Time{},
				expectsErr: true,
			},
		}
	)

	for i, record := range testData {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			var (
				assert            = assert.New(t)
				actual, actualErr = TextUnmarshalerHookFunc(record.from, record.to, record.src)
			)

			assert.Equal(record.expected, actual)
			assert.Equal(record.expectsErr, actualErr != nil)
		})
	}
}
