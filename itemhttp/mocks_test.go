// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package itemhttp

import (
	"net"

	"github.com/stretchr/testify/mock"
	"go.uber.org/fx"
)

type mockOption[T any] struct {
	mock.Mock
}

func (m *mockOption[T]) Apply(t *T) error {
	args := m.Called(t)
	return args.Error(0)
}

func (m *mockOption[T]) ExpectApply(t *T) *mock.Call {
	return m.On("Apply", t)
}

type mockShutdowner struct {
	mock.Mock
}

func (m *mockShutdowner) Shutdown(opts ...fx.ShutdownOption) error {
	args := m.Called(opts)
	return args.Error(0)
}

func (m *mockShutdowner) ExpectShutdown() *mock.Call {
	return m.On("Shutdown", mock.Anything)
}

type mockServable struct {
	mock.Mock
}

func (m *mockServable) Serve(l net.Listener) error {
	args := m.Called(l)
	return args.Error(0)
}

func (m *mockServable) ExpectServe(l net.Listener) *mock.Call {
	return m.On("Serve", l)
}
