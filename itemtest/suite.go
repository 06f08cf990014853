// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package itemtest

import (
	"net"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/suite"
	"github.com/xmidt-org/itemdemo"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

// Suite is an embeddable type that makes viper-related tests simpler.
// Embed this type in testify/suite-style test types.
type Suite struct {
	suite.Suite

	// viper is the viper instance for each test
	viper *viper.Viper
}

var _ suite.SetupTestSuite = (*Suite)(nil)

// SetupTest initializes a new viper instance for each test
func (suite *Suite) SetupTest() {
	suite.viper = viper.New()
}

// Viper returns the viper instance for the current test.
func (suite *Suite) Viper() *viper.Viper {
	return suite.viper
}

// YAML is a shorthand for bootstrapping the current test's viper environment
// with a given YAML configuration
func (suite *Suite) YAML(v string) {
	suite.viper.SetConfigType("yaml")
	suite.Require().NoError(
		suite.viper.ReadConfig(strings.NewReader(v)),
	)
}

// Fxtest is a convenience for NewApp with the current viper environment,
// decoded with itemdemo.DefaultDecodeHooks, plus the additional fx.Options
func (suite *Suite) Fxtest(more ...fx.Option) *fxtest.App {
	return NewApp(
		suite,
		append(
			[]fx.Option{
				itemdemo.ForViper(suite.viper, itemdemo.DefaultDecodeHooks),
			},
			more...,
		)...,
	)
}

// ListenReceive waits up to timeout for an address sent by a ListenerConstructor
// such as itemhttp.CaptureListenAddress.  The test fails immediately if none arrives.
func (suite *Suite) ListenReceive(ch <-chan net.Addr, timeout time.Duration) net.Addr {
	a, ok := ListenReceive(ch, timeout)
	suite.Require().True(ok, "no listen address received within %s", timeout)
	return a
}

// ListenReceive returns the first net.Addr received on ch.  If timeout
// elapses first, it returns nil, false.
func ListenReceive(ch <-chan net.Addr, timeout time.Duration) (net.Addr, bool) {
	t := time.NewTimer(timeout)
	defer t.Stop()

	select {
	case a := <-ch:
		return a, true
	case <-t.C:
		return nil, false
	}
}
