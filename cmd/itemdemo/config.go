// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/xmidt-org/itemdemo"
	"github.com/xmidt-org/itemdemo/itemhttp"
)

const (
	// envPrefix is prepended to every environment variable, e.g. ITEMDEMO_SERVER_ADDRESS
	envPrefix = "ITEMDEMO"

	// loggingKey is the configuration key for itemdemo.LogConfig
	loggingKey = "logging"
)

// setDefaults registers every supported key.  viper only consults the environment
// for keys it already knows about, so each key needs a default here.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.network", "tcp")
	v.SetDefault("server.address", itemhttp.DefaultServerConfig.Address)
	v.SetDefault("server.readTimeout", 15*time.Second)
	v.SetDefault("server.readHeaderTimeout", 5*time.Second)
	v.SetDefault("server.writeTimeout", 15*time.Second)
	v.SetDefault("server.idleTimeout", 60*time.Second)
	v.SetDefault("server.maxHeaderBytes", 1<<20)
	v.SetDefault("server.keepAlive", 3*time.Minute)
	v.SetDefault("server.compress", false)

	v.SetDefault("pprof.enabled", false)
	v.SetDefault("pprof.pathPrefix", itemhttp.DefaultPprofPathPrefix)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.development", false)
	v.SetDefault("logging.encoding", "json")
	v.SetDefault("logging.outputPaths", []string{"stderr"})
	v.SetDefault("logging.errorOutputPaths", []string{"stderr"})
}

// decodeOptions are used for every unmarshal.  Exact rejects misspelled keys
// rather than silently falling back to defaults.
var decodeOptions = []viper.DecoderConfigOption{
	itemdemo.DefaultDecodeHooks,
	itemdemo.Exact,
}

// newViper layers, lowest precedence first: defaults, the optional config file,
// ITEMDEMO_ environment variables, and command line flags.
//
// The layers are flattened into a fresh viper instance, since viper's
// UnmarshalKey does not merge nested keys across layers.
func newViper(configFile string, flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if len(configFile) > 0 {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	if flags != nil {
		if f := flags.Lookup("address"); f != nil {
			if err := v.BindPFlag("server.address", f); err != nil {
				return nil, err
			}
		}
	}

	merged := viper.New()
	if err := merged.MergeConfigMap(v.AllSettings()); err != nil {
		return nil, err
	}

	return merged, nil
}

// newLogConfig unmarshals the logging configuration, which is needed before
// the fx.App exists.
func newLogConfig(v *viper.Viper) (lc itemdemo.LogConfig, err error) {
	err = v.UnmarshalKey(loggingKey, &lc, decodeOptions...)
	return
}
