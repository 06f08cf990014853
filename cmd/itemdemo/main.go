// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/xmidt-org/itemdemo"
	"github.com/xmidt-org/itemdemo/itemhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Version is set at build time with -ldflags "-X main.Version=..."
var Version = "dev"

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, more ...fx.Option) int {
	root := newRootCommand(more...)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(stderr, err)
	}

	return itemdemo.ExitCodeFor(err)
}

func newRootCommand(more ...fx.Option) *cobra.Command {
	var configFile string
	root := &cobra.Command{
		Use:           "itemdemo",
		Short:         "Serve the demo item catalog over HTTP",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd, configFile, more...)
		},
	}

	root.Flags().StringVarP(&configFile, "config", "c", "", "configuration file (yaml, json, toml, ...)")
	root.Flags().String("address", "", "bind address, overriding server.address")
	root.AddCommand(newVersionCommand())
	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "itemdemo", Version)
		},
	}
}

func serve(cmd *cobra.Command, configFile string, more ...fx.Option) error {
	v, err := newViper(configFile, cmd.Flags())
	if err != nil {
		return itemdemo.UseExitCode(err, itemdemo.ExitConfiguration)
	}

	lc, err := newLogConfig(v)
	if err != nil {
		return itemdemo.UseExitCode(err, itemdemo.ExitConfiguration)
	}

	logger, err := lc.NewLogger()
	if err != nil {
		return itemdemo.UseExitCode(err, itemdemo.ExitConfiguration)
	}

	defer logger.Sync()
	logger.Info("starting", zap.String("version", Version))
	return runApp(cmd.Context(), fx.New(newAppOptions(v, logger, more...)))
}

// newAppOptions wires the item server from configuration.
func newAppOptions(v *viper.Viper, logger *zap.Logger, more ...fx.Option) fx.Option {
	return fx.Options(
		itemdemo.Logger(logger),
		itemdemo.ForViper(v, decodeOptions...),
		itemhttp.Provide(),
		fx.Options(more...),
	)
}

// runApp starts the app and blocks until it is signaled to shut down or
// ctx is canceled, then stops it.
func runApp(ctx context.Context, app *fx.App) error {
	if err := app.Err(); err != nil {
		return itemdemo.UseExitCode(err, itemdemo.ExitConfiguration)
	}

	startCtx, cancel := context.WithTimeout(ctx, app.StartTimeout())
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return itemdemo.UseExitCode(err, itemdemo.ExitStart)
	}

	var signal fx.ShutdownSignal
	select {
	case signal = <-app.Wait():
	case <-ctx.Done():
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), app.StopTimeout())
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		return err
	}

	if signal.ExitCode != 0 {
		return itemdemo.UseExitCode(
			fmt.Errorf("shut down with exit code %d", signal.ExitCode),
			signal.ExitCode,
		)
	}

	return nil
}
