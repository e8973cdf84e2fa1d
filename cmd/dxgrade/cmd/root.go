/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package cmd provides the CLI commands for dxgrade.
package cmd

import (
	"fmt"
	"os"

	"dirpx.dev/dxgrade/dxcore/codec"
	"dirpx.dev/dxgrade/internal/config"
	"dirpx.dev/dxgrade/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version is the dxgrade release, set at build time with -ldflags.
var Version = "0.1.0"

// app carries the state shared by every command of one invocation.
type app struct {
	cfgFile string
	verbose bool
	output  string

	cfg    *config.Config
	logger *zap.Logger
}

// Execute runs the CLI
func Execute() error {
	root := newRootCmd()
	err := root.Execute()
	logging.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "dxgrade",
		Short: "Encode and decode diamond grading labels",
		Long: `dxgrade converts diamond grading labels (color, clarity, cut, polish,
symmetry, fluorescence) to and from the compact codes stored on-chain.

Examples:
  dxgrade encode clarity VVS1
  dxgrade decode color 5
  dxgrade properties 5 3 5 1 4 3
  dxgrade report validate certificate.yaml
  dxgrade fetch ipfs://bafy.../1.json`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.init,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (YAML)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&a.output, "output", "o", "", "output format: text, json or yaml")

	rootCmd.AddCommand(
		a.newEncodeCmd(),
		a.newDecodeCmd(),
		a.newPropertiesCmd(),
		a.newTablesCmd(),
		a.newReportCmd(),
		a.newFetchCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

func (a *app) init(cmd *cobra.Command, _ []string) error {
	v := config.New()
	if err := v.BindPFlag("output", cmd.Flags().Lookup("output")); err != nil {
		return err
	}
	cfg, err := config.Load(v, a.cfgFile)
	if err != nil {
		return err
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}
	if err := logging.Initialize(cfg.Log); err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}

	a.cfg = cfg
	a.logger = logging.Logger
	a.logger.Debug("configuration loaded",
		zap.String("config", a.cfgFile),
		zap.String("output", cfg.Output),
		zap.Strings("gateways", cfg.Metadata.Gateways))
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dxgrade version %s (grading scheme %s)\n", Version, codec.Scheme)
		},
	}
}
