// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command ggsketch runs the magnetic sketch in a window, renders scripted
// sketches to PNG, and prints resolved configurations.
package main

import (
	"fmt"
	"os"

	"github.com/gogpu/ggsketch"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	configPath string
	logLevel   string
	logJSON    bool
	embedded   bool
	rootCmd    *cobra.Command
)

func init() {
	rootCmd = &cobra.Command{
		Use:           "ggsketch",
		Short:         "Magnetic sketch canvas",
		Long:          `Draw with particles, drag magnets, and stamp them into the sketch.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logger := newLogger("ggsketch", logLevel, logJSON, cmd.ErrOrStderr())
			ggsketch.SetLogger(newSlogLogger(logger))
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a config override file (json, yaml or toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Emit JSON log lines")
	rootCmd.PersistentFlags().BoolVar(&embedded, "embedded", false, "Resolve the config as if embedded in a foreign frame")

	rootCmd.AddCommand(newRunCmd(), newRenderCmd(), newConfigCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
