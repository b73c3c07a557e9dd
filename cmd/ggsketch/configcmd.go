// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"

	"github.com/gogpu/ggsketch/config"
	"github.com/spf13/cobra"
)

// resolved is the JSON document printed by the config command.
type resolved struct {
	Environment config.Environment `json:"environment"`
	Config      config.Config      `json:"config"`
}

func newConfigCmd() *cobra.Command {
	var width, height int

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			o, err := loadOverride(configPath)
			if err != nil {
				return err
			}
			base := config.Merge(config.Default(), o)
			if err := base.Validate(); err != nil {
				return err
			}
			env := config.NewEnvironment(config.Host{
				Embedded:         embedded,
				DevicePixelRatio: 1,
				ContainerWidth:   width,
				ContainerHeight:  height,
			})
			out, err := json.MarshalIndent(resolved{
				Environment: env,
				Config:      config.Resolve(base, env),
			}, "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}

	cmd.Flags().IntVar(&width, "width", config.DesignWidth, "Container width in pixels")
	cmd.Flags().IntVar(&height, "height", 1080, "Container height in pixels")
	return cmd
}
