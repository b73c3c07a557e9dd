// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/gogpu/ggsketch/config"
	"github.com/spf13/viper"
)

// envPrefix prefixes environment overrides, e.g. GGSKETCH_LINEWIDTH or
// GGSKETCH_INITIALSTAMPDENSITY_EDGE.
const envPrefix = "GGSKETCH"

// overrideKeys lists every key the override file and environment may set.
var overrideKeys = []string{
	"lineWidth", "particleSize", "particleLength", "particleWidth",
	"particleDensity", "particleColor", "particleOpacity",
	"backgroundColor", "gridColor", "hexagonSize", "hexagonLineWidth",
	"preDrawnParticleSize", "preDrawnDensity", "preDrawnColor",
	"multitextDensity", "multitextOpacity", "multitextWhiteProb",
	"cursorWhiteParticleProbability", "stampWhiteParticleProbability",
	"targetFPS", "idleFPS", "idleTimeout",
	"initialStampOpacity", "subsequentStampOpacity",
	"initialStampDensity.edge", "initialStampDensity.fill",
	"subsequentStampDensity.edge", "subsequentStampDensity.fill",
	"maxParticles",
}

// loadOverride reads a config override from path (optional) and the
// environment. Keys that are absent stay nil and keep their defaults.
func loadOverride(path string) (config.Override, error) {
	var o config.Override

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range overrideKeys {
		if err := v.BindEnv(key); err != nil {
			return o, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return o, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if err := v.Unmarshal(&o); err != nil {
		return o, fmt.Errorf("decode config: %w", err)
	}
	return o, nil
}
