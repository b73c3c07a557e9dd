// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package colors converts between CSS-style colour strings and gg colours.
//
// Two notations are understood: hex ("#rgb", "#rrggbb", "#rrggbbaa") and
// functional ("rgb(r, g, b)", "rgba(r, g, b, a)"). Anything else parses to
// opaque black, so callers never have to handle a colour error.
package colors

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
)

// Black is the fallback for strings that cannot be parsed.
var Black = gg.RGBA{A: 1}

// White is the whitening target for particles.
var White = gg.RGBA{R: 1, G: 1, B: 1, A: 1}

// Parse converts a colour string to gg.RGBA. Unknown notations and malformed
// values yield Black.
func Parse(s string) gg.RGBA {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "#"):
		c, ok := parseHex(s)
		if !ok {
			return Black
		}
		return c
	case strings.HasPrefix(s, "rgb"):
		c, ok := parseFunc(s)
		if !ok {
			return Black
		}
		return c
	}
	return Black
}

// HexToRGBA parses a hex string into colour fractions. It returns Black for
// malformed input.
func HexToRGBA(hex string) gg.RGBA {
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	c, ok := parseHex(hex)
	if !ok {
		return Black
	}
	return c
}

// CSS formats c as "rgba(r,g,b,a)" with integer channels.
func CSS(c gg.RGBA) string {
	return fmt.Sprintf("rgba(%d,%d,%d,%s)",
		channel(c.R), channel(c.G), channel(c.B),
		strconv.FormatFloat(clamp01(c.A), 'f', -1, 64))
}

// HexToRGBAString is HexToRGBA followed by CSS with the given alpha.
func HexToRGBAString(hex string, alpha float64) string {
	c := HexToRGBA(hex)
	c.A = alpha
	return CSS(c)
}

// WithAlpha returns c with its alpha replaced.
func WithAlpha(c gg.RGBA, a float64) gg.RGBA {
	c.A = clamp01(a)
	return c
}

// Equal reports whether a and b round to the same 8-bit channels.
func Equal(a, b gg.RGBA) bool {
	return channel(a.R) == channel(b.R) &&
		channel(a.G) == channel(b.G) &&
		channel(a.B) == channel(b.B) &&
		channel(a.A) == channel(b.A)
}

func parseHex(s string) (gg.RGBA, bool) {
	digits := s[1:]
	switch len(digits) {
	case 3, 4, 6, 8:
	default:
		return gg.RGBA{}, false
	}
	for i := 0; i < len(digits); i++ {
		if !isHexDigit(digits[i]) {
			return gg.RGBA{}, false
		}
	}
	return gg.Hex(digits), true
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func parseFunc(s string) (gg.RGBA, bool) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return gg.RGBA{}, false
	}
	name := strings.TrimSpace(s[:open])
	if name != "rgb" && name != "rgba" {
		return gg.RGBA{}, false
	}
	parts := strings.Split(s[open+1:len(s)-1], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return gg.RGBA{}, false
	}
	var v [4]float64
	v[3] = 1
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return gg.RGBA{}, false
		}
		v[i] = f
	}
	return gg.RGBA{
		R: clamp01(v[0] / 255),
		G: clamp01(v[1] / 255),
		B: clamp01(v[2] / 255),
		A: clamp01(v[3]),
	}, true
}

func channel(f float64) int {
	return int(math.Round(clamp01(f) * 255))
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
