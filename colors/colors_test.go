// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package colors

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestHexRoundTrip(t *testing.T) {
	c := HexToRGBA("#666666")
	if !near(c.R, 0.4) || !near(c.G, 0.4) || !near(c.B, 0.4) || !near(c.A, 1) {
		t.Fatalf("HexToRGBA(#666666) = %+v, want (0.4,0.4,0.4,1)", c)
	}
	if got, want := CSS(c), "rgba(102,102,102,1)"; got != want {
		t.Errorf("CSS() = %q, want %q", got, want)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want gg.RGBA
	}{
		{"hex6", "#ff0000", gg.RGBA{R: 1, A: 1}},
		{"hex3", "#0f0", gg.RGBA{G: 1, A: 1}},
		{"hex8", "#0000ff80", gg.RGBA{B: 1, A: 128.0 / 255}},
		{"rgba", "rgba(255, 255, 255, 0.5)", gg.RGBA{R: 1, G: 1, B: 1, A: 0.5}},
		{"rgb", "rgb(0,0,255)", gg.RGBA{B: 1, A: 1}},
		{"bad hex digits", "#zzzzzz", Black},
		{"bad hex length", "#12345", Black},
		{"named", "red", Black},
		{"empty", "", Black},
		{"rgba missing paren", "rgba(1,2,3,1", Black},
		{"rgba non numeric", "rgba(a,b,c,d)", Black},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.in)
			if !near(got.R, tt.want.R) || !near(got.G, tt.want.G) || !near(got.B, tt.want.B) || !near(got.A, tt.want.A) {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHexToRGBAString(t *testing.T) {
	if got, want := HexToRGBAString("333333", 0.5), "rgba(51,51,51,0.5)"; got != want {
		t.Errorf("HexToRGBAString() = %q, want %q", got, want)
	}
}

func TestEqualAndWithAlpha(t *testing.T) {
	c := WithAlpha(Parse("#666666"), 2)
	if c.A != 1 {
		t.Errorf("WithAlpha clamps to 1, got %v", c.A)
	}
	if !Equal(c, Parse("rgba(102,102,102,1)")) {
		t.Error("Equal() = false for the same colour in two notations")
	}
	if Equal(c, White) {
		t.Error("Equal(grey, white) = true")
	}
}
