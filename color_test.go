package arimage

import (
	"math"
	"testing"
)

func TestFromHex(t *testing.T) {
	tests := []struct {
		name string
		hex  uint32
		want RGBA
	}{
		{"black", 0x000000, RGBA{0, 0, 0, 1}},
		{"white", 0xFFFFFF, RGBA{1, 1, 1, 1}},
		{"red", 0xFF0000, RGBA{1, 0, 0, 1}},
		{"high bits ignored", 0xAB00FF00, RGBA{0, 1, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromHex(tt.hex); got != tt.want {
				t.Errorf("FromHex(%#x) = %+v, want %+v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want uint32
		a    float64
	}{
		{"#F44336", 0xF44336, 1},
		{"f44336", 0xF44336, 1},
		{"fff", 0xFFFFFF, 1},
		{"00000080", 0x000000, 128.0 / 255},
		{"zzzzzz", 0x000000, 1},
		{"", 0x000000, 1},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c := Hex(tt.in)
			if got := c.Hex24(); got != tt.want {
				t.Errorf("Hex(%q).Hex24() = %#06x, want %#06x", tt.in, got, tt.want)
			}
			if math.Abs(c.A-tt.a) > 1e-9 {
				t.Errorf("Hex(%q).A = %v, want %v", tt.in, c.A, tt.a)
			}
		})
	}
}

func TestScaleRGBKeepsAlpha(t *testing.T) {
	c := RGBA{R: 1, G: 0.5, B: 0.25, A: 0.75}.ScaleRGB(0.1)
	want := RGBA{R: 0.1, G: 0.05, B: 0.025, A: 0.75}
	if c != want {
		t.Errorf("ScaleRGB(0.1) = %+v, want %+v", c, want)
	}
}

func TestFloat32(t *testing.T) {
	got := RGBA{R: 0.5, G: 0.25, B: 0, A: 1}.Float32()
	want := [4]float32{0.5, 0.25, 0, 1}
	if got != want {
		t.Errorf("Float32() = %v, want %v", got, want)
	}
}
