package core

import (
	"math"
	"testing"
)

func TestSatNegI8(t *testing.T) {
	tests := []struct {
		in   int8
		want int8
	}{
		{0, 0},
		{1, -1},
		{-1, 1},
		{127, -127},
		{-127, 127},
		{-128, 127}, // saturates instead of overflowing back to -128
	}

	for _, tt := range tests {
		if got := SatNegI8(tt.in); got != tt.want {
			t.Errorf("SatNegI8(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSatNegI16(t *testing.T) {
	tests := []struct {
		in   int16
		want int16
	}{
		{0, 0},
		{42, -42},
		{32767, -32767},
		{-32768, 32767},
	}

	for _, tt := range tests {
		if got := SatNegI16(tt.in); got != tt.want {
			t.Errorf("SatNegI16(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 1); got != 1 {
		t.Errorf("Clamp(5,0,1) = %v, want 1", got)
	}
	if got := Clamp(-5, 0, 1); got != 0 {
		t.Errorf("Clamp(-5,0,1) = %v, want 0", got)
	}
	// Swapped bounds are normalized.
	if got := Clamp(0.5, 1, 0); got != 0.5 {
		t.Errorf("Clamp(0.5,1,0) = %v, want 0.5", got)
	}
}

func TestQuantizeQ8RoundTrip(t *testing.T) {
	const fracBits = 5

	for v := -128; v <= 127; v++ {
		x := DequantizeQ8(int8(v), fracBits)
		if got := QuantizeQ8(x, fracBits); got != int8(v) {
			t.Fatalf("round trip %d: got %d", v, got)
		}
	}
}

func TestQuantizeQ8Clamps(t *testing.T) {
	if got := QuantizeQ8(100, 7); got != 127 {
		t.Errorf("QuantizeQ8(100, 7) = %d, want 127", got)
	}
	if got := QuantizeQ8(-100, 7); got != -128 {
		t.Errorf("QuantizeQ8(-100, 7) = %d, want -128", got)
	}
}

func TestQuantizeQ16(t *testing.T) {
	if got := QuantizeQ16(0.5, 15); got != 16384 {
		t.Errorf("QuantizeQ16(0.5, 15) = %d, want 16384", got)
	}
	if got := QuantizeQ16(1.0, 15); got != 32767 {
		t.Errorf("QuantizeQ16(1.0, 15) = %d, want 32767 (clamped)", got)
	}
	if got := DequantizeQ16(16384, 15); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("DequantizeQ16(16384, 15) = %v, want 0.5", got)
	}
}
