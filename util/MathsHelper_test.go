package util

import (
	"math"
	"testing"
)

func TestCompare3(t *testing.T) {
	tests := []struct {
		a, b     float64
		expected int
	}{
		{1.0, 2.0, -1},
		{2.0, 1.0, 1},
		{1.5, 1.5, 0},
		{0.0, math.Copysign(0, -1), 0},
		{-3.0, 3.0, -1},
	}

	for _, tt := range tests {
		result := Compare3(tt.a, tt.b)
		if result != tt.expected {
			t.Errorf("Compare3(%f, %f) = %d; want %d", tt.a, tt.b, result, tt.expected)
		}
	}
}

func TestSign(t *testing.T) {
	tests := []struct {
		v        float64
		expected int
	}{
		{-0.5, -1},
		{0.5, 1},
		{0.0, 0},
		{math.Copysign(0, -1), 0},
		{-1e-300, -1},
		{math.MaxFloat64, 1},
	}

	for _, tt := range tests {
		result := Sign(tt.v)
		if result != tt.expected {
			t.Errorf("Sign(%g) = %d; want %d", tt.v, result, tt.expected)
		}
	}

	if Sign(int32(-7)) != -1 {
		t.Error("Sign(-7) should be -1")
	}
}

func TestIsFinite(t *testing.T) {
	tests := []struct {
		v        float64
		expected bool
	}{
		{0, true},
		{-12.5, true},
		{math.MaxFloat64, true},
		{math.NaN(), false},
		{math.Inf(1), false},
		{math.Inf(-1), false},
	}

	for _, tt := range tests {
		result := IsFinite(tt.v)
		if result != tt.expected {
			t.Errorf("IsFinite(%g) = %t; want %t", tt.v, result, tt.expected)
		}
	}

	if IsFinite(float32(math.Inf(1))) {
		t.Error("IsFinite(float32 +Inf) should be false")
	}
}

func TestClamp3(t *testing.T) {
	tests := []struct {
		v, a, b  int32
		expected int32
	}{
		{5, 0, 10, 5},   // in range
		{-5, 0, 10, 0},  // below range
		{15, 0, 10, 10}, // above range
		{5, 10, 0, 5},   // reversed bounds, in range
		{-5, 10, 0, 0},  // reversed bounds, below
		{15, 10, 0, 10}, // reversed bounds, above
	}

	for _, tt := range tests {
		result := Clamp3(tt.v, tt.a, tt.b)
		if result != tt.expected {
			t.Errorf("Clamp3(%d, %d, %d) = %d; want %d", tt.v, tt.a, tt.b, result, tt.expected)
		}
	}
}

func TestMax(t *testing.T) {
	if Max(1, 2, 3) != 3 {
		t.Error("Max(1,2,3) should be 3")
	}
	if Max(-1, -2, -3) != -1 {
		t.Error("Max(-1,-2,-3) should be -1")
	}
	if Max(1.5, 2.5, 0.5) != 2.5 {
		t.Error("Max(1.5,2.5,0.5) should be 2.5")
	}
	if Max[int]() != 0 {
		t.Error("Max() should return zero value")
	}
}

func TestMaxNaN(t *testing.T) {
	nan := math.NaN()
	if !math.IsNaN(Max(1.0, nan, 2.0)) {
		t.Error("Max with NaN in middle should return NaN")
	}
}

func TestMin(t *testing.T) {
	if Min(3, 2, 1) != 1 {
		t.Error("Min(3,2,1) should be 1")
	}
	if Min(-1, -2, -3) != -3 {
		t.Error("Min(-1,-2,-3) should be -3")
	}
	if Min[int]() != 0 {
		t.Error("Min() should return zero value")
	}
	if !math.IsNaN(Min(math.NaN(), 1.0)) {
		t.Error("Min with NaN first should return NaN")
	}
}
