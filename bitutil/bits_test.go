package bitutil

import "testing"

func TestIsPow2(t *testing.T) {
	tests := []struct {
		name string
		size uint32
		want bool
	}{
		{"zero is not a power of two", 0, false},
		{"1 is a power of two", 1, true},
		{"16 is a power of two", 16, true},
		{"17 is not a power of two", 17, false},
		{"18 is not a power of two", 18, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPow2(tt.size); got != tt.want {
				t.Errorf("IsPow2(%d) = %v, want %v", tt.size, got, tt.want)
			}
		})
	}
}

func TestRoundUpPow2(t *testing.T) {
	tests := []struct {
		num  uint32
		want uint32
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{4, 4},
		{5, 8},
		{8, 8},
		{9, 16},
		{23, 32},
	}
	for _, tt := range tests {
		if got := RoundUpPow2(tt.num); got != tt.want {
			t.Errorf("RoundUpPow2(%d) = %d, want %d", tt.num, got, tt.want)
		}
	}
}

func TestLog2Ceil(t *testing.T) {
	tests := []struct {
		num  uint32
		want uint64
	}{
		{1, 0},
		{2, 1},
		{3, 2},
		{4, 2},
		{8, 3},
		{9, 4},
	}
	for _, tt := range tests {
		if got := Log2Ceil(tt.num); got != tt.want {
			t.Errorf("Log2Ceil(%d) = %d, want %d", tt.num, got, tt.want)
		}
	}
}

func TestPopCount32(t *testing.T) {
	tests := []struct {
		num  uint32
		want int
	}{
		{0, 0},
		{1, 1},
		{7, 3},
		{8, 1},
		{100, 3},
	}
	for _, tt := range tests {
		if got := PopCount32(tt.num); got != tt.want {
			t.Errorf("PopCount32(%d) = %d, want %d", tt.num, got, tt.want)
		}
	}
}
