package hwy

import "testing"

func TestDispatchLevelString(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		want  string
	}{
		{DispatchScalar, "scalar"},
		{DispatchSSE2, "sse2"},
		{DispatchAVX2, "avx2"},
		{DispatchAVX512, "avx512"},
		{DispatchNEON, "neon"},
		{DispatchLevel(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("DispatchLevel(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestCurrentWidth(t *testing.T) {
	switch w := CurrentWidth(); w {
	case 16, 32, 64:
	default:
		t.Errorf("CurrentWidth() = %d, want 16, 32 or 64", w)
	}
	if CurrentWidth() > MaxBytes {
		t.Errorf("CurrentWidth() = %d exceeds register storage of %d bytes", CurrentWidth(), MaxBytes)
	}
	if CurrentName() != CurrentLevel().String() {
		t.Errorf("CurrentName() = %q, want %q", CurrentName(), CurrentLevel().String())
	}
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"true", true},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv("HWY_NO_SIMD", tt.val)
		if got := NoSimdEnv(); got != tt.want {
			t.Errorf("HWY_NO_SIMD=%q: NoSimdEnv() = %v, want %v", tt.val, got, tt.want)
		}
	}
}

func TestWidthEnv(t *testing.T) {
	tests := []struct {
		val    string
		want   int
		wantOK bool
	}{
		{"", 0, false},
		{"16", 16, true},
		{"32", 32, true},
		{"64", 64, true},
		{"8", 0, false},
		{"128", 0, false},
		{"wide", 0, false},
	}
	for _, tt := range tests {
		t.Setenv("HWY_WIDTH", tt.val)
		got, ok := WidthEnv()
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("HWY_WIDTH=%q: WidthEnv() = (%d, %v), want (%d, %v)", tt.val, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestMaxLanes(t *testing.T) {
	width := CurrentWidth()
	if got := MaxLanes[float32](); got != width/4 {
		t.Errorf("MaxLanes[float32]() = %d, want %d", got, width/4)
	}
	if got := MaxLanes[int8](); got != width {
		t.Errorf("MaxLanes[int8]() = %d, want %d", got, width)
	}
	if got := MaxLanes[float64](); got != width/8 {
		t.Errorf("MaxLanes[float64]() = %d, want %d", got, width/8)
	}
}
