package hwy

import "testing"

func TestDispatchConfigured(t *testing.T) {
	if CurrentWidth() <= 0 {
		t.Fatalf("CurrentWidth: got %d", CurrentWidth())
	}
	if CurrentWidth()%16 != 0 {
		t.Errorf("CurrentWidth %d is not a multiple of 16 bytes", CurrentWidth())
	}
	if CurrentName() == "" || CurrentName() == "unknown" {
		t.Errorf("CurrentName: got %q", CurrentName())
	}
	if CurrentLevel().String() != CurrentName() {
		t.Errorf("level %q does not match name %q", CurrentLevel().String(), CurrentName())
	}
}

func TestMaxLanes(t *testing.T) {
	width := CurrentWidth()

	if got := MaxLanes[float32](); got != width/4 {
		t.Errorf("MaxLanes[float32]: got %d, want %d", got, width/4)
	}
	if got := MaxLanes[float64](); got != width/8 {
		t.Errorf("MaxLanes[float64]: got %d, want %d", got, width/8)
	}
	if got := MaxLanes[uint8](); got != width {
		t.Errorf("MaxLanes[uint8]: got %d, want %d", got, width)
	}
}

func TestDispatchLevelString(t *testing.T) {
	levels := map[DispatchLevel]string{
		DispatchScalar: "scalar",
		DispatchSSE2:   "sse2",
		DispatchAVX2:   "avx2",
		DispatchAVX512: "avx512",
		DispatchNEON:   "neon",
		DispatchSVE:    "sve",
	}
	for level, want := range levels {
		if got := level.String(); got != want {
			t.Errorf("%d.String(): got %q, want %q", level, got, want)
		}
	}
	if got := DispatchLevel(99).String(); got != "unknown" {
		t.Errorf("invalid level: got %q", got)
	}
}

func TestFixedTags(t *testing.T) {
	if got := (FixedTag128[float32]{}).MaxLanes(); got != 4 {
		t.Errorf("FixedTag128[float32].MaxLanes: got %d, want 4", got)
	}
	if got := (FixedTag256[float64]{}).MaxLanes(); got != 4 {
		t.Errorf("FixedTag256[float64].MaxLanes: got %d, want 4", got)
	}
	if got := (FixedTag512[uint16]{}).MaxLanes(); got != 32 {
		t.Errorf("FixedTag512[uint16].MaxLanes: got %d, want 32", got)
	}
	if got := (ScalableTag[float32]{}).MaxLanes(); got != MaxLanes[float32]() {
		t.Errorf("ScalableTag[float32].MaxLanes: got %d", got)
	}
	if got := (ScalableTag[float32]{}).Width(); got != CurrentWidth() {
		t.Errorf("ScalableTag width: got %d", got)
	}
}
