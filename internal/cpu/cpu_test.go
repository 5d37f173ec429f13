package cpu

import "testing"

func TestDisableAVXForcesNone(t *testing.T) {
	if got := Autodetect(true); got != CapabilityNone {
		t.Errorf("Autodetect(true) = %v, want none", got)
	}
}

func TestAutodetectNeverExceedsAVX(t *testing.T) {
	got := Autodetect(false)
	if got != CapabilityNone && got != CapabilitySSE2 && got != CapabilityAVX {
		t.Errorf("Autodetect returned unknown capability %d", got)
	}
}

func TestCapabilityString(t *testing.T) {
	tests := []struct {
		c    Capability
		want string
	}{
		{CapabilityNone, "none"},
		{CapabilitySSE2, "sse2"},
		{CapabilityAVX, "avx"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
