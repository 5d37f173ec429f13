// Package cpu selects the SIMD capability the feature extractor may use.
// The capability is computed once per scoring call and threaded through the
// call as a value, so concurrent calls with different settings never
// interfere.
package cpu

import "golang.org/x/sys/cpu"

// Capability is the accelerated code path available to the extractor.
type Capability int

const (
	CapabilityNone Capability = iota
	CapabilitySSE2
	CapabilityAVX
)

func (c Capability) String() string {
	switch c {
	case CapabilityAVX:
		return "avx"
	case CapabilitySSE2:
		return "sse2"
	default:
		return "none"
	}
}

// Autodetect probes the host CPU. disableAVX forces CapabilityNone
// regardless of what the host supports.
func Autodetect(disableAVX bool) Capability {
	if disableAVX {
		return CapabilityNone
	}
	if cpu.X86.HasAVX {
		return CapabilityAVX
	}
	if cpu.X86.HasSSE2 {
		return CapabilitySSE2
	}
	return CapabilityNone
}
