// Package math32 provides float32 vector kernels.
// This is an internal package - external users should use the distance package.
//
// Long vectors are dispatched to github.com/viterin/vek/vek32 when the CPU
// supports the AVX2+FMA path vek accelerates; everything else runs the
// generic loops below.
package math32

import (
	"math"

	m32 "github.com/chewxy/math32"
	"github.com/viterin/vek/vek32"
	"golang.org/x/sys/cpu"
)

// minSIMDLen is the shortest input handed to vek32. Below it the call
// overhead outweighs the vectorized loop.
const minSIMDLen = 16

var useSIMD bool

func init() {
	useSIMD = cpu.X86.HasAVX2 && cpu.X86.HasFMA
}

// Dot calculates the dot product of two vectors.
// Callers must pass slices of equal length.
func Dot(a, b []float32) float32 {
	if useSIMD && len(a) >= minSIMDLen {
		return vek32.Dot(a, b)
	}

	return dotGeneric(a, b)
}

func dotGeneric(a, b []float32) float32 {
	var ret float32
	for i := range a {
		ret += a[i] * b[i]
	}

	return ret
}

// DotNorms returns a·b, a·a and b·b in a single pass.
//
// Products are accumulated in float64. The square of any finite float32 is
// a normal float64, so the sums neither overflow nor underflow for inputs of
// realistic length, and DotNorms(v, v) yields three bit-identical values.
func DotNorms(a, b []float32) (dot, aa, bb float64) {
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		aa += x * x
		bb += y * y
	}

	return dot, aa, bb
}

// L2 calculates the Euclidean distance sqrt(Σ(aᵢ−bᵢ)²).
// Callers must pass slices of equal length.
//
// The vek32 path accumulates in float32 and saturates to +Inf once the sum
// of squares leaves the float32 range; the generic path accumulates in
// float64 and only saturates when the distance itself does not fit.
func L2(a, b []float32) float32 {
	if useSIMD && len(a) >= minSIMDLen {
		return vek32.Distance(a, b)
	}

	return l2Generic(a, b)
}

func l2Generic(a, b []float32) float32 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}

	return float32(math.Sqrt(sum))
}

// Finite reports whether every component of v is neither NaN nor ±Inf.
func Finite(v []float32) bool {
	for _, x := range v {
		if m32.IsNaN(x) || m32.IsInf(x, 0) {
			return false
		}
	}

	return true
}
