package softfloat

import "math/big"

// scaleBSaturationBound bounds the |n| this engine will actually multiply
// through big.Rat for ScaleB. It comfortably exceeds the exponent range of
// the standard formats (binary128's is ±16383), so clamping
// to it implements "integer overflow of n saturates to large-magnitude
// result" without building astronomically large big.Rat denominators for
// pathological n.
const scaleBSaturationBound = 1 << 20

// ScaleB implements spec §4.4's scale_b(n): multiply by 2^n exactly, then
// round once.
func ScaleB(a DynamicFloat, n int) DynamicFloat {
	props := a.Properties
	u := Unpack(props, a.Bits)
	state := a.FPState
	mode := props.Platform.ScaleBNaNPropagationMode

	if u.Class.IsNaN() {
		bits, flags := selectNaN(props, []Unpacked{u}, mode)
		return finalize(props, bits, state, flags)
	}
	if u.Class.IsInfinity() || u.Class.IsZero() {
		return finalize(props, new(big.Int).Set(a.Bits), state, 0)
	}

	if n > scaleBSaturationBound {
		n = scaleBSaturationBound
	} else if n < -scaleBSaturationBound {
		n = -scaleBSaturationBound
	}

	scaled := new(big.Rat).Mul(u.Value, ratPow2(n))
	sign, mag := ratAbsSign(scaled)
	bits, rflags := roundAndPack(props, sign, mag, state)
	return finalize(props, bits, state, rflags)
}

// LogB implements spec §4.4's log_b: floor(log2(|x|)) for finite nonzero x.
// Per spec §9's recorded divergence, zero and infinity both yield None with
// INVALID_OPERATION — not the IEEE-754-prescribed DIVISION_BY_ZERO for
// logB(0) — because that is the literal behaviour this engine reproduces.
func LogB(a DynamicFloat) (*int, FPState) {
	props := a.Properties
	u := Unpack(props, a.Bits)
	state := a.FPState

	if u.Class.IsNaN() || u.Class.IsInfinity() || u.Class.IsZero() {
		return nil, state.WithFlags(InvalidOperation)
	}
	e := floorLog2(new(big.Rat).Abs(u.Value))
	return &e, state
}
