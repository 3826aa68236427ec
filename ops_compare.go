package softfloat

import "math/big"

// Abs, Neg, and CopySign are pure sign manipulation: they preserve NaN
// payload and never raise flags (spec §4.4).

func Abs(a DynamicFloat) DynamicFloat {
	if !a.Properties.HasSignBit {
		return a
	}
	bits := new(big.Int).AndNot(a.Bits, a.Properties.SignFieldMask)
	return NewDynamicFloat(a.Properties, bits, a.FPState)
}

func Neg(a DynamicFloat) DynamicFloat {
	if !a.Properties.HasSignBit {
		return a
	}
	bits := new(big.Int).Xor(a.Bits, a.Properties.SignFieldMask)
	return NewDynamicFloat(a.Properties, bits, a.FPState)
}

func CopySign(a, b DynamicFloat) DynamicFloat {
	props := requireSameProperties(a, b)
	if !props.HasSignBit {
		return a
	}
	magnitude := new(big.Int).AndNot(a.Bits, props.SignFieldMask)
	if Unpack(props, b.Bits).Sign == Negative {
		magnitude.Or(magnitude, props.SignFieldMask)
	}
	return NewDynamicFloat(props, magnitude, a.FPState)
}

// Add/Sub/Mul/Div/Abs/Neg also exist as methods, since Go has no infix
// operator overloading — this is the idiomatic stand-in spec §6 asks for.
func (a DynamicFloat) Add(b DynamicFloat) DynamicFloat { return Add(a, b) }
func (a DynamicFloat) Sub(b DynamicFloat) DynamicFloat { return Sub(a, b) }
func (a DynamicFloat) Mul(b DynamicFloat) DynamicFloat { return Mul(a, b) }
func (a DynamicFloat) Div(b DynamicFloat) DynamicFloat { return Div(a, b) }
func (a DynamicFloat) Abs() DynamicFloat               { return Abs(a) }
func (a DynamicFloat) Neg() DynamicFloat               { return Neg(a) }
func (a DynamicFloat) CopySign(b DynamicFloat) DynamicFloat {
	return CopySign(a, b)
}

// compareRank orders a classified value into {-inf: -2, negative finite: -1,
// zero (either sign): 0, positive finite: 1, +inf: 2} so Compare can decide
// most comparisons without touching the exact rational value at all.
func compareRank(u Unpacked) int {
	switch {
	case u.Class == ClassNegativeInfinity:
		return -2
	case u.Class.IsZero():
		return 0
	case u.Class == ClassPositiveInfinity:
		return 2
	case u.Sign == Negative:
		return -1
	default:
		return 1
	}
}

// Compare implements spec §4.4's compare(quiet): returns nil for a NaN
// operand, otherwise -1/0/+1. A signaling NaN always sets
// INVALID_OPERATION; a quiet NaN only does when quiet is false (a
// "compare_signaling" call).
func Compare(a, b DynamicFloat, quiet bool) (*int, FPState) {
	props := requireSameProperties(a, b)
	ua, ub := Unpack(props, a.Bits), Unpack(props, b.Bits)
	state := a.FPState.Merge(b.FPState)

	if ua.Class.IsNaN() || ub.Class.IsNaN() {
		var flags StatusFlags
		if !quiet || ua.Class == ClassSignalingNaN || ub.Class == ClassSignalingNaN {
			flags |= InvalidOperation
		}
		return nil, state.WithFlags(flags)
	}

	ra, rb := compareRank(ua), compareRank(ub)
	var result int
	switch {
	case ra < rb:
		result = -1
	case ra > rb:
		result = 1
	case ra == 0 || ra == 2 || ra == -2:
		result = 0
	default:
		result = ua.Value.Cmp(ub.Value)
	}
	return &result, state
}

// CompareQuiet is Compare with quiet=true (never faults on an ordinary
// quiet-NaN operand).
func CompareQuiet(a, b DynamicFloat) (*int, FPState) { return Compare(a, b, true) }

// CompareSignaling is Compare with quiet=false (faults on any NaN operand).
func CompareSignaling(a, b DynamicFloat) (*int, FPState) { return Compare(a, b, false) }
