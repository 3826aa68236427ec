package softfloat

import "math/big"

// finalize builds the result DynamicFloat for an operator: pack bits under
// props, carrying state forward with the operator's flags unioned in.
func finalize(props FloatProperties, bits *big.Int, state FPState, flags StatusFlags) DynamicFloat {
	return NewDynamicFloat(props, bits, state.WithFlags(flags))
}

// requireSameProperties is the operator-layer guard: binary/ternary
// operators assume every operand shares one FloatProperties. A mismatch is
// a programming error (spec §7), not a floating-point flag.
func requireSameProperties(operands ...DynamicFloat) FloatProperties {
	props := operands[0].Properties
	for _, d := range operands[1:] {
		if !props.Equal(d.Properties) {
			panic(&DomainError{Op: "requireSameProperties", Msg: "operands do not share a FloatProperties", Code: ErrInvalidFormat})
		}
	}
	return props
}

// exactZeroSign implements the IEEE 754 sign-of-an-exact-zero-sum rule: when
// two operands of equal magnitude and opposite sign sum to exactly zero, the
// result is +0 under every rounding mode except TowardNegative, where it is
// −0. Equal signs simply keep that sign.
func exactZeroSign(a, b Sign, mode RoundingMode) Sign {
	if a == b {
		return a
	}
	if mode == TowardNegative {
		return Negative
	}
	return Positive
}

func ratAbsSign(r *big.Rat) (Sign, *big.Rat) {
	if r.Sign() < 0 {
		return Negative, new(big.Rat).Abs(r)
	}
	return Positive, new(big.Rat).Set(r)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
