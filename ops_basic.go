package softfloat

import "math/big"

// Add implements spec §4.4's add: standard IEEE semantics, with the
// platform's std_bin_ops_nan_propagation_mode governing NaN results.
func Add(a, b DynamicFloat) DynamicFloat {
	props := requireSameProperties(a, b)
	ua, ub := Unpack(props, a.Bits), Unpack(props, b.Bits)
	state := a.FPState.Merge(b.FPState)
	mode := props.Platform.StdBinOpsNaNPropagationMode
	operands := []Unpacked{ua, ub}

	if ua.Class.IsNaN() || ub.Class.IsNaN() {
		bits, flags := selectNaN(props, operands, mode)
		return finalize(props, bits, state, flags)
	}
	if ua.Class.IsInfinity() || ub.Class.IsInfinity() {
		if ua.Class.IsInfinity() && ub.Class.IsInfinity() && ua.Sign != ub.Sign {
			bits, flags := selectNaN(props, operands, mode)
			return finalize(props, bits, state, flags|InvalidOperation)
		}
		sign := ua.Sign
		if !ua.Class.IsInfinity() {
			sign = ub.Sign
		}
		return finalize(props, Pack(props, sign, props.ExponentInfNaN, big.NewInt(0)), state, 0)
	}
	if ua.Class.IsZero() && ub.Class.IsZero() {
		sign := exactZeroSign(ua.Sign, ub.Sign, state.RoundingMode)
		return finalize(props, Pack(props, sign, 0, big.NewInt(0)), state, 0)
	}

	sum := new(big.Rat).Add(ua.Value, ub.Value)
	if sum.Sign() == 0 {
		sign := exactZeroSign(ua.Sign, ub.Sign, state.RoundingMode)
		return finalize(props, Pack(props, sign, 0, big.NewInt(0)), state, 0)
	}
	sign, mag := ratAbsSign(sum)
	bits, rflags := roundAndPack(props, sign, mag, state)
	return finalize(props, bits, state, rflags)
}

// Sub is add with the second operand negated (spec §4.4 groups sub under
// the same IEEE semantics as add).
func Sub(a, b DynamicFloat) DynamicFloat {
	return Add(a, Neg(b))
}

// Mul implements spec §4.4's mul.
func Mul(a, b DynamicFloat) DynamicFloat {
	props := requireSameProperties(a, b)
	ua, ub := Unpack(props, a.Bits), Unpack(props, b.Bits)
	state := a.FPState.Merge(b.FPState)
	mode := props.Platform.StdBinOpsNaNPropagationMode
	operands := []Unpacked{ua, ub}

	if ua.Class.IsNaN() || ub.Class.IsNaN() {
		bits, flags := selectNaN(props, operands, mode)
		return finalize(props, bits, state, flags)
	}
	productSign := ua.Sign.Xor(ub.Sign)
	if (ua.Class.IsInfinity() && ub.Class.IsZero()) || (ua.Class.IsZero() && ub.Class.IsInfinity()) {
		bits, flags := selectNaN(props, operands, mode)
		return finalize(props, bits, state, flags|InvalidOperation)
	}
	if ua.Class.IsInfinity() || ub.Class.IsInfinity() {
		return finalize(props, Pack(props, productSign, props.ExponentInfNaN, big.NewInt(0)), state, 0)
	}
	if ua.Class.IsZero() || ub.Class.IsZero() {
		return finalize(props, Pack(props, productSign, 0, big.NewInt(0)), state, 0)
	}

	product := new(big.Rat).Mul(ua.Value, ub.Value)
	sign, mag := ratAbsSign(product)
	bits, rflags := roundAndPack(props, sign, mag, state)
	return finalize(props, bits, state, rflags)
}

// Div implements spec §4.4's div.
func Div(a, b DynamicFloat) DynamicFloat {
	props := requireSameProperties(a, b)
	ua, ub := Unpack(props, a.Bits), Unpack(props, b.Bits)
	state := a.FPState.Merge(b.FPState)
	mode := props.Platform.StdBinOpsNaNPropagationMode
	operands := []Unpacked{ua, ub}
	quotientSign := ua.Sign.Xor(ub.Sign)

	if ua.Class.IsNaN() || ub.Class.IsNaN() {
		bits, flags := selectNaN(props, operands, mode)
		return finalize(props, bits, state, flags)
	}
	if (ua.Class.IsInfinity() && ub.Class.IsInfinity()) || (ua.Class.IsZero() && ub.Class.IsZero()) {
		bits, flags := selectNaN(props, operands, mode)
		return finalize(props, bits, state, flags|InvalidOperation)
	}
	if ub.Class.IsZero() {
		flags := StatusFlags(0)
		if !ua.Class.IsInfinity() {
			flags = DivisionByZero
		}
		return finalize(props, Pack(props, quotientSign, props.ExponentInfNaN, big.NewInt(0)), state, flags)
	}
	if ua.Class.IsZero() || ub.Class.IsInfinity() {
		return finalize(props, Pack(props, quotientSign, 0, big.NewInt(0)), state, 0)
	}
	if ua.Class.IsInfinity() {
		return finalize(props, Pack(props, quotientSign, props.ExponentInfNaN, big.NewInt(0)), state, 0)
	}

	quotient := new(big.Rat).Quo(ua.Value, ub.Value)
	sign, mag := ratAbsSign(quotient)
	bits, rflags := roundAndPack(props, sign, mag, state)
	return finalize(props, bits, state, rflags)
}

// roundRatTiesToEven rounds an exact rational to the nearest integer,
// breaking ties to the even integer — used by Remainder, which always
// rounds to nearest regardless of the carried FPState's rounding mode
// (IEEE 754 fixes ieee754_remainder's internal quotient rounding).
func roundRatTiesToEven(q *big.Rat) *big.Int {
	num, den := q.Num(), q.Denom()
	intPart := new(big.Int).Quo(num, den)
	remainder := new(big.Int).Sub(num, new(big.Int).Mul(intPart, den))
	if remainder.Sign() == 0 {
		return intPart
	}
	twice := new(big.Int).Lsh(new(big.Int).Abs(remainder), 1)
	cmp := twice.Cmp(den)
	roundUp := cmp > 0 || (cmp == 0 && intPart.Bit(0) == 1)
	if !roundUp {
		return intPart
	}
	if num.Sign() < 0 {
		return intPart.Sub(intPart, big.NewInt(1))
	}
	return intPart.Add(intPart, big.NewInt(1))
}

// Remainder implements spec §4.4's ieee754_remainder: x − n·y for n the
// integer nearest x/y (ties to even).
func Remainder(a, b DynamicFloat) DynamicFloat {
	props := requireSameProperties(a, b)
	ua, ub := Unpack(props, a.Bits), Unpack(props, b.Bits)
	state := a.FPState.Merge(b.FPState)
	mode := props.Platform.StdBinOpsNaNPropagationMode
	operands := []Unpacked{ua, ub}

	if ua.Class.IsNaN() || ub.Class.IsNaN() {
		bits, flags := selectNaN(props, operands, mode)
		return finalize(props, bits, state, flags)
	}
	if ua.Class.IsInfinity() || ub.Class.IsZero() {
		bits, flags := selectNaN(props, operands, mode)
		return finalize(props, bits, state, flags|InvalidOperation)
	}
	if ub.Class.IsInfinity() {
		return finalize(props, new(big.Int).Set(a.Bits), state, 0)
	}
	if ua.Class.IsZero() {
		return finalize(props, Pack(props, ua.Sign, 0, big.NewInt(0)), state, 0)
	}

	n := roundRatTiesToEven(new(big.Rat).Quo(ua.Value, ub.Value))
	r := new(big.Rat).Sub(ua.Value, new(big.Rat).Mul(new(big.Rat).SetInt(n), ub.Value))

	var sign Sign
	switch {
	case r.Sign() > 0:
		sign = Positive
	case r.Sign() < 0:
		sign = Negative
	default:
		sign = ua.Sign
	}
	mag := new(big.Rat).Abs(r)
	if mag.Sign() == 0 {
		return finalize(props, Pack(props, sign, 0, big.NewInt(0)), state, 0)
	}
	bits, rflags := roundAndPack(props, sign, mag, state)
	return finalize(props, bits, state, rflags)
}
