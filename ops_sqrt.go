package softfloat

import "math/big"

// decideSqrtRoundUp mirrors decideRoundUp, but operates on the guard/round
// information produced by roundSqrtAndPack's one-extra-bit sqrt instead of
// an exact remainder/denominator pair (sqrt(value) is irrational in the
// general case, so no exact fraction is available to compare against).
func decideSqrtRoundUp(intPart *big.Int, remainderIsZero, remainderIsExactHalf, aboveHalf bool, mode RoundingMode) bool {
	if remainderIsZero {
		return false
	}
	switch mode {
	case TiesToEven:
		if aboveHalf {
			return true
		}
		if remainderIsExactHalf {
			return intPart.Bit(0) == 1
		}
		return false
	case TowardZero, TowardNegative:
		return false
	case TowardPositive:
		return true
	case TiesToAway:
		return aboveHalf || remainderIsExactHalf
	default:
		panic(&DomainError{Op: "decideSqrtRoundUp", Msg: "unknown RoundingMode value", Code: ErrUnknownEnumValue})
	}
}

// roundSqrtAndPack computes the correctly-rounded square root of a positive
// exact rational and packs it under props. It is the sqrt analogue of
// roundAndPack, reusing ratSqrt's exact integer square root to obtain one
// extra guard bit beyond the target mantissa width, which is enough to
// distinguish an exact tie from a merely-close approximation without ever
// representing sqrt(value) itself as an exact rational.
func roundSqrtAndPack(props FloatProperties, value *big.Rat, state FPState) (*big.Int, StatusFlags) {
	var flags StatusFlags

	e := floorLog2(value)
	es := floorDiv(e, 2)
	trueExpMin := 1 - int(props.ExponentBias)
	trueExpMax := int(props.ExponentMaxNormal) - int(props.ExponentBias)

	subnormalCandidate := es < trueExpMin
	var shift int
	if subnormalCandidate {
		shift = props.MantissaWidth - trueExpMin
	} else {
		shift = props.MantissaWidth - es
	}

	rootExt, stickyExt := ratSqrt(value, shift+1)
	roundBit := rootExt.Bit(0)
	intPart := new(big.Int).Rsh(rootExt, 1)

	remainderIsZero := !stickyExt && roundBit == 0
	remainderIsExactHalf := !stickyExt && roundBit == 1
	aboveHalf := stickyExt && roundBit == 1
	inexact := !remainderIsZero
	tinyBeforeRounding := subnormalCandidate

	if decideSqrtRoundUp(intPart, remainderIsZero, remainderIsExactHalf, aboveHalf, state.RoundingMode) {
		intPart.Add(intPart, big.NewInt(1))
	}

	if !subnormalCandidate {
		if intPart.BitLen() > props.MantissaWidth+1 {
			intPart.Rsh(intPart, 1)
			es++
		}
	} else if intPart.BitLen() > props.MantissaWidth {
		subnormalCandidate = false
		es = trueExpMin
	}

	tiny := subnormalCandidate
	if state.TininessDetectionMode == BeforeRounding {
		tiny = tinyBeforeRounding
	}
	if tiny && (inexact || state.ExceptionHandlingMode == SignalExactUnderflow) {
		flags |= Underflow
	}
	if inexact {
		flags |= Inexact
	}

	if es > trueExpMax {
		flags |= Overflow | Inexact
		return overflowResult(props, Positive, state.RoundingMode), flags
	}

	var expField int64
	if !subnormalCandidate {
		expField = int64(es) + props.ExponentBias
	}
	mantField := new(big.Int).And(intPart, props.MantissaFieldMask)
	return Pack(props, Positive, expField, mantField), flags
}

// Sqrt implements spec §4.4's sqrt.
func Sqrt(a DynamicFloat) DynamicFloat {
	props := a.Properties
	u := Unpack(props, a.Bits)
	state := a.FPState
	mode := props.Platform.SqrtNaNPropagationMode

	if u.Class.IsNaN() {
		bits, flags := selectNaN(props, []Unpacked{u}, mode)
		return finalize(props, bits, state, flags)
	}
	if u.Class.IsZero() || u.Class == ClassPositiveInfinity {
		return finalize(props, new(big.Int).Set(a.Bits), state, 0)
	}
	if u.Sign == Negative {
		return finalize(props, canonicalNaNBits(props), state, InvalidOperation)
	}

	bits, flags := roundSqrtAndPack(props, u.Value, state)
	return finalize(props, bits, state, flags)
}

// Rsqrt implements spec §4.4's rsqrt: 1/sqrt(x), computed by reusing the
// sqrt rounding kernel on the exact reciprocal of x.
func Rsqrt(a DynamicFloat) DynamicFloat {
	props := a.Properties
	u := Unpack(props, a.Bits)
	state := a.FPState
	mode := props.Platform.RsqrtNaNPropagationMode

	if u.Class.IsNaN() {
		bits, flags := selectNaN(props, []Unpacked{u}, mode)
		return finalize(props, bits, state, flags)
	}
	if u.Class == ClassPositiveZero {
		return finalize(props, Pack(props, Positive, props.ExponentInfNaN, big.NewInt(0)), state, DivisionByZero)
	}
	if u.Class == ClassNegativeZero {
		return finalize(props, Pack(props, Negative, props.ExponentInfNaN, big.NewInt(0)), state, DivisionByZero)
	}
	if u.Sign == Negative {
		return finalize(props, canonicalNaNBits(props), state, InvalidOperation)
	}
	if u.Class == ClassPositiveInfinity {
		return finalize(props, Pack(props, Positive, 0, big.NewInt(0)), state, 0)
	}

	inv := new(big.Rat).Inv(u.Value)
	bits, flags := roundSqrtAndPack(props, inv, state)
	return finalize(props, bits, state, flags)
}
