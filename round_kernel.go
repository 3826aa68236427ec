package softfloat

import "math/big"

// decideRoundUp implements step 4 of spec §4.2: select whether the
// discarded fraction (remainder/den, 0 <= remainder/den < 1) rounds the
// truncated integer significand up, under the given mode.
func decideRoundUp(intPart, remainder, den *big.Int, sign Sign, mode RoundingMode) bool {
	if remainder.Sign() == 0 {
		return false
	}
	twiceRemainder := new(big.Int).Lsh(remainder, 1)
	cmp := twiceRemainder.Cmp(den)
	switch mode {
	case TiesToEven:
		if cmp < 0 {
			return false
		}
		if cmp > 0 {
			return true
		}
		return intPart.Bit(0) == 1
	case TowardZero:
		return false
	case TowardPositive:
		return sign == Positive
	case TowardNegative:
		return sign == Negative
	case TiesToAway:
		return cmp >= 0
	default:
		panic(&DomainError{Op: "decideRoundUp", Msg: "unknown RoundingMode value", Code: ErrUnknownEnumValue})
	}
}

// overflowResult implements step 2 of spec §4.2: the signed result
// (largest finite magnitude or infinity) an overflowing rounded value
// collapses to, chosen per rounding mode.
func overflowResult(props FloatProperties, sign Sign, mode RoundingMode) *big.Int {
	largestFinite := func() *big.Int {
		return Pack(props, sign, props.ExponentMaxNormal, new(big.Int).Set(props.MantissaFieldMask))
	}
	infinity := func() *big.Int {
		return Pack(props, sign, props.ExponentInfNaN, big.NewInt(0))
	}
	switch mode {
	case TowardZero:
		return largestFinite()
	case TowardPositive:
		if sign == Positive {
			return infinity()
		}
		return largestFinite()
	case TowardNegative:
		if sign == Negative {
			return infinity()
		}
		return largestFinite()
	case TiesToEven, TiesToAway:
		return infinity()
	default:
		panic(&DomainError{Op: "overflowResult", Msg: "unknown RoundingMode value", Code: ErrUnknownEnumValue})
	}
}

// roundAndPack is the rounding kernel of spec §4.2: given a sign and an
// exact nonzero rational magnitude, it produces the correctly-rounded bit
// pattern for props under state, plus the flags that rounding raised
// (to be unioned into the caller's FPState).
func roundAndPack(props FloatProperties, sign Sign, magnitude *big.Rat, state FPState) (*big.Int, StatusFlags) {
	if magnitude.Sign() == 0 {
		return Pack(props, sign, 0, big.NewInt(0)), 0
	}

	var flags StatusFlags

	e := floorLog2(magnitude)
	trueExpMin := 1 - int(props.ExponentBias)
	trueExpMax := int(props.ExponentMaxNormal) - int(props.ExponentBias)

	subnormalCandidate := e < trueExpMin
	var shift int
	if subnormalCandidate {
		shift = props.MantissaWidth - trueExpMin
	} else {
		shift = props.MantissaWidth - e
	}

	scaled := new(big.Rat).Mul(magnitude, ratPow2(shift))
	num := scaled.Num()
	den := scaled.Denom()
	intPart := new(big.Int).Quo(num, den)
	remainder := new(big.Int).Sub(num, new(big.Int).Mul(intPart, den))

	tinyBeforeRounding := subnormalCandidate
	inexact := remainder.Sign() != 0

	if decideRoundUp(intPart, remainder, den, sign, state.RoundingMode) {
		intPart.Add(intPart, big.NewInt(1))
	}

	if !subnormalCandidate {
		if intPart.BitLen() > props.MantissaWidth+1 {
			intPart.Rsh(intPart, 1)
			e++
		}
	} else if intPart.BitLen() > props.MantissaWidth {
		subnormalCandidate = false
		e = trueExpMin
	}

	var tiny bool
	if state.TininessDetectionMode == BeforeRounding {
		tiny = tinyBeforeRounding
	} else {
		tiny = subnormalCandidate
	}

	if tiny && (inexact || state.ExceptionHandlingMode == SignalExactUnderflow) {
		flags |= Underflow
	}
	if inexact {
		flags |= Inexact
	}

	if e > trueExpMax {
		flags |= Overflow | Inexact
		return overflowResult(props, sign, state.RoundingMode), flags
	}

	var expField int64
	if !subnormalCandidate {
		expField = int64(e) + props.ExponentBias
	}
	mantField := new(big.Int).And(intPart, props.MantissaFieldMask)
	return Pack(props, sign, expField, mantField), flags
}
