package softfloat

import "math/big"

// finiteMagnitudeParts splits a finite nonzero Unpacked value's absolute
// value into a truncated integer part and the exact remainder/denominator
// pair decideRoundUp needs.
func finiteMagnitudeParts(u Unpacked) (intPart, remainder, den *big.Int) {
	mag := new(big.Rat).Abs(u.Value)
	num, den := mag.Num(), mag.Denom()
	intPart = new(big.Int).Quo(num, den)
	remainder = new(big.Int).Sub(num, new(big.Int).Mul(intPart, den))
	return intPart, remainder, den
}

// RoundToIntegral implements spec §4.4's round_to_integral(exact, mode):
// float-in, float-out, preserving format. mode overrides the carried
// FPState's rounding mode for this call only, mirroring the teacher's
// AddWithMode pattern of an explicit per-call mode parameter.
func RoundToIntegral(a DynamicFloat, exact bool, mode RoundingMode) DynamicFloat {
	props := a.Properties
	u := Unpack(props, a.Bits)
	state := a.FPState
	nanMode := props.Platform.RoundToIntegralNaNPropagationMode

	if u.Class.IsNaN() {
		bits, flags := selectNaN(props, []Unpacked{u}, nanMode)
		return finalize(props, bits, state, flags)
	}
	if u.Class.IsInfinity() || u.Class.IsZero() {
		return finalize(props, new(big.Int).Set(a.Bits), state, 0)
	}

	intPart, remainder, den := finiteMagnitudeParts(u)
	inexact := remainder.Sign() != 0
	if decideRoundUp(intPart, remainder, den, u.Sign, mode) {
		intPart.Add(intPart, big.NewInt(1))
	}

	var flags StatusFlags
	if exact && inexact {
		flags |= Inexact
	}
	if intPart.Sign() == 0 {
		return finalize(props, Pack(props, u.Sign, 0, big.NewInt(0)), state, flags)
	}

	packState := FPState{RoundingMode: mode, ExceptionHandlingMode: state.ExceptionHandlingMode, TininessDetectionMode: state.TininessDetectionMode}
	bits, rflags := roundAndPack(props, u.Sign, new(big.Rat).SetInt(intPart), packState)
	return finalize(props, bits, state, flags|rflags)
}

// RoundToInteger implements spec §4.4's round_to_integer(exact, mode):
// returns (Option<integer>, FPState).
func RoundToInteger(a DynamicFloat, exact bool, mode RoundingMode) (*big.Int, FPState) {
	props := a.Properties
	u := Unpack(props, a.Bits)
	state := a.FPState

	if u.Class.IsNaN() || u.Class.IsInfinity() {
		return nil, state.WithFlags(InvalidOperation)
	}
	if u.Class.IsZero() {
		return big.NewInt(0), state
	}

	intPart, remainder, den := finiteMagnitudeParts(u)
	inexact := remainder.Sign() != 0
	if decideRoundUp(intPart, remainder, den, u.Sign, mode) {
		intPart.Add(intPart, big.NewInt(1))
	}
	if u.Sign == Negative {
		intPart.Neg(intPart)
	}

	var flags StatusFlags
	if exact && inexact {
		flags |= Inexact
	}
	return intPart, state.WithFlags(flags)
}

// ToInt implements spec §4.4's to_int(exact, mode): returns
// (Option<bignum>, FPState), with [min, max] the target integer type's
// representable range.
func ToInt(a DynamicFloat, exact bool, mode RoundingMode, min, max *big.Int) (*big.Int, FPState) {
	props := a.Properties
	u := Unpack(props, a.Bits)
	state := a.FPState

	if u.Class.IsNaN() || u.Class.IsInfinity() {
		return nil, state.WithFlags(InvalidOperation)
	}
	if u.Class.IsZero() {
		return big.NewInt(0), state
	}

	intPart, remainder, den := finiteMagnitudeParts(u)
	inexact := remainder.Sign() != 0
	if decideRoundUp(intPart, remainder, den, u.Sign, mode) {
		intPart.Add(intPart, big.NewInt(1))
	}
	if u.Sign == Negative {
		intPart.Neg(intPart)
	}

	if intPart.Cmp(min) < 0 || intPart.Cmp(max) > 0 {
		return nil, state.WithFlags(InvalidOperation)
	}
	var flags StatusFlags
	if exact && inexact {
		flags |= Inexact
	}
	return intPart, state.WithFlags(flags)
}

// FromInt implements spec §4.4's from_int: convert a signed bignum to props
// via the rounding kernel.
func FromInt(props FloatProperties, value *big.Int, state FPState) DynamicFloat {
	if value.Sign() == 0 {
		return finalize(props, Pack(props, Positive, 0, big.NewInt(0)), state, 0)
	}
	sign := Positive
	if value.Sign() < 0 {
		sign = Negative
	}
	mag := new(big.Rat).SetInt(new(big.Int).Abs(value))
	bits, rflags := roundAndPack(props, sign, mag, state)
	return finalize(props, bits, state, rflags)
}

// NextUpOrDown implements spec §4.4's next_up_or_down. Nonzero finite values
// are handled by treating the combined exponent+mantissa field as a single
// unsigned integer and incrementing or decrementing it by one: IEEE 754's
// field layout makes that integer ordering match floating-point magnitude
// ordering exactly, so the ripple-carry of a plain +1/-1 reproduces every
// "largest finite -> infinity" / "smallest normal -> largest subnormal"
// boundary case for free.
//
// Zero is handled separately per spec §4.4's literal edge rule: −0 next_up
// is +0 (not the smallest positive subnormal) — stepping away from either
// zero visits the opposite zero before the first subnormal.
func NextUpOrDown(a DynamicFloat, up bool) DynamicFloat {
	props := a.Properties
	u := Unpack(props, a.Bits)
	state := a.FPState
	mode := props.Platform.NextUpOrDownNaNPropagationMode

	if u.Class.IsNaN() {
		bits, flags := selectNaN(props, []Unpacked{u}, mode)
		return finalize(props, bits, state, flags)
	}
	if u.Class.IsInfinity() {
		towardSameSign := (u.Sign == Positive && up) || (u.Sign == Negative && !up)
		if towardSameSign {
			return finalize(props, new(big.Int).Set(a.Bits), state, 0)
		}
		return finalize(props, Pack(props, u.Sign, props.ExponentMaxNormal, new(big.Int).Set(props.MantissaFieldMask)), state, 0)
	}
	if u.Class.IsZero() {
		if up {
			if u.Sign == Negative {
				return finalize(props, Pack(props, Positive, 0, big.NewInt(0)), state, 0)
			}
			return finalize(props, Pack(props, Positive, 0, big.NewInt(1)), state, 0)
		}
		if u.Sign == Positive {
			return finalize(props, Pack(props, Negative, 0, big.NewInt(0)), state, 0)
		}
		return finalize(props, Pack(props, Negative, 0, big.NewInt(1)), state, 0)
	}

	magnitudeIncreasing := (u.Sign == Positive) == up
	combined := new(big.Int).And(a.Bits, new(big.Int).Or(props.ExponentFieldMask, props.MantissaFieldMask))
	if magnitudeIncreasing {
		combined.Add(combined, big.NewInt(1))
	} else {
		combined.Sub(combined, big.NewInt(1))
	}
	if props.HasSignBit && u.Sign == Negative {
		combined.Or(combined, props.SignFieldMask)
	}
	return finalize(props, combined, state, 0)
}

func NextUp(a DynamicFloat) DynamicFloat   { return NextUpOrDown(a, true) }
func NextDown(a DynamicFloat) DynamicFloat { return NextUpOrDown(a, false) }

// ConvertToDynamicFloat implements spec §4.4's convert_to_dynamic_float:
// re-pack under a new format, with NaN payload handled per
// dest.Platform.FloatToFloatConversionNaNPropagationMode.
func ConvertToDynamicFloat(a DynamicFloat, dest FloatProperties) DynamicFloat {
	src := a.Properties
	u := Unpack(src, a.Bits)
	state := a.FPState

	if u.Class.IsNaN() {
		bits, flags := convertNaN(src, dest, u, dest.Platform.FloatToFloatConversionNaNPropagationMode)
		return NewDynamicFloat(dest, bits, state.WithFlags(flags))
	}
	if u.Class.IsInfinity() {
		return NewDynamicFloat(dest, Pack(dest, u.Sign, dest.ExponentInfNaN, big.NewInt(0)), state)
	}
	if u.Class.IsZero() {
		return NewDynamicFloat(dest, Pack(dest, u.Sign, 0, big.NewInt(0)), state)
	}

	mag := new(big.Rat).Abs(u.Value)
	bits, rflags := roundAndPack(dest, u.Sign, mag, state)
	return NewDynamicFloat(dest, bits, state.WithFlags(rflags))
}
