package softfloat

import "math/big"

// Unpacked is the decoded, classified view of a bit pattern under a given
// FloatProperties — spec §4.1.
type Unpacked struct {
	Sign  Sign
	Class FloatClass

	// Value holds the exact mathematical value for finite classes (zero
	// included, where it is exactly big.NewRat(0,1)). Nil for infinities and
	// NaN classes.
	Value *big.Rat

	// NaNPayload holds the raw mantissa field bits for NaN classes (the
	// full mantissa field, quiet bit included). Nil for non-NaN classes.
	NaNPayload *big.Int
}

func fieldOf(bits *big.Int, mask *big.Int, shift int) *big.Int {
	f := new(big.Int).And(bits, mask)
	return f.Rsh(f, uint(shift))
}

// Unpack classifies a bit pattern and, for finite values, computes its
// exact rational value — spec §4.1's classification rules.
func Unpack(props FloatProperties, bits *big.Int) Unpacked {
	if bits.Sign() < 0 || bits.Cmp(props.OverallMask) > 0 {
		panic(&DomainError{Op: "Unpack", Value: bits.String(), Msg: "bits outside OverallMask for this format", Code: ErrBitsOutOfRange})
	}

	sign := Positive
	if props.HasSignBit {
		signField := fieldOf(bits, props.SignFieldMask, props.SignFieldShift)
		if signField.Sign() != 0 {
			sign = Negative
		}
	}

	expField := fieldOf(bits, props.ExponentFieldMask, props.ExponentFieldShift)
	mantField := fieldOf(bits, props.MantissaFieldMask, props.MantissaFieldShift)
	exp := expField.Int64()

	switch {
	case exp == props.ExponentZeroSubnormal:
		if mantField.Sign() == 0 {
			class := ClassPositiveZero
			if sign == Negative {
				class = ClassNegativeZero
			}
			return Unpacked{Sign: sign, Class: class, Value: big.NewRat(0, 1)}
		}
		class := ClassPositiveSubnormal
		if sign == Negative {
			class = ClassNegativeSubnormal
		}
		value := ratFromSignificandExp(mantField, 1-int(props.ExponentBias)-props.MantissaWidth)
		if sign == Negative {
			value = value.Neg(value)
		}
		return Unpacked{Sign: sign, Class: class, Value: value}

	case exp == props.ExponentInfNaN:
		if mantField.Sign() == 0 {
			class := ClassPositiveInfinity
			if sign == Negative {
				class = ClassNegativeInfinity
			}
			return Unpacked{Sign: sign, Class: class}
		}
		quiet := isQuietMantissa(props, mantField)
		class := ClassSignalingNaN
		if quiet {
			class = ClassQuietNaN
		}
		return Unpacked{Sign: sign, Class: class, NaNPayload: mantField}

	default:
		class := ClassPositiveNormal
		if sign == Negative {
			class = ClassNegativeNormal
		}
		significand := new(big.Int).Set(mantField)
		if props.HasImplicitLeadingBit {
			significand = new(big.Int).Or(mantField, new(big.Int).Lsh(big.NewInt(1), uint(props.MantissaWidth)))
		}
		value := ratFromSignificandExp(significand, int(exp)-int(props.ExponentBias)-props.MantissaWidth)
		if sign == Negative {
			value = value.Neg(value)
		}
		return Unpacked{Sign: sign, Class: class, Value: value}
	}
}

// isQuietMantissa reports whether a NaN's mantissa field bits denote a
// quiet NaN under the format's platform QuietNaNFormat.
func isQuietMantissa(props FloatProperties, mantField *big.Int) bool {
	msbSet := new(big.Int).And(mantField, props.MantissaFieldMSBMask).Sign() != 0
	if props.Platform.QuietNaNFormat() == StandardQuietNaN {
		return msbSet
	}
	return !msbSet
}

// Pack assembles a bit pattern from sign/exponent-field/mantissa-field
// components — the inverse half of the rounding kernel's pipeline.
func Pack(props FloatProperties, sign Sign, expField int64, mantField *big.Int) *big.Int {
	bits := new(big.Int).Set(mantField)
	bits.And(bits, props.MantissaFieldMask)
	expBig := new(big.Int).Lsh(big.NewInt(expField), uint(props.ExponentFieldShift))
	bits.Or(bits, expBig)
	if props.HasSignBit && sign == Negative {
		bits.Or(bits, props.SignFieldMask)
	}
	return bits
}
