package softfloat

import "math/big"

// FloatProperties is the immutable format descriptor: it derives field
// layout (shifts, masks, biases) from (exponent_width, mantissa_width,
// has_implicit_leading_bit, has_sign_bit, platform_properties) once, at
// construction, and caches every derived value — spec §3.
//
// Bit masks are *big.Int rather than a machine integer because binary128
// (mantissa_width=112, width=128) does not fit in a uint64; math/big is the
// standard-library arbitrary-precision integer type and is used here for
// exactly that reason (no pack dependency offers one — see DESIGN.md).
type FloatProperties struct {
	ExponentWidth         int
	MantissaWidth         int
	HasImplicitLeadingBit bool
	HasSignBit            bool
	Platform              PlatformProperties

	// Derived, cached at construction.
	Width                  int
	FractionWidth          int
	SignFieldShift         int
	ExponentFieldShift     int
	MantissaFieldShift     int
	SignFieldMask          *big.Int
	ExponentFieldMask      *big.Int
	MantissaFieldMask      *big.Int
	MantissaFieldMax       *big.Int
	MantissaFieldNormalMin *big.Int
	MantissaFieldMSBShift  int
	MantissaFieldMSBMask   *big.Int
	ExponentBias           int64
	ExponentInfNaN         int64
	ExponentZeroSubnormal  int64
	ExponentMinNormal      int64
	ExponentMaxNormal      int64
	OverallMask            *big.Int
}

func bigMask(bitsWide int) *big.Int {
	if bitsWide <= 0 {
		return big.NewInt(0)
	}
	m := new(big.Int).Lsh(big.NewInt(1), uint(bitsWide))
	return m.Sub(m, big.NewInt(1))
}

// NewFloatProperties derives a complete FloatProperties from the four shape
// parameters and a platform policy bundle, per spec §3.
func NewFloatProperties(exponentWidth, mantissaWidth int, hasImplicitLeadingBit, hasSignBit bool, platform PlatformProperties) FloatProperties {
	if exponentWidth <= 0 || mantissaWidth <= 0 {
		panic(&DomainError{Op: "NewFloatProperties", Msg: "exponent_width and mantissa_width must be positive", Code: ErrInvalidFormat})
	}

	fractionWidth := mantissaWidth
	if !hasImplicitLeadingBit {
		fractionWidth = mantissaWidth + 1
	}

	signWidth := 0
	if hasSignBit {
		signWidth = 1
	}
	width := signWidth + exponentWidth + fractionWidth

	p := FloatProperties{
		ExponentWidth:         exponentWidth,
		MantissaWidth:         mantissaWidth,
		HasImplicitLeadingBit: hasImplicitLeadingBit,
		HasSignBit:            hasSignBit,
		Platform:              platform,

		Width:         width,
		FractionWidth: fractionWidth,

		MantissaFieldShift: 0,
		ExponentFieldShift: fractionWidth,

		MantissaFieldMask: bigMask(fractionWidth),
		ExponentFieldMask: new(big.Int).Lsh(bigMask(exponentWidth), uint(fractionWidth)),

		MantissaFieldMax:       bigMask(fractionWidth),
		MantissaFieldMSBShift:  fractionWidth - 1,
		ExponentBias:           int64(1)<<(uint(exponentWidth)-1) - 1,
		ExponentInfNaN:         int64(1)<<uint(exponentWidth) - 1,
		ExponentZeroSubnormal:  0,
		ExponentMinNormal:      1,
	}
	p.ExponentMaxNormal = p.ExponentInfNaN - 1
	p.MantissaFieldMSBMask = new(big.Int).Lsh(big.NewInt(1), uint(p.MantissaFieldMSBShift))
	if hasImplicitLeadingBit {
		// The leading 1 of a normal significand is implicit, so the stored
		// field's minimum value for a normal is 0.
		p.MantissaFieldNormalMin = big.NewInt(0)
	} else {
		// No implicit bit: a normal's stored field must carry the leading 1
		// explicitly, which lands at the field's MSB position.
		p.MantissaFieldNormalMin = new(big.Int).Set(p.MantissaFieldMSBMask)
	}

	if hasSignBit {
		p.SignFieldShift = width - 1
		p.SignFieldMask = new(big.Int).Lsh(big.NewInt(1), uint(p.SignFieldShift))
	} else {
		p.SignFieldShift = 0
		p.SignFieldMask = big.NewInt(0)
	}

	p.OverallMask = bigMask(width)

	return p
}

var standardShapes = map[int][2]int{
	16:  {5, 10},
	32:  {8, 23},
	64:  {11, 52},
	128: {15, 112},
}

// StandardFloatProperties builds FloatProperties matching one of the IEEE
// 754-2019 binary{16,32,64,128} shapes, with an implicit leading bit and a
// sign bit, under the given platform (defaults to the configured
// DefaultPlatform when no platform is supplied, which is PlatformRISCV unless
// Configure changed it — see Config in config.go).
func StandardFloatProperties(width int, platform ...PlatformProperties) FloatProperties {
	shape, ok := standardShapes[width]
	if !ok {
		panic(&DomainError{Op: "StandardFloatProperties", Value: width, Msg: "width must be one of 16, 32, 64, 128", Code: ErrInvalidFormat})
	}
	plat := GetConfig().DefaultPlatform
	if len(platform) > 0 {
		plat = platform[0]
	}
	return NewFloatProperties(shape[0], shape[1], true, true, plat)
}

// IsStandard reports whether this format matches one of the IEEE 754-2019
// binary{16,32,64,128} shapes with an implicit leading bit and a sign bit.
func (p FloatProperties) IsStandard() bool {
	if !p.HasImplicitLeadingBit || !p.HasSignBit {
		return false
	}
	shape, ok := standardShapes[p.Width]
	if !ok {
		return false
	}
	return shape[0] == p.ExponentWidth && shape[1] == p.MantissaWidth
}

// Equal compares the defining parameters of two FloatProperties (the
// derived fields are a pure function of these, so comparing them suffices
// and sidesteps comparing *big.Int fields with ==).
func (p FloatProperties) Equal(other FloatProperties) bool {
	return p.ExponentWidth == other.ExponentWidth &&
		p.MantissaWidth == other.MantissaWidth &&
		p.HasImplicitLeadingBit == other.HasImplicitLeadingBit &&
		p.HasSignBit == other.HasSignBit &&
		p.Platform == other.Platform
}
