package softfloat

import "math/big"

// DynamicFloat is a value carrying (FloatProperties, bit pattern, FPState) —
// spec §3's façade. Invariant: Bits & ^OverallMask == 0.
type DynamicFloat struct {
	Properties FloatProperties
	Bits       *big.Int
	FPState    FPState
}

// NewDynamicFloat constructs a DynamicFloat, enforcing the bits-within-mask
// invariant.
func NewDynamicFloat(props FloatProperties, bits *big.Int, state FPState) DynamicFloat {
	if bits.Sign() < 0 || bits.Cmp(props.OverallMask) > 0 {
		panic(&DomainError{Op: "NewDynamicFloat", Value: bits.String(), Msg: "bits outside OverallMask", Code: ErrBitsOutOfRange})
	}
	return DynamicFloat{Properties: props, Bits: new(big.Int).Set(bits), FPState: state}
}

// DynamicFloatOption overrides a single field when copying a DynamicFloat.
type DynamicFloatOption func(*DynamicFloat)

func WithDynamicBits(bits *big.Int) DynamicFloatOption {
	return func(d *DynamicFloat) { d.Bits = new(big.Int).Set(bits) }
}
func WithDynamicProperties(props FloatProperties) DynamicFloatOption {
	return func(d *DynamicFloat) { d.Properties = props }
}
func WithDynamicFPState(state FPState) DynamicFloatOption {
	return func(d *DynamicFloat) { d.FPState = state }
}

// With returns a copy of d with the given overrides applied.
func (d DynamicFloat) With(opts ...DynamicFloatOption) DynamicFloat {
	for _, opt := range opts {
		opt(&d)
	}
	if d.Bits.Sign() < 0 || d.Bits.Cmp(d.Properties.OverallMask) > 0 {
		panic(&DomainError{Op: "DynamicFloat.With", Value: d.Bits.String(), Msg: "bits outside OverallMask", Code: ErrBitsOutOfRange})
	}
	return d
}

// Equal compares all three fields — two bit-identical NaNs are equal.
func (d DynamicFloat) Equal(other DynamicFloat) bool {
	return d.Properties.Equal(other.Properties) && d.Bits.Cmp(other.Bits) == 0 && d.FPState == other.FPState
}

func (d DynamicFloat) unpack() Unpacked {
	return Unpack(d.Properties, d.Bits)
}

// Class is the IEEE 754 classification of d.
func (d DynamicFloat) Class() FloatClass { return d.unpack().Class }

func (d DynamicFloat) Sign() Sign { return d.unpack().Sign }

func (d DynamicFloat) ExponentField() *big.Int {
	return fieldOf(d.Bits, d.Properties.ExponentFieldMask, d.Properties.ExponentFieldShift)
}

func (d DynamicFloat) MantissaField() *big.Int {
	return fieldOf(d.Bits, d.Properties.MantissaFieldMask, d.Properties.MantissaFieldShift)
}

func (d DynamicFloat) MantissaFieldMSB() bool {
	return new(big.Int).And(d.MantissaField(), d.Properties.MantissaFieldMSBMask).Sign() != 0
}

func (d DynamicFloat) IsNegativeInfinity() bool  { return d.Class() == ClassNegativeInfinity }
func (d DynamicFloat) IsPositiveInfinity() bool  { return d.Class() == ClassPositiveInfinity }
func (d DynamicFloat) IsNegativeNormal() bool    { return d.Class() == ClassNegativeNormal }
func (d DynamicFloat) IsPositiveNormal() bool    { return d.Class() == ClassPositiveNormal }
func (d DynamicFloat) IsNegativeSubnormal() bool { return d.Class() == ClassNegativeSubnormal }
func (d DynamicFloat) IsPositiveSubnormal() bool { return d.Class() == ClassPositiveSubnormal }
func (d DynamicFloat) IsNegativeZero() bool      { return d.Class() == ClassNegativeZero }
func (d DynamicFloat) IsPositiveZero() bool      { return d.Class() == ClassPositiveZero }
func (d DynamicFloat) IsQuietNaN() bool          { return d.Class() == ClassQuietNaN }
func (d DynamicFloat) IsSignalingNaN() bool      { return d.Class() == ClassSignalingNaN }
func (d DynamicFloat) IsInfinity() bool          { return d.Class().IsInfinity() }
func (d DynamicFloat) IsNormal() bool            { return d.Class().IsNormal() }
func (d DynamicFloat) IsSubnormal() bool         { return d.Class().IsSubnormal() }
func (d DynamicFloat) IsZero() bool              { return d.Class().IsZero() }
func (d DynamicFloat) IsNaN() bool               { return d.Class().IsNaN() }
func (d DynamicFloat) IsFinite() bool            { return d.Class().IsFinite() }
func (d DynamicFloat) IsSubnormalOrZero() bool   { return d.IsSubnormal() || d.IsZero() }

// ToQuietNaN sets the quiet bit per format, preserving the rest of the
// payload — spec §4.4's to_quiet_nan constant/operation.
func (d DynamicFloat) ToQuietNaN() DynamicFloat {
	u := d.unpack()
	if !u.Class.IsNaN() {
		panic(&DomainError{Op: "DynamicFloat.ToQuietNaN", Msg: "value is not a NaN"})
	}
	bits := Pack(d.Properties, u.Sign, d.Properties.ExponentInfNaN, quietPayload(d.Properties, u.NaNPayload))
	return d.With(WithDynamicBits(bits))
}

// --- Constant factories (spec §4.4) ---

func zeroFPState() FPState { return NewFPState() }

func PositiveZeroValue(props FloatProperties) DynamicFloat {
	return NewDynamicFloat(props, big.NewInt(0), zeroFPState())
}

func NegativeZeroValue(props FloatProperties) DynamicFloat {
	return NewDynamicFloat(props, Pack(props, Negative, 0, big.NewInt(0)), zeroFPState())
}

// SignedZeroValue returns the zero of the given sign.
func SignedZeroValue(props FloatProperties, s Sign) DynamicFloat {
	if s == Positive {
		return PositiveZeroValue(props)
	}
	return NegativeZeroValue(props)
}

func PositiveInfinityValue(props FloatProperties) DynamicFloat {
	return NewDynamicFloat(props, Pack(props, Positive, props.ExponentInfNaN, big.NewInt(0)), zeroFPState())
}

func NegativeInfinityValue(props FloatProperties) DynamicFloat {
	return NewDynamicFloat(props, Pack(props, Negative, props.ExponentInfNaN, big.NewInt(0)), zeroFPState())
}

// SignedInfinityValue returns the infinity of the given sign.
func SignedInfinityValue(props FloatProperties, s Sign) DynamicFloat {
	if s == Positive {
		return PositiveInfinityValue(props)
	}
	return NegativeInfinityValue(props)
}

// QuietNaNValue returns the platform canonical NaN for props (= quiet_nan).
func QuietNaNValue(props FloatProperties) DynamicFloat {
	return NewDynamicFloat(props, canonicalNaNBits(props), zeroFPState())
}

// SignalingNaNValue returns (exponent_inf_nan, mantissa with the quiet bit
// cleared per format and the LSB set) — spec §4.4's signaling_nan constant.
func SignalingNaNValue(props FloatProperties) DynamicFloat {
	mant := big.NewInt(1)
	if props.Platform.QuietNaNFormat() == StandardQuietNaN {
		mant.AndNot(mant, props.MantissaFieldMSBMask)
	} else {
		mant.Or(mant, props.MantissaFieldMSBMask)
	}
	if mant.Sign() == 0 {
		mant.SetInt64(1)
	}
	bits := Pack(props, Positive, props.ExponentInfNaN, mant)
	return NewDynamicFloat(props, bits, zeroFPState())
}

// SignedMaxNormalValue returns the largest finite magnitude with sign s.
func SignedMaxNormalValue(props FloatProperties, s Sign) DynamicFloat {
	bits := Pack(props, s, props.ExponentMaxNormal, new(big.Int).Set(props.MantissaFieldMask))
	return NewDynamicFloat(props, bits, zeroFPState())
}

// SignedMinSubnormalValue returns the smallest positive subnormal magnitude
// with sign s.
func SignedMinSubnormalValue(props FloatProperties, s Sign) DynamicFloat {
	bits := Pack(props, s, 0, big.NewInt(1))
	return NewDynamicFloat(props, bits, zeroFPState())
}

// FromBigInt constructs a DynamicFloat directly from a raw bit pattern,
// with the default (TiesToEven, no flags) FPState.
func FromBigInt(props FloatProperties, bits *big.Int) DynamicFloat {
	return NewDynamicFloat(props, bits, zeroFPState())
}

// FromUint64 is a convenience constructor for formats whose bits fit in a
// uint64 (width <= 64).
func FromUint64(props FloatProperties, bits uint64) DynamicFloat {
	return FromBigInt(props, new(big.Int).SetUint64(bits))
}
