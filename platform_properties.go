package softfloat

// PlatformProperties is the immutable policy bundle distinguishing one ISA's
// floating-point behavior from another's: canonical NaN bits, and the
// NaN-propagation / FMA-edge-case mode for every operator family.
type PlatformProperties struct {
	CanonicalNaNSign                Sign
	CanonicalNaNMantissaMSB         bool
	CanonicalNaNMantissaSecondToMSB bool
	CanonicalNaNMantissaRest        bool

	StdBinOpsNaNPropagationMode BinaryNaNPropagationMode
	FMANaNPropagationMode       TernaryNaNPropagationMode
	FMAInfZeroQNaNResult        FMAInfZeroQNaNResult

	RoundToIntegralNaNPropagationMode UnaryNaNPropagationMode
	NextUpOrDownNaNPropagationMode    UnaryNaNPropagationMode
	ScaleBNaNPropagationMode          UnaryNaNPropagationMode
	SqrtNaNPropagationMode            UnaryNaNPropagationMode
	RsqrtNaNPropagationMode           UnaryNaNPropagationMode

	FloatToFloatConversionNaNPropagationMode FloatToFloatConversionNaNPropagationMode
}

// QuietNaNFormat derives from the platform's canonical NaN mantissa MSB:
// Standard when it is set, MIPSLegacy when it is clear.
func (p PlatformProperties) QuietNaNFormat() QuietNaNFormat {
	if p.CanonicalNaNMantissaMSB {
		return StandardQuietNaN
	}
	return MIPSLegacyQuietNaN
}

// PlatformOption overrides a single field of a PlatformProperties value.
type PlatformOption func(*PlatformProperties)

func WithCanonicalNaNSign(s Sign) PlatformOption {
	return func(p *PlatformProperties) { p.CanonicalNaNSign = s }
}
func WithCanonicalNaNMantissaMSB(v bool) PlatformOption {
	return func(p *PlatformProperties) { p.CanonicalNaNMantissaMSB = v }
}
func WithCanonicalNaNMantissaSecondToMSB(v bool) PlatformOption {
	return func(p *PlatformProperties) { p.CanonicalNaNMantissaSecondToMSB = v }
}
func WithCanonicalNaNMantissaRest(v bool) PlatformOption {
	return func(p *PlatformProperties) { p.CanonicalNaNMantissaRest = v }
}
func WithStdBinOpsNaNPropagationMode(m BinaryNaNPropagationMode) PlatformOption {
	return func(p *PlatformProperties) { p.StdBinOpsNaNPropagationMode = m }
}
func WithFMANaNPropagationMode(m TernaryNaNPropagationMode) PlatformOption {
	return func(p *PlatformProperties) { p.FMANaNPropagationMode = m }
}
func WithFMAInfZeroQNaNResult(m FMAInfZeroQNaNResult) PlatformOption {
	return func(p *PlatformProperties) { p.FMAInfZeroQNaNResult = m }
}
func WithRoundToIntegralNaNPropagationMode(m UnaryNaNPropagationMode) PlatformOption {
	return func(p *PlatformProperties) { p.RoundToIntegralNaNPropagationMode = m }
}
func WithNextUpOrDownNaNPropagationMode(m UnaryNaNPropagationMode) PlatformOption {
	return func(p *PlatformProperties) { p.NextUpOrDownNaNPropagationMode = m }
}
func WithScaleBNaNPropagationMode(m UnaryNaNPropagationMode) PlatformOption {
	return func(p *PlatformProperties) { p.ScaleBNaNPropagationMode = m }
}
func WithSqrtNaNPropagationMode(m UnaryNaNPropagationMode) PlatformOption {
	return func(p *PlatformProperties) { p.SqrtNaNPropagationMode = m }
}
func WithRsqrtNaNPropagationMode(m UnaryNaNPropagationMode) PlatformOption {
	return func(p *PlatformProperties) { p.RsqrtNaNPropagationMode = m }
}
func WithFloatToFloatConversionNaNPropagationMode(m FloatToFloatConversionNaNPropagationMode) PlatformOption {
	return func(p *PlatformProperties) { p.FloatToFloatConversionNaNPropagationMode = m }
}

// NewPlatformProperties builds a PlatformProperties from an optional base
// value (nil means the zero value) plus field overrides, mirroring the
// "PlatformProperties(base?, **field_overrides)" constructor from spec §6.
func NewPlatformProperties(base *PlatformProperties, opts ...PlatformOption) PlatformProperties {
	var p PlatformProperties
	if base != nil {
		p = *base
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// With returns a copy of p with the given overrides applied — the
// "clonable with keyword overrides" operation from spec §3.
func (p PlatformProperties) With(opts ...PlatformOption) PlatformProperties {
	return NewPlatformProperties(&p, opts...)
}

func (p PlatformProperties) String() string {
	return "PlatformProperties(canonical_nan_sign=" + p.CanonicalNaNSign.String() + ")"
}

// allAlwaysCanonical is shared by RISC-V's "every NaN-propagation mode is
// AlwaysCanonical" default.
func allAlwaysCanonical() PlatformProperties {
	return PlatformProperties{
		CanonicalNaNSign:                Positive,
		CanonicalNaNMantissaMSB:         true,
		CanonicalNaNMantissaSecondToMSB: false,
		CanonicalNaNMantissaRest:        false,

		StdBinOpsNaNPropagationMode: BinaryAlwaysCanonical,
		FMANaNPropagationMode:       TernaryAlwaysCanonical,
		FMAInfZeroQNaNResult:        CanonicalAndGenerateInvalid,

		RoundToIntegralNaNPropagationMode: UnaryAlwaysCanonical,
		NextUpOrDownNaNPropagationMode:    UnaryAlwaysCanonical,
		ScaleBNaNPropagationMode:          UnaryAlwaysCanonical,
		SqrtNaNPropagationMode:            UnaryAlwaysCanonical,
		RsqrtNaNPropagationMode:           UnaryAlwaysCanonical,

		FloatToFloatConversionNaNPropagationMode: ConversionAlwaysCanonical,
	}
}

// Eight named platform constants (spec §6). Values for platforms other than
// RISC-V (which spec.md pins exactly) are this engine's Open Question
// resolutions — recorded in DESIGN.md — chosen to match each ISA's
// widely-documented NaN-handling idiom, not independently re-derived from a
// hardware manual.
var (
	// PlatformRISCV matches spec.md's exact RISC-V contract: canonical NaN
	// positive with only the mantissa MSB set, and every NaN-propagation
	// mode forced to AlwaysCanonical.
	PlatformRISCV = allAlwaysCanonical()

	// PlatformARM: ARM VFP/NEON default-NaN mode always substitutes the
	// canonical positive quiet NaN.
	PlatformARM = allAlwaysCanonical()

	// PlatformMIPSLegacy: pre-2008 MIPS reads the mantissa MSB with inverted
	// polarity (clear means quiet), so its canonical NaN sets the
	// second-to-MSB instead; legacy FPUs propagate the first NaN operand found.
	PlatformMIPSLegacy = PlatformProperties{
		CanonicalNaNSign:                Positive,
		CanonicalNaNMantissaMSB:         false,
		CanonicalNaNMantissaSecondToMSB: true,
		CanonicalNaNMantissaRest:        false,

		StdBinOpsNaNPropagationMode: BinaryFirstSecond,
		FMANaNPropagationMode:       TernaryFirstSecondThird,
		FMAInfZeroQNaNResult:        PropagateAndGenerateInvalid,

		RoundToIntegralNaNPropagationMode: UnaryFirst,
		NextUpOrDownNaNPropagationMode:    UnaryFirst,
		ScaleBNaNPropagationMode:          UnaryFirst,
		SqrtNaNPropagationMode:            UnaryFirst,
		RsqrtNaNPropagationMode:           UnaryFirst,

		FloatToFloatConversionNaNPropagationMode: ConversionRetainMostSignificantBits,
	}

	// PlatformMIPS2008: MIPS adopting the IEEE 754-2008 recommended
	// (standard) quiet-bit convention, still preferring the first operand.
	PlatformMIPS2008 = PlatformProperties{
		CanonicalNaNSign:                Positive,
		CanonicalNaNMantissaMSB:         true,
		CanonicalNaNMantissaSecondToMSB: false,
		CanonicalNaNMantissaRest:        false,

		StdBinOpsNaNPropagationMode: BinaryFirstSecond,
		FMANaNPropagationMode:       TernaryFirstSecondThird,
		FMAInfZeroQNaNResult:        PropagateAndGenerateInvalid,

		RoundToIntegralNaNPropagationMode: UnaryFirst,
		NextUpOrDownNaNPropagationMode:    UnaryFirst,
		ScaleBNaNPropagationMode:          UnaryFirst,
		SqrtNaNPropagationMode:            UnaryFirst,
		RsqrtNaNPropagationMode:           UnaryFirst,

		FloatToFloatConversionNaNPropagationMode: ConversionRetainMostSignificantBits,
	}

	// PlatformPOWER: POWER/PowerPC propagates the first NaN operand it
	// encounters, preferring a signaling NaN if one is present.
	PlatformPOWER = PlatformProperties{
		CanonicalNaNSign:                Positive,
		CanonicalNaNMantissaMSB:         true,
		CanonicalNaNMantissaSecondToMSB: false,
		CanonicalNaNMantissaRest:        false,

		StdBinOpsNaNPropagationMode: BinaryFirstSecondPreferringSNaN,
		FMANaNPropagationMode:       TernaryFirstSecondThirdPreferringSNaN,
		FMAInfZeroQNaNResult:        PropagateAndGenerateInvalid,

		RoundToIntegralNaNPropagationMode: UnaryFirst,
		NextUpOrDownNaNPropagationMode:    UnaryFirst,
		ScaleBNaNPropagationMode:          UnaryFirst,
		SqrtNaNPropagationMode:            UnaryFirst,
		RsqrtNaNPropagationMode:           UnaryFirst,

		FloatToFloatConversionNaNPropagationMode: ConversionRetainMostSignificantBits,
	}

	// PlatformX86SSE: x86 SSE/SSE2's canonical (indefinite) QNaN has the
	// sign bit SET (0xFFC00000 for binary32); ties in NaN priority
	// traditionally favor the second operand with SNaN preference.
	PlatformX86SSE = PlatformProperties{
		CanonicalNaNSign:                Negative,
		CanonicalNaNMantissaMSB:         true,
		CanonicalNaNMantissaSecondToMSB: false,
		CanonicalNaNMantissaRest:        false,

		StdBinOpsNaNPropagationMode: BinarySecondFirstPreferringSNaN,
		FMANaNPropagationMode:       TernarySecondThirdFirstPreferringSNaN,
		FMAInfZeroQNaNResult:        PropagateAndGenerateInvalid,

		RoundToIntegralNaNPropagationMode: UnaryFirst,
		NextUpOrDownNaNPropagationMode:    UnaryFirst,
		ScaleBNaNPropagationMode:          UnaryFirst,
		SqrtNaNPropagationMode:            UnaryFirst,
		RsqrtNaNPropagationMode:           UnaryFirst,

		FloatToFloatConversionNaNPropagationMode: ConversionRetainMostSignificantBits,
	}

	// PlatformSPARC: SPARC V9 FPU propagates the first NaN operand.
	PlatformSPARC = PlatformProperties{
		CanonicalNaNSign:                Positive,
		CanonicalNaNMantissaMSB:         true,
		CanonicalNaNMantissaSecondToMSB: false,
		CanonicalNaNMantissaRest:        false,

		StdBinOpsNaNPropagationMode: BinaryFirstSecond,
		FMANaNPropagationMode:       TernaryFirstSecondThird,
		FMAInfZeroQNaNResult:        PropagateAndGenerateInvalid,

		RoundToIntegralNaNPropagationMode: UnaryFirst,
		NextUpOrDownNaNPropagationMode:    UnaryFirst,
		ScaleBNaNPropagationMode:          UnaryFirst,
		SqrtNaNPropagationMode:            UnaryFirst,
		RsqrtNaNPropagationMode:           UnaryFirst,

		FloatToFloatConversionNaNPropagationMode: ConversionRetainMostSignificantBits,
	}

	// PlatformHPPA: PA-RISC's older FPU always substitutes the canonical
	// NaN rather than propagating an operand's payload.
	PlatformHPPA = allAlwaysCanonical()
)
