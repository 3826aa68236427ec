package softfloat

// RoundingMode selects how the rounding kernel resolves an inexact result.
type RoundingMode int

const (
	TiesToEven RoundingMode = iota
	TowardZero
	TowardNegative
	TowardPositive
	TiesToAway
)

func AllRoundingModes() []RoundingMode {
	return []RoundingMode{TiesToEven, TowardZero, TowardNegative, TowardPositive, TiesToAway}
}

func (m RoundingMode) String() string {
	switch m {
	case TiesToEven:
		return "RoundingMode.TiesToEven"
	case TowardZero:
		return "RoundingMode.TowardZero"
	case TowardNegative:
		return "RoundingMode.TowardNegative"
	case TowardPositive:
		return "RoundingMode.TowardPositive"
	case TiesToAway:
		return "RoundingMode.TiesToAway"
	default:
		panic(&DomainError{Op: "RoundingMode.String", Msg: "unknown RoundingMode value", Code: ErrUnknownEnumValue})
	}
}

// TininessDetectionMode chooses whether underflow tininess is judged on the
// pre-rounded or post-rounded magnitude.
type TininessDetectionMode int

const (
	BeforeRounding TininessDetectionMode = iota
	AfterRounding
)

func AllTininessDetectionModes() []TininessDetectionMode {
	return []TininessDetectionMode{BeforeRounding, AfterRounding}
}

func (m TininessDetectionMode) String() string {
	switch m {
	case BeforeRounding:
		return "TininessDetectionMode.BeforeRounding"
	case AfterRounding:
		return "TininessDetectionMode.AfterRounding"
	default:
		panic(&DomainError{Op: "TininessDetectionMode.String", Msg: "unknown TininessDetectionMode value", Code: ErrUnknownEnumValue})
	}
}

// ExceptionHandlingMode chooses whether UNDERFLOW is raised for an exactly
// representable subnormal result (no inexact discard).
type ExceptionHandlingMode int

const (
	IgnoreExactUnderflow ExceptionHandlingMode = iota
	SignalExactUnderflow
)

func AllExceptionHandlingModes() []ExceptionHandlingMode {
	return []ExceptionHandlingMode{IgnoreExactUnderflow, SignalExactUnderflow}
}

func (m ExceptionHandlingMode) String() string {
	switch m {
	case IgnoreExactUnderflow:
		return "ExceptionHandlingMode.IgnoreExactUnderflow"
	case SignalExactUnderflow:
		return "ExceptionHandlingMode.SignalExactUnderflow"
	default:
		panic(&DomainError{Op: "ExceptionHandlingMode.String", Msg: "unknown ExceptionHandlingMode value", Code: ErrUnknownEnumValue})
	}
}

// QuietNaNFormat selects which mantissa bit distinguishes quiet from
// signaling NaN payloads, derived from a platform's canonical NaN bits.
type QuietNaNFormat int

const (
	StandardQuietNaN QuietNaNFormat = iota
	MIPSLegacyQuietNaN
)

func AllQuietNaNFormats() []QuietNaNFormat {
	return []QuietNaNFormat{StandardQuietNaN, MIPSLegacyQuietNaN}
}

func (m QuietNaNFormat) String() string {
	switch m {
	case StandardQuietNaN:
		return "QuietNaNFormat.Standard"
	case MIPSLegacyQuietNaN:
		return "QuietNaNFormat.MIPSLegacy"
	default:
		panic(&DomainError{Op: "QuietNaNFormat.String", Msg: "unknown QuietNaNFormat value", Code: ErrUnknownEnumValue})
	}
}
