package softfloat

// This file encodes the NaN-propagation mode enums as priority-list tables
// (per spec §9 design note) rather than per-mode branches: each mode names
// an AlwaysCanonical behavior or a permutation of operand slots, optionally
// preferring a signaling NaN among the listed slots.

// UnaryNaNPropagationMode governs single-operand operators (round_to_integral,
// next_up_or_down, scale_b, sqrt, rsqrt).
type UnaryNaNPropagationMode int

const (
	UnaryAlwaysCanonical UnaryNaNPropagationMode = iota
	UnaryFirst
)

func AllUnaryNaNPropagationModes() []UnaryNaNPropagationMode {
	return []UnaryNaNPropagationMode{UnaryAlwaysCanonical, UnaryFirst}
}

func (m UnaryNaNPropagationMode) String() string {
	switch m {
	case UnaryAlwaysCanonical:
		return "UnaryNaNPropagationMode.AlwaysCanonical"
	case UnaryFirst:
		return "UnaryNaNPropagationMode.First"
	default:
		panic(&DomainError{Op: "UnaryNaNPropagationMode.String", Msg: "unknown value", Code: ErrUnknownEnumValue})
	}
}

// priority returns the operand-slot priority order (1-indexed slots) and
// whether signaling NaNs are preferred within that order. A nil slice means
// AlwaysCanonical (no operand scan).
func (m UnaryNaNPropagationMode) priority() (slots []int, preferSNaN bool) {
	switch m {
	case UnaryAlwaysCanonical:
		return nil, false
	case UnaryFirst:
		return []int{1}, false
	default:
		panic(&DomainError{Op: "UnaryNaNPropagationMode.priority", Msg: "unknown value", Code: ErrUnknownEnumValue})
	}
}

// BinaryNaNPropagationMode governs add/sub/mul/div/remainder.
type BinaryNaNPropagationMode int

const (
	BinaryAlwaysCanonical BinaryNaNPropagationMode = iota
	BinaryFirstSecond
	BinarySecondFirst
	BinaryFirstSecondPreferringSNaN
	BinarySecondFirstPreferringSNaN
)

func AllBinaryNaNPropagationModes() []BinaryNaNPropagationMode {
	return []BinaryNaNPropagationMode{
		BinaryAlwaysCanonical, BinaryFirstSecond, BinarySecondFirst,
		BinaryFirstSecondPreferringSNaN, BinarySecondFirstPreferringSNaN,
	}
}

func (m BinaryNaNPropagationMode) String() string {
	switch m {
	case BinaryAlwaysCanonical:
		return "BinaryNaNPropagationMode.AlwaysCanonical"
	case BinaryFirstSecond:
		return "BinaryNaNPropagationMode.FirstSecond"
	case BinarySecondFirst:
		return "BinaryNaNPropagationMode.SecondFirst"
	case BinaryFirstSecondPreferringSNaN:
		return "BinaryNaNPropagationMode.FirstSecondPreferringSNaN"
	case BinarySecondFirstPreferringSNaN:
		return "BinaryNaNPropagationMode.SecondFirstPreferringSNaN"
	default:
		panic(&DomainError{Op: "BinaryNaNPropagationMode.String", Msg: "unknown value", Code: ErrUnknownEnumValue})
	}
}

func (m BinaryNaNPropagationMode) priority() (slots []int, preferSNaN bool) {
	switch m {
	case BinaryAlwaysCanonical:
		return nil, false
	case BinaryFirstSecond:
		return []int{1, 2}, false
	case BinarySecondFirst:
		return []int{2, 1}, false
	case BinaryFirstSecondPreferringSNaN:
		return []int{1, 2}, true
	case BinarySecondFirstPreferringSNaN:
		return []int{2, 1}, true
	default:
		panic(&DomainError{Op: "BinaryNaNPropagationMode.priority", Msg: "unknown value", Code: ErrUnknownEnumValue})
	}
}

// TernaryNaNPropagationMode governs fused_mul_add(a, b, c): AlwaysCanonical
// plus every permutation of {First,Second,Third} in priority order, each in
// a plain and a "PreferringSNaN" flavor — 1 + 3! * 2 = 13 modes.
type TernaryNaNPropagationMode int

const (
	TernaryAlwaysCanonical TernaryNaNPropagationMode = iota
	TernaryFirstSecondThird
	TernaryFirstThirdSecond
	TernarySecondFirstThird
	TernarySecondThirdFirst
	TernaryThirdFirstSecond
	TernaryThirdSecondFirst
	TernaryFirstSecondThirdPreferringSNaN
	TernaryFirstThirdSecondPreferringSNaN
	TernarySecondFirstThirdPreferringSNaN
	TernarySecondThirdFirstPreferringSNaN
	TernaryThirdFirstSecondPreferringSNaN
	TernaryThirdSecondFirstPreferringSNaN
)

func AllTernaryNaNPropagationModes() []TernaryNaNPropagationMode {
	return []TernaryNaNPropagationMode{
		TernaryAlwaysCanonical,
		TernaryFirstSecondThird, TernaryFirstThirdSecond,
		TernarySecondFirstThird, TernarySecondThirdFirst,
		TernaryThirdFirstSecond, TernaryThirdSecondFirst,
		TernaryFirstSecondThirdPreferringSNaN, TernaryFirstThirdSecondPreferringSNaN,
		TernarySecondFirstThirdPreferringSNaN, TernarySecondThirdFirstPreferringSNaN,
		TernaryThirdFirstSecondPreferringSNaN, TernaryThirdSecondFirstPreferringSNaN,
	}
}

var ternaryPermutations = map[TernaryNaNPropagationMode][]int{
	TernaryFirstSecondThird: {1, 2, 3},
	TernaryFirstThirdSecond: {1, 3, 2},
	TernarySecondFirstThird: {2, 1, 3},
	TernarySecondThirdFirst: {2, 3, 1},
	TernaryThirdFirstSecond: {3, 1, 2},
	TernaryThirdSecondFirst: {3, 2, 1},

	TernaryFirstSecondThirdPreferringSNaN: {1, 2, 3},
	TernaryFirstThirdSecondPreferringSNaN: {1, 3, 2},
	TernarySecondFirstThirdPreferringSNaN: {2, 1, 3},
	TernarySecondThirdFirstPreferringSNaN: {2, 3, 1},
	TernaryThirdFirstSecondPreferringSNaN: {3, 1, 2},
	TernaryThirdSecondFirstPreferringSNaN: {3, 2, 1},
}

var ternaryPrefersSNaN = map[TernaryNaNPropagationMode]bool{
	TernaryFirstSecondThirdPreferringSNaN: true,
	TernaryFirstThirdSecondPreferringSNaN: true,
	TernarySecondFirstThirdPreferringSNaN: true,
	TernarySecondThirdFirstPreferringSNaN: true,
	TernaryThirdFirstSecondPreferringSNaN: true,
	TernaryThirdSecondFirstPreferringSNaN: true,
}

func (m TernaryNaNPropagationMode) String() string {
	names := map[TernaryNaNPropagationMode]string{
		TernaryAlwaysCanonical:                 "AlwaysCanonical",
		TernaryFirstSecondThird:                "FirstSecondThird",
		TernaryFirstThirdSecond:                "FirstThirdSecond",
		TernarySecondFirstThird:                "SecondFirstThird",
		TernarySecondThirdFirst:                "SecondThirdFirst",
		TernaryThirdFirstSecond:                "ThirdFirstSecond",
		TernaryThirdSecondFirst:                "ThirdSecondFirst",
		TernaryFirstSecondThirdPreferringSNaN:  "FirstSecondThirdPreferringSNaN",
		TernaryFirstThirdSecondPreferringSNaN:  "FirstThirdSecondPreferringSNaN",
		TernarySecondFirstThirdPreferringSNaN:  "SecondFirstThirdPreferringSNaN",
		TernarySecondThirdFirstPreferringSNaN:  "SecondThirdFirstPreferringSNaN",
		TernaryThirdFirstSecondPreferringSNaN:  "ThirdFirstSecondPreferringSNaN",
		TernaryThirdSecondFirstPreferringSNaN:  "ThirdSecondFirstPreferringSNaN",
	}
	name, ok := names[m]
	if !ok {
		panic(&DomainError{Op: "TernaryNaNPropagationMode.String", Msg: "unknown value", Code: ErrUnknownEnumValue})
	}
	return "TernaryNaNPropagationMode." + name
}

func (m TernaryNaNPropagationMode) priority() (slots []int, preferSNaN bool) {
	if m == TernaryAlwaysCanonical {
		return nil, false
	}
	slots, ok := ternaryPermutations[m]
	if !ok {
		panic(&DomainError{Op: "TernaryNaNPropagationMode.priority", Msg: "unknown value", Code: ErrUnknownEnumValue})
	}
	return slots, ternaryPrefersSNaN[m]
}

// FloatToFloatConversionNaNPropagationMode governs convert_to_dynamic_float.
type FloatToFloatConversionNaNPropagationMode int

const (
	ConversionAlwaysCanonical FloatToFloatConversionNaNPropagationMode = iota
	ConversionRetainMostSignificantBits
)

func AllFloatToFloatConversionNaNPropagationModes() []FloatToFloatConversionNaNPropagationMode {
	return []FloatToFloatConversionNaNPropagationMode{ConversionAlwaysCanonical, ConversionRetainMostSignificantBits}
}

func (m FloatToFloatConversionNaNPropagationMode) String() string {
	switch m {
	case ConversionAlwaysCanonical:
		return "FloatToFloatConversionNaNPropagationMode.AlwaysCanonical"
	case ConversionRetainMostSignificantBits:
		return "FloatToFloatConversionNaNPropagationMode.RetainMostSignificantBits"
	default:
		panic(&DomainError{Op: "FloatToFloatConversionNaNPropagationMode.String", Msg: "unknown value", Code: ErrUnknownEnumValue})
	}
}

// FMAInfZeroQNaNResult governs FMA(±∞, ±0, qNaN) and FMA(±0, ±∞, qNaN).
type FMAInfZeroQNaNResult int

const (
	FollowNaNPropagationMode FMAInfZeroQNaNResult = iota
	CanonicalAndGenerateInvalid
	PropagateAndGenerateInvalid
)

func AllFMAInfZeroQNaNResults() []FMAInfZeroQNaNResult {
	return []FMAInfZeroQNaNResult{FollowNaNPropagationMode, CanonicalAndGenerateInvalid, PropagateAndGenerateInvalid}
}

func (m FMAInfZeroQNaNResult) String() string {
	switch m {
	case FollowNaNPropagationMode:
		return "FMAInfZeroQNaNResult.FollowNaNPropagationMode"
	case CanonicalAndGenerateInvalid:
		return "FMAInfZeroQNaNResult.CanonicalAndGenerateInvalid"
	case PropagateAndGenerateInvalid:
		return "FMAInfZeroQNaNResult.PropagateAndGenerateInvalid"
	default:
		panic(&DomainError{Op: "FMAInfZeroQNaNResult.String", Msg: "unknown value", Code: ErrUnknownEnumValue})
	}
}
