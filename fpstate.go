package softfloat

// FPState is the mutable-by-value four-field state threaded through every operation:
// rounding mode, accumulated status flags, and the two edge-case policy
// modes. There is no thread-local or global rounding state (spec §9) — every
// value carries its own.
type FPState struct {
	RoundingMode          RoundingMode
	StatusFlags           StatusFlags
	ExceptionHandlingMode ExceptionHandlingMode
	TininessDetectionMode TininessDetectionMode
}

// FPStateOption overrides a single field of an FPState.
type FPStateOption func(*FPState)

func WithRoundingMode(m RoundingMode) FPStateOption {
	return func(s *FPState) { s.RoundingMode = m }
}
func WithStatusFlags(f StatusFlags) FPStateOption {
	return func(s *FPState) { s.StatusFlags = f }
}
func WithExceptionHandlingMode(m ExceptionHandlingMode) FPStateOption {
	return func(s *FPState) { s.ExceptionHandlingMode = m }
}
func WithTininessDetectionMode(m TininessDetectionMode) FPStateOption {
	return func(s *FPState) { s.TininessDetectionMode = m }
}

// NewFPState builds an FPState with package defaults (TiesToEven,
// StatusFlags(0), IgnoreExactUnderflow, BeforeRounding), then applies
// overrides — the "keyword constructor with defaults" from spec §6.
func NewFPState(opts ...FPStateOption) FPState {
	s := FPState{
		RoundingMode:          TiesToEven,
		StatusFlags:           0,
		ExceptionHandlingMode: IgnoreExactUnderflow,
		TininessDetectionMode: BeforeRounding,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithFlags returns a copy of s with the given flags unioned in.
func (s FPState) WithFlags(f StatusFlags) FPState {
	s.StatusFlags = s.StatusFlags.Union(f)
	return s
}

// Merge combines two FPStates: the resulting status_flags is the bitwise
// union, and every other field comes from the receiver (the left operand).
// Mismatched modes between the two sides are a programming error, not a
// floating-point flag — spec §3/§7.
func (a FPState) Merge(b FPState) FPState {
	if a.RoundingMode != b.RoundingMode {
		panic(&DomainError{Op: "FPState.Merge", Msg: "rounding modes differ between merged FPStates", Code: ErrIncompatibleFPState})
	}
	if a.ExceptionHandlingMode != b.ExceptionHandlingMode {
		panic(&DomainError{Op: "FPState.Merge", Msg: "exception handling modes differ between merged FPStates", Code: ErrIncompatibleFPState})
	}
	if a.TininessDetectionMode != b.TininessDetectionMode {
		panic(&DomainError{Op: "FPState.Merge", Msg: "tininess detection modes differ between merged FPStates", Code: ErrIncompatibleFPState})
	}
	return FPState{
		RoundingMode:          a.RoundingMode,
		StatusFlags:           a.StatusFlags.Union(b.StatusFlags),
		ExceptionHandlingMode: a.ExceptionHandlingMode,
		TininessDetectionMode: a.TininessDetectionMode,
	}
}

// String renders the cosmetic "PlatformProperties(...)" prefix quirk noted
// as an Open Question in spec §9 — observed behavior, not a contract worth
// "fixing" away from what the source exhibits. All four fields appear, in
// the source's declared order.
func (s FPState) String() string {
	return "PlatformProperties(rounding_mode=" + s.RoundingMode.String() +
		", status_flags=" + s.StatusFlags.String() +
		", exception_handling_mode=" + s.ExceptionHandlingMode.String() +
		", tininess_detection_mode=" + s.TininessDetectionMode.String() + ")"
}
