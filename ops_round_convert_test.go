package softfloat

import (
	"math/big"
	"testing"
)

func TestRoundToIntegralBasic(t *testing.T) {
	got := RoundToIntegral(fromF32(2.7), true, TiesToEven)
	if toF32(got) != 3 {
		t.Errorf("round_to_integral(2.7, TiesToEven) = %v, want 3", toF32(got))
	}
	if !got.FPState.StatusFlags.Has(Inexact) {
		t.Errorf("round_to_integral(2.7) with exact=true did not set INEXACT")
	}
}

func TestRoundToIntegralTiesToEven(t *testing.T) {
	got := RoundToIntegral(fromF32(2.5), true, TiesToEven)
	if toF32(got) != 2 {
		t.Errorf("round_to_integral(2.5, TiesToEven) = %v, want 2", toF32(got))
	}
	got2 := RoundToIntegral(fromF32(3.5), true, TiesToEven)
	if toF32(got2) != 4 {
		t.Errorf("round_to_integral(3.5, TiesToEven) = %v, want 4", toF32(got2))
	}
}

func TestRoundToIntegralNotExactSuppressesInexact(t *testing.T) {
	got := RoundToIntegral(fromF32(2.7), false, TiesToEven)
	if got.FPState.StatusFlags.Has(Inexact) {
		t.Errorf("round_to_integral(2.7, exact=false) should not set INEXACT")
	}
}

func TestRoundToIntegralPreservesInfinityAndZero(t *testing.T) {
	props := f32props()
	got := RoundToIntegral(PositiveInfinityValue(props), true, TiesToEven)
	if !got.IsPositiveInfinity() {
		t.Errorf("round_to_integral(inf) = %v, want +inf", got.Class())
	}
	got2 := RoundToIntegral(NegativeZeroValue(props), true, TiesToEven)
	if !got2.IsNegativeZero() {
		t.Errorf("round_to_integral(-0) = %v, want -0", got2.Class())
	}
}

func TestRoundToIntegerBasic(t *testing.T) {
	got, state := RoundToInteger(fromF32(2.7), true, TiesToEven)
	if got == nil || got.Cmp(big.NewInt(3)) != 0 {
		t.Errorf("round_to_integer(2.7) = %v, want 3", got)
	}
	if !state.StatusFlags.Has(Inexact) {
		t.Errorf("round_to_integer(2.7) did not set INEXACT")
	}
}

func TestRoundToIntegerOfNaNOrInfinityIsNone(t *testing.T) {
	props := f32props()
	got, state := RoundToInteger(PositiveInfinityValue(props), true, TiesToEven)
	if got != nil {
		t.Errorf("round_to_integer(inf) = %v, want None", got)
	}
	if !state.StatusFlags.Has(InvalidOperation) {
		t.Errorf("round_to_integer(inf) did not set INVALID_OPERATION")
	}
}

func TestRoundToIntegerNegative(t *testing.T) {
	got, _ := RoundToInteger(fromF32(-2.7), true, TiesToEven)
	if got == nil || got.Cmp(big.NewInt(-3)) != 0 {
		t.Errorf("round_to_integer(-2.7) = %v, want -3", got)
	}
}

func TestToIntRejectsOutOfRange(t *testing.T) {
	got, state := ToInt(fromF32(1000), true, TiesToEven, big.NewInt(-128), big.NewInt(127))
	if got != nil {
		t.Errorf("to_int(1000, i8) = %v, want None (out of range)", got)
	}
	if !state.StatusFlags.Has(InvalidOperation) {
		t.Errorf("to_int out-of-range did not set INVALID_OPERATION")
	}
}

func TestToIntWithinRange(t *testing.T) {
	got, _ := ToInt(fromF32(100), true, TiesToEven, big.NewInt(-128), big.NewInt(127))
	if got == nil || got.Cmp(big.NewInt(100)) != 0 {
		t.Errorf("to_int(100, i8) = %v, want 100", got)
	}
}

func TestFromIntRoundTrip(t *testing.T) {
	props := f32props()
	got := FromInt(props, big.NewInt(42), NewFPState())
	if toF32(got) != 42 {
		t.Errorf("from_int(42) = %v, want 42", toF32(got))
	}
}

func TestFromIntZero(t *testing.T) {
	props := f32props()
	got := FromInt(props, big.NewInt(0), NewFPState())
	if !got.IsPositiveZero() {
		t.Errorf("from_int(0) = %v, want +0", got.Class())
	}
}

func TestFromIntNegative(t *testing.T) {
	props := f32props()
	got := FromInt(props, big.NewInt(-7), NewFPState())
	if toF32(got) != -7 {
		t.Errorf("from_int(-7) = %v, want -7", toF32(got))
	}
}

func TestNextUpBasic(t *testing.T) {
	props := f32props()
	got := NextUp(fromF32(1))
	want := NextAfterOneULP(props)
	if got.Bits.Cmp(want.Bits) != 0 {
		t.Errorf("next_up(1) bits = %v, want %v", got.Bits, want.Bits)
	}
}

// TestNextUpNegativeZeroIsPositiveZero implements the spec's literal edge
// rule: stepping up from -0 lands on +0, not the smallest positive subnormal.
func TestNextUpNegativeZeroIsPositiveZero(t *testing.T) {
	props := f32props()
	got := NextUp(NegativeZeroValue(props))
	if !got.IsPositiveZero() {
		t.Errorf("next_up(-0) = %v, want +0", got.Class())
	}
}

func TestNextDownPositiveZeroIsNegativeZero(t *testing.T) {
	props := f32props()
	got := NextDown(PositiveZeroValue(props))
	if !got.IsNegativeZero() {
		t.Errorf("next_down(+0) = %v, want -0", got.Class())
	}
}

func TestNextUpThenNextDownRoundTrips(t *testing.T) {
	a := fromF32(3.5)
	got := NextDown(NextUp(a))
	if got.Bits.Cmp(a.Bits) != 0 {
		t.Errorf("next_down(next_up(x)) != x: got %v, want %v", got.Bits, a.Bits)
	}
}

func TestNextUpOfLargestFiniteIsInfinity(t *testing.T) {
	props := f32props()
	largest := NewDynamicFloat(props, Pack(props, Positive, props.ExponentMaxNormal, new(big.Int).Set(props.MantissaFieldMask)), NewFPState())
	got := NextUp(largest)
	if !got.IsPositiveInfinity() {
		t.Errorf("next_up(largest finite) = %v, want +inf", got.Class())
	}
}

func TestNextUpOfPositiveInfinityIsUnchanged(t *testing.T) {
	props := f32props()
	got := NextUp(PositiveInfinityValue(props))
	if !got.IsPositiveInfinity() {
		t.Errorf("next_up(+inf) = %v, want +inf", got.Class())
	}
}

func TestNextDownOfNegativeInfinityIsUnchanged(t *testing.T) {
	props := f32props()
	got := NextDown(NegativeInfinityValue(props))
	if !got.IsNegativeInfinity() {
		t.Errorf("next_down(-inf) = %v, want -inf", got.Class())
	}
}

func TestConvertToDynamicFloatWidensExactly(t *testing.T) {
	props64 := StandardFloatProperties(64, PlatformRISCV)
	got := ConvertToDynamicFloat(fromF32(1.5), props64)
	if got.Properties.Width != 64 {
		t.Errorf("convert widened width = %d, want 64", got.Properties.Width)
	}
	if got.FPState.StatusFlags.Has(Inexact) {
		t.Errorf("widening an exactly representable value set INEXACT")
	}
}

func TestConvertToDynamicFloatPreservesInfinityAndZero(t *testing.T) {
	props := f32props()
	props64 := StandardFloatProperties(64, PlatformRISCV)
	got := ConvertToDynamicFloat(PositiveInfinityValue(props), props64)
	if !got.IsPositiveInfinity() {
		t.Errorf("convert(+inf) = %v, want +inf", got.Class())
	}
	got2 := ConvertToDynamicFloat(NegativeZeroValue(props), props64)
	if !got2.IsNegativeZero() {
		t.Errorf("convert(-0) = %v, want -0", got2.Class())
	}
}

// NextAfterOneULP is a tiny test helper reproducing the expected next_up(1.0)
// value for binary32: the smallest ulp step above 1.0 is 2^-23.
func NextAfterOneULP(props FloatProperties) DynamicFloat {
	return fromF32(1 + 1.1920929e-7)
}
