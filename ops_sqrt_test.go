package softfloat

import "testing"

func TestSqrtPerfectSquares(t *testing.T) {
	for _, f := range []float32{0, 1, 4, 9, 16, 100, 65536} {
		got := Sqrt(fromF32(f))
		want := float32(1)
		switch f {
		case 0:
			want = 0
		case 1:
			want = 1
		case 4:
			want = 2
		case 9:
			want = 3
		case 16:
			want = 4
		case 100:
			want = 10
		case 65536:
			want = 256
		}
		if toF32(got) != want {
			t.Errorf("sqrt(%v) = %v, want %v", f, toF32(got), want)
		}
		if got.FPState.StatusFlags.Has(Inexact) {
			t.Errorf("sqrt(%v) of a perfect square raised INEXACT", f)
		}
	}
}

func TestSqrtNegativeIsInvalid(t *testing.T) {
	got := Sqrt(fromF32(-4))
	if !got.IsQuietNaN() || !got.FPState.StatusFlags.Has(InvalidOperation) {
		t.Errorf("sqrt(-4) = %v/%v, want QuietNaN with INVALID_OPERATION", got.Class(), got.FPState.StatusFlags)
	}
}

func TestSqrtOfNegativeZeroIsNegativeZero(t *testing.T) {
	props := f32props()
	got := Sqrt(NegativeZeroValue(props))
	if !got.IsNegativeZero() {
		t.Errorf("sqrt(-0) = %v, want -0", got.Class())
	}
}

func TestSqrtOfPositiveInfinityIsPositiveInfinity(t *testing.T) {
	props := f32props()
	got := Sqrt(PositiveInfinityValue(props))
	if !got.IsPositiveInfinity() {
		t.Errorf("sqrt(+inf) = %v, want +inf", got.Class())
	}
}

func TestSqrtIrrationalIsInexact(t *testing.T) {
	got := Sqrt(fromF32(2))
	if !got.FPState.StatusFlags.Has(Inexact) {
		t.Errorf("sqrt(2) did not set INEXACT")
	}
	f := toF32(got)
	// sqrt(2) ~= 1.41421356
	if f < 1.41421 || f > 1.41422 {
		t.Errorf("sqrt(2) = %v, not close to 1.41421356", f)
	}
}

func TestRsqrtOfPositiveZeroIsPositiveInfinityDivByZero(t *testing.T) {
	props := f32props()
	got := Rsqrt(PositiveZeroValue(props))
	if !got.IsPositiveInfinity() || !got.FPState.StatusFlags.Has(DivisionByZero) {
		t.Errorf("rsqrt(+0) = %v/%v, want +inf with DIVISION_BY_ZERO", got.Class(), got.FPState.StatusFlags)
	}
}

func TestRsqrtOfNegativeZeroIsNegativeInfinityDivByZero(t *testing.T) {
	props := f32props()
	got := Rsqrt(NegativeZeroValue(props))
	if !got.IsNegativeInfinity() || !got.FPState.StatusFlags.Has(DivisionByZero) {
		t.Errorf("rsqrt(-0) = %v/%v, want -inf with DIVISION_BY_ZERO", got.Class(), got.FPState.StatusFlags)
	}
}

func TestRsqrtOfPositiveInfinityIsPositiveZero(t *testing.T) {
	props := f32props()
	got := Rsqrt(PositiveInfinityValue(props))
	if !got.IsPositiveZero() {
		t.Errorf("rsqrt(+inf) = %v, want +0", got.Class())
	}
}

func TestRsqrtOfFour(t *testing.T) {
	got := Rsqrt(fromF32(4))
	if toF32(got) != 0.5 {
		t.Errorf("rsqrt(4) = %v, want 0.5", toF32(got))
	}
}

func TestRsqrtOfNegativeIsInvalid(t *testing.T) {
	got := Rsqrt(fromF32(-4))
	if !got.IsQuietNaN() || !got.FPState.StatusFlags.Has(InvalidOperation) {
		t.Errorf("rsqrt(-4) = %v, want QuietNaN with INVALID_OPERATION", got.Class())
	}
}
