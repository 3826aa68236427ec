package softfloat

import (
	"math/big"
	"testing"
)

func f32props() FloatProperties { return StandardFloatProperties(32, PlatformRISCV) }

func TestUnpackZero(t *testing.T) {
	props := f32props()
	u := Unpack(props, big.NewInt(0))
	if u.Class != ClassPositiveZero || u.Sign != Positive {
		t.Errorf("Unpack(0) = %v/%v, want PositiveZero/Positive", u.Class, u.Sign)
	}
	if u.Value.Sign() != 0 {
		t.Errorf("Unpack(0).Value = %v, want 0", u.Value)
	}
}

func TestUnpackNegativeZero(t *testing.T) {
	props := f32props()
	bits := Pack(props, Negative, 0, big.NewInt(0))
	u := Unpack(props, bits)
	if u.Class != ClassNegativeZero {
		t.Errorf("Unpack(-0) class = %v, want NegativeZero", u.Class)
	}
}

func TestUnpackOne(t *testing.T) {
	props := f32props()
	// 1.0 in binary32: sign=0, exp=127 (biased), mantissa=0.
	bits := Pack(props, Positive, int64(props.ExponentBias), big.NewInt(0))
	u := Unpack(props, bits)
	if u.Class != ClassPositiveNormal {
		t.Errorf("Unpack(1.0) class = %v, want PositiveNormal", u.Class)
	}
	if u.Value.Cmp(big.NewRat(1, 1)) != 0 {
		t.Errorf("Unpack(1.0).Value = %v, want 1", u.Value)
	}
}

func TestUnpackSubnormal(t *testing.T) {
	props := f32props()
	bits := Pack(props, Positive, 0, big.NewInt(1))
	u := Unpack(props, bits)
	if u.Class != ClassPositiveSubnormal {
		t.Errorf("Unpack(smallest subnormal) class = %v, want PositiveSubnormal", u.Class)
	}
	// Smallest binary32 subnormal = 2^(1-127-23) = 2^-149.
	want := ratPow2(-149)
	if u.Value.Cmp(want) != 0 {
		t.Errorf("Unpack(smallest subnormal).Value = %v, want %v", u.Value, want)
	}
}

func TestUnpackInfinity(t *testing.T) {
	props := f32props()
	bits := Pack(props, Positive, props.ExponentInfNaN, big.NewInt(0))
	u := Unpack(props, bits)
	if u.Class != ClassPositiveInfinity {
		t.Errorf("Unpack(+inf) class = %v, want PositiveInfinity", u.Class)
	}
}

func TestUnpackQuietAndSignalingNaN(t *testing.T) {
	props := f32props()
	quietBits := Pack(props, Positive, props.ExponentInfNaN, new(big.Int).Set(props.MantissaFieldMSBMask))
	u := Unpack(props, quietBits)
	if u.Class != ClassQuietNaN {
		t.Errorf("quiet NaN bit pattern classified as %v, want QuietNaN", u.Class)
	}

	signalingBits := Pack(props, Positive, props.ExponentInfNaN, big.NewInt(1))
	u2 := Unpack(props, signalingBits)
	if u2.Class != ClassSignalingNaN {
		t.Errorf("signaling NaN bit pattern classified as %v, want SignalingNaN", u2.Class)
	}
}

func TestUnpackOutOfRangeBitsPanics(t *testing.T) {
	props := f32props()
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for bits outside OverallMask")
		}
	}()
	Unpack(props, new(big.Int).Add(props.OverallMask, big.NewInt(1)))
}

func TestPackUnpackRoundTrip(t *testing.T) {
	props := f32props()
	for _, bits := range []int64{0, 1, 0x3F800000, 0x7F800000, 0xFF800000} {
		b := big.NewInt(bits)
		u := Unpack(props, b)
		var repacked *big.Int
		if u.Class.IsNaN() {
			repacked = Pack(props, u.Sign, props.ExponentInfNaN, u.NaNPayload)
		} else if u.Class.IsInfinity() {
			repacked = Pack(props, u.Sign, props.ExponentInfNaN, big.NewInt(0))
		} else {
			// Re-derive expField/mantField the same way Unpack read them.
			expField := fieldOf(b, props.ExponentFieldMask, props.ExponentFieldShift)
			mantField := fieldOf(b, props.MantissaFieldMask, props.MantissaFieldShift)
			repacked = Pack(props, u.Sign, expField.Int64(), mantField)
		}
		if repacked.Cmp(b) != 0 {
			t.Errorf("round trip for bits=0x%x gave 0x%x", bits, repacked)
		}
	}
}
