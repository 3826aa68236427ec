package softfloat

import (
	"math"
	"math/big"
)

// fromF32 builds a binary32 RISC-V DynamicFloat directly from a float32's
// IEEE-754 bit pattern, which is exact since StandardFloatProperties(32, ...)
// matches math.Float32bits' layout bit for bit.
func fromF32(f float32) DynamicFloat {
	props := f32props()
	return FromUint64(props, uint64(math.Float32bits(f)))
}

func toF32(d DynamicFloat) float32 {
	return math.Float32frombits(uint32(d.Bits.Uint64()))
}

func f32NaN(sign Sign, quiet bool) DynamicFloat {
	props := f32props()
	mant := big.NewInt(1)
	if quiet {
		mant = new(big.Int).Set(props.MantissaFieldMSBMask)
	}
	return FromBigInt(props, Pack(props, sign, props.ExponentInfNaN, mant))
}
