package softfloat

import "math/big"

// FusedMulAdd implements spec §4.4's fused_mul_add(a,b,c): a·b computed
// exactly, c added, a single rounding. The (±∞)·(±0) special case is
// resolved by the platform's fma_inf_zero_qnan_result before any ordinary
// NaN or infinity handling runs, since it can override even a NaN c.
func FusedMulAdd(a, b, c DynamicFloat) DynamicFloat {
	props := requireSameProperties(a, b, c)
	ua, ub, uc := Unpack(props, a.Bits), Unpack(props, b.Bits), Unpack(props, c.Bits)
	state := a.FPState.Merge(b.FPState).Merge(c.FPState)
	operands := []Unpacked{ua, ub, uc}
	nanMode := props.Platform.FMANaNPropagationMode

	infTimesZero := (ua.Class.IsInfinity() && ub.Class.IsZero()) || (ua.Class.IsZero() && ub.Class.IsInfinity())
	if infTimesZero {
		var bits *big.Int
		switch props.Platform.FMAInfZeroQNaNResult {
		case CanonicalAndGenerateInvalid:
			bits = canonicalNaNBits(props)
		case PropagateAndGenerateInvalid:
			if uc.Class.IsNaN() {
				bits = quietizeSameFormat(props, uc)
			} else {
				bits = canonicalNaNBits(props)
			}
		default: // FollowNaNPropagationMode
			if uc.Class.IsNaN() {
				bits, _ = selectNaN(props, operands, nanMode)
			} else {
				bits = canonicalNaNBits(props)
			}
		}
		return finalize(props, bits, state, InvalidOperation)
	}

	if ua.Class.IsNaN() || ub.Class.IsNaN() || uc.Class.IsNaN() {
		bits, flags := selectNaN(props, operands, nanMode)
		return finalize(props, bits, state, flags)
	}

	productSign := ua.Sign.Xor(ub.Sign)
	productIsInfinity := ua.Class.IsInfinity() || ub.Class.IsInfinity()

	if productIsInfinity {
		if uc.Class.IsInfinity() && uc.Sign != productSign {
			bits, flags := selectNaN(props, operands, nanMode)
			return finalize(props, bits, state, flags|InvalidOperation)
		}
		return finalize(props, Pack(props, productSign, props.ExponentInfNaN, big.NewInt(0)), state, 0)
	}
	if uc.Class.IsInfinity() {
		return finalize(props, Pack(props, uc.Sign, props.ExponentInfNaN, big.NewInt(0)), state, 0)
	}

	product := new(big.Rat).Mul(ua.Value, ub.Value)
	sum := new(big.Rat).Add(product, uc.Value)
	if sum.Sign() == 0 {
		zeroSign := exactZeroSign(productSign, uc.Sign, state.RoundingMode)
		return finalize(props, Pack(props, zeroSign, 0, big.NewInt(0)), state, 0)
	}
	sign, mag := ratAbsSign(sum)
	bits, rflags := roundAndPack(props, sign, mag, state)
	return finalize(props, bits, state, rflags)
}
