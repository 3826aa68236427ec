package softfloat

import "math/big"

// naNPriorityMode is satisfied by Unary/Binary/TernaryNaNPropagationMode:
// each decodes to either "no priority list" (AlwaysCanonical) or an
// operand-slot priority order plus an SNaN-preference flag — spec §9's
// "small priority-list table, not per-mode branches" design note.
type naNPriorityMode interface {
	priority() (slots []int, preferSNaN bool)
}

// canonicalNaNBits builds the platform's canonical NaN bit pattern for a
// given format.
func canonicalNaNBits(props FloatProperties) *big.Int {
	mant := new(big.Int)
	if props.Platform.CanonicalNaNMantissaMSB {
		mant.Or(mant, props.MantissaFieldMSBMask)
	}
	secondMask := new(big.Int).Rsh(props.MantissaFieldMSBMask, 1)
	if props.Platform.CanonicalNaNMantissaSecondToMSB {
		mant.Or(mant, secondMask)
	}
	if props.Platform.CanonicalNaNMantissaRest && secondMask.Sign() != 0 {
		restMask := new(big.Int).Sub(secondMask, big.NewInt(1))
		mant.Or(mant, restMask)
	}
	return Pack(props, props.Platform.CanonicalNaNSign, props.ExponentInfNaN, mant)
}

// quietPayload sets the quiet bit of a mantissa field per format, preserving
// the rest of the payload — the to_quiet_nan operation of spec §4.4.
func quietPayload(props FloatProperties, payload *big.Int) *big.Int {
	result := new(big.Int).Set(payload)
	if props.Platform.QuietNaNFormat() == StandardQuietNaN {
		result.Or(result, props.MantissaFieldMSBMask)
	} else {
		result.AndNot(result, props.MantissaFieldMSBMask)
	}
	return result
}

// quietizeSameFormat converts an Unpacked NaN to quiet form and repacks it
// under the same FloatProperties it was unpacked from.
func quietizeSameFormat(props FloatProperties, op Unpacked) *big.Int {
	return Pack(props, op.Sign, props.ExponentInfNaN, quietPayload(props, op.NaNPayload))
}

// selectNaN implements spec §4.3 for operators whose operands all share one
// FloatProperties (the std binary ops, FMA, and the unary operators). It
// scans operands (1-indexed, matching the NaN-propagation mode's priority
// list) for the first NaN — or the first signaling NaN when the mode
// prefers one — quietizes it, and falls back to the platform canonical NaN
// for AlwaysCanonical modes or when no NaN is found among the listed slots.
func selectNaN(props FloatProperties, operands []Unpacked, mode naNPriorityMode) (*big.Int, StatusFlags) {
	var flags StatusFlags
	for _, op := range operands {
		if op.Class == ClassSignalingNaN {
			flags |= InvalidOperation
		}
	}

	slots, preferSNaN := mode.priority()
	if slots == nil {
		return canonicalNaNBits(props), flags
	}

	if preferSNaN {
		for _, idx := range slots {
			op := operands[idx-1]
			if op.Class == ClassSignalingNaN {
				return quietizeSameFormat(props, op), flags
			}
		}
	}
	for _, idx := range slots {
		op := operands[idx-1]
		if op.Class.IsNaN() {
			return quietizeSameFormat(props, op), flags
		}
	}
	return canonicalNaNBits(props), flags
}

// fitPayload widens or narrows a mantissa payload from one format's
// fraction width to another's, retaining the most-significant payload bits
// — spec §4.3's RetainMostSignificantBits behavior.
func fitPayload(srcProps, dstProps FloatProperties, payload *big.Int) *big.Int {
	srcW, dstW := srcProps.FractionWidth, dstProps.FractionWidth
	var fitted *big.Int
	if dstW >= srcW {
		fitted = new(big.Int).Lsh(payload, uint(dstW-srcW))
	} else {
		fitted = new(big.Int).Rsh(payload, uint(srcW-dstW))
	}
	return fitted.And(fitted, dstProps.MantissaFieldMask)
}

// convertNaN implements convert_to_dynamic_float's NaN handling: it decides
// the destination NaN bits per FloatToFloatConversionNaNPropagationMode.
func convertNaN(srcProps, dstProps FloatProperties, op Unpacked, mode FloatToFloatConversionNaNPropagationMode) (*big.Int, StatusFlags) {
	var flags StatusFlags
	if op.Class == ClassSignalingNaN {
		flags |= InvalidOperation
	}
	if mode == ConversionAlwaysCanonical {
		return canonicalNaNBits(dstProps), flags
	}
	payload := fitPayload(srcProps, dstProps, op.NaNPayload)
	payload = quietPayload(dstProps, payload)
	if payload.Sign() == 0 {
		secondMask := new(big.Int).Rsh(dstProps.MantissaFieldMSBMask, 1)
		if secondMask.Sign() != 0 {
			payload.Or(payload, secondMask)
		} else {
			payload.SetInt64(1)
		}
	}
	return Pack(dstProps, op.Sign, dstProps.ExponentInfNaN, payload), flags
}
