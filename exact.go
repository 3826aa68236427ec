package softfloat

import "math/big"

// This file is the "exact-real oracle" of spec §4.1/§9: an arbitrary-
// precision signed rational used to compute operator results before
// rounding. Per spec §9 an implementation may substitute wide fixed-point
// with explicit guard/round/sticky tracking provided results match bit for
// bit; this engine instead uses math/big.Rat directly, because no pack
// dependency supplies an arbitrary-precision rational type (see DESIGN.md)
// and big.Rat already gives exact guard/round/sticky behavior for free via
// exact rational comparison.

// ratPow2 returns the exact rational value 2^exp for any (possibly
// negative) integer exponent.
func ratPow2(exp int) *big.Rat {
	if exp >= 0 {
		return new(big.Rat).SetInt(new(big.Int).Lsh(big.NewInt(1), uint(exp)))
	}
	denom := new(big.Int).Lsh(big.NewInt(1), uint(-exp))
	return new(big.Rat).SetFrac(big.NewInt(1), denom)
}

// ratFromSignificandExp returns significand * 2^exp as an exact rational,
// where significand is a non-negative integer.
func ratFromSignificandExp(significand *big.Int, exp int) *big.Rat {
	r := new(big.Rat).SetInt(significand)
	return r.Mul(r, ratPow2(exp))
}

// floorLog2 returns floor(log2(r)) for a positive rational r, by bracketing
// with exact power-of-two comparisons — exact, no float64 involved.
func floorLog2(r *big.Rat) int {
	if r.Sign() <= 0 {
		panic(&DomainError{Op: "floorLog2", Msg: "argument must be positive"})
	}
	one := big.NewRat(1, 1)
	e := 0
	if r.Cmp(one) >= 0 {
		for r.Cmp(one) >= 0 {
			r = new(big.Rat).Quo(r, ratPow2(1))
			e++
		}
		return e - 1
	}
	for r.Cmp(one) < 0 {
		r = new(big.Rat).Mul(r, ratPow2(1))
		e--
	}
	return e
}

// ratSqrt returns the truncated-toward-zero square root of x scaled by
// 2^scale, floor(sqrt(x) * 2^scale), together with whether any remainder was
// discarded (sticky) — enough for the rounding kernel's guard/round/sticky
// decision at any target mantissa width.
func ratSqrt(x *big.Rat, scale int) (truncated *big.Int, sticky bool) {
	// Compute floor(sqrt(x * 4^scale)) using big.Int.Sqrt (exact integer
	// square root), then the sticky bit records whether x*4^scale was a
	// perfect square.
	num := new(big.Int).Set(x.Num())
	den := new(big.Int).Set(x.Denom())
	if scale >= 0 {
		num.Lsh(num, uint(2*scale))
	} else {
		den.Lsh(den, uint(-2*scale))
	}
	scaled := new(big.Int).Mul(num, den) // multiply by den so division by den^2 has exact int sqrt numerator
	denSq := new(big.Int).Mul(den, den)
	q := new(big.Int)
	rem := new(big.Int)
	q.QuoRem(scaled, denSq, rem)
	root := new(big.Int).Sqrt(q)
	check := new(big.Int).Mul(root, root)
	sticky = rem.Sign() != 0 || check.Cmp(q) != 0
	return root, sticky
}
