package softfloat

import "testing"

func TestPlatformRISCVMatchesSpec(t *testing.T) {
	p := PlatformRISCV
	if p.CanonicalNaNSign != Positive {
		t.Errorf("PlatformRISCV.CanonicalNaNSign = %v, want Positive", p.CanonicalNaNSign)
	}
	if !p.CanonicalNaNMantissaMSB || p.CanonicalNaNMantissaSecondToMSB || p.CanonicalNaNMantissaRest {
		t.Errorf("PlatformRISCV canonical NaN mantissa bits = %v/%v/%v, want true/false/false",
			p.CanonicalNaNMantissaMSB, p.CanonicalNaNMantissaSecondToMSB, p.CanonicalNaNMantissaRest)
	}
	if p.StdBinOpsNaNPropagationMode != BinaryAlwaysCanonical {
		t.Errorf("PlatformRISCV.StdBinOpsNaNPropagationMode = %v, want BinaryAlwaysCanonical", p.StdBinOpsNaNPropagationMode)
	}
	if p.FMANaNPropagationMode != TernaryAlwaysCanonical {
		t.Errorf("PlatformRISCV.FMANaNPropagationMode = %v, want TernaryAlwaysCanonical", p.FMANaNPropagationMode)
	}
	if p.QuietNaNFormat() != StandardQuietNaN {
		t.Errorf("PlatformRISCV.QuietNaNFormat() = %v, want StandardQuietNaN", p.QuietNaNFormat())
	}
}

func TestPlatformMIPSLegacyUsesLegacyQuietBit(t *testing.T) {
	if PlatformMIPSLegacy.QuietNaNFormat() != MIPSLegacyQuietNaN {
		t.Errorf("PlatformMIPSLegacy.QuietNaNFormat() = %v, want MIPSLegacyQuietNaN", PlatformMIPSLegacy.QuietNaNFormat())
	}
}

func TestPlatformX86SSECanonicalNaNIsNegative(t *testing.T) {
	if PlatformX86SSE.CanonicalNaNSign != Negative {
		t.Errorf("PlatformX86SSE.CanonicalNaNSign = %v, want Negative", PlatformX86SSE.CanonicalNaNSign)
	}
}

func TestPlatformPropertiesWithOverridesDoesNotMutateBase(t *testing.T) {
	base := PlatformRISCV
	derived := base.With(WithCanonicalNaNSign(Negative))
	if base.CanonicalNaNSign != Positive {
		t.Errorf("base mutated by With: CanonicalNaNSign = %v", base.CanonicalNaNSign)
	}
	if derived.CanonicalNaNSign != Negative {
		t.Errorf("derived.CanonicalNaNSign = %v, want Negative", derived.CanonicalNaNSign)
	}
	if derived.StdBinOpsNaNPropagationMode != base.StdBinOpsNaNPropagationMode {
		t.Errorf("With() changed an unrelated field")
	}
}

func TestNewPlatformPropertiesNilBase(t *testing.T) {
	p := NewPlatformProperties(nil, WithCanonicalNaNSign(Negative))
	if p.CanonicalNaNSign != Negative {
		t.Errorf("NewPlatformProperties(nil, ...).CanonicalNaNSign = %v, want Negative", p.CanonicalNaNSign)
	}
	if p.StdBinOpsNaNPropagationMode != BinaryAlwaysCanonical {
		t.Errorf("NewPlatformProperties(nil, ...) zero value for unset fields = %v", p.StdBinOpsNaNPropagationMode)
	}
}

func TestAllEightPlatformsDistinctOrIntentionallyShared(t *testing.T) {
	// RISC-V, ARM, and HPPA intentionally share the all-AlwaysCanonical
	// policy bundle, and MIPS 2008 and SPARC share one first-operand
	// bundle; every other pair differs in at least one field.
	platforms := map[string]PlatformProperties{
		"riscv": PlatformRISCV, "arm": PlatformARM, "power": PlatformPOWER,
		"mips2008": PlatformMIPS2008, "mipslegacy": PlatformMIPSLegacy,
		"x86sse": PlatformX86SSE, "sparc": PlatformSPARC, "hppa": PlatformHPPA,
	}
	if len(platforms) != 8 {
		t.Fatalf("expected 8 named platforms, got %d", len(platforms))
	}
	shared := map[[2]string]bool{
		{"arm", "riscv"}: true, {"hppa", "riscv"}: true, {"arm", "hppa"}: true,
		{"mips2008", "sparc"}: true,
	}
	for nameA, a := range platforms {
		for nameB, b := range platforms {
			if nameA >= nameB {
				continue
			}
			if want := shared[[2]string{nameA, nameB}]; (a == b) != want {
				t.Errorf("%s and %s: identical = %v, want %v", nameA, nameB, a == b, want)
			}
		}
	}
}
