package softfloat

import "testing"

func TestUnaryNaNPropagationModePriority(t *testing.T) {
	if slots, pref := UnaryAlwaysCanonical.priority(); slots != nil || pref {
		t.Errorf("UnaryAlwaysCanonical.priority() = %v, %v, want nil, false", slots, pref)
	}
	slots, pref := UnaryFirst.priority()
	if len(slots) != 1 || slots[0] != 1 || pref {
		t.Errorf("UnaryFirst.priority() = %v, %v, want [1], false", slots, pref)
	}
}

func TestBinaryNaNPropagationModePriority(t *testing.T) {
	tests := []struct {
		mode       BinaryNaNPropagationMode
		wantSlots  []int
		wantPrefer bool
	}{
		{BinaryAlwaysCanonical, nil, false},
		{BinaryFirstSecond, []int{1, 2}, false},
		{BinarySecondFirst, []int{2, 1}, false},
		{BinaryFirstSecondPreferringSNaN, []int{1, 2}, true},
		{BinarySecondFirstPreferringSNaN, []int{2, 1}, true},
	}
	for _, test := range tests {
		slots, pref := test.mode.priority()
		if pref != test.wantPrefer || len(slots) != len(test.wantSlots) {
			t.Fatalf("%v.priority() = %v, %v, want %v, %v", test.mode, slots, pref, test.wantSlots, test.wantPrefer)
		}
		for i := range slots {
			if slots[i] != test.wantSlots[i] {
				t.Errorf("%v.priority() slot %d = %d, want %d", test.mode, i, slots[i], test.wantSlots[i])
			}
		}
	}
}

func TestTernaryNaNPropagationModeCount(t *testing.T) {
	all := AllTernaryNaNPropagationModes()
	if len(all) != 13 {
		t.Errorf("len(AllTernaryNaNPropagationModes()) = %d, want 13", len(all))
	}
}

func TestTernaryNaNPropagationModePriority(t *testing.T) {
	slots, pref := TernarySecondThirdFirst.priority()
	if pref {
		t.Errorf("TernarySecondThirdFirst should not prefer SNaN")
	}
	want := []int{2, 3, 1}
	for i := range want {
		if slots[i] != want[i] {
			t.Errorf("TernarySecondThirdFirst.priority() = %v, want %v", slots, want)
			break
		}
	}

	_, pref2 := TernaryThirdFirstSecondPreferringSNaN.priority()
	if !pref2 {
		t.Errorf("TernaryThirdFirstSecondPreferringSNaN should prefer SNaN")
	}
}

func TestAllNaNModesStringable(t *testing.T) {
	for _, m := range AllUnaryNaNPropagationModes() {
		if m.String() == "" {
			t.Errorf("UnaryNaNPropagationMode(%d).String() is empty", m)
		}
	}
	for _, m := range AllBinaryNaNPropagationModes() {
		if m.String() == "" {
			t.Errorf("BinaryNaNPropagationMode(%d).String() is empty", m)
		}
	}
	for _, m := range AllTernaryNaNPropagationModes() {
		if m.String() == "" {
			t.Errorf("TernaryNaNPropagationMode(%d).String() is empty", m)
		}
	}
	for _, m := range AllFloatToFloatConversionNaNPropagationModes() {
		if m.String() == "" {
			t.Errorf("FloatToFloatConversionNaNPropagationMode(%d).String() is empty", m)
		}
	}
	for _, m := range AllFMAInfZeroQNaNResults() {
		if m.String() == "" {
			t.Errorf("FMAInfZeroQNaNResult(%d).String() is empty", m)
		}
	}
}
