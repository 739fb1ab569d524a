package flip

import "testing"

// Test complementing a base twice returns the original, for every base
func Test_Complement(t *testing.T) {
	for _, c := range []byte("ACGT") {
		comp, err := complement(c)
		if err != nil {
			t.Fatalf("failed to complement %q: %v", c, err)
		}

		back, err := complement(comp)
		if err != nil {
			t.Fatalf("failed to complement %q: %v", comp, err)
		}

		if back != c {
			t.Errorf("complementing %q twice gave %q", c, back)
		}
	}
}

func Test_ReverseComplement(t *testing.T) {
	rc, err := reverseComplement([]byte("AATCG"))
	if err != nil {
		t.Fatal(err)
	}
	if string(rc) != "CGATT" {
		t.Errorf("reverse complement of AATCG was %s, not CGATT", rc)
	}

	// reverse complementing twice is the identity
	back, err := reverseComplement(rc)
	if err != nil {
		t.Fatal(err)
	}
	if string(back) != "AATCG" {
		t.Errorf("double reverse complement gave %s, not AATCG", back)
	}
}

// an ambiguity code like N is a fatal input error, not a pass-through
func Test_ReverseComplement_invalidBase(t *testing.T) {
	if _, err := reverseComplement([]byte("AANCG")); err == nil {
		t.Error("expected an error reverse complementing a sequence with an N")
	}
}

func Test_ReverseBytes(t *testing.T) {
	if got := string(reverseBytes([]byte("ABCDE"))); got != "EDCBA" {
		t.Errorf("reversed quality was %s, not EDCBA", got)
	}
}
