package flip

import "fmt"

// complement returns the pairing base of c. Bases outside ACGT are an
// input error, never silently passed through.
func complement(c byte) (byte, error) {
	switch c {
	case 'A':
		return 'T', nil
	case 'T':
		return 'A', nil
	case 'G':
		return 'C', nil
	case 'C':
		return 'G', nil
	}

	return 0, fmt.Errorf("invalid character in sequence: %q", c)
}

// reverseComplement returns seq read backward with every base complemented.
func reverseComplement(seq []byte) ([]byte, error) {
	rc := make([]byte, len(seq))
	for i, c := range seq {
		comp, err := complement(c)
		if err != nil {
			return nil, err
		}
		rc[len(seq)-1-i] = comp
	}

	return rc, nil
}

// reverseBytes returns b in reverse order, without complementing. Used to
// keep FASTQ qualities aligned with a reverse complemented sequence.
func reverseBytes(b []byte) []byte {
	rev := make([]byte, len(b))
	for i, c := range b {
		rev[len(b)-1-i] = c
	}

	return rev
}
