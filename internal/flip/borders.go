package flip

import "fmt"

// position marks which end of a unitig a boundary was cut from.
type position int

const (
	startPos position = iota
	endPos
)

// borderEntry records that a unitig's start or end carries the keyed boundary.
type borderEntry struct {
	unitigID int
	pos      position
}

// borderIndex maps each (k-1)-base boundary to the unitig ends that carry
// it, in insertion order: ascending id, start before end. A unitig whose
// first and last boundaries are equal contributes two entries to one key.
type borderIndex map[string][]borderEntry

// buildBorderIndex indexes the first and last k-1 bases of every unitig in
// the store. Every unitig must be at least k-1 bases long.
func buildBorderIndex(db *SeqDB, k int) (borderIndex, error) {
	borders := make(borderIndex)

	for i := 0; i < db.Count(); i++ {
		seq := db.Get(i)
		if len(seq) < k-1 {
			return nil, fmt.Errorf(
				"unitig %d is %d bases long, shorter than the boundary length k-1 = %d",
				i, len(seq), k-1,
			)
		}

		first := string(seq[:k-1])
		last := string(seq[len(seq)-(k-1):])

		borders[first] = append(borders[first], borderEntry{unitigID: i, pos: startPos})
		borders[last] = append(borders[last], borderEntry{unitigID: i, pos: endPos})
	}

	return borders, nil
}
