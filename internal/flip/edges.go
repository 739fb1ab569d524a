package flip

import "fmt"

// orientation says whether a unitig is laid out as its original sequence
// (forward) or as its reverse complement.
type orientation int

const (
	forward orientation = iota
	reverse
)

func (o orientation) flip() orientation {
	if o == forward {
		return reverse
	}

	return forward
}

func (o orientation) String() string {
	if o == forward {
		return "forward"
	}

	return "reverse"
}

// edge encodes: if unitig from is laid out in fromO, unitig to must be laid
// out in toO for their shared (k-1)-base boundary to be a valid overlap.
type edge struct {
	from, to   int
	fromO, toO orientation
}

// dbg is the bidirected overlap graph over the store's unitigs.
type dbg struct {
	unitigs *SeqDB

	// edges[i] = outgoing edges from unitig i
	edges [][]edge
}

// buildDBG derives every overlap edge between the store's unitigs. Each
// unitig is queried by its four possible linking boundaries: its forward
// suffix and prefix and their reverse complements. The derivation is
// exhaustive, keeping self-loops and parallel edges.
func buildDBG(db *SeqDB, k int) (*dbg, error) {
	borders, err := buildBorderIndex(db, k)
	if err != nil {
		return nil, err
	}

	edges := make([][]edge, db.Count())
	for i := 0; i < db.Count(); i++ {
		seq := db.Get(i)
		rcSeq, err := reverseComplement(seq)
		if err != nil {
			return nil, fmt.Errorf("unitig %d: %v", i, err)
		}

		first := seq[:k-1]
		last := seq[len(seq)-(k-1):]
		firstRC := rcSeq[len(rcSeq)-(k-1):]
		lastRC := rcSeq[:k-1]

		// a unitig extends forward off its suffix and backward off its
		// prefix; the reverse complement boundaries link strand flips
		edges[i] = appendEdges(edges[i], borders, i, forward, forward, startPos, last)
		edges[i] = appendEdges(edges[i], borders, i, forward, reverse, endPos, lastRC)
		edges[i] = appendEdges(edges[i], borders, i, reverse, reverse, endPos, first)
		edges[i] = appendEdges(edges[i], borders, i, reverse, forward, startPos, firstRC)
	}

	return &dbg{unitigs: db, edges: edges}, nil
}

// appendEdges emits an edge for every indexed unitig end that matches the
// linking boundary at the required position.
func appendEdges(
	out []edge,
	borders borderIndex,
	from int,
	fromO, toO orientation,
	toPos position,
	linking []byte,
) []edge {
	for _, entry := range borders[string(linking)] {
		if entry.pos == toPos {
			out = append(out, edge{from: from, to: entry.unitigID, fromO: fromO, toO: toO})
		}
	}

	return out
}
