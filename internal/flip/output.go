package flip

import (
	"bufio"
	"fmt"
	"io"
)

// writeRecords emits one record per unitig in id order to w, in the store's
// format family. A unitig resolved to reverse is written as its reverse
// complement, with its quality string (if any) reversed alongside.
func writeRecords(w io.Writer, db *SeqDB, orientations []orientation) error {
	out := bufio.NewWriter(w)

	for i := 0; i < db.Count(); i++ {
		rec := db.Record(i)
		seq := rec.Seq
		qual := rec.Qual

		if orientations[i] == reverse {
			rc, err := reverseComplement(seq)
			if err != nil {
				return fmt.Errorf("unitig %d: %v", i, err)
			}
			seq = rc
			qual = reverseBytes(qual)
		}

		switch db.filetype {
		case fastqType:
			fmt.Fprintf(out, "@%s\n%s\n+\n%s\n", rec.Head, seq, qual)
		default:
			fmt.Fprintf(out, ">%s\n%s\n", rec.Head, seq)
		}
	}

	return out.Flush()
}
