// Package flip links unitigs by their shared (k-1)-base boundaries and
// picks one strand per unitig so that every unitig reachable from another
// is laid out consistently with its neighbors.
package flip

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// OrientCmd takes a cobra command (with its flags) and runs Orient.
func OrientCmd(cmd *cobra.Command, args []string) {
	if err := Orient(parseCmdFlags(cmd, args)); err != nil {
		stderr.Fatalln(err)
	}
}

// Orient reads the unitig file, resolves one orientation per unitig, and
// writes every record back out in its resolved strand.
func Orient(flags *Flags) error {
	db, err := readSeqDB(flags.in)
	if err != nil {
		return err
	}

	g, err := buildDBG(db, flags.k)
	if err != nil {
		return err
	}

	orientations, conflicts := pickOrientations(g)
	if conflicts > 0 {
		switch flags.consistency {
		case consistencyStrict:
			return fmt.Errorf(
				"found %d conflicting orientation proposals: the overlap graph has no consistent strand assignment",
				conflicts,
			)
		case consistencyWarn:
			stderr.Printf("Warning: discarded %d conflicting orientation proposals", conflicts)
		}
	}

	w := io.Writer(os.Stdout)
	if flags.out != "" {
		f, err := os.Create(flags.out)
		if err != nil {
			return fmt.Errorf("failed to create output file: %v", err)
		}
		defer f.Close()
		w = f
	}

	return writeRecords(w, db, orientations)
}
