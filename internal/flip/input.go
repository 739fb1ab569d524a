package flip

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/jnalanko/unitig-flipper/config"
	"github.com/spf13/cobra"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

// Flags contains the parsed command line input to an orientation run.
type Flags struct {
	// the path of the unitig file to orient
	in string

	// the k-mer length the graph was built with; boundaries are k-1 bases
	k int

	// the file to write oriented records to; stdout if empty
	out string

	// how to treat conflicting orientation proposals
	consistency string
}

// NewFlags makes a new Flags object manually. for testing.
func NewFlags(in string, k int, out, consistency string) *Flags {
	if consistency == "" {
		consistency = consistencyWarn
	}

	return &Flags{
		in:          in,
		k:           k,
		out:         out,
		consistency: consistency,
	}
}

// parseCmdFlags gathers the unitig path and k from a cobra command's
// positional args, and the remaining settings from config.
func parseCmdFlags(cmd *cobra.Command, args []string) *Flags {
	c := config.New()

	if len(args) != 2 {
		cmd.Help()
		stderr.Fatalln("\nexpected a unitig file and a k-mer length")
	}

	in := args[0]
	if _, err := os.Stat(in); err != nil {
		stderr.Fatalf("failed to find a unitig file at %s: %v", in, err)
	}

	k, err := strconv.Atoi(args[1])
	if err != nil {
		stderr.Fatalf("failed to parse k from %q: %v", args[1], err)
	}
	if k < 2 {
		stderr.Fatalf("k must be at least 2, got %d", k)
	}

	if err := validConsistency(c.Consistency); err != nil {
		cmd.Help()
		stderr.Fatalln(err)
	}

	return &Flags{
		in:          in,
		k:           k,
		out:         c.Out,
		consistency: c.Consistency,
	}
}

// validConsistency checks a consistency mode name from the CLI or settings.
func validConsistency(mode string) error {
	switch mode {
	case consistencyIgnore, consistencyWarn, consistencyStrict:
		return nil
	}

	return fmt.Errorf(`unknown consistency mode %q: expected "ignore", "warn" or "strict"`, mode)
}
