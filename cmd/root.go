// Package cmd is for command line interactions with the unitig-flipper application
package cmd

import (
	"log"

	"github.com/jnalanko/unitig-flipper/internal/flip"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootCmd represents the base command: orient every unitig in an assembly.
var RootCmd = &cobra.Command{
	Use:   "unitig-flipper <unitigs> <k>",
	Short: "Pick a consistent strand for every unitig in an assembly",
	Long: `Resolve the strand ambiguity in a set of unitigs from a compacted
de Bruijn graph. Each unitig in the input may have been emitted in either
its forward or reverse complement strand; unitig-flipper links unitigs by
their shared (k-1)-base boundaries and rewrites each one so that every
unitig reachable from another comes out in a mutually consistent strand.

The input is a FASTA or FASTQ file of unitigs (optionally gzip'd) and the
k-mer length the graph was built with. Oriented records are written to
standard output in the input's format.`,
	Version: "0.1.0",
	Args:    cobra.ExactArgs(2),
	Run:     flip.OrientCmd,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

// set flags
func init() {
	RootCmd.Flags().StringP("out", "o", "", "Output file for the oriented records (default stdout)")
	RootCmd.Flags().StringP("consistency", "c", "warn", "Conflicting orientation handling: ignore, warn or strict")

	// bind the parameters to viper
	viper.BindPFlag("out", RootCmd.Flags().Lookup("out"))
	viper.BindPFlag("consistency", RootCmd.Flags().Lookup("consistency"))

	// an optional settings.yaml can set the same keys
	viper.SetConfigName("settings")
	viper.AddConfigPath(".")
	viper.ReadInConfig() // running without a settings file is fine
}
