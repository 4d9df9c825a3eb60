package cmd

import (
	"context"
	"log"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "j1979tool",
	Short:        "decode OBD-II/J1979 responses",
	SilenceUsage: true,
}

// Execute runs the root command with ctx; each subcommand file's init
// registers itself and its flags. Called once by main.main.
func Execute(ctx context.Context) {
	rootCmd.ExecuteContext(ctx)
}

const (
	flagDictionary = "dictionary"
	flagTrace      = "trace"
)

func init() {
	log.SetFlags(log.Lshortfile | log.LstdFlags)

	pf := rootCmd.PersistentFlags()
	pf.StringP(flagDictionary, "d", "", "path to a JSON decoder dictionary (see dictionary.go's MapDictionary shape)")
	pf.BoolP(flagTrace, "t", false, "enable trace-level decoder logging")
}
