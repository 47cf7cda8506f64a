// Command disasm renders an LC-2K object record or executable image as
// mnemonic text.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lc2k/internal/asm"
	"lc2k/internal/clilog"
	"lc2k/internal/objfile"
)

var (
	verbose bool
	isExe   bool
)

var rootCmd = &cobra.Command{
	Use:   "disasm <file>",
	Short: "Disassemble an LC-2K object record or executable image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := clilog.New(verbose)

		f, err := os.Open(args[0])
		if err != nil {
			fmt.Println(err.Error())
			os.Exit(1)
		}
		defer f.Close()

		var words []int32
		if isExe {
			words, err = objfile.ReadImage(f)
		} else {
			var rec *objfile.Record
			rec, err = objfile.ReadRecord(f)
			if rec != nil {
				words = rec.Text
			}
		}
		if err != nil {
			fmt.Println(err.Error())
			os.Exit(1)
		}

		log.Debug("disassembling", "words", len(words))
		for _, word := range words {
			fmt.Println(asm.Disassemble(word))
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "raise the ambient log level to debug")
	rootCmd.Flags().BoolVar(&isExe, "exe", false, "treat the input as a flat executable image rather than an object record")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
