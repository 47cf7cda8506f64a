// Command assembler translates LC-2K assembly into a relocatable object
// record.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lc2k/internal/asm"
	"lc2k/internal/clilog"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "assembler <inFile> <outFile>",
	Short: "Assemble LC-2K assembly into an object record",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := clilog.New(verbose)
		inFile, outFile := args[0], args[1]
		log.Debug("assembling", "in", inFile, "out", outFile)

		if err := asm.Assemble(inFile, outFile); err != nil {
			fmt.Println(err.Error())
			os.Exit(1)
		}
		log.Debug("assembled successfully")
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "raise the ambient log level to debug")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
