// Command linker merges N LC-2K object records into a flat executable
// image.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lc2k/internal/clilog"
	"lc2k/internal/link"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "linker <obj1> [obj2 ...] <outFile>",
	Short: "Link one or more LC-2K object records into an executable",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := clilog.New(verbose)
		objPaths := args[:len(args)-1]
		outFile := args[len(args)-1]
		log.Debug("linking", "objects", objPaths, "out", outFile)

		if err := link.LinkFiles(objPaths, outFile, log); err != nil {
			fmt.Println(err.Error())
			os.Exit(1)
		}
		log.Debug("linked successfully")
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
