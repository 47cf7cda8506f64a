// Command simulator executes an LC-2K executable image against a
// configurable write-back set-associative cache.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"lc2k/internal/clilog"
	"lc2k/internal/sim"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "simulator <exeFile> <blockSize> <numSets> <blocksPerSet>",
	Short: "Run an LC-2K executable through the cache-backed simulator",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := clilog.New(verbose)

		blockSize, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("blockSize must be an integer: %w", err)
		}
		numSets, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("numSets must be an integer: %w", err)
		}
		blocksPerSet, err := strconv.Atoi(args[3])
		if err != nil {
			return fmt.Errorf("blocksPerSet must be an integer: %w", err)
		}

		log.Debug("starting simulation", "exe", args[0], "blockSize", blockSize, "numSets", numSets, "blocksPerSet", blocksPerSet)

		if err := sim.RunFile(args[0], blockSize, numSets, blocksPerSet, os.Stdout); err != nil {
			fmt.Println(err.Error())
			os.Exit(1)
		}
		log.Debug("halted successfully")
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
