package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "nest",
	Short: "nest irregular parts into a bin",
	Long: `nest packs a set of 2D parts into a bin using a no-fit-polygon
genetic algorithm:
	- read parts and bin geometry from a JSON shape document,
	- run the nesting algorithm until cancelled,
	- write the best placement found to a JSON document as it improves.`,
}

// Execute adds all child commands to the root command sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
