package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the current version of the stochvol CLI.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("stochvol version %s\n", version)
		fmt.Println("Moment-matching option and variance-swap pricing under Heston")
		fmt.Println("https://github.com/rustyeddy/stochvol")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
