package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wayfind"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of wayfind",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("wayfind version %s\n", wayfind.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
