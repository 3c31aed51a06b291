package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/inkwell"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of inkwell",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), inkwell.Banner())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
