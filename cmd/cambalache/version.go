package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/c05m4r/cambalache/internal/build"
)

// versionCmd implements the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of cambalache",
	Run: func(_ *cobra.Command, _ []string) {
		info := build.Get()
		fmt.Printf("cambalache version %s\n", info.Full())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
