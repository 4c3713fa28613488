package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("convo version: %s\n", Version)
		fmt.Printf("git commit: %s\n", GitCommit)
		fmt.Printf("build date: %s\n", BuildDate)
		fmt.Printf("go version: %s\n", runtime.Version())
	},
	SilenceUsage: true,
}
