package main

import (
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

var versionCommand = &cobra.Command{
	Use:   "version",
	Short: "Print the resume_analyzer version",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Println("resume_analyzer " + version)
	},
}

func init() {
	rootCmd.AddCommand(versionCommand)
}
