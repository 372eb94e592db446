package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jsonzip/jsonzip/cmd"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "jsonzip",
		Short: "Convert JSON documents into folder trees and zip archives",
		Long: `jsonzip turns a JSON (or YAML) document into a hierarchical tree of
folders and files and packages that tree into a zip archive. Objects and
arrays become folders, scalars become files, and a couple of recognized
marker shapes let a document embed explicit file content.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cmd.NewPackCmd())
	rootCmd.AddCommand(cmd.NewTreeCmd())
	rootCmd.AddCommand(cmd.NewCheckCmd())
	rootCmd.AddCommand(cmd.NewVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
