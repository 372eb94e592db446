package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jsonzip/jsonzip/cmd/config"
	"github.com/jsonzip/jsonzip/pkg/models"
)

func NewTreeCmd() *cobra.Command {
	var (
		format     string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "tree [file]",
		Short: "Show the folder/file tree for a document",
		Long: `Convert a document and print the resulting tree without packing it.

Examples:
  jsonzip tree project.json         # Print the tree
  jsonzip tree project.json --json  # Machine-readable output
  cat doc.json | jsonzip tree`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config.InitConfig()
			svc := config.InitService()

			input, source, err := readInput(args)
			if err != nil {
				return err
			}
			fmtIn, err := inputFormat(format, source)
			if err != nil {
				return err
			}

			root, err := svc.BuildTree(input, fmtIn)
			if err != nil {
				return err
			}

			if jsonOutput {
				data, err := json.MarshalIndent(root, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal tree: %w", err)
				}
				fmt.Println(string(data))
				return nil
			}

			printTree(root, 0)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "Input format: json or yaml (default from file extension)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the tree as JSON")

	config.AddGlobalFlags(cmd)

	return cmd
}

var (
	folderColor = color.New(color.FgBlue, color.Bold)
	sizeColor   = color.New(color.Faint)
)

func printTree(n *models.Node, depth int) {
	if n.Path != "" {
		for i := 1; i < depth; i++ {
			fmt.Print("  ")
		}
		if n.IsDir() {
			folderColor.Printf("%s/\n", n.Name)
		} else {
			fmt.Printf("%s %s\n", n.Name, sizeColor.Sprintf("(%d bytes)", n.Size))
		}
	}
	for _, child := range n.Children {
		printTree(child, depth+1)
	}
}
