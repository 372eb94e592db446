package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsonzip/jsonzip/cmd/config"
)

func NewCheckCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Validate a document without producing output",
		Long: `Parse and convert a document, reporting any error, without writing an archive.

Exits non-zero when the document cannot be converted.

Examples:
  jsonzip check project.json
  cat doc.json | jsonzip check`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
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

			fmt.Printf("OK: %d nodes\n", root.Count())
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "Input format: json or yaml (default from file extension)")

	config.AddGlobalFlags(cmd)

	return cmd
}
