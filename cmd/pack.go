package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jsonzip/jsonzip/cmd/config"
	"github.com/jsonzip/jsonzip/pkg/archive"
)

func NewPackCmd() *cobra.Command {
	var (
		output     string
		format     string
		listOnly   bool
		level      int
	)

	cmd := &cobra.Command{
		Use:   "pack [file]",
		Short: "Convert a document into a zip archive",
		Long: `Convert a JSON or YAML document into a zip archive of folders and files.

Reads from the given file, or from stdin when no file is given.

Examples:
  jsonzip pack project.json                # Write project.zip
  jsonzip pack project.json -o out.zip     # Choose the output name
  cat doc.json | jsonzip pack -o -         # Write the archive to stdout
  jsonzip pack config.yaml --format yaml   # Force the input format
  jsonzip pack project.json --list         # Show entries without writing`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config.InitConfig()
			svc := config.InitService()
			if level != 0 {
				svc.Config.CompressionLevel = level
			}

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

			if listOnly {
				w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "PATH\tSIZE")
				for _, e := range archive.Entries(root) {
					if e.Dir {
						fmt.Fprintf(w, "%s\t-\n", e.Path)
					} else {
						fmt.Fprintf(w, "%s\t%d\n", e.Path, e.Size)
					}
				}
				return w.Flush()
			}

			buf, err := svc.Pack(root)
			if err != nil {
				return err
			}

			if output == "-" {
				_, err := os.Stdout.Write(buf)
				return err
			}

			dest := output
			if dest == "" {
				dest = defaultOutput(source)
			}
			if err := os.WriteFile(dest, buf, 0644); err != nil {
				return fmt.Errorf("write archive: %w", err)
			}

			fmt.Printf("Wrote %s (%d entries, %d bytes)\n", dest, len(archive.Entries(root)), len(buf))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (- for stdout)")
	cmd.Flags().StringVar(&format, "format", "", "Input format: json or yaml (default from file extension)")
	cmd.Flags().BoolVar(&listOnly, "list", false, "List would-be archive entries without writing")
	cmd.Flags().IntVar(&level, "level", 0, "Deflate compression level 1-9 (0 = default)")

	// Add global flags
	config.AddGlobalFlags(cmd)

	return cmd
}

func defaultOutput(source string) string {
	if source == "" {
		return "archive.zip"
	}
	base := filepath.Base(source)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".zip"
}
