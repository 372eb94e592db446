package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jsonzip/jsonzip/pkg/service"
)

// readInput loads the document from the first argument, or from stdin when
// no argument (or "-") is given. The returned source name is empty for stdin.
func readInput(args []string) ([]byte, string, error) {
	if len(args) > 0 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, "", fmt.Errorf("read input: %w", err)
		}
		return data, args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, "", fmt.Errorf("read stdin: %w", err)
	}
	return data, "", nil
}

// inputFormat resolves the document format from an explicit flag, falling
// back to the source file extension. JSON is the default.
func inputFormat(explicit, source string) (service.Format, error) {
	switch strings.ToLower(explicit) {
	case "":
	case "json":
		return service.FormatJSON, nil
	case "yaml", "yml":
		return service.FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown format %q (want json or yaml)", explicit)
	}

	switch strings.ToLower(filepath.Ext(source)) {
	case ".yaml", ".yml":
		return service.FormatYAML, nil
	}
	return service.FormatJSON, nil
}
