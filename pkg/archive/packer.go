// Package archive packs a node tree into an in-memory ZIP buffer.
package archive

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zip"
	"golang.org/x/text/unicode/norm"

	"github.com/jsonzip/jsonzip/pkg/models"
)

// Options control archive generation.
type Options struct {
	// Level is the deflate compression level (1-9). Zero selects the
	// library default.
	Level int
}

// Entry is one unit the packer writes for a tree: a file with content, or an
// explicit empty-directory marker.
type Entry struct {
	Path string
	Dir  bool
	Size int
}

// Entries returns the archive entries for a tree in depth-first order,
// without building the archive. Folders with children are implied by their
// descendants' paths and get no entry of their own; only childless folders
// are listed explicitly. An unnamed empty root produces no entries at all.
func Entries(root *models.Node) []Entry {
	var out []Entry
	_ = root.Walk(func(n *models.Node) error {
		switch {
		case n.Kind == models.KindFile:
			out = append(out, Entry{Path: n.Path, Size: n.Size})
		case n.Path != "" && len(n.Children) == 0:
			out = append(out, Entry{Path: n.Path + "/", Dir: true})
		}
		return nil
	})
	return out
}

// Pack walks the tree depth-first and returns the completed ZIP archive as a
// single buffer. File content is written as UTF-8 bytes; entry names are
// NFC-normalized so extracted trees do not grow duplicate-looking names.
// Either the whole archive is produced or an error is returned with no
// partial buffer. Identical trees produce identical buffers.
func Pack(root *models.Node, opts Options) ([]byte, error) {
	if root == nil {
		return nil, models.NewArchiveError("nil tree")
	}

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	level := opts.Level
	if level == 0 {
		level = flate.DefaultCompression
	}
	w.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, level)
	})

	err := root.Walk(func(n *models.Node) error {
		switch {
		case n.Kind == models.KindFile:
			fw, err := w.CreateHeader(&zip.FileHeader{
				Name:   norm.NFC.String(n.Path),
				Method: zip.Deflate,
			})
			if err != nil {
				return err
			}
			_, err = fw.Write([]byte(n.Content))
			return err

		case n.Path != "" && len(n.Children) == 0:
			_, err := w.CreateHeader(&zip.FileHeader{
				Name:   norm.NFC.String(n.Path) + "/",
				Method: zip.Store,
			})
			return err
		}
		return nil
	})
	if err != nil {
		_ = w.Close()
		return nil, models.WrapError(models.ErrArchive, err)
	}

	if err := w.Close(); err != nil {
		return nil, models.NewArchiveError("finalize archive: %v", err)
	}
	return buf.Bytes(), nil
}
