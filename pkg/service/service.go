// Package service ties the pipeline together: decode, build, pack. It is the
// boundary at which every failure is reported as a structured models.Error.
package service

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/jsonzip/jsonzip/pkg/archive"
	"github.com/jsonzip/jsonzip/pkg/jsondoc"
	"github.com/jsonzip/jsonzip/pkg/models"
	"github.com/jsonzip/jsonzip/pkg/tree"
)

// Format selects the input document syntax.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// DefaultMaxInputBytes caps the input document size.
const DefaultMaxInputBytes = 10 << 20

// Config holds service configuration.
type Config struct {
	MaxDepth         int
	MaxInputBytes    int
	ItemPrefix       string
	CompressionLevel int
}

// Service is the conversion service. Each call is an independent, pure
// transformation of its input; the service itself holds no mutable state, so
// calls may safely overlap.
type Service struct {
	Config *Config

	log *logrus.Logger
}

// New creates a conversion service. A nil logger gets a quiet default.
func New(config *Config, logger *logrus.Logger) *Service {
	if config == nil {
		config = &Config{}
	}
	if config.MaxInputBytes <= 0 {
		config.MaxInputBytes = DefaultMaxInputBytes
	}
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(os.Stderr)
		logger.SetLevel(logrus.WarnLevel)
	}
	return &Service{Config: config, log: logger}
}

// BuildTree decodes the input document and converts it to a node tree. On
// failure the returned error is a *models.Error and no tree is produced.
func (s *Service) BuildTree(input []byte, format Format) (*models.Node, error) {
	if len(input) > s.Config.MaxInputBytes {
		return nil, models.NewStructureError("input is %d bytes, limit is %d", len(input), s.Config.MaxInputBytes)
	}

	var (
		value jsondoc.Value
		err   error
	)
	switch format {
	case FormatYAML:
		value, err = jsondoc.DecodeYAML(input)
	default:
		value, err = jsondoc.Decode(input)
	}
	if err != nil {
		return nil, models.WrapError(models.ErrParse, err)
	}

	root, err := tree.Build(value, tree.Options{
		MaxDepth:   s.Config.MaxDepth,
		ItemPrefix: s.Config.ItemPrefix,
	})
	if err != nil {
		return nil, models.WrapError(models.ErrStructure, err)
	}

	s.log.WithFields(logrus.Fields{
		"format": format,
		"nodes":  root.Count(),
	}).Debug("built tree")
	return root, nil
}

// Pack serializes a tree into a ZIP buffer.
func (s *Service) Pack(root *models.Node) ([]byte, error) {
	buf, err := archive.Pack(root, archive.Options{Level: s.Config.CompressionLevel})
	if err != nil {
		return nil, models.WrapError(models.ErrArchive, err)
	}
	s.log.WithField("bytes", len(buf)).Debug("packed archive")
	return buf, nil
}

// Convert runs the whole pipeline: input text to tree to archive buffer.
// Delivering the buffer to storage or download is the caller's concern.
func (s *Service) Convert(input []byte, format Format) (*models.Node, []byte, error) {
	root, err := s.BuildTree(input, format)
	if err != nil {
		return nil, nil, err
	}
	buf, err := s.Pack(root)
	if err != nil {
		return nil, nil, err
	}
	return root, buf, nil
}
