package terraform

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/terraform-agent/analyzer/hclconf"
	"github.com/terraform-agent/analyzer/internal/logger"
)

// ErrNotFound is returned when the requested path does not exist.
var ErrNotFound = errors.New("path not found")

// ErrUnsupportedFileKind is returned for extensions outside .tf/.tfvars/.hcl.
var ErrUnsupportedFileKind = errors.New("unsupported file kind")

// Parser builds FileModels from Terraform source files. It is stateless and
// safe for concurrent use.
type Parser struct{}

// NewParser returns a new parser.
func NewParser() *Parser {
	return &Parser{}
}

// KindForPath returns the file kind for a path, or ErrUnsupportedFileKind.
func KindForPath(path string) (FileKind, error) {
	switch filepath.Ext(path) {
	case ".tf":
		return KindConfig, nil
	case ".tfvars":
		return KindValues, nil
	case ".hcl":
		return KindGeneric, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFileKind, path)
	}
}

// ParseFile parses one source file into a FileModel. The only error paths
// are a missing file (ErrNotFound) and an unrecognized extension
// (ErrUnsupportedFileKind); malformed source text is recorded in the
// model's ParseError field instead, with all entity slices left empty.
func (p *Parser) ParseFile(path string) (*FileModel, error) {
	kind, err := KindForPath(path)
	if err != nil {
		return nil, err
	}

	src, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	m := &FileModel{FilePath: path, FileKind: kind}

	f, err := hclconf.Decode(path, src)
	if err != nil {
		logger.Default.Debug("decode failed", "file", path, "error", err)
		m.ParseError = err.Error()
		return m, nil
	}

	if kind == KindValues {
		// A values file is a flat mapping of variable name to value; it is
		// modeled as name-only variable declarations, distinguished from
		// config-file variables by FileKind alone.
		for name := range f.Attributes {
			m.Variables = append(m.Variables, Variable{Name: name})
		}
		return m, nil
	}

	extract(m, f.Blocks)
	logger.Default.Debug("parsed file",
		"file", path,
		"kind", kind,
		"resources", len(m.Resources),
		"variables", len(m.Variables),
	)
	return m, nil
}
