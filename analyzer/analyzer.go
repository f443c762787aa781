// Package analyzer aggregates parsed Terraform files into a project-wide
// analysis: a deduplicated summary, a resource dependency graph and
// per-file error records. It also runs the validation rule set over single
// files. Analyses are value results; nothing is cached between calls.
package analyzer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"sync"

	"github.com/terraform-agent/analyzer/internal/fsutil"
	"github.com/terraform-agent/analyzer/internal/logger"
	"github.com/terraform-agent/analyzer/result"
	"github.com/terraform-agent/analyzer/rules"
	"github.com/terraform-agent/analyzer/terraform"
)

// ProjectAnalysis is the aggregated result over a directory of source files.
// The order of Files follows filesystem enumeration and is not guaranteed
// stable across platforms; consumers should rely on set membership and
// counts only.
type ProjectAnalysis struct {
	RootDirectory string                 `json:"directory"`
	Files         []*terraform.FileModel `json:"files"`
	Summary       ProjectSummary         `json:"summary"`
	Dependencies  DependencyGraph        `json:"dependencies"`
	Errors        []result.FileError     `json:"errors"`
}

// Analyzer runs project-wide analysis. It is stateless apart from its
// options; concurrent calls are independent.
type Analyzer struct {
	opts   Options
	parser *terraform.Parser
}

// New returns a new analyzer with the given options.
func New(opts Options) *Analyzer {
	if opts.MaxParallel <= 0 {
		opts.MaxParallel = runtime.NumCPU()
	}
	if opts.MaxParallel > 32 {
		opts.MaxParallel = 32
	}
	return &Analyzer{
		opts:   opts,
		parser: terraform.NewParser(),
	}
}

// AnalyzeDirectory parses every .tf and .tfvars file under the directory
// (recursively) and folds them into one ProjectAnalysis. A single file's
// parse failure never aborts the analysis; it is recorded in Errors and the
// file contributes nothing to the summary. The only hard failure is a
// missing directory (terraform.ErrNotFound).
func (a *Analyzer) AnalyzeDirectory(dir string) (*ProjectAnalysis, error) {
	if _, err := os.Stat(dir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", terraform.ErrNotFound, dir)
		}
		return nil, fmt.Errorf("stat %s: %w", dir, err)
	}

	paths, err := fsutil.FindFilesByExtension(dir, ".tf", ".tfvars")
	if err != nil {
		return nil, fmt.Errorf("enumerate %s: %w", dir, err)
	}
	logger.Default.Debug("discovered files", "directory", dir, "count", len(paths))

	// Per-file parsing is independent; fan out with a bounded worker count
	// and do the summary fold sequentially afterwards.
	models := make([]*terraform.FileModel, len(paths))
	var wg sync.WaitGroup
	sem := make(chan struct{}, a.opts.MaxParallel)
	for i, path := range paths {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, path string) {
			defer wg.Done()
			defer func() { <-sem }()
			m, err := a.parser.ParseFile(path)
			if err != nil {
				// ParseFile only fails on caller contract violations; a path
				// that vanished mid-walk degrades to an error-only model.
				m = &terraform.FileModel{FilePath: path, ParseError: err.Error()}
			}
			models[i] = m
		}(i, path)
	}
	wg.Wait()

	analysis := &ProjectAnalysis{
		RootDirectory: dir,
		Summary:       newSummary(),
		Errors:        []result.FileError{},
	}
	for _, m := range models {
		analysis.Files = append(analysis.Files, m)
		analysis.Summary.add(m)
		if m.ParseError != "" {
			analysis.Errors = append(analysis.Errors, result.FileError{
				File:  m.FilePath,
				Error: m.ParseError,
			})
		}
	}
	analysis.Summary.finalize()
	analysis.Dependencies = buildGraph(analysis.Files)

	logger.Default.Debug("analysis complete",
		"directory", dir,
		"files", analysis.Summary.TotalFiles,
		"resource_types", analysis.Summary.TotalResources,
		"errors", len(analysis.Errors),
	)
	return analysis, nil
}

// ValidateConfiguration parses one file and runs the rule set over it. The
// only error paths are a missing path and an unsupported file kind; a file
// that fails to decode yields an invalid result, not an error.
func (a *Analyzer) ValidateConfiguration(path string) (*result.ValidationResult, error) {
	m, err := a.parser.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return rules.Default.Validate(m), nil
}
