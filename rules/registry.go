// Package rules runs structural and best-practice checks over file models.
// The rule set is fixed at build time; rules are additive and independent,
// so evaluation order never changes the resulting sets.
package rules

import (
	"sync"

	"github.com/terraform-agent/analyzer/result"
	"github.com/terraform-agent/analyzer/terraform"
)

// Rule inspects one file model and appends findings to the result.
type Rule func(m *terraform.FileModel, r *result.ValidationResult)

// Default is the global rule registry.
var Default = New()

// Registry holds validation and best-practice rules.
type Registry struct {
	mu            sync.RWMutex
	validation    []Rule
	bestPractices []Rule
}

// New returns a new empty registry.
func New() *Registry {
	return &Registry{}
}

// Register adds a validation rule (errors and warnings).
func (g *Registry) Register(rule Rule) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.validation = append(g.validation, rule)
}

// RegisterBestPractice adds a best-practice rule (suggestions).
func (g *Registry) RegisterBestPractice(rule Rule) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.bestPractices = append(g.bestPractices, rule)
}

// Validate runs every rule against the file model and returns the combined
// result. Valid is false exactly when at least one error was recorded.
func (g *Registry) Validate(m *terraform.FileModel) *result.ValidationResult {
	r := &result.ValidationResult{
		FilePath:    m.FilePath,
		Valid:       true,
		Errors:      []string{},
		Warnings:    []string{},
		Suggestions: []string{},
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, rule := range g.validation {
		rule(m, r)
	}
	for _, rule := range g.bestPractices {
		rule(m, r)
	}
	return r
}

// CheckBestPractices runs only the best-practice rules, appending
// suggestions to an existing result.
func (g *Registry) CheckBestPractices(m *terraform.FileModel, r *result.ValidationResult) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, rule := range g.bestPractices {
		rule(m, r)
	}
}
