// Package result defines the structured outcomes of validation and
// per-file analysis failures.
package result

// ValidationResult is the outcome of validating one configuration file.
// Valid is false if and only if Errors is non-empty.
type ValidationResult struct {
	FilePath    string   `json:"file_path"`
	Valid       bool     `json:"valid"`
	Errors      []string `json:"errors"`
	Warnings    []string `json:"warnings"`
	Suggestions []string `json:"suggestions"`
}

// AddError records an error and marks the result invalid.
func (r *ValidationResult) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.Valid = false
}

// AddWarning records a non-fatal warning.
func (r *ValidationResult) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// AddSuggestion records a best-practice suggestion.
func (r *ValidationResult) AddSuggestion(msg string) {
	r.Suggestions = append(r.Suggestions, msg)
}

// FileError records a parse failure for one file during directory analysis.
type FileError struct {
	File  string `json:"file"`
	Error string `json:"error"`
}
