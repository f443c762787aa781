// Package terraform turns Terraform source files into structured file models:
// typed entities for providers, resources, data sources, variables, outputs,
// locals, modules and terraform settings blocks.
package terraform

import "github.com/terraform-agent/analyzer/hclconf"

// FileKind classifies a source file by its suffix.
type FileKind string

const (
	// KindConfig is a .tf configuration file.
	KindConfig FileKind = "terraform"
	// KindValues is a .tfvars variable-values file.
	KindValues FileKind = "tfvars"
	// KindGeneric is a generic .hcl file.
	KindGeneric FileKind = "hcl"
)

// Provider is one provider configuration block.
type Provider struct {
	Name   string        `json:"name"`
	Config hclconf.Value `json:"config"`
}

// Resource is one resource declaration. Its identity within a project is
// Address(), i.e. "type.name".
type Resource struct {
	Type   string        `json:"type"`
	Name   string        `json:"name"`
	Config hclconf.Value `json:"config"`
}

// Address returns the resource identity "type.name".
func (r Resource) Address() string { return r.Type + "." + r.Name }

// DataSource is one data source declaration; referenced as "data.type.name".
type DataSource struct {
	Type   string        `json:"type"`
	Name   string        `json:"name"`
	Config hclconf.Value `json:"config"`
}

// Variable is one variable declaration (or, in a tfvars file, a variable
// assignment captured by name only).
type Variable struct {
	Name   string        `json:"name"`
	Config hclconf.Value `json:"config"`
}

// Output is one output declaration.
type Output struct {
	Name   string        `json:"name"`
	Config hclconf.Value `json:"config"`
}

// Module is one module call.
type Module struct {
	Name   string        `json:"name"`
	Config hclconf.Value `json:"config"`
}

// FileModel is the structured result of parsing one source file. If
// ParseError is set, every entity slice is empty: a file either parses
// fully or contributes nothing but the error record.
type FileModel struct {
	FilePath    string          `json:"file_path"`
	FileKind    FileKind        `json:"file_type"`
	Providers   []Provider      `json:"providers"`
	Resources   []Resource      `json:"resources"`
	DataSources []DataSource    `json:"data_sources"`
	Variables   []Variable      `json:"variables"`
	Outputs     []Output        `json:"outputs"`
	Locals      []hclconf.Value `json:"locals"`
	Modules     []Module        `json:"modules"`
	Settings    []hclconf.Value `json:"terraform_blocks"`
	ParseError  string          `json:"error,omitempty"`
}
