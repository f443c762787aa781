package analyzer

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/terraform-agent/analyzer/terraform"
)

// ProjectSummary is the deduplicated inventory of a project.
//
// The Total* counters (other than TotalFiles) are the cardinalities of the
// deduplicated sets, not raw occurrence counts: two resources of the same
// type in different files count once toward TotalResources. This mirrors
// the established contract for these fields and is easy to misread as a
// length-of-slice count; raw occurrence counts are not exposed.
type ProjectSummary struct {
	TotalFiles     int `json:"total_files"`
	TotalResources int `json:"total_resources"`
	TotalProviders int `json:"total_providers"`
	TotalVariables int `json:"total_variables"`
	TotalOutputs   int `json:"total_outputs"`

	ProviderNames   mapset.Set[string] `json:"providers"`
	ResourceTypes   mapset.Set[string] `json:"resources"`
	DataSourceTypes mapset.Set[string] `json:"data_sources"`
	VariableNames   mapset.Set[string] `json:"variables"`
	OutputNames     mapset.Set[string] `json:"outputs"`
	ModuleNames     mapset.Set[string] `json:"modules"`
}

func newSummary() ProjectSummary {
	return ProjectSummary{
		ProviderNames:   mapset.NewSet[string](),
		ResourceTypes:   mapset.NewSet[string](),
		DataSourceTypes: mapset.NewSet[string](),
		VariableNames:   mapset.NewSet[string](),
		OutputNames:     mapset.NewSet[string](),
		ModuleNames:     mapset.NewSet[string](),
	}
}

// add folds one file model into the summary sets. A file that failed to
// parse has empty entity slices and therefore contributes nothing here.
func (s *ProjectSummary) add(m *terraform.FileModel) {
	s.TotalFiles++
	for _, p := range m.Providers {
		s.ProviderNames.Add(p.Name)
	}
	for _, r := range m.Resources {
		s.ResourceTypes.Add(r.Type)
	}
	for _, d := range m.DataSources {
		s.DataSourceTypes.Add(d.Type)
	}
	for _, v := range m.Variables {
		s.VariableNames.Add(v.Name)
	}
	for _, o := range m.Outputs {
		s.OutputNames.Add(o.Name)
	}
	for _, mod := range m.Modules {
		s.ModuleNames.Add(mod.Name)
	}
}

// finalize recomputes the cardinality counters from the sets.
func (s *ProjectSummary) finalize() {
	s.TotalResources = s.ResourceTypes.Cardinality()
	s.TotalProviders = s.ProviderNames.Cardinality()
	s.TotalVariables = s.VariableNames.Cardinality()
	s.TotalOutputs = s.OutputNames.Cardinality()
}
