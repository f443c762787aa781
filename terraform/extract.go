package terraform

import "github.com/terraform-agent/analyzer/hclconf"

// extract walks decoded blocks and appends typed entities to the model.
// Duplicate declarations are preserved as-is; deduplication is a summary
// concern, not a parsing one. Unrecognized block types are ignored so that
// newer language versions do not abort analysis.
func extract(m *FileModel, blocks []hclconf.Block) {
	for _, b := range blocks {
		switch b.Type {
		case "terraform":
			m.Settings = append(m.Settings, b.Body)
		case "provider":
			m.Providers = append(m.Providers, Provider{Name: label(b, 0), Config: b.Body})
		case "resource":
			if len(b.Labels) >= 2 {
				m.Resources = append(m.Resources, Resource{
					Type: b.Labels[0], Name: b.Labels[1], Config: b.Body,
				})
			}
		case "data":
			if len(b.Labels) >= 2 {
				m.DataSources = append(m.DataSources, DataSource{
					Type: b.Labels[0], Name: b.Labels[1], Config: b.Body,
				})
			}
		case "variable":
			m.Variables = append(m.Variables, Variable{Name: label(b, 0), Config: b.Body})
		case "output":
			m.Outputs = append(m.Outputs, Output{Name: label(b, 0), Config: b.Body})
		case "locals":
			m.Locals = append(m.Locals, b.Body)
		case "module":
			m.Modules = append(m.Modules, Module{Name: label(b, 0), Config: b.Body})
		}
	}
}

func label(b hclconf.Block, i int) string {
	if i < len(b.Labels) {
		return b.Labels[i]
	}
	return ""
}
