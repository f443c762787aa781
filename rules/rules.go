package rules

import (
	"strings"

	"github.com/terraform-agent/analyzer/hclconf"
	"github.com/terraform-agent/analyzer/result"
	"github.com/terraform-agent/analyzer/terraform"
)

// cloudPrefixes identifies resource types that are expected to carry tags.
var cloudPrefixes = []string{"aws_", "azurerm_", "google_"}

func init() {
	Default.Register(checkParseError)
	Default.Register(checkResourceTags)
	Default.Register(checkEmptyDependsOn)
	Default.RegisterBestPractice(suggestVersionConstraint)
	Default.RegisterBestPractice(suggestVariableValidation)
}

// checkParseError turns a decoder failure into a validation error.
func checkParseError(m *terraform.FileModel, r *result.ValidationResult) {
	if m.ParseError != "" {
		r.AddError(m.ParseError)
	}
}

// checkResourceTags warns on cloud-provider resources without a tags attribute.
func checkResourceTags(m *terraform.FileModel, r *result.ValidationResult) {
	for _, res := range m.Resources {
		if !hasCloudPrefix(res.Type) {
			continue
		}
		if !res.Config.HasAttr("tags") {
			r.AddWarning("Resource " + res.Name + " should have tags")
		}
	}
}

// checkEmptyDependsOn warns when depends_on is declared but empty.
func checkEmptyDependsOn(m *terraform.FileModel, r *result.ValidationResult) {
	for _, res := range m.Resources {
		dep, ok := res.Config.Attr("depends_on")
		if ok && dep.Kind() == hclconf.KindList && dep.Len() == 0 {
			r.AddWarning("Resource " + res.Name + " has empty depends_on")
		}
	}
}

// suggestVersionConstraint flags terraform settings blocks that pin no
// required_version.
func suggestVersionConstraint(m *terraform.FileModel, r *result.ValidationResult) {
	for _, settings := range m.Settings {
		if !settings.HasAttr("required_version") {
			r.AddSuggestion("Consider adding required_version constraint")
		}
	}
}

// suggestVariableValidation flags variables declared without a validation
// block. Values files carry name-only variables and are skipped.
func suggestVariableValidation(m *terraform.FileModel, r *result.ValidationResult) {
	if m.FileKind == terraform.KindValues {
		return
	}
	for _, v := range m.Variables {
		if !v.Config.HasAttr("validation") {
			r.AddSuggestion("Consider adding validation for variable " + v.Name)
		}
	}
}

func hasCloudPrefix(resourceType string) bool {
	for _, p := range cloudPrefixes {
		if strings.HasPrefix(resourceType, p) {
			return true
		}
	}
	return false
}
