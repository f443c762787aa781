package analyzer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terraform-agent/analyzer/terraform"
)

func writeProject(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func TestAnalyzeDirectoryScenario(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"main.tf": `
resource "aws_vpc" "main" {
  cidr_block = "10.0.0.0/16"
}

resource "aws_subnet" "public" {
  vpc_id = aws_vpc.main.id
}
`,
	})

	a := New(DefaultOptions())
	analysis, err := a.AnalyzeDirectory(dir)
	require.NoError(t, err)

	assert.Equal(t, dir, analysis.RootDirectory)
	assert.Equal(t, 1, analysis.Summary.TotalFiles)
	assert.Equal(t, 2, analysis.Summary.TotalResources)
	assert.True(t, analysis.Summary.ResourceTypes.Contains("aws_vpc"))
	assert.True(t, analysis.Summary.ResourceTypes.Contains("aws_subnet"))
	assert.Empty(t, analysis.Errors)

	deps := analysis.Dependencies.DependsOn("aws_subnet.public")
	require.NotNil(t, deps)
	assert.True(t, deps.Contains("aws_vpc.main"))
	assert.Equal(t, 1, deps.Cardinality())

	vpcDeps := analysis.Dependencies.DependsOn("aws_vpc.main")
	require.NotNil(t, vpcDeps)
	assert.Equal(t, 0, vpcDeps.Cardinality())
}

func TestAnalyzeDirectoryDeduplicatesSummary(t *testing.T) {
	// Resource types {A, A, B} across files: the type set has cardinality 2
	// even though three resource entities exist.
	dir := writeProject(t, map[string]string{
		"one.tf": `
resource "aws_instance" "web" {
  ami = "ami-1"
}
`,
		"two.tf": `
resource "aws_instance" "worker" {
  ami = "ami-2"
}

resource "aws_s3_bucket" "assets" {
  bucket = "assets"
}
`,
	})

	analysis, err := New(DefaultOptions()).AnalyzeDirectory(dir)
	require.NoError(t, err)

	assert.Equal(t, 2, analysis.Summary.TotalResources)

	entityCount := 0
	for _, m := range analysis.Files {
		entityCount += len(m.Resources)
	}
	assert.Equal(t, 3, entityCount)
}

func TestAnalyzeDirectoryFailSoft(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"good1.tf": `
resource "aws_vpc" "main" {
  cidr_block = "10.0.0.0/16"
}
`,
		"good2.tf": `
variable "region" {
  description = "AWS region"
}
`,
		"broken.tf": `resource "aws_vpc" {{{`,
	})

	analysis, err := New(DefaultOptions()).AnalyzeDirectory(dir)
	require.NoError(t, err)

	assert.Equal(t, 3, analysis.Summary.TotalFiles)
	require.Len(t, analysis.Errors, 1)
	assert.Contains(t, analysis.Errors[0].File, "broken.tf")
	assert.NotEmpty(t, analysis.Errors[0].Error)

	// Only the two well-formed files contribute to the inventory.
	assert.Equal(t, 1, analysis.Summary.TotalResources)
	assert.True(t, analysis.Summary.VariableNames.Contains("region"))
}

func TestAnalyzeDirectoryIncludesValueFiles(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"variables.tf": `
variable "region" {
  description = "AWS region"
}
`,
		"terraform.tfvars": `
region = "us-east-1"
env    = "dev"
`,
		"notes.md": "ignored entirely",
	})

	analysis, err := New(DefaultOptions()).AnalyzeDirectory(dir)
	require.NoError(t, err)

	assert.Equal(t, 2, analysis.Summary.TotalFiles)
	assert.True(t, analysis.Summary.VariableNames.Contains("region"))
	assert.True(t, analysis.Summary.VariableNames.Contains("env"))
	assert.Equal(t, 2, analysis.Summary.TotalVariables)
}

func TestAnalyzeDirectoryRecursesSubdirectories(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"main.tf": `
module "network" {
  source = "./network"
}
`,
		"network/vpc.tf": `
resource "aws_vpc" "main" {
  cidr_block = "10.0.0.0/16"
}
`,
	})

	analysis, err := New(DefaultOptions()).AnalyzeDirectory(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, analysis.Summary.TotalFiles)
	assert.True(t, analysis.Summary.ModuleNames.Contains("network"))
	assert.True(t, analysis.Summary.ResourceTypes.Contains("aws_vpc"))
}

func TestAnalyzeDirectoryNotFound(t *testing.T) {
	_, err := New(DefaultOptions()).AnalyzeDirectory(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, terraform.ErrNotFound))
}

func TestValidateConfigurationPropagatesContractErrors(t *testing.T) {
	a := New(DefaultOptions())

	_, err := a.ValidateConfiguration(filepath.Join(t.TempDir(), "missing.tf"))
	assert.True(t, errors.Is(err, terraform.ErrNotFound))

	dir := writeProject(t, map[string]string{"readme.txt": "hi"})
	_, err = a.ValidateConfiguration(filepath.Join(dir, "readme.txt"))
	assert.True(t, errors.Is(err, terraform.ErrUnsupportedFileKind))
}

func TestValidateConfigurationMissingTags(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"main.tf": `
resource "aws_instance" "web" {
  ami = "ami-1"
}
`,
	})

	res, err := New(DefaultOptions()).ValidateConfiguration(filepath.Join(dir, "main.tf"))
	require.NoError(t, err)

	assert.True(t, res.Valid)
	assert.Empty(t, res.Errors)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "tags")
}
