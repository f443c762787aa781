package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/terraform-agent/analyzer/analyzer"
	"github.com/terraform-agent/analyzer/result"
	"github.com/terraform-agent/analyzer/terraform"
)

// LambdaEvent is the invocation payload (e.g. from API Gateway). Files maps
// relative file names to their contents (base64 when IsBase64 is set).
type LambdaEvent struct {
	Files    map[string]string `json:"files"`
	IsBase64 bool              `json:"isBase64,omitempty"`
	Validate bool              `json:"validate,omitempty"`
}

// LambdaResponse is returned to the client (API Gateway).
type LambdaResponse struct {
	StatusCode  int                        `json:"statusCode"`
	Success     bool                       `json:"success"`
	Error       string                     `json:"error,omitempty"`
	Analysis    *analyzer.ProjectAnalysis  `json:"analysis,omitempty"`
	Validations []*result.ValidationResult `json:"validations,omitempty"`
}

// APIGatewayResponse is the shape expected by API Gateway proxy integration (body = JSON string).
type APIGatewayResponse struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers,omitempty"`
	Body       string            `json:"body"`
}

func handler(ctx context.Context, event LambdaEvent) (APIGatewayResponse, error) {
	if len(event.Files) == 0 {
		return fail(400, "no files provided"), nil
	}

	dir, err := os.MkdirTemp("", "tf-analysis-")
	if err != nil {
		return fail(500, "create workspace: "+err.Error()), nil
	}
	defer os.RemoveAll(dir)

	for name, content := range event.Files {
		if !safeName(name) {
			return fail(400, "invalid file name: "+name), nil
		}
		data := []byte(content)
		if event.IsBase64 {
			dec, err := base64.StdEncoding.DecodeString(content)
			if err != nil {
				return fail(400, "invalid base64 content for "+name+": "+err.Error()), nil
			}
			data = dec
		}
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fail(500, "write "+name+": "+err.Error()), nil
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fail(500, "write "+name+": "+err.Error()), nil
		}
	}

	a := analyzer.New(analyzer.DefaultOptions())
	analysis, err := a.AnalyzeDirectory(dir)
	if err != nil {
		return fail(500, err.Error()), nil
	}
	// The temp workspace path is an implementation detail; report paths
	// relative to the logical root instead.
	analysis.RootDirectory = "."
	for _, m := range analysis.Files {
		m.FilePath = relName(dir, m.FilePath)
	}

	out := LambdaResponse{StatusCode: 200, Success: true, Analysis: analysis}

	if event.Validate {
		for name := range event.Files {
			if _, err := terraform.KindForPath(name); errors.Is(err, terraform.ErrUnsupportedFileKind) {
				continue
			}
			res, err := a.ValidateConfiguration(filepath.Join(dir, name))
			if err != nil {
				continue
			}
			res.FilePath = name
			out.Validations = append(out.Validations, res)
		}
	}

	return wrap(out), nil
}

func relName(dir, path string) string {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return path
	}
	return rel
}

// safeName rejects absolute paths and traversal outside the workspace.
func safeName(name string) bool {
	if name == "" || filepath.IsAbs(name) {
		return false
	}
	clean := filepath.Clean(name)
	return clean != ".." && !strings.HasPrefix(clean, ".."+string(filepath.Separator))
}

func fail(code int, msg string) APIGatewayResponse {
	return wrap(LambdaResponse{StatusCode: code, Success: false, Error: msg})
}

func wrap(out LambdaResponse) APIGatewayResponse {
	bodyBytes, _ := json.Marshal(out)
	return APIGatewayResponse{
		StatusCode: out.StatusCode,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(bodyBytes),
	}
}

func main() {
	lambda.Start(handler)
}
