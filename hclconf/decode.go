// Package hclconf decodes HCL source text into a generic block structure.
// It is the analyzer's only view of the configuration grammar: blocks keep
// their type and labels, bodies become tagged-variant Values, and attribute
// expressions that cannot be evaluated statically (references to other
// objects, interpolations) are preserved as their raw source text.
package hclconf

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
)

// Block is one top-level configuration block.
type Block struct {
	Type   string   `json:"type"`
	Labels []string `json:"labels,omitempty"`
	Body   Value    `json:"body"`
}

// File is the decoded form of one source file. Attributes holds top-level
// assignments (the whole content of a tfvars file); Blocks holds the
// top-level blocks of a regular configuration file.
type File struct {
	Attributes map[string]Value `json:"attributes,omitempty"`
	Blocks     []Block          `json:"blocks,omitempty"`
}

// DecodeError reports malformed source text, wrapping the HCL diagnostics.
type DecodeError struct {
	Filename string
	Diags    hcl.Diagnostics
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %s", e.Filename, e.Diags.Error())
}

func (e *DecodeError) Unwrap() error { return e.Diags }

// Decode parses HCL source text into a File. It returns a *DecodeError if
// the syntax is malformed; it never returns a partially decoded File.
func Decode(filename string, src []byte) (*File, error) {
	f, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, &DecodeError{Filename: filename, Diags: diags}
	}

	body, ok := f.Body.(*hclsyntax.Body)
	if !ok {
		return nil, &DecodeError{Filename: filename, Diags: hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Unsupported body type",
			Detail:   "The parsed file did not produce a native syntax body.",
		}}}
	}

	out := &File{}
	if len(body.Attributes) > 0 {
		out.Attributes = make(map[string]Value, len(body.Attributes))
		for name, attr := range body.Attributes {
			out.Attributes[name] = exprValue(attr.Expr, src)
		}
	}
	for _, b := range body.Blocks {
		out.Blocks = append(out.Blocks, Block{
			Type:   b.Type,
			Labels: b.Labels,
			Body:   bodyValue(b.Body, src),
		})
	}
	return out, nil
}

// bodyValue flattens a block body into a map value: attributes first, then
// nested blocks keyed by their type (labels become nested maps, repeated
// block types fold into a list).
func bodyValue(body *hclsyntax.Body, src []byte) Value {
	m := make(map[string]Value)
	for name, attr := range body.Attributes {
		m[name] = exprValue(attr.Expr, src)
	}
	for _, b := range body.Blocks {
		v := bodyValue(b.Body, src)
		for i := len(b.Labels) - 1; i >= 0; i-- {
			v = MapVal(map[string]Value{b.Labels[i]: v})
		}
		if prev, exists := m[b.Type]; exists {
			if prev.Kind() == KindList {
				m[b.Type] = ListVal(append(prev.AsList(), v))
			} else {
				m[b.Type] = ListVal([]Value{prev, v})
			}
		} else {
			m[b.Type] = v
		}
	}
	return MapVal(m)
}

// exprValue evaluates an attribute expression with no variables in scope.
// Literals decode to their natural kinds; anything that needs an evaluation
// context is captured verbatim, e.g. `aws_vpc.main.id` stays the string
// "aws_vpc.main.id".
func exprValue(expr hclsyntax.Expression, src []byte) Value {
	v, diags := expr.Value(nil)
	if diags.HasErrors() {
		return StringVal(rawText(expr, src))
	}
	return fromCty(v)
}

func rawText(expr hclsyntax.Expression, src []byte) string {
	r := expr.Range()
	if r.Start.Byte < 0 || r.End.Byte > len(src) || r.Start.Byte > r.End.Byte {
		return ""
	}
	return string(src[r.Start.Byte:r.End.Byte])
}
