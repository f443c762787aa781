package analyzer

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/terraform-agent/analyzer/terraform"
)

// DependencyGraph is a directed graph of resource identities ("type.name").
// Every key and every member of every edge set is the identity of a
// resource declared somewhere in the same analysis; cycles are allowed.
type DependencyGraph struct {
	Edges map[string]mapset.Set[string] `json:"resource_dependencies"`
}

// DependsOn returns the outgoing edge set for a resource identity, or nil
// if the identity is not part of the graph.
func (g DependencyGraph) DependsOn(identity string) mapset.Set[string] {
	return g.Edges[identity]
}

// buildGraph infers resource references across all file models.
//
// This is a textual co-occurrence heuristic, not a reference resolver: each
// resource config is serialized to canonical text and scanned for the
// identity of every resource in the project, as "type.name.",
// "data.type.name." or "module.type.name.". It does not parse expression
// syntax, cannot tell a real attribute reference from the same substring in
// a comment or string literal, and can report false positives. That is the
// intended contract — a best-effort dependency hint, not a correctness
// authority. Self-edges are not filtered.
func buildGraph(files []*terraform.FileModel) DependencyGraph {
	var identities []string
	for _, m := range files {
		for _, r := range m.Resources {
			identities = append(identities, r.Address())
		}
	}

	g := DependencyGraph{Edges: make(map[string]mapset.Set[string], len(identities))}
	for _, m := range files {
		for _, r := range m.Resources {
			deps := mapset.NewSet[string]()
			text := r.Config.String()
			for _, other := range identities {
				if referencesIdentity(text, other) {
					deps.Add(other)
				}
			}
			g.Edges[r.Address()] = deps
		}
	}
	return g
}

// referencesIdentity reports whether the serialized config text contains an
// attribute reference to the given identity.
func referencesIdentity(configText, identity string) bool {
	return strings.Contains(configText, identity+".") ||
		strings.Contains(configText, "data."+identity+".") ||
		strings.Contains(configText, "module."+identity+".")
}
