package bundler

import (
	"fmt"
	"os"
	"path/filepath"
)

// Module is the record for one discovered source file. A Module is fully
// populated before it is inserted into the graph and never mutated afterwards.
type Module struct {
	// ID is the canonical identity: the cleaned absolute path of the file.
	ID string
	// Specifiers holds the raw import strings in syntactic order, duplicates
	// preserved.
	Specifiers []string
	// Code is the transformed body in the require/module/exports idiom.
	Code string
	// Mapping resolves each distinct specifier to the canonical identity of
	// its target module.
	Mapping map[string]string
}

// Graph is the deduplicated set of modules reachable from the entry, keyed by
// canonical identity. The order slice next to the lookup map makes iteration
// follow discovery order, which is stable across runs for identical input.
type Graph struct {
	Entry   string
	order   []string
	modules map[string]*Module
}

// Len returns the number of modules in the graph.
func (g *Graph) Len() int {
	return len(g.order)
}

// Module returns the record for the given identity.
func (g *Graph) Module(id string) (*Module, bool) {
	m, ok := g.modules[id]
	return m, ok
}

// Modules returns all records in discovery order.
func (g *Graph) Modules() []*Module {
	out := make([]*Module, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.modules[id])
	}
	return out
}

func (g *Graph) insert(m *Module) {
	if _, ok := g.modules[m.ID]; ok {
		return
	}
	g.modules[m.ID] = m
	g.order = append(g.order, m.ID)
}

// CanonicalID normalizes a file path into the module identity used as graph
// key: two specifiers resolving to the same file always produce the same
// identity.
func CanonicalID(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving entry path %s: %w", path, err)
	}
	return filepath.Clean(abs), nil
}

// resolveSpecifier resolves a raw import specifier against the importing
// module's directory, normalizing "." and ".." segments.
func resolveSpecifier(baseDir, specifier string) string {
	if filepath.IsAbs(specifier) {
		return filepath.Clean(specifier)
	}
	return filepath.Clean(filepath.Join(baseDir, specifier))
}

// BuildGraph discovers every module reachable from entryPath and returns the
// closed, deduplicated graph. It uses an explicit worklist plus a seen set
// instead of recursion, so each identity is extracted at most once and cycles
// (including self-imports) terminate naturally. Any extraction or resolution
// failure aborts the build; no partial graph is returned.
func BuildGraph(entryPath string) (*Graph, error) {
	entryID, err := CanonicalID(entryPath)
	if err != nil {
		return nil, err
	}

	g := &Graph{
		Entry:   entryID,
		modules: make(map[string]*Module),
	}

	worklist := []string{entryID}
	seen := map[string]bool{entryID: true}

	for len(worklist) > 0 {
		id := worklist[0]
		worklist = worklist[1:]

		asset, err := Extract(id)
		if err != nil {
			return nil, err
		}

		baseDir := filepath.Dir(id)
		mapping := make(map[string]string, len(asset.Specifiers))
		for _, spec := range asset.Specifiers {
			// Repeated specifiers map once; the occurrence stays in Specifiers.
			if _, ok := mapping[spec]; ok {
				continue
			}
			depID := resolveSpecifier(baseDir, spec)
			if _, err := os.Stat(depID); err != nil {
				return nil, &ResolutionError{Importer: id, Specifier: spec, Err: err}
			}
			mapping[spec] = depID
			if !seen[depID] {
				seen[depID] = true
				worklist = append(worklist, depID)
			}
		}

		g.insert(&Module{
			ID:         id,
			Specifiers: asset.Specifiers,
			Code:       asset.Code,
			Mapping:    mapping,
		})
	}

	return g, nil
}
