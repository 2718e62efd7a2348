package bundler

import (
	"path/filepath"
	"sort"
	"strings"
)

// AnalysisResult summarizes a dependency graph before emission: per-module
// code sizes, import counts, and each module's share of the total bundle.
type AnalysisResult struct {
	Entry       string           `json:"entry" yaml:"entry"`
	ModuleCount int              `json:"module_count" yaml:"module_count"`
	TotalBytes  int              `json:"total_bytes" yaml:"total_bytes"`
	Modules     []ModuleAnalysis `json:"modules" yaml:"modules"`
}

// ModuleAnalysis contains the analysis for a single module.
type ModuleAnalysis struct {
	Path        string  `json:"path" yaml:"path"`
	Bytes       int     `json:"bytes" yaml:"bytes"`
	Percentage  float64 `json:"percentage" yaml:"percentage"`
	ImportCount int     `json:"import_count" yaml:"import_count"`
	IsEntry     bool    `json:"is_entry" yaml:"is_entry"`
}

// Analyze computes the size breakdown of a graph. Paths are shown relative to
// the entry module's directory where possible; modules are sorted largest
// first.
func Analyze(g *Graph) *AnalysisResult {
	result := &AnalysisResult{
		Entry:       g.Entry,
		ModuleCount: g.Len(),
	}

	entryDir := filepath.Dir(g.Entry)
	for _, m := range g.Modules() {
		result.TotalBytes += len(m.Code)
	}

	for _, m := range g.Modules() {
		displayPath := m.ID
		if rel, err := filepath.Rel(entryDir, m.ID); err == nil && !strings.HasPrefix(rel, "..") {
			displayPath = rel
		}

		percentage := 0.0
		if result.TotalBytes > 0 {
			percentage = float64(len(m.Code)) / float64(result.TotalBytes) * 100
		}

		result.Modules = append(result.Modules, ModuleAnalysis{
			Path:        displayPath,
			Bytes:       len(m.Code),
			Percentage:  percentage,
			ImportCount: len(m.Specifiers),
			IsEntry:     m.ID == g.Entry,
		})
	}

	sort.SliceStable(result.Modules, func(i, j int) bool {
		return result.Modules[i].Bytes > result.Modules[j].Bytes
	})

	return result
}
