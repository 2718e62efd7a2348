package bundler

import (
	"fmt"
	"io"
	"strings"
)

// DisplayAnalysis prints the graph analysis in a formatted way.
func DisplayAnalysis(w io.Writer, result *AnalysisResult) {
	_, _ = fmt.Fprintf(w, "\n=== Bundle Analysis: %s ===\n", result.Entry)
	_, _ = fmt.Fprintf(w, "Modules: %d\n", result.ModuleCount)
	_, _ = fmt.Fprintf(w, "Total code size: %s\n", formatBytesHuman(result.TotalBytes))

	if len(result.Modules) > 0 {
		_, _ = fmt.Fprintln(w, "\nBundle breakdown:")

		// Calculate max path length for alignment
		maxPathLen := 0
		for _, mod := range result.Modules {
			displayPath := truncatePath(mod.Path, 50)
			if len(displayPath) > maxPathLen {
				maxPathLen = len(displayPath)
			}
		}

		for _, mod := range result.Modules {
			displayPath := truncatePath(mod.Path, 50)
			marker := " "
			if mod.IsEntry {
				marker = "*"
			}
			padding := strings.Repeat(" ", maxPathLen-len(displayPath))
			_, _ = fmt.Fprintf(w, " %s %s%s  %8s  %5.1f%%  %d imports\n",
				marker,
				displayPath,
				padding,
				formatBytesHuman(mod.Bytes),
				mod.Percentage,
				mod.ImportCount,
			)
		}
	}

	_, _ = fmt.Fprintln(w)
}

// formatBytesHuman formats bytes in human-readable format.
func formatBytesHuman(bytes int) string {
	const (
		KB = 1024
		MB = 1024 * KB
	)
	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.2f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.2f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// truncatePath shortens a path if it's too long.
func truncatePath(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}
	return "..." + path[len(path)-maxLen+3:]
}
