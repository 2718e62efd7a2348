package bundler

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze(t *testing.T) {
	dir := t.TempDir()
	entry := writeFixture(t, dir, "main.js", `
import { a } from "./a.js";
console.log(a);
`)
	writeFixture(t, dir, "a.js", `export const a = 1;`)

	g, err := BuildGraph(entry)
	require.NoError(t, err)

	result := Analyze(g)
	assert.Equal(t, g.Entry, result.Entry)
	assert.Equal(t, 2, result.ModuleCount)
	require.Len(t, result.Modules, 2)

	sum := 0
	entrySeen := false
	for _, mod := range result.Modules {
		sum += mod.Bytes
		if mod.IsEntry {
			entrySeen = true
		}
		assert.GreaterOrEqual(t, mod.Percentage, 0.0)
		assert.LessOrEqual(t, mod.Percentage, 100.0)
	}
	assert.Equal(t, result.TotalBytes, sum)
	assert.True(t, entrySeen)

	// Sorted largest first
	assert.GreaterOrEqual(t, result.Modules[0].Bytes, result.Modules[1].Bytes)

	// Paths are shown relative to the entry directory
	for _, mod := range result.Modules {
		assert.NotContains(t, mod.Path, dir)
	}
}

func TestDisplayAnalysis(t *testing.T) {
	dir := t.TempDir()
	entry := writeFixture(t, dir, "main.js", `
import { a } from "./a.js";
console.log(a);
`)
	writeFixture(t, dir, "a.js", `export const a = 1;`)

	g, err := BuildGraph(entry)
	require.NoError(t, err)

	var buf bytes.Buffer
	DisplayAnalysis(&buf, Analyze(g))

	out := buf.String()
	assert.Contains(t, out, "Bundle Analysis")
	assert.Contains(t, out, "Modules: 2")
	assert.Contains(t, out, "a.js")
}

func TestFormatBytesHuman(t *testing.T) {
	tests := []struct {
		name     string
		bytes    int
		expected string
	}{
		{name: "bytes", bytes: 512, expected: "512 B"},
		{name: "kilobytes", bytes: 2048, expected: "2.00 KB"},
		{name: "megabytes", bytes: 3 * 1024 * 1024, expected: "3.00 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatBytesHuman(tt.bytes))
		})
	}
}

func TestTruncatePath(t *testing.T) {
	assert.Equal(t, "short.js", truncatePath("short.js", 50))

	long := "/very/long/path/that/keeps/going/and/going/until/it/overflows/file.js"
	got := truncatePath(long, 20)
	assert.Len(t, got, 20)
	assert.True(t, got[:3] == "...")
}
