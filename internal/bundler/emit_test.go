package bundler

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildFixtureGraph(t *testing.T) *Graph {
	t.Helper()
	dir := t.TempDir()
	entry := writeFixture(t, dir, "main.js", `
import { x } from "./message.js";
console.log(x);
`)
	writeFixture(t, dir, "message.js", `export const x = 1;`)

	g, err := BuildGraph(entry)
	require.NoError(t, err)
	return g
}

func TestEmit(t *testing.T) {
	g := buildFixtureGraph(t)

	text, err := Emit(g)
	require.NoError(t, err)

	// Self-invoking bootstrap wrapping the module table
	assert.True(t, strings.HasPrefix(text, "(function(modules) {"))
	assert.True(t, strings.HasSuffix(text, "});\n"))

	// The bootstrap requires the entry identity exactly once
	entryID, err := json.Marshal(g.Entry)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(text, "require("+string(entryID)+");"))

	// One table entry per module, each keyed by its identity
	for _, m := range g.Modules() {
		id, err := json.Marshal(m.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, strings.Count(text, string(id)+": [function(require, module, exports) {"),
			"module %s should appear exactly once in the table", m.ID)
	}

	// The entry's mapping is serialized next to its factory
	entry, ok := g.Module(g.Entry)
	require.True(t, ok)
	mapping, err := json.Marshal(entry.Mapping)
	require.NoError(t, err)
	assert.Contains(t, text, string(mapping))
}

func TestEmit_Deterministic(t *testing.T) {
	dir := t.TempDir()
	entry := writeFixture(t, dir, "main.js", `
import { a } from "./a.js";
import { b } from "./b.js";
console.log(a + b);
`)
	writeFixture(t, dir, "a.js", `import { c } from "./c.js"; export const a = c;`)
	writeFixture(t, dir, "b.js", `import { c } from "./c.js"; export const b = c;`)
	writeFixture(t, dir, "c.js", `export const c = 1;`)

	g1, err := BuildGraph(entry)
	require.NoError(t, err)
	g2, err := BuildGraph(entry)
	require.NoError(t, err)

	text1, err := Emit(g1)
	require.NoError(t, err)
	text2, err := Emit(g2)
	require.NoError(t, err)

	assert.Equal(t, text1, text2)

	// Re-emitting the same graph is also byte-identical
	again, err := Emit(g1)
	require.NoError(t, err)
	assert.Equal(t, text1, again)
}

func TestEmit_LoaderSemantics(t *testing.T) {
	g := buildFixtureGraph(t)

	text, err := Emit(g)
	require.NoError(t, err)

	// Loader pieces the emitted modules rely on
	assert.Contains(t, text, "function require(id)")
	assert.Contains(t, text, "function localRequire(specifier)")
	assert.Contains(t, text, "module not found")
	// Exports cache is registered before the factory runs
	assert.Contains(t, text, "installed[id] = module;")
}

func TestEmit_EntryMissingFromGraph(t *testing.T) {
	g := &Graph{
		Entry:   "/src/main.js",
		modules: map[string]*Module{},
	}

	text, err := Emit(g)
	require.Error(t, err)
	assert.Empty(t, text)
}
