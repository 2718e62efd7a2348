package bundler

import (
	"encoding/json"
	"fmt"
	"strings"
)

// loaderHead is the bootstrap installed at the top of every bundle. It
// receives the module table and defines require/module/exports semantics:
// exports are cached per identity, and the cache entry is registered before
// the factory runs so cyclic requires observe the partial exports of the
// in-progress module. localRequire translates the raw specifiers found in a
// module's code through that module's mapping.
const loaderHead = `(function(modules) {
  var installed = {};

  function require(id) {
    if (Object.prototype.hasOwnProperty.call(installed, id)) {
      return installed[id].exports;
    }
    var entry = modules[id];
    if (!entry) {
      throw new Error("fluxpack: module not found: " + id);
    }
    var module = { exports: {} };
    installed[id] = module;
    function localRequire(specifier) {
      return require(entry[1][specifier]);
    }
    entry[0](localRequire, module, module.exports);
    return module.exports;
  }

  require(%s);
})({
`

// Emit serializes the graph into the final bundle text: one module-table
// entry per record in discovery order, wrapped in the self-invoking
// bootstrap. Emit is a pure function of its input; the same graph always
// produces byte-identical output.
func Emit(g *Graph) (string, error) {
	if _, ok := g.Module(g.Entry); !ok {
		return "", fmt.Errorf("emit: entry module %s is not part of the graph", g.Entry)
	}

	entryID, err := json.Marshal(g.Entry)
	if err != nil {
		return "", fmt.Errorf("emit: encoding entry identity: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, loaderHead, entryID)

	for _, m := range g.Modules() {
		id, err := json.Marshal(m.ID)
		if err != nil {
			return "", fmt.Errorf("emit: encoding identity %s: %w", m.ID, err)
		}
		// json.Marshal sorts map keys, keeping the mapping literal stable.
		mapping, err := json.Marshal(m.Mapping)
		if err != nil {
			return "", fmt.Errorf("emit: encoding mapping for %s: %w", m.ID, err)
		}

		b.Write(id)
		b.WriteString(": [function(require, module, exports) {\n")
		b.WriteString(m.Code)
		if !strings.HasSuffix(m.Code, "\n") {
			b.WriteString("\n")
		}
		b.WriteString("}, ")
		b.Write(mapping)
		b.WriteString("],\n")
	}

	b.WriteString("});\n")
	return b.String(), nil
}
