// Package bundler builds the static dependency graph of a JavaScript entry
// module and serializes it into a single self-contained CommonJS artifact.
//
// Parsing and syntax transformation are delegated to esbuild: each source file
// is run through one esbuild build with every import marked external, which
// yields the file's code in the require/module/exports idiom together with its
// raw import specifiers in syntactic order. The graph builder resolves those
// specifiers to canonical absolute paths and the emitter wraps the finished
// graph in a bootstrap loader that requires the entry module.
package bundler

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/evanw/esbuild/pkg/api"
)

// Asset is the extracted form of one source file: its raw import specifiers
// in syntactic order (duplicates preserved) and its code transformed to the
// require/module/exports idiom with specifiers left verbatim.
type Asset struct {
	Path       string
	Specifiers []string
	Code       string
}

// Extract reads and transforms a single source file. It fails with a wrapped
// I/O error if the file cannot be read and with *ParseError if esbuild
// rejects the source. No partial Asset is returned on failure.
func Extract(path string) (*Asset, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("reading module %s: %w", path, err)
	}

	result := api.Build(api.BuildOptions{
		EntryPoints:   []string{path},
		Bundle:        true,
		Write:         false,
		Metafile:      true,
		Format:        api.FormatCommonJS,
		Platform:      api.PlatformNeutral,
		Target:        api.ESNext,
		Sourcemap:     api.SourceMapNone,
		LogLevel:      api.LogLevelSilent,
		AbsWorkingDir: filepath.Dir(path),
		Plugins:       []api.Plugin{externalizeImports()},
	})

	if len(result.Errors) > 0 {
		diags := make([]string, 0, len(result.Errors))
		for _, msg := range result.Errors {
			if msg.Location != nil {
				diags = append(diags, fmt.Sprintf("%s:%d:%d: %s",
					msg.Location.File, msg.Location.Line, msg.Location.Column, msg.Text))
				continue
			}
			diags = append(diags, msg.Text)
		}
		return nil, &ParseError{Path: path, Diagnostics: diags}
	}
	if len(result.OutputFiles) == 0 {
		return nil, &ParseError{Path: path, Diagnostics: []string{"esbuild produced no output"}}
	}

	specifiers, err := specifiersFromMetafile(result.Metafile)
	if err != nil {
		return nil, &ParseError{Path: path, Diagnostics: []string{err.Error()}}
	}

	return &Asset{
		Path:       path,
		Specifiers: specifiers,
		Code:       string(result.OutputFiles[0].Contents),
	}, nil
}

// externalizeImports marks every resolution except the entry point itself as
// external, so esbuild transforms exactly one file per build and leaves its
// import specifiers untouched in the output.
func externalizeImports() api.Plugin {
	return api.Plugin{
		Name: "externalize-imports",
		Setup: func(build api.PluginBuild) {
			build.OnResolve(api.OnResolveOptions{Filter: `.*`},
				func(args api.OnResolveArgs) (api.OnResolveResult, error) {
					if args.Kind == api.ResolveEntryPoint {
						return api.OnResolveResult{}, nil
					}
					return api.OnResolveResult{Path: args.Path, External: true}, nil
				})
		},
	}
}

// specifiersFromMetafile pulls the raw import specifiers, in source order,
// from the single input record of the metafile. Dynamic import() records are
// skipped: only statically declared specifiers participate in the graph.
func specifiersFromMetafile(metafile string) ([]string, error) {
	var meta Metafile
	if err := json.Unmarshal([]byte(metafile), &meta); err != nil {
		return nil, fmt.Errorf("parsing esbuild metafile: %w", err)
	}

	var specifiers []string
	for _, input := range meta.Inputs {
		for _, imp := range input.Imports {
			switch imp.Kind {
			case "import-statement", "require-call":
			default:
				continue
			}
			spec := imp.Original
			if spec == "" {
				spec = imp.Path
			}
			specifiers = append(specifiers, spec)
		}
	}
	return specifiers, nil
}
