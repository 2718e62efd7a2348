package bundler

import (
	"fmt"
	"strings"
)

// ParseError indicates that esbuild rejected a source file. It carries the
// file path and the parser diagnostics so callers can report the exact
// location of the problem.
type ParseError struct {
	Path        string
	Diagnostics []string
}

func (e *ParseError) Error() string {
	if len(e.Diagnostics) == 0 {
		return fmt.Sprintf("parse %s: unknown error", e.Path)
	}
	return fmt.Sprintf("parse %s: %s", e.Path, strings.Join(e.Diagnostics, "; "))
}

// ResolutionError indicates that an import specifier did not resolve to a
// bundleable file. Importer is the canonical identity of the module containing
// the import, Specifier the raw string as written in the source.
type ResolutionError struct {
	Importer  string
	Specifier string
	Err       error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve %q imported by %s: %v", e.Specifier, e.Importer, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}
