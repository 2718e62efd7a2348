package bundler

// Metafile models the subset of the esbuild metafile JSON the extractor
// reads. With every import marked external the metafile contains exactly one
// input: the file being extracted, with its import records in source order.
type Metafile struct {
	Inputs map[string]MetafileInput `json:"inputs"`
}

// MetafileInput represents one input file in the metafile.
type MetafileInput struct {
	Bytes   int              `json:"bytes"`
	Imports []MetafileImport `json:"imports"`
	Format  string           `json:"format,omitempty"` // "cjs" or "esm"
}

// MetafileImport represents a single import record of an input file.
type MetafileImport struct {
	Path     string `json:"path"`
	Kind     string `json:"kind"`
	External bool   `json:"external,omitempty"`
	Original string `json:"original,omitempty"`
}
