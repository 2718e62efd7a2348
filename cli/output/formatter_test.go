package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Format
		wantErr  bool
	}{
		{name: "table", input: "table", expected: FormatTable},
		{name: "empty defaults to table", input: "", expected: FormatTable},
		{name: "json", input: "json", expected: FormatJSON},
		{name: "yaml", input: "yaml", expected: FormatYAML},
		{name: "yml alias", input: "yml", expected: FormatYAML},
		{name: "uppercase", input: "JSON", expected: FormatJSON},
		{name: "invalid", input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, format)
		})
	}
}

func TestFormatter_PrintJSON(t *testing.T) {
	var buf bytes.Buffer
	f := &Formatter{Format: FormatJSON, Writer: &buf}

	require.NoError(t, f.Print(map[string]int{"modules": 3}))
	assert.JSONEq(t, `{"modules": 3}`, buf.String())
}

func TestFormatter_PrintYAML(t *testing.T) {
	var buf bytes.Buffer
	f := &Formatter{Format: FormatYAML, Writer: &buf}

	require.NoError(t, f.Print(map[string]int{"modules": 3}))
	assert.Contains(t, buf.String(), "modules: 3")
}

func TestFormatter_Quiet(t *testing.T) {
	var buf bytes.Buffer
	f := &Formatter{Format: FormatJSON, Quiet: true, Writer: &buf}

	require.NoError(t, f.Print(map[string]int{"modules": 3}))
	f.Success("done")
	assert.Empty(t, buf.String())
}

func TestFormatter_PrintTable(t *testing.T) {
	var buf bytes.Buffer
	f := &Formatter{Format: FormatTable, Writer: &buf}

	f.PrintTable(TableData{
		Headers: []string{"MODULE", "SIZE"},
		Rows:    [][]string{{"main.js", "120 B"}, {"a.js", "40 B"}},
	})

	out := buf.String()
	assert.Contains(t, out, "main.js")
	assert.Contains(t, out, "a.js")
}
