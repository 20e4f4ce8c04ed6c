package format

import (
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "basic formatting",
			input:    `meta{name="Test"}`,
			expected: `meta { name = "Test" }`,
		},
		{
			name:     "colors with nested blocks",
			input:    `colors{base="#191724"highlight{low="#21202E"}}`,
			expected: `colors { base = "#191724" highlight { low = "#21202E" } }`,
		},
		{
			name: "already formatted stays same",
			input: `meta {
  name = "Test"
}
`,
			expected: `meta {
  name = "Test"
}
`,
		},
		{
			name:     "extra whitespace normalized",
			input:    `meta   {   name   =   "Test"   }`,
			expected: `meta { name = "Test" }`,
		},
		{
			name:     "empty content",
			input:    "",
			expected: "",
		},
		{
			name: "attributes aligned",
			input: `gradient "fade" {
  start = colors.base
  end = colors.love
  steps = 5
}
`,
			expected: `gradient "fade" {
  start = colors.base
  end   = colors.love
  steps = 5
}
`,
		},
		{
			name: "multiple blank lines collapsed to one",
			input: "meta { name = \"Test\" }\n\n\n\ncolors { base = \"#191724\" }",
			expected: "meta { name = \"Test\" }\n\ncolors { base = \"#191724\" }",
		},
		{
			name: "many blank lines collapsed to one",
			input: "meta { name = \"Test\" }\n\n\n\n\n\n\ncolors { base = \"#191724\" }",
			expected: "meta { name = \"Test\" }\n\ncolors { base = \"#191724\" }",
		},
		{
			name: "single blank line preserved",
			input: "meta { name = \"Test\" }\n\ncolors { base = \"#191724\" }",
			expected: "meta { name = \"Test\" }\n\ncolors { base = \"#191724\" }",
		},
		{
			name: "blank lines after and before braces removed",
			input: "colors {\n\n  base = \"#191724\"\n\n}",
			expected: "colors {\n  base = \"#191724\"\n}",
		},
		{
			name: "nested block blank lines removed",
			input: "colors {\n\n  highlight {\n\n    low = \"#21202E\"\n\n  }\n\n}",
			expected: "colors {\n  highlight {\n    low = \"#21202E\"\n  }\n}",
		},
		{
			name: "hex literals uppercased",
			input: "colors {\n  base  = \"#eb6f92\"\n  short = \"#abc\"\n  glass = \"#ffffff80\"\n}",
			expected: "colors {\n  base  = \"#EB6F92\"\n  short = \"#ABC\"\n  glass = \"#FFFFFF80\"\n}",
		},
		{
			name: "non-color strings untouched",
			input: "meta {\n  name = \"#define\"\n  description = \"see #abc\"\n}",
			expected: "meta {\n  name        = \"#define\"\n  description = \"see #abc\"\n}",
		},
		{
			name: "comments untouched",
			input: "colors {\n  # was #eb6f92\n  base = \"#191724\"\n}",
			expected: "colors {\n  # was #eb6f92\n  base = \"#191724\"\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Format(tt.input)
			if err != nil {
				t.Fatalf("Format() error = %v", err)
			}

			// Normalize line endings for comparison
			result = strings.TrimSuffix(result, "\n")
			expected := strings.TrimSuffix(tt.expected, "\n")

			if result != expected {
				t.Errorf("Format() = %q, want %q", result, expected)
			}
		})
	}
}

func TestFormatInvalidHCL(t *testing.T) {
	// hclwrite.Format should handle partial/invalid HCL gracefully
	input := `meta { name = "Test"`
	_, err := Format(input)
	if err != nil {
		t.Errorf("Format() on incomplete HCL should not error, got: %v", err)
	}
}
