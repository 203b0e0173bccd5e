package markup

import (
	"reflect"
	"strings"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected []Run
	}{
		{
			name:     "plain text single run",
			line:     "just some text",
			expected: []Run{{Text: "just some text"}},
		},
		{
			name:     "empty line no runs",
			line:     "",
			expected: nil,
		},
		{
			name:     "bold only",
			line:     "**urgent**",
			expected: []Run{{Text: "urgent", Bold: true}},
		},
		{
			name:     "italic only",
			line:     "*important*",
			expected: []Run{{Text: "important", Italic: true}},
		},
		{
			name: "bold surrounded by plain",
			line: "This is **urgent** indeed.",
			expected: []Run{
				{Text: "This is "},
				{Text: "urgent", Bold: true},
				{Text: " indeed."},
			},
		},
		{
			name: "bold then italic on one line",
			line: "This is *important* and **urgent**.",
			expected: []Run{
				{Text: "This is "},
				{Text: "important", Italic: true},
				{Text: " and "},
				{Text: "urgent", Bold: true},
				{Text: "."},
			},
		},
		{
			name: "bold wins over italic at same position",
			line: "**Hi** there",
			expected: []Run{
				{Text: "Hi", Bold: true},
				{Text: " there"},
			},
		},
		{
			name:     "unterminated single star stays literal",
			line:     "Price: *$5 (no closing",
			expected: []Run{{Text: "Price: *$5 (no closing"}},
		},
		{
			name:     "unterminated double star stays literal",
			line:     "broken ** marker",
			expected: []Run{{Text: "broken ** marker"}},
		},
		{
			name: "unterminated double star before valid italic",
			line: "**abc*",
			expected: []Run{
				{Text: "*"},
				{Text: "abc", Italic: true},
			},
		},
		{
			name:     "overlapping markers resolve to one bold run",
			line:     "**bold *italic**",
			expected: []Run{{Text: "bold *italic", Bold: true}},
		},
		{
			name:     "adjacent bold pair with empty span",
			line:     "****",
			expected: []Run{{Text: "", Bold: true}},
		},
		{
			name: "two independent italic spans",
			line: "*a* and *b*",
			expected: []Run{
				{Text: "a", Italic: true},
				{Text: " and "},
				{Text: "b", Italic: true},
			},
		},
		{
			name: "non-greedy pairing does not bridge spans",
			line: "*a*x*b*",
			expected: []Run{
				{Text: "a", Italic: true},
				{Text: "x"},
				{Text: "b", Italic: true},
			},
		},
		{
			name: "stars pair across intervening text",
			line: "2 * 3 = 6 or 2*3",
			expected: []Run{
				{Text: "2 "},
				{Text: " 3 = 6 or 2", Italic: true},
				{Text: "3"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.line)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Tokenize(%q) = %+v, want %+v", tt.line, got, tt.expected)
			}
		})
	}
}

// Concatenating run texts must reconstruct the line minus consumed markers.
func TestTokenizeReconstruction(t *testing.T) {
	lines := []struct {
		line     string
		stripped string
	}{
		{"plain text", "plain text"},
		{"**b** and *i*", "b and i"},
		{"unterminated *here", "unterminated *here"},
		{"**bold *italic**", "bold *italic"},
		{"edge **", "edge **"},
	}

	for _, tt := range lines {
		var b strings.Builder
		for _, r := range Tokenize(tt.line) {
			b.WriteString(r.Text)
		}
		if b.String() != tt.stripped {
			t.Errorf("Tokenize(%q) reconstructs %q, want %q", tt.line, b.String(), tt.stripped)
		}
	}
}

func TestTokenizeNeverEmptyForNonEmptyLine(t *testing.T) {
	lines := []string{"a", "*", "**", "***", "x**", "**x"}
	for _, line := range lines {
		if got := Tokenize(line); len(got) == 0 {
			t.Errorf("Tokenize(%q) returned no runs", line)
		}
	}
}
