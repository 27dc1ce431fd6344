package tui

import (
	"strings"
	"testing"
)

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "plain text",
			input:    "Premium visiting cards",
			expected: "Premium visiting cards",
		},
		{
			name:     "simple paragraph",
			input:    "<p>Premium visiting cards</p>",
			expected: "Premium visiting cards",
		},
		{
			name:     "multiple paragraphs",
			input:    "<p>350gsm matte stock.</p><p>Full color both sides.</p>",
			expected: "350gsm matte stock.\nFull color both sides.",
		},
		{
			name:     "inline emphasis",
			input:    "<p>Printed on <strong>350gsm</strong> art <em>card</em></p>",
			expected: "Printed on 350gsm art card",
		},
		{
			name:     "unordered list",
			input:    "<ul><li>Matte lamination</li><li>Rounded corners</li></ul>",
			expected: "Matte lamination\nRounded corners",
		},
		{
			name:     "line breaks",
			input:    "Front<br>Back<br/>Edges",
			expected: "Front\nBack\nEdges",
		},
		{
			name:     "nested tags",
			input:    "<div><p>Delivered <span>flat-packed</span> in boxes</p></div>",
			expected: "Delivered flat-packed in boxes",
		},
		{
			name:     "headings",
			input:    "<h2>Specifications</h2><p>Standard size</p>",
			expected: "Specifications\nStandard size",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := StripHTML(tt.input)
			if result != tt.expected {
				t.Errorf("StripHTML(%q)\ngot:  %q\nwant: %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestStripHTMLEntities(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains string
	}{
		{
			name:     "ampersand",
			input:    "<p>Flyers &amp; Brochures</p>",
			contains: "Flyers & Brochures",
		},
		{
			name:     "comparison signs",
			input:    "<p>A &lt; B &gt; C</p>",
			contains: "A < B > C",
		},
		{
			name:     "quotes",
			input:    "<p>&quot;Premium&quot; finish, it&#39;s glossy</p>",
			contains: "\"Premium\" finish, it's glossy",
		},
		{
			name:     "non-breaking space",
			input:    "<p>Spot&nbsp;UV</p>",
			contains: "Spot UV",
		},
		{
			name:     "ellipsis",
			input:    "<p>Printing&hellip;</p>",
			contains: "Printing…",
		},
		{
			name:     "trademark",
			input:    "<p>Velvet Touch&trade;</p>",
			contains: "Velvet Touch™",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := StripHTML(tt.input)
			if !strings.Contains(result, tt.contains) {
				t.Errorf("StripHTML(%q)\ngot:  %q\nwant to contain: %q", tt.input, result, tt.contains)
			}
		})
	}
}

func TestStripHTMLMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "unclosed tag",
			input: "<p>Unclosed paragraph",
		},
		{
			name:  "mismatched tags",
			input: "<p>Mismatched <strong>tags</p></strong>",
		},
		{
			name:  "only opening tag",
			input: "<div>Content",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Must not panic on malformed HTML
			result := StripHTML(tt.input)
			if result == "" {
				t.Error("expected non-empty result for malformed HTML")
			}
		})
	}
}
