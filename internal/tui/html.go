package tui

import (
	"strings"

	"golang.org/x/net/html"
)

// StripHTML renders an HTML fragment as plain terminal text. Catalog
// descriptions come from a rich text editor, so tags and entities show up in
// otherwise plain strings.
func StripHTML(s string) string {
	if s == "" {
		return ""
	}

	var out strings.Builder
	tokenizer := html.NewTokenizer(strings.NewReader(s))

	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			// End of document or error
			return collapseLines(out.String())

		case html.TextToken:
			out.WriteString(string(tokenizer.Text()))

		case html.StartTagToken, html.SelfClosingTagToken, html.EndTagToken:
			tn, _ := tokenizer.TagName()
			if isBlockTag(string(tn)) {
				out.WriteString("\n")
			}
		}
	}
}

func isBlockTag(name string) bool {
	switch name {
	case "p", "div", "br", "li", "ul", "ol", "h1", "h2", "h3", "h4", "h5", "h6":
		return true
	}
	return false
}

// collapseLines trims every line and drops blank ones, then decodes the
// entities the tokenizer leaves in text nodes.
func collapseLines(s string) string {
	lines := strings.Split(s, "\n")
	clean := lines[:0]
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			clean = append(clean, line)
		}
	}
	return decodeEntities(strings.Join(clean, "\n"))
}

var entityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", "\"",
	"&#39;", "'",
	"&apos;", "'",
	"&nbsp;", " ",
	"&mdash;", "—",
	"&ndash;", "–",
	"&hellip;", "…",
	"&copy;", "©",
	"&reg;", "®",
	"&trade;", "™",
)

func decodeEntities(s string) string {
	return entityReplacer.Replace(s)
}
