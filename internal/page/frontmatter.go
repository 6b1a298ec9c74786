package page

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Frontmatter holds the optional YAML metadata block at the top of a page.
// The block is opaque to the line machinery: its lines are never parsed as
// items and round-trip byte-for-byte.
type Frontmatter struct {
	// Title is the optional page title.
	Title string `yaml:"title,omitempty"`
	// Created is the RFC3339 timestamp when the page was first created.
	Created string `yaml:"created,omitempty"`
	// Updated is the RFC3339 timestamp when the page was last modified.
	Updated string `yaml:"updated,omitempty"`
	// Tags are optional free-form page labels.
	Tags []string `yaml:"tags,omitempty"`
}

// IsZero reports whether no metadata field is set.
func (fm Frontmatter) IsZero() bool {
	return fm.Title == "" && fm.Created == "" && fm.Updated == "" && len(fm.Tags) == 0
}

// frontmatterRE matches a complete YAML frontmatter block at the start of a
// page. The closing "---" must appear unindented; "---" inside YAML block
// scalars is always indented, so this boundary is unambiguous without a
// YAML-aware scanner.
var frontmatterRE = regexp.MustCompile(`(?s)^---\n(.*?\n)?---\n`)

// ParseFrontmatter splits page content into its Frontmatter, the raw block
// text (including both delimiter lines), and the body. Pages without a block
// return a zero Frontmatter, an empty block, and the full content. A block
// whose YAML fails to decode is an error; the content is returned unchanged
// as the body so callers can degrade to treating the page as plain lines.
func ParseFrontmatter(content string) (Frontmatter, string, string, error) {
	loc := frontmatterRE.FindStringSubmatchIndex(content)
	if loc == nil {
		return Frontmatter{}, "", content, nil
	}

	block := content[:loc[1]]
	body := content[loc[1]:]

	// Decode only the YAML between the delimiters; feeding the "---" lines
	// to the decoder would make the block a multi-document stream.
	var inner string
	if loc[2] >= 0 {
		inner = content[loc[2]:loc[3]]
	}

	var fm Frontmatter
	if err := yaml.Unmarshal([]byte(inner), &fm); err != nil {
		return Frontmatter{}, "", content, fmt.Errorf("parse frontmatter: %w", err)
	}
	return fm, block, body, nil
}

// SerializeFrontmatter renders fm as a canonical block in field order
// title → created → updated → tags, wrapped in "---" delimiters. Empty
// fields are omitted.
func SerializeFrontmatter(fm Frontmatter) string {
	var sb strings.Builder
	sb.WriteString("---\n")
	if fm.Title != "" {
		sb.WriteString("title: " + fm.Title + "\n")
	}
	if fm.Created != "" {
		sb.WriteString("created: " + fm.Created + "\n")
	}
	if fm.Updated != "" {
		sb.WriteString("updated: " + fm.Updated + "\n")
	}
	for i, tag := range fm.Tags {
		if i == 0 {
			sb.WriteString("tags:\n")
		}
		sb.WriteString("  - " + tag + "\n")
	}
	sb.WriteString("---\n")
	return sb.String()
}
