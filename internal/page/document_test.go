package page_test

import (
	"strings"
	"testing"

	"github.com/eykd/taskmark-go/internal/listedit"
	"github.com/eykd/taskmark-go/internal/page"
)

const samplePage = `---
title: garden
tags:
  - home
---
# this week

[ ] water the plants
	[x] buy a watering can
[!] fix the fence ->2024-03-01
a loose thought
`

// TestParseDocument_RoundTrip tests that assembling a document back into
// text is byte-identical, frontmatter included.
func TestParseDocument_RoundTrip(t *testing.T) {
	d := page.ParseDocument(samplePage)
	if got := d.Text(); got != samplePage {
		t.Errorf("Text() diverged from input:\n%q\nvs\n%q", got, samplePage)
	}
}

// TestParseDocument_Frontmatter tests that the metadata block decodes and
// that its lines are not visible to the line machinery.
func TestParseDocument_Frontmatter(t *testing.T) {
	d := page.ParseDocument(samplePage)
	fm := d.Frontmatter()
	if fm.Title != "garden" {
		t.Errorf("Title = %q, want %q", fm.Title, "garden")
	}
	if len(fm.Tags) != 1 || fm.Tags[0] != "home" {
		t.Errorf("Tags = %v, want [home]", fm.Tags)
	}
	if got := d.Lines()[0]; got != "# this week" {
		t.Errorf("first body line = %q, want heading", got)
	}
}

// TestParseDocument_NoFrontmatter tests the plain-page path.
func TestParseDocument_NoFrontmatter(t *testing.T) {
	d := page.ParseDocument("[ ] only line")
	if !d.Frontmatter().IsZero() {
		t.Errorf("Frontmatter = %+v, want zero", d.Frontmatter())
	}
	if d.Text() != "[ ] only line" {
		t.Errorf("Text = %q", d.Text())
	}
}

// TestDocument_ItemAt tests lazy parsing of body lines.
func TestDocument_ItemAt(t *testing.T) {
	d := page.ParseDocument(samplePage)
	if got := d.ItemAt(0).Type; got != page.ItemHeading {
		t.Errorf("ItemAt(0).Type = %q, want heading", got)
	}
	if got := d.ItemAt(2).Status; got != page.StatusIncomplete {
		t.Errorf("ItemAt(2).Status = %q, want incomplete", got)
	}
	if got := d.ItemAt(99).Type; got != page.ItemNote {
		t.Errorf("ItemAt(99).Type = %q, want note for out of range", got)
	}
}

// TestDocument_MutateLine tests that a line mutation splices back into the
// page without touching surrounding bytes.
func TestDocument_MutateLine(t *testing.T) {
	d := page.ParseDocument(samplePage)
	err := d.MutateLine(2, func(w *page.Writable) error {
		w.SetStatus(page.StatusCompleted)
		return nil
	})
	if err != nil {
		t.Fatalf("MutateLine error: %v", err)
	}
	want := strings.Replace(samplePage, "[ ] water the plants", "[x] water the plants", 1)
	if got := d.Text(); got != want {
		t.Errorf("Text after mutation = %q, want %q", got, want)
	}
}

// TestDocument_SortTasks tests that dated and important tasks bubble up
// while notes, headings, and nested children hold their positions relative
// to their anchors.
func TestDocument_SortTasks(t *testing.T) {
	in := strings.Join([]string{
		"# list",
		"[x] done thing",
		"[!] urgent thing",
		"[ ] dated thing ->2024-01-01",
		"a note stays put",
	}, "\n")
	d := page.ParseDocument(in)
	d.SortTasks()
	want := strings.Join([]string{
		"# list",
		"[ ] dated thing ->2024-01-01",
		"[!] urgent thing",
		"[x] done thing",
		"a note stays put",
	}, "\n")
	if got := d.Text(); got != want {
		t.Errorf("sorted text = %q, want %q", got, want)
	}
}

// TestDocument_SortTasks_Stable tests that equal tasks keep their original
// relative order.
func TestDocument_SortTasks_Stable(t *testing.T) {
	in := "[ ] first\n[ ] second\n[ ] third"
	d := page.ParseDocument(in)
	d.SortTasks()
	if got := d.Text(); got != in {
		t.Errorf("stable sort reordered equals: %q", got)
	}
}

// TestDocument_Indent tests tab insertion and removal over a line range.
func TestDocument_Indent(t *testing.T) {
	d := page.ParseDocument("[ ] a\n[ ] b\nnote")
	d.Indent(0, 1, listedit.ModeIndent)
	if got := d.Text(); got != "\t[ ] a\n\t[ ] b\nnote" {
		t.Fatalf("after indent, Text = %q", got)
	}
	d.Indent(0, 2, listedit.ModeOutdent)
	if got := d.Text(); got != "[ ] a\n[ ] b\nnote" {
		t.Errorf("after outdent, Text = %q", got)
	}
}
