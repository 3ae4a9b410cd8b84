package readmegen

import "strings"

// Well-known section names in variant sources.
const (
	OverviewSection = "Overview"
	FeaturesSection = "C++"
)

// Meta holds optional front matter of a source document.
type Meta struct {
	// Title overrides the title token taken from the first line.
	Title string `json:"title,omitempty"`

	// Draft excludes the document from combination.
	Draft bool `json:"draft,omitempty"`
}

// Document represents a parsed markdown source. It is immutable once built.
type Document struct {
	Name     string    `json:"name"`
	Text     string    `json:"text"`
	Lines    []string  `json:"lines"`
	Sections []Section `json:"sections"`
	Meta     Meta      `json:"meta"`
}

// NewDocument builds a Document from its markdown text and the headings
// found in it.
func NewDocument(name, text string, headings []Heading, meta Meta) *Document {
	lines := strings.Split(text, "\n")
	return &Document{
		Name:     name,
		Text:     text,
		Lines:    lines,
		Sections: BuildSections(headings, len(lines)),
		Meta:     meta,
	}
}

// Header returns the lines of every block at the given level whose heading
// text starts with name, joined with newlines. Adjacent matching blocks form
// one run: only the heading of the first block in a run is subject to
// includeHeader, later headings are kept as content. A missing header
// yields an empty string.
func (d *Document) Header(name string, level int, includeHeader bool) string {
	var content []string
	inRun := false
	for _, s := range d.Sections {
		if s.Level != level {
			continue
		}
		if !strings.HasPrefix(s.Name, name) {
			inRun = false
			continue
		}
		if inRun || includeHeader {
			content = append(content, d.Lines[s.Start:s.BodyStart]...)
		}
		content = append(content, d.Lines[s.BodyStart:s.End]...)
		inRun = true
	}
	return strings.Join(content, "\n")
}

// Title returns the document's short identifier: the second
// whitespace-separated field of the first line, unless front matter sets one.
func (d *Document) Title() (string, error) {
	if d.Meta.Title != "" {
		return d.Meta.Title, nil
	}

	var first string
	if len(d.Lines) > 0 {
		first = d.Lines[0]
	}

	fields := strings.Fields(first)
	if len(fields) < 2 {
		return "", Errorf(EINVALID, "%s: first line %q has no title token", d.Name, first)
	}
	return fields[1], nil
}

// Overview returns the level-2 "Overview" section without its heading and
// without the line right after it (usually a badge or image).
func (d *Document) Overview() string {
	lines := strings.Split(d.Header(OverviewSection, 2, false), "\n")
	return strings.Join(lines[1:], "\n")
}

// Features returns the level-2 "C++" section including its heading.
func (d *Document) Features() string {
	return d.Header(FeaturesSection, 2, true)
}

// Parser builds documents from raw source bytes.
type Parser interface {
	Parse(name string, src []byte) (*Document, error)
}
