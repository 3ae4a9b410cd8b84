package readmegen

// Heading represents a markdown heading located in a document's lines.
// Line is the index of the first heading line; BodyLine is the index of
// the first line after the heading (Line+1 for ATX headings, Line+2 for
// setext headings).
type Heading struct {
	Level    int    `json:"level"`
	Name     string `json:"name"`
	Line     int    `json:"line"`
	BodyLine int    `json:"bodyLine"`
}

// Section represents a heading block: the heading lines plus every line up
// to the next heading at the same level, or the end of the document.
// Headings at other levels never close a block.
type Section struct {
	Level     int    `json:"level"`
	Name      string `json:"name"`
	Start     int    `json:"start"`
	BodyStart int    `json:"bodyStart"`
	End       int    `json:"end"` // exclusive
}

// BuildSections turns headings in document order into blocks over a
// document of lineCount lines. Line indexes are clamped to the document.
func BuildSections(headings []Heading, lineCount int) []Section {
	if len(headings) == 0 {
		return nil
	}

	sections := make([]Section, 0, len(headings))
	for i, h := range headings {
		start := clamp(h.Line, 0, lineCount)
		bodyStart := clamp(h.BodyLine, start, lineCount)

		end := lineCount
		for _, next := range headings[i+1:] {
			if next.Level == h.Level && next.Line >= bodyStart {
				end = clamp(next.Line, bodyStart, lineCount)
				break
			}
		}

		sections = append(sections, Section{
			Level:     h.Level,
			Name:      h.Name,
			Start:     start,
			BodyStart: bodyStart,
			End:       end,
		})
	}

	return sections
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
