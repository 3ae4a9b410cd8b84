package readmegen

import "strings"

// Template markers replaced by Combine.
const (
	TitleMarker    = "# C++\n"
	OverviewMarker = "<!-- overview -->"
	FeaturesMarker = "<!-- features -->"
)

// Fragments holds the text aggregated across all variant documents.
type Fragments struct {
	Title    string `json:"title"`
	Overview string `json:"overview"`
	Features string `json:"features"`
}

// Placeholder maps a literal template token to its replacement.
type Placeholder struct {
	Token string
	Value string
}

// CollectFragments aggregates titles, overviews and feature sections of docs
// in the given order. Titles lose every "C++" and are joined with "/".
// Each overview and feature blob is followed by a newline. Links into the
// per-variant README become same-document anchors.
func CollectFragments(docs []*Document) (Fragments, error) {
	titles := make([]string, 0, len(docs))
	var overview, features strings.Builder

	for _, doc := range docs {
		title, err := doc.Title()
		if err != nil {
			return Fragments{}, err
		}
		titles = append(titles, strings.ReplaceAll(title, "C++", ""))

		overview.WriteString(doc.Overview())
		overview.WriteString("\n")
		features.WriteString(doc.Features())
		features.WriteString("\n")
	}

	return Fragments{
		Title:    strings.Join(titles, "/"),
		Overview: rewriteLinks(overview.String()),
		Features: rewriteLinks(features.String()),
	}, nil
}

// Placeholders returns the template substitutions in the order they apply.
func (f Fragments) Placeholders() []Placeholder {
	return []Placeholder{
		{Token: TitleMarker, Value: "# C++" + f.Title + "\n"},
		{Token: OverviewMarker, Value: f.Overview},
		{Token: FeaturesMarker, Value: f.Features},
	}
}

// Substitute replaces every occurrence of each placeholder token in order.
func Substitute(template string, placeholders []Placeholder) string {
	for _, p := range placeholders {
		template = strings.ReplaceAll(template, p.Token, p.Value)
	}
	return template
}

// Combine fills template with the fragments collected from docs.
func Combine(template string, docs []*Document) (string, error) {
	fragments, err := CollectFragments(docs)
	if err != nil {
		return "", err
	}
	return Substitute(template, fragments.Placeholders()), nil
}

func rewriteLinks(s string) string {
	return strings.ReplaceAll(s, "README.md#", "#")
}
