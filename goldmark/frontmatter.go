package goldmark

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
	"github.com/fwojciec/readmegen"
)

type frontMatterEnvelope struct {
	Title string `yaml:"title" toml:"title" json:"title"`
	Draft bool   `yaml:"draft" toml:"draft" json:"draft"`
}

// ParseFrontMatter splits optional YAML, TOML or JSON front matter from a
// markdown source. Sources without front matter are returned unchanged.
func ParseFrontMatter(src []byte) (readmegen.Meta, []byte, error) {
	var env frontMatterEnvelope

	body, err := frontmatter.Parse(bytes.NewReader(src), &env)
	if err != nil {
		return readmegen.Meta{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	return readmegen.Meta{
		Title: env.Title,
		Draft: env.Draft,
	}, body, nil
}
