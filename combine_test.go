package readmegen_test

import (
	"testing"

	"github.com/fwojciec/readmegen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectFragments(t *testing.T) {
	t.Parallel()

	t.Run("aggregates documents in the given order", func(t *testing.T) {
		t.Parallel()

		fragments, err := readmegen.CollectFragments([]*readmegen.Document{variantB(), variantA()})

		require.NoError(t, err)
		assert.Equal(t, "B/A", fragments.Title)
		assert.Equal(t, "overview text B\noverview text A\n", fragments.Overview)
		assert.Equal(t, "## C++\nfeature B\n\n## C++\nfeature A\n\n", fragments.Features)
	})

	t.Run("rewrites README links to local anchors", func(t *testing.T) {
		t.Parallel()

		doc := readmegen.NewDocument("CPP17.md",
			"# C++17 Features\n## Overview\n![img](x.png)\nSee [fold](README.md#fold-expressions).\n## C++\n- [fold](README.md#fold-expressions)",
			[]readmegen.Heading{
				{Level: 1, Name: "C++17 Features", Line: 0, BodyLine: 1},
				{Level: 2, Name: "Overview", Line: 1, BodyLine: 2},
				{Level: 2, Name: "C++", Line: 4, BodyLine: 5},
			},
			readmegen.Meta{},
		)

		fragments, err := readmegen.CollectFragments([]*readmegen.Document{doc})

		require.NoError(t, err)
		assert.Equal(t, "17", fragments.Title)
		assert.Equal(t, "See [fold](#fold-expressions).\n", fragments.Overview)
		assert.Equal(t, "## C++\n- [fold](#fold-expressions)\n", fragments.Features)
	})

	t.Run("returns empty fragments without documents", func(t *testing.T) {
		t.Parallel()

		fragments, err := readmegen.CollectFragments(nil)

		require.NoError(t, err)
		assert.Equal(t, readmegen.Fragments{}, fragments)
	})

	t.Run("fails on malformed title", func(t *testing.T) {
		t.Parallel()

		bad := readmegen.NewDocument("CPP98.md", "#CPP98", nil, readmegen.Meta{})

		_, err := readmegen.CollectFragments([]*readmegen.Document{variantA(), bad})

		require.Error(t, err)
		assert.Equal(t, readmegen.EINVALID, readmegen.ErrorCode(err))
	})
}

func TestSubstitute(t *testing.T) {
	t.Parallel()

	t.Run("replaces every occurrence in order", func(t *testing.T) {
		t.Parallel()

		got := readmegen.Substitute("{a} {b} {a}", []readmegen.Placeholder{
			{Token: "{a}", Value: "{b}"},
			{Token: "{b}", Value: "x"},
		})

		assert.Equal(t, "x x x", got)
	})
}

func TestCombine(t *testing.T) {
	t.Parallel()

	template := "# C++\n\n## Overview\n<!-- overview -->\n## Features\n<!-- features -->"

	t.Run("fills all markers", func(t *testing.T) {
		t.Parallel()

		got, err := readmegen.Combine(template, []*readmegen.Document{variantB(), variantA()})

		require.NoError(t, err)
		want := "# C++B/A\n\n## Overview\noverview text B\noverview text A\n\n## Features\n## C++\nfeature B\n\n## C++\nfeature A\n\n"
		assert.Equal(t, want, got)
		assert.NotContains(t, got, readmegen.OverviewMarker)
		assert.NotContains(t, got, readmegen.FeaturesMarker)
	})

	t.Run("leaves title marker without trailing newline alone", func(t *testing.T) {
		t.Parallel()

		got, err := readmegen.Combine("# C++", []*readmegen.Document{variantA()})

		require.NoError(t, err)
		assert.Equal(t, "# C++", got)
	})

	t.Run("blanks markers without documents", func(t *testing.T) {
		t.Parallel()

		got, err := readmegen.Combine(template, nil)

		require.NoError(t, err)
		assert.Equal(t, "# C++\n\n## Overview\n\n## Features\n", got)
	})
}
