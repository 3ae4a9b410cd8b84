package goquery_test

import (
	"testing"

	"github.com/fwojciec/readmegen"
	"github.com/fwojciec/readmegen/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnchorChecker_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ readmegen.AnchorChecker = goquery.NewAnchorChecker()
}

func TestAnchorChecker_DanglingAnchors(t *testing.T) {
	t.Parallel()

	t.Run("accepts links to headings", func(t *testing.T) {
		t.Parallel()

		markdown := "# Modern features\n- [fold expressions](#fold-expressions)\n\n### Fold expressions\nBody."

		dangling, err := goquery.NewAnchorChecker().DanglingAnchors(markdown)

		require.NoError(t, err)
		assert.Empty(t, dangling)
	})

	t.Run("reports links without target once", func(t *testing.T) {
		t.Parallel()

		markdown := "# Features\n- [lambdas](#lambdas)\n- [again](#lambdas)\n- [ranges](#ranges)\n\n## Ranges\n"

		dangling, err := goquery.NewAnchorChecker().DanglingAnchors(markdown)

		require.NoError(t, err)
		assert.Equal(t, []string{"lambdas"}, dangling)
	})

	t.Run("accepts raw html named anchors", func(t *testing.T) {
		t.Parallel()

		markdown := "<a name=\"custom\"></a>\n\nSee [custom](#custom)."

		dangling, err := goquery.NewAnchorChecker().DanglingAnchors(markdown)

		require.NoError(t, err)
		assert.Empty(t, dangling)
	})

	t.Run("ignores external and relative links", func(t *testing.T) {
		t.Parallel()

		markdown := "[cppreference](https://en.cppreference.com/w/#top) and [other](CPP11.md#auto)"

		dangling, err := goquery.NewAnchorChecker().DanglingAnchors(markdown)

		require.NoError(t, err)
		assert.Empty(t, dangling)
	})
}
