package mock

import "github.com/fwojciec/readmegen"

var _ readmegen.AnchorChecker = (*AnchorChecker)(nil)

// AnchorChecker is a mock implementation of readmegen.AnchorChecker.
type AnchorChecker struct {
	DanglingAnchorsFn func(markdown string) ([]string, error)
}

func (c *AnchorChecker) DanglingAnchors(markdown string) ([]string, error) {
	return c.DanglingAnchorsFn(markdown)
}
