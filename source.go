package readmegen

import "context"

// DocumentSource loads variant documents in combination order.
type DocumentSource interface {
	LoadDocuments(ctx context.Context) ([]*Document, error)
}

// TemplateSource loads the README template.
type TemplateSource interface {
	LoadTemplate(ctx context.Context) (string, error)
}

// OutputWriter persists the combined output.
type OutputWriter interface {
	// Write stores content and reports whether the stored output changed.
	Write(ctx context.Context, content string) (changed bool, err error)

	// Read returns the stored output. Returns ENOTFOUND if nothing is stored.
	Read(ctx context.Context) (string, error)
}

// AnchorChecker finds in-page links that point at no heading.
type AnchorChecker interface {
	DanglingAnchors(markdown string) ([]string, error)
}
