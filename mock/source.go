package mock

import (
	"context"

	"github.com/fwojciec/readmegen"
)

var (
	_ readmegen.DocumentSource = (*DocumentSource)(nil)
	_ readmegen.TemplateSource = (*TemplateSource)(nil)
)

// DocumentSource is a mock implementation of readmegen.DocumentSource.
type DocumentSource struct {
	LoadDocumentsFn func(ctx context.Context) ([]*readmegen.Document, error)
}

func (s *DocumentSource) LoadDocuments(ctx context.Context) ([]*readmegen.Document, error) {
	return s.LoadDocumentsFn(ctx)
}

// TemplateSource is a mock implementation of readmegen.TemplateSource.
type TemplateSource struct {
	LoadTemplateFn func(ctx context.Context) (string, error)
}

func (s *TemplateSource) LoadTemplate(ctx context.Context) (string, error) {
	return s.LoadTemplateFn(ctx)
}
