package mock

import (
	"context"

	"github.com/fwojciec/readmegen"
)

var _ readmegen.OutputWriter = (*OutputWriter)(nil)

// OutputWriter is a mock implementation of readmegen.OutputWriter.
type OutputWriter struct {
	WriteFn func(ctx context.Context, content string) (bool, error)
	ReadFn  func(ctx context.Context) (string, error)
}

func (w *OutputWriter) Write(ctx context.Context, content string) (bool, error) {
	return w.WriteFn(ctx, content)
}

func (w *OutputWriter) Read(ctx context.Context) (string, error) {
	return w.ReadFn(ctx)
}
