package mock

import (
	"context"

	"github.com/fwojciec/urltext"
)

var _ urltext.RecordWriter = (*RecordWriter)(nil)

// RecordWriter is a mock implementation of urltext.RecordWriter.
type RecordWriter struct {
	WriteFn func(ctx context.Context, rec *urltext.Record) error
}

func (w *RecordWriter) Write(ctx context.Context, rec *urltext.Record) error {
	return w.WriteFn(ctx, rec)
}
