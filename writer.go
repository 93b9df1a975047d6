package urltext

import "context"

// Record is one output file to persist: a filename derived from the item's
// position and source URL, and the plain-text blob to write. Text may be
// empty; an empty record is still written so every valid URL attempted
// leaves exactly one file behind.
type Record struct {
	Filename string
	Text     string
}

// RecordWriter persists records to storage, overwriting existing files of
// the same name so re-runs over an unchanged input are idempotent.
type RecordWriter interface {
	Write(ctx context.Context, rec *Record) error
}
