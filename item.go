package urltext

// Item is one URL read from the input list, paired with its ordinal
// position. Positions count every input line, including lines that are
// later skipped as invalid, so indices always reflect original line order.
type Item struct {
	Index int
	URL   string
}

// ItemResult holds the outcome of processing a single item. A failed fetch
// or extraction is not an error of the batch: Text is empty, Err records
// the cause, and the output file is still written. This makes the
// always-continue contract explicit in the type rather than relying on
// callers to swallow errors.
type ItemResult struct {
	Item     Item
	Filename string
	Text     string
	Err      error
}

// Failed reports whether the item yielded its text through a failure path.
func (r *ItemResult) Failed() bool {
	return r.Err != nil
}
