package urltext

// Confirmer asks the user a yes/no question and reports the answer.
// It exists so interactive prompts stay out of the batch pipeline;
// non-interactive callers inject an implementation that answers without
// touching a terminal.
type Confirmer interface {
	Confirm(prompt string) bool
}
