package mock

import "github.com/fwojciec/urltext"

var _ urltext.Confirmer = (*Confirmer)(nil)

// Confirmer is a mock implementation of urltext.Confirmer.
type Confirmer struct {
	ConfirmFn func(prompt string) bool
}

func (c *Confirmer) Confirm(prompt string) bool {
	return c.ConfirmFn(prompt)
}
