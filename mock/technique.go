package mock

import "github.com/fwojciec/pagemeta"

var _ pagemeta.Technique = (*Technique)(nil)

// Technique is a mock implementation of pagemeta.Technique.
type Technique struct {
	ExtractFn func(html string) (*pagemeta.Result, error)
	NameFn    func() string
}

func (t *Technique) Extract(html string) (*pagemeta.Result, error) {
	return t.ExtractFn(html)
}

func (t *Technique) Name() string {
	if t.NameFn != nil {
		return t.NameFn()
	}
	return "mock"
}
