// SPDX-License-Identifier: MIT

package filtration

// Option configures a Filtration at construction.
type Option func(*config)

type config struct {
	observer Observer
}

// WithObserver attaches an Observer. A nil observer is ignored.
func WithObserver(o Observer) Option {
	return func(c *config) { c.observer = o }
}

func gatherOptions(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// nopObserver keeps the insertion path branch-free.
type nopObserver struct{}

func (nopObserver) CellInserted(int, int)  {}
func (nopObserver) CellDuplicate(int, int) {}
func (nopObserver) CellRejected(int, error) {}

// Observers fans events out to every non-nil o, in order.
func Observers(obs ...Observer) Observer {
	var fan multiObserver
	for _, o := range obs {
		if o != nil {
			fan = append(fan, o)
		}
	}

	return fan
}

type multiObserver []Observer

func (m multiObserver) CellInserted(dim, index int) {
	for _, o := range m {
		o.CellInserted(dim, index)
	}
}

func (m multiObserver) CellDuplicate(dim, index int) {
	for _, o := range m {
		o.CellDuplicate(dim, index)
	}
}

func (m multiObserver) CellRejected(dim int, err error) {
	for _, o := range m {
		o.CellRejected(dim, err)
	}
}
