package state

import "github.com/oliverbestmann/cadence/event"

type bindingState uint8

const (
	unbound bindingState = iota
	bound
)

// binding moves from unbound to bound exactly once, on the first
// call to accept, and never back.
type binding struct {
	state bindingState
	id    event.WindowID
}

func boundTo(id event.WindowID) binding {
	return binding{state: bound, id: id}
}

// accept reports whether an event of the given window should be applied.
func (b *binding) accept(id event.WindowID) bool {
	switch b.state {
	case unbound:
		b.state = bound
		b.id = id
		return true

	default:
		return b.id == id
	}
}

func (b binding) get() (event.WindowID, bool) {
	return b.id, b.state == bound
}
