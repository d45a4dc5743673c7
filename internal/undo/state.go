package undo

// State holds the per-document checkpoint flags. One instance lives for
// each open document and is dropped when the document closes.
type State struct {
	// Respect reports whether the checkpoint constraint is enforced.
	Respect bool

	// InRegion reports whether the active undo run was scoped to a
	// selection. Only set while performing an undo with an active
	// selection and selection-scoped undo enabled.
	InRegion bool
}

// NewState returns the default state: constraint enforced, no region.
func NewState() State {
	return State{Respect: true}
}

// Reset restores the defaults.
func (s *State) Reset() {
	*s = NewState()
}
