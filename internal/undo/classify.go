package undo

// classification is the run-continuity verdict for one invocation.
type classification struct {
	wasUndo   bool
	wasRedo   bool
	wasCancel bool

	// fresh means the previous command was unrelated: this invocation
	// starts a new run.
	fresh bool
}

// classify reads the previous command identity and updates the
// checkpoint state: a fresh command re-enables enforcement that an
// earlier override disabled, so overrides never leak past the run that
// requested them. It also forgets the previous run's checkpoint and
// pending-redo cursor.
func (c *Controller) classify() classification {
	prev := c.host.LastCommand()
	cl := classification{
		wasUndo:   prev == CmdPlainUndo || prev == CmdUndo,
		wasRedo:   prev == CmdRedo,
		wasCancel: prev == CmdCancel,
	}
	cl.fresh = !cl.wasUndo && !cl.wasRedo && !cl.wasCancel
	if cl.fresh {
		if !c.state.Respect {
			c.state.Respect = true
			if c.allowInRegion {
				c.state.InRegion = false
			}
		}
		c.hasRunStart = false
		c.hasPendingRedo = false
	}
	return cl
}

// override disables checkpoint enforcement for the rest of the run.
func (c *Controller) override() {
	c.state.Respect = false
	c.state.InRegion = false
}
