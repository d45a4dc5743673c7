package undo

// undo performs one undo invocation of n steps. Selection handling comes
// first: with selection-scoped undo enabled, an active selection scopes
// the run and suspends the checkpoint; with it disabled, the selection
// is cleared and the undo covers the whole document. A fresh run plants
// the checkpoint at the current cursor before any log motion.
func (c *Controller) undo(n int, cl classification) error {
	if cl.wasCancel {
		c.override()
		c.host.Notify(msgUndoSteppedOver)
	}

	if c.host.HasSelection() {
		if c.allowInRegion {
			c.host.Notify(msgUndoInRegion)
			c.override()
			c.state.InRegion = true
		} else {
			c.host.ClearSelection()
		}
	}

	if cl.fresh {
		c.runStart = c.host.LogCursor()
		c.hasRunStart = true
	}

	mode := ModeLinear
	if c.state.InRegion {
		mode = ModeSelection
	}
	done, err := c.host.UndoEdits(n, mode)
	if err != nil {
		if done > 0 {
			return err
		}
		// Nothing to undo is a notice, not a failure.
		c.host.Notify(msgNothingToUndo)
	}

	c.hasPendingRedo = false
	c.host.SetLastCommand(CmdUndo)
	return nil
}
