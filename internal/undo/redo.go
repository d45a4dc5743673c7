package undo

// planRedo computes the ordered list of log positions a redo of n steps
// would move through, without mutating anything. Failure conditions are
// checked in order:
//
//  1. the current position was not produced by an undo ("no undo to redo")
//  2. the equivalence chain breaks, fails validation, or disagrees with
//     the pending-redo cursor ("redo step not found")
//  3. the first step would cross the checkpoint while enforcement is
//     active ("redo end-point hit")
//
// When unbounded, the walk clamps at the chain's end or the checkpoint
// instead of failing mid-walk.
func (c *Controller) planRedo(n int, unbounded bool, cl classification) ([]int, error) {
	if !atRedoEquivalent(c.host) {
		return nil, ErrNoUndoToRedo
	}

	var steps []int
	pos := skipBoundaries(c.host, c.host.LogCursor())
	for unbounded || len(steps) < n {
		target, ok := c.host.Equivalence(pos)
		if !ok {
			if !unbounded {
				return nil, ErrRedoStepNotFound
			}
			break
		}
		// Undoing one group from the target must land back here, or the
		// equivalence is stale.
		if nextGroupBoundary(c.host, target) != pos {
			return nil, ErrRedoStepNotFound
		}
		if len(steps) == 0 && cl.wasRedo && c.hasPendingRedo && target != c.pendingRedo {
			return nil, ErrRedoStepNotFound
		}
		if c.state.Respect && c.hasRunStart && target > c.runStart {
			if len(steps) == 0 {
				return nil, ErrRedoEndPointHit
			}
			break
		}
		steps = append(steps, target)
		pos = skipBoundaries(c.host, target)
	}
	return steps, nil
}

// executeRedo applies a validated plan and installs the pending-redo
// cursor for the next call in the run.
func (c *Controller) executeRedo(steps []int) error {
	for _, target := range steps {
		if err := c.host.RedoEdits(target); err != nil {
			return err
		}
	}
	next, ok := c.host.Equivalence(skipBoundaries(c.host, c.host.LogCursor()))
	c.pendingRedo, c.hasPendingRedo = next, ok
	return nil
}
