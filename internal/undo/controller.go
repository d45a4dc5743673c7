package undo

// User-facing notices. Each is emitted at most once per invocation.
const (
	msgNoUndoToRedo    = "Redo: no undo to redo"
	msgRedoNotFound    = "Redo step not found"
	msgRedoEndPoint    = "Redo end-point hit (cancel to step over it)"
	msgRedoSteppedOver = "Redo end-point stepped over"
	msgUndoSteppedOver = "Undo end-point stepped over"
	msgUndoInRegion    = "Undo in region in use; end-point ignored"
	msgNothingToUndo   = "Nothing to undo"
)

// Controller is the per-document undo/redo facade. It owns the
// checkpoint state and the run bookkeeping; everything else lives in
// the host. Not safe for concurrent use: invocations arrive from a
// single sequential command stream.
type Controller struct {
	host          Host
	allowInRegion bool

	state State

	// runStart is the log cursor where the current undo run began; the
	// checkpoint redo may not cross while enforcement is active.
	runStart    int
	hasRunStart bool

	// pendingRedo is the next redo target expected by a continuing run.
	pendingRedo    int
	hasPendingRedo bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithSelectionUndo permits selection-scoped undo. When disabled, an
// active selection is cleared before undoing instead of scoping it.
func WithSelectionUndo(enabled bool) Option {
	return func(c *Controller) {
		c.allowInRegion = enabled
	}
}

// New creates a controller over the given host.
func New(host Host, opts ...Option) *Controller {
	c := &Controller{
		host:  host,
		state: NewState(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns a copy of the current checkpoint state.
func (c *Controller) State() State {
	return c.state
}

// Undo steps backward through history. A non-positive count means one
// step. Running out of history is reported to the host as a notice and
// is not an error.
func (c *Controller) Undo(steps int) error {
	if steps <= 0 {
		steps = 1
	}
	cl := c.classify()
	return c.undo(steps, cl)
}

// Redo steps forward along the equivalence chain. A non-positive count
// means one step. Failures are reported to the host as notices and
// returned; no log motion happens on a failed call.
func (c *Controller) Redo(steps int) error {
	if steps <= 0 {
		steps = 1
	}
	return c.redo(steps, false)
}

// RedoAll steps forward as far as the equivalence chain and the
// checkpoint allow.
func (c *Controller) RedoAll() error {
	return c.redo(0, true)
}

func (c *Controller) redo(n int, unbounded bool) error {
	cl := c.classify()
	if cl.wasCancel {
		c.override()
		c.host.Notify(msgRedoSteppedOver)
	}

	plan, err := c.planRedo(n, unbounded, cl)
	if err != nil {
		c.host.Notify(redoNotice(err))
		return err
	}
	if err := c.executeRedo(plan); err != nil {
		return err
	}

	c.host.SetLastCommand(CmdRedo)
	return nil
}

func redoNotice(err error) string {
	switch err {
	case ErrNoUndoToRedo:
		return msgNoUndoToRedo
	case ErrRedoStepNotFound:
		return msgRedoNotFound
	case ErrRedoEndPointHit:
		return msgRedoEndPoint
	default:
		return err.Error()
	}
}
