package editlog

// Mode selects how far an undo or redo reaches into the buffer.
type Mode int

const (
	// ModeLinear operates on whole change groups regardless of position.
	ModeLinear Mode = iota
	// ModeSelection restricts undo to groups intersecting the selection.
	ModeSelection
)

// CommandKind identifies the command a session last executed. The undo
// controller reads it to decide whether the current invocation continues
// a run of history commands or starts a fresh one.
type CommandKind int

const (
	// CmdOther is any command the controller does not track.
	CmdOther CommandKind = iota
	// CmdPlainUndo is an unconstrained undo outside a run.
	CmdPlainUndo
	// CmdUndo is an undo issued inside a checkpoint-constrained run.
	CmdUndo
	// CmdRedo is a redo issued by the controller.
	CmdRedo
	// CmdCancel is the cancel command, used to override constraints.
	CmdCancel
)

func (k CommandKind) String() string {
	switch k {
	case CmdPlainUndo:
		return "plain-undo"
	case CmdUndo:
		return "undo"
	case CmdRedo:
		return "redo"
	case CmdCancel:
		return "cancel"
	default:
		return "other"
	}
}
