package undo

import "github.com/strandedit/rewind/internal/editlog"

// Mode selects how far an undo reaches into the buffer.
type Mode = editlog.Mode

const (
	ModeLinear    = editlog.ModeLinear
	ModeSelection = editlog.ModeSelection
)

// CommandKind identifies a command on the host's run-continuity channel.
type CommandKind = editlog.CommandKind

const (
	CmdOther     = editlog.CmdOther
	CmdPlainUndo = editlog.CmdPlainUndo
	CmdUndo      = editlog.CmdUndo
	CmdRedo      = editlog.CmdRedo
	CmdCancel    = editlog.CmdCancel
)

// Host is the editor environment the controller operates against. The
// controller owns none of it: the log, the equivalence mapping, the
// selection and the notification channel all belong to the host.
//
// UndoEdits returns how many groups it undid; a non-nil error with a
// zero count means there was nothing to undo, which the controller
// treats as non-fatal. RedoEdits re-applies history up to a target the
// controller has already validated against the equivalence mapping.
type Host interface {
	LogCursor() int
	Boundary(i int) bool
	Equivalence(pos int) (int, bool)

	UndoEdits(n int, mode Mode) (int, error)
	RedoEdits(target int) error

	HasSelection() bool
	ClearSelection()

	Notify(msg string)

	LastCommand() CommandKind
	SetLastCommand(k CommandKind)
}
