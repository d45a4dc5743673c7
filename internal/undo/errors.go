package undo

import "errors"

var (
	// ErrNoUndoToRedo indicates the current log position was not produced
	// by an undo, so there is nothing to redo.
	ErrNoUndoToRedo = errors.New("undo: no undo to redo")

	// ErrRedoStepNotFound indicates the equivalence chain does not supply
	// a valid forward step for the requested redo.
	ErrRedoStepNotFound = errors.New("undo: redo step not found")

	// ErrRedoEndPointHit indicates the redo reached the checkpoint where
	// the undo run began; crossing it requires the cancel override.
	ErrRedoEndPointHit = errors.New("undo: redo end-point hit")
)
