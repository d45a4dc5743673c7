// Package undo implements a checkpoint-constrained redo/undo controller
// over an externally owned edit-history log.
//
// The controller lets a user step backward through edits and forward
// again along a single linear history, while normally refusing to let
// redo walk past the position where the current undo run began (the
// checkpoint). An explicit cancel gesture overrides the constraint for
// the remainder of the run; the first unrelated command restores it.
//
// # Runs
//
// A run is an unbroken sequence of undo and redo invocations. Continuity
// is observed through the host's command-identity channel: each
// invocation reads the identity of the previous command to classify
// itself as a continuation or a fresh start. A fresh undo plants the
// checkpoint at the current log cursor; a fresh command of any other
// kind re-enables enforcement disabled by an earlier override.
//
// # Redo validity
//
// Whether a forward step exists at all is only knowable through the
// host's equivalence mapping, which records for each post-undo position
// the position the undo was performed from. Redo walks that mapping
// upward, validating each step, and refuses positions above the
// checkpoint while enforcement is active.
//
// The controller mutates nothing until every precondition of an
// invocation has passed; failures are reported through the host's
// notification channel and are never fatal.
package undo
