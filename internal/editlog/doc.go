// Package editlog provides the host side of the undo controller: a
// linear edit-history log, the text buffer it describes, and the session
// primitives that apply or re-apply recorded edits.
//
// # Log positions
//
// The log is an ordered sequence of entries, oldest first. Edit entries
// are grouped into change groups separated by boundary sentinels. A
// position p refers to the state in which exactly entries[:p] are applied
// to the buffer; the log cursor is the position matching the buffer's
// present contents.
//
// Undoing a group moves the cursor down past the group, applying each
// entry's inverse, and records an equivalence: the landing position maps
// back to the position the undo started from. Redo walks the equivalence
// back up, re-applying the recorded entries. The equivalence table is
// what lets a controller distinguish "this state was produced by an undo"
// from ordinary history.
//
// # Sessions
//
// A Session ties a Buffer and a Log together with the selection state and
// the command-identity channel a controller needs. It is the concrete
// implementation of the controller's Host interface.
package editlog
