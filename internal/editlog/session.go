package editlog

import "errors"

// ErrNothingToUndo indicates an undo request with no eligible group below
// the cursor.
var ErrNothingToUndo = errors.New("editlog: nothing to undo")

// Session ties a buffer to its edit log and carries the selection state
// and command-identity channel an undo controller reads. One session per
// open document.
type Session struct {
	buf *Buffer
	log *Log

	selStart int
	selEnd   int
	hasSel   bool

	last   CommandKind
	notify func(string)
}

// NewSession opens a session over a fresh buffer with the given contents.
func NewSession(text string) *Session {
	return &Session{
		buf: NewBuffer(text),
		log: NewLog(),
	}
}

// Buffer returns the session's text buffer.
func (s *Session) Buffer() *Buffer {
	return s.buf
}

// Log returns the session's edit log.
func (s *Session) Log() *Log {
	return s.log
}

// Text returns the buffer contents.
func (s *Session) Text() string {
	return s.buf.String()
}

// Insert applies an insertion at offset at and records it as one change
// group.
func (s *Session) Insert(at int, text string) error {
	if err := s.buf.Replace(at, at, text); err != nil {
		return err
	}
	s.log.Record(InsertEntry(at, text))
	s.last = CmdOther
	return nil
}

// Delete removes [start, end) and records it as one change group.
func (s *Session) Delete(start, end int) error {
	old, err := s.buf.Text(start, end)
	if err != nil {
		return err
	}
	if err := s.buf.Replace(start, end, ""); err != nil {
		return err
	}
	s.log.Record(DeleteEntry(start, old))
	s.last = CmdOther
	return nil
}

// Replace substitutes [start, end) with repl and records it as one change
// group.
func (s *Session) Replace(start, end int, repl string) error {
	old, err := s.buf.Text(start, end)
	if err != nil {
		return err
	}
	if err := s.buf.Replace(start, end, repl); err != nil {
		return err
	}
	s.log.Record(ReplaceEntry(start, old, repl))
	s.last = CmdOther
	return nil
}

// LogCursor returns the log position matching the buffer's present state.
func (s *Session) LogCursor() int {
	return s.log.Cursor()
}

// Boundary reports whether the log entry at index i is a group separator.
func (s *Session) Boundary(i int) bool {
	return s.log.Boundary(i)
}

// Equivalence looks up the redo target recorded for pos.
func (s *Session) Equivalence(pos int) (int, bool) {
	return s.log.Equivalence(pos)
}

// UndoEdits undoes up to n change groups below the cursor and returns how
// many it undid. In selection mode it stops at the first group that does
// not touch the selection. Each undone group records an equivalence from
// the landing position back to the position it started from.
func (s *Session) UndoEdits(n int, mode Mode) (int, error) {
	done := 0
	for done < n {
		pos := s.log.Cursor()
		if s.log.skipBoundaries(pos) == 0 {
			break
		}
		target := s.log.nextGroupBoundary(pos)
		if mode == ModeSelection && !s.groupTouchesSelection(target, pos) {
			break
		}
		for i := pos - 1; i >= target; i-- {
			e := s.log.Entry(i)
			if e.Boundary {
				continue
			}
			if err := e.invert(s.buf); err != nil {
				return done, err
			}
		}
		s.log.recordEquivalence(target, pos)
		s.log.cursor = target
		done++
	}
	if done == 0 && n > 0 {
		return 0, ErrNothingToUndo
	}
	return done, nil
}

// RedoEdits re-applies the entries between the cursor and target, moving
// the cursor up to target. The caller is responsible for having validated
// target against the equivalence table.
func (s *Session) RedoEdits(target int) error {
	for i := s.log.Cursor(); i < target; i++ {
		e := s.log.Entry(i)
		if e.Boundary {
			continue
		}
		if err := e.apply(s.buf); err != nil {
			return err
		}
	}
	s.log.cursor = target
	return nil
}

// groupTouchesSelection reports whether any edit in entries[lo:hi)
// intersects the active selection.
func (s *Session) groupTouchesSelection(lo, hi int) bool {
	if !s.hasSel {
		return false
	}
	for i := lo; i < hi; i++ {
		if s.log.Entry(i).intersects(s.selStart, s.selEnd) {
			return true
		}
	}
	return false
}

// SetSelection activates a selection over [start, end).
func (s *Session) SetSelection(start, end int) {
	s.selStart, s.selEnd = start, end
	s.hasSel = true
}

// HasSelection reports whether a selection is active.
func (s *Session) HasSelection() bool {
	return s.hasSel
}

// ClearSelection deactivates the selection.
func (s *Session) ClearSelection() {
	s.hasSel = false
	s.selStart, s.selEnd = 0, 0
}

// LastCommand returns the identity of the previously executed command.
func (s *Session) LastCommand() CommandKind {
	return s.last
}

// SetLastCommand records the identity of the command just executed.
func (s *Session) SetLastCommand(k CommandKind) {
	s.last = k
}

// SetNotify installs the sink for user-facing messages.
func (s *Session) SetNotify(fn func(string)) {
	s.notify = fn
}

// Notify forwards msg to the installed sink, if any.
func (s *Session) Notify(msg string) {
	if s.notify != nil {
		s.notify(msg)
	}
}
