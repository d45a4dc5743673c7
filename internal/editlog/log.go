package editlog

// Log is the edit-history log for one document. Entries are stored oldest
// first and the storage only ever grows at the top, except that recording
// a fresh edit while the cursor sits below the top discards the dead
// region above it (history that was undone and then diverged from).
type Log struct {
	entries []Entry
	cursor  int

	// equiv maps an undo landing position to the position the undo was
	// performed from. A position with an equivalence entry is one whose
	// buffer state was produced by undoing; following the value re-applies
	// exactly one change group.
	equiv map[int]int
}

// NewLog creates an empty log with the cursor at position zero.
func NewLog() *Log {
	return &Log{equiv: make(map[int]int)}
}

// Len returns the number of stored entries.
func (l *Log) Len() int {
	return len(l.entries)
}

// Cursor returns the position matching the buffer's present state.
func (l *Log) Cursor() int {
	return l.cursor
}

// Boundary reports whether the entry at index i is a group separator.
func (l *Log) Boundary(i int) bool {
	return l.entries[i].Boundary
}

// Entry returns the entry at index i.
func (l *Log) Entry(i int) Entry {
	return l.entries[i]
}

// Equivalence looks up the redo target recorded for pos.
func (l *Log) Equivalence(pos int) (int, bool) {
	target, ok := l.equiv[pos]
	return target, ok
}

// Record appends one change group: any dead history above the cursor is
// discarded, a boundary is added if the top entry is not already one, and
// the given edits become the new top group. Equivalences whose target
// falls in the discarded region are dropped with it.
func (l *Log) Record(edits ...Entry) {
	if l.cursor < len(l.entries) {
		l.entries = l.entries[:l.cursor]
	}
	for pos, target := range l.equiv {
		if target > l.cursor || pos > l.cursor {
			delete(l.equiv, pos)
		}
	}
	if len(l.entries) > 0 && !l.entries[len(l.entries)-1].Boundary {
		l.entries = append(l.entries, BoundaryEntry())
	}
	l.entries = append(l.entries, edits...)
	l.cursor = len(l.entries)
}

// recordEquivalence notes that landing was reached by undoing from start.
func (l *Log) recordEquivalence(landing, start int) {
	l.equiv[landing] = start
}

// skipBoundaries returns the position below any boundary sentinels
// directly under pos.
func (l *Log) skipBoundaries(pos int) int {
	for pos > 0 && l.entries[pos-1].Boundary {
		pos--
	}
	return pos
}

// nextGroupBoundary returns the position reached by undoing one more
// change group from pos: past any leading boundaries, past the group's
// entries, then past the separators below it.
func (l *Log) nextGroupBoundary(pos int) int {
	pos = l.skipBoundaries(pos)
	for pos > 0 && !l.entries[pos-1].Boundary {
		pos--
	}
	return l.skipBoundaries(pos)
}
