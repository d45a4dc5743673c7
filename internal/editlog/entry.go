package editlog

// Entry is a single record in the edit log: either one edit (the text in
// [Start:End) was replaced by NewText) or a boundary sentinel separating
// change groups.
type Entry struct {
	// Boundary marks a group separator. Boundary entries carry no edit.
	Boundary bool

	// Start and End delimit the replaced range, in bytes, against the
	// buffer state at the time the edit was applied. End-Start equals
	// len(OldText).
	Start int
	End   int

	// OldText is the text that was replaced; NewText is what replaced it.
	OldText string
	NewText string
}

// BoundaryEntry returns a group separator.
func BoundaryEntry() Entry {
	return Entry{Boundary: true}
}

// InsertEntry records an insertion of text at offset at.
func InsertEntry(at int, text string) Entry {
	return Entry{Start: at, End: at, NewText: text}
}

// DeleteEntry records a deletion of text occupying [at, at+len(text)).
func DeleteEntry(at int, text string) Entry {
	return Entry{Start: at, End: at + len(text), OldText: text}
}

// ReplaceEntry records old being replaced by repl in [at, at+len(old)).
func ReplaceEntry(at int, old, repl string) Entry {
	return Entry{Start: at, End: at + len(old), OldText: old, NewText: repl}
}

// apply re-applies the edit to buf (the redo direction).
func (e Entry) apply(buf *Buffer) error {
	return buf.Replace(e.Start, e.End, e.NewText)
}

// invert applies the inverse edit to buf (the undo direction).
func (e Entry) invert(buf *Buffer) error {
	return buf.Replace(e.Start, e.Start+len(e.NewText), e.OldText)
}

// intersects reports whether the edit touches the byte range [start, end).
// Zero-width edits (pure insertions) intersect when the insertion point
// lies inside the range.
func (e Entry) intersects(start, end int) bool {
	if e.Boundary {
		return false
	}
	lo, hi := e.Start, e.End
	if hi < e.Start+len(e.NewText) {
		hi = e.Start + len(e.NewText)
	}
	if lo == hi {
		return lo >= start && lo <= end
	}
	return lo < end && hi > start
}
