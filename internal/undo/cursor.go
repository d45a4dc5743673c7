package undo

// skipBoundaries returns the position below any boundary sentinels
// directly under pos.
func skipBoundaries(h Host, pos int) int {
	for pos > 0 && h.Boundary(pos-1) {
		pos--
	}
	return pos
}

// nextGroupBoundary returns the position reached by undoing one change
// group from pos: past leading boundaries, past the group's entries,
// then past the separators below it.
func nextGroupBoundary(h Host, pos int) int {
	pos = skipBoundaries(h, pos)
	for pos > 0 && !h.Boundary(pos-1) {
		pos--
	}
	return skipBoundaries(h, pos)
}

// atRedoEquivalent reports whether the host's current position, after
// skipping boundary sentinels, has a recorded redo equivalence.
func atRedoEquivalent(h Host) bool {
	_, ok := h.Equivalence(skipBoundaries(h, h.LogCursor()))
	return ok
}
