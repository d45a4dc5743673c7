package editlog

import (
	"errors"
	"testing"
)

func TestBufferReplace(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		start   int
		end     int
		repl    string
		want    string
		wantErr bool
	}{
		{name: "insert at start", initial: "world", start: 0, end: 0, repl: "hello ", want: "hello world"},
		{name: "insert at end", initial: "hello", start: 5, end: 5, repl: "!", want: "hello!"},
		{name: "delete middle", initial: "hello world", start: 5, end: 11, repl: "", want: "hello"},
		{name: "replace range", initial: "hello world", start: 6, end: 11, repl: "there", want: "hello there"},
		{name: "negative start", initial: "abc", start: -1, end: 0, repl: "x", wantErr: true},
		{name: "end before start", initial: "abc", start: 2, end: 1, repl: "x", wantErr: true},
		{name: "end past length", initial: "abc", start: 0, end: 4, repl: "x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := NewBuffer(tt.initial)
			err := buf.Replace(tt.start, tt.end, tt.repl)
			if tt.wantErr {
				if !errors.Is(err, ErrOutOfRange) {
					t.Fatalf("Replace() error = %v, want ErrOutOfRange", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Replace() error = %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("buffer = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEntryIntersects(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		start int
		end   int
		want  bool
	}{
		{name: "deletion inside range", entry: DeleteEntry(5, "abc"), start: 0, end: 10, want: true},
		{name: "deletion outside range", entry: DeleteEntry(5, "abc"), start: 10, end: 20, want: false},
		{name: "deletion overlapping edge", entry: DeleteEntry(5, "abc"), start: 7, end: 12, want: true},
		{name: "insertion inside range", entry: InsertEntry(5, "abc"), start: 0, end: 10, want: true},
		{name: "insertion at range end", entry: InsertEntry(10, "abc"), start: 0, end: 10, want: true},
		{name: "insertion past range", entry: InsertEntry(11, "abc"), start: 0, end: 10, want: false},
		{name: "boundary never intersects", entry: BoundaryEntry(), start: 0, end: 100, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.intersects(tt.start, tt.end); got != tt.want {
				t.Errorf("intersects(%d, %d) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestLogRecordSeparatesGroups(t *testing.T) {
	log := NewLog()
	log.Record(InsertEntry(0, "abc"))
	log.Record(InsertEntry(3, "def"))

	if log.Len() != 3 {
		t.Fatalf("Len() = %d, want 3 (two edits plus a boundary)", log.Len())
	}
	if log.Boundary(0) || !log.Boundary(1) || log.Boundary(2) {
		t.Errorf("boundary layout wrong: [%v %v %v], want [false true false]",
			log.Boundary(0), log.Boundary(1), log.Boundary(2))
	}
	if log.Cursor() != 3 {
		t.Errorf("Cursor() = %d, want 3", log.Cursor())
	}
}

func TestLogRecordTruncatesDeadHistory(t *testing.T) {
	s := NewSession("")
	mustInsert(t, s, 0, "abc")
	mustInsert(t, s, 3, "def")

	if _, err := s.UndoEdits(1, ModeLinear); err != nil {
		t.Fatalf("UndoEdits() error = %v", err)
	}
	if _, ok := s.Equivalence(1); !ok {
		t.Fatal("expected an equivalence at the undo landing position")
	}

	// A fresh edit below the old top rewrites history above the cursor
	// and invalidates redo targets pointing into it.
	mustInsert(t, s, 1, "X")

	if got := s.Text(); got != "aXbc" {
		t.Errorf("Text() = %q, want %q", got, "aXbc")
	}
	if _, ok := s.Equivalence(1); ok {
		t.Error("stale equivalence survived history truncation")
	}
	if s.LogCursor() != s.Log().Len() {
		t.Errorf("cursor = %d, want top of log %d", s.LogCursor(), s.Log().Len())
	}
}

func TestSessionUndoRedoRoundTrip(t *testing.T) {
	s := NewSession("")
	mustInsert(t, s, 0, "abc")
	mustInsert(t, s, 3, "def")

	n, err := s.UndoEdits(1, ModeLinear)
	if err != nil || n != 1 {
		t.Fatalf("UndoEdits() = %d, %v, want 1, nil", n, err)
	}
	if got := s.Text(); got != "abc" {
		t.Fatalf("after undo Text() = %q, want %q", got, "abc")
	}

	n, err = s.UndoEdits(1, ModeLinear)
	if err != nil || n != 1 {
		t.Fatalf("second UndoEdits() = %d, %v, want 1, nil", n, err)
	}
	if got := s.Text(); got != "" {
		t.Fatalf("after second undo Text() = %q, want empty", got)
	}

	if _, err := s.UndoEdits(1, ModeLinear); !errors.Is(err, ErrNothingToUndo) {
		t.Fatalf("UndoEdits() at log bottom error = %v, want ErrNothingToUndo", err)
	}

	target, ok := s.Equivalence(s.LogCursor())
	if !ok {
		t.Fatal("no equivalence at cursor after undo")
	}
	if err := s.RedoEdits(target); err != nil {
		t.Fatalf("RedoEdits() error = %v", err)
	}
	if got := s.Text(); got != "abc" {
		t.Errorf("after redo Text() = %q, want %q", got, "abc")
	}

	target, ok = s.Equivalence(s.LogCursor())
	if !ok {
		t.Fatal("no equivalence at cursor after first redo")
	}
	if err := s.RedoEdits(target); err != nil {
		t.Fatalf("RedoEdits() error = %v", err)
	}
	if got := s.Text(); got != "abcdef" {
		t.Errorf("after second redo Text() = %q, want %q", got, "abcdef")
	}
}

func TestSessionUndoMultipleGroups(t *testing.T) {
	s := NewSession("")
	mustInsert(t, s, 0, "a")
	mustInsert(t, s, 1, "b")
	mustInsert(t, s, 2, "c")

	n, err := s.UndoEdits(2, ModeLinear)
	if err != nil || n != 2 {
		t.Fatalf("UndoEdits(2) = %d, %v, want 2, nil", n, err)
	}
	if got := s.Text(); got != "a" {
		t.Errorf("Text() = %q, want %q", got, "a")
	}

	// A request past the log bottom undoes what it can.
	n, err = s.UndoEdits(5, ModeLinear)
	if err != nil || n != 1 {
		t.Fatalf("UndoEdits(5) = %d, %v, want 1, nil", n, err)
	}
	if got := s.Text(); got != "" {
		t.Errorf("Text() = %q, want empty", got)
	}
}

func TestSessionSelectionScopedUndo(t *testing.T) {
	s := NewSession("")
	mustInsert(t, s, 0, "hello ")
	mustInsert(t, s, 6, "world")

	// Selection over the first group only: the top group does not touch
	// it, so selection-scoped undo finds nothing.
	s.SetSelection(0, 3)
	if _, err := s.UndoEdits(1, ModeSelection); !errors.Is(err, ErrNothingToUndo) {
		t.Fatalf("UndoEdits() error = %v, want ErrNothingToUndo", err)
	}
	if got := s.Text(); got != "hello world" {
		t.Errorf("Text() = %q, want untouched buffer", got)
	}

	// Selection over the top group: it is undone, then the walk stops at
	// the first group outside the selection.
	s.SetSelection(8, 9)
	n, err := s.UndoEdits(2, ModeSelection)
	if err != nil || n != 1 {
		t.Fatalf("UndoEdits(2) = %d, %v, want 1, nil", n, err)
	}
	if got := s.Text(); got != "hello " {
		t.Errorf("Text() = %q, want %q", got, "hello ")
	}
}

func TestSessionEditResetsCommandIdentity(t *testing.T) {
	s := NewSession("")
	s.SetLastCommand(CmdRedo)
	mustInsert(t, s, 0, "x")
	if got := s.LastCommand(); got != CmdOther {
		t.Errorf("LastCommand() = %v, want %v", got, CmdOther)
	}
}

func TestSessionNotify(t *testing.T) {
	s := NewSession("")
	var got string
	s.SetNotify(func(msg string) { got = msg })
	s.Notify("Nothing to undo")
	if got != "Nothing to undo" {
		t.Errorf("notify sink got %q", got)
	}
}

func mustInsert(t *testing.T, s *Session, at int, text string) {
	t.Helper()
	if err := s.Insert(at, text); err != nil {
		t.Fatalf("Insert(%d, %q) error = %v", at, text, err)
	}
}
