// Package main is a small terminal scratchpad demonstrating the
// checkpoint-constrained undo controller. Type to edit; Ctrl-Z undoes,
// Ctrl-Y redoes, Ctrl-R redoes as far as the checkpoint allows, Ctrl-G
// is the cancel gesture that steps over the checkpoint, Ctrl-Space sets
// the selection mark, Esc clears it, Ctrl-Q quits.
package main

import (
	"flag"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/strandedit/rewind/internal/config"
	"github.com/strandedit/rewind/internal/editlog"
	"github.com/strandedit/rewind/internal/workspace"
)

// Version information (set via ldflags during build).
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "rewind.toml", "path to the configuration file")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("rewind", version)
		return 0
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	ws := workspace.New(cfg)
	doc := ws.Open("scratch", "")

	if watcher, err := config.Watch(*configPath, ws.Reconfigure); err == nil {
		defer watcher.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init screen: %v\n", err)
		return 1
	}
	defer screen.Fini()

	ed := newEditor(screen, doc)
	ed.loop()
	return 0
}

type editor struct {
	screen tcell.Screen
	doc    *workspace.Document

	mark    int
	hasMark bool
	status  string
}

func newEditor(screen tcell.Screen, doc *workspace.Document) *editor {
	ed := &editor{screen: screen, doc: doc}
	doc.Session().SetNotify(func(msg string) {
		ed.status = msg
	})
	return ed
}

func (ed *editor) loop() {
	for {
		ed.draw()
		ev := ed.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			ed.screen.Sync()
		case *tcell.EventKey:
			if !ed.handleKey(ev) {
				return
			}
		}
	}
}

// handleKey dispatches one key event; false means quit.
func (ed *editor) handleKey(ev *tcell.EventKey) bool {
	session := ed.doc.Session()
	ctl := ed.doc.Undo()

	switch ev.Key() {
	case tcell.KeyCtrlQ, tcell.KeyCtrlC:
		return false
	case tcell.KeyCtrlZ:
		_ = ctl.Undo(1)
	case tcell.KeyCtrlY:
		_ = ctl.Redo(1)
	case tcell.KeyCtrlR:
		_ = ctl.RedoAll()
	case tcell.KeyCtrlG:
		session.SetLastCommand(editlog.CmdCancel)
		ed.status = "Cancel"
	case tcell.KeyCtrlSpace:
		ed.mark = session.Buffer().Len()
		ed.hasMark = true
		ed.status = "Mark set"
	case tcell.KeyEscape:
		ed.hasMark = false
		session.ClearSelection()
		ed.status = "Mark cleared"
	case tcell.KeyEnter:
		ed.insert("\n")
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		ed.deleteLastRune()
	case tcell.KeyRune:
		ed.insert(string(ev.Rune()))
	}
	return true
}

func (ed *editor) insert(text string) {
	session := ed.doc.Session()
	if err := session.Insert(session.Buffer().Len(), text); err != nil {
		ed.status = err.Error()
		return
	}
	ed.status = ""
	ed.updateSelection()
}

func (ed *editor) deleteLastRune() {
	session := ed.doc.Session()
	text := session.Text()
	if text == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(text)
	if err := session.Delete(len(text)-size, len(text)); err != nil {
		ed.status = err.Error()
		return
	}
	ed.status = ""
	ed.updateSelection()
}

// updateSelection keeps the selection anchored at the mark and extended
// to the end of the buffer.
func (ed *editor) updateSelection() {
	session := ed.doc.Session()
	if !ed.hasMark {
		return
	}
	end := session.Buffer().Len()
	if ed.mark > end {
		ed.mark = end
	}
	session.SetSelection(ed.mark, end)
}

func (ed *editor) draw() {
	ed.screen.Clear()
	width, height := ed.screen.Size()
	if width == 0 || height == 0 {
		return
	}

	plain := tcell.StyleDefault
	selected := tcell.StyleDefault.Reverse(true)

	session := ed.doc.Session()
	text := session.Text()

	x, y := 0, 0
	for i, r := range text {
		if y >= height-1 {
			break
		}
		if r == '\n' {
			x, y = 0, y+1
			continue
		}
		style := plain
		if ed.hasMark && session.HasSelection() && i >= ed.mark {
			style = selected
		}
		ed.screen.SetContent(x, y, r, nil, style)
		x++
		if x >= width {
			x, y = 0, y+1
		}
	}

	ed.drawStatus(width, height-1)
	ed.screen.Show()
}

func (ed *editor) drawStatus(width, row int) {
	st := ed.doc.Undo().State()
	flags := "checkpoint"
	if !st.Respect {
		flags = "override"
	}
	if st.InRegion {
		flags += " region"
	}
	line := fmt.Sprintf(" %s | cursor %d | %s", flags, ed.doc.Session().LogCursor(), ed.status)

	style := tcell.StyleDefault.Reverse(true)
	for x := 0; x < width; x++ {
		r := ' '
		if x < len(line) {
			r = rune(line[x])
		}
		ed.screen.SetContent(x, row, r, nil, style)
	}
}
