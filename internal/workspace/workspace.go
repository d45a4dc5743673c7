// Package workspace tracks open documents and wires each one to its own
// undo controller. Controller state lives exactly as long as the
// document: closing a document drops its checkpoint state with it.
package workspace

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/strandedit/rewind/internal/config"
	"github.com/strandedit/rewind/internal/editlog"
	"github.com/strandedit/rewind/internal/undo"
)

// ErrUnknownDocument indicates an ID with no open document behind it.
var ErrUnknownDocument = errors.New("workspace: unknown document")

// Document is one open buffer with its session and undo controller.
type Document struct {
	id      uuid.UUID
	name    string
	session *editlog.Session
	ctl     *undo.Controller
}

// ID returns the document's identifier.
func (d *Document) ID() uuid.UUID {
	return d.id
}

// Name returns the display name the document was opened with.
func (d *Document) Name() string {
	return d.name
}

// Session returns the document's edit session.
func (d *Document) Session() *editlog.Session {
	return d.session
}

// Undo returns the document's undo controller.
func (d *Document) Undo() *undo.Controller {
	return d.ctl
}

// Workspace is the registry of open documents.
type Workspace struct {
	mu   sync.RWMutex
	cfg  config.Config
	docs map[uuid.UUID]*Document
}

// New creates an empty workspace using cfg for documents opened later.
func New(cfg config.Config) *Workspace {
	return &Workspace{
		cfg:  cfg,
		docs: make(map[uuid.UUID]*Document),
	}
}

// Reconfigure replaces the configuration applied to future opens.
// Already-open documents keep the configuration they were opened with.
func (w *Workspace) Reconfigure(cfg config.Config) {
	w.mu.Lock()
	w.cfg = cfg
	w.mu.Unlock()
}

// Open creates a document over the given initial text and registers it.
func (w *Workspace) Open(name, text string) *Document {
	w.mu.Lock()
	defer w.mu.Unlock()

	session := editlog.NewSession(text)
	doc := &Document{
		id:      uuid.New(),
		name:    name,
		session: session,
		ctl:     undo.New(session, undo.WithSelectionUndo(w.cfg.Undo.SelectionUndo)),
	}
	w.docs[doc.id] = doc
	return doc
}

// Get looks up an open document by ID.
func (w *Workspace) Get(id uuid.UUID) (*Document, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	doc, ok := w.docs[id]
	if !ok {
		return nil, ErrUnknownDocument
	}
	return doc, nil
}

// Close drops the document and its undo state.
func (w *Workspace) Close(id uuid.UUID) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.docs[id]; !ok {
		return ErrUnknownDocument
	}
	delete(w.docs, id)
	return nil
}

// Len returns the number of open documents.
func (w *Workspace) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.docs)
}
