package hanspell

import (
	"sync"

	"github.com/Alfex4936/hanspell/internal/model"
)

// DocumentID identifies an open document, e.g. its URI.
type DocumentID string

// Documents maps open documents to their latest consolidated typo set.
// A set is replaced as a whole; readers keep the slice they got.
type Documents struct {
	mu    sync.RWMutex
	typos map[DocumentID][]*model.Typo
}

// NewDocuments returns an empty store.
func NewDocuments() *Documents {
	return &Documents{typos: make(map[DocumentID][]*model.Typo)}
}

// Set replaces the typo set of id.
func (d *Documents) Set(id DocumentID, typos []*model.Typo) {
	d.mu.Lock()
	d.typos[id] = typos
	d.mu.Unlock()
}

// Get returns the typo set of id. The slice must not be modified.
func (d *Documents) Get(id DocumentID) ([]*model.Typo, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	t, ok := d.typos[id]
	return t, ok
}

// Close forgets id; call it when the document is closed.
func (d *Documents) Close(id DocumentID) {
	d.mu.Lock()
	delete(d.typos, id)
	d.mu.Unlock()
}

// RemoveToken installs a copy of the set of id without token.
func (d *Documents) RemoveToken(id DocumentID, token string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	old, ok := d.typos[id]
	if !ok {
		return
	}
	kept := make([]*model.Typo, 0, len(old))
	for _, t := range old {
		if t.Token != token {
			kept = append(kept, t)
		}
	}
	d.typos[id] = kept
}

// Refresh locates the cached typos of id in text. It never contacts a
// remote service; it is what runs on edits and focus changes.
func (d *Documents) Refresh(id DocumentID, text string) []model.Match {
	typos, _ := d.Get(id)
	return Locate(text, typos)
}
