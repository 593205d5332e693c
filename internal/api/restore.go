package api

import (
	"sync"

	"github.com/ross/mindnotes/internal/models"
)

// pendingRestore is the one-shot "pending delete, offer restore" buffer.
// It holds at most one note: each new delete overwrites the slot, a restore
// empties it. This is transient presentation state and is never persisted.
type pendingRestore struct {
	mu   sync.Mutex
	note *models.Note
}

func (p *pendingRestore) set(n *models.Note) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.note = n
}

// take empties the slot and returns what it held.
func (p *pendingRestore) take() *models.Note {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := p.note
	p.note = nil
	return n
}
