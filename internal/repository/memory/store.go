// Package memory implements the repositories in process memory. It backs
// tests and STORE=memory development runs; nothing survives a restart.
package memory

import (
	"sort"
	"sync"
	"time"
)

// namedRecord is a folder or tag row.
type namedRecord struct {
	id        string
	name      string
	createdAt time.Time
	updatedAt time.Time
}

// Store holds every collection behind one lock, so each repository call is
// atomic with respect to the others.
type Store struct {
	mu      sync.RWMutex
	folders *namedCollection
	tags    *namedCollection
	notes   map[string]*noteRecord
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{
		folders: newNamedCollection(),
		tags:    newNamedCollection(),
		notes:   make(map[string]*noteRecord),
	}
}

// Reset drops every folder, tag and note.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.folders = newNamedCollection()
	s.tags = newNamedCollection()
	s.notes = make(map[string]*noteRecord)
}

// namedCollection keeps records by id plus a unique index on name.
type namedCollection struct {
	byID   map[string]*namedRecord
	byName map[string]string
}

func newNamedCollection() *namedCollection {
	return &namedCollection{
		byID:   make(map[string]*namedRecord),
		byName: make(map[string]string),
	}
}

// sorted returns copies ordered by name; Go string comparison is byte-wise.
func (c *namedCollection) sorted() []namedRecord {
	out := make([]namedRecord, 0, len(c.byID))
	for _, r := range c.byID {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].name != out[j].name {
			return out[i].name < out[j].name
		}
		return out[i].id < out[j].id
	})
	return out
}

func (c *namedCollection) insert(r namedRecord) bool {
	if _, taken := c.byName[r.name]; taken {
		return false
	}
	c.byID[r.id] = &r
	c.byName[r.name] = r.id
	return true
}

// rename returns found=false for an unknown id and ok=false when the name
// belongs to another record.
func (c *namedCollection) rename(id, name string, updatedAt time.Time) (rec namedRecord, found, ok bool) {
	r, exists := c.byID[id]
	if !exists {
		return namedRecord{}, false, false
	}
	if owner, taken := c.byName[name]; taken && owner != id {
		return namedRecord{}, true, false
	}
	delete(c.byName, r.name)
	r.name = name
	r.updatedAt = updatedAt
	c.byName[name] = id
	return *r, true, true
}

func (c *namedCollection) remove(id string) bool {
	r, ok := c.byID[id]
	if !ok {
		return false
	}
	delete(c.byName, r.name)
	delete(c.byID, id)
	return true
}
