package inventory

import (
	"errors"
	"strings"
	"sync"
)

// ErrDuplicateID is returned by Add when an item with the same identifier
// already exists in the store.
var ErrDuplicateID = errors.New("inventory: duplicate item id")

// Store holds the in-memory inventory collection. The newest item is first.
// All state is process-local; nothing is persisted.
type Store struct {
	mu    sync.Mutex
	items []Item
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// cloneItem copies an item including its attribute slice, so items crossing
// the store boundary never share a backing array with the collection.
func cloneItem(it Item) Item {
	it.Attributes = append([]Attribute(nil), it.Attributes...)
	return it
}

// Add inserts the item at the front of the collection. The item's ID must be
// unique within the store; Add is the commit point for the publish workflow,
// so a duplicate is reported as an error rather than silently dropped.
func (s *Store) Add(item Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.ID == item.ID {
			return ErrDuplicateID
		}
	}
	s.items = append([]Item{cloneItem(item)}, s.items...)
	return nil
}

// Remove deletes the item with the given id and reports whether anything was
// removed. An absent id is a no-op, not an error.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, it := range s.items {
		if it.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// ToggleStatus flips FOR_SALE and SOLD for the matching item. It returns the
// updated item. An absent id is a no-op.
func (s *Store) ToggleStatus(id string) (Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, it := range s.items {
		if it.ID == id {
			s.items[i].Status = it.Status.Toggle()
			return cloneItem(s.items[i]), true
		}
	}
	return Item{}, false
}

// Get returns the item with the given id.
func (s *Store) Get(id string) (Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.ID == id {
			return cloneItem(it), true
		}
	}
	return Item{}, false
}

// Items returns a copy of the full collection in display order.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Item, len(s.items))
	for i, it := range s.items {
		out[i] = cloneItem(it)
	}
	return out
}

// Len returns the number of items in the store.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Search returns the items whose title or category contains the query,
// case-insensitively. An empty query returns the full collection. The result
// is a filtered view; the underlying collection is never mutated.
func (s *Store) Search(query string) []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	q := strings.ToLower(query)
	out := make([]Item, 0, len(s.items))
	for _, it := range s.items {
		if strings.Contains(strings.ToLower(it.Title), q) ||
			strings.Contains(strings.ToLower(it.Category), q) {
			out = append(out, cloneItem(it))
		}
	}
	return out
}
