package inmemkv

import (
	"context"
	"sync"

	"github.com/shulehq/shule/core/access"
)

// selectionStore keeps selections in process memory; for tests and local dev.
type selectionStore struct {
	mu    sync.RWMutex
	table map[access.PrincipalID]access.Selection
}

var _ access.SelectionStore = (*selectionStore)(nil) // interface compliance check

func NewSelectionStore() access.SelectionStore {
	return &selectionStore{table: make(map[access.PrincipalID]access.Selection)}
}

func (s *selectionStore) SaveSelection(_ context.Context, principal access.PrincipalID, sel access.Selection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table[principal] = sel
	return nil
}

func (s *selectionStore) LoadSelection(_ context.Context, principal access.PrincipalID) (*access.Selection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sel, ok := s.table[principal]
	if !ok {
		return nil, nil
	}
	return &sel, nil
}

func (s *selectionStore) ClearSelection(_ context.Context, principal access.PrincipalID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.table, principal)
	return nil
}
