package store

import (
	"context"

	"github.com/alexanderramin/raiden/internal/domain"
)

// RecordHistory prepends item and evicts the oldest entries beyond
// MaxHistoryItems. The stored snapshot is a deep copy.
func (s *Store) RecordHistory(ctx context.Context, item domain.PromptHistoryItem) {
	item.FormData = item.FormData.Clone()

	next := make([]domain.PromptHistoryItem, 0, MaxHistoryItems)
	next = append(next, item)
	next = append(next, s.history...)
	if len(next) > MaxHistoryItems {
		next = next[:MaxHistoryItems]
	}
	s.history = next
	s.persist(ctx, HistoryKey, s.history)
}

// ClearHistory empties the history unconditionally.
func (s *Store) ClearHistory(ctx context.Context) {
	s.history = []domain.PromptHistoryItem{}
	s.persist(ctx, HistoryKey, s.history)
}

// History returns the entries newest first.
func (s *Store) History() []domain.PromptHistoryItem {
	out := make([]domain.PromptHistoryItem, len(s.history))
	for i, h := range s.history {
		h.FormData = h.FormData.Clone()
		out[i] = h
	}
	return out
}

// LoadHistoryItem returns the entry with id, its snapshot copied.
func (s *Store) LoadHistoryItem(id string) (domain.PromptHistoryItem, error) {
	for _, h := range s.history {
		if h.ID == id {
			h.FormData = h.FormData.Clone()
			return h, nil
		}
	}
	return domain.PromptHistoryItem{}, &domain.NotFoundError{Entity: "history item", ID: id}
}
