package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/raiden/internal/domain"
	"github.com/alexanderramin/raiden/internal/logger"
	"github.com/alexanderramin/raiden/internal/repository"
	"github.com/google/uuid"
)

// Fixed keys of the two persisted collections.
const (
	HistoryKey   = "tsukuyomiPromptHistory"
	TemplatesKey = "tsukuyomiUserTemplates"
)

// MaxHistoryItems bounds the history; older entries are evicted.
const MaxHistoryItems = 20

// PersistenceLoadError describes a stored collection that could not be
// read. It is logged and the collection starts empty; callers never see it.
type PersistenceLoadError struct {
	Key string
	Err error
}

func (e *PersistenceLoadError) Error() string {
	return fmt.Sprintf("loading %s: %v", e.Key, e.Err)
}

func (e *PersistenceLoadError) Unwrap() error { return e.Err }

// Store owns prompt history and user templates. Both collections are held
// in memory and every mutation is written through to the KV backend at
// once. Write failures are logged and not retried; the in-memory mutation
// stands.
type Store struct {
	kv        repository.KVRepo
	log       *logger.Logger
	newID     func() string
	history   []domain.PromptHistoryItem
	templates []domain.UserTemplate
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator replaces uuid generation, for deterministic tests.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// Open loads both collections from kv. Unreadable data never fails Open.
func Open(ctx context.Context, kv repository.KVRepo, log *logger.Logger, opts ...Option) *Store {
	s := &Store{
		kv:    kv,
		log:   logger.OrNop(log).With("component", "store"),
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.history = loadCollection(ctx, s, HistoryKey, func(h domain.PromptHistoryItem) bool { return h.ID != "" })
	s.templates = loadCollection(ctx, s, TemplatesKey, func(t domain.UserTemplate) bool { return t.ID != "" })
	if len(s.history) > MaxHistoryItems {
		s.history = s.history[:MaxHistoryItems]
	}
	return s
}

func loadCollection[T any](ctx context.Context, s *Store, key string, keep func(T) bool) []T {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		s.logLoadError(&PersistenceLoadError{Key: key, Err: err})
		return []T{}
	}
	if !ok {
		s.log.Debug("no persisted collection", "key", key)
		return []T{}
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.logLoadError(&PersistenceLoadError{Key: key, Err: err})
		return []T{}
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	if dropped := len(items) - len(out); dropped > 0 {
		s.log.Warn("dropped persisted entries without id", "key", key, "count", dropped)
	}
	return out
}

func (s *Store) logLoadError(err *PersistenceLoadError) {
	s.log.Warn("persisted collection unreadable, starting empty", "key", err.Key, "error", err.Error())
}

func (s *Store) persist(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.log.Error("encoding collection", "key", key, "error", err)
		return
	}
	if err := s.kv.Put(ctx, key, string(data)); err != nil {
		s.log.Warn("write-through failed", "key", key, "error", err)
	}
}
