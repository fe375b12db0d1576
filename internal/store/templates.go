package store

import (
	"context"
	"strings"

	"github.com/alexanderramin/raiden/internal/domain"
)

// SaveAsTemplate stores the current configuration as a user template.
// renderedText becomes the template's prompt text verbatim.
func (s *Store) SaveAsTemplate(ctx context.Context, name, renderedText string, cfg domain.Configuration) (domain.UserTemplate, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.UserTemplate{}, &domain.ValidationError{Field: "name", Message: "template name is required"}
	}
	t := domain.UserTemplate{
		ID:           s.newID(),
		Name:         name,
		Category:     domain.UserDefinedCategory,
		PromptFormat: renderedText,
		FormData:     cfg.Clone(),
	}
	s.AddTemplate(ctx, t)
	return t, nil
}

// AddTemplate appends t to the collection.
func (s *Store) AddTemplate(ctx context.Context, t domain.UserTemplate) {
	t.FormData = t.FormData.Clone()
	s.templates = append(append([]domain.UserTemplate{}, s.templates...), t)
	s.persist(ctx, TemplatesKey, s.templates)
}

// RemoveTemplate deletes the template with id. Unknown ids are a no-op and
// report false.
func (s *Store) RemoveTemplate(ctx context.Context, id string) bool {
	kept := make([]domain.UserTemplate, 0, len(s.templates))
	for _, t := range s.templates {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(s.templates) {
		return false
	}
	s.templates = kept
	s.persist(ctx, TemplatesKey, s.templates)
	return true
}

// FindTemplate looks up a user template by id.
func (s *Store) FindTemplate(id string) (domain.UserTemplate, bool) {
	for _, t := range s.templates {
		if t.ID == id {
			t.FormData = t.FormData.Clone()
			return t, true
		}
	}
	return domain.UserTemplate{}, false
}

// Templates returns the user templates in insertion order.
func (s *Store) Templates() []domain.UserTemplate {
	out := make([]domain.UserTemplate, len(s.templates))
	for i, t := range s.templates {
		t.FormData = t.FormData.Clone()
		out[i] = t
	}
	return out
}

// LoadTemplate returns a copy of the configuration saved with template id.
func (s *Store) LoadTemplate(id string) (domain.Configuration, error) {
	t, ok := s.FindTemplate(id)
	if !ok {
		return domain.Configuration{}, &domain.NotFoundError{Entity: "template", ID: id}
	}
	return t.FormData, nil
}
