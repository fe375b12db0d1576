package template

import "github.com/alexanderramin/raiden/internal/domain"

// UserTemplateSource is the read side of the user template collection.
type UserTemplateSource interface {
	FindTemplate(id string) (domain.UserTemplate, bool)
	Templates() []domain.UserTemplate
}

// Resolved is a template key resolved against built-ins and user templates.
// Exactly one of Builtin and User is set.
type Resolved struct {
	Key     string
	Name    string
	Body    string
	Builtin *domain.TemplateDefinition
	User    *domain.UserTemplate
}

// Registry resolves template keys. Built-in keys are static identifiers and
// user keys are generated ids, so both collections share one namespace.
type Registry struct {
	catalog *Catalog
	users   UserTemplateSource
}

// NewRegistry creates a Registry. users may be nil when only built-ins exist.
func NewRegistry(catalog *Catalog, users UserTemplateSource) *Registry {
	return &Registry{catalog: catalog, users: users}
}

// Catalog returns the built-in catalog.
func (r *Registry) Catalog() *Catalog { return r.catalog }

// ListByCategory groups the built-ins by category.
func (r *Registry) ListByCategory() Listing { return r.catalog.ListByCategory() }

// UserTemplates returns the user templates in insertion order.
func (r *Registry) UserTemplates() []domain.UserTemplate {
	if r.users == nil {
		return nil
	}
	return r.users.Templates()
}

// Resolve looks key up among the built-ins first, then the user templates.
func (r *Registry) Resolve(key string) (Resolved, bool) {
	if def, ok := r.catalog.Lookup(key); ok {
		return Resolved{Key: key, Name: def.Name, Body: def.PromptFormat, Builtin: &def}, true
	}
	if r.users != nil {
		if ut, ok := r.users.FindTemplate(key); ok {
			return Resolved{Key: key, Name: ut.Name, Body: ut.PromptFormat, User: &ut}, true
		}
	}
	return Resolved{}, false
}

// SelectTemplate returns the configuration that results from switching to
// key. An unknown key leaves the configuration as it was.
func (r *Registry) SelectTemplate(current domain.Configuration, key string) domain.Configuration {
	res, ok := r.Resolve(key)
	if !ok {
		return current.Clone()
	}
	var overrides domain.Overrides
	if res.Builtin != nil {
		overrides = res.Builtin.Defaults
	}
	var snapshot *domain.Configuration
	if res.User != nil {
		snapshot = &res.User.FormData
	}
	return Merge(current, overrides, snapshot)
}

// RenderKey renders the template behind key with cfg. The second result is
// false, and the text is NoTemplatePrompt, when key does not resolve.
func (r *Registry) RenderKey(key string, cfg domain.Configuration) (string, Resolved, bool) {
	res, ok := r.Resolve(key)
	if !ok {
		return NoTemplatePrompt, Resolved{}, false
	}
	return Render(res.Body, cfg), res, true
}
