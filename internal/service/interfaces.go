package service

import (
	"context"
	"io"

	"github.com/alexanderramin/raiden/internal/domain"
	"github.com/alexanderramin/raiden/internal/template"
)

// Snapshot is a read-only view of the workbench session.
type Snapshot struct {
	TemplateKey  string
	TemplateName string // empty when the key does not resolve
	Config       domain.Configuration
	Prompt       string // last generated prompt, empty before the first Generate
}

// GenerateResult is the outcome of rendering the selected template.
type GenerateResult struct {
	Prompt string
	// History is nil when nothing resolved and the prompt is the sentinel.
	History *domain.PromptHistoryItem
}

// TemplateListing is everything an operator can select.
type TemplateListing struct {
	Builtin template.Listing
	User    []domain.UserTemplate
}

// WorkbenchService owns the active configuration and selected template and
// drives selection, rendering and persistence.
type WorkbenchService interface {
	Snapshot() Snapshot
	Templates() TemplateListing
	Resolve(key string) (template.Resolved, bool)

	SelectTemplate(ctx context.Context, key string) error
	SetField(ctx context.Context, field domain.Field, v domain.Value) error
	ToggleSetMember(ctx context.Context, field domain.Field, member string, include bool) error

	// Preview renders the current state without recording history.
	Preview() string
	Generate(ctx context.Context) (*GenerateResult, error)

	SaveAsTemplate(ctx context.Context, name string) (domain.UserTemplate, error)
	LoadTemplate(ctx context.Context, id string) error
	DeleteTemplate(ctx context.Context, id string) (bool, error)
	ExportTemplates(ctx context.Context, w io.Writer) error
	ImportTemplates(ctx context.Context, r io.Reader) ([]domain.UserTemplate, error)

	History() []domain.PromptHistoryItem
	LoadHistoryItem(ctx context.Context, id string) error
	ClearHistory(ctx context.Context) error
}

// TemplateStore is the persistence the workbench needs. *store.Store
// satisfies it.
type TemplateStore interface {
	template.UserTemplateSource

	RecordHistory(ctx context.Context, item domain.PromptHistoryItem)
	ClearHistory(ctx context.Context)
	History() []domain.PromptHistoryItem
	LoadHistoryItem(id string) (domain.PromptHistoryItem, error)

	SaveAsTemplate(ctx context.Context, name, renderedText string, cfg domain.Configuration) (domain.UserTemplate, error)
	RemoveTemplate(ctx context.Context, id string) bool
	LoadTemplate(id string) (domain.Configuration, error)
	ExportTemplates(w io.Writer) error
	ImportTemplates(ctx context.Context, r io.Reader) ([]domain.UserTemplate, error)
}
