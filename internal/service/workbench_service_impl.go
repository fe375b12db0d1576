package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/raiden/internal/domain"
	"github.com/alexanderramin/raiden/internal/template"
)

// historyNameLayout mirrors a US locale date-time string.
const historyNameLayout = "1/2/2006, 3:04:05 PM"

type workbenchService struct {
	registry *template.Registry
	store    TemplateStore
	observer UseCaseObserver

	now   func() time.Time
	loc   *time.Location
	newID func() string

	selectedKey string
	config      domain.Configuration
	lastPrompt  string
}

// WorkbenchOption configures a workbench.
type WorkbenchOption func(*workbenchService)

// WithClock replaces time.Now for history timestamps.
func WithClock(now func() time.Time) WorkbenchOption {
	return func(s *workbenchService) { s.now = now }
}

// WithLocation sets the zone used for human-readable history names.
func WithLocation(loc *time.Location) WorkbenchOption {
	return func(s *workbenchService) { s.loc = loc }
}

// WithIDGenerator replaces uuid generation for history ids.
func WithIDGenerator(fn func() string) WorkbenchOption {
	return func(s *workbenchService) { s.newID = fn }
}

// WithObserver attaches a use-case observer.
func WithObserver(obs UseCaseObserver) WorkbenchOption {
	return func(s *workbenchService) { s.observer = useCaseObserverOrNoop([]UseCaseObserver{obs}) }
}

// NewWorkbenchService starts a session on the first built-in template with
// a default configuration.
func NewWorkbenchService(registry *template.Registry, store TemplateStore, opts ...WorkbenchOption) WorkbenchService {
	s := &workbenchService{
		registry:    registry,
		store:       store,
		observer:    NoopUseCaseObserver{},
		now:         time.Now,
		loc:         time.Local,
		newID:       uuid.NewString,
		selectedKey: registry.Catalog().FirstKey(),
		config:      domain.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *workbenchService) Snapshot() Snapshot {
	snap := Snapshot{
		TemplateKey: s.selectedKey,
		Config:      s.config.Clone(),
		Prompt:      s.lastPrompt,
	}
	if res, ok := s.registry.Resolve(s.selectedKey); ok {
		snap.TemplateName = res.Name
	}
	return snap
}

func (s *workbenchService) Templates() TemplateListing {
	return TemplateListing{
		Builtin: s.registry.ListByCategory(),
		User:    s.registry.UserTemplates(),
	}
}

func (s *workbenchService) Resolve(key string) (template.Resolved, bool) {
	return s.registry.Resolve(key)
}

// SelectTemplate switches to key. A key that resolves to nothing is still
// selected with the configuration unchanged; Generate then yields
// template.NoTemplatePrompt and records no history.
func (s *workbenchService) SelectTemplate(ctx context.Context, key string) (err error) {
	fields := map[string]any{"template": key}
	defer s.observe(ctx, "select-template", time.Now(), &err, fields)

	if _, ok := s.registry.Resolve(key); !ok {
		fields["resolved"] = false
	}
	s.config = s.registry.SelectTemplate(s.config, key)
	s.selectedKey = key
	return nil
}

func (s *workbenchService) SetField(_ context.Context, field domain.Field, v domain.Value) error {
	spec, ok := domain.LookupField(string(field))
	if !ok {
		return fmt.Errorf("field %q: %w", field, domain.ErrUnknownField)
	}
	if v.Kind != spec.Kind {
		return &domain.ValidationError{
			Field:   string(spec.Field),
			Message: fmt.Sprintf("expected a %s value, got %s", spec.Kind, v.Kind),
		}
	}
	s.config.Set(spec.Field, v)
	return nil
}

func (s *workbenchService) ToggleSetMember(_ context.Context, field domain.Field, member string, include bool) error {
	spec, ok := domain.LookupField(string(field))
	if !ok {
		return fmt.Errorf("field %q: %w", field, domain.ErrUnknownField)
	}
	if spec.Kind != domain.KindSet {
		return &domain.ValidationError{Field: string(spec.Field), Message: "not a multi-select field"}
	}
	s.config.ToggleSetMember(spec.Field, member, include)
	return nil
}

func (s *workbenchService) Preview() string {
	text, _, _ := s.registry.RenderKey(s.selectedKey, s.config)
	return text
}

func (s *workbenchService) Generate(ctx context.Context) (result *GenerateResult, err error) {
	fields := map[string]any{"template": s.selectedKey}
	defer s.observe(ctx, "generate", time.Now(), &err, fields)

	text, res, ok := s.registry.RenderKey(s.selectedKey, s.config)
	s.lastPrompt = text
	if !ok {
		fields["resolved"] = false
		return &GenerateResult{Prompt: text}, nil
	}

	now := s.now()
	item := domain.PromptHistoryItem{
		ID:          s.newID(),
		Timestamp:   now.UTC().Format(time.RFC3339),
		FormData:    s.config.Clone(),
		TemplateKey: s.selectedKey,
		Name:        res.Name + " - " + now.In(s.loc).Format(historyNameLayout),
	}
	s.store.RecordHistory(ctx, item)
	fields["history_id"] = item.ID
	return &GenerateResult{Prompt: text, History: &item}, nil
}

// SaveAsTemplate saves the current configuration together with its
// rendering as a user template.
func (s *workbenchService) SaveAsTemplate(ctx context.Context, name string) (ut domain.UserTemplate, err error) {
	defer s.observe(ctx, "save-template", time.Now(), &err, map[string]any{"name": name})

	ut, err = s.store.SaveAsTemplate(ctx, name, s.Preview(), s.config)
	if err != nil {
		return domain.UserTemplate{}, err
	}
	return ut, nil
}

func (s *workbenchService) LoadTemplate(ctx context.Context, id string) (err error) {
	defer s.observe(ctx, "load-template", time.Now(), &err, map[string]any{"template": id})

	cfg, err := s.store.LoadTemplate(id)
	if err != nil {
		return err
	}
	s.selectedKey = id
	s.config = cfg
	return nil
}

// DeleteTemplate removes a user template. Deleting the selected template
// returns the session to the first built-in with defaults.
func (s *workbenchService) DeleteTemplate(ctx context.Context, id string) (removed bool, err error) {
	fields := map[string]any{"template": id}
	defer s.observe(ctx, "delete-template", time.Now(), &err, fields)

	removed = s.store.RemoveTemplate(ctx, id)
	fields["removed"] = removed
	if removed && s.selectedKey == id {
		s.selectedKey = s.registry.Catalog().FirstKey()
		s.config = domain.Default()
	}
	return removed, nil
}

func (s *workbenchService) ExportTemplates(ctx context.Context, w io.Writer) (err error) {
	defer s.observe(ctx, "export-templates", time.Now(), &err, nil)
	return s.store.ExportTemplates(w)
}

func (s *workbenchService) ImportTemplates(ctx context.Context, r io.Reader) (imported []domain.UserTemplate, err error) {
	fields := map[string]any{}
	defer s.observe(ctx, "import-templates", time.Now(), &err, fields)

	imported, err = s.store.ImportTemplates(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("importing templates: %w", err)
	}
	fields["count"] = len(imported)
	return imported, nil
}

func (s *workbenchService) History() []domain.PromptHistoryItem {
	return s.store.History()
}

func (s *workbenchService) LoadHistoryItem(ctx context.Context, id string) (err error) {
	defer s.observe(ctx, "load-history", time.Now(), &err, map[string]any{"history_id": id})

	item, err := s.store.LoadHistoryItem(id)
	if err != nil {
		return err
	}
	s.config = item.FormData
	s.selectedKey = item.TemplateKey
	return nil
}

func (s *workbenchService) ClearHistory(ctx context.Context) (err error) {
	defer s.observe(ctx, "clear-history", time.Now(), &err, nil)
	s.store.ClearHistory(ctx)
	return nil
}

func (s *workbenchService) observe(ctx context.Context, name string, startedAt time.Time, errp *error, fields map[string]any) {
	err := *errp
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}
