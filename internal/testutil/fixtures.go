package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/raiden/internal/domain"
	"github.com/google/uuid"
)

var testNameCounter atomic.Int64

// Configuration options
type ConfigOption func(*domain.Configuration)

func WithTargetSubject(s string) ConfigOption {
	return func(c *domain.Configuration) {
		c.TargetSubject = s
	}
}

func WithDomainFocus(members ...string) ConfigOption {
	return func(c *domain.Configuration) {
		c.ReplaceSet(domain.FieldDomainFocus, members)
	}
}

func WithHandlingInstructions(members ...string) ConfigOption {
	return func(c *domain.Configuration) {
		c.ReplaceSet(domain.FieldHandlingInstructions, members)
	}
}

func WithOpsecLevel(n int) ConfigOption {
	return func(c *domain.Configuration) {
		c.OpsecLevel = n
	}
}

func WithClassification(level string) ConfigOption {
	return func(c *domain.Configuration) {
		c.ClassificationLevel = level
	}
}

func WithWebSearch(realTime, multiSource, currentEvents bool) ConfigOption {
	return func(c *domain.Configuration) {
		c.EnableWebSearch = true
		c.WebSearchRealTime = realTime
		c.WebSearchMultiSource = multiSource
		c.WebSearchCurrentEvents = currentEvents
	}
}

func NewTestConfiguration(opts ...ConfigOption) domain.Configuration {
	c := domain.Default()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// UserTemplate options
type UserTemplateOption func(*domain.UserTemplate)

func WithFormData(c domain.Configuration) UserTemplateOption {
	return func(t *domain.UserTemplate) {
		t.FormData = c.Clone()
	}
}

func WithPromptFormat(body string) UserTemplateOption {
	return func(t *domain.UserTemplate) {
		t.PromptFormat = body
	}
}

func NewTestUserTemplate(name string, opts ...UserTemplateOption) domain.UserTemplate {
	t := domain.UserTemplate{
		ID:           uuid.New().String(),
		Name:         name,
		Category:     domain.UserDefinedCategory,
		PromptFormat: "Saved prompt for " + name,
		FormData:     domain.Default(),
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// History options
type HistoryOption func(*domain.PromptHistoryItem)

func WithHistoryFormData(c domain.Configuration) HistoryOption {
	return func(h *domain.PromptHistoryItem) {
		h.FormData = c.Clone()
	}
}

func WithHistoryTime(ts time.Time) HistoryOption {
	return func(h *domain.PromptHistoryItem) {
		h.Timestamp = ts.UTC().Format(time.RFC3339)
	}
}

func NewTestHistoryItem(templateKey string, opts ...HistoryOption) domain.PromptHistoryItem {
	n := testNameCounter.Add(1)
	h := domain.PromptHistoryItem{
		ID:          uuid.New().String(),
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		FormData:    domain.Default(),
		TemplateKey: templateKey,
		Name:        fmt.Sprintf("%s - run %02d", templateKey, n),
	}
	for _, opt := range opts {
		opt(&h)
	}
	return h
}
