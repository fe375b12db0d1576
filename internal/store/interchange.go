package store

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/raiden/internal/domain"
	"gopkg.in/yaml.v3"
)

const bundleVersion = 1

type templateBundle struct {
	Version   int               `yaml:"version"`
	Templates []bundledTemplate `yaml:"templates"`
}

type bundledTemplate struct {
	Name         string                `yaml:"name"`
	PromptFormat string                `yaml:"prompt_format"`
	FormData     *domain.Configuration `yaml:"form_data,omitempty"`
}

// ExportTemplates writes every user template to w as a YAML bundle. Ids are
// not exported; an import assigns fresh ones.
func (s *Store) ExportTemplates(w io.Writer) error {
	b := templateBundle{Version: bundleVersion, Templates: make([]bundledTemplate, 0, len(s.templates))}
	for _, t := range s.templates {
		cfg := t.FormData.Clone()
		b.Templates = append(b.Templates, bundledTemplate{Name: t.Name, PromptFormat: t.PromptFormat, FormData: &cfg})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("encoding templates: %w", err)
	}
	return enc.Close()
}

// ImportTemplates reads a YAML bundle from r and appends its templates.
// Snapshots are normalized and missing fields take defaults. A blank name
// anywhere rejects the whole bundle.
func (s *Store) ImportTemplates(ctx context.Context, r io.Reader) ([]domain.UserTemplate, error) {
	var b templateBundle
	if err := yaml.NewDecoder(r).Decode(&b); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("decoding templates: %w", err)
	}
	if b.Version > bundleVersion {
		return nil, fmt.Errorf("template bundle version %d is newer than supported version %d", b.Version, bundleVersion)
	}

	imported := make([]domain.UserTemplate, 0, len(b.Templates))
	for i, bt := range b.Templates {
		name := strings.TrimSpace(bt.Name)
		if name == "" {
			return nil, &domain.ValidationError{
				Field:   fmt.Sprintf("templates[%d].name", i),
				Message: "template name is required",
			}
		}
		cfg := domain.Default()
		if bt.FormData != nil {
			cfg = bt.FormData.Clone()
			cfg.Normalize()
		}
		imported = append(imported, domain.UserTemplate{
			ID:           s.newID(),
			Name:         name,
			Category:     domain.UserDefinedCategory,
			PromptFormat: bt.PromptFormat,
			FormData:     cfg,
		})
	}
	if len(imported) == 0 {
		return imported, nil
	}

	s.templates = append(append([]domain.UserTemplate{}, s.templates...), imported...)
	s.persist(ctx, TemplatesKey, s.templates)
	return imported, nil
}
