package template

import (
	"fmt"
	"os"
	"strings"

	"github.com/alexanderramin/raiden/internal/domain"
	"gopkg.in/yaml.v3"
)

// TemplateFile is the on-disk shape of an additional built-in template.
// JSON files use the same keys; yaml.v3 reads both.
//
//	key: sigintCollection
//	name: SIGINT Collection Plan
//	category: Collection
//	prompt_format: |
//	  Collect against [TARGET_SUBJECT] ...
//	defaults:
//	  PRIORITY_LEVEL: FLASH
//	  DOMAIN_FOCUS: [SIGINT]
type TemplateFile struct {
	Key          string         `yaml:"key" json:"key"`
	Name         string         `yaml:"name" json:"name"`
	Category     string         `yaml:"category" json:"category"`
	PromptFormat string         `yaml:"prompt_format" json:"prompt_format"`
	Defaults     map[string]any `yaml:"defaults,omitempty" json:"defaults,omitempty"`
}

// ParseTemplateFile decodes a YAML or JSON template document.
func ParseTemplateFile(data []byte) (*TemplateFile, error) {
	var tf TemplateFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}
	return &tf, nil
}

// LoadTemplateFile reads and parses a single template file.
func LoadTemplateFile(path string) (*TemplateFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseTemplateFile(data)
}

// Definition converts a validated file into a TemplateDefinition.
func (tf *TemplateFile) Definition() (domain.TemplateDefinition, error) {
	if errs := ValidateTemplateFile(tf); len(errs) > 0 {
		return domain.TemplateDefinition{}, errs[0]
	}
	overrides := make(domain.Overrides, len(tf.Defaults))
	for name, raw := range tf.Defaults {
		spec, _ := domain.LookupField(name)
		v, err := domain.ParseValue(spec.Field, rawDefault(raw))
		if err != nil {
			return domain.TemplateDefinition{}, err
		}
		overrides[spec.Field] = v
	}
	return domain.TemplateDefinition{
		Key:          strings.TrimSpace(tf.Key),
		Name:         strings.TrimSpace(tf.Name),
		Category:     strings.TrimSpace(tf.Category),
		PromptFormat: tf.PromptFormat,
		Defaults:     overrides,
	}, nil
}

// rawDefault flattens a decoded YAML scalar or list into the operator text
// form ParseValue accepts.
func rawDefault(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			parts = append(parts, fmt.Sprint(item))
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(t)
	}
}
