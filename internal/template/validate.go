package template

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/raiden/internal/domain"
)

// ValidateTemplateFile checks a TemplateFile for structural errors.
// Returns a slice of errors (empty if valid).
func ValidateTemplateFile(tf *TemplateFile) []error {
	var errs []error

	if strings.TrimSpace(tf.Key) == "" {
		errs = append(errs, fmt.Errorf("template key is required"))
	}
	if strings.TrimSpace(tf.Name) == "" {
		errs = append(errs, fmt.Errorf("template name is required"))
	}
	if strings.TrimSpace(tf.Category) == "" {
		errs = append(errs, fmt.Errorf("template category is required"))
	}
	if strings.TrimSpace(tf.PromptFormat) == "" {
		errs = append(errs, fmt.Errorf("template prompt_format is required"))
	}
	if strings.EqualFold(strings.TrimSpace(tf.Category), domain.UserDefinedCategory) {
		errs = append(errs, fmt.Errorf("category %q is reserved for saved templates", domain.UserDefinedCategory))
	}

	for name, raw := range tf.Defaults {
		spec, ok := domain.LookupField(name)
		if !ok {
			errs = append(errs, fmt.Errorf("defaults.%s: %w", name, domain.ErrUnknownField))
			continue
		}
		if _, err := domain.ParseValue(spec.Field, rawDefault(raw)); err != nil {
			errs = append(errs, fmt.Errorf("defaults.%s: %w", name, err))
		}
	}

	return errs
}
