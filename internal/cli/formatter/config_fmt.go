package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/raiden/internal/domain"
)

// FormatFieldCatalog lists every field with its kind, vocabulary and default.
func FormatFieldCatalog() string {
	def := domain.Default()
	var b strings.Builder
	for i, section := range domain.Sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Header(string(section)))
		b.WriteString("\n")
		specs := domain.FieldsInSection(section)
		rows := make([][]string, 0, len(specs))
		for _, spec := range specs {
			rows = append(rows, []string{
				string(spec.Field),
				string(spec.Kind),
				fieldDomain(spec),
				OrDash(def.Display(spec.Field)),
			})
		}
		b.WriteString(RenderTable([]string{"Field", "Kind", "Values", "Default"}, rows))
	}
	return b.String()
}

func fieldDomain(spec domain.FieldSpec) string {
	switch spec.Kind {
	case domain.KindEnum, domain.KindSet:
		return strings.Join(spec.Options, " | ")
	case domain.KindInt:
		return fmt.Sprintf("%d..%d", spec.Min, spec.Max)
	case domain.KindBool:
		return "true | false"
	default:
		return Dim("free text")
	}
}

// FormatConfiguration renders a configuration grouped by section.
func FormatConfiguration(cfg domain.Configuration) string {
	var b strings.Builder
	for _, section := range domain.Sections {
		b.WriteString(Header(string(section)))
		b.WriteString("\n")
		for _, spec := range domain.FieldsInSection(section) {
			fmt.Fprintf(&b, "  %-30s %s\n", spec.Label, configValue(cfg, spec))
		}
	}
	return b.String()
}

func configValue(cfg domain.Configuration, spec domain.FieldSpec) string {
	switch spec.Field {
	case domain.FieldClassificationLevel:
		return ClassificationStyle(cfg.ClassificationLevel).Render(cfg.ClassificationLevel)
	case domain.FieldOpsecLevel:
		return OpsecIndicator(cfg.OpsecLevel, domain.OpsecLabel(cfg.OpsecLevel))
	}
	return OrDash(cfg.Display(spec.Field))
}
