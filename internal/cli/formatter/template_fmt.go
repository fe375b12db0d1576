package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/raiden/internal/domain"
	"github.com/alexanderramin/raiden/internal/template"
)

// FormatTemplateListing renders built-ins grouped by category followed by
// the user templates. The selected key is marked.
func FormatTemplateListing(listing template.Listing, user []domain.UserTemplate, selectedKey string) string {
	var b strings.Builder

	for i, group := range listing.Groups {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Header(group.Category))
		b.WriteString("\n")
		rows := make([][]string, 0, len(group.Templates))
		for _, def := range group.Templates {
			rows = append(rows, []string{selectionMark(def.Key, selectedKey), def.Key, def.Name})
		}
		b.WriteString(RenderTable([]string{"", "Key", "Name"}, rows))
	}

	b.WriteString("\n")
	b.WriteString(Header(domain.UserDefinedCategory))
	b.WriteString("\n")
	if len(user) == 0 {
		b.WriteString(Dim("  No saved templates. Use `raiden render --save-as NAME`."))
		b.WriteString("\n")
		return b.String()
	}
	rows := make([][]string, 0, len(user))
	for _, ut := range user {
		rows = append(rows, []string{selectionMark(ut.ID, selectedKey), ut.ID, ut.Name})
	}
	b.WriteString(RenderTable([]string{"", "ID", "Name"}, rows))
	return b.String()
}

func selectionMark(key, selected string) string {
	if key == selected {
		return StyleGreen.Render("●")
	}
	return " "
}

// FormatTemplateDetail renders a resolved template: metadata, defaults and body.
func FormatTemplateDetail(res template.Resolved) string {
	var b strings.Builder
	b.WriteString(Header("Template"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  Key:      %s\n", res.Key)
	fmt.Fprintf(&b, "  Name:     %s\n", Bold(res.Name))

	switch {
	case res.Builtin != nil:
		fmt.Fprintf(&b, "  Category: %s\n", res.Builtin.Category)
		if len(res.Builtin.Defaults) > 0 {
			b.WriteString("\n")
			b.WriteString(Header("Defaults"))
			b.WriteString("\n")
			for _, spec := range domain.Fields() {
				if v, ok := res.Builtin.Defaults[spec.Field]; ok {
					fmt.Fprintf(&b, "  %-30s %s\n", spec.Field, OrDash(v.Display()))
				}
			}
		}
	case res.User != nil:
		fmt.Fprintf(&b, "  Category: %s\n", res.User.Category)
		b.WriteString("\n")
		b.WriteString(FormatConfiguration(res.User.FormData))
	}

	b.WriteString("\n")
	b.WriteString(Header("Body"))
	b.WriteString("\n")
	b.WriteString(res.Body)
	b.WriteString("\n")
	return b.String()
}
