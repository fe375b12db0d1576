package template

import (
	"fmt"

	"github.com/alexanderramin/raiden/internal/domain"
)

// Catalog is the immutable set of built-in templates. It is built once at
// startup; accessors hand out copies so callers cannot alter it.
type Catalog struct {
	defs  []domain.TemplateDefinition
	index map[string]int
}

// NewCatalog builds a catalog from defs in declaration order. Keys must be
// unique and non-empty.
func NewCatalog(defs ...domain.TemplateDefinition) (*Catalog, error) {
	c := &Catalog{index: make(map[string]int, len(defs))}
	for _, d := range defs {
		if d.Key == "" {
			return nil, fmt.Errorf("template %q: key is required", d.Name)
		}
		if _, dup := c.index[d.Key]; dup {
			return nil, fmt.Errorf("duplicate template key %q", d.Key)
		}
		c.index[d.Key] = len(c.defs)
		c.defs = append(c.defs, cloneDefinition(d))
	}
	return c, nil
}

// Builtin returns the catalog of the four embedded templates.
func Builtin() *Catalog {
	c, err := NewCatalog(builtinDefinitions()...)
	if err != nil {
		panic(err)
	}
	return c
}

// Extend returns a new catalog with extra definitions appended after the
// existing ones. The receiver is left untouched.
func (c *Catalog) Extend(extra ...domain.TemplateDefinition) (*Catalog, error) {
	all := make([]domain.TemplateDefinition, 0, len(c.defs)+len(extra))
	all = append(all, c.defs...)
	all = append(all, extra...)
	return NewCatalog(all...)
}

// Lookup returns a copy of the definition registered under key.
func (c *Catalog) Lookup(key string) (domain.TemplateDefinition, bool) {
	i, ok := c.index[key]
	if !ok {
		return domain.TemplateDefinition{}, false
	}
	return cloneDefinition(c.defs[i]), true
}

// All returns copies of every definition in declaration order.
func (c *Catalog) All() []domain.TemplateDefinition {
	out := make([]domain.TemplateDefinition, len(c.defs))
	for i, d := range c.defs {
		out[i] = cloneDefinition(d)
	}
	return out
}

// FirstKey is the key selected when nothing else is.
func (c *Catalog) FirstKey() string {
	if len(c.defs) == 0 {
		return ""
	}
	return c.defs[0].Key
}

// Len reports the number of built-in definitions.
func (c *Catalog) Len() int { return len(c.defs) }

// CategoryGroup is one category and its templates in declaration order.
type CategoryGroup struct {
	Category  string
	Templates []domain.TemplateDefinition
}

// Listing is the catalog grouped by category. Groups appear in the order
// their category is first declared; ByName maps a category to its group.
type Listing struct {
	Groups []CategoryGroup
	ByName map[string][]domain.TemplateDefinition
}

// ListByCategory groups the built-ins by category, keeping declaration order
// inside each group.
func (c *Catalog) ListByCategory() Listing {
	l := Listing{ByName: make(map[string][]domain.TemplateDefinition)}
	pos := make(map[string]int)
	for _, d := range c.defs {
		i, seen := pos[d.Category]
		if !seen {
			i = len(l.Groups)
			pos[d.Category] = i
			l.Groups = append(l.Groups, CategoryGroup{Category: d.Category})
		}
		l.Groups[i].Templates = append(l.Groups[i].Templates, cloneDefinition(d))
	}
	for _, g := range l.Groups {
		l.ByName[g.Category] = g.Templates
	}
	return l
}

func cloneDefinition(d domain.TemplateDefinition) domain.TemplateDefinition {
	out := d
	if d.Defaults != nil {
		out.Defaults = make(domain.Overrides, len(d.Defaults))
		for f, v := range d.Defaults {
			if v.Set != nil {
				v.Set = append([]string{}, v.Set...)
			}
			out.Defaults[f] = v
		}
	}
	return out
}
