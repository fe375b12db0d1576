package template

import "github.com/alexanderramin/raiden/internal/domain"

// setFields are resolved wholesale by the most specific layer that defines
// them instead of being overlaid member by member.
var setFields = []domain.Field{
	domain.FieldHandlingInstructions,
	domain.FieldDomainFocus,
}

type mergeLayer struct {
	name  string
	apply func(*domain.Configuration)
}

// Merge computes the configuration produced by switching to a template.
// Layers apply in order, later wins:
//
//	defaults -> current -> built-in overrides -> user snapshot
//
// overrides is nil unless the key named a built-in and snapshot is nil unless
// it named a user template. Set-valued fields take the user snapshot's value
// if there is one, else the built-in override, else the current value.
func Merge(current domain.Configuration, overrides domain.Overrides, snapshot *domain.Configuration) domain.Configuration {
	out := domain.Default()

	layers := []mergeLayer{
		{name: "current", apply: overlayAll(current)},
		{name: "builtin", apply: overlayPartial(overrides)},
	}
	if snapshot != nil {
		layers = append(layers, mergeLayer{name: "user", apply: overlayAll(*snapshot)})
	}
	for _, l := range layers {
		l.apply(&out)
	}

	for _, f := range setFields {
		switch {
		case snapshot != nil:
			out.ReplaceSet(f, snapshot.Get(f).Set)
		case overrides.Has(f):
			out.ReplaceSet(f, overrides[f].Set)
		default:
			out.ReplaceSet(f, current.Get(f).Set)
		}
	}
	return out
}

func overlayAll(src domain.Configuration) func(*domain.Configuration) {
	return func(dst *domain.Configuration) {
		for _, spec := range domain.Fields() {
			if spec.Kind == domain.KindSet {
				continue
			}
			dst.SetScalar(spec.Field, src.Get(spec.Field))
		}
	}
}

func overlayPartial(o domain.Overrides) func(*domain.Configuration) {
	return func(dst *domain.Configuration) {
		for f, v := range o {
			if domain.SpecOf(f).Kind == domain.KindSet {
				continue
			}
			dst.SetScalar(f, v)
		}
	}
}
