package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/alexanderramin/raiden/internal/domain"
	"github.com/alexanderramin/raiden/internal/service"
)

// Flag names shared by commands that adjust fields.
const (
	flagSet    = "set"
	flagAdd    = "add"
	flagRemove = "remove"
)

// addFieldFlags registers --set, --add and --remove on fs.
func addFieldFlags(fs *pflag.FlagSet) {
	fs.StringArray(flagSet, nil, "set a field, FIELD=VALUE (sets take a comma-separated list)")
	fs.StringArray(flagAdd, nil, "add members to a multi-select field, FIELD=VALUE[,VALUE]")
	fs.StringArray(flagRemove, nil, "remove members from a multi-select field, FIELD=VALUE[,VALUE]")
}

type assignment struct {
	spec  domain.FieldSpec
	value domain.Value
}

// parseAssignment parses FIELD=VALUE. Field names are case-insensitive.
func parseAssignment(raw string) (assignment, error) {
	name, value, ok := strings.Cut(raw, "=")
	if !ok {
		return assignment{}, &domain.ValidationError{Message: fmt.Sprintf("%q: expected FIELD=VALUE", raw)}
	}
	spec, found := domain.LookupField(strings.TrimSpace(name))
	if !found {
		return assignment{}, fmt.Errorf("field %q: %w", strings.TrimSpace(name), domain.ErrUnknownField)
	}
	v, err := domain.ParseValue(spec.Field, value)
	if err != nil {
		return assignment{}, err
	}
	return assignment{spec: spec, value: v}, nil
}

// applyFieldFlags applies --set, then --add, then --remove in command-line
// order within each flag.
func applyFieldFlags(ctx context.Context, wb service.WorkbenchService, fs *pflag.FlagSet) error {
	sets, err := fs.GetStringArray(flagSet)
	if err != nil {
		return err
	}
	for _, raw := range sets {
		a, err := parseAssignment(raw)
		if err != nil {
			return err
		}
		if err := wb.SetField(ctx, a.spec.Field, a.value); err != nil {
			return err
		}
	}

	for _, toggle := range []struct {
		flag    string
		include bool
	}{{flagAdd, true}, {flagRemove, false}} {
		raws, err := fs.GetStringArray(toggle.flag)
		if err != nil {
			return err
		}
		for _, raw := range raws {
			a, err := parseAssignment(raw)
			if err != nil {
				return err
			}
			if a.spec.Kind != domain.KindSet {
				return &domain.ValidationError{Field: string(a.spec.Field), Message: "--" + toggle.flag + " only applies to multi-select fields"}
			}
			for _, m := range a.value.Set {
				if err := wb.ToggleSetMember(ctx, a.spec.Field, m, toggle.include); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
