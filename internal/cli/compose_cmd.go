package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/raiden/internal/domain"
	"github.com/alexanderramin/raiden/internal/service"
)

func newComposeCmd(app *App) *cobra.Command {
	var opts renderOptions
	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Fill in a template interactively and generate the prompt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return errNotInteractive
			}
			ctx := cmd.Context()
			if err := prepareSession(ctx, app.Workbench, opts); err != nil {
				return err
			}

			if opts.template == "" {
				key, err := runTemplatePicker(ctx, app.Workbench)
				if err != nil {
					return err
				}
				if err := app.Workbench.SelectTemplate(ctx, key); err != nil {
					return err
				}
			}

			values := newFormValues(app.Workbench.Snapshot().Config)
			form := buildComposeForm(values, &opts.saveAs)
			if err := form.RunWithContext(ctx); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
				return err
			}
			if err := values.apply(ctx, app.Workbench); err != nil {
				return err
			}
			return generateAndEmit(ctx, cmd, app, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.template, "template", "t", "", "skip the picker and start from this template")
	f.StringVar(&opts.fromHistory, "from-history", "", "prefill from a history entry")
	f.StringVar(&opts.fromTemplate, "from-template", "", "prefill from a saved template")
	f.StringVarP(&opts.out, "out", "o", "", "also write the prompt to FILE")
	f.BoolVar(&opts.copy, "copy", false, "copy the prompt to the clipboard")
	cmd.MarkFlagsMutuallyExclusive("from-history", "from-template")

	return cmd
}

func runTemplatePicker(ctx context.Context, wb service.WorkbenchService) (string, error) {
	listing := wb.Templates()
	var options []huh.Option[string]
	for _, group := range listing.Builtin.Groups {
		for _, def := range group.Templates {
			options = append(options, huh.NewOption(group.Category+" / "+def.Name, def.Key))
		}
	}
	for _, ut := range listing.User {
		options = append(options, huh.NewOption(domain.UserDefinedCategory+" / "+ut.Name, ut.ID))
	}

	key := wb.Snapshot().TemplateKey
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Template").
				Options(options...).
				Value(&key),
		),
	).WithTheme(raidenHuhTheme()).WithShowHelp(false).RunWithContext(ctx)
	return key, err
}

// formValues holds editable copies of every field in the shapes huh binds to.
type formValues struct {
	text  map[domain.Field]*string
	sets  map[domain.Field]*[]string
	bools map[domain.Field]*bool
}

func newFormValues(cfg domain.Configuration) *formValues {
	v := &formValues{
		text:  map[domain.Field]*string{},
		sets:  map[domain.Field]*[]string{},
		bools: map[domain.Field]*bool{},
	}
	for _, spec := range domain.Fields() {
		val := cfg.Get(spec.Field)
		switch spec.Kind {
		case domain.KindSet:
			members := append([]string{}, val.Set...)
			v.sets[spec.Field] = &members
		case domain.KindBool:
			b := val.Bool
			v.bools[spec.Field] = &b
		default:
			s := val.Display()
			v.text[spec.Field] = &s
		}
	}
	return v
}

func buildComposeForm(v *formValues, saveAs *string) *huh.Form {
	var groups []*huh.Group
	for _, section := range domain.Sections {
		var fields []huh.Field
		for _, spec := range domain.FieldsInSection(section) {
			fields = append(fields, v.field(spec))
		}
		groups = append(groups, huh.NewGroup(fields...).Title(string(section)))
	}
	groups = append(groups, huh.NewGroup(
		huh.NewInput().
			Title("Save as template").
			Description("Leave blank to skip").
			Value(saveAs),
	))
	return huh.NewForm(groups...).WithTheme(raidenHuhTheme())
}

func (v *formValues) field(spec domain.FieldSpec) huh.Field {
	switch spec.Kind {
	case domain.KindEnum:
		return huh.NewSelect[string]().
			Title(spec.Label).
			Options(huh.NewOptions(spec.Options...)...).
			Value(v.text[spec.Field])
	case domain.KindSet:
		return huh.NewMultiSelect[string]().
			Title(spec.Label).
			Options(huh.NewOptions(spec.Options...)...).
			Value(v.sets[spec.Field])
	case domain.KindBool:
		return huh.NewConfirm().
			Title(spec.Label).
			Value(v.bools[spec.Field])
	case domain.KindInt:
		return huh.NewInput().
			Title(spec.Label).
			Description(fmt.Sprintf("%d to %d", spec.Min, spec.Max)).
			Value(v.text[spec.Field]).
			Validate(func(s string) error {
				_, err := domain.ParseValue(spec.Field, s)
				return err
			})
	default:
		return huh.NewInput().
			Title(spec.Label).
			Value(v.text[spec.Field])
	}
}

// apply pushes the edited values into the workbench.
func (v *formValues) apply(ctx context.Context, wb service.WorkbenchService) error {
	for _, spec := range domain.Fields() {
		var val domain.Value
		switch spec.Kind {
		case domain.KindSet:
			val = domain.SetValue(*v.sets[spec.Field]...)
		case domain.KindBool:
			val = domain.BoolValue(*v.bools[spec.Field])
		case domain.KindInt:
			n, err := strconv.Atoi(strings.TrimSpace(*v.text[spec.Field]))
			if err != nil {
				return fmt.Errorf("%s: %w", spec.Field, domain.ErrInvalidValue)
			}
			val = domain.IntValue(n)
		case domain.KindEnum:
			val = domain.EnumValue(*v.text[spec.Field])
		default:
			val = domain.TextValue(*v.text[spec.Field])
		}
		if err := wb.SetField(ctx, spec.Field, val); err != nil {
			return err
		}
	}
	return nil
}
