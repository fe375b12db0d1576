package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is a tagged field value. Only the slot matching Kind is meaningful.
type Value struct {
	Kind Kind
	Str  string
	Set  []string
	Bool bool
	Int  int
}

func EnumValue(s string) Value   { return Value{Kind: KindEnum, Str: s} }
func TextValue(s string) Value   { return Value{Kind: KindText, Str: s} }
func BoolValue(b bool) Value     { return Value{Kind: KindBool, Bool: b} }
func IntValue(n int) Value       { return Value{Kind: KindInt, Int: n} }
func SetValue(v ...string) Value { return Value{Kind: KindSet, Set: append([]string{}, v...)} }

// Display renders the value the way a template body shows it.
func (v Value) Display() string {
	switch v.Kind {
	case KindSet:
		return strings.Join(v.Set, ", ")
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindInt:
		return strconv.Itoa(v.Int)
	default:
		return v.Str
	}
}

// ParseValue converts operator text into a typed value for the field and
// checks it against the field's vocabulary or range. Set fields take a
// comma-separated list; blank entries are skipped and duplicates collapse.
func ParseValue(f Field, raw string) (Value, error) {
	spec, ok := specByField[f]
	if !ok {
		return Value{}, fmt.Errorf("field %q: %w", f, ErrUnknownField)
	}

	raw = strings.TrimSpace(raw)
	switch spec.Kind {
	case KindEnum:
		upper := strings.ToUpper(raw)
		if !spec.HasOption(upper) {
			return Value{}, fmt.Errorf("%s must be one of %s: %w",
				f, strings.Join(spec.Options, ", "), ErrInvalidValue)
		}
		return EnumValue(upper), nil
	case KindSet:
		var members []string
		for _, part := range strings.Split(raw, ",") {
			m := strings.ToUpper(strings.TrimSpace(part))
			if m == "" {
				continue
			}
			if !spec.HasOption(m) {
				return Value{}, fmt.Errorf("%s: %q is not one of %s: %w",
					f, m, strings.Join(spec.Options, ", "), ErrInvalidValue)
			}
			if !contains(members, m) {
				members = append(members, m)
			}
		}
		return SetValue(members...), nil
	case KindBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return Value{}, fmt.Errorf("%s must be true or false: %w", f, ErrInvalidValue)
		}
		return BoolValue(b), nil
	case KindInt:
		n, err := strconv.Atoi(raw)
		if err != nil || n < spec.Min || n > spec.Max {
			return Value{}, fmt.Errorf("%s must be an integer between %d and %d: %w",
				f, spec.Min, spec.Max, ErrInvalidValue)
		}
		return IntValue(n), nil
	default:
		return TextValue(raw), nil
	}
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
