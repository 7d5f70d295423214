package keyword

import (
	"fmt"
	"strconv"
	"strings"
)

// Arg describes one keyword argument.
type Arg struct {
	Name     string
	Default  any
	Required bool
}

// String renders the argument the way the runner lists it: "name" when
// required, "name=default" otherwise.
func (a Arg) String() string {
	if a.Required {
		return a.Name
	}
	return a.Name + "=" + formatDefault(a.Default)
}

func formatDefault(v any) string {
	switch d := v.(type) {
	case nil:
		return "None"
	case bool:
		if d {
			return "True"
		}
		return "False"
	default:
		return fmt.Sprint(d)
	}
}

// args holds bound argument values by name.
type args map[string]any

// bind matches positional and named values to specs, fills defaults and
// rejects unknown, duplicate and missing arguments.
func bind(keyword string, specs []Arg, positional []any, named map[string]any) (args, error) {
	if len(positional) > len(specs) {
		return nil, fmt.Errorf("keyword '%s' expects at most %d arguments, got %d",
			keyword, len(specs), len(positional))
	}

	a := make(args, len(specs))
	for i, v := range positional {
		a[specs[i].Name] = v
	}
	for name, v := range named {
		if !hasArg(specs, name) {
			return nil, fmt.Errorf("keyword '%s' got unexpected named argument '%s'", keyword, name)
		}
		if _, dup := a[name]; dup {
			return nil, fmt.Errorf("keyword '%s' got multiple values for argument '%s'", keyword, name)
		}
		a[name] = v
	}

	for _, spec := range specs {
		if _, ok := a[spec.Name]; ok {
			continue
		}
		if spec.Required {
			return nil, fmt.Errorf("keyword '%s' missing value for argument '%s'", keyword, spec.Name)
		}
		a[spec.Name] = spec.Default
	}
	return a, nil
}

func hasArg(specs []Arg, name string) bool {
	for _, s := range specs {
		if s.Name == name {
			return true
		}
	}
	return false
}

// bool converts a flag argument the way the runner does: Go bools, numbers
// (non-zero is true) and the strings true/false, yes/no, on/off, 1/0 and
// none, case-insensitively. nil is false.
func (a args) bool(name string) (bool, error) {
	switch v := a[name].(type) {
	case nil:
		return false, nil
	case bool:
		return v, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "yes", "on", "1":
			return true, nil
		case "false", "no", "off", "0", "none", "":
			return false, nil
		}
	default:
		if f, ok := number(v); ok {
			return f != 0, nil
		}
	}
	return false, fmt.Errorf("argument '%s' got value %v (%T) that cannot be converted to a boolean",
		name, a[name], a[name])
}

// stringArg returns v as text. nil is reported as absent; numbers and other
// values are formatted.
func stringArg(v any) (string, bool) {
	switch s := v.(type) {
	case nil:
		return "", false
	case string:
		return s, true
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	default:
		return fmt.Sprint(s), true
	}
}
