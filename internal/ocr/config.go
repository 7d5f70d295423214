package ocr

import (
	"fmt"
	"strconv"
	"strings"
)

// Config is a parsed tesseract option string.
type Config struct {
	// PSM is the page segmentation mode, or -1 when not given.
	PSM int
	// OEM is the OCR engine mode, or -1 when not given.
	OEM int
	// Language overrides Options.Language when non-empty.
	Language string
	// Variables holds "-c name=value" settings in the order given.
	Variables []Variable
}

// Variable is a single Tesseract parameter assignment.
type Variable struct {
	Name  string
	Value string
}

// ParseConfig parses the option subset of the tesseract command line that
// keywords accept in their config argument:
//
//	--psm N        page segmentation mode (0-13)
//	--oem N        OCR engine mode (0-3)
//	--dpi N        input resolution, stored as user_defined_dpi
//	-l LANG        language, overriding the keyword's lang argument
//	-c NAME=VALUE  any Tesseract variable
//
// Both "--psm 6" and "--psm=6" are accepted. An empty string yields a Config
// with nothing set.
func ParseConfig(s string) (Config, error) {
	cfg := Config{PSM: -1, OEM: -1}
	fields := strings.Fields(s)

	for i := 0; i < len(fields); i++ {
		opt := fields[i]
		name, value, inline := strings.Cut(opt, "=")
		if strings.HasPrefix(name, "-c") && len(name) > 2 {
			// "-cname=value"
			name, value, inline = "-c", opt[2:], true
		}

		if !inline {
			if i+1 >= len(fields) {
				return cfg, fmt.Errorf("tesseract option %s needs a value", name)
			}
			i++
			value = fields[i]
		}

		switch name {
		case "--psm":
			n, err := modeValue(name, value, 13)
			if err != nil {
				return cfg, err
			}
			cfg.PSM = n
		case "--oem":
			n, err := modeValue(name, value, 3)
			if err != nil {
				return cfg, err
			}
			cfg.OEM = n
		case "--dpi":
			if _, err := strconv.Atoi(value); err != nil {
				return cfg, fmt.Errorf("invalid --dpi value %q", value)
			}
			cfg.Variables = append(cfg.Variables, Variable{Name: "user_defined_dpi", Value: value})
		case "-l":
			cfg.Language = value
		case "-c":
			k, v, ok := strings.Cut(value, "=")
			if !ok || k == "" {
				return cfg, fmt.Errorf("invalid -c setting %q: want name=value", value)
			}
			cfg.Variables = append(cfg.Variables, Variable{Name: k, Value: v})
		default:
			return cfg, fmt.Errorf("unsupported tesseract option %q", opt)
		}
	}
	return cfg, nil
}

func modeValue(name, value string, max int) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 || n > max {
		return 0, fmt.Errorf("invalid %s value %q: want 0-%d", name, value, max)
	}
	return n, nil
}
