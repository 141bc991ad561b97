package fontawesome

import (
	"context"
	"fmt"
	"html/template"
	"strconv"
	"strings"
)

// Funcs returns the template functions pages call:
//
//	{{ fa_load "style=solid" "use_css=true" }}
//	{{ fa_load_css }}
//	{{ fa_load_js "version=6.4.2" }}
//	{{ fa_icon "fa-solid fa-user" "size=2x" "rotation=90" }}
//	{{ fa_stacked_icon "first=fa-solid fa-square" "second=fa-brands fa-github" "inverse=true" }}
//
// Options are "key=value" strings; load options start from Defaults.
func (fa *FontAwesome) Funcs() template.FuncMap {
	return template.FuncMap{
		"fa_load": func(args ...string) (template.HTML, error) {
			opts, err := fa.parseLoadOptions(args)
			if err != nil {
				return "", err
			}
			return fa.Load(context.Background(), opts)
		},
		"fa_load_css": func(args ...string) (template.HTML, error) {
			opts, err := fa.parseLoadOptions(args)
			if err != nil {
				return "", err
			}
			return fa.LoadCSS(context.Background(), opts)
		},
		"fa_load_js": func(args ...string) (template.HTML, error) {
			opts, err := fa.parseLoadOptions(args)
			if err != nil {
				return "", err
			}
			return fa.LoadJS(context.Background(), opts)
		},
		"fa_icon": func(name string, args ...string) (template.HTML, error) {
			opts, err := parseIconOptions(args)
			if err != nil {
				return "", err
			}
			return RenderIcon(name, opts), nil
		},
		"fa_stacked_icon": func(args ...string) (template.HTML, error) {
			opts, err := parseStackOptions(args)
			if err != nil {
				return "", err
			}
			return RenderStackedIcon(opts), nil
		},
	}
}

// eachOption splits "key=value" arguments and hands them to set.
func eachOption(args []string, set func(key, value string) error) error {
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("fontawesome: option %q is not key=value", arg)
		}
		if err := set(strings.TrimSpace(key), value); err != nil {
			return err
		}
	}
	return nil
}

func parseBool(key, value string) (bool, error) {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("fontawesome: option %s: %q is not a boolean", key, value)
	}
	return b, nil
}

func unknownOption(key string) error {
	return fmt.Errorf("fontawesome: unknown option %q", key)
}

func (fa *FontAwesome) parseLoadOptions(args []string) (LoadOptions, error) {
	opts := fa.Defaults()
	err := eachOption(args, func(key, value string) error {
		var err error
		switch key {
		case "version":
			opts.Version = value
		case "style":
			opts.Style, err = ParseStyle(value)
		case "minified":
			opts.Minified, err = parseBool(key, value)
		case "use_css":
			opts.UseCSS, err = parseBool(key, value)
		case "css_integrity":
			opts.CSSIntegrity = value
		case "core_css_integrity":
			opts.CoreCSSIntegrity = value
		case "js_integrity":
			opts.JSIntegrity = value
		case "core_js_integrity":
			opts.CoreJSIntegrity = value
		default:
			err = unknownOption(key)
		}
		return err
	})
	return opts, err
}

func parseIconOptions(args []string) (IconOptions, error) {
	var opts IconOptions
	err := eachOption(args, func(key, value string) error {
		var err error
		switch key {
		case "inverse":
			opts.Inverse, err = parseBool(key, value)
		case "size":
			opts.Size = value
		case "fixed_width", "fw":
			opts.FixedWidth, err = parseBool(key, value)
		case "rotation":
			opts.Rotation = value
		case "animation":
			opts.Animation = value
		case "border":
			opts.Border, err = parseBool(key, value)
		case "pull":
			opts.Pull = value
		case "swap_opacity":
			opts.SwapOpacity, err = parseBool(key, value)
		case "style":
			opts.CSS = value
		case "aria_hidden":
			var hidden bool
			hidden, err = parseBool(key, value)
			opts.Announce = !hidden
		default:
			err = unknownOption(key)
		}
		return err
	})
	return opts, err
}

func parseStackOptions(args []string) (StackOptions, error) {
	var opts StackOptions
	err := eachOption(args, func(key, value string) error {
		var err error
		switch key {
		case "first":
			opts.First = value
		case "second":
			opts.Second = value
		case "first_stack":
			opts.FirstStack = value
		case "second_stack":
			opts.SecondStack = value
		case "inverse":
			opts.Inverse, err = parseBool(key, value)
		case "size":
			opts.Size = value
		case "style":
			opts.CSS = value
		case "first_style":
			opts.FirstCSS = value
		case "second_style":
			opts.SecondCSS = value
		case "aria_hidden":
			var hidden bool
			hidden, err = parseBool(key, value)
			opts.Announce = !hidden
		default:
			err = unknownOption(key)
		}
		return err
	})
	if err == nil && (opts.First == "" || opts.Second == "") {
		err = fmt.Errorf("fontawesome: fa_stacked_icon needs first= and second=")
	}
	return opts, err
}
