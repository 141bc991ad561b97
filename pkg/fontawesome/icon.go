package fontawesome

import (
	"fmt"
	"html"
	"html/template"
	"strconv"
	"strings"
)

// IconOptions decorate a single <i> icon. String fields accept the class
// with or without its "fa-" prefix.
type IconOptions struct {
	// Stack places the icon in a stack slot, e.g. "1x" or "fa-stack-2x".
	Stack   string
	Inverse bool
	// Size is e.g. "2x", "lg" or "fa-xs".
	Size       string
	FixedWidth bool
	// Rotation is "90", "180", "270", "flip-horizontal", ... A bare number
	// becomes "rotate-<n>".
	Rotation  string
	Animation string
	Border    bool
	// Pull is "left" or "right".
	Pull        string
	SwapOpacity bool
	// CSS is an inline style attribute.
	CSS string
	// Announce exposes the icon to assistive technology. Icons are
	// aria-hidden otherwise.
	Announce bool
}

// StackOptions describe two icons layered in a fa-stack span.
type StackOptions struct {
	First  string
	Second string
	// FirstStack and SecondStack default to "2x" and "1x".
	FirstStack  string
	SecondStack string
	// Inverse applies to whichever icon sits in the 1x slot.
	Inverse bool
	Size    string
	// CSS styles the span; FirstCSS and SecondCSS style the icons.
	CSS       string
	FirstCSS  string
	SecondCSS string
	Announce  bool
}

// RenderIcon returns the <i> element for the icon classes in name, e.g.
// "fa-solid fa-user".
func RenderIcon(name string, opts IconOptions) template.HTML {
	return template.HTML(renderIcon(name, opts))
}

func renderIcon(name string, opts IconOptions) string {
	classes := []string{strings.TrimSpace(name)}
	if opts.Stack != "" {
		classes = append(classes, "fa-stack-"+stackSlot(opts.Stack))
	}
	if opts.Inverse {
		classes = append(classes, "fa-inverse")
	}
	if opts.Size != "" {
		classes = append(classes, "fa-"+trimFA(opts.Size))
	}
	if opts.FixedWidth {
		classes = append(classes, "fa-fw")
	}
	if opts.Rotation != "" {
		rotation := trimFA(opts.Rotation)
		if _, err := strconv.Atoi(rotation); err == nil {
			rotation = "rotate-" + rotation
		}
		classes = append(classes, "fa-"+rotation)
	}
	if opts.Animation != "" {
		classes = append(classes, "fa-"+trimFA(opts.Animation))
	}
	if opts.Border {
		classes = append(classes, "fa-border")
	}
	if opts.Pull != "" {
		classes = append(classes, "fa-pull-"+strings.TrimPrefix(trimFA(opts.Pull), "pull-"))
	}
	if opts.SwapOpacity {
		classes = append(classes, "fa-swap-opacity")
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<i class="%s"`, html.EscapeString(strings.Join(classes, " ")))
	if opts.CSS != "" {
		fmt.Fprintf(&b, ` style="%s"`, html.EscapeString(opts.CSS))
	}
	if !opts.Announce {
		b.WriteString(` aria-hidden="true"`)
	}
	b.WriteString(`></i>`)
	return b.String()
}

// RenderStackedIcon returns a fa-stack span holding two icons.
func RenderStackedIcon(opts StackOptions) template.HTML {
	firstStack := stackSlot(opts.FirstStack)
	if firstStack == "" {
		firstStack = "2x"
	}
	secondStack := stackSlot(opts.SecondStack)
	if secondStack == "" {
		secondStack = "1x"
	}

	class := "fa-stack"
	if opts.Size != "" {
		class += " fa-" + trimFA(opts.Size)
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<span class="%s"`, html.EscapeString(class))
	if opts.CSS != "" {
		fmt.Fprintf(&b, ` style="%s"`, html.EscapeString(opts.CSS))
	}
	if !opts.Announce {
		b.WriteString(` aria-hidden="true"`)
	}
	b.WriteString(">")
	for _, icon := range []struct{ name, stack, css string }{
		{opts.First, firstStack, opts.FirstCSS},
		{opts.Second, secondStack, opts.SecondCSS},
	} {
		b.WriteString("\n    ")
		b.WriteString(renderIcon(icon.name, IconOptions{
			Stack:    icon.stack,
			Inverse:  opts.Inverse && icon.stack == "1x",
			CSS:      icon.css,
			Announce: true,
		}))
	}
	b.WriteString("\n</span>")
	return template.HTML(b.String())
}

func trimFA(s string) string {
	return strings.TrimPrefix(strings.TrimSpace(s), "fa-")
}

// stackSlot normalizes "fa-stack-1x", "stack-1x" and "1x" to "1x".
func stackSlot(s string) string {
	return strings.TrimPrefix(trimFA(s), "stack-")
}
