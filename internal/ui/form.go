package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type fieldKind int

const (
	fieldInput fieldKind = iota
	fieldSelect
)

// field is one form row: either a free-text input or a fixed-option select
// cycled with the arrow keys.
type field struct {
	key     string
	label   string
	kind    fieldKind
	input   textinput.Model
	options []string
	optIdx  int
}

func newInputField(key, label, value, placeholder string) field {
	in := textinput.New()
	in.Placeholder = placeholder
	in.SetValue(value)
	in.CharLimit = 512
	return field{key: key, label: label, kind: fieldInput, input: in}
}

func newSelectField(key, label string, options []string, selected string) field {
	idx := 0
	for i, opt := range options {
		if opt == selected {
			idx = i
			break
		}
	}
	return field{key: key, label: label, kind: fieldSelect, options: options, optIdx: idx}
}

// form drives focus and editing across a field list. Screens embed it and
// read values back by key on submit.
type form struct {
	fields []field
	focus  int
	styles Styles
}

func newForm(styles Styles, fields ...field) form {
	f := form{fields: fields, styles: styles}
	if len(f.fields) > 0 && f.fields[0].kind == fieldInput {
		f.fields[0].input.Focus()
	}
	return f
}

func (f *form) value(key string) string {
	for i := range f.fields {
		if f.fields[i].key != key {
			continue
		}
		if f.fields[i].kind == fieldSelect {
			if len(f.fields[i].options) == 0 {
				return ""
			}
			return f.fields[i].options[f.fields[i].optIdx]
		}
		return f.fields[i].input.Value()
	}
	return ""
}

func (f *form) setOptions(key string, options []string, selected string) {
	for i := range f.fields {
		if f.fields[i].key == key {
			f.fields[i] = newSelectField(key, f.fields[i].label, options, selected)
			return
		}
	}
}

func (f *form) Update(msg tea.Msg) tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch keyMsg.String() {
	case "tab", "down":
		f.moveFocus(1)
		return nil
	case "shift+tab", "up":
		f.moveFocus(-1)
		return nil
	case "left", "right":
		cur := &f.fields[f.focus]
		if cur.kind == fieldSelect && len(cur.options) > 0 {
			delta := 1
			if keyMsg.String() == "left" {
				delta = len(cur.options) - 1
			}
			cur.optIdx = (cur.optIdx + delta) % len(cur.options)
			return nil
		}
	}
	cur := &f.fields[f.focus]
	if cur.kind == fieldInput {
		var cmd tea.Cmd
		cur.input, cmd = cur.input.Update(msg)
		return cmd
	}
	return nil
}

func (f *form) moveFocus(delta int) {
	if len(f.fields) == 0 {
		return
	}
	if f.fields[f.focus].kind == fieldInput {
		f.fields[f.focus].input.Blur()
	}
	f.focus = (f.focus + delta + len(f.fields)) % len(f.fields)
	if f.fields[f.focus].kind == fieldInput {
		f.fields[f.focus].input.Focus()
	}
}

func (f *form) View() string {
	var sb strings.Builder
	for i := range f.fields {
		label := f.styles.Label.Render(f.fields[i].label + ":")
		if i == f.focus {
			label = f.styles.Selected.Render("> " + f.fields[i].label + ":")
		} else {
			label = "  " + label
		}
		sb.WriteString(label)
		sb.WriteString(" ")
		if f.fields[i].kind == fieldSelect {
			val := ""
			if len(f.fields[i].options) > 0 {
				val = f.fields[i].options[f.fields[i].optIdx]
			}
			sb.WriteString("‹ " + val + " ›")
		} else {
			sb.WriteString(f.fields[i].input.View())
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
