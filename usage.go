package opts

import (
	"fmt"
	"strings"

	"github.com/pressly/opts/pkg/textutil"
)

const (
	usageWidth   = 80
	usagePadding = 4
)

// Usage renders the option set as help text: the usage line, if one was
// declared, followed by an Options section listing every declaration in
// declaration order. Field aliases are shown with their placeholder name and
// the rest declaration as a literal <>.
func (s *Set) Usage() string {
	var b strings.Builder
	writeUsageLine(&b, s.usage)

	if len(s.all) > 0 {
		b.WriteString("Options:\n")
		rows := make([]usageRow, 0, len(s.all))
		for _, def := range s.all {
			rows = append(rows, usageRow{
				label:       displayKeys(def),
				description: def.Description,
			})
		}
		writeRows(&b, rows)
	}

	return strings.TrimRight(b.String(), "\n")
}

// Usage renders the command set as help text: the usage line, if one was
// declared, followed by a Commands section listing every registered command
// in declaration order.
func (c *Commands) Usage() string {
	var b strings.Builder
	writeUsageLine(&b, c.usage)

	if len(c.names) > 0 {
		b.WriteString("Commands:\n")
		rows := make([]usageRow, 0, len(c.names))
		for _, name := range c.names {
			rows = append(rows, usageRow{
				label:       name,
				description: c.entries[name].description,
			})
		}
		writeRows(&b, rows)
	}

	return strings.TrimRight(b.String(), "\n")
}

// displayKeys returns the comma-joined display forms for a declaration: -x
// for one-character aliases, --xyz for longer ones, with =PLACEHOLDER
// appended for fields.
func displayKeys(def *Definition) string {
	if def.Kind == KindRest {
		return restKey
	}
	forms := make([]string, 0, len(def.Keys))
	for _, key := range def.Keys {
		form := "--" + key
		if len(key) == 1 {
			form = "-" + key
		}
		if def.Kind == KindField {
			form += "=" + def.Placeholder
		}
		forms = append(forms, form)
	}
	return strings.Join(forms, ", ")
}

type usageRow struct {
	label       string
	description string
}

func writeUsageLine(b *strings.Builder, usage string) {
	if usage == "" {
		return
	}
	b.WriteString("Usage:\n")
	b.WriteString("  " + usage + "\n")
	b.WriteString("\n")
}

// writeRows prints label/description pairs with the labels left-padded to a
// shared column and the descriptions wrapped at the usual width.
func writeRows(b *strings.Builder, rows []usageRow) {
	maxLen := 0
	for _, row := range rows {
		if len(row.label) > maxLen {
			maxLen = len(row.label)
		}
	}

	labelWidth := maxLen + usagePadding
	wrapWidth := usageWidth - labelWidth

	for _, row := range rows {
		lines := textutil.Wrap(row.description, wrapWidth)
		if len(lines) == 0 {
			fmt.Fprintf(b, "  %s\n", row.label)
			continue
		}

		padding := strings.Repeat(" ", labelWidth-len(row.label))
		fmt.Fprintf(b, "  %s%s%s\n", row.label, padding, lines[0])

		indent := strings.Repeat(" ", labelWidth+2)
		for _, line := range lines[1:] {
			fmt.Fprintf(b, "%s%s\n", indent, line)
		}
	}
}
