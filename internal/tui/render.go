package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/san-kum/carryviz/internal/trace"
)

// renderCode prints the listing with the executing line highlighted and
// each variable shown on the line it belongs to.
func renderCode(s styles, step trace.Step) string {
	annotations := make(map[trace.Line][]string)
	for _, v := range step.Variables {
		annotations[v.Line] = append(annotations[v.Line], v.Name+" = "+v.Value)
	}

	var b strings.Builder
	for i, src := range trace.Source {
		line := trace.Line(i + 1)
		no := s.lineNo.Render(fmt.Sprintf("%2d ", line))
		text := fmt.Sprintf("%-46s", src)
		if line == step.Line {
			b.WriteString(s.pointer.Render("▸") + no + s.active.Render(text))
		} else {
			b.WriteString(" " + no + s.dim.Render(text))
		}
		if notes := annotations[line]; len(notes) > 0 {
			b.WriteString(" " + s.annot.Render(strings.Join(notes, ", ")))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderRow draws a chain as "2 → 4 → 3", highlighting the node at cursor
// and labelling it with pointer.
func renderRow(s styles, label, pointer string, values []int, cursor int) string {
	var b strings.Builder
	b.WriteString(s.dim.Render(fmt.Sprintf("%-7s", label)))
	if len(values) == 0 {
		b.WriteString(s.dimmer.Render("null"))
		return b.String()
	}

	for i, v := range values {
		if i > 0 {
			b.WriteString(s.dimmer.Render(" → "))
		}
		cell := " " + valueLabel(v) + " "
		if i == cursor {
			b.WriteString(s.cursor.Render(cell))
		} else {
			b.WriteString(s.node.Render(cell))
		}
	}
	b.WriteString(s.dimmer.Render(" → null"))
	if cursor < 0 || cursor >= len(values) {
		b.WriteString("  " + s.pointer.Render(pointer+" = null"))
	} else {
		b.WriteString("  " + s.pointer.Render("◂ "+pointer))
	}
	return b.String()
}

// valueLabel prints a digit, or the sentinel marker for -1.
func valueLabel(v int) string {
	if v < 0 {
		return "·"
	}
	return strconv.Itoa(v)
}

func renderLists(s styles, step trace.Step) string {
	var rows []string
	rows = append(rows, operandRow(s, "l1", step.First))
	rows = append(rows, operandRow(s, "l2", step.Second))

	// the sentinel leads the result row so p has a node to sit on during
	// setup
	result := append([]int{-1}, step.Result.Values...)
	cursor := step.Pointers.Result
	rows = append(rows, renderRow(s, "result", "p", result, cursor))
	return strings.Join(rows, "\n")
}

func operandRow(s styles, name string, st *trace.ListState) string {
	if st == nil {
		return renderRow(s, name, name, nil, -1)
	}
	return renderRow(s, name, name, st.Values, st.Cursor)
}
