package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/san-kum/carryviz/internal/trace"
)

const (
	boxSize   = 40
	boxGap    = 12
	rowHeight = 70
	labelW    = 70
	marginSVG = 20
)

type svgRow struct {
	label  string
	values []int
	cursor int
	color  string
}

// StepToSVG draws one snapshot as the l1, l2 and result rows of boxes. The
// node each pointer sits on is filled with the row's color.
func StepToSVG(s trace.Step) string {
	rows := []svgRow{
		stateRow("l1", s.First, "#ff00ff"),
		stateRow("l2", s.Second, "#00ffff"),
		{label: "result", values: s.Result.Values, cursor: s.Pointers.Result - 1, color: "#ffff00"},
	}

	cols := 1
	for _, r := range rows {
		cols = max(cols, len(r.values))
	}
	width := marginSVG*2 + labelW + cols*(boxSize+boxGap)
	height := marginSVG*2 + len(rows)*rowHeight + 40

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g font-family="monospace" font-size="16">
`, width, height, width, height))

	for i, r := range rows {
		y := marginSVG + i*rowHeight
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" fill="#888899">%s</text>
`, marginSVG, y+boxSize/2+5, r.label))
		if len(r.values) == 0 {
			sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" fill="#666666">null</text>
`, marginSVG+labelW, y+boxSize/2+5))
			continue
		}
		for j, v := range r.values {
			x := marginSVG + labelW + j*(boxSize+boxGap)
			fill, text := "none", r.color
			if j == r.cursor {
				fill, text = r.color, "#0a0a0a"
			}
			sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" rx="6" fill="%s" stroke="%s" stroke-width="2"/>
<text x="%d" y="%d" fill="%s" text-anchor="middle">%d</text>
`, x, y, boxSize, boxSize, fill, r.color, x+boxSize/2, y+boxSize/2+5, text, v))
		}
	}

	footY := marginSVG + len(rows)*rowHeight + 10
	sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" fill="#ffffff">step %d line %d carry %d: %s</text>
`, marginSVG, footY, s.Number, s.Line, s.Carry, html.EscapeString(s.Description)))

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

func stateRow(label string, st *trace.ListState, color string) svgRow {
	if st == nil {
		return svgRow{label: label, cursor: -1, color: color}
	}
	return svgRow{label: label, values: st.Values, cursor: st.Cursor, color: color}
}
