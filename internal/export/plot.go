package export

import (
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/carryviz/internal/trace"
)

// Series returns the carry and the result length at every step.
func Series(tr *trace.Trace) (carry, length []float64) {
	carry = make([]float64, tr.Len())
	length = make([]float64, tr.Len())
	for i, s := range tr.Steps() {
		carry[i] = float64(s.Carry)
		length[i] = float64(len(s.Result.Values))
	}
	return carry, length
}

// Plot charts both series, one graph each.
func Plot(tr *trace.Trace, width, height int) string {
	carry, length := Series(tr)
	if len(carry) == 0 {
		return ""
	}
	c := asciigraph.Plot(carry,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("carry per step"),
	)
	l := asciigraph.Plot(length,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("result length per step"),
	)
	return c + "\n\n" + l
}
