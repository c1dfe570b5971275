package trace

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/san-kum/carryviz/internal/digits"
)

// Generate runs the procedure on first and second and returns every
// instrumented step. The digits are not validated; callers pass values in
// [0, 9].
func Generate(first, second []int) *Trace {
	g := newGenerator(first, second)
	g.run()
	return &Trace{
		first:  append([]int(nil), first...),
		second: append([]int(nil), second...),
		steps:  g.steps,
	}
}

// ExpectedSteps returns the number of steps Generate emits for the pair
// without building the trace: three setup steps, per iteration one loop
// check, three steps per present operand and three result steps, then the
// failing loop check and the return.
func ExpectedSteps(first, second []int) int {
	n := 3
	carry := 0
	for i := 0; i < len(first) || i < len(second) || carry != 0; i++ {
		n += 1 + 3
		if i < len(first) {
			n += 3
			carry += first[i]
		}
		if i < len(second) {
			n += 3
			carry += second[i]
		}
		carry /= 10
	}
	return n + 2
}

type generator struct {
	// untouched copies, used only to turn l1/l2 into offsets
	origFirst  *digits.Node
	origSecond *digits.Node

	l1, l2   *digits.Node
	sentinel *digits.Node
	p        *digits.Node
	carry    int

	setup bool
	steps []Step
}

func newGenerator(first, second []int) *generator {
	return &generator{
		origFirst:  digits.FromSlice(first),
		origSecond: digits.FromSlice(second),
		l1:         digits.FromSlice(first),
		l2:         digits.FromSlice(second),
		steps:      make([]Step, 0, ExpectedSteps(first, second)),
	}
}

func (g *generator) run() {
	g.setup = true
	g.sentinel = &digits.Node{}
	g.p = g.sentinel
	g.emit(LineSentinel, "create sentinel node newHead")

	g.emit(LineCursorInit, "point p at newHead")

	g.carry = 0
	g.emit(LineCarryInit, "initialize carry = 0")
	g.setup = false

	for g.l1 != nil || g.l2 != nil || g.carry != 0 {
		g.emit(LineLoop, fmt.Sprintf("check loop condition: l1=%t, l2=%t, carry=%d",
			g.l1 != nil, g.l2 != nil, g.carry))

		if g.l1 != nil {
			g.emit(LineFirstBranch, "l1 is not null, enter branch")
			v := g.l1.Val
			g.carry += v
			g.emit(LineFirstAdd, fmt.Sprintf("carry += l1.val (%d), carry = %d", v, g.carry))
			g.l1 = g.l1.Next
			g.emit(LineFirstAdvance, "move l1 to next node")
		}

		if g.l2 != nil {
			g.emit(LineSecondBranch, "l2 is not null, enter branch")
			v := g.l2.Val
			g.carry += v
			g.emit(LineSecondAdd, fmt.Sprintf("carry += l2.val (%d), carry = %d", v, g.carry))
			g.l2 = g.l2.Next
			g.emit(LineSecondAdvance, "move l2 to next node")
		}

		d := g.carry % 10
		digits.Append(g.p, d)
		g.emit(LineNewNode, fmt.Sprintf("create node p.next = new ListNode(%d)", d))

		g.carry /= 10
		g.emit(LineCarryUpdate, fmt.Sprintf("update carry = %d", g.carry))

		g.p = g.p.Next
		g.emit(LineCursorAdvance, "move p to next node")
	}

	g.emit(LineLoop, "loop condition is false, exit loop")
	g.emit(LineReturn, fmt.Sprintf("return newHead.next, result = [%s]",
		joinDigits(digits.ToSlice(g.sentinel.Next))))
}

func (g *generator) emit(line Line, desc string) {
	result := ListState{Values: digits.ToSlice(g.sentinel.Next), Cursor: -1}
	if g.setup {
		result.Cursor = 0
	}
	g.steps = append(g.steps, Step{
		Number:      len(g.steps),
		Line:        line,
		Description: desc,
		Variables:   g.variables(),
		First:       listState(g.origFirst, g.l1),
		Second:      listState(g.origSecond, g.l2),
		Result:      result,
		Carry:       g.carry,
		Pointers: Pointers{
			First:  offsetIn(g.origFirst, g.l1),
			Second: offsetIn(g.origSecond, g.l2),
			Result: digits.PositionOf(g.sentinel, g.p),
		},
	})
}

// variables reports all five variables on every step. Their lines are fixed
// regardless of which branch ran.
func (g *generator) variables() []Variable {
	return []Variable{
		{Name: "l1", Value: nodeValue(g.l1), Line: LineFirstAdd, Kind: KindPointer},
		{Name: "l2", Value: nodeValue(g.l2), Line: LineSecondAdd, Kind: KindPointer},
		{Name: "carry", Value: strconv.Itoa(g.carry), Line: LineCarryInit, Kind: KindNumber},
		{Name: "p", Value: nodeValue(g.p), Line: LineCursorInit, Kind: KindPointer},
		{Name: "newHead", Value: nodeValue(g.sentinel), Line: LineSentinel, Kind: KindNode},
	}
}

func listState(orig, cur *digits.Node) *ListState {
	if orig == nil {
		return nil
	}
	return &ListState{
		Values: digits.ToSlice(orig),
		Cursor: offsetIn(orig, cur),
	}
}

// offsetIn maps a working cursor onto the untouched copy of its chain. The
// two chains never share nodes, so the offset comes from how many nodes are
// left rather than from identity.
func offsetIn(orig, cur *digits.Node) int {
	if cur == nil {
		return -1
	}
	return digits.Len(orig) - digits.Len(cur)
}

func nodeValue(n *digits.Node) string {
	if n == nil {
		return "null"
	}
	return fmt.Sprintf("ListNode(%d)", n.Val)
}

func joinDigits(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
