package trace

import "fmt"

// Line is a 1-based line number in Source that a step can be tagged with.
type Line int

const (
	LineFunctionStart Line = 1
	LineSentinel      Line = 2
	LineCursorInit    Line = 3
	LineCarryInit     Line = 4
	LineLoop          Line = 5
	LineFirstBranch   Line = 6
	LineFirstAdd      Line = 7
	LineFirstAdvance  Line = 8
	LineSecondBranch  Line = 10
	LineSecondAdd     Line = 11
	LineSecondAdvance Line = 12
	LineNewNode       Line = 14
	LineCarryUpdate   Line = 15
	LineCursorAdvance Line = 16
	LineReturn        Line = 18
)

var lineNames = map[Line]string{
	LineFunctionStart: "function start",
	LineSentinel:      "sentinel creation",
	LineCursorInit:    "result-cursor init",
	LineCarryInit:     "carry init",
	LineLoop:          "loop condition",
	LineFirstBranch:   "first-operand branch entry",
	LineFirstAdd:      "first-operand carry accumulation",
	LineFirstAdvance:  "first-operand advance",
	LineSecondBranch:  "second-operand branch entry",
	LineSecondAdd:     "second-operand carry accumulation",
	LineSecondAdvance: "second-operand advance",
	LineNewNode:       "node creation",
	LineCarryUpdate:   "carry update",
	LineCursorAdvance: "result-cursor advance",
	LineReturn:        "return",
}

func (l Line) String() string {
	if name, ok := lineNames[l]; ok {
		return name
	}
	return fmt.Sprintf("line %d", int(l))
}

// Instrumented reports whether steps can be tagged with l.
func (l Line) Instrumented() bool {
	_, ok := lineNames[l]
	return ok && l != LineFunctionStart
}

// Source is the procedure the trace animates, one entry per line. Source[0]
// is line 1.
var Source = []string{
	"public ListNode addTwoNumbers(ListNode l1, ListNode l2) {",
	"    ListNode newHead = new ListNode();",
	"    ListNode p = newHead;",
	"    int carry = 0;",
	"    while (l1 != null || l2 != null || carry != 0) {",
	"        if (l1 != null) {",
	"            carry += l1.val;",
	"            l1 = l1.next;",
	"        }",
	"        if (l2 != null) {",
	"            carry += l2.val;",
	"            l2 = l2.next;",
	"        }",
	"        p.next = new ListNode(carry % 10);",
	"        carry = carry / 10;",
	"        p = p.next;",
	"    }",
	"    return newHead.next;",
	"}",
}

// SourceLine returns the text of line l, or "" when l is outside Source.
func SourceLine(l Line) string {
	if l < 1 || int(l) > len(Source) {
		return ""
	}
	return Source[l-1]
}
