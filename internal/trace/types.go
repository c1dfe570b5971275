package trace

import (
	"fmt"
	"slices"
)

// VarKind tags what a Variable refers to.
type VarKind int

const (
	KindPointer VarKind = iota
	KindNumber
	KindNode
)

func (k VarKind) String() string {
	switch k {
	case KindPointer:
		return "pointer"
	case KindNumber:
		return "number"
	case KindNode:
		return "node"
	}
	return fmt.Sprintf("VarKind(%d)", int(k))
}

func (k VarKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *VarKind) UnmarshalText(b []byte) error {
	for _, v := range []VarKind{KindPointer, KindNumber, KindNode} {
		if v.String() == string(b) {
			*k = v
			return nil
		}
	}
	return fmt.Errorf("unknown variable kind %q", b)
}

// Variable is one named value observed at a step.
type Variable struct {
	Name  string  `json:"name"`
	Value string  `json:"value"`
	Line  Line    `json:"line"`
	Kind  VarKind `json:"kind"`
}

// Pointers holds the offsets of l1, l2 and p. -1 means null.
type Pointers struct {
	First  int `json:"l1"`
	Second int `json:"l2"`
	Result int `json:"p"`
}

// ListState is the full content of one chain and where its pointer sits.
// Cursor is -1 when the pointer is null or not tracked.
type ListState struct {
	Values []int `json:"values"`
	Cursor int   `json:"cursor"`
}

// Step is the program state right after the instruction at Line executed.
// First and Second are nil when the corresponding operand is empty.
type Step struct {
	Number      int        `json:"step"`
	Line        Line       `json:"line"`
	Description string     `json:"description"`
	Variables   []Variable `json:"variables"`
	First       *ListState `json:"l1"`
	Second      *ListState `json:"l2"`
	Result      ListState  `json:"result"`
	Carry       int        `json:"carry"`
	Pointers    Pointers   `json:"pointers"`
}

// Trace is the ordered, immutable list of steps for one input pair.
type Trace struct {
	first  []int
	second []int
	steps  []Step
}

func (t *Trace) Len() int { return len(t.steps) }

// Step returns the i-th step. It panics when i is out of range.
func (t *Trace) Step(i int) Step { return t.steps[i] }

// Steps returns the steps in order. The returned slice is a copy, but the
// steps share their inner slices with the trace.
func (t *Trace) Steps() []Step { return slices.Clone(t.steps) }

func (t *Trace) First() []int  { return slices.Clone(t.first) }
func (t *Trace) Second() []int { return slices.Clone(t.second) }

// Result returns the digits returned by the procedure, least significant
// first.
func (t *Trace) Result() []int {
	if len(t.steps) == 0 {
		return nil
	}
	return slices.Clone(t.steps[len(t.steps)-1].Result.Values)
}
