// Package digits provides the singly-linked digit chain the tracer walks.
//
// A chain is built once from a slice and is never rewired afterwards, except
// by [Append], which only ever fills an empty next link. Chains built by
// separate calls never share nodes.
package digits

// Node is one decimal digit in a chain.
type Node struct {
	Val  int
	Next *Node
}

// FromSlice builds a chain holding vals in order. An empty slice yields nil.
func FromSlice(vals []int) *Node {
	if len(vals) == 0 {
		return nil
	}
	head := &Node{Val: vals[0]}
	cur := head
	for _, v := range vals[1:] {
		cur.Next = &Node{Val: v}
		cur = cur.Next
	}
	return head
}

// ToSlice returns the values of the chain starting at head.
func ToSlice(head *Node) []int {
	out := make([]int, 0, Len(head))
	for cur := head; cur != nil; cur = cur.Next {
		out = append(out, cur.Val)
	}
	return out
}

func Len(head *Node) int {
	n := 0
	for cur := head; cur != nil; cur = cur.Next {
		n++
	}
	return n
}

// PositionOf returns the 0-based offset of target within the chain starting
// at head, or -1 when target is nil or not part of that chain. Identity, not
// value, is compared.
func PositionOf(head, target *Node) int {
	if target == nil {
		return -1
	}
	pos := 0
	for cur := head; cur != nil; cur = cur.Next {
		if cur == target {
			return pos
		}
		pos++
	}
	return -1
}

// Clone builds an independent chain with the same values.
func Clone(head *Node) *Node {
	return FromSlice(ToSlice(head))
}

// Append attaches a new node holding val after n and returns it. It panics if
// n already has a successor, since that would orphan part of the chain.
func Append(n *Node, val int) *Node {
	if n.Next != nil {
		panic("digits: append would overwrite an existing link")
	}
	n.Next = &Node{Val: val}
	return n.Next
}
