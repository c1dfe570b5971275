package digits

import (
	"slices"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		vals []int
	}{
		{"single", []int{0}},
		{"three", []int{2, 4, 3}},
		{"long", []int{9, 9, 9, 9, 9, 9, 9}},
		{"mixed", []int{1, 0, 8, 0, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			head := FromSlice(tt.vals)
			if got := ToSlice(head); !slices.Equal(got, tt.vals) {
				t.Errorf("ToSlice(FromSlice(%v)) = %v", tt.vals, got)
			}
			if got := Len(head); got != len(tt.vals) {
				t.Errorf("Len = %d, want %d", got, len(tt.vals))
			}
		})
	}
}

func TestEmpty(t *testing.T) {
	if head := FromSlice(nil); head != nil {
		t.Fatalf("expected nil head for empty input, got %+v", head)
	}
	if head := FromSlice([]int{}); head != nil {
		t.Fatalf("expected nil head for empty slice, got %+v", head)
	}
	if got := ToSlice(nil); len(got) != 0 {
		t.Errorf("ToSlice(nil) = %v, want empty", got)
	}
	if got := Len(nil); got != 0 {
		t.Errorf("Len(nil) = %d", got)
	}
}

func TestPositionOf(t *testing.T) {
	head := FromSlice([]int{7, 0, 8})
	second := head.Next
	third := head.Next.Next

	if got := PositionOf(head, head); got != 0 {
		t.Errorf("head position = %d", got)
	}
	if got := PositionOf(head, second); got != 1 {
		t.Errorf("second position = %d", got)
	}
	if got := PositionOf(head, third); got != 2 {
		t.Errorf("third position = %d", got)
	}
	if got := PositionOf(head, nil); got != -1 {
		t.Errorf("nil position = %d", got)
	}

	// same values, different chain
	other := FromSlice([]int{7, 0, 8})
	if got := PositionOf(head, other.Next); got != -1 {
		t.Errorf("foreign node position = %d, want -1", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	head := FromSlice([]int{1, 2, 3})
	c := Clone(head)

	if !slices.Equal(ToSlice(c), []int{1, 2, 3}) {
		t.Fatalf("clone values = %v", ToSlice(c))
	}
	for a, b := head, c; a != nil; a, b = a.Next, b.Next {
		if a == b {
			t.Fatal("clone shares a node with the source chain")
		}
	}

	c.Val = 9
	if head.Val != 1 {
		t.Error("mutating the clone changed the source")
	}
}

func TestAppend(t *testing.T) {
	sentinel := &Node{}
	p := Append(sentinel, 7)
	p = Append(p, 0)
	Append(p, 8)

	if got := ToSlice(sentinel.Next); !slices.Equal(got, []int{7, 0, 8}) {
		t.Errorf("appended chain = %v", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic when appending over an existing link")
		}
	}()
	Append(sentinel, 1)
}
