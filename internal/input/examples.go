package input

import "slices"

type Example struct {
	Name   string
	First  []int
	Second []int
	Desc   string
}

var Examples = []Example{
	{Name: "basic", First: []int{2, 4, 3}, Second: []int{5, 6, 4}, Desc: "342 + 465 = 807"},
	{Name: "zero", First: []int{0}, Second: []int{0}, Desc: "0 + 0 = 0"},
	{Name: "carry", First: []int{9, 9, 9, 9, 9, 9, 9}, Second: []int{9, 9, 9, 9}, Desc: "carry ripples past both lists"},
	{Name: "uneven", First: []int{1, 8}, Second: []int{0}, Desc: "81 + 0 = 81"},
}

// GetExample returns the example with the given name, or nil.
func GetExample(name string) *Example {
	for i := range Examples {
		if Examples[i].Name == name {
			ex := Examples[i]
			ex.First = slices.Clone(ex.First)
			ex.Second = slices.Clone(ex.Second)
			return &ex
		}
	}
	return nil
}

func ListExamples() []string {
	names := make([]string, len(Examples))
	for i, ex := range Examples {
		names[i] = ex.Name
	}
	return names
}
