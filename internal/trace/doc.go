// Package trace simulates the add-two-numbers procedure one instrumented
// instruction at a time and records what a viewer needs to replay it.
//
//   - [Generate]: pure function from two digit slices to a [Trace]
//   - [Step]: immutable snapshot of program state at one instrumented line
//   - [Line]: the fixed line numbers of [Source] that steps are tagged with
//
// # Example
//
//	tr := trace.Generate([]int{2, 4, 3}, []int{5, 6, 4})
//	last := tr.Step(tr.Len() - 1)
//	fmt.Println(last.Result.Values) // [7 0 8]
//
// # Thread Safety
//
// Generate allocates everything it touches, so concurrent calls are safe. A
// Trace is read-only once returned; callers must not modify the slices it
// hands out.
package trace
