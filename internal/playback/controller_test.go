package playback

import (
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/carryviz/internal/trace"
)

var _ = Describe("Controller", func() {
	var (
		clk *manualClock
		c   *Controller
	)

	BeforeEach(func() {
		clk = &manualClock{}
		c = New(WithClock(clk), WithInterval(time.Second))
	})

	AfterEach(func() {
		c.Close()
	})

	It("starts on the first step of the default trace, paused", func() {
		st := c.State()
		Expect(st.Index).To(Equal(0))
		Expect(st.Total).To(Equal(35))
		Expect(st.Playing).To(BeFalse())
		Expect(st.First).To(Equal([]int{2, 4, 3}))
		Expect(st.Second).To(Equal([]int{5, 6, 4}))
		Expect(st.Step.Line).To(Equal(trace.LineSentinel))
	})

	Describe("navigation", func() {
		It("does not go below the first step", func() {
			c.Previous()
			Expect(c.Index()).To(Equal(0))
		})

		It("steps forward and back", func() {
			c.Next()
			c.Next()
			Expect(c.Index()).To(Equal(2))
			c.Previous()
			Expect(c.Index()).To(Equal(1))
		})

		It("does not go past the last step", func() {
			last := c.Total() - 1
			c.GoTo(last)
			c.Next()
			Expect(c.Index()).To(Equal(last))
		})

		DescribeTable("clamps GoTo targets",
			func(target, want int) {
				c.GoTo(target)
				Expect(c.Index()).To(Equal(want))
			},
			Entry("negative", -5, 0),
			Entry("zero", 0, 0),
			Entry("inside", 17, 17),
			Entry("last", 34, 34),
			Entry("past the end", 35+10, 34),
		)

		It("exposes the snapshot for the current index", func() {
			for i := 0; i < c.Total(); i++ {
				c.GoTo(i)
				Expect(c.State().Step.Number).To(Equal(i))
			}
		})

		It("jumps to both ends", func() {
			c.Last()
			Expect(c.Index()).To(Equal(34))
			c.First()
			Expect(c.Index()).To(Equal(0))
		})
	})

	Describe("play state", func() {
		It("toggles", func() {
			c.TogglePlay()
			Expect(c.Playing()).To(BeTrue())
			c.TogglePlay()
			Expect(c.Playing()).To(BeFalse())
		})

		It("pauses idempotently", func() {
			c.TogglePlay()
			c.Pause()
			Expect(c.Playing()).To(BeFalse())
			c.Pause()
			Expect(c.Playing()).To(BeFalse())
			Expect(clk.Pending()).To(Equal(0))
		})

		It("resets to the first step and stops", func() {
			c.GoTo(10)
			c.TogglePlay()
			c.Reset()
			Expect(c.Index()).To(Equal(0))
			Expect(c.Playing()).To(BeFalse())
			Expect(clk.Pending()).To(Equal(0))
		})
	})

	Describe("autoplay", func() {
		It("schedules exactly one tick at the configured interval", func() {
			c.TogglePlay()
			Expect(clk.Pending()).To(Equal(1))
			Expect(clk.Last().d).To(Equal(time.Second))

			c.Next()
			c.GoTo(5)
			Expect(clk.Pending()).To(Equal(1))
		})

		It("advances one step per tick", func() {
			c.TogglePlay()
			Expect(clk.Fire()).To(BeTrue())
			Expect(c.Index()).To(Equal(1))
			Expect(clk.Fire()).To(BeTrue())
			Expect(c.Index()).To(Equal(2))
		})

		It("pauses itself on the last step and stops ticking", func() {
			c.TogglePlay()
			ticks := 0
			for clk.Fire() {
				ticks++
			}
			Expect(ticks).To(Equal(34))
			Expect(c.Index()).To(Equal(34))
			Expect(c.Playing()).To(BeFalse())
			Expect(clk.Pending()).To(Equal(0))
		})

		It("refuses to keep playing from the last step", func() {
			c.Last()
			c.TogglePlay()
			Expect(c.Playing()).To(BeFalse())
			Expect(clk.Pending()).To(Equal(0))
		})

		It("ignores a tick scheduled before the inputs changed", func() {
			c.TogglePlay()
			stale := clk.Last()

			c.UpdateInputs([]int{1}, []int{2})
			stale.f()

			Expect(c.Index()).To(Equal(0))
			Expect(c.Playing()).To(BeFalse())
		})

		It("stops ticking after Close", func() {
			c.TogglePlay()
			c.Close()
			Expect(clk.Pending()).To(Equal(0))
			Expect(clk.Fire()).To(BeFalse())

			c.TogglePlay()
			Expect(clk.Pending()).To(Equal(0))
		})
	})

	Describe("UpdateInputs", func() {
		It("regenerates the trace and resets playback", func() {
			c.GoTo(12)
			c.TogglePlay()

			c.UpdateInputs([]int{0}, []int{0})

			st := c.State()
			Expect(st.Index).To(Equal(0))
			Expect(st.Playing).To(BeFalse())
			Expect(st.Total).To(Equal(15))
			Expect(st.First).To(Equal([]int{0}))
			Expect(st.Second).To(Equal([]int{0}))
			Expect(c.Trace().Result()).To(Equal([]int{0}))
			Expect(clk.Pending()).To(Equal(0))
		})

		It("always leaves a non-empty trace", func() {
			inputs := [][2][]int{
				{{1, 2}, {3, 4}},
				{{9, 9, 9}, {1}},
				{{5}, {5}},
				{{0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, {9}},
			}
			for _, in := range inputs {
				c.Next()
				c.TogglePlay()
				c.UpdateInputs(in[0], in[1])
				Expect(c.Index()).To(Equal(0))
				Expect(c.Playing()).To(BeFalse())
				Expect(c.Total()).To(BeNumerically(">", 0))
			}
		})

		It("does not alias the caller's slices", func() {
			a := []int{1, 2}
			c.UpdateInputs(a, []int{3})
			a[0] = 7
			Expect(c.State().First).To(Equal([]int{1, 2}))
		})
	})

	Describe("observers", func() {
		It("are notified on changes only", func() {
			var mu sync.Mutex
			var seen []State
			clk = &manualClock{}
			c = New(WithClock(clk), WithOnChange(func(s State) {
				mu.Lock()
				defer mu.Unlock()
				seen = append(seen, s)
			}))

			c.Previous()
			c.Next()
			c.Next()
			c.TogglePlay()
			clk.Fire()

			mu.Lock()
			defer mu.Unlock()
			Expect(seen).To(HaveLen(4))
			Expect(seen[0].Index).To(Equal(1))
			Expect(seen[2].Playing).To(BeTrue())
			Expect(seen[3].Index).To(Equal(3))
		})
	})
})

var _ = Describe("Controller with the real clock", func() {
	It("plays a short trace to the end and pauses", func() {
		c := New(WithInputs([]int{0}, []int{0}), WithInterval(time.Millisecond))
		DeferCleanup(c.Close)

		c.TogglePlay()
		Eventually(c.Playing).WithTimeout(2 * time.Second).Should(BeFalse())
		Expect(c.Index()).To(Equal(14))
		Consistently(c.Index).WithTimeout(20 * time.Millisecond).Should(Equal(14))
	})
})
