package navigator_test

import (
	"bytes"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/travisdwitt/oakview/internal/navigator"
)

type fakeLayout struct {
	offsets navigator.Offsets
}

func (l *fakeLayout) SectionOffsets() navigator.Offsets {
	return l.offsets
}

type recordingScroller struct {
	commands []navigator.ScrollCommand
}

func (s *recordingScroller) ScrollTo(cmd navigator.ScrollCommand) {
	s.commands = append(s.commands, cmd)
}

func pageOffsets() navigator.Offsets {
	return navigator.Offsets{
		navigator.SectionDemo:   0,
		navigator.SectionMap:    800,
		navigator.SectionCharts: 1600,
		navigator.SectionAbout:  2400,
	}
}

var _ = Describe("Navigator", func() {
	var (
		layout   *fakeLayout
		scroller *recordingScroller
		logs     *bytes.Buffer
		nav      *navigator.Navigator
	)

	BeforeEach(func() {
		layout = &fakeLayout{offsets: pageOffsets()}
		scroller = &recordingScroller{}
		logs = &bytes.Buffer{}
		log := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
		nav = navigator.New(layout, scroller, log)
	})

	It("starts on the demo section", func() {
		Expect(nav.CurrentActive()).To(Equal(navigator.SectionDemo))
	})

	Describe("OnScroll", func() {
		It("keeps demo active at the top of the page", func() {
			Expect(nav.OnScroll(0, 900, pageOffsets())).To(Equal(navigator.SectionDemo))
		})

		It("activates map once the probe passes its top", func() {
			Expect(navigator.ProbePosition(750, 900)).To(Equal(1050.0))
			Expect(nav.OnScroll(750, 900, pageOffsets())).To(Equal(navigator.SectionMap))
			Expect(nav.CurrentActive()).To(Equal(navigator.SectionMap))
		})

		It("treats an offset equal to the probe as qualifying", func() {
			// probe = 500 + 900/3 = 800
			Expect(nav.OnScroll(500, 900, pageOffsets())).To(Equal(navigator.SectionMap))
		})

		It("picks the deepest qualifying section", func() {
			Expect(nav.OnScroll(5000, 900, pageOffsets())).To(Equal(navigator.SectionAbout))
		})

		It("never moves backwards as the probe increases", func() {
			prev := navigator.SectionDemo
			for y := 0.0; y <= 3000; y += 25 {
				got := nav.OnScroll(y, 900, pageOffsets())
				Expect(got).To(BeNumerically(">=", prev), "scrollY=%v", y)
				prev = got
			}
			Expect(prev).To(Equal(navigator.SectionAbout))
		})

		It("skips sections without an offset", func() {
			offsets := pageOffsets()
			delete(offsets, navigator.SectionAbout)
			Expect(nav.OnScroll(5000, 900, offsets)).To(Equal(navigator.SectionCharts))
		})

		It("falls back to demo when nothing qualifies", func() {
			nav.OnScroll(750, 900, pageOffsets())
			offsets := navigator.Offsets{navigator.SectionAbout: 10000}
			Expect(nav.OnScroll(0, 900, offsets)).To(Equal(navigator.SectionDemo))
		})

		It("keeps the previous section when no offsets are available", func() {
			nav.OnScroll(1500, 900, pageOffsets())
			Expect(nav.OnScroll(0, 900, nil)).To(Equal(navigator.SectionCharts))
		})

		It("breaks ties by section order when offsets are non-monotonic", func() {
			offsets := navigator.Offsets{
				navigator.SectionDemo:   0,
				navigator.SectionMap:    1600,
				navigator.SectionCharts: 800,
				navigator.SectionAbout:  2400,
			}
			// probe = 1700, both map and charts qualify
			Expect(nav.OnScroll(1400, 900, offsets)).To(Equal(navigator.SectionCharts))
		})
	})

	Describe("NavigateTo", func() {
		It("issues a smooth scroll to the section top without changing the active section", func() {
			Expect(nav.NavigateTo(navigator.SectionAbout)).To(BeTrue())
			Expect(scroller.commands).To(ConsistOf(navigator.ScrollCommand{
				Section: navigator.SectionAbout,
				Target:  2400,
				Smooth:  true,
			}))
			Expect(nav.CurrentActive()).To(Equal(navigator.SectionDemo))
		})

		It("converges once the scroll reaches the target", func() {
			nav.NavigateTo(navigator.SectionAbout)
			target := scroller.commands[0].Target
			Expect(nav.OnScroll(target, 900, pageOffsets())).To(Equal(navigator.SectionAbout))
		})

		It("lets the newest request win", func() {
			nav.NavigateTo(navigator.SectionAbout)
			nav.NavigateTo(navigator.SectionCharts)
			last := scroller.commands[len(scroller.commands)-1]
			Expect(last.Section).To(Equal(navigator.SectionCharts))
			Expect(nav.OnScroll(last.Target, 900, pageOffsets())).To(Equal(navigator.SectionCharts))
		})

		It("ignores unknown labels", func() {
			nav.OnScroll(750, 900, pageOffsets())
			Expect(nav.NavigateToLabel("nonexistent")).To(BeFalse())
			Expect(scroller.commands).To(BeEmpty())
			Expect(nav.CurrentActive()).To(Equal(navigator.SectionMap))
			Expect(logs.String()).To(ContainSubstring("unknown section"))
		})

		It("ignores out of range sections", func() {
			Expect(nav.NavigateTo(navigator.Section(42))).To(BeFalse())
			Expect(scroller.commands).To(BeEmpty())
		})

		It("ignores sections that have not been laid out", func() {
			delete(layout.offsets, navigator.SectionCharts)
			Expect(nav.NavigateTo(navigator.SectionCharts)).To(BeFalse())
			Expect(scroller.commands).To(BeEmpty())
		})

		It("accepts anchors as labels", func() {
			Expect(nav.NavigateToLabel("#map")).To(BeTrue())
			Expect(scroller.commands[0].Target).To(Equal(800.0))
		})
	})

	Describe("Subscribe", func() {
		It("notifies listeners only on change", func() {
			var changes [][2]navigator.Section
			sub := nav.Subscribe(func(prev, next navigator.Section) {
				changes = append(changes, [2]navigator.Section{prev, next})
			})
			Expect(sub.ID()).NotTo(BeEmpty())

			nav.OnScroll(0, 900, pageOffsets())
			nav.OnScroll(750, 900, pageOffsets())
			nav.OnScroll(760, 900, pageOffsets())

			Expect(changes).To(Equal([][2]navigator.Section{
				{navigator.SectionDemo, navigator.SectionMap},
			}))
		})

		It("stops deliveries after Unsubscribe", func() {
			calls := 0
			sub := nav.Subscribe(func(prev, next navigator.Section) { calls++ })
			Expect(nav.Subscribers()).To(Equal(1))

			sub.Unsubscribe()
			sub.Unsubscribe()

			nav.OnScroll(5000, 900, pageOffsets())
			Expect(calls).To(BeZero())
			Expect(sub.Active()).To(BeFalse())
			Expect(nav.Subscribers()).To(BeZero())
		})

		It("allows a listener to unsubscribe itself", func() {
			var sub *navigator.Subscription
			calls := 0
			sub = nav.Subscribe(func(prev, next navigator.Section) {
				calls++
				sub.Unsubscribe()
			})
			other := 0
			nav.Subscribe(func(prev, next navigator.Section) { other++ })

			nav.OnScroll(750, 900, pageOffsets())
			nav.OnScroll(5000, 900, pageOffsets())

			Expect(calls).To(Equal(1))
			Expect(other).To(Equal(2))
		})
	})

	It("resets to demo", func() {
		nav.OnScroll(5000, 900, pageOffsets())
		nav.Reset()
		Expect(nav.CurrentActive()).To(Equal(navigator.SectionDemo))
	})
})

var _ = Describe("ParseSection", func() {
	DescribeTable("known ids",
		func(id string, want navigator.Section) {
			got, err := navigator.ParseSection(id)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
		},
		Entry("demo", "demo", navigator.SectionDemo),
		Entry("anchor", "#map", navigator.SectionMap),
		Entry("mixed case", " Charts ", navigator.SectionCharts),
		Entry("about", "about", navigator.SectionAbout),
	)

	It("rejects unknown ids", func() {
		_, err := navigator.ParseSection("team")
		Expect(err).To(MatchError(navigator.ErrUnknownSection))
	})

	It("exposes labels and anchors in page order", func() {
		var labels []string
		for _, s := range navigator.Sections() {
			labels = append(labels, s.Label()+s.Anchor())
		}
		Expect(labels).To(Equal([]string{"Demo#demo", "Map#map", "Charts#charts", "About Us#about"}))
	})
})
