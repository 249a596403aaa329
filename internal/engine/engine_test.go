package engine

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/backdrop/internal/frame"
	"github.com/san-kum/backdrop/internal/page"
	"github.com/san-kum/backdrop/internal/particle"
	"github.com/san-kum/backdrop/internal/render"
	"github.com/san-kum/backdrop/internal/scene"
)

func recorders(w, h int) render.Surface { return render.NewRecorder(w, h) }

var _ = Describe("Engine", func() {
	var (
		ticker   *frame.Ticker
		registry *scene.Registry
		pg       *page.Static
	)

	BeforeEach(func() {
		ticker = frame.NewTicker(frame.Interval(60))
		registry = scene.NewRegistry(scene.DefaultCaps())
		pg = page.NewStatic(recorders)
	})

	Context("with no matching canvases", func() {
		It("starts zero sessions and tears down as a no-op", func() {
			pg.Add("unrelated-canvas", 100, 100)
			eng := New(ticker, registry.All(), WithSeed(1))

			n, err := eng.Start(pg)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(BeZero())
			Expect(ticker.Pending()).To(BeZero())

			Expect(eng.Stop()).To(BeZero())
			Expect(ticker.Canceled()).To(BeZero())
			for _, s := range eng.Sessions() {
				Expect(s.State()).To(Equal(Uninitialized))
			}
		})
	})

	Context("with some canvases present", func() {
		var eng *Engine

		BeforeEach(func() {
			pg.Add("hero-bg-canvas", 800, 600)
			pg.Add("experience-bg-canvas", 640, 480)
			pg.Add("contact-bg-canvas", 320, 240)
			eng = New(ticker, registry.All(), WithSeed(7))
		})

		It("starts one session per present canvas", func() {
			n, err := eng.Start(pg)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(3))
			Expect(ticker.Pending()).To(Equal(3))

			hero, ok := eng.Session("hero")
			Expect(ok).To(BeTrue())
			Expect(hero.State()).To(Equal(Running))
			Expect(hero.Bounds()).To(Equal(particle.Bounds{W: 800, H: 600}))

			research, ok := eng.Session("research")
			Expect(ok).To(BeTrue())
			Expect(research.State()).To(Equal(Uninitialized))
			Expect(research.Surface()).To(BeNil())
		})

		It("refuses a second start", func() {
			_, err := eng.Start(pg)
			Expect(err).NotTo(HaveOccurred())
			_, err = eng.Start(pg)
			Expect(err).To(MatchError(ErrAlreadyStarted))
		})

		It("runs one frame per session per tick", func() {
			_, err := eng.Start(pg)
			Expect(err).NotTo(HaveOccurred())

			steps, err := ticker.Run(context.Background(), 30)
			Expect(err).NotTo(HaveOccurred())
			Expect(steps).To(Equal(30))

			for _, st := range eng.Stats() {
				switch st.Section {
				case "hero", "experience", "contact":
					Expect(st.Frames).To(Equal(30))
					Expect(st.State).To(Equal("running"))
					Expect(st.Total).To(BeNumerically(">", 0))
				default:
					Expect(st.Frames).To(BeZero())
					Expect(st.Counts).To(BeNil())
				}
			}
		})

		It("cancels exactly the running sessions on teardown", func() {
			_, err := eng.Start(pg)
			Expect(err).NotTo(HaveOccurred())
			ticker.Step()
			ticker.Step()

			Expect(eng.Stop()).To(Equal(3))
			Expect(ticker.Canceled()).To(Equal(3))
			Expect(ticker.Pending()).To(BeZero())
			Expect(ticker.Step()).To(BeZero())

			for _, s := range eng.Sessions() {
				if s.State() == Stopped {
					Expect(s.Frames()).To(Equal(2))
					Expect(s.Surface()).To(BeNil())
				}
			}

			Expect(eng.Stop()).To(BeZero())
			_, err = eng.Start(pg)
			Expect(err).To(MatchError(ErrStopped))
		})

		It("lets an in-flight frame finish without re-requesting", func() {
			var stopped int
			eng = New(ticker, registry.All(), WithSeed(7), WithFrameHook(func(s *Session, _ time.Duration) {
				if s.Name() == "hero" && stopped == 0 {
					stopped = eng.Stop()
				}
			}))
			_, err := eng.Start(pg)
			Expect(err).NotTo(HaveOccurred())

			ticker.Step()
			Expect(stopped).To(Equal(3))
			Expect(ticker.Pending()).To(BeZero())

			hero, _ := eng.Session("hero")
			Expect(hero.Frames()).To(Equal(1))
		})

		It("resizes in place without resetting entities", func() {
			_, err := eng.Start(pg)
			Expect(err).NotTo(HaveOccurred())
			ticker.Step()

			hero, _ := eng.Session("hero")
			before := append([]particle.Entity(nil), hero.System().Population("particles").Entities...)

			pg.SetSize("hero-bg-canvas", 200, 150)
			eng.Resize()
			Expect(hero.Bounds()).To(Equal(particle.Bounds{W: 200, H: 150}))
			Expect(hero.System().Population("particles").Entities).To(Equal(before))

			ticker.Step()
			b := hero.Bounds()
			for _, e := range hero.System().Population("particles").Entities {
				Expect(b.Contains(e.Pos, e.Extent)).To(BeTrue())
			}
			Expect(hero.State()).To(Equal(Running))
		})

		It("keeps drawing while paused", func() {
			_, err := eng.Start(pg)
			Expect(err).NotTo(HaveOccurred())
			ticker.Step()

			eng.SetPaused(true)
			Expect(eng.Paused()).To(BeTrue())
			hero, _ := eng.Session("hero")
			before := append([]particle.Entity(nil), hero.System().Population("particles").Entities...)

			ticker.Step()
			Expect(hero.System().Population("particles").Entities).To(Equal(before))
			Expect(hero.Frames()).To(Equal(2))
		})

		It("draws with the active theme", func() {
			eng.SetTheme(render.ThemeMono)
			Expect(eng.Theme().Name).To(Equal("mono"))

			_, err := eng.Start(pg)
			Expect(err).NotTo(HaveOccurred())
			ticker.Step()

			hero, _ := eng.Session("hero")
			rec := hero.Surface().(*render.Recorder)
			Expect(rec.Ops).NotTo(BeEmpty())
			Expect(rec.Ops[0].Paint.Color.R).To(Equal(render.ThemeMono.Palette.Primary.R))
		})
	})

	It("reproduces runs with the same seed", func() {
		run := func() []particle.Entity {
			t := frame.NewTicker(0)
			p := page.NewStatic(recorders)
			p.Add("hero-bg-canvas", 400, 300)
			eng := New(t, registry.All(), WithSeed(99))
			_, err := eng.Start(p)
			Expect(err).NotTo(HaveOccurred())
			_, err = t.Run(context.Background(), 10)
			Expect(err).NotTo(HaveOccurred())
			hero, _ := eng.Session("hero")
			return hero.System().Population("particles").Entities
		}
		Expect(run()).To(Equal(run()))
	})
})

var _ = Describe("Engine on a real-time clock", func() {
	It("lets the frame hook read sessions while another goroutine stops", func() {
		clock := frame.NewClock(time.Millisecond)
		p := page.NewStatic(recorders)
		p.Add("hero-bg-canvas", 200, 150)

		seen := make(chan struct{}, 1)
		hook := func(s *Session, _ time.Duration) {
			time.Sleep(2 * time.Millisecond)
			_ = s.Surface()
			_ = s.Bounds()
			_ = s.Frames()
			select {
			case seen <- struct{}{}:
			default:
			}
		}
		eng := New(clock, scene.NewRegistry(scene.DefaultCaps()).All(), WithSeed(3), WithFrameHook(hook))
		_, err := eng.Start(p)
		Expect(err).NotTo(HaveOccurred())
		clock.Start()
		defer clock.Stop()

		Eventually(seen, 2*time.Second).Should(Receive())
		Expect(eng.Stop()).To(Equal(1))

		hero, _ := eng.Session("hero")
		Expect(hero.State()).To(Equal(Stopped))
		Expect(hero.Surface()).To(BeNil())
		Expect(hero.Bounds().Empty()).To(BeTrue())
	})
})

var _ = Describe("State", func() {
	DescribeTable("String",
		func(s State, expected string) {
			Expect(s.String()).To(Equal(expected))
		},
		Entry("uninitialized", Uninitialized, "uninitialized"),
		Entry("running", Running, "running"),
		Entry("stopped", Stopped, "stopped"),
		Entry("unknown", State(9), "unknown"),
	)
})
