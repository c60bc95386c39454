package plot_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sakibmehfuz10-bot/Socratica/internal/plot"
)

var _ = Describe("ParseDirective", func() {
	It("defaults the domain when bounds are omitted", func() {
		d, err := plot.ParseDirective("x^2")
		Expect(err).NotTo(HaveOccurred())
		Expect(d.Expression).To(Equal("x^2"))
		Expect(d.DomainMin).To(Equal(-5.0))
		Expect(d.DomainMax).To(Equal(5.0))
	})

	It("parses explicit bounds", func() {
		d, err := plot.ParseDirective("sin(x), -3.14, 3.14")
		Expect(err).NotTo(HaveOccurred())
		Expect(d.DomainMin).To(BeNumerically("~", -3.14))
		Expect(d.DomainMax).To(BeNumerically("~", 3.14))
	})

	It("falls back silently on unparsable bounds", func() {
		d, err := plot.ParseDirective("x, low, high")
		Expect(err).NotTo(HaveOccurred())
		Expect(d.DomainMin).To(Equal(-5.0))
		Expect(d.DomainMax).To(Equal(5.0))
	})

	It("rejects an empty expression", func() {
		_, err := plot.ParseDirective("  , -1, 1")
		var perr *plot.ParseError
		Expect(err).To(BeAssignableToTypeOf(perr))
	})

	It("rejects an empty domain", func() {
		_, err := plot.ParseDirective("x, 2, 2")
		var perr *plot.ParseError
		Expect(err).To(BeAssignableToTypeOf(perr))

		_, err = plot.ParseDirective("x, 3, -3")
		Expect(err).To(BeAssignableToTypeOf(perr))
	})
})

var _ = Describe("Build", func() {
	It("is deterministic", func() {
		a, err := plot.Build("sin(x)*x, -6, 6")
		Expect(err).NotTo(HaveOccurred())
		b, err := plot.Build("sin(x)*x, -6, 6")
		Expect(err).NotTo(HaveOccurred())
		Expect(a.Points).To(Equal(b.Points))
		Expect(a.Bounds).To(Equal(b.Bounds))
	})

	It("samples both endpoints of the domain", func() {
		p, err := plot.Build("x, 0, 1")
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Points).To(HaveLen(plot.SampleCount))
		Expect(p.Points[0].X).To(Equal(0.0))
		Expect(p.Points[len(p.Points)-1].X).To(Equal(1.0))
	})

	It("normalizes LaTeX-flavored notation before evaluation", func() {
		p, err := plot.Build(`2\times\left(x+1\right)`)
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Empty()).To(BeFalse())

		p, err = plot.Build(`x^{2}`)
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Empty()).To(BeFalse())
	})

	It("drops non-finite samples instead of failing", func() {
		// x = -2 is the first sample and evaluates to +Inf.
		p, err := plot.Build("1/(x+2), -2, 2")
		Expect(err).NotTo(HaveOccurred())
		Expect(len(p.Points)).To(Equal(plot.SampleCount - 1))
	})

	It("keeps a renderable line across a pole", func() {
		p, err := plot.Build("1/x, -2, 2")
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Empty()).To(BeFalse())

		var left, right bool
		for _, pt := range p.Points {
			if pt.X < 0 {
				left = true
			}
			if pt.X > 0 {
				right = true
			}
		}
		Expect(left).To(BeTrue(), "expected samples left of the pole")
		Expect(right).To(BeTrue(), "expected samples right of the pole")
	})

	It("drops the undefined half of a partial domain", func() {
		p, err := plot.Build("sqrt(x)")
		Expect(err).NotTo(HaveOccurred())
		Expect(len(p.Points)).To(BeNumerically("<", plot.SampleCount))
		for _, pt := range p.Points {
			Expect(pt.X).To(BeNumerically(">=", 0))
		}
	})

	It("returns a CompileError with a message for bad syntax", func() {
		_, err := plot.Build("x +* 2")
		var cerr *plot.CompileError
		Expect(err).To(BeAssignableToTypeOf(cerr))
		Expect(err.Error()).NotTo(BeEmpty())
	})

	It("yields an empty plot when nothing is defined", func() {
		p, err := plot.Build("sqrt(-1-x^2)")
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Empty()).To(BeTrue())
	})
})

var _ = Describe("Bounds", func() {
	It("caps the vertical window near a singularity", func() {
		p, err := plot.Build("1/(x-0.001), -1, 1")
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Empty()).To(BeFalse())
		Expect(p.Bounds.MinY).To(BeNumerically(">=", -plot.MaxSpan))
		Expect(p.Bounds.MaxY).To(BeNumerically("<=", plot.MaxSpan))
	})

	It("keeps zero visible for a near-constant function", func() {
		p, err := plot.Build("0.1")
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Bounds.MinY).To(Equal(-plot.MinHalfSpan))
		Expect(p.Bounds.MaxY).To(Equal(plot.MinHalfSpan))
	})

	It("clamps the quick-chart series into the window", func() {
		p, err := plot.Build("1/(x-0.001), -1, 1")
		Expect(err).NotTo(HaveOccurred())

		ys := p.ClampedYs()
		Expect(ys).To(HaveLen(len(p.Points)))
		for _, y := range ys {
			Expect(y).To(BeNumerically(">=", p.Bounds.MinY))
			Expect(y).To(BeNumerically("<=", p.Bounds.MaxY))
		}
	})

	It("uses the directive domain for the horizontal window", func() {
		p, err := plot.Build("x^2, -3, 7")
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Bounds.MinX).To(Equal(-3.0))
		Expect(p.Bounds.MaxX).To(Equal(7.0))
	})
})

var _ = Describe("Geometry", func() {
	It("maps every sample into the padded interior", func() {
		p, err := plot.Build("1/(x-0.001), -1, 1")
		Expect(err).NotTo(HaveOccurred())

		g := plot.SVGGeometry
		for _, dp := range g.MapPoints(p.Bounds, p.Points) {
			Expect(dp.X).To(BeNumerically(">=", g.Padding))
			Expect(dp.X).To(BeNumerically("<=", g.Width-g.Padding))
			Expect(dp.Y).To(BeNumerically(">=", g.Padding))
			Expect(dp.Y).To(BeNumerically("<=", g.Height-g.Padding))
		}
	})

	It("inverts the y axis", func() {
		b := plot.Bounds{MinX: -5, MaxX: 5, MinY: -1, MaxY: 1}
		g := plot.SVGGeometry
		Expect(g.MapY(b, b.MinY)).To(Equal(g.Height - g.Padding))
		Expect(g.MapY(b, b.MaxY)).To(Equal(g.Padding))
	})
})

var _ = Describe("SVG", func() {
	It("renders a chart with axis guides and the accent color", func() {
		out := plot.SVG("sin(x), -3, 3", "#ff00aa")
		Expect(out).To(ContainSubstring("<svg"))
		Expect(out).To(ContainSubstring(`stroke="#ff00aa"`))
		Expect(out).To(ContainSubstring("stroke-dasharray"))
		Expect(out).To(ContainSubstring("y = sin(x)"))
	})

	It("omits the vertical guide when zero is outside the domain", func() {
		out := plot.SVG("x^2, 1, 5", "")
		Expect(strings.Count(out, "stroke-dasharray")).To(Equal(1))
	})

	It("renders an error panel for a bad expression", func() {
		out := plot.SVG("x +* 2", "")
		Expect(out).To(ContainSubstring("cannot plot"))
		Expect(out).NotTo(ContainSubstring("<path"))
	})

	It("renders nothing for an unusable directive", func() {
		Expect(plot.SVG(", 1, 2", "")).To(Equal(""))
	})

	It("renders nothing when too few samples survive", func() {
		Expect(plot.SVG("sqrt(-1-x^2)", "")).To(Equal(""))
	})
})

var _ = Describe("Terminal", func() {
	It("renders a Braille block with the expression label", func() {
		out := plot.Terminal("x^2, -2, 2", "#00ccff")
		Expect(out).NotTo(BeEmpty())
		Expect(out).To(ContainSubstring("y = x^2"))
	})

	It("renders an alert panel for a bad expression", func() {
		out := plot.Terminal("x +* 2", "")
		Expect(out).To(ContainSubstring("cannot plot"))
	})

	It("renders nothing for an unusable directive", func() {
		Expect(plot.Terminal(",", "")).To(Equal(""))
		Expect(plot.Terminal("sqrt(-1-x^2)", "")).To(Equal(""))
	})
})

var _ = Describe("Canvas", func() {
	It("lights sub-pixels inside braille cells", func() {
		c := plot.NewCanvas(2, 1)
		c.Set(0, 0)
		Expect(c.String()).To(Equal(string(rune(0x2801)) + string(rune(0x2800))))
	})

	It("ignores out-of-range coordinates", func() {
		c := plot.NewCanvas(2, 1)
		c.Set(-1, 0)
		c.Set(0, -1)
		c.Set(100, 100)
		Expect(c.String()).To(Equal(string(rune(0x2800)) + string(rune(0x2800))))
	})

	It("draws a horizontal line", func() {
		c := plot.NewCanvas(2, 1)
		c.DrawLine(0, 0, 3, 0)
		// Top dot of each column in both cells: 0x1|0x8 over 0x2800.
		Expect(c.String()).To(Equal(string(rune(0x2809)) + string(rune(0x2809))))
	})
})
