package fuzzy

import (
	. "github.com/onsi/ginkgo"
	"github.com/onsi/gomega"
)

var _ = Describe("Automatic partitioning", func() {
	var u *Universe

	BeforeEach(func() {
		var err error
		u, err = NewUniverse(0, 10, 1)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
	})

	It("builds the three term quality partition", func() {
		terms, err := Automf(u, "poor", "average", "excellent")
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(terms).To(gomega.Equal([]Term{
			{Name: "poor", MF: Triangular{A: 0, B: 0, C: 5}},
			{Name: "average", MF: Triangular{A: 0, B: 5, C: 10}},
			{Name: "excellent", MF: Triangular{A: 5, B: 10, C: 10}},
		}))
	})

	It("makes adjacent terms cross at 0.5", func() {
		terms, err := Automf(u, "a", "b", "c", "d", "e")
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		for i := 1; i < len(terms); i++ {
			mid := (terms[i-1].MF.Params()[1] + terms[i].MF.Params()[1]) / 2
			gomega.Expect(terms[i-1].MF.Degree(mid)).To(gomega.BeNumerically("~", 0.5, 1e-12))
			gomega.Expect(terms[i].MF.Degree(mid)).To(gomega.BeNumerically("~", 0.5, 1e-12))
		}
	})

	It("covers every point of the universe", func() {
		terms, err := Automf(u, "poor", "average", "excellent")
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		for x := u.Min(); x <= u.Max(); x += 0.05 {
			var best float64
			for _, t := range terms {
				if d := t.MF.Degree(x); d > best {
					best = d
				}
			}
			gomega.Expect(best).To(gomega.BeNumerically(">", 0))
		}
	})

	It("uses shoulders at the boundaries", func() {
		terms, err := Automf(u, "low", "high")
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(terms[0].MF.Degree(0)).To(gomega.Equal(1.0))
		gomega.Expect(terms[1].MF.Degree(10)).To(gomega.Equal(1.0))
		gomega.Expect(terms[0].MF.Degree(10)).To(gomega.BeZero())
	})

	It("needs at least two terms", func() {
		_, err := Automf(u, "only")
		gomega.Expect(err).To(gomega.MatchError(ErrInvalidShape))
	})

	It("rejects duplicate names", func() {
		_, err := Automf(u, "poor", "poor", "good")
		gomega.Expect(err).To(gomega.MatchError(ErrDuplicateName))
	})

	It("knows the default names", func() {
		names, err := DefaultTermNames(3)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(names).To(gomega.Equal([]string{"poor", "average", "good"}))
		names, err = DefaultTermNames(7)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(names).To(gomega.HaveLen(7))
		_, err = DefaultTermNames(4)
		gomega.Expect(err).To(gomega.MatchError(ErrInvalidShape))
	})
})
