package fuzzy

import (
	. "github.com/onsi/ginkgo"
	"github.com/onsi/gomega"
)

var _ = Describe("Defuzzification", func() {
	xs := []float64{0, 1, 2, 3, 4}

	It("computes the centroid", func() {
		d, err := Defuzzify(Centroid, xs, []float64{0, 1, 1, 0, 0})
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(d).To(gomega.Equal(1.5))
		d, err = Defuzzify(Centroid, xs, []float64{0.5, 0, 0, 0, 0.5})
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(d).To(gomega.Equal(2.0))
	})

	It("computes the bisector", func() {
		d, err := Defuzzify(Bisector, xs, []float64{0.2, 0.2, 0.2, 1, 0.2})
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(d).To(gomega.Equal(3.0))
	})

	It("computes the maxima", func() {
		degrees := []float64{0.1, 0.8, 0.3, 0.8, 0.2}
		mom, err := Defuzzify(MeanOfMaximum, xs, degrees)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(mom).To(gomega.Equal(2.0))
		som, err := Defuzzify(SmallestOfMaximum, xs, degrees)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(som).To(gomega.Equal(1.0))
		lom, err := Defuzzify(LargestOfMaximum, xs, degrees)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(lom).To(gomega.Equal(3.0))
	})

	It("is undefined for an all zero curve", func() {
		for _, m := range []DefuzzMethod{Centroid, Bisector, MeanOfMaximum, SmallestOfMaximum, LargestOfMaximum} {
			_, err := Defuzzify(m, xs, make([]float64, len(xs)))
			gomega.Expect(err).To(gomega.MatchError(ErrUndefinedDefuzzification))
		}
	})

	It("rejects unknown methods", func() {
		_, err := Defuzzify("median", xs, []float64{0, 1, 0, 0, 0})
		gomega.Expect(err).To(gomega.HaveOccurred())
		gomega.Expect(DefuzzMethod("median").Valid()).To(gomega.BeFalse())
		gomega.Expect(Centroid.Valid()).To(gomega.BeTrue())
	})
})
