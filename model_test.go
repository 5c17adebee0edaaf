package fuzzy

import (
	. "github.com/onsi/ginkgo"
	"github.com/onsi/gomega"
)

var _ = Describe("Model", func() {
	var (
		inputs []VariableConfig
		output VariableConfig
	)

	BeforeEach(func() {
		inputs = []VariableConfig{
			{Name: "food", Min: 0, Max: 10, Step: 1, Automf: []string{"poor", "good"}},
			{Name: "service", Min: 0, Max: 10, Step: 1, Automf: []string{"poor", "good"}},
		}
		output = VariableConfig{
			Name: "tip", Min: 0, Max: 30, Step: 1,
			Terms: []TermConfig{
				{Name: "low", MF: Triangular{A: 0, B: 0, C: 15}},
				{Name: "high", MF: Triangular{A: 15, B: 30, C: 30}},
			},
		}
	})

	It("builds a model", func() {
		m, err := NewModel(inputs, output,
			NewRule(And(Is("food", "poor"), Is("service", "poor")), Then("tip", "low")),
			NewRule(Or(Is("food", "good"), Is("service", "good")), Then("tip", "high")),
		)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(m.Inputs()).To(gomega.HaveLen(2))
		gomega.Expect(m.Inputs()[0].Name()).To(gomega.Equal("food"))
		gomega.Expect(m.Output().Name()).To(gomega.Equal("tip"))
		gomega.Expect(m.Rules()).To(gomega.HaveLen(2))
		v, ok := m.Variable("tip")
		gomega.Expect(ok).To(gomega.BeTrue())
		gomega.Expect(v).To(gomega.BeIdenticalTo(m.Output()))
		_, ok = m.Input("tip")
		gomega.Expect(ok).To(gomega.BeFalse())
	})

	It("introspects curves round trip", func() {
		m, err := NewModel(inputs, output, NewRule(Is("food", "poor"), Then("tip", "low")))
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		mf, ok := m.Output().Term("high")
		gomega.Expect(ok).To(gomega.BeTrue())
		gomega.Expect(mf.Params()).To(gomega.Equal([]float64{15, 30, 30}))
		curve, err := m.Curve("food", "good")
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(curve[10]).To(gomega.Equal(Point{X: 10, Degree: 1}))
		_, err = m.Curve("ambience", "good")
		gomega.Expect(err).To(gomega.MatchError(ErrUnknownReference))
	})

	It("rejects duplicate input names", func() {
		inputs[1].Name = "food"
		_, err := NewModel(inputs, output, NewRule(Is("food", "poor"), Then("tip", "low")))
		gomega.Expect(err).To(gomega.MatchError(ErrDuplicateName))
	})

	It("rejects an output named like an input", func() {
		output.Name = "service"
		_, err := NewModel(inputs, output, NewRule(Is("food", "poor"), Then("service", "low")))
		gomega.Expect(err).To(gomega.MatchError(ErrDuplicateName))
	})

	It("rejects an unknown input variable in a rule", func() {
		_, err := NewModel(inputs, output, NewRule(And(Is("food", "poor"), Is("ambience", "poor")), Then("tip", "low")))
		gomega.Expect(err).To(gomega.MatchError(ErrUnknownReference))
		gomega.Expect(err.Error()).To(gomega.ContainSubstring("rule 0"))
	})

	It("rejects an unknown input term in a rule", func() {
		_, err := NewModel(inputs, output, NewRule(Not(Is("food", "average")), Then("tip", "low")))
		gomega.Expect(err).To(gomega.MatchError(ErrUnknownReference))
	})

	It("rejects an unknown consequent", func() {
		_, err := NewModel(inputs, output, NewRule(Is("food", "poor"), Then("tip", "medium")))
		gomega.Expect(err).To(gomega.MatchError(ErrUnknownReference))
		_, err = NewModel(inputs, output, NewRule(Is("food", "poor"), Then("food", "poor")))
		gomega.Expect(err).To(gomega.MatchError(ErrUnknownReference))
	})

	It("rejects malformed rules", func() {
		_, err := NewModel(inputs, output, NewRule(Is("food", "poor")))
		gomega.Expect(err).To(gomega.MatchError(ErrInvalidRule))
		_, err = NewModel(inputs, output, NewRule(And(), Then("tip", "low")))
		gomega.Expect(err).To(gomega.MatchError(ErrInvalidRule))
		_, err = NewModel(inputs, output, NewRule(Expr{}, Then("tip", "low")))
		gomega.Expect(err).To(gomega.MatchError(ErrInvalidRule))
	})

	It("rejects models without inputs or rules", func() {
		_, err := NewModel(nil, output, NewRule(Is("food", "poor"), Then("tip", "low")))
		gomega.Expect(err).To(gomega.MatchError(ErrInvalidRule))
		_, err = NewModel(inputs, output)
		gomega.Expect(err).To(gomega.MatchError(ErrInvalidRule))
	})

	It("propagates variable errors", func() {
		inputs[0].Step = 0
		_, err := NewModel(inputs, output, NewRule(Is("food", "poor"), Then("tip", "low")))
		gomega.Expect(err).To(gomega.MatchError(ErrInvalidUniverse))
	})
})
