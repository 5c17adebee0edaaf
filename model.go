package fuzzy

import (
	"fmt"

	"github.com/nguyenthanhtrungbkhn/go-fuzzy-logic/internal/utils"
)

// A Model owns the input variables, the output variable and the rules.
// It is immutable once NewModel returns and may be shared between goroutines.
type Model struct {
	inputs []*Variable
	byName map[string]*Variable
	output *Variable
	rules  []Rule
}

// NewModel builds and checks a model. Every term referenced by a rule must
// be declared. On error no model is returned.
func NewModel(inputs []VariableConfig, output VariableConfig, rules ...Rule) (*Model, error) {
	if len(inputs) == 0 {
		return nil, constructionErrorf(ErrInvalidRule, "model", "no input variables")
	}
	if len(rules) == 0 {
		return nil, constructionErrorf(ErrInvalidRule, "model", "no rules")
	}

	m := &Model{
		inputs: make([]*Variable, 0, len(inputs)),
		byName: make(map[string]*Variable, len(inputs)),
	}
	for _, config := range inputs {
		v, err := NewVariable(config)
		if err != nil {
			return nil, err
		}
		if _, ok := m.byName[v.Name()]; ok {
			return nil, constructionErrorf(ErrDuplicateName, v.Name(), "input variable declared twice")
		}
		m.inputs = append(m.inputs, v)
		m.byName[v.Name()] = v
	}

	out, err := NewVariable(output)
	if err != nil {
		return nil, err
	}
	if _, ok := m.byName[out.Name()]; ok {
		return nil, constructionErrorf(ErrDuplicateName, out.Name(), "output variable shares its name with an input")
	}
	m.output = out

	m.rules = make([]Rule, len(rules))
	for i, r := range rules {
		if err := m.checkRule(r); err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		m.rules[i] = NewRule(r.antecedent, r.consequents...).Labeled(r.label)
	}

	utils.Infof("Built fuzzy model with %d inputs, output %s and %d rules", len(m.inputs), m.output.Name(), len(m.rules))
	return m, nil
}

func (m *Model) checkRule(r Rule) error {
	err := r.antecedent.walk(func(leaf Expr) error {
		v, ok := m.byName[leaf.variable]
		if !ok {
			return constructionErrorf(ErrUnknownReference, leaf.variable, "no such input variable")
		}
		if _, ok := v.Term(leaf.term); !ok {
			return constructionErrorf(ErrUnknownReference, fmt.Sprintf("%s[%s]", leaf.variable, leaf.term), "no such term")
		}
		return nil
	})
	if err != nil {
		return err
	}
	if len(r.consequents) == 0 {
		return constructionErrorf(ErrInvalidRule, r.label, "no consequents")
	}
	for _, c := range r.consequents {
		if c.Variable != m.output.Name() {
			return constructionErrorf(ErrUnknownReference, c.Variable, "not the output variable")
		}
		if _, ok := m.output.Term(c.Term); !ok {
			return constructionErrorf(ErrUnknownReference, fmt.Sprintf("%s[%s]", c.Variable, c.Term), "no such term")
		}
	}
	return nil
}

// Inputs returns the input variables in declaration order.
func (m *Model) Inputs() []*Variable {
	return append([]*Variable(nil), m.inputs...)
}

// Input looks up an input variable.
func (m *Model) Input(name string) (*Variable, bool) {
	v, ok := m.byName[name]
	return v, ok
}

// Output returns the output variable.
func (m *Model) Output() *Variable { return m.output }

// Rules returns a copy of the rules.
func (m *Model) Rules() []Rule {
	return append([]Rule(nil), m.rules...)
}

// Variable looks up an input or the output variable.
func (m *Model) Variable(name string) (*Variable, bool) {
	if name == m.output.Name() {
		return m.output, true
	}
	return m.Input(name)
}

// Curve samples one term of one variable over its universe.
func (m *Model) Curve(variable, term string) ([]Point, error) {
	v, ok := m.Variable(variable)
	if !ok {
		return nil, &ConstructionError{Kind: ErrUnknownReference, Subject: variable}
	}
	return v.Curve(term)
}
