package fuzzy

import "fmt"

// A Term is a named membership function of a variable.
type Term struct {
	Name string
	MF   MembershipFunc
}

// TermConfig declares an explicit term.
type TermConfig = Term

// VariableConfig declares a linguistic variable.
// Automf terms are generated first, explicit Terms are appended after them.
type VariableConfig struct {
	Name   string
	Min    float64
	Max    float64
	Step   float64
	Automf []string
	Terms  []TermConfig
}

// A Point is one sample of a membership curve.
type Point struct {
	X      float64
	Degree float64
}

// Degrees maps term names to membership degrees.
type Degrees map[string]float64

// A Variable is a named universe with its terms. It is immutable.
type Variable struct {
	name     string
	universe *Universe
	terms    []Term
	index    map[string]int
	// curves holds every term sampled over the universe, in term order.
	curves [][]float64
}

// NewVariable builds a variable from its declaration.
func NewVariable(config VariableConfig) (*Variable, error) {
	if config.Name == "" {
		return nil, constructionErrorf(ErrEmptyName, "variable", "")
	}
	u, err := NewUniverse(config.Min, config.Max, config.Step)
	if err != nil {
		if ce, ok := err.(*ConstructionError); ok {
			ce.Subject = config.Name
		}
		return nil, err
	}

	var terms []Term
	if len(config.Automf) > 0 {
		if terms, err = Automf(u, config.Automf...); err != nil {
			return nil, err
		}
	}
	terms = append(terms, config.Terms...)
	if len(terms) == 0 {
		return nil, constructionErrorf(ErrInvalidShape, config.Name, "no terms")
	}

	v := &Variable{
		name:     config.Name,
		universe: u,
		terms:    terms,
		index:    make(map[string]int, len(terms)),
		curves:   make([][]float64, len(terms)),
	}
	for i, t := range terms {
		if t.Name == "" {
			return nil, constructionErrorf(ErrEmptyName, config.Name, "term %d", i)
		}
		if t.MF == nil {
			return nil, constructionErrorf(ErrInvalidShape, config.Name, "term %q has no membership function", t.Name)
		}
		if err := checkBreakpoints(t.MF.Params()...); err != nil {
			ce := err.(*ConstructionError)
			ce.Subject = fmt.Sprintf("%s[%s]", config.Name, t.Name)
			return nil, ce
		}
		if _, ok := v.index[t.Name]; ok {
			return nil, constructionErrorf(ErrDuplicateName, fmt.Sprintf("%s[%s]", config.Name, t.Name), "term declared twice")
		}
		v.index[t.Name] = i
		v.curves[i] = u.sample(t.MF)
	}
	return v, nil
}

// Name of the variable
func (v *Variable) Name() string { return v.name }

// Universe of the variable
func (v *Variable) Universe() *Universe { return v.universe }

// TermNames in declaration order
func (v *Variable) TermNames() []string {
	names := make([]string, len(v.terms))
	for i, t := range v.terms {
		names[i] = t.Name
	}
	return names
}

// Term returns the membership function declared for name.
func (v *Variable) Term(name string) (MembershipFunc, bool) {
	i, ok := v.index[name]
	if !ok {
		return nil, false
	}
	return v.terms[i].MF, true
}

// Curve returns the term sampled over the universe.
func (v *Variable) Curve(term string) ([]Point, error) {
	i, ok := v.index[term]
	if !ok {
		return nil, &ConstructionError{Kind: ErrUnknownReference, Subject: fmt.Sprintf("%s[%s]", v.name, term)}
	}
	points := make([]Point, v.universe.Len())
	for j, d := range v.curves[i] {
		points[j] = Point{X: v.universe.At(j), Degree: d}
	}
	return points, nil
}

// Fuzzify evaluates every term directly at x.
// Values outside the universe are not rejected.
func (v *Variable) Fuzzify(x float64) Degrees {
	degrees := make(Degrees, len(v.terms))
	for _, t := range v.terms {
		degrees[t.Name] = t.MF.Degree(x)
	}
	return degrees
}

func (v *Variable) curve(term string) ([]float64, bool) {
	i, ok := v.index[term]
	if !ok {
		return nil, false
	}
	return v.curves[i], true
}
