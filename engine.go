// Package fuzzy implements a Mamdani fuzzy inference engine.
//
// Crisp inputs are fuzzified against the terms of every input variable, rule
// antecedents combine term degrees with min (and) and max (or), every rule
// clips its output terms by its firing strength, the clipped curves are
// merged with max over the output universe and the result is defuzzified.
package fuzzy

import (
	"fmt"
	"math"
	"sort"

	"github.com/nguyenthanhtrungbkhn/go-fuzzy-logic/internal/utils"
)

// An Engine evaluates a Model. It holds no mutable state, Compute may be
// called concurrently.
type Engine struct {
	model  *Model
	config *Config
}

// NewEngine creates an engine for m. A nil config selects the defaults.
func NewEngine(m *Model, config *Config) (*Engine, error) {
	if m == nil {
		return nil, fmt.Errorf("fuzzy: nil model")
	}
	config = populateConfig(config)
	if !config.Defuzzification.Valid() {
		return nil, fmt.Errorf("fuzzy: unknown defuzzification method %q", config.Defuzzification)
	}
	return &Engine{model: m, config: config}, nil
}

// Model returns the evaluated model.
func (e *Engine) Model() *Model { return e.model }

// A Result describes one evaluation.
type Result struct {
	// Output is the crisp value
	Output float64
	// Inputs holds the degree of every term of every input variable
	Inputs Fuzzified
	// Activations holds the firing strength of every rule, in rule order
	Activations []float64
	// Aggregate is the merged output curve
	Aggregate []Point
}

// Compute returns the crisp output for the given inputs.
// Every input variable needs a value.
func (e *Engine) Compute(inputs map[string]float64) (float64, error) {
	r, err := e.Evaluate(inputs)
	if err != nil {
		return 0, err
	}
	return r.Output, nil
}

// Evaluate is Compute with the intermediate state of the evaluation.
func (e *Engine) Evaluate(inputs map[string]float64) (*Result, error) {
	fuzzified, err := e.fuzzify(inputs)
	if err != nil {
		return nil, err
	}

	out := e.model.output
	xs := out.universe.samples
	aggregate := make([]float64, len(xs))
	activations := make([]float64, len(e.model.rules))
	for i, r := range e.model.rules {
		strength, err := r.antecedent.Eval(fuzzified)
		if err != nil {
			return nil, err
		}
		activations[i] = strength
		if utils.Debug() {
			utils.Debugf("Rule %d %s fired with strength %.4f", i, r.label, strength)
		}
		if strength == 0 {
			continue
		}
		for _, c := range r.consequents {
			curve, ok := out.curve(c.Term)
			if !ok {
				return nil, &EvaluationError{Kind: ErrUnknownReference, Variable: c.Variable, Detail: "term " + c.Term}
			}
			implicate(aggregate, curve, strength)
		}
	}

	crisp, err := Defuzzify(e.config.Defuzzification, xs, aggregate)
	if err != nil {
		if ee, ok := err.(*EvaluationError); ok {
			ee.Variable = out.Name()
		}
		return nil, err
	}

	points := make([]Point, len(xs))
	for i, x := range xs {
		points[i] = Point{X: x, Degree: aggregate[i]}
	}
	return &Result{
		Output:      crisp,
		Inputs:      fuzzified,
		Activations: activations,
		Aggregate:   points,
	}, nil
}

func (e *Engine) fuzzify(inputs map[string]float64) (Fuzzified, error) {
	var unknown []string
	for name := range inputs {
		if _, ok := e.model.byName[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, &EvaluationError{Kind: ErrUnknownReference, Variable: unknown[0], Detail: "not an input variable"}
	}
	fuzzified := make(Fuzzified, len(e.model.inputs))
	for _, v := range e.model.inputs {
		x, ok := inputs[v.name]
		if !ok {
			return nil, &EvaluationError{Kind: ErrMissingInput, Variable: v.name}
		}
		if math.IsNaN(x) {
			return nil, &EvaluationError{Kind: ErrInvalidInput, Variable: v.name, Detail: "NaN"}
		}
		if e.config.ClipToBounds {
			x = v.universe.clamp(x)
		}
		fuzzified[v.name] = v.Fuzzify(x)
	}
	return fuzzified, nil
}

// implicate clips curve at strength and merges it into aggregate with max.
func implicate(aggregate, curve []float64, strength float64) {
	for i, d := range curve {
		aggregate[i] = math.Max(aggregate[i], math.Min(strength, d))
	}
}
