package fuzzy

import (
	"fmt"
	"math"
	"strings"
)

// Op tags the kind of an antecedent expression node.
type Op uint8

const (
	opInvalid Op = iota
	// OpIs is a leaf: the degree of one term of one input variable
	OpIs
	// OpAnd combines operands with min
	OpAnd
	// OpOr combines operands with max
	OpOr
	// OpNot is 1 minus its operand
	OpNot
)

func (o Op) String() string {
	switch o {
	case OpIs:
		return "is"
	case OpAnd:
		return "and"
	case OpOr:
		return "or"
	case OpNot:
		return "not"
	default:
		return "invalid"
	}
}

// Fuzzified holds the degrees of every input variable for one evaluation.
type Fuzzified map[string]Degrees

// An Expr is an immutable node of a rule antecedent.
// The zero value is invalid and rejected by NewModel.
type Expr struct {
	op       Op
	variable string
	term     string
	operands []Expr
}

// Is is the leaf "variable is term".
func Is(variable, term string) Expr {
	return Expr{op: OpIs, variable: variable, term: term}
}

// And is the minimum of its operands.
func And(operands ...Expr) Expr {
	return Expr{op: OpAnd, operands: append([]Expr(nil), operands...)}
}

// Or is the maximum of its operands.
func Or(operands ...Expr) Expr {
	return Expr{op: OpOr, operands: append([]Expr(nil), operands...)}
}

// Not is the complement of its operand.
func Not(operand Expr) Expr {
	return Expr{op: OpNot, operands: []Expr{operand}}
}

// Op returns the node kind
func (e Expr) Op() Op { return e.op }

// Reference returns the variable and term of an OpIs leaf.
func (e Expr) Reference() (variable, term string) { return e.variable, e.term }

// Operands returns a copy of the children of an inner node.
func (e Expr) Operands() []Expr { return append([]Expr(nil), e.operands...) }

// Eval computes the firing strength of the expression.
func (e Expr) Eval(in Fuzzified) (float64, error) {
	switch e.op {
	case OpIs:
		degrees, ok := in[e.variable]
		if !ok {
			return 0, &EvaluationError{Kind: ErrUnknownReference, Variable: e.variable}
		}
		d, ok := degrees[e.term]
		if !ok {
			return 0, &EvaluationError{Kind: ErrUnknownReference, Variable: e.variable, Detail: "term " + e.term}
		}
		return d, nil
	case OpAnd:
		strength := 1.0
		for _, o := range e.operands {
			d, err := o.Eval(in)
			if err != nil {
				return 0, err
			}
			strength = math.Min(strength, d)
		}
		return strength, nil
	case OpOr:
		strength := 0.0
		for _, o := range e.operands {
			d, err := o.Eval(in)
			if err != nil {
				return 0, err
			}
			strength = math.Max(strength, d)
		}
		return strength, nil
	case OpNot:
		d, err := e.operands[0].Eval(in)
		if err != nil {
			return 0, err
		}
		return 1 - d, nil
	default:
		return 0, &EvaluationError{Kind: ErrInvalidRule, Detail: "invalid expression"}
	}
}

// walk calls fn for every leaf and returns the first error.
func (e Expr) walk(fn func(Expr) error) error {
	switch e.op {
	case OpIs:
		return fn(e)
	case OpAnd, OpOr:
		if len(e.operands) == 0 {
			return constructionErrorf(ErrInvalidRule, e.op.String(), "no operands")
		}
	case OpNot:
		if len(e.operands) != 1 {
			return constructionErrorf(ErrInvalidRule, e.op.String(), "want 1 operand, got %d", len(e.operands))
		}
	default:
		return constructionErrorf(ErrInvalidRule, "", "zero expression")
	}
	for _, o := range e.operands {
		if err := o.walk(fn); err != nil {
			return err
		}
	}
	return nil
}

func (e Expr) String() string {
	switch e.op {
	case OpIs:
		return fmt.Sprintf("%s[%s]", e.variable, e.term)
	case OpNot:
		return "~" + e.operands[0].String()
	case OpAnd, OpOr:
		sep := " & "
		if e.op == OpOr {
			sep = " | "
		}
		parts := make([]string, len(e.operands))
		for i, o := range e.operands {
			parts[i] = o.String()
		}
		return "(" + strings.Join(parts, sep) + ")"
	default:
		return "<invalid>"
	}
}

// A Consequent assigns an output term.
type Consequent struct {
	Variable string
	Term     string
}

// Then is the consequent "variable is term".
func Then(variable, term string) Consequent {
	return Consequent{Variable: variable, Term: term}
}

// A Rule pairs an antecedent with the output terms it implies.
type Rule struct {
	label       string
	antecedent  Expr
	consequents []Consequent
}

// NewRule creates a rule
func NewRule(antecedent Expr, consequents ...Consequent) Rule {
	return Rule{antecedent: antecedent, consequents: append([]Consequent(nil), consequents...)}
}

// Labeled returns a copy of the rule with a label used in logs and results.
func (r Rule) Labeled(label string) Rule {
	r.label = label
	return r
}

// Label of the rule, may be empty
func (r Rule) Label() string { return r.label }

// Antecedent of the rule
func (r Rule) Antecedent() Expr { return r.antecedent }

// Consequents returns a copy of the implied output terms.
func (r Rule) Consequents() []Consequent {
	return append([]Consequent(nil), r.consequents...)
}

func (r Rule) String() string {
	parts := make([]string, len(r.consequents))
	for i, c := range r.consequents {
		parts[i] = fmt.Sprintf("%s[%s]", c.Variable, c.Term)
	}
	return fmt.Sprintf("IF %s THEN %s", r.antecedent, strings.Join(parts, ", "))
}
