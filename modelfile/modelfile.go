// Package modelfile reads fuzzy models declared in YAML or JSON documents.
package modelfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	fuzzy "github.com/nguyenthanhtrungbkhn/go-fuzzy-logic"
	"github.com/nguyenthanhtrungbkhn/go-fuzzy-logic/internal/utils"
)

// ErrInvalidDocument is returned for documents that cannot be decoded or fail validation.
var ErrInvalidDocument = errors.New("invalid model document")

var validate = validator.New()

// A Document declares a complete model.
type Document struct {
	Inputs []Variable `yaml:"inputs" json:"inputs" validate:"required,min=1,dive"`
	Output Variable   `yaml:"output" json:"output"`
	Rules  []Rule     `yaml:"rules" json:"rules" validate:"required,min=1,dive"`
}

// Universe bounds of a variable
type Universe struct {
	Min  float64 `yaml:"min" json:"min"`
	Max  float64 `yaml:"max" json:"max" validate:"gtfield=Min"`
	Step float64 `yaml:"step" json:"step" validate:"gt=0"`
}

// A Variable declares a linguistic variable. Automf terms come before Terms.
type Variable struct {
	Name     string   `yaml:"name" json:"name" validate:"required"`
	Universe Universe `yaml:"universe" json:"universe"`
	Automf   []string `yaml:"automf,omitempty" json:"automf,omitempty" validate:"omitempty,min=2,dive,required"`
	Terms    []Term   `yaml:"terms,omitempty" json:"terms,omitempty" validate:"dive"`
}

// A Term declares an explicit membership function.
type Term struct {
	Name   string    `yaml:"name" json:"name" validate:"required"`
	Shape  string    `yaml:"shape" json:"shape" validate:"required,oneof=trimf trapmf"`
	Params []float64 `yaml:"params" json:"params" validate:"min=3,max=4"`
}

// A Rule declares an antecedent and the output terms it implies.
type Rule struct {
	Label string       `yaml:"label,omitempty" json:"label,omitempty"`
	If    Expr         `yaml:"if" json:"if"`
	Then  []Consequent `yaml:"then" json:"then" validate:"required,min=1,dive"`
}

// A Consequent names an output term.
type Consequent struct {
	Variable string `yaml:"variable" json:"variable" validate:"required"`
	Term     string `yaml:"term" json:"term" validate:"required"`
}

// An Expr is exactly one of a leaf (Variable and Term), And, Or or Not.
type Expr struct {
	Variable string `yaml:"variable,omitempty" json:"variable,omitempty"`
	Term     string `yaml:"term,omitempty" json:"term,omitempty"`
	And      []Expr `yaml:"and,omitempty" json:"and,omitempty"`
	Or       []Expr `yaml:"or,omitempty" json:"or,omitempty"`
	Not      *Expr  `yaml:"not,omitempty" json:"not,omitempty"`
}

// Parse decodes and validates a document. JSON is detected from the content,
// anything else is read as YAML. Unknown fields are rejected.
func Parse(data []byte) (*Document, error) {
	doc := &Document{}
	if mimetype.Detect(data).Is("application/json") {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
	} else {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
	}
	if err := validate.Struct(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return doc, nil
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	utils.Debugf("Loading model document %s (%s)", path, mimetype.Detect(data))
	return Parse(data)
}

// LoadModel reads the document at path and builds its model.
func LoadModel(path string) (*fuzzy.Model, error) {
	doc, err := Load(path)
	if err != nil {
		return nil, err
	}
	return doc.Build()
}

// Build turns the document into a model.
func (d *Document) Build() (*fuzzy.Model, error) {
	inputs := make([]fuzzy.VariableConfig, len(d.Inputs))
	for i, v := range d.Inputs {
		config, err := v.config()
		if err != nil {
			return nil, err
		}
		inputs[i] = config
	}
	output, err := d.Output.config()
	if err != nil {
		return nil, err
	}
	rules := make([]fuzzy.Rule, len(d.Rules))
	for i, r := range d.Rules {
		antecedent, err := r.If.expr()
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		consequents := make([]fuzzy.Consequent, len(r.Then))
		for j, c := range r.Then {
			consequents[j] = fuzzy.Then(c.Variable, c.Term)
		}
		rules[i] = fuzzy.NewRule(antecedent, consequents...).Labeled(r.Label)
	}
	return fuzzy.NewModel(inputs, output, rules...)
}

func (v Variable) config() (fuzzy.VariableConfig, error) {
	config := fuzzy.VariableConfig{
		Name:   v.Name,
		Min:    v.Universe.Min,
		Max:    v.Universe.Max,
		Step:   v.Universe.Step,
		Automf: v.Automf,
	}
	for _, t := range v.Terms {
		mf, err := fuzzy.NewMembershipFunc(fuzzy.Shape(t.Shape), t.Params)
		if err != nil {
			return fuzzy.VariableConfig{}, fmt.Errorf("%s[%s]: %w", v.Name, t.Name, err)
		}
		config.Terms = append(config.Terms, fuzzy.TermConfig{Name: t.Name, MF: mf})
	}
	return config, nil
}

func (e Expr) expr() (fuzzy.Expr, error) {
	forms := 0
	if e.Variable != "" || e.Term != "" {
		forms++
	}
	if e.And != nil {
		forms++
	}
	if e.Or != nil {
		forms++
	}
	if e.Not != nil {
		forms++
	}
	if forms != 1 {
		return fuzzy.Expr{}, fmt.Errorf("%w: expression needs exactly one of variable/term, and, or, not", ErrInvalidDocument)
	}

	switch {
	case e.Not != nil:
		operand, err := e.Not.expr()
		if err != nil {
			return fuzzy.Expr{}, err
		}
		return fuzzy.Not(operand), nil
	case e.And != nil:
		operands, err := exprs(e.And)
		if err != nil {
			return fuzzy.Expr{}, err
		}
		return fuzzy.And(operands...), nil
	case e.Or != nil:
		operands, err := exprs(e.Or)
		if err != nil {
			return fuzzy.Expr{}, err
		}
		return fuzzy.Or(operands...), nil
	default:
		if e.Variable == "" || e.Term == "" {
			return fuzzy.Expr{}, fmt.Errorf("%w: leaf needs both variable and term", ErrInvalidDocument)
		}
		return fuzzy.Is(e.Variable, e.Term), nil
	}
}

func exprs(list []Expr) ([]fuzzy.Expr, error) {
	out := make([]fuzzy.Expr, len(list))
	for i, e := range list {
		x, err := e.expr()
		if err != nil {
			return nil, err
		}
		out[i] = x
	}
	return out, nil
}
