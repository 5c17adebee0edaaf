// Package restaurant is the restaurant satisfaction model: food quality,
// service and ambience rated from 0 to 10 give a satisfaction from 0 to 10.
package restaurant

import (
	_ "embed"

	fuzzy "github.com/nguyenthanhtrungbkhn/go-fuzzy-logic"
)

// Variable names
const (
	FoodQuality  = "food_quality"
	Service      = "service"
	Ambience     = "ambience"
	Satisfaction = "satisfaction"
)

// Document is the model as a model file.
//
//go:embed restaurant.yaml
var Document []byte

// InputNames in the order used by TestCases.
var InputNames = []string{FoodQuality, Service, Ambience}

var quality = []string{"poor", "average", "excellent"}

func input(name string) fuzzy.VariableConfig {
	return fuzzy.VariableConfig{Name: name, Min: 0, Max: 10, Step: 1, Automf: quality}
}

func rule(food, service, ambience, satisfaction string) fuzzy.Rule {
	return fuzzy.NewRule(
		fuzzy.And(
			fuzzy.Is(FoodQuality, food),
			fuzzy.Is(Service, service),
			fuzzy.Is(Ambience, ambience),
		),
		fuzzy.Then(Satisfaction, satisfaction),
	)
}

// Rules of the model, from very low to very high satisfaction.
func Rules() []fuzzy.Rule {
	return []fuzzy.Rule{
		rule("poor", "poor", "poor", "very_low"),

		rule("poor", "poor", "average", "low"),
		rule("poor", "average", "poor", "low"),
		rule("average", "poor", "poor", "low"),

		rule("average", "average", "average", "medium"),
		rule("excellent", "poor", "poor", "medium"),
		rule("poor", "excellent", "excellent", "medium"),

		rule("excellent", "average", "average", "high"),
		rule("average", "excellent", "excellent", "high"),
		rule("excellent", "excellent", "average", "high"),

		rule("excellent", "excellent", "excellent", "very_high"),
	}
}

// Inputs returns the declarations of the three input variables.
func Inputs() []fuzzy.VariableConfig {
	return []fuzzy.VariableConfig{input(FoodQuality), input(Service), input(Ambience)}
}

// Output returns the declaration of the satisfaction variable.
func Output() fuzzy.VariableConfig {
	return fuzzy.VariableConfig{
		Name: Satisfaction, Min: 0, Max: 10, Step: 1,
		Terms: []fuzzy.TermConfig{
			{Name: "very_low", MF: fuzzy.Triangular{A: 0, B: 0, C: 2.5}},
			{Name: "low", MF: fuzzy.Triangular{A: 0, B: 2.5, C: 5}},
			{Name: "medium", MF: fuzzy.Triangular{A: 2.5, B: 5, C: 7.5}},
			{Name: "high", MF: fuzzy.Triangular{A: 5, B: 7.5, C: 10}},
			{Name: "very_high", MF: fuzzy.Triangular{A: 7.5, B: 10, C: 10}},
		},
	}
}

// New builds the model.
func New() (*fuzzy.Model, error) {
	return fuzzy.NewModel(Inputs(), Output(), Rules()...)
}

// TestCases are (food quality, service, ambience) ratings covering the whole scale.
func TestCases() [][]float64 {
	return [][]float64{
		{1, 1, 1},
		{3, 3, 3},
		{5, 5, 5},
		{7, 7, 7},
		{9, 9, 9},
		{9, 3, 3},
		{3, 9, 9},
		{9, 9, 3},
	}
}

// Ratings turns a triple into named inputs.
func Ratings(food, service, ambience float64) map[string]float64 {
	return map[string]float64{FoodQuality: food, Service: service, Ambience: ambience}
}
