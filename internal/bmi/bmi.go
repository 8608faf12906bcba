package bmi

import (
	"errors"
	"math"
)

var (
	// ErrInvalidHeight est retournée quand la taille ne permet pas le calcul
	ErrInvalidHeight = errors.New("height must be greater than zero")
	// ErrOutOfRange est retournée quand le résultat n'est pas un nombre fini
	ErrOutOfRange = errors.New("bmi is not a finite number")
)

// Tier identifie une tranche de classification
type Tier string

const (
	TierAwaiting    Tier = "AWAITING"
	TierUnderweight Tier = "UNDERWEIGHT"
	TierIdeal       Tier = "IDEAL"
	TierOverweight  Tier = "OVERWEIGHT"
	TierObesityI    Tier = "OBESITY_I"
	TierObesityII   Tier = "OBESITY_II_III"
)

type Classification struct {
	Tier     Tier   `json:"tier"`
	Label    string `json:"label"`
	Strategy string `json:"strategy"`
}

type band struct {
	upper float64
	Classification
}

// Bandes triées par seuil croissant, la première dont imc < upper l'emporte
var bands = []band{
	{18.5, Classification{TierUnderweight, "Abaixo do peso",
		"Foco em ganho de massa: superávit calórico controlado e treino de força."}},
	{24.9, Classification{TierIdeal, "Peso ideal",
		"Manutenção com foco em fortalecimento, tonificação e saúde cardiovascular."}},
	{29.9, Classification{TierOverweight, "Sobrepeso",
		"Déficit calórico moderado combinando musculação e exercícios aeróbicos."}},
	{34.9, Classification{TierObesityI, "Obesidade Grau I",
		"Perda de peso supervisionada com exercícios de baixo impacto."}},
}

var (
	awaiting = Classification{TierAwaiting, "Aguardando dados...",
		"Preencha e salve seu perfil para começar."}
	severe = Classification{TierObesityII, "Obesidade Grau II ou III",
		"Acompanhamento médico e exercícios adaptados de baixo impacto."}
)

// Compute calcule l'IMC (poids / taille²) arrondi à deux décimales.
// Un poids énorme ou une taille minuscule donnent ErrOutOfRange.
func Compute(weightKg, heightM float64) (float64, error) {
	if heightM <= 0 || math.IsNaN(heightM) {
		return 0, ErrInvalidHeight
	}
	imc := weightKg / (heightM * heightM)
	if math.IsNaN(imc) || math.IsInf(imc, 0) {
		return 0, ErrOutOfRange
	}
	return Round(imc), nil
}

// Round arrondit à deux décimales
func Round(v float64) float64 {
	return math.Round(v*100) / 100
}

// Classify associe un IMC à sa tranche. Un IMC absent donne la tranche d'attente.
func Classify(imc *float64) Classification {
	if imc == nil || math.IsNaN(*imc) {
		return awaiting
	}
	for _, b := range bands {
		if *imc < b.upper {
			return b.Classification
		}
	}
	return severe
}
