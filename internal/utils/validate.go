package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate est partagé: validator met en cache les métadonnées des structs
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Utiliser les noms JSON dans les erreurs
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Messages spécifiques par champ (chemin JSON sans index) puis tag
var fieldMessages = map[string]map[string]string{
	"name": {
		"min": "O nome do treino deve ter pelo menos 3 caracteres.",
	},
	"exercises": {
		"min": "O treino precisa ter pelo menos um exercício.",
	},
	"exercises.exerciseId": {
		"required": "ID do exercício inválido.",
		"uuid":     "ID do exercício inválido.",
	},
	"exercises.sets": {
		"min": "O número de séries deve ser pelo menos 1.",
	},
	"exercises.reps": {
		"required": "As repetições são obrigatórias.",
	},
	"exercises.restSeconds": {
		"required": "O descanso é obrigatório.",
		"min":      "O descanso não pode ser negativo.",
	},
}

// ValidateStruct valide v selon ses tags `validate` et retourne le détail
// par champ (ex: "exercises[0].sets"). Un résultat nil signifie valide.
func ValidateStruct(v interface{}) (map[string][]string, error) {
	err := validate.Struct(v)
	if err == nil {
		return nil, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, err
	}

	details := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		path := fieldPath(fe.Namespace())
		details[path] = append(details[path], message(path, fe))
	}
	return details, nil
}

// ValidateVar valide une valeur isolée, ex: ValidateVar(email, "email")
func ValidateVar(value interface{}, tag string) bool {
	return validate.Var(value, tag) == nil
}

// fieldPath retire le nom de la struct racine: "CreateWorkoutInput.exercises[0].sets" -> "exercises[0].sets"
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func message(path string, fe validator.FieldError) string {
	key := stripIndexes(path)
	if msgs, ok := fieldMessages[key]; ok {
		if msg, ok := msgs[fe.Tag()]; ok {
			return msg
		}
	}

	switch fe.Tag() {
	case "required":
		return "Campo obrigatório."
	case "min":
		return fmt.Sprintf("Valor mínimo: %s.", fe.Param())
	case "gt":
		return fmt.Sprintf("Deve ser maior que %s.", fe.Param())
	case "email":
		return "Email inválido."
	case "uuid":
		return "Identificador inválido."
	default:
		return fmt.Sprintf("Valor inválido (%s).", fe.Tag())
	}
}

// stripIndexes transforme "exercises[0].sets" en "exercises.sets"
func stripIndexes(path string) string {
	var b strings.Builder
	depth := 0
	for _, r := range path {
		switch {
		case r == '[':
			depth++
		case r == ']':
			depth--
		case depth == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}
