package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	model "github.com/MassBabyGeek/TrilhaVital-backend/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed exercises.yaml
var defaultCatalog []byte

type file struct {
	Exercises []model.Exercise `yaml:"exercises"`
}

// Default retourne le catalogue embarqué dans le binaire
func Default() ([]model.Exercise, error) {
	return Parse(defaultCatalog)
}

// Parse décode un catalogue YAML et vérifie que chaque nom est unique
func Parse(data []byte) ([]model.Exercise, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	seen := make(map[string]bool, len(f.Exercises))
	for i := range f.Exercises {
		ex := &f.Exercises[i]
		ex.Name = strings.TrimSpace(ex.Name)
		ex.MuscleGroup = strings.TrimSpace(ex.MuscleGroup)
		ex.Description = strings.TrimSpace(ex.Description)

		if ex.Name == "" || ex.MuscleGroup == "" {
			return nil, fmt.Errorf("catalog entry %d: name and muscleGroup are required", i)
		}
		if seen[ex.Name] {
			return nil, fmt.Errorf("catalog entry %d: duplicate exercise %q", i, ex.Name)
		}
		seen[ex.Name] = true
	}
	return f.Exercises, nil
}
