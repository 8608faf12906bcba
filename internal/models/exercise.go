package model

// Exercise est une entrée du catalogue, créée par le seed puis en lecture seule
type Exercise struct {
	ID          string `json:"id" gorm:"primaryKey;type:text"`
	Name        string `json:"name" yaml:"name" gorm:"uniqueIndex;not null"`
	MuscleGroup string `json:"muscleGroup" yaml:"muscleGroup" gorm:"index;not null"`
	Description string `json:"description" yaml:"description"`
}
