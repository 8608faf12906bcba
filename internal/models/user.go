package model

import (
	"time"

	"github.com/MassBabyGeek/TrilhaVital-backend/internal/bmi"
)

// DateFields contient les champs de date standard des entités
type DateFields struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// User est identifié par son email, faute d'authentification
type User struct {
	ID      string   `json:"id" gorm:"primaryKey;type:text"`
	Name    string   `json:"name" gorm:"not null"`
	Email   string   `json:"email" gorm:"uniqueIndex;not null"`
	Profile *Profile `json:"profile" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	DateFields

	// Classification n'est pas persistée, elle est recalculée à chaque lecture
	Classification *bmi.Classification `json:"classification,omitempty" gorm:"-"`
}

type Profile struct {
	ID     string  `json:"id" gorm:"primaryKey;type:text"`
	UserID string  `json:"userId" gorm:"uniqueIndex;not null;type:text"`
	Age    int     `json:"age"`
	Weight float64 `json:"weight"`
	Height float64 `json:"height"`
	IMC    float64 `json:"imc" gorm:"column:imc"`
	DateFields
}

// ProfileInput regroupe les valeurs déjà parsées d'une soumission de profil
type ProfileInput struct {
	Name   string  `validate:"required"`
	Age    int     `validate:"gt=0,lte=130"`
	Weight float64 `validate:"gt=0,lte=500"` // kg
	Height float64 `validate:"gt=0,lte=3"`   // m
	IMC    float64
}

// IMCValue retourne l'IMC stocké, ou nil si aucun profil n'existe encore
func (u *User) IMCValue() *float64 {
	if u == nil || u.Profile == nil {
		return nil
	}
	v := u.Profile.IMC
	return &v
}

// Classify renseigne la classification à partir du profil courant
func (u *User) Classify() {
	c := bmi.Classify(u.IMCValue())
	u.Classification = &c
}
