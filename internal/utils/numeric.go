package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormNumber accepte un nombre JSON ou une chaîne numérique, comme l'envoient
// les formulaires HTML. Raw vaut "" quand le champ est absent, null ou vide.
type FormNumber struct {
	Raw string
}

func (n *FormNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		n.Raw = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n.Raw = strings.TrimSpace(s)
	case len(data) > 0 && (data[0] == '-' || (data[0] >= '0' && data[0] <= '9')):
		n.Raw = string(data)
	default:
		return fmt.Errorf("expected number or numeric string, got %s", data)
	}
	return nil
}

func (n FormNumber) MarshalJSON() ([]byte, error) {
	if n.Raw == "" {
		return []byte("null"), nil
	}
	return json.Marshal(n.Raw)
}

// Empty indique que la valeur n'a pas été fournie (ou vaut 0, comme le refuserait le formulaire)
func (n FormNumber) Empty() bool {
	if n.Raw == "" {
		return true
	}
	f, err := n.Float()
	return err == nil && f == 0
}

// Float parse la valeur; la virgule décimale est acceptée ("1,75")
func (n FormNumber) Float() (float64, error) {
	raw := strings.Replace(n.Raw, ",", ".", 1)
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", n.Raw)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%q is not a finite number", n.Raw)
	}
	return f, nil
}

// Int parse la valeur comme entier; "30.0" est accepté, "30.5" non
func (n FormNumber) Int() (int, error) {
	f, err := n.Float()
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, fmt.Errorf("%q is not an integer", n.Raw)
	}
	return int(f), nil
}
