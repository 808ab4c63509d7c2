package models

import "encoding/json"

// Slider is a presentational record; every field, _id included, passes
// through untouched.
type Slider struct {
	Fields map[string]any `bson:",inline"`
}

func (s Slider) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonObject(s.Fields, 0))
}
