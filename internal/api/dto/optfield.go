package dto

import "encoding/json"

// OptField is a tri-state JSON field for sparse updates: absent, explicit
// null, or a value. Absent fields leave the stored value untouched while
// explicit null clears it.
type OptField[T any] struct {
	Set   bool
	Valid bool
	Value T
}

// UnmarshalJSON marks the field as present and decodes the value unless it
// is an explicit null.
func (f *OptField[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if string(data) == "null" {
		f.Valid = false
		return nil
	}
	if err := json.Unmarshal(data, &f.Value); err != nil {
		return err
	}
	f.Valid = true
	return nil
}

// Ptr returns the value as a pointer, nil for absent or null.
func (f OptField[T]) Ptr() *T {
	if !f.Set || !f.Valid {
		return nil
	}
	v := f.Value
	return &v
}
