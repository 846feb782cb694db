package model

import (
	"errors"
	"fmt"
)

// Field ordering is part of the output contract: generators emit fields in
// insertion order, so the collection pairs an ordered slice with a name index
// for O(1) lookup. Re-adding a name replaces the definition in place without
// moving it (last write wins, original position kept).

var errFieldNameMissing = errors.New("model: field name is required")

// AddField inserts or replaces a field definition.
func (m *ModelDefinition) AddField(field FieldDefinition) error {
	if field.Name == "" {
		return errFieldNameMissing
	}
	if !field.Type.Valid() {
		return fmt.Errorf("model: field %q: unknown type %q", field.Name, field.Type)
	}

	if m.fieldIndex == nil {
		m.fieldIndex = make(map[string]int)
	}
	if pos, ok := m.fieldIndex[field.Name]; ok {
		m.fields[pos] = field
		return nil
	}
	m.fieldIndex[field.Name] = len(m.fields)
	m.fields = append(m.fields, field)
	return nil
}

// AddFields inserts all provided fields, stopping at the first invalid one.
func (m *ModelDefinition) AddFields(fields ...FieldDefinition) error {
	for _, field := range fields {
		if err := m.AddField(field); err != nil {
			return err
		}
	}
	return nil
}

// Field returns the definition registered under name.
func (m *ModelDefinition) Field(name string) (FieldDefinition, bool) {
	pos, ok := m.fieldIndex[name]
	if !ok {
		return FieldDefinition{}, false
	}
	return m.fields[pos], true
}

// Fields returns the field definitions in insertion order. The slice is a
// copy; mutating it does not affect the model.
func (m *ModelDefinition) Fields() []FieldDefinition {
	if len(m.fields) == 0 {
		return nil
	}
	out := make([]FieldDefinition, len(m.fields))
	copy(out, m.fields)
	return out
}

// FieldCount reports the number of registered fields.
func (m *ModelDefinition) FieldCount() int {
	return len(m.fields)
}
