package model

// FieldType is the closed set of semantic field types a model field can
// declare. FieldTypeAuto leaves type inference to the client framework.
type FieldType string

const (
	FieldTypeAuto    FieldType = "auto"
	FieldTypeInt     FieldType = "int"
	FieldTypeFloat   FieldType = "float"
	FieldTypeString  FieldType = "string"
	FieldTypeBoolean FieldType = "boolean"
	FieldTypeDate    FieldType = "date"
)

// Valid reports whether t is one of the supported field types. The empty
// string is accepted and treated as FieldTypeAuto.
func (t FieldType) Valid() bool {
	switch t {
	case "", FieldTypeAuto, FieldTypeInt, FieldTypeFloat, FieldTypeString,
		FieldTypeBoolean, FieldTypeDate:
		return true
	default:
		return false
	}
}

// FieldDefinition describes a single model field. Zero values mean "use the
// client framework default, do not emit". AllowNull and Persist are pointers
// so an explicit false can be told apart from unset.
type FieldDefinition struct {
	Name         string
	Type         FieldType
	DefaultValue any
	AllowNull    *bool
	DateFormat   string
	Persist      *bool
	Mapping      string

	// Convert holds a verbatim client-side expression used to compute the
	// field value. Only meaningful when Persist is explicitly false.
	Convert string
}

// ModelDefinition is the root description of an entity handed to a generator.
// It is assembled once by a metadata extractor, then treated as immutable:
// generators never mutate it, so the same definition can be rendered to
// several dialects concurrently.
type ModelDefinition struct {
	Name       string
	IDProperty string

	fields     []FieldDefinition
	fieldIndex map[string]int

	Validations  []ValidationRule
	Associations []AssociationRule

	Paging                  bool
	DisablePagingParameters bool

	// CRUD method references in "controller.action" form. Empty means the
	// operation is not exposed.
	ReadMethod    string
	CreateMethod  string
	UpdateMethod  string
	DestroyMethod string

	MessageProperty string
	SuccessProperty string
	TotalProperty   string
	RootProperty    string
	Writer          string
}

// DefaultIDProperty is the conventional primary-key field name assumed when a
// model does not set IDProperty.
const DefaultIDProperty = "id"

// EffectiveIDProperty returns IDProperty, falling back to DefaultIDProperty.
func (m *ModelDefinition) EffectiveIDProperty() string {
	if m.IDProperty != "" {
		return m.IDProperty
	}
	return DefaultIDProperty
}

// HasMethods reports whether any CRUD method reference is set.
func (m *ModelDefinition) HasMethods() bool {
	return m.ReadMethod != "" || m.CreateMethod != "" || m.UpdateMethod != "" ||
		m.DestroyMethod != ""
}

// ReadOnly reports whether the model exposes exactly the read method. Read
// only models collapse to the compact direct-function proxy form.
func (m *ModelDefinition) ReadOnly() bool {
	return m.ReadMethod != "" && m.CreateMethod == "" && m.UpdateMethod == "" &&
		m.DestroyMethod == ""
}

// AddValidation appends a validation rule, preserving insertion order.
func (m *ModelDefinition) AddValidation(rule ValidationRule) {
	m.Validations = append(m.Validations, rule)
}

// AddAssociation appends an association rule, preserving insertion order.
func (m *ModelDefinition) AddAssociation(rule AssociationRule) {
	m.Associations = append(m.Associations, rule)
}
