package definition

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leonidagapkin/extclassgenerator/pkg/model"
)

const jsonDoc = `{
  "name": "MyApp.model.User",
  "idProperty": "userId",
  "paging": true,
  "readMethod": "userService.read",
  "createMethod": "userService.create",
  "rootProperty": "rows",
  "fields": [
    {"name": "userId", "type": "int"},
    {"name": "email", "type": "string", "allowNull": true},
    {"name": "active", "type": "boolean", "defaultValue": true},
    "notes"
  ],
  "validations": [
    {"type": "presence", "field": "email"},
    {"type": "length", "field": "email", "min": 3, "max": 100},
    {"type": "strength", "field": "password", "options": {"minScore": "3"}}
  ],
  "associations": [
    {"type": "hasMany", "model": "MyApp.model.Order", "foreignKey": "userId"}
  ]
}`

func TestDecodeJSON(t *testing.T) {
	definition, err := DecodeJSON([]byte(jsonDoc))
	require.NoError(t, err)

	assert.Equal(t, "MyApp.model.User", definition.Name)
	assert.Equal(t, "userId", definition.IDProperty)
	assert.True(t, definition.Paging)
	assert.Equal(t, "userService.read", definition.ReadMethod)
	assert.Equal(t, "rows", definition.RootProperty)

	fields := definition.Fields()
	require.Len(t, fields, 4)
	assert.Equal(t, "userId", fields[0].Name)
	assert.Equal(t, model.FieldTypeInt, fields[0].Type)
	require.NotNil(t, fields[1].AllowNull)
	assert.True(t, *fields[1].AllowNull)
	assert.Equal(t, true, fields[2].DefaultValue)

	// A bare string entry is shorthand for a field with only a name.
	assert.Equal(t, "notes", fields[3].Name)
	assert.Empty(t, fields[3].Type)

	require.Len(t, definition.Validations, 3)
	assert.Equal(t, model.ValidationPresence, definition.Validations[0].Kind)
	assert.Equal(t, model.ValidationLength, definition.Validations[1].Kind)
	require.NotNil(t, definition.Validations[1].Min)
	assert.Equal(t, 3.0, *definition.Validations[1].Min)

	// Unknown validation types fall through to custom client validators.
	assert.Equal(t, model.ValidationCustom, definition.Validations[2].Kind)
	assert.Equal(t, "strength", definition.Validations[2].Type)
	assert.Equal(t, "3", definition.Validations[2].Options["minScore"])

	require.Len(t, definition.Associations, 1)
	assert.Equal(t, model.AssociationHasMany, definition.Associations[0].Kind)
	assert.Equal(t, "MyApp.model.Order", definition.Associations[0].Model)
}

func TestDecodeYAML(t *testing.T) {
	doc := `
name: MyApp.model.Item
readMethod: itemService.read
fields:
  - name: id
    type: int
  - label
  - name: price
    type: float
    defaultValue: 9.5
validations:
  - type: presence
    field: label
associations:
  - type: belongsTo
    model: MyApp.model.Category
    foreignKey: categoryId
`
	definition, err := DecodeYAML([]byte(doc))
	require.NoError(t, err)

	fields := definition.Fields()
	require.Len(t, fields, 3)
	assert.Equal(t, "label", fields[1].Name)
	assert.Empty(t, fields[1].Type)
	assert.Equal(t, 9.5, fields[2].DefaultValue)

	require.Len(t, definition.Associations, 1)
	assert.Equal(t, model.AssociationBelongsTo, definition.Associations[0].Kind)
}

func TestDecodeErrors(t *testing.T) {
	_, err := DecodeJSON([]byte(`{`))
	assert.Error(t, err)

	_, err = DecodeJSON([]byte(`{"fields": [{"type": "int"}]}`))
	assert.Error(t, err, "field without a name must be rejected")

	_, err = DecodeJSON([]byte(`{"fields": [{"name": "x", "type": "varchar"}]}`))
	assert.Error(t, err, "unknown field type must be rejected")

	_, err = DecodeJSON([]byte(`{"associations": [{"type": "linkedTo", "model": "X"}]}`))
	assert.Error(t, err, "unknown association type must be rejected")

	_, err = DecodeJSON([]byte(`{"validations": [{"field": "x"}]}`))
	assert.Error(t, err, "validation without a type must be rejected")
}

func TestLoadPicksDecoderByExtension(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "model.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(jsonDoc), 0o644))
	fromJSON, err := Load(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, "MyApp.model.User", fromJSON.Name)

	yamlPath := filepath.Join(dir, "model.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("name: FromYAML\nfields:\n  - id\n"), 0o644))
	fromYAML, err := Load(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "FromYAML", fromYAML.Name)

	_, err = Load("")
	assert.Error(t, err)

	_, err = Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
