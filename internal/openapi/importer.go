// Package openapi derives model definitions from OpenAPI component schemas.
// Property constraints map onto validation rules and the x-relationships
// extension onto associations, so existing API documents can feed the
// generator without a hand-written definition file.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/leonidagapkin/extclassgenerator/pkg/model"
)

const (
	idPropertyExtensionKey   = "x-id-property"
	relationshipExtensionKey = "x-relationships"
)

// ImportOptions selects the schema to import and optional overrides.
type ImportOptions struct {
	// SchemaName names the entry under components.schemas.
	SchemaName string

	// ModelName overrides the generated class name. Defaults to SchemaName.
	ModelName string
}

// ImportSchema loads an OpenAPI document from raw bytes and converts the
// selected component schema into a model definition. OpenAPI property maps
// are unordered, so fields are emitted in sorted name order to keep renders
// deterministic.
func ImportSchema(ctx context.Context, data []byte, opts ImportOptions) (*model.ModelDefinition, error) {
	if ctx == nil {
		return nil, errors.New("openapi: context is required")
	}
	if len(data) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}
	if opts.SchemaName == "" {
		return nil, errors.New("openapi: schema name is required")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if doc.Components == nil || len(doc.Components.Schemas) == 0 {
		return nil, errors.New("openapi: document has no component schemas")
	}
	ref, ok := doc.Components.Schemas[opts.SchemaName]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("openapi: schema %q not found", opts.SchemaName)
	}

	name := opts.ModelName
	if name == "" {
		name = opts.SchemaName
	}
	return convertSchema(name, ref.Value)
}

func convertSchema(name string, schema *openapi3.Schema) (*model.ModelDefinition, error) {
	definition := &model.ModelDefinition{Name: name}

	if raw, ok := schema.Extensions[idPropertyExtensionKey]; ok {
		if id, ok := raw.(string); ok && id != "" {
			definition.IDProperty = id
		}
	}

	required := make(map[string]struct{}, len(schema.Required))
	for _, field := range schema.Required {
		required[field] = struct{}{}
	}

	for _, propertyName := range sortedPropertyNames(schema.Properties) {
		ref := schema.Properties[propertyName]
		if ref == nil || ref.Value == nil {
			continue
		}
		property := ref.Value

		if rel, ok := relationshipFromExtensions(property.Extensions); ok {
			rule, err := buildAssociation(propertyName, rel)
			if err != nil {
				return nil, err
			}
			definition.AddAssociation(rule)
			continue
		}

		field, err := buildField(propertyName, property)
		if err != nil {
			return nil, err
		}
		if err := definition.AddField(field); err != nil {
			return nil, fmt.Errorf("openapi: %w", err)
		}

		if _, ok := required[propertyName]; ok {
			definition.AddValidation(model.PresenceValidation(propertyName))
		}
		addConstraintValidations(definition, propertyName, property)
	}

	return definition, nil
}

func buildField(name string, property *openapi3.Schema) (model.FieldDefinition, error) {
	field := model.FieldDefinition{Name: name}

	switch firstType(property.Type) {
	case "integer":
		field.Type = model.FieldTypeInt
	case "number":
		field.Type = model.FieldTypeFloat
	case "boolean":
		field.Type = model.FieldTypeBoolean
	case "string":
		switch property.Format {
		case "date":
			field.Type = model.FieldTypeDate
			field.DateFormat = "Y-m-d"
		case "date-time":
			field.Type = model.FieldTypeDate
			field.DateFormat = "c"
		default:
			field.Type = model.FieldTypeString
		}
	default:
		field.Type = model.FieldTypeAuto
	}

	if property.Default != nil {
		if field.Type == model.FieldTypeDate {
			return model.FieldDefinition{}, fmt.Errorf(
				"openapi: property %q: date schemas cannot declare a default", name)
		}
		field.DefaultValue = property.Default
	}
	if property.Nullable {
		nullable := true
		field.AllowNull = &nullable
	}

	return field, nil
}

func addConstraintValidations(definition *model.ModelDefinition, name string, property *openapi3.Schema) {
	if property.MinLength != 0 || property.MaxLength != nil {
		var min, max *float64
		if property.MinLength != 0 {
			value := float64(property.MinLength)
			min = &value
		}
		if property.MaxLength != nil {
			value := float64(*property.MaxLength)
			max = &value
		}
		definition.AddValidation(model.LengthValidation(name, min, max))
	}
	if property.Min != nil || property.Max != nil {
		var min, max *float64
		if property.Min != nil {
			value := *property.Min
			min = &value
		}
		if property.Max != nil {
			value := *property.Max
			max = &value
		}
		definition.AddValidation(model.RangeValidation(name, min, max))
	}
	if property.Pattern != "" {
		definition.AddValidation(model.FormatValidation(name, property.Pattern))
	}
	if property.Format == "email" {
		definition.AddValidation(model.EmailValidation(name))
	}
	if list := stringEnum(property.Enum); len(list) > 0 {
		definition.AddValidation(model.InclusionValidation(name, list...))
	}
}

func relationshipFromExtensions(extensions map[string]any) (map[string]string, bool) {
	raw, ok := extensions[relationshipExtensionKey]
	if !ok {
		return nil, false
	}
	values, ok := raw.(map[string]any)
	if !ok || len(values) == 0 {
		return nil, false
	}
	rel := make(map[string]string, len(values))
	for key, value := range values {
		if text, ok := value.(string); ok && text != "" {
			rel[strings.ToLower(key)] = text
		}
	}
	return rel, len(rel) > 0
}

func buildAssociation(propertyName string, rel map[string]string) (model.AssociationRule, error) {
	var kind model.AssociationKind
	switch strings.ToLower(rel["type"]) {
	case "hasmany":
		kind = model.AssociationHasMany
	case "belongsto":
		kind = model.AssociationBelongsTo
	case "hasone":
		kind = model.AssociationHasOne
	default:
		return model.AssociationRule{}, fmt.Errorf(
			"openapi: property %q: unknown relationship type %q", propertyName, rel["type"])
	}
	target := rel["target"]
	if target == "" {
		return model.AssociationRule{}, fmt.Errorf(
			"openapi: property %q: relationship has no target", propertyName)
	}
	return model.AssociationRule{
		Kind:       kind,
		Model:      target,
		ForeignKey: rel["foreignkey"],
		Name:       rel["name"],
	}, nil
}

func sortedPropertyNames(properties openapi3.Schemas) []string {
	names := make([]string, 0, len(properties))
	for name := range properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func firstType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func stringEnum(enum []any) []string {
	if len(enum) == 0 {
		return nil
	}
	out := make([]string, 0, len(enum))
	for _, value := range enum {
		text, ok := value.(string)
		if !ok {
			return nil
		}
		out = append(out, text)
	}
	return out
}
