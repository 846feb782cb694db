package generator

import (
	"fmt"
	"strconv"

	"github.com/leonidagapkin/extclassgenerator/internal/jsvalue"
	"github.com/leonidagapkin/extclassgenerator/pkg/dialect"
	"github.com/leonidagapkin/extclassgenerator/pkg/model"
)

// fieldNode maps one field definition onto its output entry. A field whose
// only emitted option would be its name collapses to a bare name string;
// anything else becomes a structured entry carrying the non-default keys
// only.
func fieldNode(field model.FieldDefinition, profile dialect.Profile) (jsvalue.Value, error) {
	if err := checkField(field); err != nil {
		return nil, err
	}

	entry := jsvalue.NewObject()
	entry.Put("name", jsvalue.String(field.Name))

	if token := typeToken(field.Type); token != "" {
		entry.Put("type", jsvalue.String(token))
	}
	if field.DefaultValue != nil {
		value, err := defaultValueNode(field)
		if err != nil {
			return nil, err
		}
		entry.Put("defaultValue", value)
	}
	if field.AllowNull != nil && *field.AllowNull {
		entry.Put(profile.AllowNullKey, jsvalue.Bool(true))
	}
	entry.PutString("dateFormat", field.DateFormat)
	entry.PutString("mapping", field.Mapping)
	if field.Persist != nil && !*field.Persist {
		entry.Put("persist", jsvalue.Bool(false))
		if field.Convert != "" {
			entry.Put("convert", jsvalue.Raw(field.Convert))
		}
	}

	if entry.Len() == 1 {
		return jsvalue.String(field.Name), nil
	}
	return entry, nil
}

// typeToken returns the declared type token, empty when the dialect should
// infer the type from absence.
func typeToken(fieldType model.FieldType) string {
	if fieldType == "" || fieldType == model.FieldTypeAuto {
		return ""
	}
	return string(fieldType)
}

func checkField(field model.FieldDefinition) error {
	if field.DefaultValue != nil {
		if field.Type == model.FieldTypeDate {
			return configError(field.Name, "date fields cannot declare a default value")
		}
		if field.AllowNull != nil && *field.AllowNull {
			return configError(field.Name, "allowNull and defaultValue are mutually exclusive")
		}
	}
	if field.Convert != "" && (field.Persist == nil || *field.Persist) {
		return configError(field.Name, "convert expression requires persist=false")
	}
	return nil
}

// defaultValueNode renders the default with the literal syntax demanded by
// the declared type: numbers and booleans unquoted, strings quoted.
func defaultValueNode(field model.FieldDefinition) (jsvalue.Value, error) {
	switch field.Type {
	case model.FieldTypeInt:
		number, ok := toNumber(field.DefaultValue)
		if !ok {
			return nil, configError(field.Name, "default value %v is not numeric", field.DefaultValue)
		}
		return jsvalue.Raw(strconv.FormatInt(int64(number), 10)), nil
	case model.FieldTypeFloat:
		number, ok := toNumber(field.DefaultValue)
		if !ok {
			return nil, configError(field.Name, "default value %v is not numeric", field.DefaultValue)
		}
		return jsvalue.Number(number), nil
	case model.FieldTypeBoolean:
		flag, ok := field.DefaultValue.(bool)
		if !ok {
			return nil, configError(field.Name, "default value %v is not a boolean", field.DefaultValue)
		}
		return jsvalue.Bool(flag), nil
	case model.FieldTypeString:
		text, ok := field.DefaultValue.(string)
		if !ok {
			return nil, configError(field.Name, "default value %v is not a string", field.DefaultValue)
		}
		return jsvalue.String(text), nil
	case "", model.FieldTypeAuto:
		return inferredDefaultNode(field)
	default:
		return nil, configError(field.Name, "type %q cannot carry a default value", field.Type)
	}
}

func inferredDefaultNode(field model.FieldDefinition) (jsvalue.Value, error) {
	switch value := field.DefaultValue.(type) {
	case bool:
		return jsvalue.Bool(value), nil
	case string:
		return jsvalue.String(value), nil
	default:
		if number, ok := toNumber(field.DefaultValue); ok {
			return jsvalue.Number(number), nil
		}
		return nil, fmt.Errorf("generator: field %q: unsupported default value type %T",
			field.Name, field.DefaultValue)
	}
}

func toNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}
