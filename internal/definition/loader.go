// Package definition loads model definitions from JSON or YAML documents.
// It is the metadata-extraction collaborator used by the CLI; the generator
// itself only ever sees the populated model graph.
package definition

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/leonidagapkin/extclassgenerator/pkg/model"
)

// Load reads a definition document from disk, picking the decoder from the
// file extension (.yaml/.yml for YAML, JSON otherwise).
func Load(path string) (*model.ModelDefinition, error) {
	if path == "" {
		return nil, errors.New("definition: path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("definition: read %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return DecodeYAML(data)
	default:
		return DecodeJSON(data)
	}
}

// DecodeJSON parses a JSON definition document.
func DecodeJSON(data []byte) (*model.ModelDefinition, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("definition: decode json: %w", err)
	}
	return doc.build()
}

// DecodeYAML parses a YAML definition document.
func DecodeYAML(data []byte) (*model.ModelDefinition, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("definition: decode yaml: %w", err)
	}
	return doc.build()
}

type document struct {
	Name                    string           `json:"name" yaml:"name"`
	IDProperty              string           `json:"idProperty" yaml:"idProperty"`
	Fields                  []fieldDoc       `json:"fields" yaml:"fields"`
	Validations             []validationDoc  `json:"validations" yaml:"validations"`
	Associations            []associationDoc `json:"associations" yaml:"associations"`
	Paging                  bool             `json:"paging" yaml:"paging"`
	DisablePagingParameters bool             `json:"disablePagingParameters" yaml:"disablePagingParameters"`
	ReadMethod              string           `json:"readMethod" yaml:"readMethod"`
	CreateMethod            string           `json:"createMethod" yaml:"createMethod"`
	UpdateMethod            string           `json:"updateMethod" yaml:"updateMethod"`
	DestroyMethod           string           `json:"destroyMethod" yaml:"destroyMethod"`
	MessageProperty         string           `json:"messageProperty" yaml:"messageProperty"`
	SuccessProperty         string           `json:"successProperty" yaml:"successProperty"`
	TotalProperty           string           `json:"totalProperty" yaml:"totalProperty"`
	RootProperty            string           `json:"rootProperty" yaml:"rootProperty"`
	Writer                  string           `json:"writer" yaml:"writer"`
}

// fieldDoc accepts either a bare name string or a structured field entry,
// mirroring the collapsed form the generator emits.
type fieldDoc struct {
	Name         string `json:"name" yaml:"name"`
	Type         string `json:"type" yaml:"type"`
	DefaultValue any    `json:"defaultValue" yaml:"defaultValue"`
	AllowNull    *bool  `json:"allowNull" yaml:"allowNull"`
	DateFormat   string `json:"dateFormat" yaml:"dateFormat"`
	Persist      *bool  `json:"persist" yaml:"persist"`
	Mapping      string `json:"mapping" yaml:"mapping"`
	Convert      string `json:"convert" yaml:"convert"`
}

func (f *fieldDoc) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &f.Name)
	}
	type plain fieldDoc
	var doc plain
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	*f = fieldDoc(doc)
	return nil
}

func (f *fieldDoc) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return node.Decode(&f.Name)
	}
	type plain fieldDoc
	var doc plain
	if err := node.Decode(&doc); err != nil {
		return err
	}
	*f = fieldDoc(doc)
	return nil
}

type validationDoc struct {
	Type    string            `json:"type" yaml:"type"`
	Field   string            `json:"field" yaml:"field"`
	Min     *float64          `json:"min" yaml:"min"`
	Max     *float64          `json:"max" yaml:"max"`
	Pattern string            `json:"pattern" yaml:"pattern"`
	List    []string          `json:"list" yaml:"list"`
	Options map[string]string `json:"options" yaml:"options"`
}

type associationDoc struct {
	Type           string `json:"type" yaml:"type"`
	Model          string `json:"model" yaml:"model"`
	ForeignKey     string `json:"foreignKey" yaml:"foreignKey"`
	Name           string `json:"name" yaml:"name"`
	PrimaryKey     string `json:"primaryKey" yaml:"primaryKey"`
	AssociationKey string `json:"associationKey" yaml:"associationKey"`
	AutoLoad       *bool  `json:"autoLoad" yaml:"autoLoad"`
	GetterName     string `json:"getterName" yaml:"getterName"`
	SetterName     string `json:"setterName" yaml:"setterName"`
}

func (d document) build() (*model.ModelDefinition, error) {
	definition := &model.ModelDefinition{
		Name:                    d.Name,
		IDProperty:              d.IDProperty,
		Paging:                  d.Paging,
		DisablePagingParameters: d.DisablePagingParameters,
		ReadMethod:              d.ReadMethod,
		CreateMethod:            d.CreateMethod,
		UpdateMethod:            d.UpdateMethod,
		DestroyMethod:           d.DestroyMethod,
		MessageProperty:         d.MessageProperty,
		SuccessProperty:         d.SuccessProperty,
		TotalProperty:           d.TotalProperty,
		RootProperty:            d.RootProperty,
		Writer:                  d.Writer,
	}

	for _, field := range d.Fields {
		err := definition.AddField(model.FieldDefinition{
			Name:         field.Name,
			Type:         model.FieldType(field.Type),
			DefaultValue: field.DefaultValue,
			AllowNull:    field.AllowNull,
			DateFormat:   field.DateFormat,
			Persist:      field.Persist,
			Mapping:      field.Mapping,
			Convert:      field.Convert,
		})
		if err != nil {
			return nil, fmt.Errorf("definition: %w", err)
		}
	}

	for _, validation := range d.Validations {
		rule, err := validation.build()
		if err != nil {
			return nil, err
		}
		definition.AddValidation(rule)
	}

	for _, association := range d.Associations {
		rule, err := association.build()
		if err != nil {
			return nil, err
		}
		definition.AddAssociation(rule)
	}

	return definition, nil
}

func (v validationDoc) build() (model.ValidationRule, error) {
	if v.Type == "" {
		return model.ValidationRule{}, fmt.Errorf("definition: validation on field %q has no type", v.Field)
	}
	switch kind := model.ValidationKind(v.Type); kind {
	case model.ValidationPresence:
		return model.PresenceValidation(v.Field), nil
	case model.ValidationEmail:
		return model.EmailValidation(v.Field), nil
	case model.ValidationLength:
		return model.LengthValidation(v.Field, v.Min, v.Max), nil
	case model.ValidationRange:
		return model.RangeValidation(v.Field, v.Min, v.Max), nil
	case model.ValidationFormat:
		return model.FormatValidation(v.Field, v.Pattern), nil
	case model.ValidationInclusion:
		return model.InclusionValidation(v.Field, v.List...), nil
	case model.ValidationExclusion:
		return model.ExclusionValidation(v.Field, v.List...), nil
	default:
		// Unknown types reference a validator registered on the client.
		return model.CustomValidation(v.Field, v.Type, v.Options), nil
	}
}

func (a associationDoc) build() (model.AssociationRule, error) {
	kind := model.AssociationKind(a.Type)
	switch kind {
	case model.AssociationHasMany, model.AssociationBelongsTo, model.AssociationHasOne:
	default:
		return model.AssociationRule{}, fmt.Errorf("definition: unknown association type %q", a.Type)
	}
	return model.AssociationRule{
		Kind:           kind,
		Model:          a.Model,
		ForeignKey:     a.ForeignKey,
		Name:           a.Name,
		PrimaryKey:     a.PrimaryKey,
		AssociationKey: a.AssociationKey,
		AutoLoad:       a.AutoLoad,
		GetterName:     a.GetterName,
		SetterName:     a.SetterName,
	}, nil
}
