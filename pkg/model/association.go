package model

import "strings"

// AssociationKind tags the variant of a relationship rule.
type AssociationKind string

const (
	AssociationHasMany   AssociationKind = "hasMany"
	AssociationBelongsTo AssociationKind = "belongsTo"
	AssociationHasOne    AssociationKind = "hasOne"
)

// AssociationRule describes a relationship to another model. Model is the
// related entity name (possibly namespaced, e.g. "MyApp.model.Order"); all
// other parameters are optional and omitted from output when empty.
type AssociationRule struct {
	Kind       AssociationKind
	Model      string
	ForeignKey string

	// Name overrides the association accessor name. When empty a name is
	// derived from the related model name, see DerivedName.
	Name string

	PrimaryKey     string
	AssociationKey string

	// hasMany only.
	AutoLoad *bool

	// belongsTo / hasOne only.
	GetterName string
	SetterName string
}

func HasManyAssociation(relatedModel, foreignKey string) AssociationRule {
	return AssociationRule{Kind: AssociationHasMany, Model: relatedModel, ForeignKey: foreignKey}
}

func BelongsToAssociation(relatedModel, foreignKey string) AssociationRule {
	return AssociationRule{Kind: AssociationBelongsTo, Model: relatedModel, ForeignKey: foreignKey}
}

func HasOneAssociation(relatedModel, foreignKey string) AssociationRule {
	return AssociationRule{Kind: AssociationHasOne, Model: relatedModel, ForeignKey: foreignKey}
}

// DerivedName returns the association name that is emitted when no override
// is set: the lower-cased simple name of the related model, pluralized with a
// trailing "s" for hasMany. The derivation is deterministic so repeated
// renders agree.
func (a AssociationRule) DerivedName() string {
	if a.Name != "" {
		return a.Name
	}
	name := a.Model
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		name = name[idx+1:]
	}
	if name == "" {
		return ""
	}
	name = strings.ToLower(name[:1]) + name[1:]
	if a.Kind == AssociationHasMany && !strings.HasSuffix(name, "s") {
		name += "s"
	}
	return name
}
