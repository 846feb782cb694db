package generator

import (
	"fmt"

	"github.com/leonidagapkin/extclassgenerator/internal/jsvalue"
	"github.com/leonidagapkin/extclassgenerator/pkg/model"
)

// serializeAssociations maps relationship rules onto output nodes in input
// order. All three dialect generations share the association syntax, so no
// profile is consulted here.
func serializeAssociations(rules []model.AssociationRule) (jsvalue.Array, error) {
	out := make(jsvalue.Array, 0, len(rules))
	for _, rule := range rules {
		node, err := associationNode(rule)
		if err != nil {
			return nil, err
		}
		out = append(out, node)
	}
	return out, nil
}

func associationNode(rule model.AssociationRule) (jsvalue.Value, error) {
	switch rule.Kind {
	case model.AssociationHasMany, model.AssociationBelongsTo, model.AssociationHasOne:
	default:
		return nil, fmt.Errorf("generator: unknown association kind %q", rule.Kind)
	}
	if rule.Model == "" {
		return nil, fmt.Errorf("generator: %s association has no related model", rule.Kind)
	}
	if rule.Kind != model.AssociationHasMany && rule.AutoLoad != nil {
		return nil, fmt.Errorf("generator: autoLoad is only valid on hasMany, not on %s %q",
			rule.Kind, rule.Model)
	}
	if rule.Kind == model.AssociationHasMany && (rule.GetterName != "" || rule.SetterName != "") {
		return nil, fmt.Errorf("generator: getterName/setterName are not valid on hasMany %q", rule.Model)
	}

	node := jsvalue.NewObject()
	node.Put("type", jsvalue.String(string(rule.Kind)))
	node.Put("model", jsvalue.String(rule.Model))
	node.PutString("associationKey", rule.AssociationKey)
	node.PutString("foreignKey", rule.ForeignKey)
	node.PutString("primaryKey", rule.PrimaryKey)
	node.PutString("name", rule.DerivedName())
	if rule.AutoLoad != nil && *rule.AutoLoad {
		node.Put("autoLoad", jsvalue.Bool(true))
	}
	node.PutString("getterName", rule.GetterName)
	node.PutString("setterName", rule.SetterName)
	return node, nil
}
