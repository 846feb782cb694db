package generator

import (
	"fmt"
	"sort"

	"github.com/leonidagapkin/extclassgenerator/internal/jsvalue"
	"github.com/leonidagapkin/extclassgenerator/pkg/dialect"
	"github.com/leonidagapkin/extclassgenerator/pkg/model"
)

// serializeValidations maps the rule list onto output nodes in input order.
// Order is part of the contract: the client executes validators in list
// order. A variant the dialect cannot express is a hard error, because
// silently losing a validation is a correctness regression for the consumer.
func serializeValidations(rules []model.ValidationRule, profile dialect.Profile) (jsvalue.Array, error) {
	out := make(jsvalue.Array, 0, len(rules))
	for _, rule := range rules {
		node, err := validationNode(rule, profile)
		if err != nil {
			return nil, err
		}
		out = append(out, node)
	}
	return out, nil
}

func validationNode(rule model.ValidationRule, profile dialect.Profile) (jsvalue.Value, error) {
	if rule.Kind == "" {
		return nil, fmt.Errorf("generator: validation on field %q has no kind", rule.Field)
	}
	if !profile.SupportsValidation(rule.Kind) {
		return nil, fmt.Errorf("generator: validation %q on field %q is not supported by output format %q",
			rule.Kind, rule.Field, profile.Name)
	}

	node := jsvalue.NewObject()
	switch rule.Kind {
	case model.ValidationPresence, model.ValidationEmail:
		node.Put("type", jsvalue.String(string(rule.Kind)))
		node.Put("field", jsvalue.String(rule.Field))
	case model.ValidationLength, model.ValidationRange:
		node.Put("type", jsvalue.String(string(rule.Kind)))
		node.Put("field", jsvalue.String(rule.Field))
		if rule.Min != nil {
			node.Put("min", jsvalue.Number(*rule.Min))
		}
		if rule.Max != nil {
			node.Put("max", jsvalue.Number(*rule.Max))
		}
	case model.ValidationFormat:
		if rule.Pattern == "" {
			return nil, fmt.Errorf("generator: format validation on field %q has no pattern", rule.Field)
		}
		node.Put("type", jsvalue.String(string(rule.Kind)))
		node.Put("field", jsvalue.String(rule.Field))
		// The pattern is a client-side regular expression emitted verbatim;
		// its syntax is not validated here.
		node.Put("matcher", jsvalue.Raw("/"+rule.Pattern+"/"))
	case model.ValidationInclusion, model.ValidationExclusion:
		node.Put("type", jsvalue.String(string(rule.Kind)))
		node.Put("field", jsvalue.String(rule.Field))
		list := make(jsvalue.Array, 0, len(rule.List))
		for _, item := range rule.List {
			list = append(list, jsvalue.String(item))
		}
		node.Put("list", list)
	case model.ValidationCustom:
		if rule.Type == "" {
			return nil, fmt.Errorf("generator: custom validation on field %q has no validator type", rule.Field)
		}
		node.Put("type", jsvalue.String(rule.Type))
		node.Put("field", jsvalue.String(rule.Field))
		for _, key := range sortedOptionKeys(rule.Options) {
			node.Put(key, jsvalue.Raw(rule.Options[key]))
		}
	default:
		return nil, fmt.Errorf("generator: unknown validation kind %q on field %q", rule.Kind, rule.Field)
	}
	return node, nil
}

// sortedOptionKeys keeps custom validator options deterministic; the rule
// stores them in a map, so emission sorts by key.
func sortedOptionKeys(options map[string]string) []string {
	if len(options) == 0 {
		return nil
	}
	keys := make([]string, 0, len(options))
	for key := range options {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
