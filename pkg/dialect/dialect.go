// Package dialect enumerates the supported output formats as pure
// configuration profiles. A profile is a key-name table plus feature flags;
// the generator consumes profiles instead of branching on framework
// generation, so adding a dialect never touches the translation code.
package dialect

import (
	"fmt"

	"github.com/leonidagapkin/extclassgenerator/pkg/model"
)

const (
	// ExtJS4Name targets the Ext JS 4 flat class body where the reader names
	// its records root "root".
	ExtJS4Name = "extjs4"
	// ExtJS5Name targets Ext JS 5, which renamed the reader root key to
	// "rootProperty" and the field null-allowance option to "allowNull".
	ExtJS5Name = "extjs5"
	// Touch2Name targets Sencha Touch 2, which nests the whole model body
	// under a config object.
	Touch2Name = "touch2"
)

// Profile is the immutable configuration for one output format.
type Profile struct {
	// Name identifies the profile in registries and CLI flags.
	Name string

	// ClassConfig nests the model body under config: {...}.
	ClassConfig bool

	// RootKey is the reader key naming the records root.
	RootKey string

	// AllowNullKey is the field option marking a nullable field.
	AllowNullKey string

	// SupportsWriter reports whether the proxy writer sub-key is valid for
	// this generation.
	SupportsWriter bool

	validations map[model.ValidationKind]struct{}
}

// SupportsValidation reports whether the profile can express the given
// validation variant.
func (p Profile) SupportsValidation(kind model.ValidationKind) bool {
	_, ok := p.validations[kind]
	return ok
}

func validationSet(kinds ...model.ValidationKind) map[model.ValidationKind]struct{} {
	set := make(map[model.ValidationKind]struct{}, len(kinds))
	for _, kind := range kinds {
		set[kind] = struct{}{}
	}
	return set
}

var (
	// ExtJS4 is the oldest supported generation.
	ExtJS4 = Profile{
		Name:           ExtJS4Name,
		RootKey:        "root",
		AllowNullKey:   "useNull",
		SupportsWriter: true,
		validations: validationSet(
			model.ValidationPresence, model.ValidationLength,
			model.ValidationRange, model.ValidationFormat,
			model.ValidationInclusion, model.ValidationExclusion,
			model.ValidationEmail, model.ValidationCustom,
		),
	}

	ExtJS5 = Profile{
		Name:           ExtJS5Name,
		RootKey:        "rootProperty",
		AllowNullKey:   "allowNull",
		SupportsWriter: true,
		validations: validationSet(
			model.ValidationPresence, model.ValidationLength,
			model.ValidationRange, model.ValidationFormat,
			model.ValidationInclusion, model.ValidationExclusion,
			model.ValidationEmail, model.ValidationCustom,
		),
	}

	// Touch2 uses the class-config body. Its stock validation set has no
	// range validator and its proxy has no writer shorthand, so both are
	// rejected rather than silently dropped.
	Touch2 = Profile{
		Name:         Touch2Name,
		ClassConfig:  true,
		RootKey:      "rootProperty",
		AllowNullKey: "allowNull",
		validations: validationSet(
			model.ValidationPresence, model.ValidationLength,
			model.ValidationFormat, model.ValidationInclusion,
			model.ValidationExclusion, model.ValidationEmail,
			model.ValidationCustom,
		),
	}
)

// Profiles returns all supported profiles in generation order.
func Profiles() []Profile {
	return []Profile{ExtJS4, ExtJS5, Touch2}
}

// Lookup resolves a profile by name.
func Lookup(name string) (Profile, error) {
	for _, profile := range Profiles() {
		if profile.Name == name {
			return profile, nil
		}
	}
	return Profile{}, fmt.Errorf("dialect: unknown output format %q", name)
}
