// Package testsupport holds shared fixtures and golden-file helpers used by
// the generator test suites.
package testsupport

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/leonidagapkin/extclassgenerator/pkg/model"
)

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// MustBuildDefinition assembles a model from fields, failing the test on
// invalid input so call sites stay concise.
func MustBuildDefinition(t *testing.T, name string, fields ...model.FieldDefinition) *model.ModelDefinition {
	t.Helper()
	definition := &model.ModelDefinition{Name: name}
	if err := definition.AddFields(fields...); err != nil {
		t.Fatalf("add fields: %v", err)
	}
	return definition
}

// SampleDefinition returns a definition exercising every emission path:
// typed and bare fields, defaults, null allowance, computed fields,
// validations, associations, full CRUD bindings, paging, and a writer.
func SampleDefinition() *model.ModelDefinition {
	definition := &model.ModelDefinition{
		Name:            "MyApp.model.User",
		IDProperty:      "userId",
		Paging:          true,
		ReadMethod:      "userService.read",
		CreateMethod:    "userService.create",
		UpdateMethod:    "userService.update",
		DestroyMethod:   "userService.destroy",
		SuccessProperty: "success",
		TotalProperty:   "total",
		Writer:          "jsonwriter",
	}

	allowNull := true
	noPersist := false
	minLen := 2.0
	maxLen := 100.0

	// Errors are impossible here: names are unique and types are members of
	// the closed set.
	_ = definition.AddFields(
		model.FieldDefinition{Name: "userId", Type: model.FieldTypeInt},
		model.FieldDefinition{Name: "name", Type: model.FieldTypeString},
		model.FieldDefinition{Name: "email", Type: model.FieldTypeString, AllowNull: &allowNull},
		model.FieldDefinition{Name: "active", Type: model.FieldTypeBoolean, DefaultValue: true},
		model.FieldDefinition{Name: "balance", Type: model.FieldTypeFloat, DefaultValue: 0.5},
		model.FieldDefinition{Name: "createDate", Type: model.FieldTypeDate, DateFormat: "c"},
		model.FieldDefinition{
			Name:    "fullName",
			Persist: &noPersist,
			Convert: "function(v, record) { return record.raw.name; }",
		},
		model.FieldDefinition{Name: "notes"},
	)

	definition.AddValidation(model.PresenceValidation("name"))
	definition.AddValidation(model.LengthValidation("name", &minLen, &maxLen))
	definition.AddValidation(model.EmailValidation("email"))
	definition.AddValidation(model.InclusionValidation("state", "active", "inactive"))

	definition.AddAssociation(model.HasManyAssociation("MyApp.model.Order", "userId"))
	definition.AddAssociation(model.BelongsToAssociation("MyApp.model.Company", "companyId"))

	return definition
}
