package generator

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/leonidagapkin/extclassgenerator/pkg/dialect"
)

func TestDefaultRegistryListsAllDialects(t *testing.T) {
	registry := DefaultRegistry()

	want := []string{"extjs4", "extjs5", "touch2"}
	if diff := cmp.Diff(want, registry.List()); diff != "" {
		t.Fatalf("registry list mismatch (-want +got):\n%s", diff)
	}

	for _, name := range want {
		if !registry.Has(name) {
			t.Fatalf("registry missing %s", name)
		}
		gen, err := registry.Get(name)
		if err != nil {
			t.Fatalf("get %s: %v", name, err)
		}
		if gen.Name() != name {
			t.Fatalf("generator name mismatch: %s != %s", gen.Name(), name)
		}
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(New(dialect.ExtJS4)); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := registry.Register(New(dialect.ExtJS4)); err == nil {
		t.Fatal("expected duplicate registration error")
	}
	if err := registry.Register(nil); err == nil {
		t.Fatal("expected nil registration error")
	}
}

func TestRegistryGetUnknown(t *testing.T) {
	registry := NewRegistry()
	if _, err := registry.Get("extjs4"); err == nil {
		t.Fatal("expected lookup error")
	}
	if registry.Has("extjs4") {
		t.Fatal("empty registry must not report entries")
	}
}
