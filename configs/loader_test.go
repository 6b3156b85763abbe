package configs

import (
	"errors"
	"slices"
	"testing"
)

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{"test.cue"}, schema)

	var prompt string
	if err := loader.AssignFirst("prompt", &prompt); err != nil {
		t.Fatal(err)
	}
	if prompt != ">> " {
		t.Fatalf("got %q", prompt)
	}

	var b bool
	err := loader.AssignFirst("no_such_key", &b)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{"test.cue"}, schema)
	if !First[bool](loader, "while") {
		t.Fatal()
	}
	// missing path yields zero value
	if First[string](loader, "history") != "" {
		t.Fatal()
	}
}

func TestAll(t *testing.T) {
	loader := NewLoader([]string{"test.cue"}, schema)
	prompts := slices.Collect(All[string](loader, "prompt"))
	if len(prompts) != 1 || prompts[0] != ">> " {
		t.Fatalf("got %v", prompts)
	}
}

func TestSchemaRejectsUnknownField(t *testing.T) {
	loader := NewLoader([]string{"test.cue"}, `while?: bool`)
	var s string
	err := loader.AssignFirst("prompt", &s)
	if err == nil {
		t.Fatal("expecting schema violation")
	}
}

func TestEmptyLoader(t *testing.T) {
	loader := NewLoader(nil, schema)
	if First[bool](loader, "while") {
		t.Fatal()
	}
}
