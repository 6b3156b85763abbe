package blocks

import (
	"slices"
	"strings"
	"testing"

	"go.starlark.net/starlark"
)

func TestSplitTwoPhase(t *testing.T) {
	preamble, tail, err := Split("", "x = 1\nx + 1")
	if err != nil {
		t.Fatal(err)
	}

	scope := NewScope()
	if err := preamble.Exec(nil, scope); err != nil {
		t.Fatal(err)
	}
	if intValue(t, scope.Globals["x"]) != 1 {
		t.Fatalf("got %v", scope.Globals["x"])
	}

	value, err := tail.Eval(nil, scope)
	if err != nil {
		t.Fatal(err)
	}
	if intValue(t, value) != 2 {
		t.Fatalf("got %v", value)
	}
}

func TestSplitNoTrailingExpr(t *testing.T) {
	preamble, tail, err := Split("", "x = 1")
	if err != nil {
		t.Fatal(err)
	}
	scope := NewScope()
	if err := preamble.Exec(nil, scope); err != nil {
		t.Fatal(err)
	}
	value, err := tail.Eval(nil, scope)
	if err != nil {
		t.Fatal(err)
	}
	if value != starlark.None {
		t.Fatalf("got %v", value)
	}
}

func TestSplitEmpty(t *testing.T) {
	preamble, tail, err := Split("", "")
	if err != nil {
		t.Fatal(err)
	}
	// empty preamble executes as a no-op
	if err := preamble.Exec(nil, NewScope()); err != nil {
		t.Fatal(err)
	}
	value, err := tail.Eval(nil, NewScope())
	if err != nil {
		t.Fatal(err)
	}
	if value != starlark.None {
		t.Fatalf("got %v", value)
	}
}

func TestSplitSyntaxError(t *testing.T) {
	_, _, err := Split("bad", "if :")
	if err == nil {
		t.Fatal("expecting syntax error")
	}
	if !strings.Contains(err.Error(), "bad") {
		t.Fatalf("got %v", err)
	}
}

func TestSplitUnitReuse(t *testing.T) {
	preamble, tail, err := Split("", "n = n + 1\nn * 10")
	if err != nil {
		t.Fatal(err)
	}

	for i := range 2 {
		scope := NewScope().Bind("n", i)
		if err := preamble.Exec(nil, scope); err != nil {
			t.Fatal(err)
		}
		value, err := tail.Eval(nil, scope)
		if err != nil {
			t.Fatal(err)
		}
		if got, want := intValue(t, value), int64(i+1)*10; got != want {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestSplitIdempotence(t *testing.T) {
	const src = "x = 2\nx * x"
	p1, t1, err := Split("", src)
	if err != nil {
		t.Fatal(err)
	}
	p2, t2, err := Split("", src)
	if err != nil {
		t.Fatal(err)
	}

	for _, pair := range []struct {
		preamble *Preamble
		tail     *Tail
	}{
		{p1, t1},
		{p2, t2},
	} {
		scope := NewScope()
		if err := pair.preamble.Exec(nil, scope); err != nil {
			t.Fatal(err)
		}
		value, err := pair.tail.Eval(nil, scope)
		if err != nil {
			t.Fatal(err)
		}
		if intValue(t, value) != 4 {
			t.Fatalf("got %v", value)
		}
	}
}

func TestSplitReaderSource(t *testing.T) {
	preamble, tail, err := Split("", strings.NewReader("1 + 1"))
	if err != nil {
		t.Fatal(err)
	}
	scope := NewScope()
	if err := preamble.Exec(nil, scope); err != nil {
		t.Fatal(err)
	}
	value, err := tail.Eval(nil, scope)
	if err != nil {
		t.Fatal(err)
	}
	if intValue(t, value) != 2 {
		t.Fatalf("got %v", value)
	}
}

func TestSplitUnsupportedSource(t *testing.T) {
	_, _, err := Split("", 42)
	if err == nil {
		t.Fatal("expecting error")
	}
	if !strings.Contains(err.Error(), "unsupported source type") {
		t.Fatalf("got %v", err)
	}
}

func TestBoundNames(t *testing.T) {
	file, err := DefaultFileOptions.Parse("test", strings.Join([]string{
		"a = 1",
		"b, (c, d) = 2, (3, 4)",
		"[e, f] = [5, 6]",
		"a += 1",
		"def g():",
		"    inner = 1",
		"for h in range(3):",
		"    i = h",
		"if a:",
		"    j = 1",
		"else:",
		"    k = 2",
		"while False:",
		"    m = 1",
		"x[0] = 1",
		"x.y = 1",
	}, "\n"), 0)
	if err != nil {
		t.Fatal(err)
	}

	got := boundNames(file.Stmts)
	want := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "m"}
	if !slices.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
