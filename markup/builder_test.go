package markup

import (
	"testing"
)

func renderAll(seq []Node) string {
	return Group(seq).Render()
}

func TestSequence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		parts [][]Node
		want  string
		len   int
	}{
		{name: "no parts", parts: nil, want: "", len: 0},
		{name: "empty parts", parts: [][]Node{{}, nil, {}}, want: "", len: 0},
		{
			name:  "argument order kept",
			parts: [][]Node{{Raw("a"), Raw("b")}, {Raw("c")}, nil, {Raw("d")}},
			want:  "abcd",
			len:   4,
		},
		{
			name:  "duplicates kept",
			parts: [][]Node{{Raw("x")}, {Raw("x")}},
			want:  "xx",
			len:   2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Sequence(tt.parts...)
			if got == nil {
				t.Fatal("Sequence() returned nil")
			}
			if len(got) != tt.len {
				t.Errorf("len = %d, want %d", len(got), tt.len)
			}
			if r := renderAll(got); r != tt.want {
				t.Errorf("rendered = %q, want %q", r, tt.want)
			}
		})
	}
}

func TestSequence_Associative(t *testing.T) {
	t.Parallel()

	a := []Node{Raw("a")}
	b := []Node{Raw("b"), Raw("c")}
	c := []Node{Raw("d")}

	left := Sequence(Sequence(a, b), c)
	right := Sequence(a, Sequence(b, c))
	if renderAll(left) != renderAll(right) || len(left) != len(right) {
		t.Errorf("Sequence is not associative: %q vs %q", renderAll(left), renderAll(right))
	}
}

func TestSingleAndOptional(t *testing.T) {
	t.Parallel()

	if got := Single(Raw("x")); len(got) != 1 || renderAll(got) != "x" {
		t.Errorf("Single() = %v", got)
	}
	if got := Single(nil); got == nil || len(got) != 0 {
		t.Errorf("Single(nil) = %v, want empty non-nil", got)
	}
	if got := Optional(nil); got == nil || len(got) != 0 {
		t.Errorf("Optional(nil) = %v, want empty non-nil", got)
	}
	if got := Optional([]Node{Raw("y")}); renderAll(got) != "y" {
		t.Errorf("Optional() = %q", renderAll(got))
	}
}

func TestEither(t *testing.T) {
	t.Parallel()

	then := func() []Node { return []Node{Raw("then")} }
	otherwise := func() []Node { return []Node{Raw("else")} }

	tests := []struct {
		name      string
		cond      bool
		then      func() []Node
		otherwise func() []Node
		want      string
	}{
		{name: "true takes first", cond: true, then: then, otherwise: otherwise, want: "then"},
		{name: "false takes second", cond: false, then: then, otherwise: otherwise, want: "else"},
		{name: "missing else is empty", cond: false, then: then, want: ""},
		{name: "missing then is empty", cond: true, otherwise: otherwise, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Either(tt.cond, tt.then, tt.otherwise)
			if got == nil {
				t.Fatal("Either() returned nil")
			}
			if r := renderAll(got); r != tt.want {
				t.Errorf("Either() = %q, want %q", r, tt.want)
			}
		})
	}
}

func TestWhen(t *testing.T) {
	t.Parallel()

	called := false
	got := When(false, func() []Node {
		called = true
		return []Node{Raw("x")}
	})
	if called {
		t.Error("When(false) evaluated the branch")
	}
	if len(got) != 0 {
		t.Errorf("When(false) = %v, want empty", got)
	}
}

func TestForEach(t *testing.T) {
	t.Parallel()

	items := []string{"a", "b", "c"}
	got := ForEach(items, func(i int, s string) []Node {
		if i == 1 {
			return nil
		}
		return []Node{El("li", Attributes{}, Text(s))}
	})
	want := "<li>a</li><li>c</li>"
	if r := renderAll(got); r != want {
		t.Errorf("ForEach() = %q, want %q", r, want)
	}

	if empty := ForEach([]int{}, func(int, int) []Node { return []Node{Raw("x")} }); len(empty) != 0 {
		t.Errorf("ForEach(empty) = %v", empty)
	}
}

func TestBuild(t *testing.T) {
	t.Parallel()

	items := []string{"one", "two"}
	page := Build(
		Single(El("h1", Attributes{}, Text("Title"))),
		When(len(items) > 0, func() []Node {
			return Single(El("ul", Attributes{}, ForEach(items, func(_ int, s string) []Node {
				return Single(El("li", Attributes{}, Text(s)))
			})...))
		}),
		Either(false, nil, func() []Node { return Single(Raw("<footer></footer>")) }),
	)

	want := "<h1>Title</h1><ul><li>one</li><li>two</li></ul><footer></footer>"
	if got := page.Render(); got != want {
		t.Errorf("Build().Render() = %q, want %q", got, want)
	}
}
