package typography

import (
	"strings"
	"testing"
)

func TestStyle_CSSPropertyOrder(t *testing.T) {
	t.Parallel()

	s := Style{
		Properties: map[string]string{"opacity": "0.9", "cursor": "text"},
		Border:     &Border{Radius: "2px", Width: "1px", Style: "solid", Color: "#ccc"},
		Margin:     &Spacing{Bottom: "1rem", Top: "0"},
		Padding:    &Spacing{Left: "4px"},
		Background: &Background{Image: "img/bg.png", Color: "#fafafa"},
		Font: &Font{
			Transform:     "uppercase",
			Decoration:    "underline",
			LetterSpacing: "0.1em",
			LineHeight:    "1.5",
			Color:         "#111",
			Align:         AlignCenter,
			Weight:        WeightSemibold,
			Size:          SizeLarge,
			Family:        "serif",
		},
	}

	want := `h2 {
  font-family: serif;
  font-size: 1.25rem;
  font-weight: 600;
  text-align: center;
  color: #111;
  line-height: 1.5;
  letter-spacing: 0.1em;
  text-decoration: underline;
  text-transform: uppercase;
  background-color: #fafafa;
  background-image: url("img/bg.png");
  padding-left: 4px;
  margin-top: 0;
  margin-bottom: 1rem;
  border-width: 1px;
  border-style: solid;
  border-color: #ccc;
  border-radius: 2px;
  cursor: text;
  opacity: 0.9;
}
`
	if got := s.CSS("h2"); got != want {
		t.Errorf("CSS() =\n%s\nwant\n%s", got, want)
	}
}

func TestStyle_CSSEmpty(t *testing.T) {
	t.Parallel()

	if got := (Style{Classes: []string{"x"}}).CSS("p"); got != "" {
		t.Errorf("CSS() = %q, want empty for style without declarations", got)
	}
	if got := (Style{Font: &Font{}}).CSS("p"); got != "" {
		t.Errorf("CSS() = %q, want empty for empty group", got)
	}
}

func TestConfiguration_CSSBlockOrder(t *testing.T) {
	t.Parallel()

	c := Configuration{
		FontFamily: "sans-serif",
		FontSize:   SizeMedium,
		Headings: map[int]Style{
			3: {Font: &Font{Size: SizeLarge}},
			1: {Font: &Font{Size: SizeHuge}},
		},
		Elements: map[Element]Style{
			ElementRule:      {Border: &Border{Style: "dashed"}},
			ElementParagraph: {Font: &Font{LineHeight: "1.6"}},
		},
		Selectors: map[string]Style{
			".z": {Properties: map[string]string{"color": "red"}},
			".a": {Properties: map[string]string{"color": "blue"}},
		},
	}

	want := `body {
  font-family: sans-serif;
  font-size: 1rem;
}
h1 {
  font-size: 2.5rem;
}
h3 {
  font-size: 1.25rem;
}
p {
  line-height: 1.6;
}
hr {
  border-style: dashed;
}
.a {
  color: blue;
}
.z {
  color: red;
}
`
	got := c.CSS()
	if got != want {
		t.Errorf("CSS() =\n%s\nwant\n%s", got, want)
	}
	if c.CSS() != got {
		t.Error("CSS() is not deterministic")
	}
}

func TestConfiguration_CSSResponsive(t *testing.T) {
	t.Parallel()

	c := Configuration{
		Responsive: true,
		Headings: map[int]Style{
			1: {Font: &Font{Size: SizeHuge}},
			2: {Font: &Font{Weight: WeightBold}},
		},
	}

	got := c.CSS()
	if !strings.Contains(got, "@media (max-width: 640px) {") {
		t.Fatalf("missing media query:\n%s", got)
	}
	if !strings.Contains(got, "font-size: calc(2.5rem * 0.85);") {
		t.Errorf("missing scaled h1:\n%s", got)
	}
	if strings.Contains(got, "h2 {\n    font-size") {
		t.Errorf("h2 without size should not be scaled:\n%s", got)
	}
}

func TestConfiguration_CSSEmpty(t *testing.T) {
	t.Parallel()

	if got := (Configuration{}).CSS(); got != "" {
		t.Errorf("CSS() = %q, want empty", got)
	}
}

func TestEscapeCSSString(t *testing.T) {
	t.Parallel()

	got := escapeCSSString("a\"b\\c\nd\r")
	want := `a\"b\\c\A d`
	if got != want {
		t.Errorf("escapeCSSString() = %q, want %q", got, want)
	}
}
