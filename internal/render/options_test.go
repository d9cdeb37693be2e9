package render

import (
	"strings"
	"testing"
)

func TestNormalizeLanguage(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"js":     "javascript",
		"PY":     "python",
		" sh ":   "bash",
		"golang": "go",
		"go":     "go",
		"rust":   "rust",
		"":       "",
	}
	for in, want := range tests {
		if got := NormalizeLanguage(in); got != want {
			t.Errorf("NormalizeLanguage(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseInfo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		info, lang, filename string
	}{
		{info: "go", lang: "go"},
		{info: "js:app.js", lang: "javascript", filename: "app.js"},
		{info: "py:scripts/run.py {linenos=true}", lang: "python", filename: "scripts/run.py"},
		{info: "", lang: ""},
		{info: ":only-file.txt", lang: "", filename: "only-file.txt"},
	}
	for _, tt := range tests {
		lang, filename := parseInfo(tt.info)
		if lang != tt.lang || filename != tt.filename {
			t.Errorf("parseInfo(%q) = %q, %q, want %q, %q", tt.info, lang, filename, tt.lang, tt.filename)
		}
	}
}

func TestOptions_Highlights(t *testing.T) {
	t.Parallel()

	all := Options{Highlight: HighlightAll}
	if !all.highlights("go") || all.highlights("") {
		t.Error("HighlightAll mismatch")
	}
	selected := Options{Highlight: HighlightSelected, Languages: []string{"JS", "go"}}
	if !selected.highlights("javascript") || !selected.highlights("go") || selected.highlights("python") {
		t.Error("HighlightSelected mismatch")
	}
	if (Options{}).highlights("go") {
		t.Error("HighlightOff highlighted")
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	if New(VariantBasic, DefaultOptions()).Variant() != VariantBasic {
		t.Error("New(basic) returned wrong variant")
	}
	if New(VariantEnhanced, DefaultOptions()).Variant() != VariantEnhanced {
		t.Error("New(enhanced) returned wrong variant")
	}
}

func TestHighlightCSS(t *testing.T) {
	t.Parallel()

	css, err := HighlightCSS("")
	if err != nil {
		t.Fatalf("HighlightCSS() error: %v", err)
	}
	if !strings.Contains(css, ".chroma") {
		t.Errorf("HighlightCSS() not scoped under .chroma:\n%s", css)
	}
}
