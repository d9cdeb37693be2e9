package typography

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestConfiguration_LookupsAreExact(t *testing.T) {
	t.Parallel()

	c := Configuration{
		Headings:  map[int]Style{2: {Classes: []string{"h2"}}},
		Elements:  map[Element]Style{ElementList: {Classes: []string{"list"}}},
		Selectors: map[string]Style{".note": {Classes: []string{"n"}}},
	}

	if _, ok := c.Heading(3); ok {
		t.Error("Heading(3) found, want no inheritance from h2")
	}
	if s, ok := c.Heading(2); !ok || s.Classes[0] != "h2" {
		t.Errorf("Heading(2) = %+v, %v", s, ok)
	}
	if _, ok := c.Element(ElementListItem); ok {
		t.Error("Element(listItem) found, want no inheritance from list")
	}
	if _, ok := c.Element(ElementList); !ok {
		t.Error("Element(list) not found")
	}
	if _, ok := c.Selector(".note"); !ok {
		t.Error("Selector(.note) not found")
	}
	if _, ok := c.Selector(".Note"); ok {
		t.Error("Selector lookup should be exact")
	}
}

func TestConfiguration_Merge(t *testing.T) {
	t.Parallel()

	base := Configuration{
		FontFamily: "serif",
		FontSize:   SizeBody,
		Headings: map[int]Style{
			1: {Font: &Font{Size: SizeMedium}},
			2: {Font: &Font{Size: SizeLarge}},
		},
		Elements: map[Element]Style{ElementLink: {Font: &Font{Color: "blue"}}},
	}
	override := Configuration{
		FontSize:   SizeSmall,
		Responsive: true,
		Headings: map[int]Style{
			1: {Font: &Font{Weight: WeightBold}},
			3: {Classes: []string{"third"}},
		},
		Selectors: map[string]Style{".x": {Properties: map[string]string{"color": "red"}}},
	}

	got := base.Merge(override)
	want := Configuration{
		FontFamily: "serif",
		FontSize:   SizeSmall,
		Responsive: true,
		Headings: map[int]Style{
			1: {Font: &Font{Size: SizeBody, Weight: WeightBold}},
			2: {Font: &Font{Size: SizeLarge}},
			3: {Classes: []string{"third"}},
		},
		Elements:  map[Element]Style{ElementLink: {Font: &Font{Color: "blue"}}},
		Selectors: map[string]Style{".x": {Properties: map[string]string{"color": "red"}}},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
	}
	if len(base.Headings) != 2 || base.FontSize != SizeBody {
		t.Errorf("Merge() modified the receiver: %+v", base)
	}
}

func TestConfiguration_MergeSharesNoState(t *testing.T) {
	t.Parallel()

	base := Configuration{
		Headings: map[int]Style{1: {Font: &Font{Color: "black"}, Classes: []string{"title"}}},
		Elements: map[Element]Style{ElementCode: {Padding: Uniform("1px"), Properties: map[string]string{"a": "1"}}},
	}
	override := Configuration{
		Selectors: map[string]Style{".x": {Border: &Border{Width: "1px"}, Classes: []string{"x"}}},
	}

	got := base.Merge(override)
	h1 := got.Headings[1]
	h1.Font.Color = "blue"
	h1.Classes[0] = "hacked"
	code := got.Elements[ElementCode]
	code.Padding.Top = "9px"
	code.Properties["a"] = "2"
	sel := got.Selectors[".x"]
	sel.Border.Width = "9px"
	sel.Classes[0] = "hacked"

	if base.Headings[1].Font.Color != "black" || base.Headings[1].Classes[0] != "title" {
		t.Errorf("heading shared with receiver: %+v", base.Headings[1])
	}
	if base.Elements[ElementCode].Padding.Top != "1px" || base.Elements[ElementCode].Properties["a"] != "1" {
		t.Errorf("element shared with receiver: %+v", base.Elements[ElementCode])
	}
	if override.Selectors[".x"].Border.Width != "1px" || override.Selectors[".x"].Classes[0] != "x" {
		t.Errorf("selector shared with argument: %+v", override.Selectors[".x"])
	}

	clone := Configuration{}.Merge(base)
	if diff := cmp.Diff(base, clone); diff != "" {
		t.Errorf("Merge into empty changed the configuration (-want +got):\n%s", diff)
	}
}

func TestConfiguration_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Configuration
		wantErr error
	}{
		{name: "empty is valid", cfg: Configuration{}},
		{
			name: "valid configuration",
			cfg: Configuration{
				FontSize: "18px",
				Headings: map[int]Style{1: {Font: &Font{Size: SizeHuge, Weight: WeightBold, Align: AlignCenter}}},
				Elements: map[Element]Style{ElementCode: {Properties: map[string]string{"--mono": "1"}}},
			},
		},
		{
			name: "literal medium alias",
			cfg: Configuration{
				FontSize: "medium",
				Headings: map[int]Style{2: {Font: &Font{Size: "medium"}}},
			},
		},
		{
			name:    "bad root size",
			cfg:     Configuration{FontSize: "enormous"},
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "heading out of range",
			cfg:     Configuration{Headings: map[int]Style{7: {}}},
			wantErr: ErrHeadingOutOfRange,
		},
		{
			name:    "unknown element",
			cfg:     Configuration{Elements: map[Element]Style{"marquee": {}}},
			wantErr: ErrUnknownElement,
		},
		{
			name:    "bad weight",
			cfg:     Configuration{Headings: map[int]Style{1: {Font: &Font{Weight: "heavy"}}}},
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "bad alignment",
			cfg:     Configuration{Elements: map[Element]Style{ElementParagraph: {Font: &Font{Align: "middle"}}}},
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "bad property name",
			cfg:     Configuration{Selectors: map[string]Style{".a": {Properties: map[string]string{"color;x": "red"}}}},
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "empty selector",
			cfg:     Configuration{Selectors: map[string]Style{"": {}}},
			wantErr: ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("decodes sizes by name", func(t *testing.T) {
		t.Parallel()

		data := []byte(`
fontSize: medium
headings:
  1:
    font:
      size: medium
      weight: bold
elements:
  blockquote:
    classes: [quote]
`)
		c, err := Load(data)
		if err != nil {
			t.Fatalf("Load() error: %v", err)
		}
		if c.FontSize != SizeBody {
			t.Errorf("FontSize = %q, want body", c.FontSize)
		}
		h1, ok := c.Heading(1)
		if !ok || h1.Font.Size != SizeBody || h1.Font.Weight != WeightBold {
			t.Errorf("Heading(1) = %+v", h1.Font)
		}
		if q, _ := c.Element(ElementBlockquote); len(q.Classes) != 1 || q.Classes[0] != "quote" {
			t.Errorf("blockquote classes = %v", q.Classes)
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		t.Parallel()

		_, err := Load([]byte("fontColour: red\n"))
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("Load() error = %v, want ErrInvalidConfig", err)
		}
	})

	t.Run("invalid size rejected", func(t *testing.T) {
		t.Parallel()

		_, err := Load([]byte("fontSize: gigantic\n"))
		if err == nil {
			t.Error("Load() accepted an unknown size")
		}
	})
}

func TestPreset(t *testing.T) {
	t.Parallel()

	for _, name := range PresetNames() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			c, err := Preset(name)
			if err != nil {
				t.Fatalf("Preset(%q) error: %v", name, err)
			}
			if c.CSS() == "" {
				t.Errorf("Preset(%q) produced no CSS", name)
			}
		})
	}

	t.Run("unknown", func(t *testing.T) {
		t.Parallel()

		_, err := Preset("brutalist")
		if !errors.Is(err, ErrUnknownPreset) {
			t.Errorf("Preset() error = %v, want ErrUnknownPreset", err)
		}
	})

	t.Run("default has headings", func(t *testing.T) {
		t.Parallel()

		c := MustPreset(DefaultPreset)
		for level := 1; level <= 6; level++ {
			if _, ok := c.Heading(level); !ok {
				t.Errorf("default preset missing h%d", level)
			}
		}
	})
}
