package typography

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStyle_Merge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		left  Style
		right Style
		want  Style
	}{
		{
			name:  "size and weight combine",
			left:  Style{Font: &Font{Size: SizeMedium}},
			right: Style{Font: &Font{Weight: WeightBold}},
			want:  Style{Font: &Font{Size: SizeBody, Weight: WeightBold}},
		},
		{
			name:  "right wins on collision",
			left:  Style{Font: &Font{Color: "red", Family: "serif"}},
			right: Style{Font: &Font{Color: "blue"}},
			want:  Style{Font: &Font{Color: "blue", Family: "serif"}},
		},
		{
			name:  "missing group carried from either side",
			left:  Style{Background: &Background{Color: "#fff"}},
			right: Style{Border: &Border{Radius: "4px"}},
			want:  Style{Background: &Background{Color: "#fff"}, Border: &Border{Radius: "4px"}},
		},
		{
			name:  "spacing merges per side",
			left:  Style{Padding: Uniform("1rem")},
			right: Style{Padding: &Spacing{Left: "2rem"}},
			want:  Style{Padding: &Spacing{Top: "1rem", Right: "1rem", Bottom: "1rem", Left: "2rem"}},
		},
		{
			name:  "classes union keeps first seen order",
			left:  Style{Classes: []string{"a", "b"}},
			right: Style{Classes: []string{"b", "c"}},
			want:  Style{Classes: []string{"a", "b", "c"}},
		},
		{
			name:  "properties right overwrites",
			left:  Style{Properties: map[string]string{"opacity": "1", "cursor": "pointer"}},
			right: Style{Properties: map[string]string{"opacity": "0.5"}},
			want:  Style{Properties: map[string]string{"opacity": "0.5", "cursor": "pointer"}},
		},
		{
			name:  "zero with zero",
			left:  Style{},
			right: Style{},
			want:  Style{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tt.left.Merge(tt.right)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStyle_MergeDoesNotModifyInputs(t *testing.T) {
	t.Parallel()

	left := Style{Font: &Font{Size: SizeLarge}, Properties: map[string]string{"a": "1"}}
	right := Style{Font: &Font{Size: SizeSmall}, Properties: map[string]string{"a": "2"}}

	merged := left.Merge(right)
	merged.Font.Color = "red"
	merged.Properties["b"] = "3"

	if left.Font.Size != SizeLarge || left.Font.Color != "" {
		t.Errorf("left font modified: %+v", left.Font)
	}
	if len(left.Properties) != 1 || left.Properties["a"] != "1" {
		t.Errorf("left properties modified: %v", left.Properties)
	}
	if right.Font.Color != "" || len(right.Properties) != 1 {
		t.Errorf("right modified: %+v %v", right.Font, right.Properties)
	}
}

func TestStyle_IsZero(t *testing.T) {
	t.Parallel()

	if !(Style{}).IsZero() {
		t.Error("Style{}.IsZero() = false")
	}
	if (Style{Classes: []string{"x"}}).IsZero() {
		t.Error("style with classes reported zero")
	}
}

func TestParseFontSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    FontSize
		wantErr bool
	}{
		{in: "medium", want: SizeBody},
		{in: " Medium ", want: SizeBody},
		{in: "body", want: SizeBody},
		{in: "huge", want: SizeHuge},
		{in: "18px", want: "18px"},
		{in: "1.125rem", want: "1.125rem"},
		{in: "enormous", wantErr: true},
		{in: "12 px", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := ParseFontSize(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseFontSize(%q) = %q, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFontSize(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseFontSize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFontSizeAndWeightCSS(t *testing.T) {
	t.Parallel()

	if SizeMedium.CSS() != SizeBody.CSS() {
		t.Errorf("medium = %q, body = %q", SizeMedium.CSS(), SizeBody.CSS())
	}
	if got := FontSize("medium").CSS(); got != "1rem" {
		t.Errorf("literal medium = %q, want 1rem", got)
	}
	if got := SizeHuge.CSS(); got != "2.5rem" {
		t.Errorf("huge = %q", got)
	}
	if got := FontSize("14px").CSS(); got != "14px" {
		t.Errorf("explicit = %q", got)
	}
	if got := WeightBold.CSS(); got != "700" {
		t.Errorf("bold = %q", got)
	}
}
