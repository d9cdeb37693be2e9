package typography

import (
	"fmt"
	"regexp"
	"strings"
)

// FontSize is a step of the size scale or an explicit CSS length.
type FontSize string

const (
	SizeXSmall  FontSize = "x-small"
	SizeSmall   FontSize = "small"
	SizeBody    FontSize = "body"
	SizeLarge   FontSize = "large"
	SizeXLarge  FontSize = "x-large"
	SizeXXLarge FontSize = "xx-large"
	SizeHuge    FontSize = "huge"
)

// SizeMedium is the body size under its conventional name.
const SizeMedium = SizeBody

const sizeMediumName = "medium"

// sizeScale maps each step to its rem value.
var sizeScale = map[FontSize]string{
	SizeXSmall:  "0.75rem",
	SizeSmall:   "0.875rem",
	SizeBody:    "1rem",
	SizeLarge:   "1.25rem",
	SizeXLarge:  "1.5rem",
	SizeXXLarge: "2rem",
	SizeHuge:    "2.5rem",
}

// cssLengthPattern accepts explicit lengths such as "18px" or "1.125rem".
var cssLengthPattern = regexp.MustCompile(`^\d+(\.\d+)?(px|rem|em|pt|%)$`)

// ParseFontSize normalizes a size name. "medium" is read as SizeBody.
func ParseFontSize(s string) (FontSize, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == sizeMediumName {
		return SizeBody, nil
	}
	size := FontSize(s)
	if !size.valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidFontSize, s)
	}
	return size, nil
}

// UnmarshalText lets YAML configurations spell sizes by name.
func (s *FontSize) UnmarshalText(text []byte) error {
	parsed, err := ParseFontSize(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// step resolves the "medium" alias of literal sizes that bypassed
// ParseFontSize.
func (s FontSize) step() FontSize {
	if s == sizeMediumName {
		return SizeBody
	}
	return s
}

func (s FontSize) valid() bool {
	if s == "" {
		return true
	}
	if _, ok := sizeScale[s.step()]; ok {
		return true
	}
	return cssLengthPattern.MatchString(string(s))
}

// CSS returns the CSS value of the size.
func (s FontSize) CSS() string {
	if v, ok := sizeScale[s.step()]; ok {
		return v
	}
	return string(s)
}

// FontWeight is a named weight.
type FontWeight string

const (
	WeightLight    FontWeight = "light"
	WeightRegular  FontWeight = "regular"
	WeightMedium   FontWeight = "medium"
	WeightSemibold FontWeight = "semibold"
	WeightBold     FontWeight = "bold"
)

var weightValues = map[FontWeight]string{
	WeightLight:    "300",
	WeightRegular:  "400",
	WeightMedium:   "500",
	WeightSemibold: "600",
	WeightBold:     "700",
}

// CSS returns the numeric CSS weight.
func (w FontWeight) CSS() string {
	if v, ok := weightValues[w]; ok {
		return v
	}
	return string(w)
}

// Alignment is a text-align value.
type Alignment string

const (
	AlignLeft    Alignment = "left"
	AlignCenter  Alignment = "center"
	AlignRight   Alignment = "right"
	AlignJustify Alignment = "justify"
)
