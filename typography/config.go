package typography

import (
	"fmt"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/alnah/go-md2html/internal/yamlutil"
)

// Element is a kind of rendered Markdown element that can be styled.
type Element string

const (
	ElementParagraph   Element = "paragraph"
	ElementLink        Element = "link"
	ElementEmphasis    Element = "emphasis"
	ElementStrong      Element = "strong"
	ElementCode        Element = "code"
	ElementCodeBlock   Element = "codeBlock"
	ElementBlockquote  Element = "blockquote"
	ElementList        Element = "list"
	ElementListItem    Element = "listItem"
	ElementImage       Element = "image"
	ElementTable       Element = "table"
	ElementTableHeader Element = "tableHeader"
	ElementTableCell   Element = "tableCell"
	ElementRule        Element = "rule"
)

// Elements lists every element kind in CSS emission order.
var Elements = []Element{
	ElementParagraph,
	ElementLink,
	ElementEmphasis,
	ElementStrong,
	ElementCode,
	ElementCodeBlock,
	ElementBlockquote,
	ElementList,
	ElementListItem,
	ElementImage,
	ElementTable,
	ElementTableHeader,
	ElementTableCell,
	ElementRule,
}

var elementSelectors = map[Element]string{
	ElementParagraph:   "p",
	ElementLink:        "a",
	ElementEmphasis:    "em",
	ElementStrong:      "strong",
	ElementCode:        ":not(pre) > code",
	ElementCodeBlock:   "pre",
	ElementBlockquote:  "blockquote",
	ElementList:        "ul, ol",
	ElementListItem:    "li",
	ElementImage:       "img",
	ElementTable:       "table",
	ElementTableHeader: "th",
	ElementTableCell:   "td",
	ElementRule:        "hr",
}

// Selector returns the CSS selector the element kind is emitted under.
func (e Element) Selector() string {
	return elementSelectors[e]
}

func (e Element) valid() bool {
	_, ok := elementSelectors[e]
	return ok
}

// Configuration maps heading levels, element kinds and selectors to styles.
// It is a value: lookups and Merge never modify the receiver, so a
// Configuration can be shared by concurrent renders.
type Configuration struct {
	FontFamily string            `yaml:"fontFamily,omitempty"`
	FontSize   FontSize          `yaml:"fontSize,omitempty"`
	Responsive bool              `yaml:"responsive,omitempty"`
	Headings   map[int]Style     `yaml:"headings,omitempty"`
	Elements   map[Element]Style `yaml:"elements,omitempty"`
	Selectors  map[string]Style  `yaml:"selectors,omitempty"`
}

// Heading returns the style configured for a heading level.
func (c Configuration) Heading(level int) (Style, bool) {
	s, ok := c.Headings[level]
	return s, ok
}

// Element returns the style configured for an element kind.
func (c Configuration) Element(kind Element) (Style, bool) {
	s, ok := c.Elements[kind]
	return s, ok
}

// Selector returns the style configured for a free-form selector.
func (c Configuration) Selector(sel string) (Style, bool) {
	s, ok := c.Selectors[sel]
	return s, ok
}

// Merge returns c overlaid with other. Scalars from other win when set;
// the Responsive flag is enabled when either side enables it. The result
// shares no groups, slices or maps with either input.
func (c Configuration) Merge(other Configuration) Configuration {
	return Configuration{
		FontFamily: pick(c.FontFamily, other.FontFamily),
		FontSize:   pick(c.FontSize, other.FontSize),
		Responsive: c.Responsive || other.Responsive,
		Headings:   mergeStyles(c.Headings, other.Headings),
		Elements:   mergeStyles(c.Elements, other.Elements),
		Selectors:  mergeStyles(c.Selectors, other.Selectors),
	}
}

func mergeStyles[K comparable](a, b map[K]Style) map[K]Style {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[K]Style, len(a)+len(b))
	for k, s := range a {
		out[k] = Style{}.Merge(s)
	}
	for k, s := range b {
		if base, ok := a[k]; ok {
			out[k] = base.Merge(s)
			continue
		}
		out[k] = Style{}.Merge(s)
	}
	return out
}

var propertyNamePattern = regexp.MustCompile(`^-{0,2}[a-zA-Z][a-zA-Z0-9-]*$`)

// Validate checks sizes, heading levels, element kinds and custom
// property names.
func (c *Configuration) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.FontSize, validation.By(validateSize)),
	); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	for level, s := range c.Headings {
		if level < 1 || level > 6 {
			return fmt.Errorf("%w: %w: %d", ErrInvalidConfig, ErrHeadingOutOfRange, level)
		}
		if err := s.Validate(); err != nil {
			return fmt.Errorf("%w: h%d: %v", ErrInvalidConfig, level, err)
		}
	}
	for kind, s := range c.Elements {
		if !kind.valid() {
			return fmt.Errorf("%w: %w: %q", ErrInvalidConfig, ErrUnknownElement, kind)
		}
		if err := s.Validate(); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, kind, err)
		}
	}
	for sel, s := range c.Selectors {
		if err := validation.Validate(sel, validation.Required); err != nil {
			return fmt.Errorf("%w: selector: %v", ErrInvalidConfig, err)
		}
		if err := s.Validate(); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, sel, err)
		}
	}
	return nil
}

// Validate checks the font group and custom property names.
func (s Style) Validate() error {
	if s.Font != nil {
		if err := s.Font.Validate(); err != nil {
			return err
		}
	}
	for name := range s.Properties {
		if !propertyNamePattern.MatchString(name) {
			return fmt.Errorf("%w: %q", ErrInvalidPropertyName, name)
		}
	}
	return nil
}

// Validate checks the size, weight and alignment values.
func (f *Font) Validate() error {
	return validation.ValidateStruct(f,
		validation.Field(&f.Size, validation.By(validateSize)),
		validation.Field(&f.Weight, validation.In(
			WeightLight, WeightRegular, WeightMedium, WeightSemibold, WeightBold,
		)),
		validation.Field(&f.Align, validation.In(
			AlignLeft, AlignCenter, AlignRight, AlignJustify,
		)),
	)
}

func validateSize(value any) error {
	size, _ := value.(FontSize)
	if !size.valid() {
		return fmt.Errorf("%w: %q", ErrInvalidFontSize, size)
	}
	return nil
}

// Load decodes and validates a YAML configuration.
func Load(data []byte) (Configuration, error) {
	var c Configuration
	if err := yamlutil.UnmarshalStrict(data, &c); err != nil {
		return Configuration{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := c.Validate(); err != nil {
		return Configuration{}, err
	}
	return c, nil
}
